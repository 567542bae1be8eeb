package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/luminafashion/backend/dto"
	"github.com/luminafashion/backend/models"
	"github.com/luminafashion/backend/utils"
	"go.uber.org/zap"
)

// AddProduct creates a catalog entry from a multipart form: a "data"
// field with the product JSON and one or more "images" files. The
// in-memory catalog is only updated after the database insert and the
// image upload both succeed.
func (a *App) AddProduct() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.PostForm("data")
		if raw == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "missing product data"})
			return
		}

		var body dto.CreateProductDTO
		if err := json.Unmarshal([]byte(raw), &body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product data"})
			return
		}
		if err := binding.Validator.ValidateStruct(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		form, err := c.MultipartForm()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid multipart form"})
			return
		}
		files := form.File["images"]

		slug := utils.GenerateSlug(body.Name)
		urls, err := a.Uploader.UploadProductImages(c.Request.Context(), slug, files)
		if err != nil {
			a.Log.Error("image upload failed", zap.String("slug", slug), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		product := models.Product{
			Name:        body.Name,
			Price:       body.Price,
			Discount:    body.Discount,
			Category:    body.Category,
			Image:       urls[0],
			Images:      urls,
			Sizes:       body.Sizes,
			Colors:      body.Colors,
			Description: body.Description,
			Fabric:      body.Fabric,
			Fit:         body.Fit,
			Care:        body.Care,
			IsNew:       body.IsNew,
			Tags:        body.Tags,
		}

		created, err := a.Products.Insert(c.Request.Context(), product)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create product"})
			return
		}

		a.Catalog.Append(created)
		a.Log.Info("product created", zap.Int64("id", created.ID), zap.String("name", created.Name))

		c.JSON(http.StatusCreated, gin.H{"product": created})
	}
}

func (a *App) GetAllOrders() gin.HandlerFunc {
	return func(c *gin.Context) {
		orders := a.Orders.GetAllOrders(c.Request.Context())
		c.JSON(http.StatusOK, gin.H{"orders": orders})
	}
}
