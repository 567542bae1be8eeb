package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/luminafashion/backend/dto"
	"github.com/luminafashion/backend/models"
)

func (a *App) GetWishlist() gin.HandlerFunc {
	return func(c *gin.Context) {
		s := a.session(c)
		if s == nil {
			return
		}

		ids := s.WishlistIDs()
		products := make([]models.Product, 0, len(ids))
		for _, id := range ids {
			if p, ok := a.Catalog.ByID(id); ok {
				products = append(products, p)
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"ids":      ids,
			"products": products,
			"count":    s.WishlistCount(),
		})
	}
}

func (a *App) ToggleWishlist() gin.HandlerFunc {
	return func(c *gin.Context) {
		var body dto.ToggleWishlistDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if _, ok := a.Catalog.ByID(body.ProductID); !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}

		s := a.session(c)
		if s == nil {
			return
		}
		s.ToggleWishlist(body.ProductID)

		c.JSON(http.StatusOK, gin.H{
			"ids":        s.WishlistIDs(),
			"count":      s.WishlistCount(),
			"inWishlist": s.InWishlist(body.ProductID),
		})
	}
}
