package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/luminafashion/backend/dto"
	"github.com/luminafashion/backend/models"
)

// GetProducts applies any browse commands carried in the query string
// to the caller's session, then returns the filtered and sorted view.
// Commands apply in a fixed order so a single request behaves like the
// same clicks made one after another.
func (a *App) GetProducts() gin.HandlerFunc {
	return func(c *gin.Context) {
		var q dto.BrowseQueryDTO
		if err := c.ShouldBindQuery(&q); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		s := a.session(c)
		if s == nil {
			return
		}

		if q.Category != nil {
			s.SetCategory(*q.Category)
		}
		if q.Sort != nil {
			opt, err := models.ParseSortOption(*q.Sort)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			s.SetSort(opt)
		}
		if q.ToggleColor != nil {
			s.ToggleColor(*q.ToggleColor)
		}
		if q.ToggleSize != nil {
			s.ToggleSize(*q.ToggleSize)
		}
		if q.MaxPrice != nil {
			s.SetMaxPrice(*q.MaxPrice)
		}

		state := s.BrowseSnapshot()
		c.JSON(http.StatusOK, gin.H{
			"products": s.BrowseProducts(a.Catalog.Products()),
			"category": state.Category,
			"sort":     state.Sort,
			"filters":  state.Filters,
		})
	}
}

func (a *App) GetProduct() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
			return
		}

		product, ok := a.Catalog.ByID(id)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

func (a *App) GetCategories() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"categories": append([]string{models.CategoryAll}, models.Categories...),
			"sizes":      models.Sizes,
		})
	}
}
