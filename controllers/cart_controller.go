package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/luminafashion/backend/dto"
)

func (a *App) GetCart() gin.HandlerFunc {
	return func(c *gin.Context) {
		s := a.session(c)
		if s == nil {
			return
		}
		c.JSON(http.StatusOK, cartView(s))
	}
}

// AddCartItem adds one unit of a product in a size. Adding always pops
// the cart drawer open as a second step, so the open flag is correct
// even if a concurrent request closed the drawer in between.
func (a *App) AddCartItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		var body dto.AddCartItemDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		product, ok := a.Catalog.ByID(body.ProductID)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}

		s := a.session(c)
		if s == nil {
			return
		}
		s.AddToCart(product, body.Size)
		s.SetCartOpen(true)

		c.JSON(http.StatusOK, cartView(s))
	}
}

func (a *App) UpdateCartItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		var body dto.UpdateQuantityDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		s := a.session(c)
		if s == nil {
			return
		}
		s.UpdateQuantity(body.ProductID, body.Size, body.Delta)

		c.JSON(http.StatusOK, cartView(s))
	}
}

func (a *App) RemoveCartItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		var body dto.RemoveCartItemDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		s := a.session(c)
		if s == nil {
			return
		}
		s.RemoveFromCart(body.ProductID, body.Size)

		c.JSON(http.StatusOK, cartView(s))
	}
}

func (a *App) SetCartDrawer() gin.HandlerFunc {
	return func(c *gin.Context) {
		var body dto.CartDrawerDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		s := a.session(c)
		if s == nil {
			return
		}
		s.SetCartOpen(body.Open)

		c.JSON(http.StatusOK, cartView(s))
	}
}
