package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetOrders returns the caller's order history, newest first. The
// persisted history is merged in on every read so orders placed before
// a restart still show up.
func (a *App) GetOrders() gin.HandlerFunc {
	return func(c *gin.Context) {
		s := a.session(c)
		if s == nil {
			return
		}

		userID := c.GetString("userID")
		if !s.OrdersHydrated() {
			s.HydrateOrders(a.Orders.GetUserOrders(c.Request.Context(), userID))
		}

		c.JSON(http.StatusOK, gin.H{"orders": s.Orders()})
	}
}
