package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/luminafashion/backend/dto"
	"github.com/luminafashion/backend/shop"
	"go.uber.org/zap"
)

// Checkout turns the cart into an order. The order is only visible in
// the session after the database has accepted it; if the write fails
// the cart stays exactly as it was.
func (a *App) Checkout() gin.HandlerFunc {
	return func(c *gin.Context) {
		var body dto.CheckoutDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		s := a.session(c)
		if s == nil {
			return
		}

		order, err := s.CheckoutDraft(uuid.New().String(), body.PaymentMethod, body.ShippingAddress)
		if err != nil {
			if errors.Is(err, shop.ErrEmptyCart) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "cart is empty"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		userID := c.GetString("userID")
		if err := a.Orders.CreateOrder(c.Request.Context(), order, userID); err != nil {
			a.Log.Error("checkout failed", zap.String("order_id", order.ID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to place order"})
			return
		}

		s.CompleteCheckout(order)
		c.JSON(http.StatusCreated, gin.H{"order": order})
	}
}
