package dto

import "github.com/luminafashion/backend/models"

type CheckoutDTO struct {
	PaymentMethod   string                  `json:"paymentMethod" binding:"required"`
	ShippingAddress *models.ShippingAddress `json:"shippingAddress"`
}
