package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/luminafashion/backend/dto"
)

// StylistChat forwards a message to the caller's stylist conversation.
// Each user holds one conversation, seeded with the catalog, so the
// assistant remembers earlier turns until sign-out.
func (a *App) StylistChat() gin.HandlerFunc {
	return func(c *gin.Context) {
		var body dto.StylistChatDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if a.Stylist == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "stylist is not configured"})
			return
		}

		chat := a.chatFor(c.GetString("userID"))
		reply := chat.Send(c.Request.Context(), body.Message)

		c.JSON(http.StatusOK, gin.H{"reply": reply})
	}
}

func (a *App) ProductAdvice() gin.HandlerFunc {
	return func(c *gin.Context) {
		var body dto.ProductAdviceDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if a.Stylist == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "stylist is not configured"})
			return
		}

		product, ok := a.Catalog.ByID(body.ProductID)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}

		advice := a.Stylist.Advice(c.Request.Context(), product.Name, body.Question)
		c.JSON(http.StatusOK, gin.H{"advice": advice})
	}
}
