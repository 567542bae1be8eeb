package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func (a *App) Me() gin.HandlerFunc {
	return func(c *gin.Context) {
		s := a.session(c)
		if s == nil {
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"user":          s.User(),
			"theme":         s.Theme(),
			"cartCount":     s.ItemCount(),
			"wishlistCount": s.WishlistCount(),
		})
	}
}

// ToggleTheme flips between light and dark. The new value is persisted
// so it survives sign-out, unlike the rest of the session.
func (a *App) ToggleTheme() gin.HandlerFunc {
	return func(c *gin.Context) {
		s := a.session(c)
		if s == nil {
			return
		}

		theme := s.ToggleTheme()
		if oid, err := bson.ObjectIDFromHex(c.GetString("userID")); err == nil {
			a.Profiles.SetTheme(c.Request.Context(), oid, theme)
		}

		c.JSON(http.StatusOK, gin.H{"theme": theme})
	}
}
