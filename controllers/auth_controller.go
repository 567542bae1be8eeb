package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/luminafashion/backend/dto"
	"github.com/luminafashion/backend/models"
	"github.com/luminafashion/backend/utils"
	"go.uber.org/zap"
)

func (a *App) Signup() gin.HandlerFunc {
	return func(c *gin.Context) {
		var body dto.SignupDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx := c.Request.Context()
		if _, err := a.Profiles.FindByEmail(ctx, body.Email); err == nil {
			c.JSON(http.StatusConflict, gin.H{"error": "email already registered"})
			return
		}

		hash, err := utils.HashPassword(body.Password)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to hash password"})
			return
		}

		profile, err := a.Profiles.Create(ctx, body.Name, body.Email, hash)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		a.issueTokens(c, profile)
	}
}

func (a *App) Login() gin.HandlerFunc {
	return func(c *gin.Context) {
		var body dto.LoginDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		profile, err := a.Profiles.FindByEmail(c.Request.Context(), body.Email)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
		if err := utils.CheckPassword(profile.PasswordHash, body.Password); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}

		a.issueTokens(c, profile)
	}
}

// issueTokens finishes a successful sign-in: token pair, refresh
// cookie, and the user's shop session. Signing in clears nothing.
func (a *App) issueTokens(c *gin.Context, profile models.Profile) {
	accessToken, err := utils.GenerateAccessToken(profile.ID.Hex(), profile.Email, a.Cfg.JWTSecret, a.Cfg.AccessTTL())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate access token"})
		return
	}
	refreshToken, err := utils.GenerateRefreshToken(profile.ID.Hex(), a.Cfg.JWTRefreshSecret, a.Cfg.RefreshTTL())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate refresh token"})
		return
	}

	err = a.Profiles.InsertRefreshToken(c.Request.Context(), models.RefreshToken{
		UserID:    profile.ID,
		TokenHash: refreshToken,
		ExpiresAt: time.Now().UTC().Add(a.Cfg.RefreshTTL()),
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		a.Log.Error("store refresh token failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "connection failed"})
		return
	}

	http.SetCookie(c.Writer, &http.Cookie{
		Name:     "refreshToken",
		Value:    refreshToken,
		Path:     "/auth",
		MaxAge:   int(a.Cfg.RefreshTTL().Seconds()),
		Domain:   a.Cfg.CookieDomain,
		HttpOnly: true,
		Secure:   a.Cfg.CookieSecure,
		SameSite: http.SameSiteNoneMode, // for cross-site
	})

	session := a.Sessions.GetOrCreate(profile.ToUser(), profile.Theme)
	a.Log.Info("user logged in", zap.String("email", profile.Email))

	c.JSON(http.StatusOK, gin.H{
		"access_token": accessToken,
		"user":         session.User(),
		"theme":        session.Theme(),
	})
}

func (a *App) Refresh() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		hash, err := c.Cookie("refreshToken")
		if err != nil || hash == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing refresh token"})
			return
		}

		rt, err := a.Profiles.FindActiveRefreshToken(ctx, hash)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid refresh token"})
			return
		}

		profile, err := a.Profiles.FindByID(ctx, rt.UserID)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid user"})
			return
		}

		// Rotate refresh token
		newHash, err := utils.GenerateRefreshToken(profile.ID.Hex(), a.Cfg.JWTRefreshSecret, a.Cfg.RefreshTTL())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to rotate refresh token"})
			return
		}
		if err := a.Profiles.RotateRefreshToken(ctx, rt, newHash, a.Cfg.RefreshTTL()); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to rotate refresh token"})
			return
		}

		accessToken, err := utils.GenerateAccessToken(profile.ID.Hex(), profile.Email, a.Cfg.JWTSecret, a.Cfg.AccessTTL())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate access token"})
			return
		}

		http.SetCookie(c.Writer, &http.Cookie{
			Name:     "refreshToken",
			Value:    newHash,
			Path:     "/auth",
			MaxAge:   int(a.Cfg.RefreshTTL().Seconds()),
			Domain:   a.Cfg.CookieDomain,
			HttpOnly: true,
			Secure:   a.Cfg.CookieSecure,
			SameSite: http.SameSiteNoneMode,
		})
		c.JSON(http.StatusOK, gin.H{"access_token": accessToken})
	}
}

// Logout is the sign-out transition: the moment it completes, cart,
// wishlist and order history are all empty. The refresh token is
// revoked best effort.
func (a *App) Logout() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("userID")

		hash, _ := c.Cookie("refreshToken")
		a.Profiles.RevokeRefreshToken(c.Request.Context(), hash)
		utils.ClearRefreshCookie(c, a.Cfg.CookieDomain, a.Cfg.CookieSecure)

		a.Sessions.Drop(userID)
		a.dropChat(userID)
		a.Log.Info("user logged out", zap.String("user_id", userID))

		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}
