package controllers

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/luminafashion/backend/config"
	"github.com/luminafashion/backend/shop"
	"github.com/luminafashion/backend/store"
	"github.com/luminafashion/backend/stylist"
	"github.com/luminafashion/backend/utils"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.uber.org/zap"
)

// App is the application state passed to every handler: configuration,
// the shared catalog, the per-user session registry and the boundary
// collaborators. Nothing here is a hidden global; main builds one App
// for the process lifetime.
type App struct {
	Cfg      *config.Config
	Log      *zap.Logger
	Catalog  *shop.Catalog
	Sessions *shop.Sessions
	Products *store.ProductStore
	Orders   *store.OrderStore
	Profiles *store.ProfileStore
	Stylist  *stylist.Stylist
	Uploader utils.ImageUploader

	chatMu sync.Mutex
	chats  map[string]*stylist.Chat
}

func NewApp(cfg *config.Config, log *zap.Logger, catalog *shop.Catalog,
	products *store.ProductStore, orders *store.OrderStore, profiles *store.ProfileStore,
	sty *stylist.Stylist, uploader utils.ImageUploader) *App {
	return &App{
		Cfg:      cfg,
		Log:      log,
		Catalog:  catalog,
		Sessions: shop.NewSessions(),
		Products: products,
		Orders:   orders,
		Profiles: profiles,
		Stylist:  sty,
		Uploader: uploader,
		chats:    make(map[string]*stylist.Chat),
	}
}

// session resolves the caller's shop session. After a restart the
// registry is empty, so the profile is reloaded to rebuild it with the
// persisted theme. Returns nil after writing the error response.
func (a *App) session(c *gin.Context) *shop.Session {
	userID := c.GetString("userID")
	if s, ok := a.Sessions.Get(userID); ok {
		return s
	}

	oid, err := bson.ObjectIDFromHex(userID)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid auth context"})
		return nil
	}
	profile, err := a.Profiles.FindByID(c.Request.Context(), oid)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid user"})
		return nil
	}
	return a.Sessions.GetOrCreate(profile.ToUser(), profile.Theme)
}

// chatFor returns the user's stylist conversation, seeding a new one
// with the current catalog on first use.
func (a *App) chatFor(userID string) *stylist.Chat {
	a.chatMu.Lock()
	defer a.chatMu.Unlock()
	if chat, ok := a.chats[userID]; ok {
		return chat
	}
	chat := a.Stylist.NewChat(a.Catalog.Products())
	a.chats[userID] = chat
	return chat
}

func (a *App) dropChat(userID string) {
	a.chatMu.Lock()
	defer a.chatMu.Unlock()
	delete(a.chats, userID)
}

func cartView(s *shop.Session) gin.H {
	return gin.H{
		"items":     s.CartLines(),
		"subtotal":  s.Subtotal(),
		"itemCount": s.ItemCount(),
		"isOpen":    s.CartOpen(),
	}
}
