package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/luminafashion/backend/config"
	"github.com/luminafashion/backend/controllers"
	"github.com/luminafashion/backend/database"
	"github.com/luminafashion/backend/logger"
	"github.com/luminafashion/backend/middleware"
	"github.com/luminafashion/backend/models"
	"github.com/luminafashion/backend/shop"
	"github.com/luminafashion/backend/store"
	"github.com/luminafashion/backend/stylist"
	"github.com/luminafashion/backend/utils"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	zlog, err := logger.Init(cfg.LogLevel, cfg.Environment)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer zlog.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := database.Connect(ctx, cfg.MongoURI)
	if err != nil {
		zlog.Fatal("mongodb connection failed", zap.Error(err))
	}
	defer client.Disconnect(context.Background())
	db := client.Database(cfg.DatabaseName)
	zlog.Info("connected to mongodb", zap.String("database", cfg.DatabaseName))

	if err := utils.SeedAdminUser(ctx, db.Collection("profiles"), cfg.AdminEmail, cfg.AdminPassword); err != nil {
		zlog.Fatal("admin seeding failed", zap.Error(err))
	}

	products := store.NewProductStore(db, zlog)
	orders := store.NewOrderStore(db, zlog)
	profiles := store.NewProfileStore(db, zlog)

	var sty *stylist.Stylist
	if cfg.GeminiAPIKey != "" {
		sty, err = stylist.New(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, zlog)
		if err != nil {
			zlog.Fatal("stylist init failed", zap.Error(err))
		}
		defer sty.Close()
	} else {
		zlog.Warn("GEMINI_API_KEY not set, stylist endpoints disabled")
	}

	uploader, err := buildUploader(ctx, cfg)
	if err != nil {
		zlog.Fatal("storage init failed", zap.Error(err))
	}

	catalog := shop.NewCatalog()
	catalog.Replace(products.FetchAll(ctx))
	zlog.Info("catalog loaded", zap.Int("products", catalog.Len()))

	app := controllers.NewApp(cfg, zlog, catalog, products, orders, profiles, sty, uploader)

	registerValidators()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(zlog))
	r.Use(middleware.Metrics())

	allowed := make(map[string]bool, len(cfg.AllowedOrigins))
	for _, origin := range cfg.AllowedOrigins {
		allowed[origin] = true
	}
	r.Use(cors.New(cors.Config{
		AllowOriginFunc:  func(origin string) bool { return allowed[origin] },
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	registerRoutes(r, app, cfg)

	zlog.Info("server starting", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		zlog.Fatal("server stopped", zap.Error(err))
	}
}

func registerValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("sortoption", func(fl validator.FieldLevel) bool {
			_, err := models.ParseSortOption(fl.Field().String())
			return err == nil
		})
	}
}

func buildUploader(ctx context.Context, cfg *config.Config) (utils.ImageUploader, error) {
	if cfg.StorageBackend == "gcs" {
		return utils.NewGCSUploader(ctx, cfg.GCSBucket, cfg.CredentialsFile, cfg.MaxProductImages)
	}
	return utils.NewR2Uploader(ctx, cfg.R2Bucket, cfg.R2AccessKeyID, cfg.R2SecretKey,
		cfg.R2Endpoint, cfg.R2PublicDomain, cfg.MaxProductImages)
}

func registerRoutes(r *gin.Engine, app *controllers.App, cfg *config.Config) {
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	auth := r.Group("/auth")
	{
		auth.POST("/signup", app.Signup())
		auth.POST("/login", app.Login())
		auth.POST("/refresh", app.Refresh())
		auth.POST("/logout", middleware.AuthMiddleware(cfg.JWTSecret), app.Logout())
	}

	api := r.Group("/api", middleware.AuthMiddleware(cfg.JWTSecret))
	{
		api.GET("/products", app.GetProducts())
		api.GET("/products/:id", app.GetProduct())
		api.GET("/categories", app.GetCategories())

		api.GET("/cart", app.GetCart())
		api.POST("/cart/items", app.AddCartItem())
		api.PATCH("/cart/items", app.UpdateCartItem())
		api.DELETE("/cart/items", app.RemoveCartItem())
		api.POST("/cart/drawer", app.SetCartDrawer())

		api.GET("/wishlist", app.GetWishlist())
		api.POST("/wishlist/toggle", app.ToggleWishlist())

		api.POST("/checkout", app.Checkout())
		api.GET("/orders", app.GetOrders())

		api.GET("/me", app.Me())
		api.POST("/me/theme", app.ToggleTheme())

		api.POST("/stylist/chat", app.StylistChat())
		api.POST("/stylist/advice", app.ProductAdvice())
	}

	admin := r.Group("/api/admin",
		middleware.AuthMiddleware(cfg.JWTSecret),
		middleware.AdminOnly(cfg.AdminEmail))
	{
		admin.POST("/products", app.AddProduct())
		admin.GET("/orders", app.GetAllOrders())
	}
}
