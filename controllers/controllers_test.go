package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/luminafashion/backend/config"
	"github.com/luminafashion/backend/models"
	"github.com/luminafashion/backend/shop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testUserID = "64f000000000000000000001"

func newTestApp() *App {
	app := NewApp(&config.Config{}, zap.NewNop(), shop.NewCatalog(), nil, nil, nil, nil, nil)
	app.Catalog.Replace([]models.Product{
		{ID: 1, Name: "Linen Shirt", Price: 500, Sizes: []string{"M"}, Colors: []string{"White"}},
		{ID: 2, Name: "Denim Jacket", Price: 900, Discount: 20, Sizes: []string{"L"}},
	})
	app.Sessions.GetOrCreate(models.User{ID: testUserID, Email: "shopper@example.com"}, models.ThemeLight)
	return app
}

func newTestRouter(app *App) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("userID", testUserID)
		c.Set("email", "shopper@example.com")
	})
	r.GET("/api/products/:id", app.GetProduct())
	r.GET("/api/cart", app.GetCart())
	r.POST("/api/cart/items", app.AddCartItem())
	r.POST("/api/wishlist/toggle", app.ToggleWishlist())
	r.POST("/api/checkout", app.Checkout())
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGetProductNotFound(t *testing.T) {
	r := newTestRouter(newTestApp())

	w := doJSON(t, r, http.MethodGet, "/api/products/999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "product not found")
}

func TestAddCartItemOpensDrawer(t *testing.T) {
	r := newTestRouter(newTestApp())

	w := doJSON(t, r, http.MethodPost, "/api/cart/items", gin.H{"productId": 1, "size": "M"})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		ItemCount int     `json:"itemCount"`
		Subtotal  float64 `json:"subtotal"`
		IsOpen    bool    `json:"isOpen"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.ItemCount)
	assert.Equal(t, 500.0, resp.Subtotal)
	assert.True(t, resp.IsOpen)
}

func TestAddCartItemRequiresSize(t *testing.T) {
	r := newTestRouter(newTestApp())

	w := doJSON(t, r, http.MethodPost, "/api/cart/items", gin.H{"productId": 1})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAddCartItemUnknownProduct(t *testing.T) {
	r := newTestRouter(newTestApp())

	w := doJSON(t, r, http.MethodPost, "/api/cart/items", gin.H{"productId": 42, "size": "M"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestToggleWishlistRoundTrip(t *testing.T) {
	r := newTestRouter(newTestApp())

	w := doJSON(t, r, http.MethodPost, "/api/wishlist/toggle", gin.H{"productId": 2})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"inWishlist":true`)

	w = doJSON(t, r, http.MethodPost, "/api/wishlist/toggle", gin.H{"productId": 2})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"inWishlist":false`)
	assert.Contains(t, w.Body.String(), `"count":0`)
}

func TestCheckoutEmptyCartRejected(t *testing.T) {
	r := newTestRouter(newTestApp())

	w := doJSON(t, r, http.MethodPost, "/api/checkout", gin.H{"paymentMethod": "card"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "cart is empty")
}
