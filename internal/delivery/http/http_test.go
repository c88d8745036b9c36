package http_test

import (
	"encoding/json"
	"fmt"
	"io"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yolimar/configs"
	"yolimar/internal/auth"
	"yolimar/internal/delivery/http"
	"yolimar/internal/domain"
	"yolimar/internal/repository/filestore"
	"yolimar/internal/usecase"
	"yolimar/pkg/logger"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	log := logger.NewTestLogger()

	store, err := filestore.NewStore(t.TempDir(), log)
	require.NoError(t, err)

	cart := usecase.NewCartUsecase(store, "cart", log)
	checkout := usecase.NewCheckoutUsecase(cart, nil, "storefront.orders", "59171234567", log)
	verifier := auth.NewStaticVerifier([]configs.AdminUser{
		{Email: "admin@yolimar.com", Password: "admin123", Name: "Administrador", Role: domain.RoleAdmin},
	})
	session := usecase.NewAuthUsecase(verifier, store, "currentUser", log)

	return http.SetupRouter(cart, checkout, session, log)
}

func do(router *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

type cartBody struct {
	Items []domain.CartItem `json:"items"`
	Total float64           `json:"total"`
	Count int               `json:"count"`
}

func TestHealthCheck(t *testing.T) {
	router := newTestRouter(t)

	w := do(router, "GET", "/health", "")

	assert.Equal(t, nethttp.StatusOK, w.Code)
	var body map[string]string
	decode(t, w, &body)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "storefront-api", body["service"])
}

func TestCatalogEndpoints(t *testing.T) {
	router := newTestRouter(t)

	t.Run("full catalog", func(t *testing.T) {
		w := do(router, "GET", "/catalog", "")

		require.Equal(t, nethttp.StatusOK, w.Code)
		var products []map[string]interface{}
		decode(t, w, &products)
		assert.Len(t, products, 5)
		assert.Contains(t, products[0], "minPrice")
		assert.Contains(t, products[0], "colorNames")
		assert.Contains(t, products[0], "colorHex")
		assert.Contains(t, products[0], "totalStock")
	})

	t.Run("filter by garment type", func(t *testing.T) {
		w := do(router, "GET", "/catalog?type=polera", "")

		require.Equal(t, nethttp.StatusOK, w.Code)
		var products []map[string]interface{}
		decode(t, w, &products)
		require.Len(t, products, 2)
		for _, p := range products {
			assert.Equal(t, "polera", p["type"])
		}
	})

	t.Run("unknown type yields an empty list", func(t *testing.T) {
		w := do(router, "GET", "/catalog?type=chompa", "")

		require.Equal(t, nethttp.StatusOK, w.Code)
		assert.Equal(t, "[]", strings.TrimSpace(w.Body.String()))
	})

	t.Run("product by id", func(t *testing.T) {
		w := do(router, "GET", "/catalog/products/2", "")

		require.Equal(t, nethttp.StatusOK, w.Code)
		var product map[string]interface{}
		decode(t, w, &product)
		assert.Equal(t, "POL-001", product["code"])
	})

	t.Run("missing product", func(t *testing.T) {
		w := do(router, "GET", "/catalog/products/999", "")

		assert.Equal(t, nethttp.StatusNotFound, w.Code)
	})

	t.Run("non-numeric product id", func(t *testing.T) {
		w := do(router, "GET", "/catalog/products/abc", "")

		assert.Equal(t, nethttp.StatusBadRequest, w.Code)
	})

	t.Run("designs", func(t *testing.T) {
		w := do(router, "GET", "/designs", "")

		require.Equal(t, nethttp.StatusOK, w.Code)
		var designs []domain.Design
		decode(t, w, &designs)
		assert.Len(t, designs, 6)
	})
}

func TestGetPrice(t *testing.T) {
	router := newTestRouter(t)

	t.Run("quote without discount", func(t *testing.T) {
		w := do(router, "GET", "/price?type=polera&size=M", "")

		require.Equal(t, nethttp.StatusOK, w.Code)
		var quote map[string]interface{}
		decode(t, w, &quote)
		assert.Equal(t, 55.0, quote["basePrice"])
		assert.Equal(t, 55.0, quote["discountedPrice"])
		assert.Equal(t, false, quote["hasDiscount"])
	})

	t.Run("quote at the discount threshold", func(t *testing.T) {
		w := do(router, "GET", "/price?type=polera&size=M&quantity=3", "")

		require.Equal(t, nethttp.StatusOK, w.Code)
		var quote map[string]interface{}
		decode(t, w, &quote)
		assert.Equal(t, true, quote["hasDiscount"])
		assert.InDelta(t, 50.42, quote["discountedPrice"].(float64), 0.01)
		assert.InDelta(t, 13.75, quote["savings"].(float64), 0.01)
	})

	t.Run("designer quote", func(t *testing.T) {
		w := do(router, "GET", "/price?size=XL&custom=true", "")

		require.Equal(t, nethttp.StatusOK, w.Code)
		var quote map[string]interface{}
		decode(t, w, &quote)
		assert.Equal(t, 65.0, quote["basePrice"])
	})

	t.Run("invalid quantity", func(t *testing.T) {
		w := do(router, "GET", "/price?type=polera&size=M&quantity=0", "")
		assert.Equal(t, nethttp.StatusBadRequest, w.Code)

		w = do(router, "GET", "/price?type=polera&size=M&quantity=many", "")
		assert.Equal(t, nethttp.StatusBadRequest, w.Code)
	})
}

func TestCartEndpoints(t *testing.T) {
	t.Run("add a stock garment", func(t *testing.T) {
		router := newTestRouter(t)

		w := do(router, "POST", "/cart/items", `{"id":2,"color":"negro","size":"M","quantity":2}`)

		require.Equal(t, nethttp.StatusOK, w.Code)
		var cart cartBody
		decode(t, w, &cart)
		require.Len(t, cart.Items, 1)
		assert.Equal(t, "Polera Estampada Anime", cart.Items[0].Name)
		assert.Equal(t, 55.0, cart.Items[0].Price, "price must come from the catalog")
		assert.Equal(t, 2, cart.Count)
		assert.InDelta(t, 110.0, cart.Total, 0.0001)
	})

	t.Run("client cannot set the price", func(t *testing.T) {
		router := newTestRouter(t)

		w := do(router, "POST", "/cart/items", `{"id":2,"color":"negro","size":"M","quantity":1,"price":0.01}`)

		require.Equal(t, nethttp.StatusOK, w.Code)
		var cart cartBody
		decode(t, w, &cart)
		require.Len(t, cart.Items, 1)
		assert.Equal(t, 55.0, cart.Items[0].Price)
	})

	t.Run("unknown product", func(t *testing.T) {
		router := newTestRouter(t)

		w := do(router, "POST", "/cart/items", `{"id":999,"color":"negro","size":"M","quantity":1}`)

		assert.Equal(t, nethttp.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "not_found")
	})

	t.Run("selection the product does not carry", func(t *testing.T) {
		router := newTestRouter(t)

		w := do(router, "POST", "/cart/items", `{"id":2,"color":"negro","size":"XXL","quantity":1}`)

		assert.Equal(t, nethttp.StatusUnprocessableEntity, w.Code)
	})

	t.Run("out of stock variant", func(t *testing.T) {
		router := newTestRouter(t)

		w := do(router, "POST", "/cart/items", `{"id":4,"color":"negro","size":"L","quantity":1}`)

		assert.Equal(t, nethttp.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, w.Body.String(), "invalid_selection")
	})

	t.Run("unknown color fails validation", func(t *testing.T) {
		router := newTestRouter(t)

		w := do(router, "POST", "/cart/items", `{"id":2,"color":"fucsia","size":"M","quantity":1}`)

		assert.Equal(t, nethttp.StatusUnprocessableEntity, w.Code)
	})

	t.Run("add a designer garment", func(t *testing.T) {
		router := newTestRouter(t)

		w := do(router, "POST", "/cart/items", `{"isCustom":true,"designId":1,"color":"blanco","size":"L","quantity":1}`)

		require.Equal(t, nethttp.StatusOK, w.Code)
		var cart cartBody
		decode(t, w, &cart)
		require.Len(t, cart.Items, 1)
		assert.True(t, cart.Items[0].IsCustom)
		assert.Equal(t, "Dragon Rojo", cart.Items[0].DesignName)
		assert.Equal(t, 60.0, cart.Items[0].Price)
		assert.Positive(t, cart.Items[0].ID)
	})

	t.Run("unknown design", func(t *testing.T) {
		router := newTestRouter(t)

		w := do(router, "POST", "/cart/items", `{"isCustom":true,"designId":99,"color":"blanco","size":"L","quantity":1}`)

		assert.Equal(t, nethttp.StatusUnprocessableEntity, w.Code)
	})

	t.Run("repeated add merges the line", func(t *testing.T) {
		router := newTestRouter(t)
		payload := `{"id":2,"color":"negro","size":"M","quantity":1}`

		do(router, "POST", "/cart/items", payload)
		w := do(router, "POST", "/cart/items", payload)

		var cart cartBody
		decode(t, w, &cart)
		require.Len(t, cart.Items, 1)
		assert.Equal(t, 2, cart.Items[0].Quantity)
	})

	t.Run("update quantity and remove via zero", func(t *testing.T) {
		router := newTestRouter(t)
		do(router, "POST", "/cart/items", `{"id":2,"color":"negro","size":"M","quantity":1}`)

		w := do(router, "PATCH", "/cart/items", `{"id":2,"color":"negro","size":"M","quantity":5}`)
		var cart cartBody
		decode(t, w, &cart)
		assert.Equal(t, 5, cart.Count)

		w = do(router, "PATCH", "/cart/items", `{"id":2,"color":"negro","size":"M","quantity":0}`)
		decode(t, w, &cart)
		assert.Empty(t, cart.Items)
	})

	t.Run("remove item", func(t *testing.T) {
		router := newTestRouter(t)
		do(router, "POST", "/cart/items", `{"id":2,"color":"negro","size":"M","quantity":1}`)
		do(router, "POST", "/cart/items", `{"id":3,"color":"azul","size":"S","quantity":1}`)

		w := do(router, "DELETE", "/cart/items?id=2&color=negro&size=M", "")

		require.Equal(t, nethttp.StatusOK, w.Code)
		var cart cartBody
		decode(t, w, &cart)
		require.Len(t, cart.Items, 1)
		assert.Equal(t, 3, cart.Items[0].ID)
	})

	t.Run("remove requires the full selection", func(t *testing.T) {
		router := newTestRouter(t)

		w := do(router, "DELETE", "/cart/items?id=2&color=negro", "")

		assert.Equal(t, nethttp.StatusBadRequest, w.Code)
	})

	t.Run("clear cart", func(t *testing.T) {
		router := newTestRouter(t)
		do(router, "POST", "/cart/items", `{"id":2,"color":"negro","size":"M","quantity":3}`)

		w := do(router, "DELETE", "/cart", "")

		require.Equal(t, nethttp.StatusOK, w.Code)
		var cart cartBody
		decode(t, w, &cart)
		assert.Empty(t, cart.Items)
		assert.Zero(t, cart.Total)
	})

	t.Run("empty cart serializes items as a list", func(t *testing.T) {
		router := newTestRouter(t)

		w := do(router, "GET", "/cart", "")

		require.Equal(t, nethttp.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"items":[]`)
		assert.NotEmpty(t, w.Header().Get("X-Execution-Time-MS"))
	})
}

func TestCheckoutEndpoint(t *testing.T) {
	t.Run("empty cart conflicts", func(t *testing.T) {
		router := newTestRouter(t)

		w := do(router, "POST", "/checkout", "")

		assert.Equal(t, nethttp.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "empty_cart")
	})

	t.Run("hand-off keeps the cart", func(t *testing.T) {
		router := newTestRouter(t)
		do(router, "POST", "/cart/items", `{"id":2,"color":"negro","size":"M","quantity":2}`)

		w := do(router, "POST", "/checkout", "")

		require.Equal(t, nethttp.StatusOK, w.Code)
		var result usecase.CheckoutResult
		decode(t, w, &result)
		assert.NotEmpty(t, result.Order.Reference)
		assert.InDelta(t, 110.0, result.Order.Total, 0.0001)
		assert.True(t, strings.HasPrefix(result.URL, "https://wa.me/59171234567?text="))

		w = do(router, "GET", "/cart", "")
		var cart cartBody
		decode(t, w, &cart)
		assert.Len(t, cart.Items, 1)
	})
}

func TestAuthEndpoints(t *testing.T) {
	login := fmt.Sprintf(`{"email":%q,"password":%q}`, "admin@yolimar.com", "admin123")

	t.Run("session lifecycle", func(t *testing.T) {
		router := newTestRouter(t)

		w := do(router, "GET", "/auth/session", "")
		assert.Equal(t, nethttp.StatusUnauthorized, w.Code)

		w = do(router, "POST", "/auth/login", login)
		require.Equal(t, nethttp.StatusOK, w.Code)
		var user domain.User
		decode(t, w, &user)
		assert.Equal(t, domain.RoleAdmin, user.Role)

		w = do(router, "GET", "/auth/session", "")
		assert.Equal(t, nethttp.StatusOK, w.Code)

		w = do(router, "POST", "/auth/logout", "")
		assert.Equal(t, nethttp.StatusOK, w.Code)

		w = do(router, "GET", "/auth/session", "")
		assert.Equal(t, nethttp.StatusUnauthorized, w.Code)
	})

	t.Run("wrong credentials", func(t *testing.T) {
		router := newTestRouter(t)

		w := do(router, "POST", "/auth/login", `{"email":"admin@yolimar.com","password":"nope"}`)

		assert.Equal(t, nethttp.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "invalid_credentials")
	})

	t.Run("malformed login payload", func(t *testing.T) {
		router := newTestRouter(t)

		w := do(router, "POST", "/auth/login", `{"email":"not-an-email"}`)

		assert.Equal(t, nethttp.StatusBadRequest, w.Code)
	})
}
