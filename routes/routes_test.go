package routes

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/a12frin-shagufta/vanshika-pearl/cart"
	"github.com/a12frin-shagufta/vanshika-pearl/catalog"
	"github.com/a12frin-shagufta/vanshika-pearl/checkout"
	catalogControllers "github.com/a12frin-shagufta/vanshika-pearl/controllers/catalog"
)

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	SetupRoutes(r, Deps{
		Cart:     cart.NewStore(nil),
		Catalog:  catalog.NewStore(),
		Checkout: checkout.NewService("http://backend.invalid"),
		Refresh:  catalogControllers.NewRefreshHub(),
	})
	return r
}

func do(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCartEndpoints(t *testing.T) {
	r := testRouter()

	w := do(r, http.MethodPost, "/cart/", `{"product_id":"p1","quantity":2,"variant_id":"v1"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	// Same selection merges instead of duplicating.
	w = do(r, http.MethodPost, "/cart/", `{"product_id":"p1","quantity":3,"variant_id":"v1"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = do(r, http.MethodGet, "/cart/count", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"count":5}`, w.Body.String())

	w = do(r, http.MethodPut, "/cart/p1__v1__fn___ln_", `{"quantity":0}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodGet, "/cart/count", "")
	assert.JSONEq(t, `{"count":1}`, w.Body.String())

	w = do(r, http.MethodDelete, "/cart/p1__v1__fn___ln_", "")
	require.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodGet, "/cart/count", "")
	assert.JSONEq(t, `{"count":0}`, w.Body.String())
}

func TestAddToCartValidation(t *testing.T) {
	r := testRouter()

	w := do(r, http.MethodPost, "/cart/", `{"quantity":2}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProductLookupMissDuringLoading(t *testing.T) {
	r := testRouter()

	w := do(r, http.MethodGet, "/storefront/products/p1", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(r, http.MethodGet, "/storefront/products", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"loading":true`)
}

func TestCheckoutRejectsEmptyCart(t *testing.T) {
	r := testRouter()

	w := do(r, http.MethodPost, "/checkout/", `{
		"name":"Ada","email":"ada@example.com","address":"1 Main St",
		"city":"Boston","state":"MA","country":"US","postal_code":"02101"
	}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "empty")
}

func TestCheckoutRejectsUnsupportedCountry(t *testing.T) {
	r := testRouter()

	w := do(r, http.MethodPost, "/checkout/", `{
		"name":"Ada","email":"ada@example.com","address":"1 Main St",
		"city":"Paris","state":"IDF","country":"FR","postal_code":"75001"
	}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
