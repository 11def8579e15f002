//go:build !integration

package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/forkful/cart-service/internal/domain/dto"
	"github.com/forkful/cart-service/internal/middleware"
	"github.com/forkful/cart-service/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/currency"
)

// setupCartTestRouter builds a router with cart routes and a fixed session ID,
// standing in for the session middleware.
func setupCartTestRouter(t *testing.T, sessionID string, checkout service.CheckoutService) (*gin.Engine, *service.SessionStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	sessions := service.NewSessionStore(100, time.Hour, currency.USD)
	t.Cleanup(sessions.Stop)
	menu := service.NewMenuService(nil)

	router := gin.New()
	api := router.Group("/api")
	api.Use(func(c *gin.Context) {
		c.Set(middleware.SessionIDKey, sessionID)
		c.Next()
	})
	NewCartRoutes(sessions, menu, checkout, nil).RegisterRoutes(api)
	return router, sessions
}

// cartData decodes the "data" envelope member of a success response.
func cartData(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.NoError(t, json.Unmarshal(envelope.Data, out))
}

type cartSnapshotJSON struct {
	Lines []struct {
		OfferingID  string `json:"offering_id"`
		IdentityKey string `json:"identity_key"`
		Quantity    int    `json:"quantity"`
		UnitPrice   struct {
			Amount   string `json:"amount"`
			Currency string `json:"currency"`
		} `json:"unit_price"`
	} `json:"lines"`
	TotalItems  int `json:"total_items"`
	TotalAmount struct {
		Amount   string `json:"amount"`
		Currency string `json:"currency"`
	} `json:"total_amount"`
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCartHandler_AddItem(t *testing.T) {
	t.Run("adds a plain item", func(t *testing.T) {
		router, _ := setupCartTestRouter(t, "sess-1", nil)

		w := postJSON(router, "/api/cart/items", `{"offering_id": "dish-madras-curry", "quantity": 2}`)

		require.Equal(t, http.StatusCreated, w.Code)

		var result struct {
			Line struct {
				OfferingID  string `json:"offering_id"`
				IdentityKey string `json:"identity_key"`
				Quantity    int    `json:"quantity"`
			} `json:"line"`
			Cart cartSnapshotJSON `json:"cart"`
		}
		cartData(t, w, &result)

		assert.Equal(t, "dish-madras-curry", result.Line.OfferingID)
		assert.Equal(t, 2, result.Line.Quantity)
		assert.Equal(t, "plain:dish-madras-curry", result.Line.IdentityKey)
		assert.Equal(t, 2, result.Cart.TotalItems)
		assert.Equal(t, "2500", result.Cart.TotalAmount.Amount)
	})

	t.Run("merges repeated adds", func(t *testing.T) {
		router, _ := setupCartTestRouter(t, "sess-1", nil)

		postJSON(router, "/api/cart/items", `{"offering_id": "dish-madras-curry", "quantity": 2}`)
		w := postJSON(router, "/api/cart/items", `{"offering_id": "dish-madras-curry", "quantity": 3}`)

		require.Equal(t, http.StatusCreated, w.Code)

		var result struct {
			Line struct {
				Quantity int `json:"quantity"`
			} `json:"line"`
			Cart cartSnapshotJSON `json:"cart"`
		}
		cartData(t, w, &result)
		assert.Equal(t, 5, result.Line.Quantity)
		assert.Len(t, result.Cart.Lines, 1)
	})

	t.Run("customized add with computed total", func(t *testing.T) {
		router, _ := setupCartTestRouter(t, "sess-1", nil)

		body := `{
			"offering_id": "dish-madras-curry",
			"quantity": 2,
			"customization": {
				"size": "large",
				"spice_level": "hot",
				"configured_quantity": 2,
				"computed_total": "2750"
			}
		}`
		w := postJSON(router, "/api/cart/items", body)

		require.Equal(t, http.StatusCreated, w.Code)

		var result struct {
			Line struct {
				UnitPrice struct {
					Amount string `json:"amount"`
				} `json:"unit_price"`
			} `json:"line"`
		}
		cartData(t, w, &result)
		assert.Equal(t, "1375", result.Line.UnitPrice.Amount)
	})

	t.Run("unknown offering", func(t *testing.T) {
		router, _ := setupCartTestRouter(t, "sess-1", nil)

		w := postJSON(router, "/api/cart/items", `{"offering_id": "dish-unknown", "quantity": 1}`)

		assert.Equal(t, http.StatusNotFound, w.Code)
		var errResp dto.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &errResp))
		assert.Equal(t, dto.ErrCodeNotFound, errResp.Error)
	})

	t.Run("zero quantity", func(t *testing.T) {
		router, _ := setupCartTestRouter(t, "sess-1", nil)

		w := postJSON(router, "/api/cart/items", `{"offering_id": "dish-madras-curry", "quantity": 0}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("negative quantity", func(t *testing.T) {
		router, _ := setupCartTestRouter(t, "sess-1", nil)

		w := postJSON(router, "/api/cart/items", `{"offering_id": "dish-madras-curry", "quantity": -2}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		router, _ := setupCartTestRouter(t, "sess-1", nil)

		w := postJSON(router, "/api/cart/items", `{"offering_id": }`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("computed total without configured quantity", func(t *testing.T) {
		router, _ := setupCartTestRouter(t, "sess-1", nil)

		body := `{
			"offering_id": "dish-madras-curry",
			"quantity": 1,
			"customization": {"size": "large", "computed_total": "2750"}
		}`
		w := postJSON(router, "/api/cart/items", body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCartHandler_GetCart(t *testing.T) {
	t.Run("session without cart gets empty snapshot", func(t *testing.T) {
		router, _ := setupCartTestRouter(t, "sess-absent", nil)

		req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var snapshot cartSnapshotJSON
		cartData(t, w, &snapshot)
		assert.Empty(t, snapshot.Lines)
		assert.Zero(t, snapshot.TotalItems)
		assert.Equal(t, "0", snapshot.TotalAmount.Amount)
	})

	t.Run("returns lines in insertion order", func(t *testing.T) {
		router, _ := setupCartTestRouter(t, "sess-1", nil)

		postJSON(router, "/api/cart/items", `{"offering_id": "dish-madras-curry", "quantity": 1}`)
		postJSON(router, "/api/cart/items", `{"offering_id": "dish-garlic-naan", "quantity": 2}`)

		req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var snapshot cartSnapshotJSON
		cartData(t, w, &snapshot)
		require.Len(t, snapshot.Lines, 2)
		assert.Equal(t, "dish-madras-curry", snapshot.Lines[0].OfferingID)
		assert.Equal(t, "dish-garlic-naan", snapshot.Lines[1].OfferingID)
		assert.Equal(t, 3, snapshot.TotalItems)
	})
}

func TestCartHandler_SetQuantity(t *testing.T) {
	t.Run("sets quantity", func(t *testing.T) {
		router, _ := setupCartTestRouter(t, "sess-1", nil)
		postJSON(router, "/api/cart/items", `{"offering_id": "dish-madras-curry", "quantity": 2}`)

		req := httptest.NewRequest(http.MethodPut, "/api/cart/items/plain:dish-madras-curry",
			bytes.NewBufferString(`{"quantity": 7}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var snapshot cartSnapshotJSON
		cartData(t, w, &snapshot)
		require.Len(t, snapshot.Lines, 1)
		assert.Equal(t, 7, snapshot.Lines[0].Quantity)
		assert.Equal(t, 7, snapshot.TotalItems)
	})

	t.Run("zero quantity removes the line", func(t *testing.T) {
		router, _ := setupCartTestRouter(t, "sess-1", nil)
		postJSON(router, "/api/cart/items", `{"offering_id": "dish-madras-curry", "quantity": 2}`)

		req := httptest.NewRequest(http.MethodPut, "/api/cart/items/plain:dish-madras-curry",
			bytes.NewBufferString(`{"quantity": 0}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var snapshot cartSnapshotJSON
		cartData(t, w, &snapshot)
		assert.Empty(t, snapshot.Lines)
	})

	t.Run("negative quantity rejected", func(t *testing.T) {
		router, _ := setupCartTestRouter(t, "sess-1", nil)
		postJSON(router, "/api/cart/items", `{"offering_id": "dish-madras-curry", "quantity": 2}`)

		req := httptest.NewRequest(http.MethodPut, "/api/cart/items/plain:dish-madras-curry",
			bytes.NewBufferString(`{"quantity": -1}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown line", func(t *testing.T) {
		router, _ := setupCartTestRouter(t, "sess-1", nil)
		postJSON(router, "/api/cart/items", `{"offering_id": "dish-madras-curry", "quantity": 2}`)

		req := httptest.NewRequest(http.MethodPut, "/api/cart/items/plain:ghost",
			bytes.NewBufferString(`{"quantity": 3}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("no cart for session", func(t *testing.T) {
		router, _ := setupCartTestRouter(t, "sess-empty", nil)

		req := httptest.NewRequest(http.MethodPut, "/api/cart/items/plain:dish-madras-curry",
			bytes.NewBufferString(`{"quantity": 3}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestCartHandler_RemoveLine(t *testing.T) {
	t.Run("removes a line", func(t *testing.T) {
		router, _ := setupCartTestRouter(t, "sess-1", nil)
		postJSON(router, "/api/cart/items", `{"offering_id": "dish-madras-curry", "quantity": 2}`)
		postJSON(router, "/api/cart/items", `{"offering_id": "dish-garlic-naan", "quantity": 1}`)

		req := httptest.NewRequest(http.MethodDelete, "/api/cart/items/plain:dish-madras-curry", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var snapshot cartSnapshotJSON
		cartData(t, w, &snapshot)
		require.Len(t, snapshot.Lines, 1)
		assert.Equal(t, "dish-garlic-naan", snapshot.Lines[0].OfferingID)
	})

	t.Run("removing an absent line is a no-op", func(t *testing.T) {
		router, _ := setupCartTestRouter(t, "sess-1", nil)
		postJSON(router, "/api/cart/items", `{"offering_id": "dish-madras-curry", "quantity": 2}`)

		req := httptest.NewRequest(http.MethodDelete, "/api/cart/items/plain:ghost", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var snapshot cartSnapshotJSON
		cartData(t, w, &snapshot)
		assert.Len(t, snapshot.Lines, 1)
		assert.Equal(t, 2, snapshot.TotalItems)
	})
}

func TestCartHandler_ClearCart(t *testing.T) {
	router, sessions := setupCartTestRouter(t, "sess-1", nil)
	postJSON(router, "/api/cart/items", `{"offering_id": "dish-madras-curry", "quantity": 2}`)
	postJSON(router, "/api/cart/items", `{"offering_id": "dish-garlic-naan", "quantity": 1}`)

	req := httptest.NewRequest(http.MethodDelete, "/api/cart", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var snapshot cartSnapshotJSON
	cartData(t, w, &snapshot)
	assert.Empty(t, snapshot.Lines)
	assert.Zero(t, snapshot.TotalItems)

	// The cleared session is dropped from the store; the next mutation
	// recreates an empty cart under the same session.
	assert.Zero(t, sessions.Len())

	w2 := postJSON(router, "/api/cart/items", `{"offering_id": "dish-samosa", "quantity": 1}`)
	require.Equal(t, http.StatusCreated, w2.Code)
	assert.Equal(t, 1, sessions.Len())
}

func TestCartHandler_GetQuantity(t *testing.T) {
	t.Run("plain variant", func(t *testing.T) {
		router, _ := setupCartTestRouter(t, "sess-1", nil)
		postJSON(router, "/api/cart/items", `{"offering_id": "dish-madras-curry", "quantity": 3}`)

		req := httptest.NewRequest(http.MethodGet, "/api/cart/quantity?offering_id=dish-madras-curry", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var result struct {
			OfferingID  string `json:"offering_id"`
			IdentityKey string `json:"identity_key"`
			Quantity    int    `json:"quantity"`
		}
		cartData(t, w, &result)
		assert.Equal(t, 3, result.Quantity)
		assert.Equal(t, "plain:dish-madras-curry", result.IdentityKey)
	})

	t.Run("customized variant is separate", func(t *testing.T) {
		router, _ := setupCartTestRouter(t, "sess-1", nil)
		postJSON(router, "/api/cart/items",
			`{"offering_id": "dish-madras-curry", "quantity": 2, "customization": {"spice_level": "hot"}}`)

		path := "/api/cart/quantity?offering_id=dish-madras-curry&spice_level=hot"
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var result struct {
			Quantity int `json:"quantity"`
		}
		cartData(t, w, &result)
		assert.Equal(t, 2, result.Quantity)

		// The plain variant of the same offering reads zero.
		req = httptest.NewRequest(http.MethodGet, "/api/cart/quantity?offering_id=dish-madras-curry", nil)
		w = httptest.NewRecorder()
		router.ServeHTTP(w, req)
		cartData(t, w, &result)
		assert.Zero(t, result.Quantity)
	})

	t.Run("missing offering_id", func(t *testing.T) {
		router, _ := setupCartTestRouter(t, "sess-1", nil)

		req := httptest.NewRequest(http.MethodGet, "/api/cart/quantity", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("no cart reads zero", func(t *testing.T) {
		router, _ := setupCartTestRouter(t, "sess-absent", nil)

		req := httptest.NewRequest(http.MethodGet, "/api/cart/quantity?offering_id=dish-madras-curry", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var result struct {
			Quantity int `json:"quantity"`
		}
		cartData(t, w, &result)
		assert.Zero(t, result.Quantity)
	})
}

func TestCartHandler_SessionIsolation(t *testing.T) {
	gin.SetMode(gin.TestMode)

	sessions := service.NewSessionStore(100, time.Hour, currency.USD)
	t.Cleanup(sessions.Stop)
	menu := service.NewMenuService(nil)

	// Session ID comes from a header so one router can serve both sessions.
	router := gin.New()
	api := router.Group("/api")
	api.Use(func(c *gin.Context) {
		c.Set(middleware.SessionIDKey, c.GetHeader("X-Test-Session"))
		c.Next()
	})
	NewCartRoutes(sessions, menu, nil, nil).RegisterRoutes(api)

	add := func(session string) {
		req := httptest.NewRequest(http.MethodPost, "/api/cart/items",
			bytes.NewBufferString(`{"offering_id": "dish-madras-curry", "quantity": 1}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Test-Session", session)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	add("sess-a")
	add("sess-a")
	add("sess-b")

	get := func(session string) cartSnapshotJSON {
		req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
		req.Header.Set("X-Test-Session", session)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)
		var snapshot cartSnapshotJSON
		cartData(t, w, &snapshot)
		return snapshot
	}

	assert.Equal(t, 2, get("sess-a").TotalItems)
	assert.Equal(t, 1, get("sess-b").TotalItems)
}

func TestCartRoutes_CheckoutOnlyWhenConfigured(t *testing.T) {
	router, _ := setupCartTestRouter(t, "sess-1", nil)

	w := postJSON(router, "/api/checkout", "")
	assert.Equal(t, http.StatusNotFound, w.Code, fmt.Sprintf("checkout route absent without a backend, got %d", w.Code))
}
