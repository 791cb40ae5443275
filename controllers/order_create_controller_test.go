package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vaporhouse-br/VaporHouse/models"
)

func productFixture(name string, price float64, stock int) models.Product {
	return models.Product{
		ID:       uuid.New(),
		Name:     name,
		Price:    price,
		Stock:    stock,
		IsActive: true,
	}
}

func TestBuildOrderItems(t *testing.T) {
	pod := productFixture("Pod Descartável Mango Ice", 35.00, 10)
	juice := productFixture("Juice Nic Salt 30ml", 5.00, 3)
	products := map[uuid.UUID]models.Product{
		pod.ID:   pod,
		juice.ID: juice,
	}

	t.Run("computes subtotal from catalog prices", func(t *testing.T) {
		items, subtotal, err := buildOrderItems([]OrderItemRequest{
			{ID: pod.ID.String(), Quantity: 1, Flavor: "Mango Ice"},
			{ID: juice.ID.String(), Quantity: 1},
		}, products)

		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, 40.00, subtotal)
		assert.Equal(t, "Pod Descartável Mango Ice", items[0].ProductName)
		assert.Equal(t, 35.00, items[0].Price)
		assert.Equal(t, "Mango Ice", items[0].Flavor)
		assert.Equal(t, "", items[1].Flavor)
	})

	t.Run("unknown product id", func(t *testing.T) {
		missing := uuid.New()
		_, _, err := buildOrderItems([]OrderItemRequest{
			{ID: missing.String(), Quantity: 1},
		}, products)

		require.Error(t, err)
		assert.Equal(t, "Product "+missing.String()+" not found", err.Error())
	})

	t.Run("insufficient stock", func(t *testing.T) {
		_, _, err := buildOrderItems([]OrderItemRequest{
			{ID: juice.ID.String(), Quantity: 5},
		}, products)

		require.Error(t, err)
		assert.Equal(t, "Insufficient stock for Juice Nic Salt 30ml. Available: 3, Requested: 5", err.Error())
	})

	t.Run("duplicate lines count against stock together", func(t *testing.T) {
		_, _, err := buildOrderItems([]OrderItemRequest{
			{ID: juice.ID.String(), Quantity: 2},
			{ID: juice.ID.String(), Quantity: 2},
		}, products)

		require.Error(t, err)
		assert.Equal(t, "Insufficient stock for Juice Nic Salt 30ml. Available: 3, Requested: 4", err.Error())
	})

	t.Run("quantity multiplies price", func(t *testing.T) {
		items, subtotal, err := buildOrderItems([]OrderItemRequest{
			{ID: pod.ID.String(), Quantity: 3},
		}, products)

		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, 105.00, subtotal)
		assert.Equal(t, 3, items[0].Quantity)
	})
}

func TestEvaluateDiscount(t *testing.T) {
	now := time.Now()
	base := models.Discount{
		ID:         uuid.New(),
		Code:       "BEMVINDO10",
		Type:       models.DiscountTypePercent,
		Value:      10,
		ValidUntil: now.Add(24 * time.Hour),
		UsageLimit: 100,
		Active:     true,
	}

	t.Run("valid discount passes", func(t *testing.T) {
		d := base
		assert.NoError(t, evaluateDiscount(&d, now, 0, false))
	})

	t.Run("expired", func(t *testing.T) {
		d := base
		d.ValidUntil = now.Add(-time.Hour)
		err := evaluateDiscount(&d, now, 0, false)
		require.Error(t, err)
		assert.Equal(t, "Discount code expired", err.Error())
	})

	t.Run("usage limit reached", func(t *testing.T) {
		d := base
		err := evaluateDiscount(&d, now, 100, false)
		require.Error(t, err)
		assert.Equal(t, "Discount code usage limit reached", err.Error())
	})

	t.Run("already used by this user", func(t *testing.T) {
		d := base
		err := evaluateDiscount(&d, now, 10, true)
		require.Error(t, err)
		assert.Equal(t, "You have already used this discount code", err.Error())
	})

	t.Run("expiry beats usage limit", func(t *testing.T) {
		d := base
		d.ValidUntil = now.Add(-time.Hour)
		err := evaluateDiscount(&d, now, 100, true)
		require.Error(t, err)
		assert.Equal(t, "Discount code expired", err.Error())
	})
}

func TestDiscountAmount(t *testing.T) {
	t.Run("percent", func(t *testing.T) {
		d := models.Discount{Type: models.DiscountTypePercent, Value: 10}
		assert.Equal(t, 4.00, discountAmount(&d, 40.00))
	})

	t.Run("fixed", func(t *testing.T) {
		d := models.Discount{Type: models.DiscountTypeFixed, Value: 15}
		assert.Equal(t, 15.00, discountAmount(&d, 40.00))
	})

	t.Run("fixed discount capped at subtotal", func(t *testing.T) {
		d := models.Discount{Type: models.DiscountTypeFixed, Value: 50}
		assert.Equal(t, 40.00, discountAmount(&d, 40.00))
	})

	t.Run("full percent zeroes the order", func(t *testing.T) {
		d := models.Discount{Type: models.DiscountTypePercent, Value: 100}
		assert.Equal(t, 40.00, discountAmount(&d, 40.00))
	})
}

func checkoutRouter(withUser bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/v1/orders", func(c *gin.Context) {
		if withUser {
			c.Set("user", models.User{Username: "tester", Email: "tester@example.com"})
		}
		CreateOrder(c)
	})
	return router
}

func TestCreateOrderRejectsAnonymous(t *testing.T) {
	router := checkoutRouter(false)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Unauthorized", body["error"])
}

func TestCreateOrderRejectsMalformedPayload(t *testing.T) {
	router := checkoutRouter(true)

	cases := []struct {
		name    string
		payload string
	}{
		{"empty object", `{}`},
		{"empty items", `{"items":[],"address":{"street":"Rua A","number":"1","neighborhood":"Centro","city":"Recife"},"paymentMethod":"pix"}`},
		{"bad payment method", `{"items":[{"id":"` + uuid.New().String() + `","quantity":1}],"address":{"street":"Rua A","number":"1","neighborhood":"Centro","city":"Recife"},"paymentMethod":"cartao"}`},
		{"quantity above cap", `{"items":[{"id":"` + uuid.New().String() + `","quantity":101}],"address":{"street":"Rua A","number":"1","neighborhood":"Centro","city":"Recife"},"paymentMethod":"pix"}`},
		{"non uuid product id", `{"items":[{"id":"not-a-uuid","quantity":1}],"address":{"street":"Rua A","number":"1","neighborhood":"Centro","city":"Recife"},"paymentMethod":"pix"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewBufferString(tc.payload))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)

			var body map[string]interface{}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, "Invalid request data", body["error"])
			assert.NotEmpty(t, body["details"])
		})
	}
}

func TestCreateOrderRejectsBadChangeAmount(t *testing.T) {
	router := checkoutRouter(true)

	payload := `{"items":[{"id":"` + uuid.New().String() + `","quantity":1}],` +
		`"address":{"street":"Rua A","number":"1","neighborhood":"Centro","city":"Recife"},` +
		`"paymentMethod":"dinheiro","changeAmount":"cinquenta"}`

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Invalid request data", body["error"])
}
