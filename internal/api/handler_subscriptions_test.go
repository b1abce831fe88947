package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupSubscriptionRouter() *gin.Engine {
	r := gin.New()
	handler := NewHandler(nil, nil, nil, nil, nil)
	r.PUT("/api/subscriptions", handler.PutSubscription)
	return r
}

func TestPutSubscription(t *testing.T) {
	router := setupSubscriptionRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/api/subscriptions", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"invalid request"}`, w.Body.String())
}

func TestSubscriptionLifecycle(t *testing.T) {
	f := newAPIFixture(t)
	machine := f.seedMachine("Linea Mini")
	endpoint := "https://push.example.com/abc"

	w := f.do(http.MethodPut, "/api/subscriptions",
		`{"endpoint":"`+endpoint+`","p256dh":"key","auth":"secret","coffee_machines":["`+machine+`"]}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = f.do(http.MethodGet, "/api/subscriptions?endpoint="+endpoint, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"coffee_machines":["`+machine+`"]}`, w.Body.String())

	// Re-subscribing replaces the machine filter.
	w = f.do(http.MethodPut, "/api/subscriptions",
		`{"endpoint":"`+endpoint+`","p256dh":"key2","auth":"secret"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	w = f.do(http.MethodGet, "/api/subscriptions?endpoint="+endpoint, "")
	assert.JSONEq(t, `{"coffee_machines":[]}`, w.Body.String())

	w = f.do(http.MethodPut, "/api/subscriptions",
		`{"endpoint":"`+endpoint+`","p256dh":"key2","auth":"secret","coffee_machines":["`+machine+`"]}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = f.do(http.MethodDelete, "/api/subscriptions", `{"endpoint":"`+endpoint+`"}`)
	assert.Equal(t, http.StatusNoContent, w.Code)

	var filterRows int64
	require.NoError(t, f.db.Table("subscription_coffee_machines").Count(&filterRows).Error)
	assert.Zero(t, filterRows, "machine filter rows go with the subscription")

	w = f.do(http.MethodGet, "/api/subscriptions?endpoint="+endpoint, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSubscriptionValidation(t *testing.T) {
	f := newAPIFixture(t)

	tests := []struct {
		name   string
		method string
		path   string
		body   string
	}{
		{"get without endpoint", http.MethodGet, "/api/subscriptions", ""},
		{"put without keys", http.MethodPut, "/api/subscriptions", `{"endpoint":"https://x"}`},
		{"delete without endpoint", http.MethodDelete, "/api/subscriptions", `{}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := f.do(tt.method, tt.path, tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.True(t, strings.Contains(w.Body.String(), "error"))
		})
	}
}

func TestGetVAPIDPublicKey(t *testing.T) {
	f := newAPIFixture(t)
	w := f.do(http.MethodGet, "/api/vapid_public_key", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	f = newAPIFixture(t, withVAPID("public"))
	w = f.do(http.MethodGet, "/api/vapid_public_key", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"public_key":"public"}`, w.Body.String())
}
