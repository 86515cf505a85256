package handlers

import (
	"net/http"
	"testing"

	"github.com/dimitrije/parking-control/internal/testutil"
	"github.com/m1z23r/drift/pkg/drift"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupHealthTest(t *testing.T) (*testutil.MockPinger, *testutil.HTTPTestClient) {
	t.Helper()
	pinger := new(testutil.MockPinger)
	handler := NewHealthHandler(pinger)

	app := drift.New()
	app.Get("/health", handler.Check)

	return pinger, testutil.NewHTTPTestClient(t, app)
}

func TestHealthHandler_Check_OK(t *testing.T) {
	pinger, client := setupHealthTest(t)
	pinger.On("Ping", mock.Anything).Return(nil)

	rec := client.GET("/health")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	pinger.AssertExpectations(t)
}

func TestHealthHandler_Check_DatabaseDown(t *testing.T) {
	pinger, client := setupHealthTest(t)
	pinger.On("Ping", mock.Anything).Return(assert.AnError)

	rec := client.GET("/health")

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.JSONEq(t, `{"status":"unavailable"}`, rec.Body.String())
	pinger.AssertExpectations(t)
}
