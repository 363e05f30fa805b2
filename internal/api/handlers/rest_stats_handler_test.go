package handlers_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/goldenharvestfarm/goldenharvest-backend/internal/api/handlers"
	"github.com/goldenharvestfarm/goldenharvest-backend/internal/models"
)

func TestRestStatsHandler_GetStats(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockStatsSvc := new(MockStatsService)
	handler := handlers.NewRestStatsHandler(mockStatsSvc)

	r := gin.New()
	r.GET("/api/admin/stats", handler.GetStats)

	stats := &models.Stats{
		TotalListings:  10,
		ActiveListings: 7,
		TotalMessages:  3,
		TotalChickens:  120,
		TotalGoats:     45,
	}
	mockStatsSvc.On("GetStats", mock.Anything).Return(stats, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/admin/stats", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var respBody models.Stats
	err := json.Unmarshal(w.Body.Bytes(), &respBody)
	assert.NoError(t, err)
	assert.Equal(t, *stats, respBody)
	mockStatsSvc.AssertExpectations(t)
}

func TestRestStatsHandler_GetStats_Error(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockStatsSvc := new(MockStatsService)
	handler := handlers.NewRestStatsHandler(mockStatsSvc)

	r := gin.New()
	r.GET("/api/admin/stats", handler.GetStats)

	mockStatsSvc.On("GetStats", mock.Anything).Return(nil, errors.New("store unavailable"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/admin/stats", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	mockStatsSvc.AssertExpectations(t)
}
