package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goldenharvestfarm/goldenharvest-backend/internal/api"
	"github.com/goldenharvestfarm/goldenharvest-backend/internal/config"
	"github.com/goldenharvestfarm/goldenharvest-backend/internal/models"
	"github.com/goldenharvestfarm/goldenharvest-backend/internal/utils"
)

const adminSecret = "router-test-admin-secret"

func setupTestRouter(t *testing.T, dbName string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	db := utils.SetupTestDB(t, dbName, "listings", "contact_messages")
	cfg := &config.Config{
		AdminSecret: adminSecret,
		StaticDir:   "../../web",
	}
	return api.SetupRouter(cfg, db)
}

// Create with a wrong token must fail, with the correct token must persist,
// and the new listing must then be visible in the public goat browse.
func TestRouter_AdminCreateScenario(t *testing.T) {
	r := setupTestRouter(t, "testdb_router_admin_create")

	body := `{
		"animalType": "goat",
		"breed": "Boer",
		"quantity": 8,
		"pricePerUnit": 85000,
		"description": "Purebred Boer goats",
		"image": "https://example.com/boer.jpg",
		"healthStatus": "Vet checked",
		"location": "Nyagatare",
		"phone": "+250788000020"
	}`

	// Wrong token
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/admin/listings", bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer wrong-token")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Correct token
	w = httptest.NewRecorder()
	req, _ = http.NewRequest("POST", "/api/admin/listings", bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+adminSecret)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Listing
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, models.StatusActive, created.Status)
	assert.False(t, created.ID.IsZero())

	// The new listing appears in the public goat browse
	w = httptest.NewRecorder()
	req, _ = http.NewRequest("GET", "/api/listings?animalType=goat", nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var listings []models.Listing
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listings))
	found := false
	for _, l := range listings {
		if l.ID == created.ID {
			found = true
		}
	}
	assert.True(t, found)
}

func TestRouter_SeedAndStats(t *testing.T) {
	r := setupTestRouter(t, "testdb_router_seed_stats")

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/seed", nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	req, _ = http.NewRequest("GET", "/api/admin/stats", nil)
	req.Header.Set("Authorization", "Bearer "+adminSecret)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var stats models.Stats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.EqualValues(t, 6, stats.TotalListings)
	assert.EqualValues(t, 6, stats.ActiveListings)
	assert.EqualValues(t, 160, stats.TotalChickens) // 50 + 80 + 30
	assert.EqualValues(t, 57, stats.TotalGoats)     // 12 + 20 + 25
}

func TestRouter_UnknownPathReturnsJSONNotFound(t *testing.T) {
	r := setupTestRouter(t, "testdb_router_notfound")

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/nope", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	var respBody map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &respBody))
	assert.Contains(t, respBody, "message")
}

func TestRouter_ContactSubmission(t *testing.T) {
	r := setupTestRouter(t, "testdb_router_contact")

	body := `{"name":"Alice","email":"alice@example.com","phone":"+250788000010","subject":"Goats","message":"Do you deliver?"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/contact", bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	// Messages are visible to the admin, and only with the correct token
	w = httptest.NewRecorder()
	req, _ = http.NewRequest("GET", "/api/admin/messages", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = httptest.NewRecorder()
	req, _ = http.NewRequest("GET", "/api/admin/messages", nil)
	req.Header.Set("Authorization", "Bearer "+adminSecret)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var messages []models.ContactMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &messages))
	require.Len(t, messages, 1)
	assert.Equal(t, "Alice", messages[0].Name)
}
