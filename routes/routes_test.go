package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gorilla/mux"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/barrabusiness/lead_management_system/backend/ai"
	"github.com/barrabusiness/lead_management_system/backend/auth"
	"github.com/barrabusiness/lead_management_system/backend/models"
	"github.com/barrabusiness/lead_management_system/backend/notify"
	"github.com/barrabusiness/lead_management_system/backend/store"
)

const (
	adminEmail = "wgmimovel@gmail.com"
	adminPass  = "Chupanas007!"
)

func newTestRouter(t *testing.T) *mux.Router {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	st, err := store.New(context.Background(), store.NewRedisBackend(client))
	require.NoError(t, err)

	sessions := auth.NewSessions(st, client, []byte("test-secret"))
	leads := notify.NewLeadSignal(client)
	writer := ai.NewWriter(nil)

	router := mux.NewRouter()
	Routes(router, st, sessions, leads, writer)
	return router
}

func doJSON(t *testing.T, router *mux.Router, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func login(t *testing.T, router *mux.Router, email, password string) string {
	t.Helper()
	rec := doJSON(t, router, http.MethodPost, "/login", "", map[string]string{
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		Token string      `json:"token"`
		User  models.User `json:"user"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	require.Empty(t, resp.User.Password)
	return resp.Token
}

func createProperty(t *testing.T, router *mux.Router, propType models.PropertyType, bedrooms int) models.Property {
	t.Helper()
	rec := doJSON(t, router, http.MethodPost, "/properties", "", map[string]interface{}{
		"type":       propType,
		"region":     "Jardim Oceânico",
		"condoName":  "Alfa Barra",
		"bedrooms":   bedrooms,
		"area":       120,
		"ownerName":  "Carlos Mendes",
		"ownerPhone": "(21) 99999-0001",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp struct {
		Data models.Property `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Data.ID)
	return resp.Data
}

func TestManagementViewRedirectsBrowsersToLogin(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/matches", nil)
	req.Header.Set("Accept", "text/html")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	location := rec.Header().Get("Location")
	require.True(t, strings.HasPrefix(location, "/login?from="), location)
	require.Contains(t, location, "%2Fapi%2Fmatches")
}

func TestAuthGateScenario(t *testing.T) {
	router := newTestRouter(t)

	// No session marker: the management view is refused.
	rec := doJSON(t, router, http.MethodGet, "/api/matches", "", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/login", "", map[string]string{
		"email":    adminEmail,
		"password": "errada",
	})
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	token := login(t, router, adminEmail, adminPass)

	rec = doJSON(t, router, http.MethodGet, "/api/matches", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/session", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/logout", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/matches", token, nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestBuyerFlowRaisesAndClearsBadge(t *testing.T) {
	router := newTestRouter(t)
	property := createProperty(t, router, models.TypeApartment, 3)

	rec := doJSON(t, router, http.MethodPost, "/matches", "", map[string]string{
		"propertyId":   property.ID,
		"buyerName":    "João",
		"buyerContact": "(21) 97777-0003",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = doJSON(t, router, http.MethodGet, "/leads/badge", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"hasNewLeads":true`)

	token := login(t, router, adminEmail, adminPass)

	rec = doJSON(t, router, http.MethodGet, "/api/matches", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var matches []models.LeadMatch
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &matches))
	require.Len(t, matches, 1)
	require.Equal(t, models.MatchPending, matches[0].Status)
	require.Equal(t, property.ID, matches[0].PropertyID)

	// Entering the management view clears the badge.
	rec = doJSON(t, router, http.MethodGet, "/leads/badge", "", nil)
	require.Contains(t, rec.Body.String(), `"hasNewLeads":false`)

	// A duplicate confirmation is accepted and stays deduplicated.
	rec = doJSON(t, router, http.MethodPost, "/matches", "", map[string]string{
		"propertyId":   property.ID,
		"buyerName":    "João",
		"buyerContact": "(21) 97777-0003",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/matches", token, nil)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &matches))
	require.Len(t, matches, 1)
}

func TestMatchStatusTransition(t *testing.T) {
	router := newTestRouter(t)
	property := createProperty(t, router, models.TypeHouse, 2)

	rec := doJSON(t, router, http.MethodPost, "/matches", "", map[string]string{
		"propertyId":   property.ID,
		"buyerName":    "Paula",
		"buyerContact": "(21) 98888-0002",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var created struct {
		Data models.LeadMatch `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	token := login(t, router, adminEmail, adminPass)

	rec = doJSON(t, router, http.MethodPut, "/api/matches/"+created.Data.ID+"/status", token, map[string]string{"status": "CONTACTED"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = doJSON(t, router, http.MethodPut, "/api/matches/"+created.Data.ID+"/status", token, map[string]string{"status": "INVALID"})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/matches", token, nil)
	var matches []models.LeadMatch
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &matches))
	require.Len(t, matches, 1)
	require.Equal(t, models.MatchContacted, matches[0].Status)
	require.Equal(t, created.Data.BuyerName, matches[0].BuyerName)
}

func TestPropertyFiltersAndFeatured(t *testing.T) {
	router := newTestRouter(t)
	apartment := createProperty(t, router, models.TypeApartment, 3)
	createProperty(t, router, models.TypeHouse, 2)

	rec := doJSON(t, router, http.MethodGet, "/properties?type=Apartamento&minBedrooms=3", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var listed []models.Property
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
	require.Len(t, listed, 1)
	require.Equal(t, apartment.ID, listed[0].ID)

	rec = doJSON(t, router, http.MethodGet, "/properties?featured=true", "", nil)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
	require.Empty(t, listed)

	token := login(t, router, adminEmail, adminPass)
	rec = doJSON(t, router, http.MethodPut, "/api/properties/"+apartment.ID+"/featured", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/properties?featured=true", "", nil)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
	require.Len(t, listed, 1)

	rec = doJSON(t, router, http.MethodDelete, "/api/properties/"+apartment.ID, token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/properties", "", nil)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
	require.Len(t, listed, 1)
}

func TestTeamManagement(t *testing.T) {
	router := newTestRouter(t)
	token := login(t, router, adminEmail, adminPass)

	rec := doJSON(t, router, http.MethodPost, "/api/team", token, map[string]string{
		"name":     "Ana",
		"email":    "ana@example.com",
		"password": "segredo123",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var created struct {
		Data models.User `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.Equal(t, models.RoleManager, created.Data.Role)
	require.Empty(t, created.Data.Password)

	// The new manager can sign in with the password just set.
	login(t, router, "ana@example.com", "segredo123")

	rec = doJSON(t, router, http.MethodPost, "/api/team", token, map[string]string{
		"name":     "Outra Ana",
		"email":    "ana@example.com",
		"password": "outra",
	})
	require.Equal(t, http.StatusConflict, rec.Code)

	rec = doJSON(t, router, http.MethodDelete, "/api/team/"+store.SuperAdminID, token, nil)
	require.Equal(t, http.StatusForbidden, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/team", token, nil)
	var team []models.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &team))
	require.Len(t, team, 2)
	for _, member := range team {
		require.Empty(t, member.Password)
	}

	rec = doJSON(t, router, http.MethodDelete, "/api/team/"+created.Data.ID, token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/team", token, nil)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &team))
	require.Len(t, team, 1)
}

func TestInterestSubmission(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/interests", "", map[string]interface{}{
		"type":        models.TypeApartment,
		"region":      "Recreio",
		"minBedrooms": 2,
		"minArea":     80,
		"buyerName":   "Paula",
		"buyerPhone":  "(21) 98888-0002",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = doJSON(t, router, http.MethodPost, "/interests", "", map[string]interface{}{
		"type":       "Mansão",
		"region":     "Recreio",
		"buyerName":  "Paula",
		"buyerPhone": "(21) 98888-0002",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	token := login(t, router, adminEmail, adminPass)
	rec = doJSON(t, router, http.MethodGet, "/api/interests", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var interests []models.BuyerInterest
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &interests))
	require.Len(t, interests, 1)
}

func TestDescribeFallsBackWithoutProvider(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/describe", "", map[string]interface{}{
		"type":      models.TypePenthouse,
		"region":    "Jardim Oceânico",
		"condoName": "Alfa Barra",
		"bedrooms":  4,
		"area":      220,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "preencha manualmente")
}
