package controllers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/barrabusiness/lead_management_system/backend/models"
	"github.com/barrabusiness/lead_management_system/backend/notify"
	"github.com/barrabusiness/lead_management_system/backend/store"
	"github.com/barrabusiness/lead_management_system/backend/utils"
)

type createMatchRequest struct {
	PropertyID   string `json:"propertyId"`
	BuyerName    string `json:"buyerName"`
	BuyerContact string `json:"buyerContact"`
}

type updateStatusRequest struct {
	Status models.MatchStatus `json:"status"`
}

// CreateMatch records a buyer's confirmed interest in one property and
// raises the new-leads signal. A repeated (property, contact) pair is
// accepted and silently dropped, so double clicks stay idempotent.
func CreateMatch(st *store.Store, leads *notify.LeadSignal) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createMatchRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("Invalid request body: %v", err)
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}
		if req.PropertyID == "" || req.BuyerName == "" || req.BuyerContact == "" {
			http.Error(w, "Imóvel, nome e contato são obrigatórios", http.StatusBadRequest)
			return
		}

		match := models.LeadMatch{
			ID:           utils.NewPrefixedID("match"),
			PropertyID:   req.PropertyID,
			BuyerID:      utils.NewPrefixedID("buyer"),
			BuyerName:    req.BuyerName,
			BuyerContact: req.BuyerContact,
			Status:       models.MatchPending,
			CreatedAt:    time.Now().UnixMilli(),
		}

		added, err := st.AddMatch(r.Context(), match)
		if err != nil {
			log.Printf("Insert failed: %v", err)
			http.Error(w, "Failed to record match", http.StatusInternalServerError)
			return
		}
		if !added {
			log.Printf("Duplicate match for property %s dropped", req.PropertyID)
		}

		// The badge fires on every confirmation, duplicates included.
		if err := leads.MarkNew(r.Context()); err != nil {
			log.Printf("Failed to raise lead signal: %v", err)
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(models.APIResponse{
			Success: true,
			Message: "Interesse registrado",
			Data:    match,
		})
	}
}

// ListMatches serves the backoffice matches tab. Reading it counts as
// entering the management view, which clears the new-leads marker.
func ListMatches(st *store.Store, leads *notify.LeadSignal) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		matches, err := st.GetMatches(r.Context())
		if err != nil {
			log.Printf("Error fetching matches: %v", err)
			http.Error(w, "Error fetching matches", http.StatusInternalServerError)
			return
		}

		if err := leads.Clear(r.Context()); err != nil {
			log.Printf("Failed to clear lead flag: %v", err)
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(matches)
	}
}

// UpdateMatchStatus overwrites one lead's status. Unknown ids succeed
// without effect.
func UpdateMatchStatus(st *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		matchID := mux.Vars(r)["id"]

		var req updateStatusRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("Invalid request body: %v", err)
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}
		if !req.Status.Valid() {
			http.Error(w, "Status inválido", http.StatusBadRequest)
			return
		}

		if err := st.UpdateMatchStatus(r.Context(), matchID, req.Status); err != nil {
			log.Printf("Status update failed for match %s: %v", matchID, err)
			http.Error(w, "Update failed", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "Status atualizado"})
	}
}
