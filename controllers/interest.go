package controllers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/barrabusiness/lead_management_system/backend/models"
	"github.com/barrabusiness/lead_management_system/backend/store"
	"github.com/barrabusiness/lead_management_system/backend/utils"
)

// CreateInterest records a buyer's search profile from the filter form.
func CreateInterest(st *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var interest models.BuyerInterest
		if err := json.NewDecoder(r.Body).Decode(&interest); err != nil {
			log.Printf("Invalid request body: %v", err)
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}

		if !interest.Type.Valid() {
			http.Error(w, "Tipo de imóvel inválido", http.StatusBadRequest)
			return
		}
		if interest.BuyerName == "" || interest.BuyerPhone == "" {
			http.Error(w, "Nome e telefone são obrigatórios", http.StatusBadRequest)
			return
		}
		if interest.MinBedrooms < 0 || interest.MinArea < 0 {
			http.Error(w, "Quartos e área mínimos devem ser não negativos", http.StatusBadRequest)
			return
		}

		if interest.ID == "" {
			interest.ID = utils.NewID()
		}
		if interest.CreatedAt == 0 {
			interest.CreatedAt = time.Now().UnixMilli()
		}

		if err := st.AddInterest(r.Context(), interest); err != nil {
			log.Printf("Insert failed: %v", err)
			http.Error(w, "Failed to record interest", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(models.APIResponse{
			Success: true,
			Message: "Perfil de busca registrado",
			Data:    interest,
		})
	}
}

// ListInterests serves the backoffice interests tab.
func ListInterests(st *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		interests, err := st.GetInterests(r.Context())
		if err != nil {
			log.Printf("Error fetching interests: %v", err)
			http.Error(w, "Error fetching interests", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(interests)
	}
}
