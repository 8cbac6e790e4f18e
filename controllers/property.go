package controllers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"github.com/barrabusiness/lead_management_system/backend/models"
	"github.com/barrabusiness/lead_management_system/backend/store"
	"github.com/barrabusiness/lead_management_system/backend/utils"
)

// CreateProperty registers a listing from the seller form.
func CreateProperty(st *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var property models.Property
		if err := json.NewDecoder(r.Body).Decode(&property); err != nil {
			log.Printf("Invalid request body: %v", err)
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}

		if !property.Type.Valid() {
			http.Error(w, "Tipo de imóvel inválido", http.StatusBadRequest)
			return
		}
		if property.Region == "" || property.OwnerName == "" || property.OwnerPhone == "" {
			http.Error(w, "Região, nome e telefone do proprietário são obrigatórios", http.StatusBadRequest)
			return
		}
		if property.Bedrooms < 0 || property.Area < 0 {
			http.Error(w, "Quartos e área devem ser não negativos", http.StatusBadRequest)
			return
		}

		if property.ID == "" {
			property.ID = utils.NewID()
		}
		if property.CreatedAt == 0 {
			property.CreatedAt = time.Now().UnixMilli()
		}
		if property.Images == nil {
			property.Images = []string{}
		}

		if err := st.AddProperty(r.Context(), property); err != nil {
			log.Printf("Insert failed: %v", err)
			http.Error(w, "Failed to create property", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(models.APIResponse{
			Success: true,
			Message: "Imóvel cadastrado",
			Data:    property,
		})
	}
}

// ListProperties serves the home highlights, the buyer browse flow and the
// backoffice listing tab. All filters are optional.
func ListProperties(st *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		minBedrooms := 0
		if raw := query.Get("minBedrooms"); raw != "" {
			v, err := strconv.Atoi(raw)
			if err != nil || v < 0 {
				http.Error(w, "Invalid minBedrooms value", http.StatusBadRequest)
				return
			}
			minBedrooms = v
		}
		minArea := 0.0
		if raw := query.Get("minArea"); raw != "" {
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil || v < 0 {
				http.Error(w, "Invalid minArea value", http.StatusBadRequest)
				return
			}
			minArea = v
		}
		featuredOnly := false
		if raw := query.Get("featured"); raw != "" {
			v, err := strconv.ParseBool(raw)
			if err != nil {
				http.Error(w, "Invalid featured value", http.StatusBadRequest)
				return
			}
			featuredOnly = v
		}
		id := query.Get("id")
		propType := query.Get("type")
		region := strings.ToLower(query.Get("region"))

		properties, err := st.GetProperties(r.Context())
		if err != nil {
			log.Printf("Error fetching properties: %v", err)
			http.Error(w, "Error fetching properties", http.StatusInternalServerError)
			return
		}

		filtered := make([]models.Property, 0, len(properties))
		for _, p := range properties {
			if id != "" && p.ID != id {
				continue
			}
			if propType != "" && string(p.Type) != propType {
				continue
			}
			if region != "" && !strings.Contains(strings.ToLower(p.Region), region) {
				continue
			}
			if p.Bedrooms < minBedrooms {
				continue
			}
			if p.Area < minArea {
				continue
			}
			if featuredOnly && !p.IsFeatured {
				continue
			}
			filtered = append(filtered, p)
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(filtered)
	}
}

// DeleteProperty removes a listing. Unknown ids succeed without effect.
func DeleteProperty(st *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		propertyID := mux.Vars(r)["id"]

		if err := st.RemoveProperty(r.Context(), propertyID); err != nil {
			log.Printf("Delete failed for property %s: %v", propertyID, err)
			http.Error(w, "Delete failed", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "Imóvel removido"})
	}
}

// ToggleFeatured flips a listing's highlight flag. Unknown ids succeed
// without effect.
func ToggleFeatured(st *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		propertyID := mux.Vars(r)["id"]

		if err := st.TogglePropertyFeatured(r.Context(), propertyID); err != nil {
			log.Printf("Toggle featured failed for property %s: %v", propertyID, err)
			http.Error(w, "Toggle failed", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "Destaque atualizado"})
	}
}
