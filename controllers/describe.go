package controllers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/barrabusiness/lead_management_system/backend/ai"
)

// Describe generates a listing description for the seller form. The call
// never fails outright: generation problems yield the fixed fallback text.
func Describe(writer *ai.Writer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var details ai.PropertyDetails
		if err := json.NewDecoder(r.Body).Decode(&details); err != nil {
			log.Printf("Invalid request body: %v", err)
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}
		if !details.Type.Valid() {
			http.Error(w, "Tipo de imóvel inválido", http.StatusBadRequest)
			return
		}

		description := writer.Describe(r.Context(), details)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"description": description})
	}
}
