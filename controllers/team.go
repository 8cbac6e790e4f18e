package controllers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/barrabusiness/lead_management_system/backend/auth"
	"github.com/barrabusiness/lead_management_system/backend/models"
	"github.com/barrabusiness/lead_management_system/backend/store"
	"github.com/barrabusiness/lead_management_system/backend/utils"
)

type addUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ListUsers serves the backoffice team tab, with password hashes stripped.
func ListUsers(st *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := st.GetUsers(r.Context())
		if err != nil {
			log.Printf("Error fetching users: %v", err)
			http.Error(w, "Error fetching users", http.StatusInternalServerError)
			return
		}

		sanitized := make([]models.User, 0, len(users))
		for _, u := range users {
			sanitized = append(sanitized, u.Sanitized())
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(sanitized)
	}
}

// AddUser creates a manager account. Duplicate e-mails are rejected with
// a conflict.
func AddUser(st *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req addUserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("Invalid request body: %v", err)
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}
		if req.Name == "" || req.Email == "" || req.Password == "" {
			http.Error(w, "Nome, e-mail e senha são obrigatórios", http.StatusBadRequest)
			return
		}

		hash, err := auth.HashPassword(req.Password)
		if err != nil {
			log.Printf("Error hashing password: %v", err)
			http.Error(w, "Failed to hash password", http.StatusInternalServerError)
			return
		}

		user := models.User{
			ID:        utils.NewID(),
			Name:      req.Name,
			Email:     req.Email,
			Password:  hash,
			Role:      models.RoleManager,
			CreatedAt: time.Now().UnixMilli(),
		}

		if err := st.AddUser(r.Context(), user); err != nil {
			if errors.Is(err, store.ErrEmailTaken) {
				log.Printf("User email already exists: %s", req.Email)
				http.Error(w, err.Error(), http.StatusConflict)
				return
			}
			log.Printf("Error inserting user: %v", err)
			http.Error(w, "Failed to create user", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(models.APIResponse{
			Success: true,
			Message: "Usuário cadastrado",
			Data:    user.Sanitized(),
		})
	}
}

// RemoveUser deletes a staff account. The super-admin is protected;
// unknown ids succeed without effect.
func RemoveUser(st *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := mux.Vars(r)["id"]

		if err := st.RemoveUser(r.Context(), userID); err != nil {
			if errors.Is(err, store.ErrProtectedUser) {
				log.Printf("Blocked removal of protected account %s", userID)
				http.Error(w, err.Error(), http.StatusForbidden)
				return
			}
			log.Printf("Delete failed for user %s: %v", userID, err)
			http.Error(w, "Delete failed", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "Usuário removido"})
	}
}
