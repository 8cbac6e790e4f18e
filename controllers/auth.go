package controllers

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/barrabusiness/lead_management_system/backend/auth"
	"github.com/barrabusiness/lead_management_system/backend/models"
)

type ContextKey string

// UserKey carries the authenticated user through the request context.
const UserKey = ContextKey("user")

// SessionCookie holds the session token for browser navigation; API
// clients send it as a bearer token instead.
const SessionCookie = "BARRA_USER_SESSION"

type Response struct {
	Message string `json:"message"`
	Token   string `json:"token,omitempty"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Message string      `json:"message"`
	Token   string      `json:"token"`
	User    models.User `json:"user"`
}

// RequestToken pulls the session token from the Authorization header or,
// for browser navigation, from the session cookie.
func RequestToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header != "" {
		parts := strings.Split(header, " ")
		if len(parts) == 2 && parts[0] == "Bearer" {
			return parts[1]
		}
		return ""
	}
	if cookie, err := r.Cookie(SessionCookie); err == nil {
		return cookie.Value
	}
	return ""
}

func Login(sessions *auth.Sessions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var credentials loginRequest
		if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
			log.Printf("Error decoding login credentials: %v", err)
			http.Error(w, "Invalid payload", http.StatusBadRequest)
			return
		}
		if credentials.Email == "" || credentials.Password == "" {
			http.Error(w, "E-mail e senha são obrigatórios", http.StatusBadRequest)
			return
		}

		token, user, err := sessions.Login(r.Context(), credentials.Email, credentials.Password)
		if err == auth.ErrInvalidCredentials {
			log.Printf("Invalid credentials for %s", credentials.Email)
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}
		if err != nil {
			log.Printf("Login failed: %v", err)
			http.Error(w, "Falha ao iniciar sessão", http.StatusInternalServerError)
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     SessionCookie,
			Value:    token,
			Path:     "/",
			HttpOnly: true,
		})
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(loginResponse{
			Message: "Login realizado com sucesso",
			Token:   token,
			User:    user.Sanitized(),
		})
	}
}

// Logout clears the session unconditionally; bad or missing tokens still
// get a success response.
func Logout(sessions *auth.Sessions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if token := RequestToken(r); token != "" {
			sessions.Logout(r.Context(), token)
		}
		http.SetCookie(w, &http.Cookie{
			Name:     SessionCookie,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
		})
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(Response{Message: "Sessão encerrada"})
	}
}

// Session returns the identity captured at login, or 401 when no session
// is present.
func Session(sessions *auth.Sessions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := sessions.Current(r.Context(), RequestToken(r))
		if err != nil {
			http.Error(w, "Não autenticado", http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(user.Sanitized())
	}
}
