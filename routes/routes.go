package routes

import (
	"github.com/gorilla/mux"

	"github.com/barrabusiness/lead_management_system/backend/ai"
	"github.com/barrabusiness/lead_management_system/backend/auth"
	"github.com/barrabusiness/lead_management_system/backend/controllers"
	"github.com/barrabusiness/lead_management_system/backend/middleware"
	"github.com/barrabusiness/lead_management_system/backend/notify"
	"github.com/barrabusiness/lead_management_system/backend/store"
)

func Routes(router *mux.Router, st *store.Store, sessions *auth.Sessions, leads *notify.LeadSignal, writer *ai.Writer) {
	// Auth routes
	router.HandleFunc("/login", controllers.Login(sessions)).Methods("POST")
	router.HandleFunc("/logout", controllers.Logout(sessions)).Methods("POST")
	router.HandleFunc("/session", controllers.Session(sessions)).Methods("GET")

	// Seller and buyer routes
	router.HandleFunc("/properties", controllers.CreateProperty(st)).Methods("POST")
	router.HandleFunc("/properties", controllers.ListProperties(st)).Methods("GET")
	router.HandleFunc("/interests", controllers.CreateInterest(st)).Methods("POST")
	router.HandleFunc("/matches", controllers.CreateMatch(st, leads)).Methods("POST")
	router.HandleFunc("/describe", controllers.Describe(writer)).Methods("POST")
	router.HandleFunc("/leads/badge", controllers.LeadBadge(leads)).Methods("GET")
	router.HandleFunc("/leads/events", controllers.LeadEvents(leads)).Methods("GET")

	// Management routes require authentication
	authenticated := router.PathPrefix("/api").Subrouter()
	authenticated.Use(middleware.RequireSession(sessions))

	authenticated.HandleFunc("/matches", controllers.ListMatches(st, leads)).Methods("GET")
	authenticated.HandleFunc("/matches/{id}/status", controllers.UpdateMatchStatus(st)).Methods("PUT")
	authenticated.HandleFunc("/properties", controllers.ListProperties(st)).Methods("GET")
	authenticated.HandleFunc("/properties/{id}", controllers.DeleteProperty(st)).Methods("DELETE")
	authenticated.HandleFunc("/properties/{id}/featured", controllers.ToggleFeatured(st)).Methods("PUT")
	authenticated.HandleFunc("/interests", controllers.ListInterests(st)).Methods("GET")
	authenticated.HandleFunc("/team", controllers.ListUsers(st)).Methods("GET")
	authenticated.HandleFunc("/team", controllers.AddUser(st)).Methods("POST")
	authenticated.HandleFunc("/team/{id}", controllers.RemoveUser(st)).Methods("DELETE")
}
