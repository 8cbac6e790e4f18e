package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"github.com/barrabusiness/lead_management_system/backend/ai"
	"github.com/barrabusiness/lead_management_system/backend/auth"
	"github.com/barrabusiness/lead_management_system/backend/config"
	"github.com/barrabusiness/lead_management_system/backend/notify"
	"github.com/barrabusiness/lead_management_system/backend/routes"
	"github.com/barrabusiness/lead_management_system/backend/store"
)

func loadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Error loading .env file: %v", err)
	}
}

func newWriter() *ai.Writer {
	key := os.Getenv("GEMINI_API_KEY")
	if key == "" {
		log.Println("GEMINI_API_KEY not set, descriptions will use the fallback text")
		return ai.NewWriter(nil)
	}
	client, err := ai.NewGeminiClient(key)
	if err != nil {
		log.Printf("Gemini client unavailable: %v", err)
		return ai.NewWriter(nil)
	}
	return ai.NewWriter(ai.NewGeminiGenerator(client, "gemini-2.5-flash"))
}

func main() {
	loadEnv()

	redisClient := config.InitRedis()

	backend, cleanup, err := config.DocumentBackend(redisClient)
	if err != nil {
		log.Fatalf("Failed to open the document backend: %v", err)
	}
	defer cleanup()

	st, err := store.New(context.Background(), backend)
	if err != nil {
		log.Fatalf("Failed to initialize the document store: %v", err)
	}

	secret := os.Getenv("JWT_KEY")
	if secret == "" {
		log.Fatalf("JWT_KEY not set in environment")
	}
	sessions := auth.NewSessions(st, redisClient, []byte(secret))

	leads := notify.NewLeadSignal(redisClient)
	writer := newWriter()

	router := mux.NewRouter()
	routes.Routes(router, st, sessions, leads, writer)

	corsOptions := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	})
	handler := corsOptions.Handler(router)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	server := &http.Server{
		Addr:        ":" + port,
		Handler:     handler,
		ReadTimeout: 10 * time.Second,
		// No write timeout: /leads/events holds its stream open.
		MaxHeaderBytes: 1 << 20,
	}

	go func() {
		log.Printf("Server running on port %s", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting server: %v", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)
	<-sigCh

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Error during server shutdown: %v", err)
	}
	log.Println("Server gracefully stopped")
}
