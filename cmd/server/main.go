package main

import (
	"log"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"golang.org/x/time/rate"
	"github.com/yradunchev/podsub/internal/auth"
	"github.com/yradunchev/podsub/internal/fetch"
	"github.com/yradunchev/podsub/internal/handlers"
	"github.com/yradunchev/podsub/internal/middleware"
	"github.com/yradunchev/podsub/internal/store"
	"github.com/yradunchev/podsub/internal/subscription"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file")
	}

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL is not set")
	}
	st, err := store.Open(dbURL)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	defer st.Close()
	log.Println("Database connection established")

	authService := auth.NewService(st)
	subs := subscription.New(st, fetch.NewHTTPFetcher())
	h := handlers.New(subs, authService)

	authMw := middleware.NewAuth(authService)
	rateLimiter := middleware.NewRateLimiterMiddleware(rate.Limit(1), 5)

	r := mux.NewRouter()
	r.HandleFunc("/register", h.Register).Methods(http.MethodPost)
	r.HandleFunc("/login", h.Login).Methods(http.MethodPost)

	api := r.PathPrefix("/podcasts").Subrouter()
	api.Use(authMw.Middleware, rateLimiter.Middleware)
	api.HandleFunc("", h.GetPodcasts).Methods(http.MethodGet)
	api.HandleFunc("", h.PostPodcast).Methods(http.MethodPost)
	api.HandleFunc("/{id}", h.GetPodcast).Methods(http.MethodGet)
	api.HandleFunc("/{id}", h.DeletePodcast).Methods(http.MethodDelete)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting server on :%s\n", port)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		log.Fatal(err)
	}
}
