// devserver runs the in-memory TripTales fake backend on a local port so
// the CLI and mobile builds can develop against it without the production
// API.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"triptales/internal/apitest"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "devserver-secret"
	}

	server := apitest.New(apitest.WithJWTSecret(secret))
	seed(server)

	port := os.Getenv("SERVER_PORT")
	if port == "" {
		port = "8080"
	}

	// CORS is wide open: the only clients are local dev builds.
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           c.Handler(server.Handler()),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Printf("devserver listening on :%s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit
	log.Println("Shutting down devserver...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}
	log.Println("devserver stopped.")
}

func seed(s *apitest.Server) {
	countries := []struct{ id, name string }{
		{"jp-1", "Japan"},
		{"th-1", "Thailand"},
		{"gb-1", "England"},
		{"cn-1", "China"},
		{"vn-1", "Vietnam"},
		{"sg-1", "Singapore"},
	}
	for _, c := range countries {
		s.SeedCountry(c.id, c.name, "https://placehold.co/70x70/"+c.id+".png")
	}

	if _, err := s.SeedUser("demo", "demo@example.com", "demo1234"); err != nil {
		log.Fatalf("seeding demo user: %v", err)
	}
	log.Println("Seeded demo user: demo / demo1234")
}
