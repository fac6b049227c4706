package main

import (
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	log.SetPrefix("ll/lean-coach-go-api: ")
	log.SetFlags(0)

	// .env is optional in deployed environments where DB_URL comes from the host.
	if err := godotenv.Load(); err != nil {
		log.Printf("[main] no .env file loaded: %v", err)
	}

	cfg, err := loadCoachConfig()
	if err != nil {
		log.Fatalf("[main] config: %v", err)
	}

	h := &Handler{db: getDBPool(), cfg: cfg}

	router := gin.Default()
	router.SetTrustedProxies(nil)
	h.registerRoutes(router)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowedHeaders: []string{"*"},
	})

	addr := cfg.Addr
	if port := os.Getenv("PORT"); port != "" {
		addr = ":" + port
	}
	log.Printf("[main] listening on %s", addr)
	log.Fatal(http.ListenAndServe(addr, corsHandler.Handler(router)))
}
