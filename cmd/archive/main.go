package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"

	"github.com/bagoessprasetyo/pos-ai-sub001/internal/config"
	"github.com/bagoessprasetyo/pos-ai-sub001/internal/storage"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()

	archiver, err := storage.NewMinioArchiver(cfg.Archive)
	if err != nil {
		log.Fatalf("Failed to initialize archive client: %v", err)
	}

	r := mux.NewRouter()

	archiveHandler := storage.NewHandler(archiver)
	archiveHandler.RegisterRoutes(r)

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	}).Methods("GET")

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Archive server starting on %s\n", addr)
	log.Fatal(http.ListenAndServe(addr, r))
}
