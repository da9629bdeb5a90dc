package main

import (
	"net/http"
	"os"
	"time"

	"insulin-worksheet/internal/adapters/auth/medauth"
	"insulin-worksheet/internal/platform/logger"
	"insulin-worksheet/internal/ports/auth"
	"insulin-worksheet/internal/router"
)

// @title SMART Insulin Worksheet API
// @version 1.0
// @description Calculadora de dosis de insulina: dosis inicial por peso y régimen, corrección por escala, guía de titulación y export a PDF.
// @BasePath /
func main() {
	log := logger.NewFromEnv()

	var verifier auth.AuthVerifier // nil => modo dev (X-Debug-User-ID)
	if baseURL := os.Getenv("MEDAUTH_BASE_URL"); baseURL != "" {
		client, err := medauth.NewClient(medauth.Config{
			BaseURL: baseURL,
			APIKey:  os.Getenv("MEDAUTH_API_KEY"),
		})
		if err != nil {
			log.Error("invalid medauth config", map[string]any{"error": err.Error()})
			os.Exit(1)
		}
		verifier = medauth.NewVerifier(client)
	}

	addr := ":8080"
	if v := os.Getenv("PORT"); v != "" {
		addr = ":" + v
	}

	r := router.NewRouter(router.Options{
		AuthVerifier: verifier,
		Logger:       log,
	})

	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	log.Info("starting server", map[string]any{"addr": addr, "dev_auth": verifier == nil})
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
}
