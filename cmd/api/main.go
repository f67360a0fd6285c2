package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"pet-behavior-diary/internal/adapters/auth/supabase"
	"pet-behavior-diary/internal/ports/auth"
	"pet-behavior-diary/internal/router"
)

func main() {
	addr := ":8080"
	if v := os.Getenv("PORT"); v != "" {
		addr = ":" + v
	}

	// Sin SUPABASE_JWT_SECRET el verifier queda nil => modo dev
	// (X-Debug-User-ID). El resto de la config la resuelve el router.
	var verifier auth.AuthVerifier
	if v := supabase.NewVerifier(os.Getenv("SUPABASE_JWT_SECRET")); v != nil {
		verifier = v
	}

	r := router.NewRouter(router.Options{AuthVerifier: verifier})

	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 90 * time.Second, // las generaciones pueden tardar
	}

	log.Printf("starting server on %s", addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server error: %v", err)
	}
}
