package main

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	api "github.com/aurelia-labs/questionbank/internal/api/http"
	"github.com/aurelia-labs/questionbank/internal/auth"
	"github.com/aurelia-labs/questionbank/internal/config"
	"github.com/aurelia-labs/questionbank/internal/db"
	"github.com/aurelia-labs/questionbank/internal/question"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	// --- Question source ---
	var records []question.Question
	switch cfg.SourceDriver {
	case "csv":
		records, err = question.LoadFile(cfg.QuestionsPath, cfg.Delimiter())
	default:
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		dbh, derr := db.Open(ctx, db.Driver(cfg.SourceDriver), cfg.DBDSN)
		if derr != nil {
			cancel()
			log.Fatalf("db open failed: %v", derr)
		}
		records, err = question.LoadSQL(ctx, dbh)
		dbh.Close()
		cancel()
	}
	if err != nil {
		log.Fatalf("load questions: %v", err)
	}

	repo := question.NewRepository(records)
	svc := question.NewService(repo, cfg.AdminUser)

	// --- Auth ---
	creds := auth.DefaultCredentials()
	for _, pair := range cfg.ExtraCredentials {
		user, secret, ok := strings.Cut(pair, ":")
		if !ok || user == "" {
			log.Fatalf("bad extra credential entry %q", pair)
		}
		creds[user] = secret
	}
	an := auth.NewAuthenticator(creds)
	var tokens *auth.TokenService
	if cfg.EnableTokenAuth {
		tokens = auth.NewTokenService(cfg.AuthSecret)
	}

	// --- Router ---
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Mount("/", api.NewRouter(svc, an, tokens))

	log.Printf("listening on %s (source=%s, questions=%d)", cfg.HTTPAddr, cfg.SourceDriver, repo.Len())
	log.Fatal(http.ListenAndServe(cfg.HTTPAddr, r))
}
