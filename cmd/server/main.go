package main

import (
	"context"
	"fmt"
	"log"

	"fisco/internal/adapter"
	"fisco/internal/config"
	"fisco/internal/handler"
	"fisco/internal/lifecycle"
	"fisco/internal/repository/postgres"
	"fisco/internal/router"
	"fisco/internal/service"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Load the municipality reference table into memory. Lookups are on the
	// document validation hot path, so they never hit the database directly.
	municipalityRepo := postgres.NewMunicipalityRepo(db)
	entries, err := municipalityRepo.LoadAll(context.Background())
	if err != nil {
		return fmt.Errorf("failed to load municipality table: %w", err)
	}
	table := adapter.NewMunicipalityTable(entries)
	log.Printf("Loaded %d municipalities", table.Len())

	// Initialize the rule engine
	issuerProvider := service.NewConfigIssuerProvider(cfg.Issuer)
	lifecycleValidator := lifecycle.New()
	documentAdapter := adapter.New(table, issuerProvider, lifecycleValidator)
	documentSvc := service.NewDocumentService(documentAdapter, lifecycleValidator)

	// Initialize handlers
	fiscalH := handler.NewFiscalHandler(documentSvc)
	identifierH := handler.NewIdentifierHandler()
	municipalityH := handler.NewMunicipalityHandler(documentSvc, table)
	healthH := handler.NewHealthHandler(db)

	// Setup router
	r := router.Setup(cfg.CORS.AllowedOrigins, fiscalH, identifierH, municipalityH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
