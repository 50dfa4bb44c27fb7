// @title           Auto Service Backend API
// @version         1.0.0
// @description     Repair shop intake and tracking API. Tickets live in a Google Sheet behind an Apps Script web app, mirrored to a local snapshot; staff routes require a bearer token from /auth/login.

// @contact.name   API Support
// @contact.email  support@example.com

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"autoservice-backend/docs"
	"autoservice-backend/internal/config"
	"autoservice-backend/internal/database"
	"autoservice-backend/internal/gemini"
	"autoservice-backend/internal/handlers"
	"autoservice-backend/internal/localstore"
	"autoservice-backend/internal/services"
	"autoservice-backend/internal/sheets"
	"autoservice-backend/internal/supabase"
	"autoservice-backend/internal/telemetry"

	"github.com/gin-gonic/gin"
	gorillahandlers "github.com/gorilla/handlers"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const shutdownTimeout = 15 * time.Second

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Set Gin mode
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Update Swagger docs with dynamic base URL
	if cfg.BaseURL != "" {
		baseURL, err := url.Parse(cfg.BaseURL)
		if err == nil {
			docs.SwaggerInfo.Host = baseURL.Host
			if baseURL.Scheme == "https" {
				docs.SwaggerInfo.Schemes = []string{"https", "http"}
			} else {
				docs.SwaggerInfo.Schemes = []string{"http", "https"}
			}
		}
	}

	ctx := context.Background()

	shutdownTracer, err := telemetry.InitTracer(ctx, cfg.OTLPEndpoint, cfg.Environment)
	if err != nil {
		log.Fatalf("Failed to initialize tracer: %v", err)
	}

	store, closeStore := openSnapshotStore(ctx, cfg)
	defer closeStore()

	// Remote collaborators
	sheetsClient := sheets.NewClient(cfg.SheetsScriptURL, cfg.SheetsTimeout)
	if !cfg.SheetsEnabled() {
		log.Println("Warning: SHEETS_SCRIPT_URL not set. Working from the local snapshot only.")
	}

	catalog := services.NewCatalogService(store)
	if err := catalog.Restore(ctx); err != nil {
		log.Printf("Warning: failed to restore catalog snapshot: %v", err)
	}

	deps := services.RequestServiceDeps{
		Remote:       sheetsClient,
		Store:        store,
		Catalog:      catalog,
		WriteRetries: cfg.SheetsWriteRetries,
		WriteTimeout: 2 * time.Minute,
		Location:     cfg.Location(),
	}
	if cfg.DiagnosisEnabled() {
		diagnoser, err := gemini.NewClient(ctx, cfg.GeminiAPIBaseURL, cfg.GeminiAPIKey, cfg.GeminiModel, cfg.DiagnosisLanguage)
		if err != nil {
			log.Printf("Warning: Failed to initialize Gemini client: %v", err)
		} else {
			deps.Diagnoser = diagnoser
		}
	} else {
		log.Println("Warning: GEMINI_API_KEY not set. AI diagnosis disabled.")
	}
	if cfg.StorageEnabled() {
		supabaseClient, err := supabase.NewClient(cfg)
		if err != nil {
			log.Printf("Warning: Failed to initialize Supabase client: %v", err)
		} else {
			deps.Events = supabase.NewRealtimeClient(supabaseClient.Supabase, cfg.SupabaseEventsTable)
		}

		storageClient, err := supabase.NewStorageClient(cfg.SupabaseURL, cfg.SupabasePublishableKey, cfg.SupabaseStorageBucket)
		if err != nil {
			log.Printf("Warning: Failed to initialize storage client: %v", err)
		} else {
			deps.Photos = storageClient
		}
	}
	if cfg.SMSEnabled() {
		deps.Notifier = services.NewNotifyService(cfg, catalog.Shop)
	}

	requestService := services.NewRequestService(deps)
	if err := requestService.Restore(ctx); err != nil {
		log.Printf("Warning: failed to restore request snapshot: %v", err)
	}

	syncJob := services.NewSyncJob(requestService, cfg.SheetsTimeout*2)
	if cfg.SheetsEnabled() {
		initialState := requestService.Load(ctx)
		if initialState.Connected != nil && *initialState.Connected {
			log.Printf("Loaded %d repair requests from the spreadsheet", initialState.Count)
		}
		if err := syncJob.Schedule(cfg.SyncSchedule); err != nil {
			log.Fatalf("Failed to schedule sync: %v", err)
		}
	}
	syncJob.Start()

	authService, err := services.NewAuthService(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize auth: %v", err)
	}

	// Setup router
	router := gin.New()

	// Middleware
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(telemetry.Middleware())

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	handlers.Routes{
		Requests:  handlers.NewRequestsHandler(requestService),
		Diagnosis: handlers.NewDiagnosisHandler(requestService),
		Catalog:   handlers.NewCatalogHandler(catalog),
		Auth:      handlers.NewAuthHandler(authService),
		Sync:      handlers.NewSyncHandler(requestService, sheets.Script()),
	}.Register(router, cfg)

	cors := gorillahandlers.CORS(
		gorillahandlers.AllowedOrigins(splitList(cfg.CORSAllowedOrigins)),
		gorillahandlers.AllowedMethods([]string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}),
		gorillahandlers.AllowedHeaders([]string{"Authorization", "Content-Type"}),
	)

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           cors(router),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Printf("Server starting on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
			return
		}
		serveErr <- nil
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serveErr:
		if err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	case sig := <-quit:
		log.Printf("Shutdown signal received (%s), draining in-flight requests", sig)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}
	syncJob.Stop()
	requestService.Flush()
	shutdownTracer(shutdownCtx)
	log.Println("Server exited gracefully")
}

// openSnapshotStore uses Postgres when DATABASE_URL is set and reachable,
// otherwise the snapshot file.
func openSnapshotStore(ctx context.Context, cfg *config.Config) (localstore.Store, func()) {
	if cfg.DatabaseURL != "" {
		dbClient, err := supabase.NewDatabaseClient(cfg.DatabaseURL)
		if err != nil {
			log.Printf("Warning: Failed to initialize database client: %v", err)
		} else {
			migrator, err := database.NewMigrator(cfg.DatabaseURL)
			if err != nil {
				log.Printf("Warning: Failed to initialize migrator: %v", err)
			} else {
				defer migrator.Close()
				if err := migrator.Run(ctx); err != nil {
					log.Printf("Warning: Migration failed: %v", err)
				} else {
					log.Println("Migrations completed successfully")
				}
			}
			return dbClient, func() { dbClient.Close() }
		}
	}

	fileStore, err := localstore.NewFileStore(cfg.SnapshotFile)
	if err != nil {
		log.Fatalf("Failed to open snapshot file: %v", err)
	}
	log.Printf("Using snapshot file %s", fileStore.Path())
	return fileStore, func() {}
}

func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
