package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"nagrik-rag/internal/adapter/ollama"
	"nagrik-rag/internal/adapter/rag_http"
	"nagrik-rag/internal/adapter/reportdocs"
	"nagrik-rag/internal/adapter/reportstore"
	"nagrik-rag/internal/domain"
	"nagrik-rag/internal/infra"
	"nagrik-rag/internal/infra/config"
	"nagrik-rag/internal/infra/logger"
	"nagrik-rag/internal/knowledge"
	"nagrik-rag/internal/usecase"
	"nagrik-rag/internal/worker"
)

func main() {
	// 1. Load Config
	cfg := config.Load()

	// 2. Initialize Logger
	log := logger.New()
	slog.SetDefault(log)

	// 3. Initialize MongoDB
	ctx, cancel := context.WithTimeout(context.Background(), cfg.MongoTimeout)
	mongoClient, err := infra.NewMongoClient(ctx, cfg.MongoURI)
	cancel()
	if err != nil {
		// The query path degrades to static documents without Mongo, so
		// startup continues; analytics and search will return 503.
		log.Warn("mongo unavailable at startup, continuing with static knowledge only", "error", err)
	}

	// 4. Initialize Document Store
	store := domain.NewDocumentStore(knowledge.SeedDocuments())

	// 5. Initialize Adapters
	var reportStore domain.ReportStore
	if mongoClient != nil {
		reportStore = reportstore.NewMongoReportStore(mongoClient, cfg.MongoDatabase, cfg.MongoCollection, cfg.MongoTimeout, log)
		defer func() {
			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer shutdownCancel()
			_ = mongoClient.Disconnect(shutdownCtx)
		}()
	} else {
		reportStore = unavailableReportStore{}
	}
	adapter := reportdocs.NewAdapter(reportStore, int64(cfg.ReportFetchLimit), log)
	generator := ollama.NewGenerator(cfg.OllamaURL, cfg.OllamaModel, cfg.GenerateTimeout)

	// 6. Initialize Usecases
	scorer := domain.NewKeywordScorer()
	retrieveUsecase := usecase.NewRetrieveDocumentsUsecase(store, adapter, scorer, log)
	analyticsUsecase := usecase.NewAnalyticsUsecase(reportStore)
	answerUsecase := usecase.NewAnswerQueryUsecase(
		retrieveUsecase,
		analyticsUsecase,
		usecase.NewContextAssembler(),
		usecase.NewCivicPromptBuilder(),
		usecase.NewOutputParser(),
		scorer,
		generator,
		usecase.AnswerDefaults{
			Temperature:        cfg.DefaultTemperature,
			VoiceTemperature:   cfg.VoiceTemperature,
			MaxDocuments:       cfg.DefaultMaxDocuments,
			VoiceMaxDocuments:  cfg.VoiceMaxDocuments,
			MaxContextLength:   cfg.MaxContextLength,
			SourceContentLimit: cfg.SourceContentLimit,
			Persona:            cfg.Persona,
		},
		log,
	)

	// 7. Initialize & Start Refresher
	refresher := worker.NewRefresher(retrieveUsecase, cfg.RefreshInterval, log)
	refresher.Start()
	defer refresher.Stop()

	// 8. Initialize Echo
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// 9. Register Handlers
	handler := rag_http.NewHandler(answerUsecase, retrieveUsecase, analyticsUsecase, cfg.SearchLimit)
	e.POST("/v1/rag/query", handler.Query)
	e.GET("/v1/rag/analytics", handler.Analytics)
	e.POST("/v1/rag/search", handler.Search)

	// 10. Health Checks
	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/readyz", func(c echo.Context) error {
		if mongoClient == nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "report store down"})
		}
		if err := mongoClient.Ping(c.Request().Context(), readpref.Primary()); err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "report store down", "error": err.Error()})
		}
		return c.JSON(http.StatusOK, map[string]string{"status": "ready"})
	})

	// 11. Start Server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Port)
		log.Info("Starting server", "addr", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			e.Logger.Fatal("shutting down the server")
		}
	}()

	// 12. Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		e.Logger.Fatal(err)
	}
}

// unavailableReportStore stands in when Mongo could not be reached at
// startup, keeping the degraded-path semantics uniform.
type unavailableReportStore struct{}

func (unavailableReportStore) FindAll(ctx context.Context, filter domain.ReportFilter, limit int64) ([]domain.Report, error) {
	return nil, domain.ErrSourceUnavailable
}
