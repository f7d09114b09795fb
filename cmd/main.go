package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"time"

	"github.com/Vovarama1992/go-utils/logger"

	"github.com/Vovarama1992/moore_demo/internal/config"
	"github.com/Vovarama1992/moore_demo/internal/delivery"
	"github.com/Vovarama1992/moore_demo/internal/domain"
	"github.com/Vovarama1992/moore_demo/internal/error_notificator"
	"github.com/Vovarama1992/moore_demo/internal/history"
	"github.com/Vovarama1992/moore_demo/internal/infra"
	"github.com/Vovarama1992/moore_demo/internal/notice"
	"github.com/Vovarama1992/moore_demo/internal/pipeline"
	"github.com/Vovarama1992/moore_demo/internal/speech"
	"github.com/Vovarama1992/moore_demo/internal/textrules"
	"github.com/Vovarama1992/moore_demo/internal/translation"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

func main() {

	// =========================================================================
	// ENV / DB INIT
	// =========================================================================

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		log.Fatalf("db ping failed: %v", err)
	}
	defer db.Close()

	baseLogger, _ := zap.NewProduction()
	defer baseLogger.Sync()
	zl := logger.NewZapLogger(baseLogger.Sugar())

	// =========================================================================
	// ERROR NOTIFICATION
	// =========================================================================

	errInfra, err := error_notificator.NewInfra(cfg.TelegramToken, cfg.AdminChatID)
	if err != nil {
		log.Fatalf("failed to init telegram notifier: %v", err)
	}
	errService := error_notificator.NewService(errInfra)

	// =========================================================================
	// REPOSITORIES
	// =========================================================================

	rulesRepo := textrules.NewRepo(db)
	historyRepo := history.NewRepo(db)
	noticeRepo := notice.NewRepo(db)
	authRepo := infra.NewAuthRepo(db)

	// =========================================================================
	// CLIENTS (translate / TTS / STT / S3)
	// =========================================================================

	translateClient := translation.NewHTTPClient(cfg.TranslateURL, cfg.UpstreamTimeout)
	ttsClient := speech.NewRemoteTTS(cfg.SpeechURL, cfg.ReferenceSpeaker, cfg.UpstreamTimeout)

	var sttClient speech.STTClient = speech.NewRemoteSTT(cfg.SpeechURL, cfg.UpstreamTimeout)
	if cfg.STTProvider == "whisper" {
		sttClient = speech.NewWhisperSTT(cfg.OpenAIAPIKey)
	}

	var archive speech.Archive
	if cfg.S3Enabled() {
		s3Client, err := infra.NewS3Client(ctx, infra.S3Config{
			Endpoint:  cfg.S3Endpoint,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
			Bucket:    cfg.S3Bucket,
			Region:    cfg.S3Region,
		})
		if err != nil {
			log.Fatalf("failed to init s3: %v", err)
		}
		archive = domain.NewAudioArchive(s3Client)
	}

	// =========================================================================
	// DOMAIN SERVICES
	// =========================================================================

	rulesService := textrules.NewService(rulesRepo)
	historyService := history.NewService(historyRepo)
	noticeService := notice.NewService(noticeRepo)
	authService := domain.NewAuthService(authRepo, cfg.AuthSecret)

	translationService := translation.NewService(
		translateClient,
		rulesService,
		historyService,
		errService,
		zl,
		cfg.MaxChunkLength,
		cfg.BookWordLimit,
	)

	speechService := speech.NewService(
		sttClient,
		ttsClient,
		archive,
		errService,
		zl,
		cfg.MaxUploadBytes,
	)

	pipelineService := pipeline.NewService(translationService, speechService, zl)

	// =========================================================================
	// HTTP ROUTER
	// =========================================================================

	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	delivery.RegisterRoutes(
		r,
		delivery.Handlers{
			Translate: delivery.NewTranslateHandler(translationService, pipelineService, zl),
			Speech:    delivery.NewSpeechHandler(speechService, pipelineService, zl, cfg.MaxUploadBytes),
			Notice:    delivery.NewNoticeHandler(noticeService, zl),
			TextRules: delivery.NewTextRuleHandler(rulesRepo, zl),
			History:   delivery.NewHistoryHandler(historyService, zl),
			Auth:      delivery.NewAuthHandler(authService),
		},
		authService,
		cfg.RateLimitPerMinute,
	)

	// =========================================================================
	// START SERVER
	// =========================================================================

	addr := ":" + cfg.Port
	zl.Log(logger.LogEntry{
		Level:   "info",
		Message: "listening at " + addr,
		Service: "moore_demo",
	})

	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
