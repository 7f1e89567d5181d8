package main

import (
	"agriassist/agriassist/config"
	"agriassist/agriassist/controllers"
	"agriassist/agriassist/middlewares"
	"agriassist/agriassist/routes"
	"agriassist/agriassist/services/chatbot"
	"agriassist/agriassist/services/insights"
	"agriassist/agriassist/services/llm"
	"agriassist/agriassist/services/predictor"
	"agriassist/agriassist/sources/psql"
	"agriassist/agriassist/sources/psql/dao"
	"agriassist/agriassist/sources/storage"
	"agriassist/agriassist/utils/logging"
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

func main() {
	cfg := config.LoadConfig()
	logging.InitLogger(cfg.Log.Dir)
	defer logging.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	db, err := psql.NewDatabase(ctx, cfg)
	if err != nil {
		logging.ErrorLogger.Error("database connection error", zap.Error(err))
		os.Exit(1)
	}
	defer db.Close()
	sqlDB, err := db.DB.DB()
	if err != nil {
		logging.ErrorLogger.Error("database handle error", zap.Error(err))
		os.Exit(1)
	}

	knowledgeDAO := dao.NewKnowledgeDAO(db.DB)
	soilDAO := dao.NewSoilRequirementDAO(db.DB)
	predictionDAO := dao.NewCropPredictionDAO(db.DB)

	// MinIO is optional; without it the file actions answer 503
	var files controllers.FileStore
	if minioClient, err := storage.NewMinIOClient(cfg); err != nil {
		logging.ErrorLogger.Warn("minio unavailable, knowledge files disabled", zap.Error(err))
	} else {
		files = minioClient
	}

	var generator llm.Generator
	if gen, err := llm.New(ctx, cfg.LLM); err != nil {
		logging.ErrorLogger.Warn("llm unavailable, insights and news disabled", zap.Error(err))
	} else {
		generator = gen
	}

	responder := chatbot.NewResponderFromConfig(cfg, knowledgeDAO)

	healthCtrl := controllers.NewHealthController(sqlDB)
	authCtrl := controllers.NewAuthController(cfg)
	chatbotCtrl := controllers.NewChatbotController(responder)
	knowledgeCtrl := controllers.NewKnowledgeController(knowledgeDAO, files)
	cropCtrl := controllers.NewCropController(predictor.NewClient(cfg.Predictor), soilDAO, predictionDAO)
	insightsCtrl := controllers.NewInsightsController(insights.NewService(generator))

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middlewares.RequestLogger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.Server.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type", "X-Client-Info", "Apikey"},
		MaxAge:         300,
	}))

	// POST /chatbot carries its own timeout; /chatbot/ws is long-lived
	r.Mount("/chatbot", routes.ChatbotRoutes(chatbotCtrl, cfg.Server.RequestTimeout))
	r.Group(func(gr chi.Router) {
		gr.Use(middleware.Timeout(cfg.Server.RequestTimeout))
		gr.Mount("/health", routes.HealthRoutes(healthCtrl))
		gr.Mount("/auth", routes.AuthRoutes(authCtrl))
		gr.Mount("/chatbot-data", routes.ChatbotDataRoutes(knowledgeCtrl, cfg))
		gr.Mount("/admin/knowledge", routes.KnowledgeRoutes(knowledgeCtrl, cfg))
		gr.Mount("/predict-crop", routes.PredictRoutes(cropCtrl, cfg))
		gr.Mount("/generate-crop-insights", routes.SuitabilityRoutes(cropCtrl))
		gr.Mount("/crop-insights", routes.InsightsRoutes(insightsCtrl))
		gr.Mount("/agri-news", routes.NewsRoutes(insightsCtrl))
	})

	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: r,
	}
	go func() {
		logging.AppLogger.Info("server listening", zap.String("addr", cfg.Server.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.ErrorLogger.Error("server listen error", zap.Error(err))
		}
	}()
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logging.ErrorLogger.Error("server shutdown error", zap.Error(err))
	}
	responder.Close()
	logging.AppLogger.Info("server shutdown complete")
}
