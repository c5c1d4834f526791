package main

import (
	"log"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"empath-llm/internal/classifier"
	"empath-llm/internal/config"
	"empath-llm/internal/domain"
	apihttp "empath-llm/internal/http"
	"empath-llm/internal/llm"
	"empath-llm/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	cultures := domain.LoadCulturalProfiles()

	var llmClient llm.LLMClient
	if cfg.LLMAPIKey != "" {
		llmClient = llm.NewHTTPClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModel, logger)
	} else {
		logger.Warn("LLM_API_KEY not set, responses will use the canned fallback")
	}

	var cls classifier.Classifier = classifier.NewKeywordClassifier()
	if cfg.ClassifierMode == "llm" {
		if llmClient == nil {
			logger.Warn("CLASSIFIER_MODE=llm requires LLM_API_KEY, falling back to keyword classifier")
		} else {
			cls = classifier.NewLLMClassifier(llmClient, logger)
		}
	}

	detector := service.NewDetectorService(cls, cultures, logger)
	responder := service.NewResponderService(llmClient, cultures, logger)
	trends := service.NewTrendService(cfg.TrendWindow)
	profiler := service.NewProfilerService()
	sessions := service.NewSessionManager()
	chatSvc := service.NewChatService(detector, responder, trends, profiler, sessions, logger)

	chatH := apihttp.NewChatHandler(logger, chatSvc, cultures)
	analyticsH := apihttp.NewAnalyticsHandler(logger, chatSvc)

	router := apihttp.NewRouter(logger, chatH, analyticsH)

	logger.Info("starting server", zap.String("port", cfg.HTTPPort))
	if err := router.Run(":" + cfg.HTTPPort); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
