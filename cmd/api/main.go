package main

import (
	"context"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hackabby/interviewbot-backend/internal/config"
	"github.com/hackabby/interviewbot-backend/internal/handlers"
	"github.com/hackabby/interviewbot-backend/internal/pdftext"
	"github.com/hackabby/interviewbot-backend/internal/scraper"
	"github.com/hackabby/interviewbot-backend/internal/services"
)

func main() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()

	if err := godotenv.Load(); err != nil {
		log.Info().Msg("no .env file found, using process environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	llmService, err := services.NewLLMService(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create LLM client")
	}

	fetcher := scraper.NewFetcher(cfg.FetchTimeout)
	jobService := services.NewJobService(fetcher, llmService)
	resumeService := services.NewResumeService(llmService, pdftext.NewExtractor(), cfg.UploadDir)

	jobHandler := handlers.NewJobHandler(jobService)
	resumeHandler := handlers.NewResumeHandler(resumeService)
	interviewHandler := handlers.NewInterviewHandler()

	r := gin.Default()
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)
		api.POST("/jobs/parse-job-description", jobHandler.ParseJobDescription)
		api.POST("/resumes/parse-resume", resumeHandler.ParseResume)
		api.POST("/interviews/start", interviewHandler.StartInterview)
	}

	log.Info().Str("port", cfg.Port).Msg("server starting")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server failed to start")
	}
}
