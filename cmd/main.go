package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Kumarsatwik/evaluv/config"
	_ "github.com/Kumarsatwik/evaluv/docs"
	"github.com/Kumarsatwik/evaluv/internal/handler"
	"github.com/Kumarsatwik/evaluv/internal/notifier"
	"github.com/Kumarsatwik/evaluv/internal/observability"
	"github.com/Kumarsatwik/evaluv/internal/repository"
	"github.com/Kumarsatwik/evaluv/internal/security"
	"github.com/Kumarsatwik/evaluv/internal/service"
	"github.com/go-chi/chi/v5"
	_ "github.com/lib/pq"
	httpSwagger "github.com/swaggo/http-swagger"
)

// @title Evaluv API
// @version 1.0
// @description REST API сервиса оценки резюме: пользователи, вакансии, резюме

// @host localhost:8080

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.LoadConfig("config.yaml")
	if err != nil {
		log.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}

	db, err := config.SetupDatabase(cfg.DatabaseConfig.DSN)
	if err != nil {
		log.Fatalf("Не удалось подключиться к БД: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Ошибка при закрытии БД: %v", err)
		}
	}()

	redisClient, err := config.SetupRedis(&cfg.RedisConfig)
	if err != nil {
		log.Fatalf("Ошибка подключения к Redis: %v", err)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Printf("Ошибка при закрытии Redis: %v", err)
		}
	}()

	srv, router := config.SetupServer(cfg.ServerAddr)

	observability.InitMetrics()

	userRepo := repository.NewUserRepository(db)
	jobRepo := repository.NewJobRepository(db)
	resumeRepo := repository.NewResumeRepository(db)
	cacheRepo := repository.NewCacheRepository(redisClient)
	sessionRepo := repository.NewSessionRepository(cacheRepo, cfg.JWT.RefreshTokenTTLDays)

	s3Service, err := service.NewS3Service(ctx, &cfg.S3Config)
	if err != nil {
		log.Fatalf("Ошибка создания S3 сервиса: %v", err)
	}

	presignTTL, err := time.ParseDuration(cfg.Presign.URLTTL)
	if err != nil {
		log.Fatalf("Ошибка парсинга presign.url_ttl: %v", err)
	}

	embeddingNotifier := notifier.NewKafkaNotifier(cfg.Kafka.Brokers, cfg.Kafka.Topic)
	defer func() {
		if err := embeddingNotifier.Close(); err != nil {
			log.Printf("Ошибка при закрытии Kafka producer: %v", err)
		}
	}()

	jwtService := security.NewJWTService(&cfg.JWT)
	rateLimiter := security.NewRateLimiter(cacheRepo, &cfg.RateLimit)

	authService := service.NewAuthenticationService(jwtService, sessionRepo, userRepo)
	userService := service.NewUserService(userRepo)
	jobService := service.NewJobService(jobRepo, embeddingNotifier)
	resumeService := service.NewResumeService(resumeRepo, s3Service, cfg.S3Config.Bucket, presignTTL)

	authHandler := handler.NewAuthenticationHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	jobHandler := handler.NewJobHandler(jobService)
	resumeHandler := handler.NewResumeHandler(resumeService)

	// Порядок фиксирован: сначала лимитер, потом gate.
	// Отклоненный по лимиту запрос не тратит обращение к черному списку.
	router.Use(rateLimiter.Middleware)
	router.Use(security.JWTMiddleware(jwtService, sessionRepo))

	router.Get("/swagger/*", httpSwagger.WrapHandler)
	router.Method(http.MethodGet, "/metrics", observability.MetricsHandler())

	setupAuthRoutes(router, authHandler, userHandler)
	setupUserRoutes(router, userHandler)
	setupJobRoutes(router, jobHandler)
	setupResumeRoutes(router, resumeHandler)

	runServer(ctx, srv)
}

func setupAuthRoutes(r chi.Router, authHandler *handler.AuthenticationHandler, userHandler *handler.UserHandler) {
	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", userHandler.Register)
		r.Post("/login", authHandler.Login)
		r.Post("/refresh", authHandler.Refresh)
		r.Post("/logout", authHandler.Logout)
		r.Get("/me", authHandler.Me)
		r.Post("/change-password", userHandler.ChangePassword)
	})
}

func setupUserRoutes(r chi.Router, h *handler.UserHandler) {
	r.Route("/api/users", func(r chi.Router) {
		r.Get("/", h.ListUsers)

		r.Route("/{uuid}", func(r chi.Router) {
			r.Get("/", h.GetUser)
			r.Patch("/", h.UpdateUser)
			r.Delete("/", h.DeactivateUser)
			r.Post("/activate", h.ActivateUser)
		})
	})
}

func setupJobRoutes(r chi.Router, h *handler.JobHandler) {
	r.Route("/api/jobs", func(r chi.Router) {
		r.Get("/", h.ListJobs)
		r.Post("/", h.CreateJob)
		r.Get("/my", h.ListMyJobs)

		r.Route("/{uuid}", func(r chi.Router) {
			r.Get("/", h.GetJob)
			r.Patch("/", h.UpdateJob)
			r.Delete("/", h.DeleteJob)
		})
	})
}

func setupResumeRoutes(r chi.Router, h *handler.ResumeHandler) {
	r.Route("/api/resumes", func(r chi.Router) {
		r.Get("/", h.ListMyResumes)
		r.Post("/", h.CreateUploadURL)

		r.Route("/{uuid}", func(r chi.Router) {
			r.Get("/download", h.GetDownloadURL)
			r.Delete("/", h.DeleteResume)
		})
	})
}

func runServer(ctx context.Context, server *http.Server) {
	serverErrors := make(chan error, 1)
	go func() {
		log.Println("сервер запущен на " + server.Addr)
		serverErrors <- server.ListenAndServe()
	}()

	signalChannel := make(chan os.Signal, 1)
	signal.Notify(signalChannel, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil {
			log.Fatalf("ошибка работы сервера: %v", err)
		}
	case sig := <-signalChannel:
		log.Printf("получен сигнал %v остановки работы сервера ", sig)
	}

	shutDownCtx, shutDownCancel := context.WithTimeout(ctx, 5*time.Second)
	defer shutDownCancel()

	if err := server.Shutdown(shutDownCtx); err != nil {
		log.Printf("ошибка при остановке сервера: %v", err)
	} else {
		log.Println("Сервер успешно остановлен")
	}
}
