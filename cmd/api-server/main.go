// cmd/api-server/main.go
package main

import (
	"context"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"aagaz-backend/internal/api/careers"
	"aagaz-backend/internal/api/colleges"
	"aagaz-backend/internal/api/quiz"
	"aagaz-backend/internal/api/recommendations"
	"aagaz-backend/internal/api/user"
	"aagaz-backend/internal/common/config"
	"aagaz-backend/internal/common/database"
	httputil "aagaz-backend/internal/common/http"
	"aagaz-backend/internal/common/logger"
	"aagaz-backend/internal/common/observability"
	"aagaz-backend/internal/scoring"
	"aagaz-backend/internal/search"
	"aagaz-backend/internal/taxonomy"
	"aagaz-backend/internal/userstore"
)

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2 // Exponential backoff
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fallback := logger.New("info", "console")
		fallback.Fatal("config load failed", zap.Error(err))
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting API server...",
		zap.String("environment", cfg.App.Environment),
		zap.Int("port", cfg.Server.Port),
	)

	obs := observability.New(cfg.App.Name)
	defer obs.Shutdown()

	ctx := context.Background()

	// --- Career data store ---
	store := taxonomy.NewStore(cfg.Data, log)
	if err := store.Load(); err != nil {
		zapLog.Fatal("career data load failed", zap.Error(err), zap.String("dir", cfg.Data.Dir))
	}
	zapLog.Info("Career data loaded successfully", zap.String("dir", cfg.Data.Dir))

	engine := scoring.NewEngine(store, cfg.Data, log)

	// --- Init PostgreSQL with retry ---
	var pg *database.PostgresClient
	err = retryWithBackoff(func() error {
		var err error
		pg, err = database.NewPostgres(cfg.Database.Postgres)
		if err != nil {
			return err
		}
		return pg.Ping(ctx)
	}, 15, 2*time.Second, zapLog, "PostgreSQL connection")

	if err != nil {
		zapLog.Fatal("postgres failed after retries", zap.Error(err))
	}
	defer pg.Close()
	zapLog.Info("PostgreSQL connected successfully")

	if err := userstore.EnsureSchema(ctx, pg.GetDB()); err != nil {
		zapLog.Fatal("schema migration failed", zap.Error(err))
	}

	// --- Init Redis with retry ---
	// The user store degrades to uncached reads without Redis, so a dead
	// cache is a warning, not a startup failure.
	var redisClient *database.RedisClient
	err = retryWithBackoff(func() error {
		var err error
		redisClient, err = database.NewRedis(cfg.Database.Redis)
		if err != nil {
			return err
		}
		return redisClient.Ping(ctx)
	}, 5, 2*time.Second, zapLog, "Redis connection")

	if err != nil {
		zapLog.Warn("redis unavailable, caching disabled", zap.Error(err))
		redisClient = nil
	} else {
		defer redisClient.Close()
		zapLog.Info("Redis connected successfully")
	}

	// --- Init Elasticsearch (optional) ---
	var esClient *database.ElasticsearchClient
	if cfg.Database.Elasticsearch.Enabled {
		err = retryWithBackoff(func() error {
			var err error
			esClient, err = database.NewElasticsearch(cfg.Database.Elasticsearch)
			if err != nil {
				return err
			}
			return esClient.Ping()
		}, 5, 2*time.Second, zapLog, "Elasticsearch connection")

		if err != nil {
			zapLog.Warn("elasticsearch unavailable, falling back to in-memory search", zap.Error(err))
			esClient = nil
		} else {
			zapLog.Info("Elasticsearch connected successfully")
		}
	}

	searcher := search.NewSearcher(esClient, store, log)
	if esClient != nil {
		go func() {
			if err := searcher.IndexAll(context.Background()); err != nil {
				zapLog.Error("career indexing failed", zap.Error(err))
			}
		}()
	}

	users := userstore.NewStore(pg.GetDB(), redisClientOrNil(redisClient), log)

	// --- Handlers ---
	quizHandler := quiz.NewHandler(store, engine, log)
	careersHandler := careers.NewHandler(store, searcher, log)
	collegesHandler := colleges.NewHandler(store, log)
	recsHandler := recommendations.NewHandler(store, engine, cfg.Data, log)
	userHandler := user.NewHandler(users, log)

	mux := http.NewServeMux()
	handle := func(pattern, route string, h http.HandlerFunc) {
		mux.Handle(pattern, httputil.Instrument(route, log, h))
	}

	handle("GET /api/health", "/api/health", func(w http.ResponseWriter, r *http.Request) {
		httputil.WriteData(w, http.StatusOK, map[string]string{
			"status":  "healthy",
			"service": cfg.App.Name,
			"version": cfg.App.Version,
			"time":    time.Now().UTC().Format(time.RFC3339),
		})
	})

	handle("GET /api/quiz/{grade}", "/api/quiz/:grade", quizHandler.GetQuestions)
	handle("POST /api/quiz/submit", "/api/quiz/submit", quizHandler.Submit)

	handle("GET /api/careers/clusters", "/api/careers/clusters", careersHandler.GetClusters)
	handle("GET /api/careers/cluster/{clusterName}", "/api/careers/cluster/:clusterName", careersHandler.GetByCluster)
	handle("GET /api/careers/search", "/api/careers/search", careersHandler.Search)
	handle("GET /api/careers/{careerCode}", "/api/careers/:careerCode", careersHandler.GetByCode)

	handle("GET /api/colleges", "/api/colleges", collegesHandler.GetAll)
	handle("GET /api/colleges/type/{type}", "/api/colleges/type/:type", collegesHandler.GetByType)
	handle("GET /api/colleges/search", "/api/colleges/search", collegesHandler.Search)
	handle("GET /api/colleges/{collegeName}", "/api/colleges/:collegeName", collegesHandler.GetDetails)

	handle("POST /api/recommendations/personalized", "/api/recommendations/personalized", recsHandler.Personalized)
	handle("GET /api/recommendations/trending", "/api/recommendations/trending", recsHandler.Trending)

	handle("POST /api/user/quiz-results", "/api/user/quiz-results", userHandler.SaveQuizResult)
	handle("GET /api/user/{userId}/quiz-history", "/api/user/:userId/quiz-history", userHandler.GetQuizHistory)
	handle("POST /api/user/preferences", "/api/user/preferences", userHandler.SavePreferences)
	handle("GET /api/user/{userId}/preferences", "/api/user/:userId/preferences", userHandler.GetPreferences)
	handle("GET /api/user/{userId}/dashboard", "/api/user/:userId/dashboard", userHandler.GetDashboard)

	mux.Handle("GET /metrics", promhttp.Handler())
	// net/http/pprof registers on the default mux.
	mux.Handle("/debug/pprof/", http.DefaultServeMux)

	corsMiddleware := cors.New(cors.Options{
		AllowedOrigins: cfg.Server.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	})

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      corsMiddleware.Handler(httputil.Recover(log, mux)),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	go func() {
		zapLog.Info("HTTP server listening", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLog.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	zapLog.Info("Shutdown signal received, draining connections...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("Error during server shutdown", zap.Error(err))
	}
	zapLog.Info("Server stopped")
}

// redisClientOrNil unwraps the optional cache client for the user store.
func redisClientOrNil(c *database.RedisClient) *redis.Client {
	if c == nil {
		return nil
	}
	return c.GetClient()
}
