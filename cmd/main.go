package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"google.golang.org/api/option"

	"github.com/oksasatya/skatetube/config"
	"github.com/oksasatya/skatetube/internal/container"
	repo "github.com/oksasatya/skatetube/internal/domain/repository"
	"github.com/oksasatya/skatetube/internal/fixtures"
	"github.com/oksasatya/skatetube/internal/infrastructure/memory"
	"github.com/oksasatya/skatetube/internal/infrastructure/redisstore"
	"github.com/oksasatya/skatetube/internal/infrastructure/youtube"
	"github.com/oksasatya/skatetube/internal/interface/middleware"
	"github.com/oksasatya/skatetube/internal/router"
	"github.com/oksasatya/skatetube/pkg/helpers"
	"github.com/oksasatya/skatetube/pkg/validation"
)

func main() {
	_ = godotenv.Load() // load .env if present

	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName, cfg.Env)
	gin.SetMode(cfg.GinMode)
	validation.Init()

	if err := fixtures.Load(); err != nil {
		log.Fatalf("failed to load fixtures: %v", err)
	}

	ctx := context.Background()

	// Redis (optional)
	rdb := helpers.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if rdb != nil {
		if err := rdb.Ping(ctx).Err(); err != nil {
			helpers.LogError(logger, "redis unreachable, using in-memory stores", err, logrus.Fields{"addr": cfg.RedisAddr})
			_ = rdb.Close()
			rdb = nil
		} else {
			defer func() { _ = rdb.Close() }()
		}
	}

	// Elasticsearch (optional catalog index)
	esClient, err := helpers.NewESClient(cfg.ESAddrs(), cfg.ElasticsearchUser, cfg.ElasticsearchPass)
	if err != nil {
		log.Fatalf("failed to init elasticsearch client: %v", err)
	}

	// YouTube Data API
	var ytOpts []option.ClientOption
	if cfg.YouTubeEndpoint != "" {
		ytOpts = append(ytOpts, option.WithEndpoint(cfg.YouTubeEndpoint))
	}
	yt, err := youtube.NewClient(ctx, cfg.YouTubeAPIKey, cfg.YouTubeTimeout, ytOpts...)
	if err != nil {
		log.Fatalf("failed to init youtube client: %v", err)
	}
	if !yt.Configured() {
		logger.Warn("YOUTUBE_API_KEY is not set, search and feed endpoints will fail")
	}

	// Demo user store
	adminHash, err := helpers.HashPassword(cfg.SeedAdminPassword)
	if err != nil {
		log.Fatalf("failed to hash admin password: %v", err)
	}
	users := memory.NewUserRepository(memory.DemoUsers(adminHash)...)

	var sessions repo.SessionStore = memory.NewSessionStore()
	var feedCache repo.FeedCache = memory.NewFeedCache()
	if rdb != nil {
		sessions = redisstore.NewSessionStore(rdb)
		feedCache = redisstore.NewFeedCache(rdb)
	}

	// Provide infra singletons to container for registry auto-wiring
	container.SetConfig(cfg)
	container.SetLogger(logger)
	container.SetRedis(rdb)
	container.SetES(esClient)
	container.SetYouTube(yt)
	container.SetUsers(users)
	container.SetSessions(sessions)
	container.SetFeedCache(feedCache)

	helpers.LogInfo(logger, "backends ready", logrus.Fields{
		"redis":         rdb != nil,
		"elasticsearch": esClient != nil,
		"youtube":       yt.Configured(),
	})

	// Gin engine and global middleware
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.RealIP())
	// CORS
	corsCfg := cors.Config{
		AllowOrigins:     cfg.CORSOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader, "X-RateLimit-Remaining", "Retry-After"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	r.Use(cors.New(corsCfg))
	if cfg.HTTPLogEnabled {
		r.Use(middleware.AccessLog(logger))
	}

	// Registry: auto-register modules using container
	reg := router.NewRegistry(r)
	router.InitModules(reg)
	reg.RegisterAll()

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}
	go func() {
		logger.Infof("server starting on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("listen: %s\n", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctxShutdown); err != nil {
		logger.Fatalf("server forced to shutdown: %v", err)
	}
	logger.Info("server exited properly")
}
