package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	goredis "github.com/redis/go-redis/v9"

	"github.com/dtroode/gophfeed-server/internal/api/graphql"
	httpctx "github.com/dtroode/gophfeed-server/internal/api/http/context"
	"github.com/dtroode/gophfeed-server/internal/api/http/router"
	httpServer "github.com/dtroode/gophfeed-server/internal/api/http/server"
	"github.com/dtroode/gophfeed-server/internal/cache"
	"github.com/dtroode/gophfeed-server/internal/cache/redis"
	"github.com/dtroode/gophfeed-server/internal/config"
	"github.com/dtroode/gophfeed-server/internal/logger"
	"github.com/dtroode/gophfeed-server/internal/metrics"
	"github.com/dtroode/gophfeed-server/internal/model"
	"github.com/dtroode/gophfeed-server/internal/password"
	"github.com/dtroode/gophfeed-server/internal/repository/postgres"
	"github.com/dtroode/gophfeed-server/internal/server"
	"github.com/dtroode/gophfeed-server/internal/service"
	storage "github.com/dtroode/gophfeed-server/internal/storage/minio"
	"github.com/dtroode/gophfeed-server/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	db, err := postgres.NewConection(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer db.Close()

	userRepo := postgres.NewUserRepository(db)
	postRepo := postgres.NewPostRepository(db)
	tokenManager := token.NewJWT(cfg.JWT.Secret, cfg.JWT.TTL)
	hasher := password.NewBcrypt(cfg.Password.Cost)
	ctxMgr := httpctx.NewManager()

	minioClient, err := minio.New(cfg.Storage.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.Storage.AccessKey, cfg.Storage.SecretKey, ""),
		Secure: cfg.Storage.UseSSL,
	})
	if err != nil {
		logger.Fatal("failed to create minio client", "error", err)
	}
	imageStore, err := storage.NewClient(ctx, minioClient, cfg.Storage.Bucket)
	if err != nil {
		logger.Fatal("failed to initialize image storage", "error", err)
	}

	postCache, closeCache := newPostCache(ctx, cfg.Cache, logger)
	defer closeCache()

	userService := service.NewUser(userRepo, hasher, tokenManager, logger)
	postService := service.NewPost(postRepo, userRepo, imageStore, postCache, db, logger)

	m := metrics.New()
	resolver := graphql.NewResolver(userService, postService, ctxMgr, logger)
	r := router.New(resolver, postService, imageStore, db, tokenManager, ctxMgr, m, router.Options{
		AllowedOrigins: cfg.HTTP.AllowedOrigins,
		MaxUploadBytes: cfg.HTTP.MaxUploadBytes,
		RateLimitRPS:   cfg.RateLimit.RPS,
		RateLimitBurst: cfg.RateLimit.Burst,
	}, logger)

	srv := httpServer.NewHTTPServer(r.Register(), fmt.Sprintf(":%s", cfg.HTTP.Port))
	sl := server.NewSecurityLayer(cfg.HTTP.EnableHTTPS, cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address(), "https", cfg.HTTP.EnableHTTPS)
		if err := s.Start(sl); err != nil {
			logger.Error("failed to start server", "error", err)
			stop()
		}
	}(srv)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", srv.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}

// newPostCache connects to Redis when an address is configured. An unreachable
// server disables caching instead of failing startup.
func newPostCache(ctx context.Context, cfg config.Cache, logger *logger.Logger) (model.PostCache, func()) {
	if cfg.Addr == "" {
		logger.Info("post cache disabled")
		return cache.Nop{}, func() {}
	}

	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn("redis unreachable, post cache disabled", "addr", cfg.Addr, "error", err)
		_ = client.Close()
		return cache.Nop{}, func() {}
	}

	return redis.NewPostCache(client, cfg.TTL), func() { _ = client.Close() }
}
