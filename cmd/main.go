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

	"github.com/micropost/micropost-server/internal/api/http/router"
	httpServer "github.com/micropost/micropost-server/internal/api/http/server"
	"github.com/micropost/micropost-server/internal/cache"
	"github.com/micropost/micropost-server/internal/config"
	"github.com/micropost/micropost-server/internal/logger"
	"github.com/micropost/micropost-server/internal/model"
	"github.com/micropost/micropost-server/internal/password"
	"github.com/micropost/micropost-server/internal/repository/postgres"
	"github.com/micropost/micropost-server/internal/server"
	"github.com/micropost/micropost-server/internal/service"
	"github.com/micropost/micropost-server/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

// devSecret signs tokens when no secret is configured. Fine for local runs,
// unusable for anything else.
const devSecret = "micropost-dev-secret"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	secret := cfg.JWT.Secret
	if secret == "" {
		logger.Warn("JWT_SECRET is not set, falling back to the insecure development secret; do not run this in production")
		secret = devSecret
	}

	db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer db.Close()

	userRepo := postgres.NewUserRepository(db)
	postRepo := postgres.NewPostRepository(db)
	tokenManager := token.NewJWT(secret)

	tokenService := service.NewTokenService(tokenManager, logger)
	authService := service.NewAuth(userRepo, password.NewBcrypt(0), tokenService, logger)
	postCache := cache.NewPosts(cfg.Cache.TTL)
	postService := service.NewPost(postRepo, postCache, logger)

	r := router.New(authService, postService, tokenService, userRepo, cfg.HTTP.BodyLimit, logger)
	srv := httpServer.NewHTTPServer(r.Register(), fmt.Sprintf(":%s", cfg.HTTP.Port))

	var sl model.SecurityLayer
	if cfg.HTTP.EnableHTTPS {
		sl = server.NewTLSListener(cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)
	} else {
		sl = server.NewPlainListener()
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address())
		if err := s.Start(sl); err != nil {
			logger.Error("failed to start server", "error", err)
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
