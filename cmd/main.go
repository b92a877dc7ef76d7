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

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/odishoodeesh/textpost-server/internal/api/http/handler"
	"github.com/odishoodeesh/textpost-server/internal/api/http/httpcontext"
	"github.com/odishoodeesh/textpost-server/internal/api/http/middleware"
	"github.com/odishoodeesh/textpost-server/internal/api/http/router"
	httpServer "github.com/odishoodeesh/textpost-server/internal/api/http/server"
	"github.com/odishoodeesh/textpost-server/internal/api/http/web"
	"github.com/odishoodeesh/textpost-server/internal/config"
	"github.com/odishoodeesh/textpost-server/internal/logger"
	"github.com/odishoodeesh/textpost-server/internal/model"
	"github.com/odishoodeesh/textpost-server/internal/repository/postgres"
	"github.com/odishoodeesh/textpost-server/internal/server"
	"github.com/odishoodeesh/textpost-server/internal/service"
	"github.com/odishoodeesh/textpost-server/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	_ = godotenv.Load()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer db.Close()

	userRepo := postgres.NewUserRepository(db)
	postRepo := postgres.NewPostRepository(db)
	tokenManager := token.NewJWT(cfg.JWT.Secret)
	ctxMgr := httpcontext.NewManager()

	authService := service.NewAuth(userRepo, tokenManager, logger)
	postService := service.NewPost(postRepo, logger)

	frontend, err := frontendHandler(cfg.Web)
	if err != nil {
		logger.Fatal("failed to initialize web shim", "error", err)
	}

	if cfg.Web.Mode == config.ModeProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := router.New(
		handler.NewHealth(cfg.Web.Mode),
		handler.NewAuth(authService, logger),
		handler.NewPost(postService, ctxMgr, logger),
		middleware.NewLogging(logger),
		middleware.NewAuthenticate(tokenManager, ctxMgr, logger),
		frontend,
	)
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
		err := s.Start(sl)
		if err != nil {
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

func frontendHandler(cfg config.Web) (gin.HandlerFunc, error) {
	if cfg.Mode == config.ModeProduction {
		return web.NewSPA(cfg.StaticDir).Handle, nil
	}
	proxy, err := web.NewDevProxy(cfg.DevServerURL)
	if err != nil {
		return nil, err
	}
	return proxy.Handle, nil
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
