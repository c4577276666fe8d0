package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/karpovich/webcore/internal/api"
	"github.com/karpovich/webcore/internal/middleware"
	"github.com/karpovich/webcore/pkg/accounts"
	"github.com/karpovich/webcore/pkg/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("warning: could not load .env: %v", err)
	}
	cfg := config.Load()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.ClientPlatform(),
		middleware.AccessLogger(logger),
		middleware.CORS(cfg.AllowedOrigins),
		middleware.TokenAuth([]byte(cfg.TokenSecret)),
	)

	directory := accounts.NewDirectory(seedAccounts(cfg.AuthUserID))
	issuer := middleware.NewTokenIssuer(cfg.TokenSecret, cfg.TokenTTL)
	handler := api.NewHandler(directory, issuer, api.Credentials{
		Username: cfg.AuthUsername,
		Password: cfg.AuthPassword,
		UserID:   cfg.AuthUserID,
	})
	api.RegisterRoutes(router.Group("/api"), handler)

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("server shutdown error: %v", err)
		}
	}()

	log.Printf("server listening on %s", server.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server error: %v", err)
	}
}

// seedAccounts provides the demo directory entries served until a real
// account source is attached upstream.
func seedAccounts(ownerID string) []accounts.Account {
	if ownerID == "" {
		ownerID = "u1"
	}
	return []accounts.Account{
		{ID: 42, OwnerID: ownerID, Name: "checking"},
		{ID: 123, OwnerID: ownerID, Name: "savings"},
	}
}
