package storefront

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"yolimar/configs"
	"yolimar/configs/loader/dotEnvLoader"
	"yolimar/internal/auth"
	h "yolimar/internal/delivery/http"
	k "yolimar/internal/delivery/kafka"
	"yolimar/internal/repository/filestore"
	"yolimar/internal/repository/redisstore"
	"yolimar/internal/usecase"
	"yolimar/pkg/logger"
)

func Run() {
	envLoader := dotEnvLoader.DotEnvLoader{}
	cfg := configs.MustLoad(envLoader)
	log := logger.NewLogger(cfg)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store := newStore(ctx, cfg, log)

	cartUsecase := usecase.NewCartUsecase(store, cfg.ST.CartKey, log)
	cartUsecase.Load(ctx)

	authUsecase := usecase.NewAuthUsecase(
		auth.NewStaticVerifier(cfg.AU.Users), store, cfg.ST.SessionKey, log)
	authUsecase.Load(ctx)

	var producer *k.Producer
	if cfg.KF.Enabled {
		var err error
		producer, err = k.NewProducer(cfg)
		if err != nil {
			log.Error("failed to create order event producer, checkout will not publish", "error", err)
		}
	}
	checkoutUsecase := newCheckout(cartUsecase, producer, cfg, log)

	router := h.SetupRouter(cartUsecase, checkoutUsecase, authUsecase, log)

	server := &http.Server{
		Addr:         ":" + cfg.HTTP.Port,
		Handler:      router,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	go func() {
		log.Info("Server starting", "port", cfg.HTTP.Port)
		if serverErr := server.ListenAndServe(); serverErr != nil && !errors.Is(serverErr, http.ErrServerClosed) {
			log.Error("HTTP server error", "error", serverErr)
			os.Exit(1)
		}
	}()

	metricsSrv := &http.Server{
		Addr:    ":8082",
		Handler: promhttp.Handler(),
	}

	go func() {
		log.Info("Metrics server starting", "port", 8082)
		if err := metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("HTTP metrics server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	log.Info("Stopping services")

	shutdownCtx, shutdownCancel := context.WithTimeout(ctx, 5*time.Second)
	defer shutdownCancel()
	wg := &sync.WaitGroup{}

	wg.Add(3)
	go func() {
		defer wg.Done()
		if producer != nil {
			producer.Close()
		}
	}()

	go func() {
		defer wg.Done()
		log.Info("Shutting down server...")

		if serverErr := server.Shutdown(shutdownCtx); serverErr != nil {
			log.Error("Server shutdown error", "error", serverErr)
		}

		log.Info("Server stopped")
	}()

	go func() {
		defer wg.Done()
		if serverErr := metricsSrv.Shutdown(shutdownCtx); serverErr != nil {
			log.Error("Metrics server shutdown error", "error", serverErr)
		}
		log.Info("Metrics server stopped")
	}()

	completed := make(chan struct{})

	go func() {
		wg.Wait()
		close(completed)
	}()

	select {
	case <-completed:
		log.Info("All services correctly stopped")
	case <-shutdownCtx.Done():
		log.Info("Shutdown timeout exceeded, forced stop")
	}
}

type kvStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
}

func newStore(ctx context.Context, cfg *configs.Config, log *slog.Logger) kvStore {
	if cfg.ST.Backend == configs.BackendRedis {
		store, err := redisstore.NewStore(ctx, cfg, "storefront:", log)
		if err != nil {
			log.Error("failed to connect to redis store", "error", err)
			os.Exit(1)
		}
		return store
	}

	store, err := filestore.NewStore(cfg.ST.DataDir, log)
	if err != nil {
		log.Error("failed to open file store", "error", err)
		os.Exit(1)
	}
	return store
}

// newCheckout keeps the nil producer typed as an untyped nil interface so the
// usecase's nil check works when kafka is disabled.
func newCheckout(cart *usecase.CartUsecase, producer *k.Producer, cfg *configs.Config, log *slog.Logger) *usecase.CheckoutUsecase {
	if producer == nil {
		return usecase.NewCheckoutUsecase(cart, nil, cfg.KF.Topic, cfg.ST.WhatsAppPhone, log)
	}
	return usecase.NewCheckoutUsecase(cart, producer, cfg.KF.Topic, cfg.ST.WhatsAppPhone, log)
}
