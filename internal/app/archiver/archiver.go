// Package archiver runs the back-office side of the hand-off: it consumes
// checkout order events and persists them under the order key prefix.
package archiver

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"yolimar/configs"
	"yolimar/configs/loader/dotEnvLoader"
	k "yolimar/internal/delivery/kafka"
	"yolimar/internal/repository/filestore"
	"yolimar/internal/repository/redisstore"
	"yolimar/pkg/logger"
	logrusLogger "yolimar/pkg/logger/logrus"
)

const retryCount = 3

func Run() {
	envLoader := dotEnvLoader.DotEnvLoader{}
	cfg := configs.MustLoad(envLoader)
	log := logrusLogger.NewLogger("logs/archiver.json")
	storeLog := logger.NewLogger(cfg)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if !cfg.KF.Enabled {
		log.Fatal("archiver requires KAFKA_ENABLED=true")
	}

	var store k.OrderStore
	if cfg.ST.Backend == configs.BackendRedis {
		redisStore, err := redisstore.NewStore(ctx, cfg, "storefront:", storeLog)
		if err != nil {
			log.Fatalf("failed to connect to redis store: %v", err)
		}
		store = redisStore
	} else {
		fileStore, err := filestore.NewStore(cfg.ST.DataDir, storeLog)
		if err != nil {
			log.Fatalf("failed to open file store: %v", err)
		}
		store = fileStore
	}

	handler := k.NewOrderHandler(store, cfg.ST.OrderKeyPrefix, retryCount, log)
	consumer, err := k.NewConsumer(cfg, handler, log, 1)
	if err != nil {
		log.Fatalf("failed to create consumer: %v", err)
	}

	go func() {
		consumer.Start()
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)
	<-sigChan
	log.Info("Shutting down...")

	wg := &sync.WaitGroup{}
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := consumer.Stop(); err != nil {
			log.Errorf("failed to stop consumer: %v", err)
		}
	}()
	wg.Wait()
}
