package main

import (
	"time"

	"go.uber.org/zap"

	"lingua/internal/config"
	"lingua/internal/mailer"
	"lingua/internal/mq"
	"lingua/internal/mqhandler"
	redisclient "lingua/internal/redis"
	"lingua/internal/util"
	"lingua/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.New()
	defer log.Sync()

	log.Info("Starting delivery worker...")

	// Init Redis
	rdb := redisclient.NewClient(cfg.Redis)
	defer rdb.Close()

	deduper := util.NewDeduper(rdb, time.Hour)
	sender := mailer.NewSMTPDispatcher(cfg.SMTP)

	handler := mqhandler.NewDigestEmailHandler(sender, deduper, log)

	log.Info("Initializing digest email consumer", zap.String("queue", mq.DigestEmailRequestedQueue))
	consumer, err := mq.NewConsumer(cfg.MQ.URL, mq.DigestEmailRequestedQueue, mq.DigestEmailRequestedKey, log)
	if err != nil {
		log.Fatal("failed to init consumer", zap.Error(err))
	}
	defer consumer.Close()

	consumer.SetHandler(handler.HandleDigestEmailRequested)
	go func() {
		if err := consumer.StartConsuming(); err != nil {
			log.Fatal("consumer failed", zap.Error(err))
		}
	}()

	log.Info("Consumer started, worker is ready to deliver digests")

	// Keep worker running
	select {}
}
