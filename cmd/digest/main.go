package main

import (
	"context"
	"time"

	"go.uber.org/zap"

	"lingua/internal/config"
	"lingua/internal/db"
	"lingua/internal/digest"
	"lingua/internal/mailer"
	"lingua/internal/mq"
	"lingua/internal/recommender"
	"lingua/internal/repository"
	"lingua/pkg/logger"
)

// One digest pass per invocation; scheduling is the cron's job.
func main() {
	cfg := config.Load()

	log := logger.New()
	defer log.Sync()

	log.Info("Starting subscription digest run...")

	dbConn, err := db.NewConnection(cfg.DB, log)
	if err != nil {
		log.Fatal("DB initialization failed", zap.Error(err))
	}
	defer dbConn.Close()

	subscriptionRepo := repository.NewSubscriptionRepository(dbConn)
	searcher := recommender.NewClient(cfg.Recommender.URL, time.Duration(cfg.Recommender.TimeoutSeconds)*time.Second)

	var dispatcher digest.Dispatcher
	switch cfg.Digest.DeliveryMode {
	case "direct":
		dispatcher = mailer.NewSMTPDispatcher(cfg.SMTP)
	case "queue":
		producer, err := mq.NewProducer(cfg.MQ.URL)
		if err != nil {
			log.Fatal("failed to init publisher", zap.Error(err))
		}
		defer producer.Close()
		dispatcher = mailer.NewQueueDispatcher(producer)
	default:
		log.Fatal("unknown delivery mode", zap.String("mode", cfg.Digest.DeliveryMode))
	}

	builder := digest.NewBuilder(subscriptionRepo, searcher, dispatcher, log, digest.Options{
		ArticlesPerSearch: cfg.Digest.ArticlesPerSearch,
		Window:            time.Duration(cfg.Digest.WindowHours) * time.Hour,
		Render: digest.RenderOptions{
			SubscriptionsURL: cfg.Digest.SubscriptionsURL,
			SignOff:          cfg.Digest.SignOff,
		},
	})

	if err := builder.Run(context.Background()); err != nil {
		log.Fatal("digest run failed", zap.Error(err))
	}
}
