package app

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-admin/admin/config"
	"github.com/Astemirdum/library-admin/admin/internal/chatbot"
	"github.com/Astemirdum/library-admin/admin/internal/handler"
	"github.com/Astemirdum/library-admin/admin/internal/notify"
	"github.com/Astemirdum/library-admin/admin/internal/receipt"
	"github.com/Astemirdum/library-admin/admin/internal/repository"
	"github.com/Astemirdum/library-admin/admin/internal/scheduler"
	"github.com/Astemirdum/library-admin/admin/internal/server"
	"github.com/Astemirdum/library-admin/admin/internal/service"
	"github.com/Astemirdum/library-admin/admin/internal/service/penalty"
	"github.com/Astemirdum/library-admin/admin/migrations"
	"github.com/Astemirdum/library-admin/pkg/kafka"
	"github.com/Astemirdum/library-admin/pkg/logger"
	"github.com/Astemirdum/library-admin/pkg/postgres"
)

const sessionSweepInterval = time.Hour

// store is the repository as seen by every component wired here.
type store interface {
	repository.Repository
	penalty.Store
	scheduler.Store
	chatbot.CatalogReader
	chatbot.SessionStore
}

func Run(cfg *config.Config) {
	log := logger.NewLogger(cfg.Log, "library-admin")
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, repo := openStore(ctx, cfg, log)

	hub := notify.NewHub(log)
	go hub.Run(ctx)
	pub, closePub := newPublisher(ctx, cfg, hub, log)

	payMode, err := penalty.ParsePayMode(cfg.Penalty.PayMode)
	if err != nil {
		log.Fatal("penalty pay mode", zap.Error(err))
	}
	penaltySvc := penalty.NewService(repo, pub, log, penalty.WithPayMode(payMode))

	store, closeStore := newReceiptStore(ctx, cfg.Receipt, log)
	var stamper service.Stamper
	if st, err := receipt.LoadStamper(cfg.Receipt.StampPath); err != nil {
		log.Warn("receipt stamp disabled", zap.String("path", cfg.Receipt.StampPath), zap.Error(err))
	} else {
		stamper = st
	}
	svc := service.NewService(repo, log,
		service.WithPublisher(pub),
		service.WithReceipts(store, stamper),
		service.WithCatalog(cfg.Catalog.UploadDomain,
			service.CoverMode(cfg.Catalog.CoverMode),
			service.Classification(cfg.Catalog.Classification)),
	)

	chat := newChatRouter(ctx, cfg.LLM, repo, log)
	go expireSessions(ctx, chat, log)

	if cfg.Scheduler.Enabled {
		sch := newScheduler(cfg, repo, pub, log)
		go func() {
			if err := sch.Run(ctx); err != nil {
				log.Error("scheduler", zap.Error(err))
			}
		}()
	}

	h := handler.New(penaltySvc, svc, chat, hub, log)
	srv := server.NewServer(cfg.Server, h.NewRouter())
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))
	go func() {
		if err := srv.Run(); err != nil {
			log.Error("server run", zap.Error(err))
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	termSig := <-sig

	log.Debug("Graceful shutdown", zap.Any("signal", termSig))

	closeCtx, closeCancel := context.WithTimeout(context.Background(), time.Second*5)
	defer closeCancel()

	if err = srv.Stop(closeCtx); err != nil {
		log.DPanic("srv.Stop", zap.Error(err))
	}
	cancel()
	closePub()
	closeStore()
	db.Close()
	log.Info("Graceful shutdown finished")
}

func openStore(ctx context.Context, cfg *config.Config, log *zap.Logger) (*pgxpool.Pool, store) {
	db, err := postgres.NewPostgresDB(ctx, &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		log.Fatal("db init", zap.Error(err))
	}
	repo, err := repository.NewRepository(db, log)
	if err != nil {
		log.Fatal("repo", zap.Error(err))
	}
	return db, repo
}

// newPublisher sends events through Kafka when brokers are configured and
// relays the topic back into the hub. Otherwise events go to the hub directly.
func newPublisher(ctx context.Context, cfg *config.Config, hub *notify.Hub, log *zap.Logger) (service.Publisher, func()) {
	if !cfg.Kafka.Enabled() {
		return hub, func() {}
	}
	producer, err := kafka.NewProducer(cfg.Kafka)
	if err != nil {
		log.Fatal("kafka.NewProducer", zap.Error(err))
	}
	consumer, err := kafka.NewConsumer(cfg.Kafka, kafka.NotificationConsumerGroup)
	if err != nil {
		log.Fatal("kafka.NewConsumer", zap.Error(err))
	}
	go kafka.Consume(ctx, log, consumer, notify.NewRelay(hub, log), kafka.NotificationTopic)

	return notify.NewKafkaPublisher(producer, kafka.NotificationTopic), func() {
		if err := consumer.Close(); err != nil {
			log.Warn("kafka consumer close", zap.Error(err))
		}
		if err := producer.Close(); err != nil {
			log.Warn("kafka producer close", zap.Error(err))
		}
	}
}

func newReceiptStore(ctx context.Context, cfg config.Receipt, log *zap.Logger) (service.ReceiptStore, func()) {
	if cfg.Store == "gcs" {
		gcs, err := receipt.NewGCSStore(ctx, cfg.Bucket)
		if err != nil {
			log.Fatal("receipt.NewGCSStore", zap.Error(err))
		}
		return gcs, func() {
			if err := gcs.Close(); err != nil {
				log.Warn("gcs close", zap.Error(err))
			}
		}
	}
	local, err := receipt.NewLocalStore(cfg.Dir)
	if err != nil {
		log.Fatal("receipt.NewLocalStore", zap.Error(err))
	}
	return local, func() {}
}

// newChatRouter runs the rule-based responder alone when no API key is set.
func newChatRouter(ctx context.Context, cfg config.LLM, repo store, log *zap.Logger) *chatbot.Router {
	var llm chatbot.LLM
	if cfg.APIKey != "" {
		client, err := chatbot.NewGenAIClient(ctx, cfg.APIKey, cfg.BaseURL, cfg.Model)
		if err != nil {
			log.Error("genai client, falling back to rule-based answers", zap.Error(err))
		} else {
			llm = client
		}
	}
	return chatbot.NewRouter(llm, repo, repo, chatbot.Config{
		MaxIterations:      cfg.MaxIterations,
		SimpleMessageLen:   cfg.SimpleMessageLen,
		SimpleMaxOutput:    cfg.SimpleMaxOutput,
		SessionMaxMessages: cfg.SessionMaxMessages,
		SessionTTL:         cfg.SessionTTL,
		Timeout:            cfg.Timeout,
		StreamDebounce:     cfg.StreamDebounce,
		StreamKeepAlive:    cfg.StreamKeepAlive,
	}, log)
}

func expireSessions(ctx context.Context, chat *chatbot.Router, log *zap.Logger) {
	t := time.NewTicker(sessionSweepInterval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-t.C:
			n, err := chat.ExpireSessions(ctx, now)
			if err != nil {
				log.Warn("expire chat sessions", zap.Error(err))
				continue
			}
			if n > 0 {
				log.Debug("chat sessions expired", zap.Int64("messages", n))
			}
		}
	}
}

func newScheduler(cfg *config.Config, repo scheduler.Store, pub scheduler.Publisher, log *zap.Logger) *scheduler.Scheduler {
	mailer := notify.NewMailer(notify.SMTPConfig{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		User:     cfg.SMTP.User,
		Password: cfg.SMTP.Password,
		From:     cfg.SMTP.From,
	}, log)
	return scheduler.New(repo, mailer, pub, log,
		scheduler.WithRunHour(cfg.Scheduler.RunHour),
		scheduler.WithStartupDelay(cfg.Scheduler.StartupDelay),
	)
}
