package app

import (
	"context"
	"fmt"
	"io"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-admin/admin/config"
	"github.com/Astemirdum/library-admin/admin/internal/model"
	"github.com/Astemirdum/library-admin/admin/internal/notify"
	"github.com/Astemirdum/library-admin/admin/internal/scheduler"
	"github.com/Astemirdum/library-admin/admin/internal/service/penalty"
	"github.com/Astemirdum/library-admin/admin/migrations"
	"github.com/Astemirdum/library-admin/pkg/kafka"
	"github.com/Astemirdum/library-admin/pkg/logger"
	"github.com/Astemirdum/library-admin/pkg/postgres"
)

// One-shot maintenance entry points for cron or manual runs. Events go to
// Kafka when configured; without brokers nothing listens, so they are dropped.

type dropPublisher struct{ log *zap.Logger }

func (d dropPublisher) Publish(_ context.Context, ev model.Event) error {
	d.log.Debug("event dropped", zap.String("type", string(ev.Type)), zap.Int64("user_id", ev.UserID))
	return nil
}

func jobPublisher(cfg *config.Config, log *zap.Logger) (scheduler.Publisher, func()) {
	if !cfg.Kafka.Enabled() {
		return dropPublisher{log: log}, func() {}
	}
	producer, err := kafka.NewProducer(cfg.Kafka)
	if err != nil {
		log.Warn("kafka unavailable, events dropped", zap.Error(err))
		return dropPublisher{log: log}, func() {}
	}
	return notify.NewKafkaPublisher(producer, kafka.NotificationTopic), func() {
		if err := producer.Close(); err != nil {
			log.Warn("kafka producer close", zap.Error(err))
		}
	}
}

// Migrate applies the embedded schema migrations.
func Migrate(ctx context.Context, cfg *config.Config) error {
	log := logger.NewLogger(cfg.Log, "migrate")
	db, err := postgres.NewPostgresDB(ctx, &cfg.Database, nil)
	if err != nil {
		return err
	}
	defer db.Close()
	if err := postgres.Migrate(db, migrations.MigrationFiles); err != nil {
		return err
	}
	log.Info("migrations applied")
	return nil
}

// SweepPenalties runs the overdue pass, or the cleanup pass when cleanup is set.
func SweepPenalties(ctx context.Context, cfg *config.Config, cleanup bool, out io.Writer) error {
	log := logger.NewLogger(cfg.Log, "penalties")
	db, repo := openStore(ctx, cfg, log)
	defer db.Close()

	pub, closePub := jobPublisher(cfg, log)
	defer closePub()

	payMode, err := penalty.ParsePayMode(cfg.Penalty.PayMode)
	if err != nil {
		return err
	}
	svc := penalty.NewService(repo, pub, log, penalty.WithPayMode(payMode))
	if cleanup {
		rep, err := svc.Cleanup(ctx)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(out, "removed %d on-time and %d duplicate penalties\n", rep.OnTimeRemoved, rep.DuplicateRemoved)
		return err
	}
	rep, err := svc.ProcessOverdue(ctx)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "processed %d: %d created, %d updated, %d skipped, %d failed\n",
		rep.Processed, rep.Created, rep.Updated, rep.Skipped, rep.Failed)
	return err
}

// Remind runs one reminder pass immediately.
func Remind(ctx context.Context, cfg *config.Config, out io.Writer) error {
	log := logger.NewLogger(cfg.Log, "remind")
	db, repo := openStore(ctx, cfg, log)
	defer db.Close()

	pub, closePub := jobPublisher(cfg, log)
	defer closePub()

	rep, err := newScheduler(cfg, repo, pub, log).RunOnce(ctx)
	if err != nil {
		return errors.Wrap(err, "reminders")
	}
	_, err = fmt.Fprintf(out, "due %d, overdue %d, skipped %d, failed %d\n",
		rep.DueSent, rep.OverdueSent, rep.Skipped, rep.Failed)
	return err
}
