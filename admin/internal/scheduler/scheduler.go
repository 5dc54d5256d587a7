// Package scheduler runs the daily due-date reminder and overdue notice pass.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-admin/admin/internal/errs"
	"github.com/Astemirdum/library-admin/admin/internal/model"
)

const (
	JobReminders = "daily_reminders"

	KindDue     = "due"
	KindOverdue = "overdue"
)

type Store interface {
	DueTomorrow(ctx context.Context, day time.Time) ([]model.Reminder, error)
	OverdueUnpaid(ctx context.Context, day time.Time) ([]model.Reminder, error)
	LastRun(ctx context.Context, job string) (time.Time, error)
	SetLastRun(ctx context.Context, job string, at time.Time) error
	MarkReminder(ctx context.Context, transactionID int64, kind string, day time.Time) (bool, error)
	UnmarkReminder(ctx context.Context, transactionID int64, kind string, day time.Time) error
}

type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

type Publisher interface {
	Publish(ctx context.Context, event model.Event) error
}

type Report struct {
	DueSent     int `json:"due_sent"`
	OverdueSent int `json:"overdue_sent"`
	Skipped     int `json:"skipped"`
	Failed      int `json:"failed"`
}

type Scheduler struct {
	store  Store
	mailer Mailer
	pub    Publisher
	log    *zap.Logger

	runHour      int
	startupDelay time.Duration

	now   func() time.Time
	after func(d time.Duration) <-chan time.Time
}

type Option func(*Scheduler)

func WithRunHour(h int) Option {
	return func(s *Scheduler) { s.runHour = h }
}

func WithStartupDelay(d time.Duration) Option {
	return func(s *Scheduler) { s.startupDelay = d }
}

// WithClock replaces the wall clock and timer source.
func WithClock(now func() time.Time, after func(time.Duration) <-chan time.Time) Option {
	return func(s *Scheduler) {
		s.now = now
		s.after = after
	}
}

func New(store Store, mailer Mailer, pub Publisher, log *zap.Logger, opts ...Option) *Scheduler {
	s := &Scheduler{
		store:        store,
		mailer:       mailer,
		pub:          pub,
		log:          log.Named("scheduler"),
		runHour:      9,
		startupDelay: 10 * time.Second,
		now:          time.Now,
		after:        time.After,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// NextRun is the first runHour:00 strictly after now, in now's location.
func NextRun(now time.Time, runHour int) time.Time {
	y, m, d := now.Date()
	next := time.Date(y, m, d, runHour, 0, 0, 0, now.Location())
	if !next.After(now) {
		next = time.Date(y, m, d+1, runHour, 0, 0, 0, now.Location())
	}
	return next
}

// PrevRun is the latest runHour:00 at or before now.
func PrevRun(now time.Time, runHour int) time.Time {
	next := NextRun(now, runHour)
	y, m, d := next.Date()
	return time.Date(y, m, d-1, runHour, 0, 0, 0, now.Location())
}

// Run blocks until ctx is cancelled. After the startup delay it runs one pass,
// then one pass at every runHour:00.
func (s *Scheduler) Run(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return nil
	case <-s.after(s.startupDelay):
	}

	last, err := s.store.LastRun(ctx, JobReminders)
	switch {
	case errors.Is(err, errs.ErrNotFound):
		s.log.Info("first reminder pass")
	case err != nil:
		s.log.Warn("load last run", zap.Error(err))
	case last.Before(PrevRun(s.now(), s.runHour)):
		s.log.Info("catching up missed reminder pass", zap.Time("last_run", last))
	}
	s.pass(ctx)

	for {
		wait := NextRun(s.now(), s.runHour).Sub(s.now())
		s.log.Debug("next reminder pass", zap.Duration("in", wait))
		select {
		case <-ctx.Done():
			return nil
		case <-s.after(wait):
			s.pass(ctx)
		}
	}
}

func (s *Scheduler) pass(ctx context.Context) {
	report, err := s.RunOnce(ctx)
	if err != nil {
		s.log.Error("reminder pass", zap.Error(err))
		return
	}
	s.log.Info("reminder pass done",
		zap.Int("due", report.DueSent),
		zap.Int("overdue", report.OverdueSent),
		zap.Int("skipped", report.Skipped),
		zap.Int("failed", report.Failed))
}

// RunOnce sends today's reminders. A reminder already sent today is skipped,
// so repeated passes do not send duplicates.
func (s *Scheduler) RunOnce(ctx context.Context) (Report, error) {
	var report Report
	now := s.now()

	due, err := s.store.DueTomorrow(ctx, now)
	if err != nil {
		return report, errors.Wrap(err, "due tomorrow")
	}
	for _, r := range due {
		sent, err := s.notify(ctx, r, KindDue, now)
		s.tally(&report, sent, err, r)
		if sent {
			report.DueSent++
		}
	}

	overdue, err := s.store.OverdueUnpaid(ctx, now)
	if err != nil {
		return report, errors.Wrap(err, "overdue unpaid")
	}
	for _, r := range overdue {
		sent, err := s.notify(ctx, r, KindOverdue, now)
		s.tally(&report, sent, err, r)
		if sent {
			report.OverdueSent++
		}
	}

	if err := s.store.SetLastRun(ctx, JobReminders, now); err != nil {
		s.log.Warn("save last run", zap.Error(err))
	}
	return report, nil
}

func (s *Scheduler) tally(report *Report, sent bool, err error, r model.Reminder) {
	switch {
	case err != nil:
		report.Failed++
		s.log.Warn("reminder", zap.Int64("transaction_id", r.TransactionID), zap.String("email", r.Email), zap.Error(err))
	case !sent:
		report.Skipped++
	}
}

func (s *Scheduler) notify(ctx context.Context, r model.Reminder, kind string, day time.Time) (bool, error) {
	first, err := s.store.MarkReminder(ctx, r.TransactionID, kind, day)
	if err != nil {
		return false, errors.Wrap(err, "mark reminder")
	}
	if !first {
		return false, nil
	}

	subject, body, ev := compose(r, kind)
	if err := s.mailer.Send(ctx, r.Email, subject, body); err != nil {
		// leave it unmarked so the next pass retries
		if uerr := s.store.UnmarkReminder(ctx, r.TransactionID, kind, day); uerr != nil {
			s.log.Warn("unmark reminder", zap.Error(uerr))
		}
		return false, errors.Wrap(err, "send email")
	}
	if s.pub != nil {
		ev.CreatedAt = s.now()
		if err := s.pub.Publish(ctx, ev); err != nil {
			s.log.Warn("push reminder", zap.Int64("user_id", r.UserID), zap.Error(err))
		}
	}
	return true, nil
}

func compose(r model.Reminder, kind string) (string, string, model.Event) {
	due := r.DueDate.Format("January 2, 2006")
	if kind == KindDue {
		msg := fmt.Sprintf("'%s' is due tomorrow (%s). Please return or renew it on time.", r.ItemTitle, due)
		return "Library reminder: item due tomorrow",
			fmt.Sprintf("Hello %s,\n\n%s\n\nUniversity Library", r.UserName, msg),
			model.Event{
				Type:    model.EventDueReminder,
				UserID:  r.UserID,
				Title:   "Due tomorrow",
				Message: msg,
				Data:    map[string]any{"transaction_id": r.TransactionID, "due_date": due},
			}
	}
	fine := r.Fine.StringFixed(2)
	msg := fmt.Sprintf("'%s' was due on %s and is overdue. Your outstanding fine is %s.", r.ItemTitle, due, fine)
	return "Library notice: overdue item",
		fmt.Sprintf("Hello %s,\n\n%s\nPlease return the item and settle the fine at the circulation desk.\n\nUniversity Library", r.UserName, msg),
		model.Event{
			Type:    model.EventOverdueNotice,
			UserID:  r.UserID,
			Title:   "Overdue item",
			Message: msg,
			Data:    map[string]any{"transaction_id": r.TransactionID, "fine": fine},
		}
}
