package penalty

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Astemirdum/library-admin/admin/internal/errs"
	"github.com/Astemirdum/library-admin/admin/internal/model"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type PayMode string

const (
	// PayStrict rejects paying a penalty that is already Paid or Waived.
	PayStrict PayMode = "strict"
	// PayIdempotent treats paying a Paid penalty as a no-op.
	PayIdempotent PayMode = "idempotent"
)

func ParsePayMode(s string) (PayMode, error) {
	switch PayMode(strings.ToLower(strings.TrimSpace(s))) {
	case PayStrict:
		return PayStrict, nil
	case PayIdempotent, "":
		return PayIdempotent, nil
	}
	return "", fmt.Errorf("unknown pay mode %q", s)
}

type Service struct {
	store   Store
	pub     Publisher
	log     *zap.Logger
	payMode PayMode
	now     func() time.Time
}

type Option func(*Service)

func WithPayMode(m PayMode) Option {
	return func(s *Service) { s.payMode = m }
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func NewService(store Store, pub Publisher, log *zap.Logger, opts ...Option) *Service {
	s := &Service{
		store:   store,
		pub:     pub,
		log:     log.Named("penalty"),
		payMode: PayIdempotent,
		now:     time.Now,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Settings returns the configured rates, falling back to defaults when the row is missing.
func (s *Service) Settings(ctx context.Context) model.FineSettings {
	set, err := s.store.Settings(ctx)
	if err != nil {
		if !errors.Is(err, errs.ErrNotFound) {
			s.log.Warn("load fine settings, using defaults", zap.Error(err))
		}
		return model.DefaultFineSettings()
	}
	return set
}

func (s *Service) UpdateSettings(ctx context.Context, set model.FineSettings) error {
	if set.StudentDailyFine.IsNegative() || set.FacultyDailyFine.IsNegative() {
		return errs.Validation("daily fine must not be negative")
	}
	return s.store.UpdateSettings(ctx, set)
}

// CreateOrUpdate keeps exactly one authoritative unpaid row per (transaction, borrower).
func (s *Service) CreateOrUpdate(ctx context.Context, transactionID, userID int64, fine decimal.Decimal) (model.UpsertResult, error) {
	if fine.IsNegative() {
		fine = decimal.Zero
	}
	fine = fine.Round(2)

	var res model.UpsertResult
	err := s.store.WithPairLock(ctx, transactionID, userID, func(ctx context.Context, q PairStore) error {
		var err error
		res, err = upsert(ctx, q, transactionID, userID, fine)
		return err
	})
	if err != nil {
		return model.UpsertResult{}, err
	}
	return res, nil
}

// upsert runs inside the pair lock of (transactionID, userID).
func upsert(ctx context.Context, q PairStore, transactionID, userID int64, fine decimal.Decimal) (model.UpsertResult, error) {
	tx, err := q.Transaction(ctx, transactionID)
	if err != nil {
		return model.UpsertResult{}, errors.Wrap(err, "load transaction")
	}
	if tx.ReturnedOnTime() {
		if _, err := q.DeleteUnpaid(ctx, transactionID, userID, 0); err != nil {
			return model.UpsertResult{}, errors.Wrap(err, "purge on-time penalties")
		}
		return model.UpsertResult{Action: model.ActionSkipped, Message: "returned on time, no penalty needed"}, nil
	}

	latest, err := q.LatestPenalty(ctx, transactionID, userID)
	switch {
	case errors.Is(err, errs.ErrNotFound):
		if _, err := q.DeleteUnpaid(ctx, transactionID, userID, 0); err != nil {
			return model.UpsertResult{}, errors.Wrap(err, "purge stray penalties")
		}
		id, err := q.InsertPenalty(ctx, transactionID, userID, fine)
		if err != nil {
			return model.UpsertResult{}, errors.Wrap(err, "insert penalty")
		}
		return model.UpsertResult{Action: model.ActionCreated, PenaltyID: id, Message: "penalty created"}, nil
	case err != nil:
		return model.UpsertResult{}, errors.Wrap(err, "latest penalty")
	case latest.Settled():
		return model.UpsertResult{
			Action:    model.ActionSkipped,
			PenaltyID: latest.ID,
			Message:   fmt.Sprintf("penalty already %s", strings.ToLower(string(latest.EffectiveStatus()))),
		}, nil
	}
	if err := q.UpdateFine(ctx, latest.ID, fine); err != nil {
		return model.UpsertResult{}, errors.Wrap(err, "update fine")
	}
	if _, err := q.DeleteUnpaid(ctx, transactionID, userID, latest.ID); err != nil {
		return model.UpsertResult{}, errors.Wrap(err, "purge older duplicates")
	}
	return model.UpsertResult{Action: model.ActionUpdated, PenaltyID: latest.ID, Message: "penalty updated"}, nil
}

// ProcessOverdue scans active borrows past their allowed period and upserts their fines.
// Recalculate is the same sweep; both endpoints share this path.
func (s *Service) ProcessOverdue(ctx context.Context) (model.BatchReport, error) {
	set := s.Settings(ctx)
	candidates, err := s.store.OverdueCandidates(ctx)
	if err != nil {
		return model.BatchReport{}, errors.Wrap(err, "overdue candidates")
	}

	report := model.BatchReport{Errors: []model.ItemError{}}
	now := s.now()
	for _, c := range candidates {
		rate, allowed := set.ForRole(c.Role)
		elapsed := ElapsedDays(c.TransactionDate, now)
		if elapsed <= allowed {
			continue
		}
		res, err := s.CreateOrUpdate(ctx, c.TransactionID, c.UserID, OverdueFine(elapsed, allowed, rate))
		if err != nil {
			s.log.Error("overdue upsert", zap.Int64("transaction_id", c.TransactionID), zap.Error(err))
			report.Fail(c.TransactionID, err)
			continue
		}
		report.Add(res)
	}
	s.log.Info("overdue sweep done",
		zap.Int("processed", report.Processed),
		zap.Int("created", report.Created),
		zap.Int("updated", report.Updated),
		zap.Int("failed", report.Failed))
	return report, nil
}

func (s *Service) Recalculate(ctx context.Context) (model.BatchReport, error) {
	return s.ProcessOverdue(ctx)
}

// MarkLost charges overdue fine plus replacement price and flags the item Lost.
func (s *Service) MarkLost(ctx context.Context, transactionIDs []int64) (model.BatchReport, error) {
	if len(transactionIDs) == 0 {
		return model.BatchReport{}, errs.Validation("transaction_ids is required")
	}
	set := s.Settings(ctx)
	report := model.BatchReport{Errors: []model.ItemError{}}
	now := s.now()

	for _, id := range transactionIDs {
		item, err := s.store.LostItem(ctx, id)
		if err != nil {
			report.Fail(id, err)
			continue
		}
		if item.Status == model.StatusReturned {
			report.Fail(id, errors.New("transaction already returned"))
			continue
		}
		rate, allowed := set.ForRole(item.Role)
		fee := OverdueFine(ElapsedDays(item.TransactionDate, now), allowed, rate).Add(item.Price).Round(2)

		// the fee and the Lost status commit together or not at all
		var res model.UpsertResult
		err = s.store.WithPairLock(ctx, id, item.UserID, func(ctx context.Context, q PairStore) error {
			var err error
			if res, err = upsert(ctx, q, id, item.UserID, fee); err != nil {
				return err
			}
			if res.Action == model.ActionSkipped {
				return errors.Wrap(errs.ErrAlreadySettled, res.Message)
			}
			return errors.Wrap(q.MarkItemLost(ctx, item), "mark item lost")
		})
		if err != nil {
			report.Fail(id, err)
			continue
		}
		report.Add(res)

		s.publish(ctx, model.Event{
			Type:    model.EventItemLost,
			UserID:  item.UserID,
			Title:   "Item marked as lost",
			Message: fmt.Sprintf("'%s' was marked as lost. A fee of %s has been charged.", item.Title, fee.StringFixed(2)),
			Data:    map[string]any{"transaction_id": id, "penalty_id": res.PenaltyID, "fee": fee.StringFixed(2)},
		})
	}
	return report, nil
}

func (s *Service) Waive(ctx context.Context, id int64, reason, actor string) (model.Penalty, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return model.Penalty{}, errs.Validation("reason is required")
	}
	p, err := s.store.GetPenalty(ctx, id)
	if err != nil {
		return model.Penalty{}, err
	}

	var waived model.Penalty
	err = s.store.WithPairLock(ctx, p.TransactionID, p.UserID, func(ctx context.Context, q PairStore) error {
		cur, err := q.PenaltyForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if cur.Settled() {
			return errors.Wrapf(errs.ErrAlreadySettled, "penalty is %s", cur.EffectiveStatus())
		}
		waived, err = q.Settle(ctx, id, model.PenaltyWaived, &reason, &actor)
		return err
	})
	if err != nil {
		return model.Penalty{}, err
	}

	s.publish(ctx, model.Event{
		Type:    model.EventPenaltyWaived,
		UserID:  waived.UserID,
		Title:   "Penalty waived",
		Message: fmt.Sprintf("Your fine of %s has been waived. Reason: %s", waived.Fine.StringFixed(2), reason),
		Data:    map[string]any{"penalty_id": id},
	})
	s.audit(ctx, model.AuditEntry{
		PenaltyID: id,
		Action:    "waive",
		Actor:     actor,
		Details:   map[string]any{"reason": reason, "fine": waived.Fine.StringFixed(2)},
	})
	return waived, nil
}

func (s *Service) Pay(ctx context.Context, id int64, info model.PaymentInfo) (model.PayResult, error) {
	p, err := s.store.GetPenalty(ctx, id)
	if err != nil {
		return model.PayResult{}, err
	}

	var (
		paid        model.Penalty
		alreadyPaid bool
	)
	err = s.store.WithPairLock(ctx, p.TransactionID, p.UserID, func(ctx context.Context, q PairStore) error {
		cur, err := q.PenaltyForUpdate(ctx, id)
		if err != nil {
			return err
		}
		switch cur.EffectiveStatus() {
		case model.PenaltyPaid:
			if s.payMode == PayStrict {
				return errors.Wrap(errs.ErrAlreadySettled, "penalty is already paid")
			}
			paid, alreadyPaid = cur, true
			return nil
		case model.PenaltyWaived:
			return errors.Wrap(errs.ErrAlreadySettled, "penalty is waived")
		}
		paid, err = q.Settle(ctx, id, model.PenaltyPaid, nil, nil)
		return err
	})
	if err != nil {
		return model.PayResult{}, err
	}
	if alreadyPaid {
		return model.PayResult{Penalty: paid, AlreadyPaid: true}, nil
	}

	amount := paid.Fine.StringFixed(2)
	s.publish(ctx, model.Event{
		Type:    model.EventPenaltyPaid,
		UserID:  paid.UserID,
		Title:   "Payment received",
		Message: fmt.Sprintf("We received your payment of %s. Thank you!", amount),
		Data:    map[string]any{"penalty_id": id, "amount": amount},
	})
	s.publish(ctx, model.Event{
		Type:      model.EventPenaltyPaid,
		Broadcast: true,
		Title:     "Penalty paid",
		Message:   fmt.Sprintf("Penalty #%d paid (%s)", id, amount),
		Data:      map[string]any{"penalty_id": id, "user_id": paid.UserID, "amount": amount},
	})
	method := info.Method
	if method == "" {
		method = "cash"
	}
	s.audit(ctx, model.AuditEntry{
		PenaltyID: id,
		Action:    "pay",
		Actor:     info.Admin,
		Details:   map[string]any{"method": method, "admin": info.Admin, "amount": amount, "note": info.Note},
	})
	return model.PayResult{Penalty: paid}, nil
}

// Cleanup is an idempotent maintenance pass; the partial unique index and the
// locked upsert normally leave nothing for it to do.
func (s *Service) Cleanup(ctx context.Context) (model.CleanupReport, error) {
	onTime, err := s.store.DeleteOnTimePenalties(ctx)
	if err != nil {
		return model.CleanupReport{}, errors.Wrap(err, "delete on-time penalties")
	}
	dups, err := s.store.DeleteDuplicateUnpaid(ctx)
	if err != nil {
		return model.CleanupReport{OnTimeRemoved: onTime}, errors.Wrap(err, "delete duplicate penalties")
	}
	if onTime > 0 || dups > 0 {
		s.log.Info("penalty cleanup", zap.Int64("on_time", onTime), zap.Int64("duplicates", dups))
	}
	return model.CleanupReport{OnTimeRemoved: onTime, DuplicateRemoved: dups}, nil
}

func (s *Service) Get(ctx context.Context, id int64) (model.Penalty, error) {
	return s.store.GetPenalty(ctx, id)
}

func (s *Service) List(ctx context.Context, filter model.PenaltyFilter) ([]model.PenaltyDetail, error) {
	return s.store.ListPenalties(ctx, filter)
}

func (s *Service) Summary(ctx context.Context) (model.PenaltySummary, error) {
	return s.store.Summary(ctx)
}

// Delete is the admin override; it removes a row regardless of status.
func (s *Service) Delete(ctx context.Context, id int64, actor string) error {
	p, err := s.store.GetPenalty(ctx, id)
	if err != nil {
		return err
	}
	if err := s.store.DeletePenalty(ctx, id); err != nil {
		return err
	}
	s.audit(ctx, model.AuditEntry{
		PenaltyID: id,
		Action:    "delete",
		Actor:     actor,
		Details:   map[string]any{"status": string(p.EffectiveStatus()), "fine": p.Fine.StringFixed(2)},
	})
	return nil
}

func (s *Service) publish(ctx context.Context, ev model.Event) {
	if s.pub == nil {
		return
	}
	if ev.CreatedAt.IsZero() {
		ev.CreatedAt = s.now()
	}
	if err := s.pub.Publish(ctx, ev); err != nil {
		s.log.Warn("publish event", zap.String("type", string(ev.Type)), zap.Error(err))
	}
}

func (s *Service) audit(ctx context.Context, entry model.AuditEntry) {
	if err := s.store.WriteAudit(ctx, entry); err != nil {
		s.log.Warn("audit log", zap.Int64("penalty_id", entry.PenaltyID), zap.String("action", entry.Action), zap.Error(err))
	}
}
