package repository

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/Astemirdum/library-admin/admin/internal/model"
	"github.com/Astemirdum/library-admin/admin/internal/service/penalty"
)

var (
	_ penalty.Store     = (*repository)(nil)
	_ penalty.PairStore = (*pairStore)(nil)
)

var penaltyColumns = []string{
	"id", "transaction_id", "user_id", "fine", "status", "waive_reason", "waived_by", "updated_at",
}

// unpaidCond matches NULL and explicit pending rows.
var unpaidCond = sq.Or{sq.Eq{"status": nil}, sq.Eq{"status": string(model.PenaltyPending)}}

func (r *repository) Settings(ctx context.Context) (model.FineSettings, error) {
	return selectOne[model.FineSettings](ctx, r.db,
		qb.Select("student_daily_fine", "faculty_daily_fine", "student_borrow_days", "faculty_borrow_days").
			From(settingsTableName).
			Where(sq.Eq{"id": 1}))
}

func (r *repository) UpdateSettings(ctx context.Context, s model.FineSettings) error {
	q := `
insert into library_settings (id, student_daily_fine, faculty_daily_fine, student_borrow_days, faculty_borrow_days)
values (1, @student_fine, @faculty_fine, @student_days, @faculty_days)
on conflict (id) do update
    set student_daily_fine  = excluded.student_daily_fine,
        faculty_daily_fine  = excluded.faculty_daily_fine,
        student_borrow_days = excluded.student_borrow_days,
        faculty_borrow_days = excluded.faculty_borrow_days`
	_, err := r.db.Exec(ctx, q, pgx.NamedArgs{
		"student_fine": s.StudentDailyFine,
		"faculty_fine": s.FacultyDailyFine,
		"student_days": s.StudentBorrowDays,
		"faculty_days": s.FacultyBorrowDays,
	})
	return err
}

// WithPairLock serialises every writer of one (transaction, borrower) pair
// behind a transaction-scoped advisory lock.
func (r *repository) WithPairLock(ctx context.Context, transactionID, userID int64, fn func(ctx context.Context, q penalty.PairStore) error) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `select pg_advisory_xact_lock($1::int, $2::int)`, transactionID, userID); err != nil {
			return errors.Wrap(err, "advisory lock")
		}
		return fn(ctx, &pairStore{tx: tx})
	})
}

func (r *repository) OverdueCandidates(ctx context.Context) ([]model.OverdueCandidate, error) {
	return selectAll[model.OverdueCandidate](ctx, r.db,
		qb.Select("t.id as transaction_id", "t.user_id", "u.role", "t.transaction_date", "t.due_date").
			From(transactionsTableName+" t").
			Join(usersTableName+" u on u.id = t.user_id").
			Where(sq.Eq{"t.transaction_type": string(model.TransactionBorrow), "t.status": string(model.StatusBorrowed)}).
			OrderBy("t.id"))
}

func (r *repository) LostItem(ctx context.Context, transactionID int64) (model.LostItem, error) {
	return selectOne[model.LostItem](ctx, r.db,
		qb.Select(
			"t.id as transaction_id", "t.user_id", "u.role", "t.status", "t.transaction_date",
			"t.book_copy_id", "t.research_paper_id",
			"coalesce(bc.price, rp.price, 0) as price",
			"coalesce(b.title, rp.title, '') as title",
		).
			From(transactionsTableName+" t").
			Join(usersTableName+" u on u.id = t.user_id").
			LeftJoin(copiesTableName+" bc on bc.id = t.book_copy_id").
			LeftJoin(booksTableName+" b on b.id = bc.book_id").
			LeftJoin(researchTableName+" rp on rp.id = t.research_paper_id").
			Where(sq.Eq{"t.id": transactionID}))
}

func (r *repository) GetPenalty(ctx context.Context, id int64) (model.Penalty, error) {
	return selectOne[model.Penalty](ctx, r.db,
		qb.Select(penaltyColumns...).From(penaltiesTableName).Where(sq.Eq{"id": id}))
}

func (r *repository) ListPenalties(ctx context.Context, filter model.PenaltyFilter) ([]model.PenaltyDetail, error) {
	b := qb.Select(
		"p.id", "p.transaction_id", "p.user_id", "p.fine", "p.status", "p.waive_reason", "p.waived_by", "p.updated_at",
		"u.name as user_name", "u.email",
		"coalesce(b.title, rp.title, '') as item_title",
		"t.transaction_date", "t.due_date", "t.return_date",
	).
		From(penaltiesTableName+" p").
		Join(usersTableName+" u on u.id = p.user_id").
		Join(transactionsTableName+" t on t.id = p.transaction_id").
		LeftJoin(copiesTableName+" bc on bc.id = t.book_copy_id").
		LeftJoin(booksTableName+" b on b.id = bc.book_id").
		LeftJoin(researchTableName+" rp on rp.id = t.research_paper_id").
		OrderBy("p.updated_at desc", "p.id desc")

	switch model.PenaltyStatus(filter.Status) {
	case "":
	case model.PenaltyPending:
		b = b.Where(sq.Or{sq.Eq{"p.status": nil}, sq.Eq{"p.status": filter.Status}})
	default:
		b = b.Where(sq.Eq{"p.status": filter.Status})
	}
	if filter.UserID > 0 {
		b = b.Where(sq.Eq{"p.user_id": filter.UserID})
	}
	return selectAll[model.PenaltyDetail](ctx, r.db, b)
}

func (r *repository) DeletePenalty(ctx context.Context, id int64) error {
	return execOne(ctx, r.db, qb.Delete(penaltiesTableName).Where(sq.Eq{"id": id}))
}

func (r *repository) Summary(ctx context.Context) (model.PenaltySummary, error) {
	q := `
with s as (
    select coalesce((select student_borrow_days from library_settings where id = 1), 3) as student_days,
           coalesce((select faculty_borrow_days from library_settings where id = 1), 7) as faculty_days
),
latest_unpaid as (
    select distinct on (transaction_id, user_id) fine
    from penalties
    where status is null or status = 'Pending Payment'
    order by transaction_id, user_id, id desc
)
select (select count(*) from latest_unpaid)                as unpaid_count,
       (select coalesce(sum(fine), 0) from latest_unpaid)  as unpaid_total,
       (select count(*)
        from transactions t
                 join users u on u.id = t.user_id
                 cross join s
        where t.transaction_type = 'borrow'
          and t.status = 'Borrowed'
          and current_date - t.transaction_date::date >
              case when coalesce(u.role, '') in ('', 'Student') then s.student_days else s.faculty_days end
       )                                                   as overdue_count,
       (select count(*) from penalties where status = 'Paid')                  as paid_count,
       (select coalesce(sum(fine), 0) from penalties where status = 'Paid')    as paid_total,
       (select count(*) from penalties where status = 'Waived')                as waived_count,
       (select count(*) from penalties where updated_at >= now() - interval '7 days')  as recent_7_days,
       (select count(*) from penalties where updated_at >= now() - interval '30 days') as recent_30_days`
	return queryOne[model.PenaltySummary](ctx, r.db, q)
}

func (r *repository) DeleteOnTimePenalties(ctx context.Context) (int64, error) {
	q := `
delete from penalties p
    using transactions t
where t.id = p.transaction_id
  and t.status = 'Returned'
  and t.return_date is not null
  and t.return_date::date <= t.due_date::date
  and (p.status is null or p.status = 'Pending Payment')`
	tag, err := r.db.Exec(ctx, q)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *repository) DeleteDuplicateUnpaid(ctx context.Context) (int64, error) {
	q := `
delete from penalties p
where (p.status is null or p.status = 'Pending Payment')
  and exists (select 1
              from penalties newer
              where newer.transaction_id = p.transaction_id
                and newer.user_id = p.user_id
                and (newer.status is null or newer.status = 'Pending Payment')
                and newer.id > p.id)`
	tag, err := r.db.Exec(ctx, q)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *repository) WriteAudit(ctx context.Context, entry model.AuditEntry) error {
	_, err := exec(ctx, r.db, qb.Insert(auditTableName).
		Columns("penalty_id", "action", "actor", "details").
		Values(entry.PenaltyID, entry.Action, entry.Actor, entry.Details))
	return err
}

type pairStore struct {
	tx pgx.Tx
}

func (s *pairStore) Transaction(ctx context.Context, transactionID int64) (model.Transaction, error) {
	return selectOne[model.Transaction](ctx, s.tx,
		qb.Select(transactionColumns...).From(transactionsTableName).Where(sq.Eq{"id": transactionID}))
}

func (s *pairStore) LatestPenalty(ctx context.Context, transactionID, userID int64) (model.Penalty, error) {
	return selectOne[model.Penalty](ctx, s.tx,
		qb.Select(penaltyColumns...).
			From(penaltiesTableName).
			Where(sq.Eq{"transaction_id": transactionID, "user_id": userID}).
			OrderBy("updated_at desc", "id desc").
			Limit(1))
}

func (s *pairStore) PenaltyForUpdate(ctx context.Context, id int64) (model.Penalty, error) {
	return selectOne[model.Penalty](ctx, s.tx,
		qb.Select(penaltyColumns...).From(penaltiesTableName).Where(sq.Eq{"id": id}).Suffix("for update"))
}

func (s *pairStore) InsertPenalty(ctx context.Context, transactionID, userID int64, fine decimal.Decimal) (int64, error) {
	return insertReturningID(ctx, s.tx, qb.Insert(penaltiesTableName).
		Columns("transaction_id", "user_id", "fine", "status", "updated_at").
		Values(transactionID, userID, fine, string(model.PenaltyPending), time.Now()))
}

func (s *pairStore) UpdateFine(ctx context.Context, id int64, fine decimal.Decimal) error {
	return execOne(ctx, s.tx, qb.Update(penaltiesTableName).
		Set("fine", fine).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}))
}

func (s *pairStore) DeleteUnpaid(ctx context.Context, transactionID, userID, belowID int64) (int64, error) {
	b := qb.Delete(penaltiesTableName).
		Where(sq.Eq{"transaction_id": transactionID, "user_id": userID}).
		Where(unpaidCond)
	if belowID > 0 {
		b = b.Where(sq.Lt{"id": belowID})
	}
	return exec(ctx, s.tx, b)
}

func (s *pairStore) MarkItemLost(ctx context.Context, item model.LostItem) error {
	switch {
	case item.BookCopyID != nil:
		return execOne(ctx, s.tx, qb.Update(copiesTableName).
			Set("status", string(model.ItemLost)).
			Where(sq.Eq{"id": *item.BookCopyID}))
	case item.ResearchPaperID != nil:
		return execOne(ctx, s.tx, qb.Update(researchTableName).
			Set("status", string(model.ItemLost)).
			Where(sq.Eq{"id": *item.ResearchPaperID}))
	}
	return errors.New("transaction references no item")
}

func (s *pairStore) Settle(ctx context.Context, id int64, status model.PenaltyStatus, reason, actor *string) (model.Penalty, error) {
	return selectOne[model.Penalty](ctx, s.tx, qb.Update(penaltiesTableName).
		Set("status", string(status)).
		Set("waive_reason", reason).
		Set("waived_by", actor).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Suffix("returning "+joinColumns(penaltyColumns)))
}
