package repository

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/Astemirdum/library-admin/admin/internal/model"
	"github.com/Astemirdum/library-admin/admin/internal/scheduler"
)

var _ scheduler.Store = (*repository)(nil)

func (r *repository) DueTomorrow(ctx context.Context, day time.Time) ([]model.Reminder, error) {
	q := `
select t.id                           as transaction_id,
       t.user_id,
       u.name                         as user_name,
       u.email,
       coalesce(b.title, rp.title, '') as item_title,
       t.due_date,
       0::numeric                     as fine
from transactions t
         join users u on u.id = t.user_id
         left join book_copies c on c.id = t.book_copy_id
         left join books b on b.id = c.book_id
         left join research_papers rp on rp.id = t.research_paper_id
where t.transaction_type = 'borrow'
  and t.status = 'Borrowed'
  and t.due_date::date = @day::date + 1
  and coalesce(u.email, '') <> ''
order by t.id`
	return queryAll[model.Reminder](ctx, r.db, q, pgx.NamedArgs{"day": day.Format(time.DateOnly)})
}

// OverdueUnpaid uses the latest unpaid penalty of each pair on a still-borrowed overdue transaction.
func (r *repository) OverdueUnpaid(ctx context.Context, day time.Time) ([]model.Reminder, error) {
	q := `
with latest as (
    select distinct on (transaction_id, user_id) id, transaction_id, user_id, fine
    from penalties
    where status is null or status = 'Pending Payment'
    order by transaction_id, user_id, id desc
)
select t.id                           as transaction_id,
       t.user_id,
       u.name                         as user_name,
       u.email,
       coalesce(b.title, rp.title, '') as item_title,
       t.due_date,
       p.fine
from latest p
         join transactions t on t.id = p.transaction_id
         join users u on u.id = p.user_id
         left join book_copies c on c.id = t.book_copy_id
         left join books b on b.id = c.book_id
         left join research_papers rp on rp.id = t.research_paper_id
where t.status = 'Borrowed'
  and t.due_date::date < @day::date
  and coalesce(u.email, '') <> ''
order by t.id`
	return queryAll[model.Reminder](ctx, r.db, q, pgx.NamedArgs{"day": day.Format(time.DateOnly)})
}

func (r *repository) LastRun(ctx context.Context, job string) (time.Time, error) {
	var at time.Time
	query, args, err := qb.Select("last_run_at").From(schedulerRunsTableName).Where(sq.Eq{"job": job}).ToSql()
	if err != nil {
		return at, err
	}
	if err := r.db.QueryRow(ctx, query, args...).Scan(&at); err != nil {
		return at, notFound(err)
	}
	return at, nil
}

func (r *repository) SetLastRun(ctx context.Context, job string, at time.Time) error {
	_, err := exec(ctx, r.db, qb.Insert(schedulerRunsTableName).
		Columns("job", "last_run_at").
		Values(job, at).
		Suffix("on conflict (job) do update set last_run_at = excluded.last_run_at"))
	return err
}

// MarkReminder records a send and reports false when it was already sent for that day.
func (r *repository) MarkReminder(ctx context.Context, transactionID int64, kind string, day time.Time) (bool, error) {
	n, err := exec(ctx, r.db, qb.Insert(reminderLogTableName).
		Columns("transaction_id", "kind", "for_date").
		Values(transactionID, kind, day.Format(time.DateOnly)).
		Suffix("on conflict do nothing"))
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

func (r *repository) UnmarkReminder(ctx context.Context, transactionID int64, kind string, day time.Time) error {
	_, err := exec(ctx, r.db, qb.Delete(reminderLogTableName).Where(sq.Eq{
		"transaction_id": transactionID,
		"kind":           kind,
		"for_date":       day.Format(time.DateOnly),
	}))
	return err
}
