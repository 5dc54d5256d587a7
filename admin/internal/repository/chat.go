package repository

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/Astemirdum/library-admin/admin/internal/chatbot"
	"github.com/Astemirdum/library-admin/admin/internal/model"
)

var (
	_ chatbot.CatalogReader = (*repository)(nil)
	_ chatbot.SessionStore  = (*repository)(nil)
)

// Read-only lookups behind the chat assistant tools.

func (r *repository) SearchBooks(ctx context.Context, query string, limit int) ([]model.CatalogBook, error) {
	like := "%" + query + "%"
	return selectAll[model.CatalogBook](ctx, r.db, catalogFrom().
		Where(sq.NotEq{"c.status": string(model.ItemRemoved)}).
		Where(sq.Or{
			sq.ILike{"b.title": like},
			sq.ILike{"b.author": like},
			sq.ILike{"b.genre": like},
			sq.ILike{"b.department": like},
			sq.ILike{"b.isbn": like},
		}).
		OrderBy("b.title", "b.id", "c.copy_number").
		Limit(uint64(limit)))
}

func (r *repository) BookAvailability(ctx context.Context, bookID int64) ([]model.CatalogBook, error) {
	return selectAll[model.CatalogBook](ctx, r.db, catalogFrom().
		Where(sq.Eq{"b.id": bookID}).
		Where(sq.NotEq{"c.status": string(model.ItemRemoved)}).
		OrderBy("c.copy_number"))
}

func (r *repository) SearchResearch(ctx context.Context, query, author string, limit int) ([]model.ResearchHit, error) {
	b := qb.Select(
		"rp.id", "rp.title", "rp.abstract", "rp.department", "rp.year_publication", "rp.status",
		"coalesce(array_agg(ra.author_name order by ra.id) filter (where ra.id is not null), '{}') as authors",
	).
		From(researchTableName+" rp").
		LeftJoin(researchAuthorsTableName+" ra on ra.research_paper_id = rp.id").
		Where(sq.NotEq{"rp.status": string(model.ItemRemoved)}).
		GroupBy("rp.id").
		OrderBy("rp.year_publication desc nulls last", "rp.title").
		Limit(uint64(limit))
	if query != "" {
		like := "%" + query + "%"
		b = b.Where(sq.Or{
			sq.ILike{"rp.title": like},
			sq.ILike{"rp.abstract": like},
			sq.ILike{"rp.department": like},
			sq.Expr("exists (select 1 from research_authors x where x.research_paper_id = rp.id and x.author_name ilike ?)", like),
		})
	}
	if author != "" {
		b = b.Where(sq.Expr("exists (select 1 from research_authors x where x.research_paper_id = rp.id and x.author_name ilike ?)", "%"+author+"%"))
	}
	return selectAll[model.ResearchHit](ctx, r.db, b)
}

// RecommendFromHistory suggests items sharing a classification with what the user borrowed before.
func (r *repository) RecommendFromHistory(ctx context.Context, userID int64, kind string, limit int) ([]model.Recommendation, error) {
	if kind == "research" {
		q := `
select 'research' as kind, rp.id, rp.title, coalesce(string_agg(ra.author_name, ', '), '') as author, 'history' as basis
from research_papers rp
         left join research_authors ra on ra.research_paper_id = rp.id
where rp.status = 'Available'
  and rp.department in (select p.department
                        from transactions t
                                 join research_papers p on p.id = t.research_paper_id
                        where t.user_id = @user_id)
  and rp.id not in (select research_paper_id from transactions where user_id = @user_id and research_paper_id is not null)
group by rp.id
order by rp.year_publication desc nulls last
limit @limit`
		return queryAll[model.Recommendation](ctx, r.db, q, pgx.NamedArgs{"user_id": userID, "limit": limit})
	}
	q := `
select 'book' as kind, b.id, b.title, b.author, 'history' as basis
from books b
where exists (select 1 from book_copies c where c.book_id = b.id and c.status = 'Available')
  and coalesce(case when b.is_using_department then b.department end, b.genre) in (
        select coalesce(case when bb.is_using_department then bb.department end, bb.genre)
        from transactions t
                 join book_copies c on c.id = t.book_copy_id
                 join books bb on bb.id = c.book_id
        where t.user_id = @user_id)
  and b.id not in (select c.book_id
                   from transactions t
                            join book_copies c on c.id = t.book_copy_id
                   where t.user_id = @user_id)
order by b.created_at desc
limit @limit`
	return queryAll[model.Recommendation](ctx, r.db, q, pgx.NamedArgs{"user_id": userID, "limit": limit})
}

// RecommendByDepartment matches items to the user's own department.
func (r *repository) RecommendByDepartment(ctx context.Context, userID int64, kind string, limit int) ([]model.Recommendation, error) {
	if kind == "research" {
		q := `
select 'research' as kind, rp.id, rp.title, coalesce(string_agg(ra.author_name, ', '), '') as author, 'department' as basis
from research_papers rp
         join users u on u.id = @user_id and u.department is not null and rp.department ilike u.department
         left join research_authors ra on ra.research_paper_id = rp.id
where rp.status = 'Available'
group by rp.id
order by rp.year_publication desc nulls last
limit @limit`
		return queryAll[model.Recommendation](ctx, r.db, q, pgx.NamedArgs{"user_id": userID, "limit": limit})
	}
	q := `
select 'book' as kind, b.id, b.title, b.author, 'department' as basis
from books b
         join users u on u.id = @user_id and u.department is not null and b.department ilike u.department
where exists (select 1 from book_copies c where c.book_id = b.id and c.status = 'Available')
order by b.created_at desc
limit @limit`
	return queryAll[model.Recommendation](ctx, r.db, q, pgx.NamedArgs{"user_id": userID, "limit": limit})
}

func (r *repository) PopularBooks(ctx context.Context, metric string, limit int) ([]model.PopularBook, error) {
	order := "borrow_count desc, rating desc"
	switch metric {
	case "highest_rated":
		order = "rating desc, borrow_count desc"
	case "recently_added":
		order = "b.created_at desc"
	}
	q := `
select b.id                                                              as book_id,
       b.title,
       b.author,
       (select count(*)
        from transactions t
                 join book_copies c on c.id = t.book_copy_id
        where c.book_id = b.id
          and t.transaction_type = 'borrow')                            as borrow_count,
       (select count(*) from book_copies c where c.book_id = b.id and c.status = 'Available') as available,
       coalesce((select avg(stars)::float8 from ratings rt where rt.book_id = b.id), 0) as rating
from books b
where exists (select 1 from book_copies c where c.book_id = b.id and c.status <> 'Removed')
order by ` + order + `
limit @limit`
	return queryAll[model.PopularBook](ctx, r.db, q, pgx.NamedArgs{"limit": limit})
}

func (r *repository) BorrowedItems(ctx context.Context, userID int64) ([]model.BorrowedItem, error) {
	q := `
select t.id                                                 as transaction_id,
       coalesce(b.title, rp.title, '')                      as title,
       case when t.book_copy_id is not null then 'book' else 'research' end as item_type,
       t.due_date,
       t.due_date::date < current_date                      as overdue
from transactions t
         left join book_copies c on c.id = t.book_copy_id
         left join books b on b.id = c.book_id
         left join research_papers rp on rp.id = t.research_paper_id
where t.user_id = @user_id
  and t.status = 'Borrowed'
order by t.due_date`
	return queryAll[model.BorrowedItem](ctx, r.db, q, pgx.NamedArgs{"user_id": userID})
}

func (r *repository) TransactionHistory(ctx context.Context, userID int64, limit int) ([]model.HistoryItem, error) {
	q := `
select t.id                            as transaction_id,
       coalesce(b.title, rp.title, '') as title,
       t.transaction_type,
       t.transaction_date,
       t.return_date,
       t.status
from transactions t
         left join book_copies c on c.id = t.book_copy_id
         left join books b on b.id = c.book_id
         left join research_papers rp on rp.id = t.research_paper_id
where t.user_id = @user_id
order by t.transaction_date desc
limit @limit`
	return queryAll[model.HistoryItem](ctx, r.db, q, pgx.NamedArgs{"user_id": userID, "limit": limit})
}

func (r *repository) Categories(ctx context.Context) ([]string, error) {
	q := `
select distinct coalesce(case when is_using_department then department end, genre) as category
from books
where coalesce(case when is_using_department then department end, genre) is not null
order by category`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowTo[string])
}

// Chat session persistence.

func (r *repository) History(ctx context.Context, sessionID string, limit int) ([]model.ChatMessage, error) {
	q := `
select role, content, created_at
from (select id, role, content, created_at
      from chat_messages
      where session_id = @session_id
      order by id desc
      limit @limit) m
order by id`
	return queryAll[model.ChatMessage](ctx, r.db, q, pgx.NamedArgs{"session_id": sessionID, "limit": limit})
}

func (r *repository) Append(ctx context.Context, sessionID string, msgs ...model.ChatMessage) error {
	if len(msgs) == 0 {
		return nil
	}
	b := qb.Insert(chatMessagesTableName).Columns("session_id", "role", "content", "created_at")
	for _, m := range msgs {
		at := m.CreatedAt
		if at.IsZero() {
			at = time.Now()
		}
		b = b.Values(sessionID, string(m.Role), m.Content, at)
	}
	_, err := exec(ctx, r.db, b)
	return err
}

func (r *repository) Clear(ctx context.Context, sessionID string) error {
	_, err := exec(ctx, r.db, qb.Delete(chatMessagesTableName).Where(sq.Eq{"session_id": sessionID}))
	return err
}

// Trim keeps the newest keep messages of a session.
func (r *repository) Trim(ctx context.Context, sessionID string, keep int) error {
	q := `
delete from chat_messages
where session_id = @session_id
  and id not in (select id from chat_messages where session_id = @session_id order by id desc limit @keep)`
	_, err := r.db.Exec(ctx, q, pgx.NamedArgs{"session_id": sessionID, "keep": keep})
	return err
}

// Expire drops sessions idle since before the cutoff.
func (r *repository) Expire(ctx context.Context, before time.Time) (int64, error) {
	q := `
delete from chat_messages
where session_id in (select session_id from chat_messages group by session_id having max(created_at) < @before)`
	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"before": before})
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
