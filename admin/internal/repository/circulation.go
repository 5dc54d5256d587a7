package repository

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"

	"github.com/Astemirdum/library-admin/admin/internal/errs"
	"github.com/Astemirdum/library-admin/admin/internal/model"
)

var transactionColumns = []string{
	"id", "transaction_type", "book_copy_id", "research_paper_id", "user_id", "reference_number",
	"transaction_date", "due_date", "return_date", "status", "receipt_image",
}

func (r *repository) GetUser(ctx context.Context, id int64) (model.User, error) {
	return selectOne[model.User](ctx, r.db, qb.Select("id", "name", "email", "role", "department", "created_at").
		From(usersTableName).
		Where(sq.Eq{"id": id}))
}

// BorrowItem locks the item, checks it is on the shelf and records the borrow.
func (r *repository) BorrowItem(ctx context.Context, t model.Transaction) (model.Transaction, error) {
	var created model.Transaction
	err := r.inTx(ctx, func(tx pgx.Tx) error {
		table, itemID := itemTable(t.BookCopyID, t.ResearchPaperID)
		if table == "" {
			return errs.Validation("transaction references no item")
		}
		status, err := lockItemStatus(ctx, tx, table, itemID)
		if err != nil {
			return err
		}
		if status != model.ItemAvailable {
			return errors.Wrapf(errs.ErrUnavailable, "item is %s", status)
		}
		created, err = selectOne[model.Transaction](ctx, tx, qb.Insert(transactionsTableName).
			Columns("transaction_type", "book_copy_id", "research_paper_id", "user_id", "reference_number",
				"transaction_date", "due_date", "status").
			Values(string(t.Type), t.BookCopyID, t.ResearchPaperID, t.UserID, t.ReferenceNumber,
				t.TransactionDate, t.DueDate, string(t.Status)).
			Suffix("returning "+joinColumns(transactionColumns)))
		if err != nil {
			return mapPgError(err)
		}
		return setItemStatus(ctx, tx, table, itemID, model.ItemBorrowed)
	})
	return created, err
}

func (r *repository) ActiveByReference(ctx context.Context, reference string) ([]model.Transaction, error) {
	return selectAll[model.Transaction](ctx, r.db, qb.Select(transactionColumns...).
		From(transactionsTableName).
		Where(sq.Eq{
			"reference_number": reference,
			"status":           string(model.StatusBorrowed),
		}).
		Where(sq.Or{sq.NotEq{"book_copy_id": nil}, sq.NotEq{"research_paper_id": nil}}).
		OrderBy("id"))
}

// UnpaidPenaltyIDs returns the latest unpaid penalty of each pair among the given transactions.
func (r *repository) UnpaidPenaltyIDs(ctx context.Context, transactionIDs []int64) ([]int64, error) {
	q := `
select distinct on (transaction_id, user_id) id
from penalties
where transaction_id = any(@ids)
  and (status is null or status = 'Pending Payment')
  and fine > 0
order by transaction_id, user_id, id desc`
	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"ids": transactionIDs})
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowTo[int64])
}

func (r *repository) ReturnItems(ctx context.Context, transactionIDs []int64, returnedAt time.Time, receipt *string) ([]model.Transaction, error) {
	var returned []model.Transaction
	err := r.inTx(ctx, func(tx pgx.Tx) error {
		var err error
		returned, err = selectAll[model.Transaction](ctx, tx, qb.Update(transactionsTableName).
			Set("status", string(model.StatusReturned)).
			Set("return_date", returnedAt).
			Set("receipt_image", receipt).
			Where(sq.Eq{"id": transactionIDs, "status": string(model.StatusBorrowed)}).
			Suffix("returning "+joinColumns(transactionColumns)))
		if err != nil {
			return err
		}
		if len(returned) != len(transactionIDs) {
			return errors.Wrap(errs.ErrInvalidState, "some items were returned concurrently")
		}
		for _, t := range returned {
			table, itemID := itemTable(t.BookCopyID, t.ResearchPaperID)
			if err := setItemStatus(ctx, tx, table, itemID, model.ItemAvailable); err != nil {
				return err
			}
		}
		return nil
	})
	return returned, err
}

func (r *repository) SetReceipt(ctx context.Context, reference, receipt string) (int64, error) {
	return exec(ctx, r.db, qb.Update(transactionsTableName).
		Set("receipt_image", receipt).
		Where(sq.Eq{"reference_number": reference, "status": string(model.StatusReturned)}))
}

func (r *repository) ListTransactions(ctx context.Context, filter model.TransactionFilter) ([]model.Transaction, error) {
	b := qb.Select(transactionColumns...).From(transactionsTableName).OrderBy("transaction_date desc", "id desc")
	if filter.Status != "" {
		b = b.Where(sq.Eq{"status": filter.Status})
	}
	if filter.UserID > 0 {
		b = b.Where(sq.Eq{"user_id": filter.UserID})
	}
	if filter.ReferenceNumber != "" {
		b = b.Where(sq.Eq{"reference_number": filter.ReferenceNumber})
	}
	return selectAll[model.Transaction](ctx, r.db, b)
}
