package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"

	"github.com/Astemirdum/library-admin/admin/internal/errs"
	"github.com/Astemirdum/library-admin/admin/internal/model"
)

var reservationColumns = []string{
	"id", "user_id", "book_copy_id", "research_paper_id", "status", "reservation_date", "updated_at",
}

// itemTable returns the table and id of the item a reservation or transaction points at.
func itemTable(bookCopyID, researchPaperID *int64) (string, int64) {
	if bookCopyID != nil {
		return copiesTableName, *bookCopyID
	}
	if researchPaperID != nil {
		return researchTableName, *researchPaperID
	}
	return "", 0
}

func lockItemStatus(ctx context.Context, tx pgx.Tx, table string, id int64) (model.ItemStatus, error) {
	var status model.ItemStatus
	query, args, err := qb.Select("status").From(table).Where(sq.Eq{"id": id}).Suffix("for update").ToSql()
	if err != nil {
		return "", err
	}
	if err := tx.QueryRow(ctx, query, args...).Scan(&status); err != nil {
		return "", notFound(err)
	}
	return status, nil
}

func setItemStatus(ctx context.Context, q querier, table string, id int64, status model.ItemStatus) error {
	return execOne(ctx, q, qb.Update(table).Set("status", string(status)).Where(sq.Eq{"id": id}))
}

func (r *repository) CreateReservation(ctx context.Context, req model.CreateReservationRequest) (model.Reservation, error) {
	var res model.Reservation
	err := r.inTx(ctx, func(tx pgx.Tx) error {
		table, itemID := itemTable(req.BookCopyID, req.ResearchPaperID)
		status, err := lockItemStatus(ctx, tx, table, itemID)
		if err != nil {
			return err
		}
		if status != model.ItemAvailable {
			return errors.Wrapf(errs.ErrUnavailable, "item is %s", status)
		}
		res, err = selectOne[model.Reservation](ctx, tx, qb.Insert(reservationsTableName).
			Columns("user_id", "book_copy_id", "research_paper_id", "status").
			Values(req.UserID, req.BookCopyID, req.ResearchPaperID, string(model.ReservationPending)).
			Suffix("returning "+joinColumns(reservationColumns)))
		return mapPgError(err)
	})
	return res, err
}

func (r *repository) ListReservations(ctx context.Context, status string) ([]model.ReservationDetail, error) {
	b := qb.Select(
		"r.id", "r.user_id", "r.book_copy_id", "r.research_paper_id", "r.status", "r.reservation_date", "r.updated_at",
		"u.name as user_name", "coalesce(b.title, rp.title, '') as item_title",
	).
		From(reservationsTableName + " r").
		Join(usersTableName + " u on u.id = r.user_id").
		LeftJoin(copiesTableName + " c on c.id = r.book_copy_id").
		LeftJoin(booksTableName + " b on b.id = c.book_id").
		LeftJoin(researchTableName + " rp on rp.id = r.research_paper_id").
		OrderBy("r.reservation_date desc")
	if status != "" {
		b = b.Where(sq.Eq{"r.status": status})
	}
	return selectAll[model.ReservationDetail](ctx, r.db, b)
}

// DecideReservation moves a pending reservation and its item in one transaction.
func (r *repository) DecideReservation(ctx context.Context, id int64, status model.ReservationStatus, itemStatus model.ItemStatus) (model.Reservation, error) {
	var res model.Reservation
	err := r.inTx(ctx, func(tx pgx.Tx) error {
		cur, err := selectOne[model.Reservation](ctx, tx, qb.Select(reservationColumns...).
			From(reservationsTableName).
			Where(sq.Eq{"id": id}).
			Suffix("for update"))
		if err != nil {
			return err
		}
		if cur.Status != model.ReservationPending {
			return errors.Wrapf(errs.ErrInvalidState, "reservation is %s", cur.Status)
		}
		table, itemID := itemTable(cur.BookCopyID, cur.ResearchPaperID)
		if err := setItemStatus(ctx, tx, table, itemID, itemStatus); err != nil {
			return err
		}
		res, err = selectOne[model.Reservation](ctx, tx, qb.Update(reservationsTableName).
			Set("status", string(status)).
			Set("updated_at", sq.Expr("now()")).
			Where(sq.Eq{"id": id}).
			Suffix("returning "+joinColumns(reservationColumns)))
		return err
	})
	return res, err
}

// DeleteReservation releases a held item before removing the row.
func (r *repository) DeleteReservation(ctx context.Context, id int64) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		cur, err := selectOne[model.Reservation](ctx, tx, qb.Delete(reservationsTableName).
			Where(sq.Eq{"id": id}).
			Suffix("returning "+joinColumns(reservationColumns)))
		if err != nil {
			return err
		}
		if cur.Status != model.ReservationApproved {
			return nil
		}
		table, itemID := itemTable(cur.BookCopyID, cur.ResearchPaperID)
		_, err = exec(ctx, tx, qb.Update(table).
			Set("status", string(model.ItemAvailable)).
			Where(sq.Eq{"id": itemID, "status": string(model.ItemReserved)}))
		return err
	})
}
