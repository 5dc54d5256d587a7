package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/Astemirdum/library-admin/admin/internal/model"
)

var shelfColumns = []string{"id", "shelf_number", "shelf_column", "shelf_row"}

func (r *repository) ListShelves(ctx context.Context) ([]model.ShelfLocation, error) {
	return selectAll[model.ShelfLocation](ctx, r.db, qb.Select(shelfColumns...).
		From(shelvesTableName).
		OrderBy("shelf_number", "shelf_column", "shelf_row"))
}

func (r *repository) CreateShelf(ctx context.Context, loc model.ShelfLocation) (model.ShelfLocation, error) {
	created, err := selectOne[model.ShelfLocation](ctx, r.db, qb.Insert(shelvesTableName).
		Columns("shelf_number", "shelf_column", "shelf_row").
		Values(loc.ShelfNumber, loc.ShelfColumn, loc.ShelfRow).
		Suffix("returning "+joinColumns(shelfColumns)))
	return created, mapPgError(err)
}

// InsertShelfCell reports false when the cell already exists.
func (r *repository) InsertShelfCell(ctx context.Context, loc model.ShelfLocation) (bool, error) {
	n, err := exec(ctx, r.db, qb.Insert(shelvesTableName).
		Columns("shelf_number", "shelf_column", "shelf_row").
		Values(loc.ShelfNumber, loc.ShelfColumn, loc.ShelfRow).
		Suffix("on conflict (shelf_number, shelf_column, shelf_row) do nothing"))
	if err != nil {
		return false, mapPgError(err)
	}
	return n == 1, nil
}

func (r *repository) DeleteShelf(ctx context.Context, id int64) error {
	return execOne(ctx, r.db, qb.Delete(shelvesTableName).Where(sq.Eq{"id": id}))
}

func (r *repository) DeleteShelfCells(ctx context.Context, filter model.ShelfCellFilter) (int64, error) {
	b := qb.Delete(shelvesTableName).Where(sq.Eq{"shelf_number": filter.ShelfNumber})
	if filter.Column != nil {
		b = b.Where(sq.Eq{"shelf_column": *filter.Column})
	}
	if filter.Row != nil {
		b = b.Where(sq.Eq{"shelf_row": *filter.Row})
	}
	return exec(ctx, r.db, b)
}
