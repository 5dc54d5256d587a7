package service

import (
	"context"
	"strings"

	"github.com/Astemirdum/library-admin/admin/internal/errs"
	"github.com/Astemirdum/library-admin/admin/internal/model"
	"go.uber.org/zap"
)

func (s *Service) ListShelves(ctx context.Context) ([]model.ShelfLocation, error) {
	return s.repo.ListShelves(ctx)
}

func (s *Service) CreateShelf(ctx context.Context, loc model.ShelfLocation) (model.ShelfLocation, error) {
	col, err := normalizeColumn(loc.ShelfColumn)
	if err != nil {
		return model.ShelfLocation{}, err
	}
	if loc.ShelfNumber < 1 || loc.ShelfRow < 1 {
		return model.ShelfLocation{}, errs.Validation("shelf_number and shelf_row must be positive")
	}
	loc.ShelfColumn = col
	return s.repo.CreateShelf(ctx, loc)
}

func (s *Service) DeleteShelf(ctx context.Context, id int64) error {
	return s.repo.DeleteShelf(ctx, id)
}

// AddShelfGrid fills a rows x columns rectangle for one shelf; cells that already
// exist are counted, not failed.
func (s *Service) AddShelfGrid(ctx context.Context, shelfNumber int, req model.ShelfGridRequest) (model.GridReport, error) {
	if shelfNumber < 1 {
		return model.GridReport{}, errs.Validation("shelf_number must be positive")
	}
	report := model.GridReport{Errors: []model.GridError{}}
	for c := 0; c < req.Columns; c++ {
		col := columnName(c)
		for row := 1; row <= req.Rows; row++ {
			created, err := s.repo.InsertShelfCell(ctx, model.ShelfLocation{
				ShelfNumber: shelfNumber,
				ShelfColumn: col,
				ShelfRow:    row,
			})
			switch {
			case err != nil:
				s.log.Warn("insert shelf cell", zap.Int("shelf", shelfNumber), zap.String("column", col), zap.Int("row", row), zap.Error(err))
				report.Failed++
				report.Errors = append(report.Errors, model.GridError{Column: col, Row: row, Error: err.Error()})
			case created:
				report.Created++
			default:
				report.Existed++
			}
		}
	}
	return report, nil
}

func (s *Service) RemoveShelfRow(ctx context.Context, shelfNumber, row int) (model.GridReport, error) {
	if row < 1 {
		return model.GridReport{}, errs.Validation("row must be positive")
	}
	return s.removeCells(ctx, model.ShelfCellFilter{ShelfNumber: shelfNumber, Row: &row})
}

func (s *Service) RemoveShelfColumn(ctx context.Context, shelfNumber int, column string) (model.GridReport, error) {
	col, err := normalizeColumn(column)
	if err != nil {
		return model.GridReport{}, err
	}
	return s.removeCells(ctx, model.ShelfCellFilter{ShelfNumber: shelfNumber, Column: &col})
}

func (s *Service) RemoveShelfNumber(ctx context.Context, shelfNumber int) (model.GridReport, error) {
	return s.removeCells(ctx, model.ShelfCellFilter{ShelfNumber: shelfNumber})
}

func (s *Service) removeCells(ctx context.Context, f model.ShelfCellFilter) (model.GridReport, error) {
	n, err := s.repo.DeleteShelfCells(ctx, f)
	if err != nil {
		return model.GridReport{}, err
	}
	if n == 0 {
		return model.GridReport{}, errs.ErrNotFound
	}
	return model.GridReport{Removed: n, Errors: []model.GridError{}}, nil
}

// columnName maps 0 -> A ... 25 -> Z.
func columnName(i int) string {
	return string(rune('A' + i))
}

func normalizeColumn(col string) (string, error) {
	col = strings.ToUpper(strings.TrimSpace(col))
	if len(col) != 1 || col[0] < 'A' || col[0] > 'Z' {
		return "", errs.Validation("shelf_column must be a single letter A-Z")
	}
	return col, nil
}
