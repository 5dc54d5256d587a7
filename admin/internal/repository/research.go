package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/Astemirdum/library-admin/admin/internal/model"
	"github.com/Astemirdum/library-admin/pkg/qrcode"
)

func researchSelect() sq.SelectBuilder {
	return qb.Select(
		"rp.id", "rp.title", "rp.abstract", "rp.department", "rp.year_publication",
		"rp.shelf_location_id", "rp.qr_payload", "rp.status", "rp.price", "rp.created_at",
		"coalesce(array_agg(ra.author_name order by ra.id) filter (where ra.id is not null), '{}') as authors",
	).
		From(researchTableName + " rp").
		LeftJoin(researchAuthorsTableName + " ra on ra.research_paper_id = rp.id").
		GroupBy("rp.id")
}

func (r *repository) CreateResearch(ctx context.Context, p model.ResearchPaper) (model.ResearchPaper, error) {
	var created model.ResearchPaper
	err := r.inTx(ctx, func(tx pgx.Tx) error {
		id, err := insertReturningID(ctx, tx, qb.Insert(researchTableName).
			Columns("title", "abstract", "department", "year_publication", "shelf_location_id", "status", "price").
			Values(p.Title, p.Abstract, p.Department, p.YearPublication, p.ShelfLocationID, string(p.Status), p.Price))
		if err != nil {
			return err
		}
		if err := execOne(ctx, tx, qb.Update(researchTableName).
			Set("qr_payload", qrcode.EncodeResearch(id)).
			Where(sq.Eq{"id": id})); err != nil {
			return err
		}
		if err := insertAuthors(ctx, tx, id, p.Authors); err != nil {
			return err
		}
		created, err = selectOne[model.ResearchPaper](ctx, tx, researchSelect().Where(sq.Eq{"rp.id": id}))
		return err
	})
	return created, err
}

func insertAuthors(ctx context.Context, tx pgx.Tx, paperID int64, authors []string) error {
	if len(authors) == 0 {
		return nil
	}
	b := qb.Insert(researchAuthorsTableName).Columns("research_paper_id", "author_name")
	for _, a := range authors {
		b = b.Values(paperID, a)
	}
	_, err := exec(ctx, tx, b)
	return err
}

func (r *repository) ListResearch(ctx context.Context, filter model.ResearchFilter) ([]model.ResearchPaper, error) {
	b := researchSelect().OrderBy("rp.title", "rp.id")
	if filter.Status != "" {
		b = b.Where(sq.Eq{"rp.status": filter.Status})
	} else {
		b = b.Where(sq.NotEq{"rp.status": string(model.ItemRemoved)})
	}
	if filter.Department != "" {
		b = b.Where(sq.ILike{"rp.department": filter.Department})
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		b = b.Where(sq.Or{
			sq.ILike{"rp.title": like},
			sq.ILike{"rp.abstract": like},
			sq.Expr("exists (select 1 from research_authors x where x.research_paper_id = rp.id and x.author_name ilike ?)", like),
		})
	}
	return selectAll[model.ResearchPaper](ctx, r.db, b)
}

func (r *repository) GetResearch(ctx context.Context, id int64) (model.ResearchPaper, error) {
	return selectOne[model.ResearchPaper](ctx, r.db, researchSelect().Where(sq.Eq{"rp.id": id}))
}

func (r *repository) UpdateResearch(ctx context.Context, id int64, p model.ResearchPaper) (model.ResearchPaper, error) {
	var updated model.ResearchPaper
	err := r.inTx(ctx, func(tx pgx.Tx) error {
		if err := execOne(ctx, tx, qb.Update(researchTableName).
			SetMap(map[string]any{
				"title":             p.Title,
				"abstract":          p.Abstract,
				"department":        p.Department,
				"year_publication":  p.YearPublication,
				"shelf_location_id": p.ShelfLocationID,
				"price":             p.Price,
			}).
			Where(sq.Eq{"id": id})); err != nil {
			return err
		}
		if _, err := exec(ctx, tx, qb.Delete(researchAuthorsTableName).Where(sq.Eq{"research_paper_id": id})); err != nil {
			return err
		}
		if err := insertAuthors(ctx, tx, id, p.Authors); err != nil {
			return err
		}
		var err error
		updated, err = selectOne[model.ResearchPaper](ctx, tx, researchSelect().Where(sq.Eq{"rp.id": id}))
		return err
	})
	return updated, err
}

func (r *repository) SetResearchStatus(ctx context.Context, id int64, status model.ItemStatus) error {
	return execOne(ctx, r.db, qb.Update(researchTableName).Set("status", string(status)).Where(sq.Eq{"id": id}))
}
