package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/Astemirdum/library-admin/admin/internal/model"
)

var (
	administratorColumns = []string{"id", "username", "full_name", "email", "role", "status", "created_at"}
	ruleColumns          = []string{"id", "title", "description", "created_at"}
	faqColumns           = []string{"id", "question", "answer"}
)

func (r *repository) ListAdministrators(ctx context.Context) ([]model.Administrator, error) {
	return selectAll[model.Administrator](ctx, r.db, qb.Select(administratorColumns...).
		From(administratorsTableName).
		OrderBy("id"))
}

func (r *repository) GetAdministrator(ctx context.Context, id int64) (model.Administrator, error) {
	return selectOne[model.Administrator](ctx, r.db, qb.Select(administratorColumns...).
		From(administratorsTableName).
		Where(sq.Eq{"id": id}))
}

func (r *repository) CreateAdministrator(ctx context.Context, req model.AdministratorRequest) (model.Administrator, error) {
	a, err := selectOne[model.Administrator](ctx, r.db, qb.Insert(administratorsTableName).
		Columns("username", "full_name", "email", "role", "status").
		Values(req.Username, req.FullName, req.Email, req.Role, req.Status).
		Suffix("returning "+joinColumns(administratorColumns)))
	return a, mapPgError(err)
}

func (r *repository) UpdateAdministrator(ctx context.Context, id int64, req model.AdministratorRequest) (model.Administrator, error) {
	a, err := selectOne[model.Administrator](ctx, r.db, qb.Update(administratorsTableName).
		SetMap(map[string]any{
			"username":  req.Username,
			"full_name": req.FullName,
			"email":     req.Email,
			"role":      req.Role,
			"status":    req.Status,
		}).
		Where(sq.Eq{"id": id}).
		Suffix("returning "+joinColumns(administratorColumns)))
	return a, mapPgError(err)
}

func (r *repository) DeleteAdministrator(ctx context.Context, id int64) error {
	return execOne(ctx, r.db, qb.Delete(administratorsTableName).Where(sq.Eq{"id": id}))
}

func (r *repository) ListRules(ctx context.Context) ([]model.Rule, error) {
	return selectAll[model.Rule](ctx, r.db, qb.Select(ruleColumns...).From(rulesTableName).OrderBy("id"))
}

func (r *repository) CreateRule(ctx context.Context, req model.RuleRequest) (model.Rule, error) {
	return selectOne[model.Rule](ctx, r.db, qb.Insert(rulesTableName).
		Columns("title", "description").
		Values(req.Title, req.Description).
		Suffix("returning "+joinColumns(ruleColumns)))
}

func (r *repository) UpdateRule(ctx context.Context, id int64, req model.RuleRequest) (model.Rule, error) {
	return selectOne[model.Rule](ctx, r.db, qb.Update(rulesTableName).
		Set("title", req.Title).
		Set("description", req.Description).
		Where(sq.Eq{"id": id}).
		Suffix("returning "+joinColumns(ruleColumns)))
}

func (r *repository) DeleteRule(ctx context.Context, id int64) error {
	return execOne(ctx, r.db, qb.Delete(rulesTableName).Where(sq.Eq{"id": id}))
}

func (r *repository) ListFAQs(ctx context.Context) ([]model.FAQ, error) {
	return selectAll[model.FAQ](ctx, r.db, qb.Select(faqColumns...).From(faqsTableName).OrderBy("id"))
}

func (r *repository) CreateFAQ(ctx context.Context, req model.FAQRequest) (model.FAQ, error) {
	return selectOne[model.FAQ](ctx, r.db, qb.Insert(faqsTableName).
		Columns("question", "answer").
		Values(req.Question, req.Answer).
		Suffix("returning "+joinColumns(faqColumns)))
}

func (r *repository) UpdateFAQ(ctx context.Context, id int64, req model.FAQRequest) (model.FAQ, error) {
	return selectOne[model.FAQ](ctx, r.db, qb.Update(faqsTableName).
		Set("question", req.Question).
		Set("answer", req.Answer).
		Where(sq.Eq{"id": id}).
		Suffix("returning "+joinColumns(faqColumns)))
}

func (r *repository) DeleteFAQ(ctx context.Context, id int64) error {
	return execOne(ctx, r.db, qb.Delete(faqsTableName).Where(sq.Eq{"id": id}))
}
