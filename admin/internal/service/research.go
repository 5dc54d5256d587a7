package service

import (
	"context"
	"strings"

	"github.com/Astemirdum/library-admin/admin/internal/errs"
	"github.com/Astemirdum/library-admin/admin/internal/model"
)

func researchFromRequest(req model.ResearchRequest) (model.ResearchPaper, error) {
	authors := make([]string, 0, len(req.Authors))
	for _, a := range req.Authors {
		if a = strings.TrimSpace(a); a != "" {
			authors = append(authors, a)
		}
	}
	if len(authors) == 0 {
		return model.ResearchPaper{}, errs.Validation("at least one author is required")
	}
	if req.Price.IsNegative() {
		return model.ResearchPaper{}, errs.Validation("price must not be negative")
	}
	return model.ResearchPaper{
		Title:           strings.TrimSpace(req.Title),
		Abstract:        req.Abstract,
		Department:      req.Department,
		YearPublication: req.YearPublication,
		ShelfLocationID: req.ShelfLocationID,
		Status:          model.ItemAvailable,
		Price:           req.Price,
		Authors:         authors,
	}, nil
}

func (s *Service) CreateResearch(ctx context.Context, req model.ResearchRequest) (model.ResearchPaper, error) {
	p, err := researchFromRequest(req)
	if err != nil {
		return model.ResearchPaper{}, err
	}
	return s.repo.CreateResearch(ctx, p)
}

func (s *Service) ListResearch(ctx context.Context, filter model.ResearchFilter) ([]model.ResearchPaper, error) {
	if filter.Status != "" && !model.IsValidItemStatus(filter.Status) {
		return nil, errs.Validation("unknown status " + filter.Status)
	}
	return s.repo.ListResearch(ctx, filter)
}

func (s *Service) GetResearch(ctx context.Context, id int64) (model.ResearchPaper, error) {
	return s.repo.GetResearch(ctx, id)
}

func (s *Service) UpdateResearch(ctx context.Context, id int64, req model.ResearchRequest) (model.ResearchPaper, error) {
	p, err := researchFromRequest(req)
	if err != nil {
		return model.ResearchPaper{}, err
	}
	return s.repo.UpdateResearch(ctx, id, p)
}

func (s *Service) RemoveResearch(ctx context.Context, id int64) error {
	return s.repo.SetResearchStatus(ctx, id, model.ItemRemoved)
}
