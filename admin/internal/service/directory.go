package service

import (
	"context"
	"strings"

	"github.com/Astemirdum/library-admin/admin/internal/model"
)

func (s *Service) ListAdministrators(ctx context.Context) ([]model.Administrator, error) {
	return s.repo.ListAdministrators(ctx)
}

func (s *Service) GetAdministrator(ctx context.Context, id int64) (model.Administrator, error) {
	return s.repo.GetAdministrator(ctx, id)
}

func (s *Service) CreateAdministrator(ctx context.Context, req model.AdministratorRequest) (model.Administrator, error) {
	req.Username = strings.TrimSpace(req.Username)
	if req.Status == "" {
		req.Status = "active"
	}
	return s.repo.CreateAdministrator(ctx, req)
}

func (s *Service) UpdateAdministrator(ctx context.Context, id int64, req model.AdministratorRequest) (model.Administrator, error) {
	req.Username = strings.TrimSpace(req.Username)
	if req.Status == "" {
		req.Status = "active"
	}
	return s.repo.UpdateAdministrator(ctx, id, req)
}

func (s *Service) DeleteAdministrator(ctx context.Context, id int64) error {
	return s.repo.DeleteAdministrator(ctx, id)
}

func (s *Service) ListRules(ctx context.Context) ([]model.Rule, error) {
	return s.repo.ListRules(ctx)
}

func (s *Service) CreateRule(ctx context.Context, req model.RuleRequest) (model.Rule, error) {
	return s.repo.CreateRule(ctx, req)
}

func (s *Service) UpdateRule(ctx context.Context, id int64, req model.RuleRequest) (model.Rule, error) {
	return s.repo.UpdateRule(ctx, id, req)
}

func (s *Service) DeleteRule(ctx context.Context, id int64) error {
	return s.repo.DeleteRule(ctx, id)
}

func (s *Service) ListFAQs(ctx context.Context) ([]model.FAQ, error) {
	return s.repo.ListFAQs(ctx)
}

func (s *Service) CreateFAQ(ctx context.Context, req model.FAQRequest) (model.FAQ, error) {
	return s.repo.CreateFAQ(ctx, req)
}

func (s *Service) UpdateFAQ(ctx context.Context, id int64, req model.FAQRequest) (model.FAQ, error) {
	return s.repo.UpdateFAQ(ctx, id, req)
}

func (s *Service) DeleteFAQ(ctx context.Context, id int64) error {
	return s.repo.DeleteFAQ(ctx, id)
}
