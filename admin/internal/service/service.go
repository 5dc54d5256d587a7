package service

import (
	"context"
	"time"

	"github.com/Astemirdum/library-admin/admin/internal/model"
	"github.com/Astemirdum/library-admin/admin/internal/repository"
	"go.uber.org/zap"
)

type CoverMode string

const (
	CoverBlob CoverMode = "blob"
	CoverPath CoverMode = "path"
)

type Classification string

const (
	ClassGenre             Classification = "genre"
	ClassGenreOrDepartment Classification = "genre_or_department"
)

type Publisher interface {
	Publish(ctx context.Context, event model.Event) error
}

// ReceiptStore persists uploaded return receipts and returns the stored reference.
type ReceiptStore interface {
	Save(ctx context.Context, name string, data []byte) (string, error)
}

type Stamper interface {
	Stamp(img []byte) ([]byte, error)
}

type Service struct {
	log  *zap.Logger
	repo repository.Repository

	pub      Publisher
	receipts ReceiptStore
	stamper  Stamper

	uploadDomain   string
	coverMode      CoverMode
	classification Classification

	now func() time.Time
}

type Option func(*Service)

func WithPublisher(p Publisher) Option {
	return func(s *Service) { s.pub = p }
}

func WithReceipts(store ReceiptStore, stamper Stamper) Option {
	return func(s *Service) {
		s.receipts = store
		s.stamper = stamper
	}
}

// WithCatalog selects the book schema variant and the public prefix for stored images.
func WithCatalog(uploadDomain string, cover CoverMode, class Classification) Option {
	return func(s *Service) {
		s.uploadDomain = uploadDomain
		s.coverMode = cover
		s.classification = class
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func NewService(repo repository.Repository, log *zap.Logger, opts ...Option) *Service {
	s := &Service{
		log:            log.Named("service"),
		repo:           repo,
		coverMode:      CoverPath,
		classification: ClassGenreOrDepartment,
		now:            time.Now,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

func (s *Service) publish(ctx context.Context, ev model.Event) {
	if s.pub == nil {
		return
	}
	if ev.CreatedAt.IsZero() {
		ev.CreatedAt = s.now()
	}
	if err := s.pub.Publish(ctx, ev); err != nil {
		s.log.Warn("publish event", zap.String("type", string(ev.Type)), zap.Error(err))
	}
}
