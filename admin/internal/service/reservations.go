package service

import (
	"context"
	"fmt"

	"github.com/Astemirdum/library-admin/admin/internal/errs"
	"github.com/Astemirdum/library-admin/admin/internal/model"
)

func (s *Service) CreateReservation(ctx context.Context, req model.CreateReservationRequest) (model.Reservation, error) {
	if (req.BookCopyID == nil) == (req.ResearchPaperID == nil) {
		return model.Reservation{}, errs.Validation("exactly one of book_copy_id or research_paper_id is required")
	}
	return s.repo.CreateReservation(ctx, req)
}

func (s *Service) ListReservations(ctx context.Context, status string) ([]model.ReservationDetail, error) {
	switch model.ReservationStatus(status) {
	case "", model.ReservationPending, model.ReservationApproved, model.ReservationRejected:
	default:
		return nil, errs.Validation("unknown status " + status)
	}
	return s.repo.ListReservations(ctx, status)
}

// ApproveReservation holds the item for the borrower.
func (s *Service) ApproveReservation(ctx context.Context, id int64) (model.Reservation, error) {
	res, err := s.repo.DecideReservation(ctx, id, model.ReservationApproved, model.ItemReserved)
	if err != nil {
		return model.Reservation{}, err
	}
	s.publish(ctx, model.Event{
		Type:    model.EventReservationApproved,
		UserID:  res.UserID,
		Title:   "Reservation approved",
		Message: fmt.Sprintf("Your reservation #%d has been approved.", res.ID),
		Data:    map[string]any{"reservation_id": res.ID},
	})
	return res, nil
}

// RejectReservation releases the item back to the shelf.
func (s *Service) RejectReservation(ctx context.Context, id int64) (model.Reservation, error) {
	res, err := s.repo.DecideReservation(ctx, id, model.ReservationRejected, model.ItemAvailable)
	if err != nil {
		return model.Reservation{}, err
	}
	s.publish(ctx, model.Event{
		Type:    model.EventReservationRejected,
		UserID:  res.UserID,
		Title:   "Reservation rejected",
		Message: fmt.Sprintf("Your reservation #%d has been rejected.", res.ID),
		Data:    map[string]any{"reservation_id": res.ID},
	})
	return res, nil
}

func (s *Service) DeleteReservation(ctx context.Context, id int64) error {
	return s.repo.DeleteReservation(ctx, id)
}
