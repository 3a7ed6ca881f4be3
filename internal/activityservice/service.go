// Package activityservice manages business logic of activity records.
package activityservice

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/swiftpay/swiftpay/internal/domain"
)

// Repo provides data access layer interface needed by activity service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package activityservice
type Repo interface {
	Create(ctx context.Context, arg domain.CreateActivityParams) (domain.Activity, error)
	List(ctx context.Context) ([]domain.Activity, error)
}

// Service facilitates activity service layer logic.
type Service struct {
	repo Repo
}

// New returns activity service.
func New(ar Repo) *Service {
	return &Service{
		repo: ar,
	}
}

// Record appends an activity record.
func (s *Service) Record(ctx context.Context, email, action, detail string) (domain.Activity, error) {
	l := zerolog.Ctx(ctx)

	activity, err := s.repo.Create(ctx, domain.CreateActivityParams{
		Email:  email,
		Action: action,
		Detail: detail,
	})
	if err != nil {
		l.Info().Err(err).Send()
		return domain.Activity{}, err
	}

	return activity, nil
}

// List returns recent activity records, newest first.
func (s *Service) List(ctx context.Context) ([]domain.Activity, error) {
	l := zerolog.Ctx(ctx)

	activities, err := s.repo.List(ctx)
	if err != nil {
		l.Info().Err(err).Send()
		return nil, err
	}

	return activities, nil
}
