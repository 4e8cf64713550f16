package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"tourbooking/internal/domain"
	"tourbooking/internal/pagination"
)

type tourService struct {
	repo       domain.TourRepository
	pagingOpts pagination.Options
}

// NewTourService creates a TourService with the given repository.
func NewTourService(repo domain.TourRepository, pagingOpts pagination.Options) domain.TourService {
	return &tourService{repo: repo, pagingOpts: pagingOpts}
}

func (s *tourService) CreateTour(ctx context.Context, tour *domain.Tour) error {
	tour.Title = strings.TrimSpace(tour.Title)
	if tour.Title == "" {
		return fmt.Errorf("%w: title is required", domain.ErrInvalidInput)
	}
	switch tour.Difficulty {
	case domain.DifficultyEasy, domain.DifficultyModerate, domain.DifficultyHard:
	default:
		return fmt.Errorf("%w: unknown difficulty %q", domain.ErrInvalidInput, tour.Difficulty)
	}
	if tour.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", domain.ErrInvalidInput)
	}
	if tour.DurationDays < 1 {
		return fmt.Errorf("%w: duration must be at least one day", domain.ErrInvalidInput)
	}

	now := time.Now()
	tour.CreatedAt = now
	tour.UpdatedAt = now
	if err := s.repo.Create(ctx, tour); err != nil {
		return fmt.Errorf("create tour: %w", err)
	}
	return nil
}

func (s *tourService) GetTour(ctx context.Context, id string) (*domain.Tour, error) {
	tour, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if err == domain.ErrNotFound {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get tour: %w", err)
	}
	return tour, nil
}

func (s *tourService) DeleteTour(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if err == domain.ErrNotFound {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete tour: %w", err)
	}
	return nil
}

func (s *tourService) ListTours(ctx context.Context, filter domain.Filter, sort domain.Sort, pg domain.Pagination) (*domain.Page[*domain.Tour], error) {
	return pagination.Paginate(ctx, s.repo, filter, sort, pg, s.pagingOpts)
}
