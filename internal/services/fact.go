package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"tourbooking/internal/domain"
	"tourbooking/internal/pagination"
)

type factService struct {
	repo       domain.FactRepository
	pagingOpts pagination.Options
}

// NewFactService creates a FactService with the given repository.
func NewFactService(repo domain.FactRepository, pagingOpts pagination.Options) domain.FactService {
	return &factService{repo: repo, pagingOpts: pagingOpts}
}

func (s *factService) CreateFact(ctx context.Context, fact *domain.Fact) error {
	fact.Text = strings.TrimSpace(fact.Text)
	if fact.Text == "" {
		return fmt.Errorf("%w: text is required", domain.ErrInvalidInput)
	}
	fact.Views = 0
	fact.CreatedAt = time.Now()
	if err := s.repo.Create(ctx, fact); err != nil {
		return fmt.Errorf("create fact: %w", err)
	}
	return nil
}

func (s *factService) DeleteFact(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if err == domain.ErrNotFound {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete fact: %w", err)
	}
	return nil
}

func (s *factService) ListFacts(ctx context.Context, filter domain.Filter, sort domain.Sort, pg domain.Pagination) (*domain.Page[*domain.Fact], error) {
	return pagination.Paginate(ctx, s.repo, filter, sort, pg, s.pagingOpts)
}
