package services

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"tourbooking/internal/domain"
	"tourbooking/internal/pagination"
)

var emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

type subscriberService struct {
	repo       domain.SubscriberRepository
	pagingOpts pagination.Options
}

// NewSubscriberService creates a SubscriberService with the given repository.
func NewSubscriberService(repo domain.SubscriberRepository, pagingOpts pagination.Options) domain.SubscriberService {
	return &subscriberService{repo: repo, pagingOpts: pagingOpts}
}

// Subscribe records a newsletter subscription. Idempotent: subscribing an
// already-subscribed email returns the existing record with created=false.
func (s *subscriberService) Subscribe(ctx context.Context, email string) (*domain.Subscriber, bool, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if !emailRegex.MatchString(email) {
		return nil, false, fmt.Errorf("%w: invalid email", domain.ErrInvalidInput)
	}

	if existing, err := s.repo.GetByEmail(ctx, email); err == nil {
		return existing, false, nil
	} else if err != domain.ErrNotFound {
		return nil, false, fmt.Errorf("get subscriber: %w", err)
	}

	sub := &domain.Subscriber{
		Email:     email,
		Status:    domain.SubscriberActive,
		CreatedAt: time.Now(),
	}
	if err := s.repo.Create(ctx, sub); err != nil {
		if err == domain.ErrConflict {
			// Lost a race with a concurrent subscribe for the same email.
			existing, getErr := s.repo.GetByEmail(ctx, email)
			if getErr != nil {
				return nil, false, fmt.Errorf("get subscriber after conflict: %w", getErr)
			}
			return existing, false, nil
		}
		return nil, false, fmt.Errorf("create subscriber: %w", err)
	}
	return sub, true, nil
}

func (s *subscriberService) Unsubscribe(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if err == domain.ErrNotFound {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete subscriber: %w", err)
	}
	return nil
}

func (s *subscriberService) ListSubscribers(ctx context.Context, filter domain.Filter, sort domain.Sort, pg domain.Pagination) (*domain.Page[*domain.Subscriber], error) {
	return pagination.Paginate(ctx, s.repo, filter, sort, pg, s.pagingOpts)
}
