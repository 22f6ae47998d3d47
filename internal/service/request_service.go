package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"shareit/internal/domain"
	"shareit/internal/models"

	"github.com/rs/zerolog"
)

type RequestService struct {
	repo   domain.Repository
	logger *zerolog.Logger
}

func NewRequestService(repo domain.Repository, logger *zerolog.Logger) *RequestService {
	return &RequestService{
		repo:   repo,
		logger: logger,
	}
}

func (s *RequestService) Create(ctx context.Context, userID int64, req *models.RequestCreate) (*models.ItemRequest, error) {
	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user %d", ErrNotFound, userID)
	}

	if strings.TrimSpace(req.Description) == "" {
		return nil, fmt.Errorf("%w: request description is required", ErrBadRequest)
	}

	request := &models.ItemRequest{
		Description: req.Description,
		RequesterID: userID,
		Created:     time.Now(),
	}
	created, err := s.repo.CreateRequest(ctx, request)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("request_id", created.ID).Int64("user_id", userID).Msg("item request created")
	return created, nil
}

// FindAllByRequester lists the caller's own requests with responses attached.
func (s *RequestService) FindAllByRequester(ctx context.Context, userID int64) ([]*models.RequestView, error) {
	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user %d", ErrNotFound, userID)
	}

	requests, err := s.repo.GetRequestsByRequester(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.toViews(ctx, requests)
}

// FindAll lists other users' requests, so the caller can browse what to offer.
func (s *RequestService) FindAll(ctx context.Context, userID int64, from, size *int) ([]*models.RequestView, error) {
	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user %d", ErrNotFound, userID)
	}

	total, err := s.repo.CountRequests(ctx)
	if err != nil {
		return nil, err
	}
	page, err := resolvePage(total, from, size)
	if err != nil {
		return nil, err
	}

	requests, err := s.repo.GetAllRequests(ctx, page)
	if err != nil {
		return nil, err
	}

	others := make([]*models.ItemRequest, 0, len(requests))
	for _, r := range requests {
		if r.RequesterID != userID {
			others = append(others, r)
		}
	}
	return s.toViews(ctx, others)
}

func (s *RequestService) FindByID(ctx context.Context, userID, requestID int64) (*models.RequestView, error) {
	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user %d", ErrNotFound, userID)
	}

	request, err := s.repo.GetRequestByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, fmt.Errorf("%w: request %d", ErrNotFound, requestID)
	}

	return s.toView(ctx, request)
}

func (s *RequestService) toViews(ctx context.Context, requests []*models.ItemRequest) ([]*models.RequestView, error) {
	views := make([]*models.RequestView, 0, len(requests))
	for _, r := range requests {
		view, err := s.toView(ctx, r)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}

func (s *RequestService) toView(ctx context.Context, request *models.ItemRequest) (*models.RequestView, error) {
	items, err := s.repo.GetItemsByRequest(ctx, request.ID)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []*models.Item{}
	}
	return &models.RequestView{
		ID:          request.ID,
		Description: request.Description,
		Created:     request.Created,
		Items:       items,
	}, nil
}
