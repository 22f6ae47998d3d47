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

type ItemService struct {
	repo   domain.Repository
	logger *zerolog.Logger
}

func NewItemService(repo domain.Repository, logger *zerolog.Logger) *ItemService {
	return &ItemService{
		repo:   repo,
		logger: logger,
	}
}

func (s *ItemService) Create(ctx context.Context, userID int64, req *models.ItemCreate) (*models.Item, error) {
	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user %d", ErrNotFound, userID)
	}

	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: item name is required", ErrBadRequest)
	}
	if req.Available == nil {
		return nil, fmt.Errorf("%w: availability is required", ErrBadRequest)
	}

	item := &models.Item{
		Name:        req.Name,
		Description: req.Description,
		Available:   *req.Available,
		OwnerID:     userID,
		RequestID:   req.RequestID,
	}
	created, err := s.repo.CreateItem(ctx, item)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("item_id", created.ID).Int64("owner_id", userID).Msg("item created")
	return created, nil
}

// Update applies a partial edit; only the owner may change an item.
func (s *ItemService) Update(ctx context.Context, userID, itemID int64, patch *models.ItemPatch) (*models.Item, error) {
	item, err := s.repo.GetItemByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, fmt.Errorf("%w: item %d", ErrNotFound, itemID)
	}
	if item.OwnerID != userID {
		s.logger.Warn().Int64("user_id", userID).Int64("item_id", itemID).Msg("edit denied, not the owner")
		return nil, fmt.Errorf("%w: user %d does not own item %d", ErrForbidden, userID, itemID)
	}

	if patch.Name != nil {
		item.Name = *patch.Name
	}
	if patch.Description != nil {
		item.Description = *patch.Description
	}
	if patch.Available != nil {
		item.Available = *patch.Available
	}

	updated, err := s.repo.UpdateItem(ctx, item)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("item_id", itemID).Msg("item updated")
	return updated, nil
}

// FindByID projects the item with its comments; the nearest bookings are
// attached only when the caller is the owner.
func (s *ItemService) FindByID(ctx context.Context, userID, itemID int64) (*models.ItemView, error) {
	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user %d", ErrNotFound, userID)
	}

	item, err := s.repo.GetItemByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, fmt.Errorf("%w: item %d", ErrNotFound, itemID)
	}

	return s.projectItem(ctx, item, item.OwnerID == userID, time.Now())
}

// FindAllByOwner lists the caller's items with the owner projection applied.
func (s *ItemService) FindAllByOwner(ctx context.Context, userID int64, from, size *int) ([]*models.ItemView, error) {
	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user %d", ErrNotFound, userID)
	}

	total, err := s.repo.CountItemsByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}
	page, err := resolvePage(total, from, size)
	if err != nil {
		return nil, err
	}

	items, err := s.repo.GetItemsByOwner(ctx, userID, page)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	views := make([]*models.ItemView, 0, len(items))
	for _, item := range items {
		view, err := s.projectItem(ctx, item, true, now)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}

// Search finds available items whose name or description contains the text.
// Blank text is an empty result, not an error.
func (s *ItemService) Search(ctx context.Context, userID int64, text string, from, size *int) ([]*models.Item, error) {
	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user %d", ErrNotFound, userID)
	}

	if strings.TrimSpace(text) == "" {
		return []*models.Item{}, nil
	}

	total, err := s.repo.CountSearchItems(ctx, text)
	if err != nil {
		return nil, err
	}
	page, err := resolvePage(total, from, size)
	if err != nil {
		return nil, err
	}

	items, err := s.repo.SearchItems(ctx, text, page)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []*models.Item{}
	}
	return items, nil
}

// AddComment accepts a comment only from a user who actually finished an
// approved rental of the item.
func (s *ItemService) AddComment(ctx context.Context, userID, itemID int64, text string) (*models.CommentView, error) {
	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user %d", ErrNotFound, userID)
	}

	item, err := s.repo.GetItemByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, fmt.Errorf("%w: item %d", ErrNotFound, itemID)
	}

	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: comment text is required", ErrBadRequest)
	}

	bookings, err := s.repo.GetBookingsByBookerAndItem(ctx, userID, itemID)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	qualified := false
	for _, b := range bookings {
		if b.Status == models.StatusApproved && b.End.Before(now) {
			qualified = true
			break
		}
	}
	if !qualified {
		s.logger.Warn().Int64("user_id", userID).Int64("item_id", itemID).Msg("comment rejected, no finished rental")
		return nil, fmt.Errorf("%w: user %d has not rented item %d", ErrBadRequest, userID, itemID)
	}

	comment := &models.Comment{
		ItemID:   itemID,
		AuthorID: userID,
		Text:     text,
		Created:  now,
	}
	created, err := s.repo.CreateComment(ctx, comment)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("comment_id", created.ID).Int64("item_id", itemID).Msg("comment added")
	return &models.CommentView{
		ID:         created.ID,
		Text:       created.Text,
		AuthorName: user.Name,
		Created:    created.Created,
	}, nil
}

// projectItem builds the read model for one item: comments always, nearest
// bookings only in owner mode. With two approved bookings around now the
// earlier one is last and the later one is next; a single approved booking
// lands on one side by its start time.
func (s *ItemService) projectItem(ctx context.Context, item *models.Item, ownerMode bool, now time.Time) (*models.ItemView, error) {
	view := &models.ItemView{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		Available:   item.Available,
		RequestID:   item.RequestID,
		Comments:    []models.CommentView{},
	}

	comments, err := s.repo.GetCommentsByItem(ctx, item.ID)
	if err != nil {
		return nil, err
	}
	if len(comments) > 0 {
		authors := make(map[int64]string)
		for _, c := range comments {
			name, ok := authors[c.AuthorID]
			if !ok {
				author, err := s.repo.GetUserByID(ctx, c.AuthorID)
				if err != nil {
					return nil, err
				}
				if author != nil {
					name = author.Name
				}
				authors[c.AuthorID] = name
			}
			view.Comments = append(view.Comments, models.CommentView{
				ID:         c.ID,
				Text:       c.Text,
				AuthorName: name,
				Created:    c.Created,
			})
		}
	}

	if !ownerMode {
		return view, nil
	}

	nearest, err := s.repo.GetTwoNearestApprovedBookings(ctx, item.OwnerID, item.ID)
	if err != nil {
		return nil, err
	}
	switch len(nearest) {
	case 2:
		view.LastBooking = toBookingRef(nearest[0])
		view.NextBooking = toBookingRef(nearest[1])
	case 1:
		if nearest[0].Start.After(now) {
			view.NextBooking = toBookingRef(nearest[0])
		} else {
			view.LastBooking = toBookingRef(nearest[0])
		}
	}
	return view, nil
}

func toBookingRef(b *models.Booking) *models.BookingRef {
	return &models.BookingRef{
		ID:       b.ID,
		BookerID: b.BookerID,
		Start:    b.Start,
		End:      b.End,
	}
}
