package service

import (
	"context"
	"fmt"
	"time"

	"shareit/internal/domain"
	"shareit/internal/models"

	"github.com/rs/zerolog"
)

type listScope int

const (
	scopeBooker listScope = iota
	scopeOwner
)

// BookingService owns the booking lifecycle: it is the only writer of a
// booking's status.
type BookingService struct {
	repo   domain.Repository
	logger *zerolog.Logger
}

func NewBookingService(repo domain.Repository, logger *zerolog.Logger) *BookingService {
	return &BookingService{
		repo:   repo,
		logger: logger,
	}
}

// Create validates and persists a new booking in WAITING status.
func (s *BookingService) Create(ctx context.Context, userID int64, req *models.BookingCreate) (*models.Booking, error) {
	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user %d", ErrNotFound, userID)
	}

	item, err := s.repo.GetItemByID(ctx, req.ItemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, fmt.Errorf("%w: item %d", ErrNotFound, req.ItemID)
	}

	if !item.Available {
		s.logger.Warn().Int64("item_id", item.ID).Msg("item is not available for rent")
		return nil, fmt.Errorf("%w: item %d is not available", ErrBadRequest, item.ID)
	}

	now := time.Now()
	if !req.End.After(req.Start) || req.Start.Before(now) || req.End.Before(now) {
		s.logger.Warn().Int64("item_id", item.ID).Time("start", req.Start).Time("end", req.End).
			Msg("invalid rental period")
		return nil, fmt.Errorf("%w: invalid rental period", ErrBadRequest)
	}

	// The owner booking their own item is reported as absence, matching the
	// visibility rules of the lookup endpoints.
	if item.OwnerID == userID {
		s.logger.Warn().Int64("user_id", userID).Int64("item_id", item.ID).Msg("owner cannot book own item")
		return nil, fmt.Errorf("%w: owner cannot book own item", ErrNotFound)
	}

	booking := &models.Booking{
		ItemID:   req.ItemID,
		BookerID: userID,
		Start:    req.Start,
		End:      req.End,
		Status:   models.StatusWaiting,
	}
	created, err := s.repo.CreateBooking(ctx, booking)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("booking_id", created.ID).Int64("user_id", userID).Msg("booking requested")
	return created, nil
}

// SetStatus lets the item's owner approve or reject a waiting booking.
func (s *BookingService) SetStatus(ctx context.Context, userID, bookingID int64, approved bool) (*models.BookingView, error) {
	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user %d", ErrNotFound, userID)
	}

	booking, err := s.repo.GetBookingByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, fmt.Errorf("%w: booking %d", ErrNotFound, bookingID)
	}

	if booking.Status == models.StatusApproved && approved {
		s.logger.Warn().Int64("booking_id", bookingID).Msg("duplicate approval")
		return nil, fmt.Errorf("%w: booking %d is already approved", ErrBadRequest, bookingID)
	}

	item, err := s.repo.GetItemByID(ctx, booking.ItemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, fmt.Errorf("%w: item %d", ErrNotFound, booking.ItemID)
	}
	if item.OwnerID != userID {
		s.logger.Warn().Int64("user_id", userID).Int64("booking_id", bookingID).Msg("user is not the item owner")
		return nil, fmt.Errorf("%w: user %d is not the owner", ErrNotFound, userID)
	}

	status := models.StatusRejected
	if approved {
		status = models.StatusApproved
	}
	if err := s.repo.UpdateBookingStatus(ctx, bookingID, status); err != nil {
		return nil, err
	}
	booking.Status = status

	s.logger.Info().Int64("booking_id", bookingID).Int64("owner_id", userID).Str("status", status).
		Msg("booking status set")
	return toBookingView(booking, item), nil
}

// FindByID returns a booking to its booker or to the item's owner; anyone
// else sees absence.
func (s *BookingService) FindByID(ctx context.Context, userID, bookingID int64) (*models.BookingView, error) {
	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user %d", ErrNotFound, userID)
	}

	booking, err := s.repo.GetBookingByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, fmt.Errorf("%w: booking %d", ErrNotFound, bookingID)
	}

	item, err := s.repo.GetItemByID(ctx, booking.ItemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, fmt.Errorf("%w: item %d", ErrNotFound, booking.ItemID)
	}

	if booking.BookerID != userID && item.OwnerID != userID {
		s.logger.Warn().Int64("user_id", userID).Int64("booking_id", bookingID).
			Msg("user is neither booker nor owner")
		return nil, fmt.Errorf("%w: booking %d", ErrNotFound, bookingID)
	}

	return toBookingView(booking, item), nil
}

// FindAllForUser lists the caller's own bookings filtered by rental state.
func (s *BookingService) FindAllForUser(ctx context.Context, userID int64, stateToken string, from, size *int) ([]*models.BookingView, error) {
	return s.findAll(ctx, userID, stateToken, from, size, scopeBooker)
}

// FindAllForOwner lists bookings of the caller's items filtered by rental state.
func (s *BookingService) FindAllForOwner(ctx context.Context, userID int64, stateToken string, from, size *int) ([]*models.BookingView, error) {
	return s.findAll(ctx, userID, stateToken, from, size, scopeOwner)
}

func (s *BookingService) findAll(ctx context.Context, userID int64, stateToken string, from, size *int, scope listScope) ([]*models.BookingView, error) {
	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user %d", ErrNotFound, userID)
	}

	state, err := models.ParseState(stateToken)
	if err != nil {
		s.logger.Warn().Str("state", stateToken).Msg("unknown state filter")
		return nil, fmt.Errorf("%w: %s", ErrBadRequest, err)
	}

	var total int
	if scope == scopeBooker {
		total, err = s.repo.CountBookingsByBooker(ctx, userID)
	} else {
		total, err = s.repo.CountBookingsByOwner(ctx, userID)
	}
	if err != nil {
		return nil, err
	}

	page, err := resolvePage(total, from, size)
	if err != nil {
		return nil, err
	}

	// WAITING and REJECTED are pushed down to the store; the time-based
	// classifications are applied over the fetched page.
	var statusFilter string
	switch state {
	case models.StateWaiting:
		statusFilter = models.StatusWaiting
	case models.StateRejected:
		statusFilter = models.StatusRejected
	}

	var bookings []*models.Booking
	if scope == scopeBooker {
		bookings, err = s.repo.GetBookingsByBooker(ctx, userID, statusFilter, page)
	} else {
		bookings, err = s.repo.GetBookingsByOwner(ctx, userID, statusFilter, page)
	}
	if err != nil {
		return nil, err
	}

	if state.IsTimeClassified() {
		now := time.Now()
		filtered := make([]*models.Booking, 0, len(bookings))
		for _, b := range bookings {
			if state.Matches(b, now) {
				filtered = append(filtered, b)
			}
		}
		bookings = filtered
	}

	return s.toViews(ctx, bookings)
}

func (s *BookingService) toViews(ctx context.Context, bookings []*models.Booking) ([]*models.BookingView, error) {
	views := make([]*models.BookingView, 0, len(bookings))
	items := make(map[int64]*models.Item)
	for _, b := range bookings {
		item, ok := items[b.ItemID]
		if !ok {
			var err error
			item, err = s.repo.GetItemByID(ctx, b.ItemID)
			if err != nil {
				return nil, err
			}
			items[b.ItemID] = item
		}
		views = append(views, toBookingView(b, item))
	}
	return views, nil
}

func toBookingView(b *models.Booking, item *models.Item) *models.BookingView {
	view := &models.BookingView{
		ID:     b.ID,
		Start:  b.Start,
		End:    b.End,
		Status: b.Status,
		Item:   models.ItemRef{ID: b.ItemID},
		Booker: models.BookerRef{ID: b.BookerID},
	}
	if item != nil {
		view.Item.Name = item.Name
	}
	return view
}
