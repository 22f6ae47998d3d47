package domain

import (
	"context"
	"time"

	"shareit/internal/models"
)

// Repository is the entity store the services run against. Lookups by id
// return (nil, nil) when the row does not exist; deciding what a missing row
// means is the service's job.
type Repository interface {
	CreateUser(ctx context.Context, user *models.User) (*models.User, error)
	UpdateUser(ctx context.Context, user *models.User) (*models.User, error)
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetAllUsers(ctx context.Context) ([]*models.User, error)
	DeleteUser(ctx context.Context, id int64) error

	CreateItem(ctx context.Context, item *models.Item) (*models.Item, error)
	UpdateItem(ctx context.Context, item *models.Item) (*models.Item, error)
	GetItemByID(ctx context.Context, id int64) (*models.Item, error)
	GetItemsByOwner(ctx context.Context, ownerID int64, page *models.Page) ([]*models.Item, error)
	CountItemsByOwner(ctx context.Context, ownerID int64) (int, error)
	SearchItems(ctx context.Context, text string, page *models.Page) ([]*models.Item, error)
	CountSearchItems(ctx context.Context, text string) (int, error)
	GetItemsByRequest(ctx context.Context, requestID int64) ([]*models.Item, error)

	CreateBooking(ctx context.Context, booking *models.Booking) (*models.Booking, error)
	GetBookingByID(ctx context.Context, id int64) (*models.Booking, error)
	UpdateBookingStatus(ctx context.Context, id int64, status string) error
	GetBookingsByBooker(ctx context.Context, bookerID int64, status string, page *models.Page) ([]*models.Booking, error)
	CountBookingsByBooker(ctx context.Context, bookerID int64) (int, error)
	GetBookingsByOwner(ctx context.Context, ownerID int64, status string, page *models.Page) ([]*models.Booking, error)
	CountBookingsByOwner(ctx context.Context, ownerID int64) (int, error)
	GetTwoNearestApprovedBookings(ctx context.Context, ownerID, itemID int64) ([]*models.Booking, error)
	GetBookingsByBookerAndItem(ctx context.Context, bookerID, itemID int64) ([]*models.Booking, error)

	CreateComment(ctx context.Context, comment *models.Comment) (*models.Comment, error)
	GetCommentsByItem(ctx context.Context, itemID int64) ([]*models.Comment, error)

	CreateRequest(ctx context.Context, request *models.ItemRequest) (*models.ItemRequest, error)
	GetRequestByID(ctx context.Context, id int64) (*models.ItemRequest, error)
	GetRequestsByRequester(ctx context.Context, requesterID int64) ([]*models.ItemRequest, error)
	GetAllRequests(ctx context.Context, page *models.Page) ([]*models.ItemRequest, error)
	CountRequests(ctx context.Context) (int, error)
}

type RateLimitRepository interface {
	CheckRateLimit(ctx context.Context, key string, limit int, window time.Duration) (bool, error)
}

type BookingService interface {
	Create(ctx context.Context, userID int64, req *models.BookingCreate) (*models.Booking, error)
	SetStatus(ctx context.Context, userID, bookingID int64, approved bool) (*models.BookingView, error)
	FindByID(ctx context.Context, userID, bookingID int64) (*models.BookingView, error)
	FindAllForUser(ctx context.Context, userID int64, stateToken string, from, size *int) ([]*models.BookingView, error)
	FindAllForOwner(ctx context.Context, userID int64, stateToken string, from, size *int) ([]*models.BookingView, error)
}

type ItemService interface {
	Create(ctx context.Context, userID int64, req *models.ItemCreate) (*models.Item, error)
	Update(ctx context.Context, userID, itemID int64, patch *models.ItemPatch) (*models.Item, error)
	FindByID(ctx context.Context, userID, itemID int64) (*models.ItemView, error)
	FindAllByOwner(ctx context.Context, userID int64, from, size *int) ([]*models.ItemView, error)
	Search(ctx context.Context, userID int64, text string, from, size *int) ([]*models.Item, error)
	AddComment(ctx context.Context, userID, itemID int64, text string) (*models.CommentView, error)
}

type UserService interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	Update(ctx context.Context, userID int64, patch *models.UserPatch) (*models.User, error)
	FindByID(ctx context.Context, userID int64) (*models.User, error)
	Delete(ctx context.Context, userID int64) error
	FindAll(ctx context.Context) ([]*models.User, error)
}

type RequestService interface {
	Create(ctx context.Context, userID int64, req *models.RequestCreate) (*models.ItemRequest, error)
	FindAllByRequester(ctx context.Context, userID int64) ([]*models.RequestView, error)
	FindAll(ctx context.Context, userID int64, from, size *int) ([]*models.RequestView, error)
	FindByID(ctx context.Context, userID, requestID int64) (*models.RequestView, error)
}
