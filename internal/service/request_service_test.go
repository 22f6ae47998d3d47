package service

import (
	"context"
	"io"
	"testing"
	"time"

	"shareit/internal/models"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestRequestServiceCreate(t *testing.T) {
	logger := zerolog.New(io.Discard)
	ctx := context.Background()

	requester := &models.User{ID: 2, Name: "Requester", Email: "req@example.com"}

	t.Run("Success", func(t *testing.T) {
		repo := new(mockRepo)
		svc := NewRequestService(repo, &logger)

		repo.On("GetUserByID", ctx, int64(2)).Return(requester, nil).Once()
		repo.On("CreateRequest", ctx, mock.MatchedBy(func(r *models.ItemRequest) bool {
			return r.Description == "Need a drill" && r.RequesterID == 2 && !r.Created.IsZero()
		})).Return(&models.ItemRequest{ID: 1, Description: "Need a drill", RequesterID: 2, Created: time.Now()}, nil).Once()

		created, err := svc.Create(ctx, 2, &models.RequestCreate{Description: "Need a drill"})
		assert.NoError(t, err)
		assert.Equal(t, int64(1), created.ID)
		repo.AssertExpectations(t)
	})

	t.Run("BlankDescription", func(t *testing.T) {
		repo := new(mockRepo)
		svc := NewRequestService(repo, &logger)

		repo.On("GetUserByID", ctx, int64(2)).Return(requester, nil).Once()

		_, err := svc.Create(ctx, 2, &models.RequestCreate{Description: "  "})
		assert.ErrorIs(t, err, ErrBadRequest)
	})

	t.Run("UnknownUser", func(t *testing.T) {
		repo := new(mockRepo)
		svc := NewRequestService(repo, &logger)

		repo.On("GetUserByID", ctx, int64(99)).Return(nil, nil).Once()

		_, err := svc.Create(ctx, 99, &models.RequestCreate{Description: "Need a drill"})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestRequestServiceFindAllByRequester(t *testing.T) {
	logger := zerolog.New(io.Discard)
	ctx := context.Background()

	requester := &models.User{ID: 2, Name: "Requester", Email: "req@example.com"}

	repo := new(mockRepo)
	svc := NewRequestService(repo, &logger)

	requests := []*models.ItemRequest{{ID: 1, Description: "Need a drill", RequesterID: 2, Created: time.Now()}}
	offered := []*models.Item{{ID: 5, Name: "Drill", Available: true, OwnerID: 1, RequestID: 1}}
	repo.On("GetUserByID", ctx, int64(2)).Return(requester, nil).Once()
	repo.On("GetRequestsByRequester", ctx, int64(2)).Return(requests, nil).Once()
	repo.On("GetItemsByRequest", ctx, int64(1)).Return(offered, nil).Once()

	views, err := svc.FindAllByRequester(ctx, 2)
	assert.NoError(t, err)
	assert.Len(t, views, 1)
	assert.Len(t, views[0].Items, 1)
	assert.Equal(t, int64(5), views[0].Items[0].ID)
	repo.AssertExpectations(t)
}

func TestRequestServiceFindAll(t *testing.T) {
	logger := zerolog.New(io.Discard)
	ctx := context.Background()

	viewer := &models.User{ID: 3, Name: "Viewer", Email: "viewer@example.com"}

	t.Run("ExcludesOwnRequests", func(t *testing.T) {
		repo := new(mockRepo)
		svc := NewRequestService(repo, &logger)

		requests := []*models.ItemRequest{
			{ID: 1, Description: "Need a drill", RequesterID: 2, Created: time.Now()},
			{ID: 2, Description: "Need a ladder", RequesterID: 3, Created: time.Now()},
		}
		repo.On("GetUserByID", ctx, int64(3)).Return(viewer, nil).Once()
		repo.On("CountRequests", ctx).Return(2, nil).Once()
		repo.On("GetAllRequests", ctx, (*models.Page)(nil)).Return(requests, nil).Once()
		repo.On("GetItemsByRequest", ctx, int64(1)).Return([]*models.Item{}, nil).Once()

		views, err := svc.FindAll(ctx, 3, nil, nil)
		assert.NoError(t, err)
		assert.Len(t, views, 1)
		assert.Equal(t, int64(1), views[0].ID)
		repo.AssertExpectations(t)
	})

	t.Run("Paginated", func(t *testing.T) {
		repo := new(mockRepo)
		svc := NewRequestService(repo, &logger)

		requests := []*models.ItemRequest{{ID: 1, Description: "Need a drill", RequesterID: 2, Created: time.Now()}}
		repo.On("GetUserByID", ctx, int64(3)).Return(viewer, nil).Once()
		repo.On("CountRequests", ctx).Return(3, nil).Once()
		repo.On("GetAllRequests", ctx, &models.Page{Offset: 2, Size: 1}).Return(requests, nil).Once()
		repo.On("GetItemsByRequest", ctx, int64(1)).Return([]*models.Item{}, nil).Once()

		views, err := svc.FindAll(ctx, 3, intPtr(2), intPtr(5))
		assert.NoError(t, err)
		assert.Len(t, views, 1)
		repo.AssertExpectations(t)
	})
}

func TestRequestServiceFindByID(t *testing.T) {
	logger := zerolog.New(io.Discard)
	ctx := context.Background()

	viewer := &models.User{ID: 3, Name: "Viewer", Email: "viewer@example.com"}

	t.Run("Success", func(t *testing.T) {
		repo := new(mockRepo)
		svc := NewRequestService(repo, &logger)

		request := &models.ItemRequest{ID: 1, Description: "Need a drill", RequesterID: 2, Created: time.Now()}
		repo.On("GetUserByID", ctx, int64(3)).Return(viewer, nil).Once()
		repo.On("GetRequestByID", ctx, int64(1)).Return(request, nil).Once()
		repo.On("GetItemsByRequest", ctx, int64(1)).Return(nil, nil).Once()

		view, err := svc.FindByID(ctx, 3, 1)
		assert.NoError(t, err)
		assert.NotNil(t, view.Items)
		assert.Empty(t, view.Items)
	})

	t.Run("UnknownRequest", func(t *testing.T) {
		repo := new(mockRepo)
		svc := NewRequestService(repo, &logger)

		repo.On("GetUserByID", ctx, int64(3)).Return(viewer, nil).Once()
		repo.On("GetRequestByID", ctx, int64(77)).Return(nil, nil).Once()

		_, err := svc.FindByID(ctx, 3, 77)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestResolvePage(t *testing.T) {
	t.Run("BothAbsent", func(t *testing.T) {
		page, err := resolvePage(10, nil, nil)
		assert.NoError(t, err)
		assert.Nil(t, page)
	})

	t.Run("ClampToRemainder", func(t *testing.T) {
		page, err := resolvePage(5, intPtr(3), intPtr(10))
		assert.NoError(t, err)
		assert.Equal(t, &models.Page{Offset: 3, Size: 2}, page)
	})

	t.Run("OffsetPastEnd", func(t *testing.T) {
		page, err := resolvePage(5, intPtr(9), intPtr(10))
		assert.NoError(t, err)
		assert.Equal(t, &models.Page{Offset: 9, Size: 0}, page)
	})

	t.Run("NegativeFrom", func(t *testing.T) {
		_, err := resolvePage(5, intPtr(-1), intPtr(10))
		assert.ErrorIs(t, err, ErrBadRequest)
	})

	t.Run("ZeroSize", func(t *testing.T) {
		_, err := resolvePage(5, intPtr(0), intPtr(0))
		assert.ErrorIs(t, err, ErrBadRequest)
	})

	t.Run("LoneParam", func(t *testing.T) {
		_, err := resolvePage(5, intPtr(0), nil)
		assert.ErrorIs(t, err, ErrBadRequest)
	})
}
