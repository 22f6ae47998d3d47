package service

import (
	"context"
	"io"
	"testing"

	"shareit/internal/models"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestUserServiceCreate(t *testing.T) {
	logger := zerolog.New(io.Discard)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo := new(mockRepo)
		svc := NewUserService(repo, &logger)

		user := &models.User{Name: "Alice", Email: "alice@example.com"}
		repo.On("GetUserByEmail", ctx, "alice@example.com").Return(nil, nil).Once()
		repo.On("CreateUser", ctx, user).Return(&models.User{ID: 1, Name: "Alice", Email: "alice@example.com"}, nil).Once()

		created, err := svc.Create(ctx, user)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), created.ID)
		repo.AssertExpectations(t)
	})

	t.Run("InvalidEmail", func(t *testing.T) {
		repo := new(mockRepo)
		svc := NewUserService(repo, &logger)

		_, err := svc.Create(ctx, &models.User{Name: "Alice", Email: "not-an-email"})
		assert.ErrorIs(t, err, ErrBadRequest)
		repo.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		repo := new(mockRepo)
		svc := NewUserService(repo, &logger)

		existing := &models.User{ID: 1, Name: "Alice", Email: "alice@example.com"}
		repo.On("GetUserByEmail", ctx, "alice@example.com").Return(existing, nil).Once()

		_, err := svc.Create(ctx, &models.User{Name: "Alice II", Email: "alice@example.com"})
		assert.ErrorIs(t, err, ErrConflict)
	})
}

func TestUserServiceUpdate(t *testing.T) {
	logger := zerolog.New(io.Discard)
	ctx := context.Background()

	t.Run("PatchName", func(t *testing.T) {
		repo := new(mockRepo)
		svc := NewUserService(repo, &logger)

		user := &models.User{ID: 1, Name: "Alice", Email: "alice@example.com"}
		repo.On("GetUserByID", ctx, int64(1)).Return(user, nil).Once()
		repo.On("UpdateUser", ctx, mock.MatchedBy(func(u *models.User) bool {
			return u.Name == "Alicia" && u.Email == "alice@example.com"
		})).Return(user, nil).Once()

		_, err := svc.Update(ctx, 1, &models.UserPatch{Name: strPtr("Alicia")})
		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("EmailTakenByAnother", func(t *testing.T) {
		repo := new(mockRepo)
		svc := NewUserService(repo, &logger)

		user := &models.User{ID: 1, Name: "Alice", Email: "alice@example.com"}
		other := &models.User{ID: 2, Name: "Bob", Email: "bob@example.com"}
		repo.On("GetUserByID", ctx, int64(1)).Return(user, nil).Once()
		repo.On("GetUserByEmail", ctx, "bob@example.com").Return(other, nil).Once()

		_, err := svc.Update(ctx, 1, &models.UserPatch{Email: strPtr("bob@example.com")})
		assert.ErrorIs(t, err, ErrConflict)
	})

	t.Run("SameEmailIsNoConflict", func(t *testing.T) {
		repo := new(mockRepo)
		svc := NewUserService(repo, &logger)

		user := &models.User{ID: 1, Name: "Alice", Email: "alice@example.com"}
		repo.On("GetUserByID", ctx, int64(1)).Return(user, nil).Once()
		repo.On("UpdateUser", ctx, user).Return(user, nil).Once()

		_, err := svc.Update(ctx, 1, &models.UserPatch{Email: strPtr("alice@example.com")})
		assert.NoError(t, err)
		repo.AssertNotCalled(t, "GetUserByEmail", mock.Anything, mock.Anything)
	})

	t.Run("UnknownUser", func(t *testing.T) {
		repo := new(mockRepo)
		svc := NewUserService(repo, &logger)

		repo.On("GetUserByID", ctx, int64(99)).Return(nil, nil).Once()

		_, err := svc.Update(ctx, 99, &models.UserPatch{Name: strPtr("Ghost")})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestUserServiceDelete(t *testing.T) {
	logger := zerolog.New(io.Discard)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo := new(mockRepo)
		svc := NewUserService(repo, &logger)

		user := &models.User{ID: 1, Name: "Alice", Email: "alice@example.com"}
		repo.On("GetUserByID", ctx, int64(1)).Return(user, nil).Once()
		repo.On("DeleteUser", ctx, int64(1)).Return(nil).Once()

		err := svc.Delete(ctx, 1)
		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("UnknownUser", func(t *testing.T) {
		repo := new(mockRepo)
		svc := NewUserService(repo, &logger)

		repo.On("GetUserByID", ctx, int64(99)).Return(nil, nil).Once()

		err := svc.Delete(ctx, 99)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestUserServiceFind(t *testing.T) {
	logger := zerolog.New(io.Discard)
	ctx := context.Background()

	t.Run("ByID", func(t *testing.T) {
		repo := new(mockRepo)
		svc := NewUserService(repo, &logger)

		user := &models.User{ID: 1, Name: "Alice", Email: "alice@example.com"}
		repo.On("GetUserByID", ctx, int64(1)).Return(user, nil).Once()

		found, err := svc.FindByID(ctx, 1)
		assert.NoError(t, err)
		assert.Equal(t, user, found)
	})

	t.Run("All", func(t *testing.T) {
		repo := new(mockRepo)
		svc := NewUserService(repo, &logger)

		users := []*models.User{{ID: 1}, {ID: 2}}
		repo.On("GetAllUsers", ctx).Return(users, nil).Once()

		found, err := svc.FindAll(ctx)
		assert.NoError(t, err)
		assert.Len(t, found, 2)
	})

	t.Run("AllEmpty", func(t *testing.T) {
		repo := new(mockRepo)
		svc := NewUserService(repo, &logger)

		repo.On("GetAllUsers", ctx).Return(nil, nil).Once()

		found, err := svc.FindAll(ctx)
		assert.NoError(t, err)
		assert.NotNil(t, found)
		assert.Empty(t, found)
	})
}
