package database

import (
	"context"
	"testing"
	"time"

	"shareit/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestStore(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	ctx := context.Background()

	requester := seedUser(t, db, "Requester", "req@example.com")
	other := seedUser(t, db, "Other", "other@example.com")

	base := time.Now().UTC().Truncate(time.Second)
	seed := func(requesterID int64, description string, created time.Time) *models.ItemRequest {
		request, err := db.CreateRequest(ctx, &models.ItemRequest{
			Description: description,
			RequesterID: requesterID,
			Created:     created,
		})
		require.NoError(t, err)
		return request
	}

	older := seed(requester.ID, "Need a drill", base.Add(-2*time.Hour))
	newer := seed(requester.ID, "Need a ladder", base.Add(-time.Hour))
	foreign := seed(other.ID, "Need a saw", base)

	t.Run("GetByID", func(t *testing.T) {
		got, err := db.GetRequestByID(ctx, older.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "Need a drill", got.Description)

		missing, err := db.GetRequestByID(ctx, 9999)
		require.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("ByRequesterOldestFirst", func(t *testing.T) {
		requests, err := db.GetRequestsByRequester(ctx, requester.ID)
		require.NoError(t, err)
		require.Len(t, requests, 2)
		assert.Equal(t, older.ID, requests[0].ID)
		assert.Equal(t, newer.ID, requests[1].ID)
	})

	t.Run("AllPaginated", func(t *testing.T) {
		count, err := db.CountRequests(ctx)
		require.NoError(t, err)
		assert.Equal(t, 3, count)

		requests, err := db.GetAllRequests(ctx, &models.Page{Offset: 2, Size: 2})
		require.NoError(t, err)
		require.Len(t, requests, 1)
		assert.Equal(t, foreign.ID, requests[0].ID)
	})
}

func TestCommentStore(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	ctx := context.Background()

	owner := seedUser(t, db, "Owner", "owner@example.com")
	author := seedUser(t, db, "Author", "author@example.com")
	item := seedItem(t, db, owner.ID, "Drill", "", true)

	created := time.Now().UTC().Truncate(time.Second)
	comment, err := db.CreateComment(ctx, &models.Comment{
		ItemID:   item.ID,
		AuthorID: author.ID,
		Text:     "Works great",
		Created:  created,
	})
	require.NoError(t, err)
	assert.NotZero(t, comment.ID)

	comments, err := db.GetCommentsByItem(ctx, item.ID)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, "Works great", comments[0].Text)
	assert.Equal(t, author.ID, comments[0].AuthorID)
	assert.True(t, comments[0].Created.Equal(created))

	empty, err := db.GetCommentsByItem(ctx, 9999)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
