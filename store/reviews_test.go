package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel-infinity/utils"
)

func TestAddReview_StartsUnapproved(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	review, err := s.AddReview(ctx, ReviewInput{
		CustomerName: "Anita", Rating: 5, Comment: "Lovely weekend stay.",
	})
	require.NoError(t, err)

	assert.False(t, review.Approved)
	assert.Equal(t, review.CreatedAt, review.UpdatedAt)
	assert.NotEmpty(t, review.Date)

	// Newest first for admin, invisible to the public until approved.
	token := loginTestAdmin(t, s)
	all, err := s.AdminReviews(token)
	require.NoError(t, err)
	assert.Equal(t, review.ID, all[0].ID)
}

func TestAddReview_ValidatesRating(t *testing.T) {
	s, _ := newTestStore(t)

	for _, rating := range []int{0, 6, -1} {
		_, err := s.AddReview(context.Background(), ReviewInput{
			CustomerName: "Anita", Rating: rating, Comment: "x",
		})
		require.Error(t, err)
		assert.Equal(t, 400, utils.GetCode(err))
	}
}

// The public listing must never expose an unapproved review, across any mix
// of add/approve/delete.
func TestPublicReviews_OnlyApproved(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)
	token := loginTestAdmin(t, s)

	first, err := s.AddReview(ctx, ReviewInput{CustomerName: "A", Rating: 4, Comment: "good"})
	require.NoError(t, err)
	second, err := s.AddReview(ctx, ReviewInput{CustomerName: "B", Rating: 2, Comment: "meh"})
	require.NoError(t, err)

	for _, review := range s.PublicReviews() {
		assert.True(t, review.Approved)
		assert.NotEqual(t, first.ID, review.ID)
		assert.NotEqual(t, second.ID, review.ID)
	}

	_, err = s.ApproveReview(ctx, token, first.ID)
	require.NoError(t, err)

	visible := map[string]bool{}
	for _, review := range s.PublicReviews() {
		assert.True(t, review.Approved)
		visible[review.ID] = true
	}
	assert.True(t, visible[first.ID])
	assert.False(t, visible[second.ID])

	require.NoError(t, s.DeleteReview(ctx, token, first.ID))
	for _, review := range s.PublicReviews() {
		assert.True(t, review.Approved)
		assert.NotEqual(t, first.ID, review.ID)
	}
}

func TestApproveReview_RequiresAuthAndExistingID(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	review, err := s.AddReview(ctx, ReviewInput{CustomerName: "A", Rating: 3, Comment: "ok"})
	require.NoError(t, err)

	_, err = s.ApproveReview(ctx, "bad-token", review.ID)
	assert.Equal(t, 401, utils.GetCode(err))

	token := loginTestAdmin(t, s)
	_, err = s.ApproveReview(ctx, token, "missing")
	assert.Equal(t, 404, utils.GetCode(err))

	approved, err := s.ApproveReview(ctx, token, review.ID)
	require.NoError(t, err)
	assert.True(t, approved.Approved)
}

func TestUpdateReview_Patch(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)
	token := loginTestAdmin(t, s)

	review, err := s.AddReview(ctx, ReviewInput{CustomerName: "A", Rating: 3, Comment: "ok"})
	require.NoError(t, err)

	updated, err := s.UpdateReview(ctx, token, review.ID, ReviewPatch{
		Comment: strPtr("better than ok"),
		Rating:  intPtr(4),
	})
	require.NoError(t, err)
	assert.Equal(t, "better than ok", updated.Comment)
	assert.Equal(t, 4, updated.Rating)
	assert.Equal(t, review.CustomerName, updated.CustomerName)
	assert.False(t, updated.Approved)
}
