package repository

import (
	"context"
	"testing"

	"github.com/a2sh3r/bono/internal/apperrors"
	"github.com/a2sh3r/bono/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatorRepo_CreateCreator(t *testing.T) {
	r := NewCreatorRepository(testDB)
	ctx := context.Background()

	tests := []struct {
		name    string
		creator models.NewCreator
		linkID  string
		wantErr error
	}{
		{
			name:    "new creator",
			creator: models.NewCreator{UserID: 1, Handle: "alice", DisplayName: "Alice", Bio: "hi"},
			linkID:  "link-alice",
		},
		{
			name:    "user already has a profile",
			creator: models.NewCreator{UserID: 2, Handle: "bob2", DisplayName: "Bob"},
			linkID:  "link-bob2",
			wantErr: apperrors.ErrCreatorExists,
		},
		{
			name:    "handle taken",
			creator: models.NewCreator{UserID: 1, Handle: "carol", DisplayName: "Alice"},
			linkID:  "link-alice",
			wantErr: apperrors.ErrHandleTaken,
		},
		{
			name:    "support link collision",
			creator: models.NewCreator{UserID: 1, Handle: "alice", DisplayName: "Alice"},
			linkID:  "link-bob",
			wantErr: ErrSupportLinkTaken,
		},
		{
			name:    "unknown user",
			creator: models.NewCreator{UserID: 999, Handle: "ghost", DisplayName: "Ghost"},
			linkID:  "link-ghost",
			wantErr: apperrors.ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupTestData(t, testDB)

			c, err := r.CreateCreator(ctx, tt.creator, tt.linkID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.creator.Handle, c.Handle)
			assert.Equal(t, tt.linkID, c.SupportLinkID)
			assert.True(t, c.IsActive)
			assertDecimal(t, "0", c.Balance)
			require.NotNil(t, c.Bio)
			assert.Equal(t, "hi", *c.Bio)
		})
	}
}

func TestCreatorRepo_Lookups(t *testing.T) {
	setupTestData(t, testDB)
	r := NewCreatorRepository(testDB)
	ctx := context.Background()

	c, err := r.GetCreatorByID(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "carol", c.Handle)
	assert.Nil(t, c.Bio)

	c, err = r.GetCreatorByUserID(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(1), c.ID)

	c, err = r.GetCreatorBySupportLink(ctx, "link-carol")
	require.NoError(t, err)
	assert.Equal(t, int64(2), c.ID)

	_, err = r.GetCreatorBySupportLink(ctx, "link-dave")
	assert.ErrorIs(t, err, apperrors.ErrCreatorNotFound)

	_, err = r.GetCreatorByUserID(ctx, 1)
	assert.ErrorIs(t, err, apperrors.ErrCreatorNotFound)
}

func TestCreatorRepo_UpdateProfileAndHandle(t *testing.T) {
	setupTestData(t, testDB)
	r := NewCreatorRepository(testDB)
	ctx := context.Background()

	name, bio := "Carol the Great", "streams on fridays"
	c, err := r.UpdateCreatorProfile(ctx, 2, models.CreatorUpdate{DisplayName: &name, Bio: &bio})
	require.NoError(t, err)
	assert.Equal(t, name, c.DisplayName)
	require.NotNil(t, c.Bio)
	assert.Equal(t, bio, *c.Bio)
	assertDecimal(t, "50", c.Balance)

	empty := ""
	c, err = r.UpdateCreatorProfile(ctx, 2, models.CreatorUpdate{Bio: &empty})
	require.NoError(t, err)
	assert.Equal(t, name, c.DisplayName)
	assert.Nil(t, c.Bio)

	_, err = r.UpdateCreatorProfile(ctx, 999, models.CreatorUpdate{DisplayName: &name})
	assert.ErrorIs(t, err, apperrors.ErrCreatorNotFound)

	c, err = r.GetCreatorByHandle(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, int64(1), c.ID)

	_, err = r.GetCreatorByHandle(ctx, "nobody")
	assert.ErrorIs(t, err, apperrors.ErrCreatorNotFound)
}
