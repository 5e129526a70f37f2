package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPasswordResetTokenRepository_SaveAndGet(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	user := createTestUser(t, db, "reset@example.com")

	repo := NewPasswordResetTokenRepository(db)
	ctx := context.Background()
	expires := time.Now().Add(time.Hour)

	err := repo.Save(ctx, "token-abc", user.UserID, expires)
	assert.NoError(t, err)

	row, err := repo.GetByToken(ctx, "token-abc")
	assert.NoError(t, err)
	assert.NotNil(t, row)
	assert.Equal(t, user.UserID, row.UserID)
	assert.False(t, row.Used)
	assert.WithinDuration(t, expires, row.ExpiresAt, 2*time.Second)

	missing, err := repo.GetByToken(ctx, "no-such-token")
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestPasswordResetTokenRepository_DeleteByUserID(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	user := createTestUser(t, db, "purge@example.com")

	repo := NewPasswordResetTokenRepository(db)
	ctx := context.Background()

	assert.NoError(t, repo.Save(ctx, "old-1", user.UserID, time.Now().Add(time.Hour)))
	assert.NoError(t, repo.Save(ctx, "old-2", user.UserID, time.Now().Add(time.Hour)))

	err := repo.DeleteByUserID(ctx, user.UserID)
	assert.NoError(t, err)

	row, err := repo.GetByToken(ctx, "old-1")
	assert.NoError(t, err)
	assert.Nil(t, row)
	row, err = repo.GetByToken(ctx, "old-2")
	assert.NoError(t, err)
	assert.Nil(t, row)
}

func TestPasswordResetTokenRepository_MarkUsed_Once(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	user := createTestUser(t, db, "consume@example.com")

	repo := NewPasswordResetTokenRepository(db)
	ctx := context.Background()

	assert.NoError(t, repo.Save(ctx, "one-shot", user.UserID, time.Now().Add(time.Hour)))

	row, err := repo.GetByToken(ctx, "one-shot")
	assert.NoError(t, err)
	assert.NotNil(t, row)

	// First consumption wins.
	consumed, err := repo.MarkUsed(ctx, row.TokenID)
	assert.NoError(t, err)
	assert.True(t, consumed)

	// Second attempt reports no rows.
	consumed, err = repo.MarkUsed(ctx, row.TokenID)
	assert.NoError(t, err)
	assert.False(t, consumed)
}
