package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/autoapply/unified-service/internal/logger"
	"github.com/autoapply/unified-service/internal/models"
)

type PasswordResetTokenRepository struct {
	db *sqlx.DB
}

func NewPasswordResetTokenRepository(db *sqlx.DB) *PasswordResetTokenRepository {
	return &PasswordResetTokenRepository{db: db}
}

// Save persists a freshly minted reset token.
func (r *PasswordResetTokenRepository) Save(ctx context.Context, token string, userID uuid.UUID, expiresAt time.Time) error {
	const query = `
		INSERT INTO password_reset_tokens (token, user_id, expires_at, used, created_at)
		VALUES ($1, $2, $3, FALSE, NOW())
	`

	res, err := ext(ctx, r.db).ExecContext(ctx, query, token, userID, expiresAt)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("reset token insert",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, expiresAt},
		"result", rowsAffected,
		"error", err,
	)

	return err
}

// GetByToken returns the token row for the given token value, or nil
// when no such token exists.
func (r *PasswordResetTokenRepository) GetByToken(ctx context.Context, token string) (*models.PasswordResetTokenDB, error) {
	const query = `
		SELECT token_id, token, user_id, expires_at, used, created_at
		FROM password_reset_tokens
		WHERE token = $1
	`

	var row models.PasswordResetTokenDB
	err := sqlx.GetContext(ctx, ext(ctx, r.db), &row, query, token)

	logger.Log.Infow("reset token read",
		"query", strings.Join(strings.Fields(query), " "),
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &row, nil
}

// DeleteByUserID removes every outstanding token for a user, so only
// the newest reset link can ever work.
func (r *PasswordResetTokenRepository) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	const query = `DELETE FROM password_reset_tokens WHERE user_id = $1`

	res, err := ext(ctx, r.db).ExecContext(ctx, query, userID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("reset token delete",
		"query", query,
		"args", []any{userID},
		"result", rowsAffected,
		"error", err,
	)

	return err
}

// MarkUsed consumes a token. It only touches tokens that are still
// unused, so a raced second consumption reports zero rows.
func (r *PasswordResetTokenRepository) MarkUsed(ctx context.Context, tokenID uuid.UUID) (bool, error) {
	const query = `
		UPDATE password_reset_tokens
		SET used = TRUE
		WHERE token_id = $1 AND used = FALSE
	`

	res, err := ext(ctx, r.db).ExecContext(ctx, query, tokenID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("reset token consume",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{tokenID},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return false, err
	}

	return rowsAffected == 1, nil
}
