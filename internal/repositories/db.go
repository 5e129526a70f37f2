package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/autoapply/unified-service/internal/middlewares"
)

// ext returns the executor for the current request: the transaction
// supplied by TxMiddleware when present, otherwise the pool itself.
func ext(ctx context.Context, db *sqlx.DB) sqlx.ExtContext {
	if tx := middlewares.GetTxFromContext(ctx); tx != nil {
		return tx
	}
	return db
}
