package database

import (
	"context"

	"gorm.io/gorm"
)

// txKey carries an open transaction through a request context so every
// query issued inside Transaction runs on the same *gorm.DB.
type txKey struct{}

func contextWithTx(ctx context.Context, tx *gorm.DB) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

// getDBFromContext returns the transaction stored in ctx, or the base
// connection bound to ctx when no transaction is open.
func getDBFromContext(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return db.WithContext(ctx)
}
