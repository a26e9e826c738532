package postgres

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"hotelBooking/internal/config"
	"hotelBooking/internal/storage/sqlstore"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

//go:embed schema.sql
var schema string

const uniqueViolation = "23505"

// Dialect locks the target room row so concurrent bookings of the same room
// serialize on it.
var Dialect = sqlstore.Dialect{
	LockClause: " FOR UPDATE",
	TxOptions:  &sql.TxOptions{Isolation: sql.LevelReadCommitted},
	IsUniqueViolation: func(err error) bool {
		var pqErr *pq.Error
		return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
	},
}

func InitDB(ctx context.Context, dbCfg *config.Database) (*sqlstore.Store, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		dbCfg.Host,
		dbCfg.Port,
		dbCfg.User,
		dbCfg.Password,
		dbCfg.DBName,
		dbCfg.SSLMode,
	)

	return Open(ctx, connStr)
}

// Open connects with a lib/pq connection string and applies the schema.
func Open(ctx context.Context, connStr string) (*sqlstore.Store, error) {
	db, err := sqlx.ConnectContext(ctx, "postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	if err = Migrate(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return sqlstore.New(db, Dialect), nil
}

func Migrate(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}

	return nil
}
