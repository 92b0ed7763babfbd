// Package managers handles the business logic and orchestrates interactions between the application and the database.
package managers

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"

	"larp-manager-server/internal/config"
	"larp-manager-server/internal/interfaces"
	"larp-manager-server/internal/schemas"
)

// ErrNotInitialized is returned when a database operation is attempted before
// Initialize has been called or after Close.
var ErrNotInitialized = errors.New("database manager not initialized")

const (
	testQuery         = "SELECT 1"
	schemaExistsQuery = "SELECT schema_name FROM information_schema.schemata WHERE schema_name = $1"
	createSchemaStmt  = "CREATE SCHEMA IF NOT EXISTS larp_manager"
	createUUIDExtStmt = `CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`

	// applicationSchema is the schema all application tables live in.
	applicationSchema = "larp_manager"
)

// SessionFunc is a unit of work executed inside a single transaction.
type SessionFunc func(ctx context.Context, tx pgx.Tx) error

// connectFunc builds the connection pool. It is replaced in tests to inject
// mock pools.
type connectFunc func(ctx context.Context, settings *config.Settings) (interfaces.PgxPoolIface, error)

// DatabaseMgr defines the interface for database management.
// It provides the connection lifecycle, transactional sessions and health probes.
type DatabaseMgr interface {
	Initialize(ctx context.Context) error
	Close()
	IsInitialized() bool
	GetPool() (interfaces.PgxPoolIface, error)
	WithSession(ctx context.Context, fn SessionFunc) error
	HealthCheck(ctx context.Context) *schemas.DatabaseHealth
	CreateSchema(ctx context.Context) error
}

// DatabaseManager is responsible for managing the database connection pool.
// It implements the DatabaseMgr interface. The zero state is uninitialized;
// the pool exists exactly between a successful Initialize and the next Close.
type DatabaseManager struct {
	settings *config.Settings
	connect  connectFunc

	mu          sync.Mutex
	pool        interfaces.PgxPoolIface
	initialized bool
}

// NewDatabaseManager creates a new, not yet initialized DatabaseManager with
// the provided settings.
func NewDatabaseManager(settings *config.Settings) *DatabaseManager {
	log.Info("Initializing database manager")
	return &DatabaseManager{
		settings: settings,
		connect:  connectPool,
	}
}

// connectPool builds a pgx connection pool from the database settings. The
// pool connects lazily, so this succeeds even when the database is not
// reachable yet.
func connectPool(ctx context.Context, settings *config.Settings) (interfaces.PgxPoolIface, error) {
	poolConfig, err := pgxpool.ParseConfig(settings.Database.URL)
	if err != nil {
		return nil, fmt.Errorf("parsing database URL: %w", err)
	}

	db := settings.Database
	if maxConns := db.PoolSize + db.MaxOverflow; maxConns > 0 {
		poolConfig.MaxConns = int32(maxConns)
	}
	if db.PoolRecycle > 0 {
		poolConfig.MaxConnLifetime = time.Duration(db.PoolRecycle) * time.Second
	}
	if db.PoolTimeout > 0 {
		poolConfig.ConnConfig.ConnectTimeout = time.Duration(db.PoolTimeout) * time.Second
	}
	poolConfig.HealthCheckPeriod = time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	log.Infof("Database connection pool created with max_conns=%d", poolConfig.MaxConns)
	return pool, nil
}

// Initialize builds the connection pool. Calling it on an already initialized
// manager is a harmless no-op.
func (dm *DatabaseManager) Initialize(ctx context.Context) error {
	dm.mu.Lock()
	defer dm.mu.Unlock()

	if dm.initialized {
		log.Warn("Database manager already initialized")
		return nil
	}

	pool, err := dm.connect(ctx, dm.settings)
	if err != nil {
		return err
	}

	dm.pool = pool
	dm.initialized = true
	log.Info("Database manager initialized")

	return nil
}

// Close releases the connection pool. Closing an uninitialized manager is a
// harmless no-op; the manager can be initialized again afterwards.
func (dm *DatabaseManager) Close() {
	dm.mu.Lock()
	defer dm.mu.Unlock()

	if !dm.initialized {
		log.Warn("Database manager not initialized")
		return
	}

	dm.pool.Close()
	dm.pool = nil
	dm.initialized = false
	log.Info("Database manager closed")
}

// IsInitialized reports whether the manager currently holds a connection pool.
func (dm *DatabaseManager) IsInitialized() bool {
	dm.mu.Lock()
	defer dm.mu.Unlock()

	return dm.initialized
}

// GetPool returns the database connection pool managed by the DatabaseManager.
// This pool is used for executing database operations.
func (dm *DatabaseManager) GetPool() (interfaces.PgxPoolIface, error) {
	dm.mu.Lock()
	defer dm.mu.Unlock()

	if !dm.initialized {
		return nil, ErrNotInitialized
	}

	return dm.pool, nil
}

// WithSession runs fn inside a single transaction. The transaction is
// committed when fn returns nil and rolled back when fn returns an error or
// panics.
func (dm *DatabaseManager) WithSession(ctx context.Context, fn SessionFunc) error {
	pool, err := dm.GetPool()
	if err != nil {
		return err
	}

	// Begin a new transaction
	tx, err := dm.beginTransaction(ctx, pool)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer rollbackTransaction(ctx, tx)

	if err := fn(ctx, tx); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}

// beginTransaction starts a transaction with the configured pool timeout as
// the upper bound for acquiring a connection.
func (dm *DatabaseManager) beginTransaction(ctx context.Context, pool interfaces.PgxPoolIface) (pgx.Tx, error) {
	if timeout := dm.settings.Database.PoolTimeout; timeout > 0 {
		acquireCtx, cancel := context.WithTimeout(ctx, time.Duration(timeout)*time.Second)
		defer cancel()
		return pool.Begin(acquireCtx)
	}

	return pool.Begin(ctx)
}

// rollbackTransaction rolls back the transaction unless it was already closed
// by a commit.
func rollbackTransaction(ctx context.Context, tx pgx.Tx) {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		log.Warn("Error rolling back transaction: ", err)
	}
}

// HealthCheck probes the database and reports the outcome. It never returns
// an error; failures are carried in the result.
func (dm *DatabaseManager) HealthCheck(ctx context.Context) *schemas.DatabaseHealth {
	pool, err := dm.GetPool()
	if err != nil {
		return &schemas.DatabaseHealth{
			Status: schemas.HealthStatusUnhealthy,
			Error:  err.Error(),
		}
	}

	health := &schemas.DatabaseHealth{Status: schemas.HealthStatusHealthy}

	if err := dm.probe(ctx, pool, health); err != nil {
		log.Error("Database health check failed: ", err)
		return &schemas.DatabaseHealth{
			Status: schemas.HealthStatusUnhealthy,
			Error:  err.Error(),
		}
	}

	health.PoolStats = dm.poolStats(pool)
	return health
}

// probe runs the health queries inside a single transaction and fills the
// probe fields of the given result.
func (dm *DatabaseManager) probe(ctx context.Context, pool interfaces.PgxPoolIface, health *schemas.DatabaseHealth) error {
	tx, err := dm.beginTransaction(ctx, pool)
	if err != nil {
		return err
	}
	defer rollbackTransaction(ctx, tx)

	var result int
	if err := tx.QueryRow(ctx, testQuery).Scan(&result); err != nil {
		return err
	}
	health.TestQuery = result == 1

	rows, err := tx.Query(ctx, schemaExistsQuery, applicationSchema)
	if err != nil {
		return err
	}
	health.SchemaExists = rows.Next()
	rows.Close()
	if err := rows.Err(); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// poolStats reads the pool counters. Pool implementations without statistics,
// such as mock pools, report zeroes.
func (dm *DatabaseManager) poolStats(pool interfaces.PgxPoolIface) *schemas.PoolStats {
	stats := &schemas.PoolStats{}

	native, ok := pool.(*pgxpool.Pool)
	if !ok {
		return stats
	}

	stat := native.Stat()
	stats.PoolSize = stat.TotalConns()
	stats.CheckedIn = stat.IdleConns()
	stats.CheckedOut = stat.AcquiredConns()
	if overflow := stat.TotalConns() - int32(dm.settings.Database.PoolSize); overflow > 0 {
		stats.Overflow = overflow
	}
	stats.Invalid = int32(stat.MaxLifetimeDestroyCount() + stat.MaxIdleDestroyCount())

	return stats
}

// CreateSchema creates the application schema and the uuid-ossp extension if
// they do not exist yet.
func (dm *DatabaseManager) CreateSchema(ctx context.Context) error {
	err := dm.WithSession(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, createSchemaStmt); err != nil {
			return err
		}

		_, err := tx.Exec(ctx, createUUIDExtStmt)
		return err
	})
	if err != nil {
		log.Error("Error creating database schema: ", err)
		return fmt.Errorf("creating database schema: %w", err)
	}

	log.Info("Database schema created")
	return nil
}

// ExecuteRaw runs an arbitrary SQL statement inside its own transaction and
// reports the outcome as data. Only the uninitialized manager returns an
// error; execution failures are carried in the result.
func (dm *DatabaseManager) ExecuteRaw(ctx context.Context, sql string, args ...any) (*schemas.RawResult, error) {
	pool, err := dm.GetPool()
	if err != nil {
		return nil, err
	}

	result, err := dm.runRaw(ctx, pool, sql, args...)
	if err != nil {
		log.Error("Error executing raw SQL: ", err)
		return &schemas.RawResult{Success: false, Error: err.Error()}, nil
	}

	return &schemas.RawResult{Success: true, Result: result}, nil
}

// runRaw executes the statement in a fresh transaction and collects the
// returned rows, if any.
func (dm *DatabaseManager) runRaw(ctx context.Context, pool interfaces.PgxPoolIface, sql string, args ...any) ([][]any, error) {
	tx, err := dm.beginTransaction(ctx, pool)
	if err != nil {
		return nil, err
	}
	defer rollbackTransaction(ctx, tx)

	rows, err := tx.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}

	var result [][]any
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			rows.Close()
			return nil, err
		}
		result = append(result, values)
	}

	// The result set must be drained and closed before the transaction can
	// be committed on the same connection.
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return result, nil
}
