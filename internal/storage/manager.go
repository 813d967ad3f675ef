package storage

import (
	"fmt"

	"github.com/cbdowney09-alt/WorkProof/internal/dbx"
)

// Supported storage drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Manager constructs a Repository bound to the given handle (either *sql.DB
// or *sql.Tx), so services can run repository operations inside a
// transaction without knowing which backend is configured.
type Manager interface {
	KV(db dbx.DBTX) Repository
}

type sqliteManager struct{}

func (sqliteManager) KV(db dbx.DBTX) Repository { return NewSQLiteRepository(db) }

type postgresManager struct{}

func (postgresManager) KV(db dbx.DBTX) Repository { return NewPostgresRepository(db) }

// NewManager returns the Manager for the configured driver.
func NewManager(driver string) (Manager, error) {
	switch driver {
	case DriverSQLite:
		return sqliteManager{}, nil
	case DriverPostgres:
		return postgresManager{}, nil
	default:
		return nil, fmt.Errorf("unknown storage driver: %s", driver)
	}
}
