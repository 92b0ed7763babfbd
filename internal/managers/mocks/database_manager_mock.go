// Package mocks provides testify mocks for the manager interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"larp-manager-server/internal/interfaces"
	"larp-manager-server/internal/managers"
	"larp-manager-server/internal/schemas"
)

// MockDatabaseManager is a mock of the DatabaseManager implementing the
// DatabaseMgr interface for tests.
type MockDatabaseManager struct {
	mock.Mock
}

// Initialize records the call and returns the scripted error.
func (m *MockDatabaseManager) Initialize(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// Close records the call.
func (m *MockDatabaseManager) Close() {
	m.Called()
}

// IsInitialized returns the scripted initialization state.
func (m *MockDatabaseManager) IsInitialized() bool {
	args := m.Called()
	return args.Bool(0)
}

// GetPool returns the scripted pool and error.
func (m *MockDatabaseManager) GetPool() (interfaces.PgxPoolIface, error) {
	args := m.Called()
	pool, _ := args.Get(0).(interfaces.PgxPoolIface)
	return pool, args.Error(1)
}

// WithSession records the call and returns the scripted error. The unit of
// work itself is not executed.
func (m *MockDatabaseManager) WithSession(ctx context.Context, fn managers.SessionFunc) error {
	args := m.Called(ctx, fn)
	return args.Error(0)
}

// HealthCheck returns the scripted health result.
func (m *MockDatabaseManager) HealthCheck(ctx context.Context) *schemas.DatabaseHealth {
	args := m.Called(ctx)
	return args.Get(0).(*schemas.DatabaseHealth)
}

// CreateSchema records the call and returns the scripted error.
func (m *MockDatabaseManager) CreateSchema(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
