package repositories

import "context"

// Repository aggregates the per-entity repositories.
type Repository interface {
	User() UserRepository
	Driver() DriverRepository
	Vehicle() VehicleRepository
	School() SchoolRepository

	// WithTransaction executes fn against a transaction-bound Repository.
	// Create/update flows run their uniqueness pre-check and write inside
	// one transaction; the unique index remains the final safety net.
	WithTransaction(ctx context.Context, fn func(Repository) error) error

	Ping(ctx context.Context) error
	Close() error
}

// RepositoryManager owns repository lifecycle: connect, health, shutdown.
type RepositoryManager interface {
	Initialize() error
	GetRepository() Repository
	HealthCheck(ctx context.Context) error
	Shutdown(ctx context.Context) error
}
