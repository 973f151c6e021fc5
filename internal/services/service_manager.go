package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SchoolRide-Platform/transport-service/internal/events"
	"github.com/SchoolRide-Platform/transport-service/internal/repositories"
	"github.com/SchoolRide-Platform/transport-service/internal/validator"
)

// serviceManager implements ServiceManager over shared dependencies
type serviceManager struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.Validator
	publisher events.EventPublisher

	userService    UserService
	driverService  DriverService
	vehicleService VehicleService
	schoolService  SchoolService
}

// NewServiceManager creates a service manager with all dependencies
func NewServiceManager(repo repositories.Repository, logger *slog.Logger, v *validator.Validator, publisher events.EventPublisher) ServiceManager {
	return &serviceManager{
		repo:           repo,
		logger:         logger,
		validator:      v,
		publisher:      publisher,
		userService:    NewUserService(repo, logger, v, publisher),
		driverService:  NewDriverService(repo, logger, v, publisher),
		vehicleService: NewVehicleService(repo, logger, v, publisher),
		schoolService:  NewSchoolService(repo, logger, v, publisher),
	}
}

func (m *serviceManager) User() UserService {
	return m.userService
}

func (m *serviceManager) Driver() DriverService {
	return m.driverService
}

func (m *serviceManager) Vehicle() VehicleService {
	return m.vehicleService
}

func (m *serviceManager) School() SchoolService {
	return m.schoolService
}

// HealthCheck verifies the backing repository connections
func (m *serviceManager) HealthCheck(ctx context.Context) error {
	return m.repo.Ping(ctx)
}

// Shutdown closes the event publisher. Repository connections are owned by
// the repository manager and closed there.
func (m *serviceManager) Shutdown(ctx context.Context) error {
	if m.publisher != nil {
		if err := m.publisher.Close(); err != nil {
			m.logger.Error("Failed to close event publisher", "error", err)
			return err
		}
	}
	return nil
}

// nowISO stamps entity timestamps as ISO-8601 UTC strings. Stored as text,
// these order lexically the same as chronologically, which the date-range
// list filters rely on.
func nowISO() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// publishEvent sends a domain event and logs on failure. Publishing is
// best-effort, a broker outage never fails the API request.
func publishEvent(ctx context.Context, publisher events.EventPublisher, logger *slog.Logger, eventType string, data interface{}) {
	if publisher == nil {
		return
	}
	if err := publisher.Publish(ctx, events.NewEvent(eventType, data)); err != nil {
		logger.Error("Failed to publish event", "event_type", eventType, "error", err)
	}
}
