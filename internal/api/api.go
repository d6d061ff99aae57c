// Package api is the single entry point application code talks to. The
// backing service (mock or real) is chosen once, at construction; callers
// never know which one is active.
package api

import (
	"time"

	"github.com/dnlklmn/wpr-presence/internal/config"
	"github.com/dnlklmn/wpr-presence/internal/mockapi"
	"github.com/dnlklmn/wpr-presence/internal/models"
	"github.com/dnlklmn/wpr-presence/internal/realapi"
	"github.com/dnlklmn/wpr-presence/internal/session"

	"go.uber.org/zap"
)

// Client is the full API contract. The mock and the real service satisfy
// it with structurally identical envelopes, so either is a drop-in for the
// other.
type Client interface {
	Login(username, password string) (*models.LoginResponse, error)
	Employees() (*models.EmployeesResponse, error)
	Locations() (*models.LocationsResponse, error)
	SubmitHours(data models.HoursData) (*models.SubmitResponse, error)
	HoursHistory(start, end string) (*models.HistoryResponse, error)
	IsLoggedIn() bool
	Logout() error
}

// New selects the backing service from configuration. The choice is fixed
// for the process lifetime; there is no per-call branching.
func New(cfg *config.Config, sess *session.Manager, records *mockapi.RecordStore, logger *zap.Logger) Client {
	if cfg.Backend.UseMock {
		logger.Info("Using mock data service")
		return mockapi.NewService(sess, records, cfg.Backend.SimulateLatency, logger)
	}

	logger.Info("Using real data service", zap.String("base_url", cfg.Backend.BaseURL))
	return realapi.NewClient(
		cfg.Backend.BaseURL,
		time.Duration(cfg.Backend.Timeout)*time.Second,
		sess,
		logger,
	)
}
