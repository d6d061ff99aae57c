package mockapi

import (
	"sort"
	"time"

	"github.com/dnlklmn/wpr-presence/internal/fixtures"
	"github.com/dnlklmn/wpr-presence/internal/models"
	"github.com/dnlklmn/wpr-presence/internal/session"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Per-call artificial latency, roughly matching real backend round trips.
const (
	loginDelay  = 300 * time.Millisecond
	listDelay   = 150 * time.Millisecond
	submitDelay = 200 * time.Millisecond
)

// Service implements the full API contract against static fixtures and the
// local record store, with artificial latency so UI flows behave as they
// would against the network.
type Service struct {
	sess     *session.Manager
	records  *RecordStore
	simulate bool // apply artificial latency
	now      func() time.Time
	logger   *zap.Logger
}

// NewService creates a mock data service. With simulateLatency false every
// call completes immediately, which the demo server and tests rely on.
func NewService(sess *session.Manager, records *RecordStore, simulateLatency bool, logger *zap.Logger) *Service {
	return &Service{
		sess:     sess,
		records:  records,
		simulate: simulateLatency,
		now:      time.Now,
		logger:   logger,
	}
}

// WithClock overrides the time source, for tests.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) delay(d time.Duration) {
	if s.simulate {
		time.Sleep(d)
	}
}

// Login accepts any non-empty credential pair and mints a 24h session.
func (s *Service) Login(username, password string) (*models.LoginResponse, error) {
	s.delay(loginDelay)

	if username == "" || password == "" {
		// The deployed backend sends the demo user even on rejected
		// credentials; kept so both services are indistinguishable.
		return &models.LoginResponse{
			Success: false,
			Token:   "",
			Expires: 0,
			User:    fixtures.DemoUser,
		}, nil
	}

	token := "mock_token_" + uuid.NewString()
	expires := s.now().Add(24 * time.Hour).Unix()

	if err := s.sess.Save(token, expires, fixtures.DemoUser); err != nil {
		return nil, err
	}

	s.logger.Debug("Mock login succeeded", zap.String("username", username))
	return &models.LoginResponse{
		Success: true,
		Token:   token,
		Expires: expires,
		User:    fixtures.DemoUser,
	}, nil
}

// Employees returns the complete static roster.
func (s *Service) Employees() (*models.EmployeesResponse, error) {
	s.delay(listDelay)
	employees := fixtures.Employees()
	return &models.EmployeesResponse{
		Success:   true,
		Count:     len(employees),
		Employees: employees,
	}, nil
}

// Locations returns the complete static market list.
func (s *Service) Locations() (*models.LocationsResponse, error) {
	s.delay(listDelay)
	locations := fixtures.Locations()
	return &models.LocationsResponse{
		Success:   true,
		Count:     len(locations),
		Locations: locations,
	}, nil
}

// SubmitHours assigns the next record id, snapshots the display names for
// the referenced employee and market, and appends the record.
func (s *Service) SubmitHours(data models.HoursData) (*models.SubmitResponse, error) {
	s.delay(submitDelay)

	records, err := s.records.Load()
	if err != nil {
		return nil, err
	}

	id, err := s.records.NextID()
	if err != nil {
		return nil, err
	}

	record := models.HoursRecord{HoursData: data, ID: id}
	if employee, ok := findEmployee(data.EmployeeID); ok {
		name := fixtures.DisplayName(employee)
		record.EmployeeName = &name
	}
	if location, ok := findLocation(data.LocationID); ok {
		name := location.Name
		record.LocationName = &name
	}

	records = append(records, record)
	if err := s.records.Save(records); err != nil {
		return nil, err
	}

	s.logger.Debug("Hours submitted",
		zap.Int("record_id", id),
		zap.Int("employee_id", data.EmployeeID),
		zap.Int("location_id", data.LocationID),
		zap.String("date", data.Date),
	)
	return &models.SubmitResponse{Success: true}, nil
}

// HoursHistory returns stored records, bounded inclusively when start/end
// are given, newest date first with ties broken by highest id.
func (s *Service) HoursHistory(start, end string) (*models.HistoryResponse, error) {
	s.delay(listDelay)

	records, err := s.records.Load()
	if err != nil {
		return nil, err
	}

	filtered := make([]models.HoursRecord, 0, len(records))
	for _, r := range records {
		if start != "" && r.Date < start {
			continue
		}
		if end != "" && r.Date > end {
			continue
		}
		filtered = append(filtered, r)
	}

	sort.Slice(filtered, func(i, j int) bool {
		if filtered[i].Date != filtered[j].Date {
			return filtered[i].Date > filtered[j].Date
		}
		return filtered[i].ID > filtered[j].ID
	})

	return &models.HistoryResponse{
		Success: true,
		Count:   len(filtered),
		Records: filtered,
	}, nil
}

// IsLoggedIn reports whether a stored session is still valid.
func (s *Service) IsLoggedIn() bool {
	return s.sess.IsLoggedIn()
}

// Logout clears the stored session.
func (s *Service) Logout() error {
	return s.sess.Clear()
}

func findEmployee(id int) (models.Employee, bool) {
	for _, e := range fixtures.Employees() {
		if e.ID == id {
			return e, true
		}
	}
	return models.Employee{}, false
}

func findLocation(id int) (models.Location, bool) {
	for _, l := range fixtures.Locations() {
		if l.ID == id {
			return l, true
		}
	}
	return models.Location{}, false
}
