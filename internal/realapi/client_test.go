package realapi

import (
	"errors"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dnlklmn/wpr-presence/internal/kvstore"
	"github.com/dnlklmn/wpr-presence/internal/mockapi"
	"github.com/dnlklmn/wpr-presence/internal/models"
	"github.com/dnlklmn/wpr-presence/internal/server"
	"github.com/dnlklmn/wpr-presence/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// newTestBackend runs the demo backend over an in-memory mock service and
// returns a real client pointed at it, with its own client-side storage.
func newTestBackend(t *testing.T) *Client {
	t.Helper()

	serverKV, err := kvstore.NewMemory(zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { serverKV.Close() })

	serverSess := session.NewManager(serverKV, zap.NewNop())
	records := mockapi.NewRecordStore(serverKV, zap.NewNop()).
		WithRand(rand.New(rand.NewSource(1)))
	mock := mockapi.NewService(serverSess, records, false, zap.NewNop())

	ts := httptest.NewServer(server.NewRouter(server.NewHoursHandler(mock, zap.NewNop()), zap.NewNop()))
	t.Cleanup(ts.Close)

	clientKV, err := kvstore.NewMemory(zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { clientKV.Close() })

	clientSess := session.NewManager(clientKV, zap.NewNop())
	return NewClient(ts.URL, 5*time.Second, clientSess, zap.NewNop())
}

func login(t *testing.T, c *Client) {
	t.Helper()
	resp, err := c.Login("demo", "secret")
	require.NoError(t, err)
	require.True(t, resp.Success)
}

func TestLoginPersistsSession(t *testing.T) {
	c := newTestBackend(t)

	require.False(t, c.IsLoggedIn())

	resp, err := c.Login("demo", "secret")
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.Token)
	assert.Greater(t, resp.Expires, time.Now().Unix())
	assert.True(t, c.IsLoggedIn())
}

func TestLoginFailureLeavesNoSession(t *testing.T) {
	c := newTestBackend(t)

	resp, err := c.Login("", "x")
	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Empty(t, resp.Token)
	assert.Zero(t, resp.Expires)
	assert.False(t, c.IsLoggedIn())
}

func TestEmployeesRequiresAuth(t *testing.T) {
	c := newTestBackend(t)

	_, err := c.Employees()
	require.Error(t, err)

	var authErr *AuthError
	require.True(t, errors.As(err, &authErr))
	assert.Equal(t, http.StatusUnauthorized, authErr.StatusCode)
}

func TestEmployeesAfterLogin(t *testing.T) {
	c := newTestBackend(t)
	login(t, c)

	resp, err := c.Employees()
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, 35, resp.Count)
}

func TestLocationsAfterLogin(t *testing.T) {
	c := newTestBackend(t)
	login(t, c)

	resp, err := c.Locations()
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, 10, resp.Count)
}

func TestSubmitAndHistoryRoundTrip(t *testing.T) {
	c := newTestBackend(t)
	login(t, c)

	submit, err := c.SubmitHours(models.HoursData{
		EmployeeID: 2,
		LocationID: 4,
		Date:       "2099-05-20",
		ShiftStart: "08:00",
		ShiftEnd:   "16:00",
	})
	require.NoError(t, err)
	assert.True(t, submit.Success)

	hist, err := c.HoursHistory("2099-05-20", "2099-05-20")
	require.NoError(t, err)
	require.Equal(t, 1, hist.Count)

	rec := hist.Records[0]
	assert.Equal(t, 2, rec.EmployeeID)
	assert.Equal(t, 4, rec.LocationID)
	require.NotNil(t, rec.EmployeeName)
	assert.Equal(t, "Anna Schmidt", *rec.EmployeeName)
	require.NotNil(t, rec.LocationName)
	assert.Equal(t, "REWE Kreuzberg", *rec.LocationName)
}

func TestHistoryBoundsAsQueryParams(t *testing.T) {
	var gotStart, gotEnd string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotStart = r.URL.Query().Get("start")
		gotEnd = r.URL.Query().Get("end")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true,"count":0,"records":[]}`))
	}))
	defer ts.Close()

	kv, err := kvstore.NewMemory(zap.NewNop())
	require.NoError(t, err)
	defer kv.Close()
	sess := session.NewManager(kv, zap.NewNop())
	require.NoError(t, sess.Save("tok", time.Now().Add(time.Hour).Unix(), models.User{}))

	c := NewClient(ts.URL, 5*time.Second, sess, zap.NewNop())

	_, err = c.HoursHistory("2024-01-01", "2024-01-31")
	require.NoError(t, err)
	assert.Equal(t, "2024-01-01", gotStart)
	assert.Equal(t, "2024-01-31", gotEnd)
}

func TestBackendErrorOnServerFailure(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer ts.Close()

	kv, err := kvstore.NewMemory(zap.NewNop())
	require.NoError(t, err)
	defer kv.Close()
	sess := session.NewManager(kv, zap.NewNop())

	c := NewClient(ts.URL, 5*time.Second, sess, zap.NewNop())
	_, err = c.Login("demo", "pw")
	require.Error(t, err)

	var backendErr *BackendError
	require.True(t, errors.As(err, &backendErr))
	assert.Equal(t, http.StatusInternalServerError, backendErr.StatusCode)
}

func TestNetworkErrorPropagates(t *testing.T) {
	kv, err := kvstore.NewMemory(zap.NewNop())
	require.NoError(t, err)
	defer kv.Close()
	sess := session.NewManager(kv, zap.NewNop())

	// Nothing listens here.
	c := NewClient("http://127.0.0.1:1", time.Second, sess, zap.NewNop())
	_, err = c.Login("demo", "pw")
	require.Error(t, err)
}

func TestLogoutClearsSession(t *testing.T) {
	c := newTestBackend(t)
	login(t, c)
	require.True(t, c.IsLoggedIn())

	require.NoError(t, c.Logout())
	assert.False(t, c.IsLoggedIn())
}
