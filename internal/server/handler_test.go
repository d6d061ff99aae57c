package server

import (
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dnlklmn/wpr-presence/internal/kvstore"
	"github.com/dnlklmn/wpr-presence/internal/mockapi"
	"github.com/dnlklmn/wpr-presence/internal/models"
	"github.com/dnlklmn/wpr-presence/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	kv, err := kvstore.NewMemory(zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { kv.Close() })

	sess := session.NewManager(kv, zap.NewNop())
	records := mockapi.NewRecordStore(kv, zap.NewNop()).
		WithRand(rand.New(rand.NewSource(1)))
	mock := mockapi.NewService(sess, records, false, zap.NewNop())

	return NewRouter(NewHoursHandler(mock, zap.NewNop()), zap.NewNop())
}

func TestHealth(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestLoginEndpoint(t *testing.T) {
	router := newTestRouter(t)

	body := strings.NewReader(`{"username":"demo","password":"pw"}`)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/login", body))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.Token)
}

func TestLoginRejectsEmptyCredentials(t *testing.T) {
	router := newTestRouter(t)

	body := strings.NewReader(`{"username":"","password":"pw"}`)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/login", body))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Empty(t, resp.Token)
	assert.Zero(t, resp.Expires)
}

func TestLoginRejectsBadBody(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/login", strings.NewReader("{")))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLoginRejectsGet(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/login", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestAuthenticatedRoutesRequireBearer(t *testing.T) {
	router := newTestRouter(t)

	for _, path := range []string{"/employees", "/locations", "/hours"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "path %s", path)
	}
}

func TestEmployeesEndpoint(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/employees", nil)
	req.Header.Set("Authorization", "Bearer tok")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.EmployeesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 35, resp.Count)
}

func TestSubmitAndHistoryEndpoints(t *testing.T) {
	router := newTestRouter(t)

	body := strings.NewReader(`{"ma_id":1,"f_id":2,"datum":"2099-04-01","schicht_start":"09:00","schicht_ende":"17:00"}`)
	req := httptest.NewRequest(http.MethodPost, "/hours", body)
	req.Header.Set("Authorization", "Bearer tok")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var submit models.SubmitResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &submit))
	assert.True(t, submit.Success)

	req = httptest.NewRequest(http.MethodGet, "/hours?start=2099-04-01&end=2099-04-01", nil)
	req.Header.Set("Authorization", "Bearer tok")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var hist models.HistoryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &hist))
	require.Equal(t, 1, hist.Count)
	assert.Equal(t, 1, hist.Records[0].EmployeeID)
	assert.Equal(t, "2099-04-01", hist.Records[0].Date)
}

func TestUnknownRoute(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
