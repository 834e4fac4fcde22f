package status_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/chainsafe/bridge-console/pkg/status"
	"github.com/chainsafe/bridge-console/pkg/status/mocks"
)

func newStatusTestServer(svc status.Service) http.Handler {
	r := chi.NewRouter()
	status.RegisterRoutes(r, svc, status.DefaultNativeToken, 50, zap.NewNop())
	return r
}

func testSnapshot() *status.Snapshot {
	st := haltedReport()
	st.Summary = status.Summarize(st.StatusInfo)
	return &status.Snapshot{ID: 7, Status: *st, FetchedAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
}

type errorBody struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
}

func TestStatusHTTP_NotAvailable(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().Latest(mock.Anything).Return(nil, status.ErrNoSnapshot)

	rec := httptest.NewRecorder()
	newStatusTestServer(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/status", nil))

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	var got errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "bridge status not available yet", got.Error)
}

func TestStatusHTTP_Summary(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().Latest(mock.Anything).Return(testSnapshot(), nil)

	rec := httptest.NewRecorder()
	newStatusTestServer(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/status", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var got status.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, status.ModeHalted, got.View.Overall)
	assert.False(t, got.View.Diagnostic)
	assert.Nil(t, got.Raw)
	assert.Len(t, got.View.Summary, 3)
}

func TestStatusHTTP_Diagnostic(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().Latest(mock.Anything).Return(testSnapshot(), nil)

	rec := httptest.NewRecorder()
	newStatusTestServer(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/status?diagnostic=true", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var got status.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.True(t, got.View.Diagnostic)
	assert.Len(t, got.View.Detail, 2)
	require.NotNil(t, got.Raw)
	assert.Equal(t, status.ModeHalted, got.Raw.StatusInfo.ToEthereum.OperatingMode.Outbound)
}

func TestStatusHTTP_RefreshFailure(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().Refresh(mock.Anything).Return(nil, errors.New("source down"))

	rec := httptest.NewRecorder()
	newStatusTestServer(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/status/refresh", nil))

	require.Equal(t, http.StatusBadGateway, rec.Code)
	var got errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "failed to fetch bridge status", got.Error)
}

func TestStatusHTTP_History(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().History(mock.Anything, 5).Return([]*status.Snapshot{testSnapshot()}, nil)

	rec := httptest.NewRecorder()
	newStatusTestServer(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/status/history?limit=5", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var got []status.HistoryEntry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, int64(7), got[0].ID)
	assert.Equal(t, status.ModeHalted, got[0].Summary.OverallStatus)
}

func TestStatusHTTP_HistoryLimitIsCapped(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().History(mock.Anything, 50).Return(nil, nil)

	rec := httptest.NewRecorder()
	newStatusTestServer(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/status/history?limit=5000", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestStatusHTTP_HistoryInvalidLimit(t *testing.T) {
	svc := mocks.NewService(t)

	rec := httptest.NewRecorder()
	newStatusTestServer(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/status/history?limit=abc", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
