package service

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apperrors "github.com/chainsafe/bridge-console/pkg/app/errors"
	"github.com/chainsafe/bridge-console/pkg/route"
	"github.com/chainsafe/bridge-console/pkg/transfer"
	"github.com/chainsafe/bridge-console/pkg/transfer/service/mocks"
)

func newTransferTestServer(svc Service) http.Handler {
	r := chi.NewRouter()
	RegisterRoutes(r, svc, zap.NewNop())
	return r
}

type errorBody struct {
	Error   string          `json:"error"`
	Code    int             `json:"code"`
	Details json.RawMessage `json:"details"`
}

func serve(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var buf *bytes.Buffer
	if body != "" {
		buf = bytes.NewBufferString(body)
	} else {
		buf = &bytes.Buffer{}
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, path, buf))
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorBody {
	t.Helper()
	var got errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	return got
}

func TestTransferHTTP_OpenSession(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().OpenSession(mock.Anything).Return(&transfer.View{
		ID:      "s1",
		Values:  transfer.FormValues{Source: "ethereum", Destination: "assethub", Token: weth, Amount: "0"},
		Outcome: transfer.Outcome{Status: transfer.OutcomeIdle},
	}, nil)

	rec := serve(t, newTransferTestServer(svc), http.MethodPost, "/api/sessions", "")

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var got transfer.View
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "s1", got.ID)
	assert.Equal(t, "assethub", got.Values.Destination)
	assert.Equal(t, transfer.OutcomeIdle, got.Outcome.Status)
}

func TestTransferHTTP_GetSessionNotFound(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().GetSession(mock.Anything, "nope").
		Return(nil, apperrors.ResourceNotFoundError(transfer.ErrSessionNotFound, "session not found"))

	rec := serve(t, newTransferTestServer(svc), http.MethodGet, "/api/sessions/nope", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "session not found", decodeError(t, rec).Error)
}

func TestTransferHTTP_UpdateSessionInvalidJSON(t *testing.T) {
	svc := mocks.NewService(t)

	rec := serve(t, newTransferTestServer(svc), http.MethodPatch, "/api/sessions/s1", "{invalid")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	got := decodeError(t, rec)
	assert.Equal(t, "invalid JSON", got.Error)
	assert.Equal(t, http.StatusBadRequest, got.Code)
}

func TestTransferHTTP_UpdateSession(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().
		UpdateSession(mock.Anything, "s1", mock.MatchedBy(func(c transfer.FieldChange) bool {
			return c.Source != nil && *c.Source == "assethub" && c.Destination == nil
		})).
		Return(&transfer.View{ID: "s1", Generation: 1}, nil)

	rec := serve(t, newTransferTestServer(svc), http.MethodPatch, "/api/sessions/s1", `{"source":"assethub"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var got transfer.View
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, uint64(1), got.Generation)
}

func TestTransferHTTP_CloseSession(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().CloseSession(mock.Anything, "s1").Return(nil)

	rec := serve(t, newTransferTestServer(svc), http.MethodDelete, "/api/sessions/s1", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestTransferHTTP_Beneficiaries(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().
		Beneficiaries(mock.Anything, "s1", route.Wallets{Ethereum: []string{ethAccount}}).
		Return([]route.Account{{Key: ethAccount, Name: ethAccount, Type: "ethereum"}}, nil)

	rec := serve(t, newTransferTestServer(svc), http.MethodPost, "/api/sessions/s1/beneficiaries",
		`{"ethereum":["`+ethAccount+`"]}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var got []route.Account
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, ethAccount, got[0].Key)
}

func TestTransferHTTP_SubmitPreconditionFailures(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().
		Submit(mock.Anything, "s1", mock.MatchedBy(func(req *transfer.SubmitRequest) bool {
			return req.Signer == ethAccount && req.Values.Amount == "10"
		})).
		Return(&transfer.Outcome{Status: transfer.OutcomeErrors, Errors: []string{"Bridge halted."}}, nil)

	body := `{"values":{"source":"ethereum","destination":"assethub","token":"` + weth +
		`","amount":"10","beneficiary":"` + aliceSS58 + `"},"signer":"` + ethAccount + `"}`
	rec := serve(t, newTransferTestServer(svc), http.MethodPost, "/api/sessions/s1/submit", body)

	require.Equal(t, http.StatusOK, rec.Code)
	var got transfer.Outcome
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, transfer.OutcomeErrors, got.Status)
	assert.Equal(t, []string{"Bridge halted."}, got.Errors)
}

func TestTransferHTTP_SubmitErrorsMapToStatusCodes(t *testing.T) {
	fieldErrs := transfer.FieldErrors{{Field: "amount", Message: "Invalid amount"}}

	tests := []struct {
		name string
		err  error
		code int
		msg  string
	}{
		{
			name: "field errors",
			err:  apperrors.ValidationError(fieldErrs, "invalid transfer form", fieldErrs),
			code: http.StatusBadRequest,
			msg:  "invalid transfer form",
		},
		{
			name: "wallet not connected",
			err:  apperrors.PreconditionFailedError(transfer.ErrWalletNotConnected, "Wallet not connected."),
			code: http.StatusPreconditionFailed,
			msg:  "Wallet not connected.",
		},
		{
			name: "in flight",
			err:  apperrors.ConflictError(transfer.ErrSubmitInFlight, "feasibility check already in flight"),
			code: http.StatusConflict,
			msg:  "feasibility check already in flight",
		},
		{
			name: "form state mismatch",
			err:  apperrors.GeneralError(transfer.ErrFormStateMismatch),
			code: http.StatusInternalServerError,
			msg:  "Internal Server Error",
		},
		{
			name: "planner down",
			err:  apperrors.DependencyError(nil, "feasibility check failed"),
			code: http.StatusBadGateway,
			msg:  "feasibility check failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewService(t)
			svc.EXPECT().Submit(mock.Anything, "s1", mock.Anything).Return(nil, tt.err)

			rec := serve(t, newTransferTestServer(svc), http.MethodPost, "/api/sessions/s1/submit", `{"values":{}}`)

			require.Equal(t, tt.code, rec.Code)
			got := decodeError(t, rec)
			assert.Equal(t, tt.msg, got.Error)
			assert.Equal(t, tt.code, got.Code)
		})
	}
}

func TestTransferHTTP_SubmitFieldErrorDetails(t *testing.T) {
	fieldErrs := transfer.FieldErrors{{Field: "beneficiary", Message: "Invalid address format."}}
	svc := mocks.NewService(t)
	svc.EXPECT().Submit(mock.Anything, "s1", mock.Anything).
		Return(nil, apperrors.ValidationError(fieldErrs, "invalid transfer form", fieldErrs))

	rec := serve(t, newTransferTestServer(svc), http.MethodPost, "/api/sessions/s1/submit", `{"values":{}}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `[{"field":"beneficiary","message":"Invalid address format."}]`, string(decodeError(t, rec).Details))
}

func TestTransferHTTP_AttemptsInvalidLimit(t *testing.T) {
	svc := mocks.NewService(t)

	rec := serve(t, newTransferTestServer(svc), http.MethodGet, "/api/sessions/s1/attempts?limit=-1", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTransferHTTP_Attempts(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().Attempts(mock.Anything, "s1", 5).
		Return([]*transfer.Attempt{{ID: "a1", SessionID: "s1", Result: transfer.AttemptPassed}}, nil)

	rec := serve(t, newTransferTestServer(svc), http.MethodGet, "/api/sessions/s1/attempts?limit=5", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var got []transfer.Attempt
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, transfer.AttemptPassed, got[0].Result)
}

func TestTransferHTTP_AttemptsLimitIsCapped(t *testing.T) {
	for _, query := range []string{"", "?limit=1000000000"} {
		svc := mocks.NewService(t)
		svc.EXPECT().Attempts(mock.Anything, "s1", maxAttemptsLimit).Return(nil, nil).Once()

		rec := serve(t, newTransferTestServer(svc), http.MethodGet, "/api/sessions/s1/attempts"+query, "")

		require.Equal(t, http.StatusOK, rec.Code, query)
	}
}

func TestTransferHTTP_Locations(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().Locations(mock.Anything).Return(&transfer.Locations{Environment: "test", Gateway: gateway}, nil)

	rec := serve(t, newTransferTestServer(svc), http.MethodGet, "/api/locations", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var got transfer.Locations
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "test", got.Environment)
}
