package plan

import (
	"context"
	"encoding/json"
	"errors"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newPlannerServer(t *testing.T, handler http.HandlerFunc) *HTTPClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewHTTPClient(srv.URL+"/", 5*time.Second, zap.NewNop())
}

func TestHTTPClient_ValidateToEthereum_Success(t *testing.T) {
	var got toEthereumBody
	client := newPlannerServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/validate/to-ethereum", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"success":{"fee":"1000"}}`))
	})

	res, err := client.ValidateToEthereum(context.Background(), ToEthereumRequest{
		Signer:       testBenef,
		SourceParaID: 1000,
		Beneficiary:  testSigner,
		Token:        testToken,
		Amount:       big.NewInt(42),
	})
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, ToEthereum, res.Direction)

	assert.Equal(t, "42", got.Amount)
	assert.EqualValues(t, 1000, got.SourceParaID)
	assert.Equal(t, testToken, got.Token)
}

func TestHTTPClient_ValidateToPolkadot_Failure(t *testing.T) {
	client := newPlannerServer(t, func(w http.ResponseWriter, r *http.Request) {
		var body toPolkadotBody
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "200000000000", body.DestinationFeeInDOT)
		assert.EqualValues(t, 3369, body.DestinationParaID)

		checks := allToPolkadot()
		checks.HasToken = false
		_ = json.NewEncoder(w).Encode(map[string]any{"failure": checks})
	})

	res, err := client.ValidateToPolkadot(context.Background(), ToPolkadotRequest{
		Signer:              testSigner,
		Beneficiary:         testBenef,
		Token:               testToken,
		DestinationParaID:   3369,
		Amount:              big.NewInt(1),
		DestinationFeeInDOT: big.NewInt(200000000000),
	})
	require.NoError(t, err)
	assert.False(t, res.Success)
	require.NotNil(t, res.ToPolkadot)
	assert.False(t, res.ToPolkadot.HasToken)
	assert.True(t, res.ToPolkadot.BridgeOperational)
}

func TestHTTPClient_Malformed(t *testing.T) {
	client := newPlannerServer(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	})

	_, err := client.ValidateToEthereum(context.Background(), ToEthereumRequest{Amount: big.NewInt(1)})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformedResult))
}

func TestHTTPClient_UpstreamError(t *testing.T) {
	client := newPlannerServer(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "sdk exploded", http.StatusBadGateway)
	})

	_, err := client.ValidateToPolkadot(context.Background(), ToPolkadotRequest{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 502")
}
