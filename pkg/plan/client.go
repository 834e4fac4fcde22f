package plan

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/big"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

const maxResponseSize = 1 << 20

// ErrMalformedResult is returned when the planner answers with neither a
// success nor a failure.
var ErrMalformedResult = errors.New("malformed validation result")

// HTTPClient talks to the bridge SDK sidecar that runs the feasibility checks
type HTTPClient struct {
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

// NewHTTPClient creates a planner client for the sidecar at baseURL
func NewHTTPClient(baseURL string, timeout time.Duration, logger *zap.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

type toEthereumBody struct {
	Signer       string `json:"signer"`
	SourceParaID uint32 `json:"sourceParaId"`
	Beneficiary  string `json:"beneficiary"`
	Token        string `json:"token"`
	Amount       string `json:"amount"`
}

type toPolkadotBody struct {
	Signer              string `json:"signer"`
	Beneficiary         string `json:"beneficiary"`
	Token               string `json:"token"`
	DestinationParaID   uint32 `json:"destinationParaId"`
	Amount              string `json:"amount"`
	DestinationFeeInDOT string `json:"destinationFeeInDOT"`
}

type resultBody[T any] struct {
	Success json.RawMessage `json:"success,omitempty"`
	Failure *T              `json:"failure,omitempty"`
}

// ValidateToEthereum runs the parachain → Ethereum feasibility check
func (c *HTTPClient) ValidateToEthereum(ctx context.Context, req ToEthereumRequest) (Result, error) {
	body := toEthereumBody{
		Signer:       req.Signer,
		SourceParaID: req.SourceParaID,
		Beneficiary:  req.Beneficiary,
		Token:        req.Token,
		Amount:       amountString(req.Amount),
	}

	var resp resultBody[ToEthereumChecks]
	if err := c.post(ctx, "/validate/to-ethereum", body, &resp); err != nil {
		return Result{}, err
	}
	if resp.Failure != nil {
		return ToEthereumFailure(*resp.Failure), nil
	}
	if isPresent(resp.Success) {
		return Succeeded(ToEthereum), nil
	}
	return Result{}, ErrMalformedResult
}

// ValidateToPolkadot runs the Ethereum → parachain feasibility check
func (c *HTTPClient) ValidateToPolkadot(ctx context.Context, req ToPolkadotRequest) (Result, error) {
	body := toPolkadotBody{
		Signer:              req.Signer,
		Beneficiary:         req.Beneficiary,
		Token:               req.Token,
		DestinationParaID:   req.DestinationParaID,
		Amount:              amountString(req.Amount),
		DestinationFeeInDOT: amountString(req.DestinationFeeInDOT),
	}

	var resp resultBody[ToPolkadotChecks]
	if err := c.post(ctx, "/validate/to-polkadot", body, &resp); err != nil {
		return Result{}, err
	}
	if resp.Failure != nil {
		return ToPolkadotFailure(*resp.Failure), nil
	}
	if isPresent(resp.Success) {
		return Succeeded(ToPolkadot), nil
	}
	return Result{}, ErrMalformedResult
}

func (c *HTTPClient) post(ctx context.Context, path string, in, out any) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("planner request %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return fmt.Errorf("failed to read planner response: %w", err)
	}

	c.logger.Debug("Planner call finished",
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)),
	)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("planner %s returned status %d: %s", path, resp.StatusCode, truncate(string(raw), 200))
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode planner response: %w", err)
	}
	return nil
}

func amountString(v *big.Int) string {
	if v == nil {
		return "0"
	}
	return v.String()
}

func isPresent(raw json.RawMessage) bool {
	s := strings.TrimSpace(string(raw))
	return s != "" && s != "null" && s != "false"
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
