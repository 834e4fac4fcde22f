package status

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const maxStatusSize = 4 << 20

// Source fetches the raw bridge status report
//
//go:generate mockery --name Source --output mocks --outpkg mocks --filename mock_source.go --with-expecter
type Source interface {
	Fetch(ctx context.Context) (*BridgeStatus, error)
}

// HeadReader returns the latest block number of a chain. *ethclient.Client
// satisfies it.
type HeadReader interface {
	BlockNumber(ctx context.Context) (uint64, error)
}

// HTTPSource reads the status report from an HTTP JSON endpoint
type HTTPSource struct {
	url    string
	client *http.Client
	head   HeadReader
	logger *zap.Logger
}

// HTTPSourceOption configures an HTTPSource
type HTTPSourceOption func(*HTTPSource)

// WithEthereumHead makes the source take the latest Ethereum block from head
// instead of the report, recomputing the beacon client latency.
func WithEthereumHead(head HeadReader) HTTPSourceOption {
	return func(s *HTTPSource) {
		s.head = head
	}
}

// WithHTTPClient replaces the default HTTP client
func WithHTTPClient(c *http.Client) HTTPSourceOption {
	return func(s *HTTPSource) {
		s.client = c
	}
}

// NewHTTPSource creates a source reading from url
func NewHTTPSource(url string, timeout time.Duration, logger *zap.Logger, opts ...HTTPSourceOption) *HTTPSource {
	s := &HTTPSource{
		url:    url,
		client: &http.Client{Timeout: timeout},
		logger: logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Fetch downloads and decodes the status report
func (s *HTTPSource) Fetch(ctx context.Context) (*BridgeStatus, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build status request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("status request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxStatusSize))
		return nil, fmt.Errorf("status source returned %d", resp.StatusCode)
	}

	var st BridgeStatus
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxStatusSize)).Decode(&st); err != nil {
		return nil, fmt.Errorf("failed to decode status: %w", err)
	}

	if s.head != nil {
		if err := s.applyEthereumHead(ctx, &st); err != nil {
			s.logger.Warn("Failed to read Ethereum head, keeping reported block", zap.Error(err))
		}
	}

	return &st, nil
}

func (s *HTTPSource) applyEthereumHead(ctx context.Context, st *BridgeStatus) error {
	head, err := s.head.BlockNumber(ctx)
	if err != nil {
		return err
	}
	tp := &st.StatusInfo.ToPolkadot
	if head < tp.LatestEthereumBlockOnPolkadot {
		return errors.New("ethereum head behind beacon client")
	}
	tp.LatestEthereumBlock = head
	tp.BlockLatency = head - tp.LatestEthereumBlockOnPolkadot
	return nil
}
