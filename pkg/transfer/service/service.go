package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/chainsafe/bridge-console/internal/metrics"
	"github.com/chainsafe/bridge-console/pkg/address"
	apperrors "github.com/chainsafe/bridge-console/pkg/app/errors"
	"github.com/chainsafe/bridge-console/pkg/attemptstore"
	"github.com/chainsafe/bridge-console/pkg/location"
	"github.com/chainsafe/bridge-console/pkg/plan"
	"github.com/chainsafe/bridge-console/pkg/route"
	"github.com/chainsafe/bridge-console/pkg/transfer"
)

// walletNotConnectedMessage is shown apart from the form's field errors
const walletNotConnectedMessage = "Wallet not connected."

// Store is the narrow data-access interface for submit attempts
//
//go:generate mockery --name Store --output mocks --outpkg mocks --filename mock_store.go --with-expecter
type Store interface {
	RecordAttempt(ctx context.Context, attempt *transfer.Attempt) error
	ListAttempts(ctx context.Context, opts ...attemptstore.QueryOption) ([]*transfer.Attempt, error)
}

// Service defines the interface for the transfer form business logic
//
//go:generate mockery --name Service --output mocks --outpkg mocks --filename mock_service.go --with-expecter
type Service interface {
	Locations(ctx context.Context) (*transfer.Locations, error)
	OpenSession(ctx context.Context) (*transfer.View, error)
	GetSession(ctx context.Context, id string) (*transfer.View, error)
	UpdateSession(ctx context.Context, id string, change transfer.FieldChange) (*transfer.View, error)
	CloseSession(ctx context.Context, id string) error
	Beneficiaries(ctx context.Context, id string, wallets route.Wallets) ([]route.Account, error)
	Submit(ctx context.Context, id string, req *transfer.SubmitRequest) (*transfer.Outcome, error)
	Attempts(ctx context.Context, id string, limit int) ([]*transfer.Attempt, error)
}

type transferService struct {
	catalog  *location.Catalog
	registry *transfer.Registry
	planner  plan.Planner
	store    Store
	logger   *zap.Logger
}

// NewService creates a new transfer service
func NewService(
	catalog *location.Catalog,
	registry *transfer.Registry,
	planner plan.Planner,
	store Store,
	logger *zap.Logger,
) Service {
	return &transferService{
		catalog:  catalog,
		registry: registry,
		planner:  planner,
		store:    store,
		logger:   logger,
	}
}

func (s *transferService) Locations(_ context.Context) (*transfer.Locations, error) {
	return &transfer.Locations{
		Environment: s.catalog.Name(),
		Gateway:     s.catalog.Gateway(),
		Sources:     s.catalog.Sources(),
		All:         s.catalog.All(),
	}, nil
}

func (s *transferService) OpenSession(_ context.Context) (*transfer.View, error) {
	sess, err := s.registry.Open(s.catalog)
	if err != nil {
		return nil, s.mapError(err)
	}
	metrics.OpenSessions.Set(float64(s.registry.Len()))

	v := sess.View()
	return &v, nil
}

func (s *transferService) GetSession(_ context.Context, id string) (*transfer.View, error) {
	sess, err := s.registry.Get(id)
	if err != nil {
		return nil, s.mapError(err)
	}
	v := sess.View()
	return &v, nil
}

func (s *transferService) UpdateSession(_ context.Context, id string, change transfer.FieldChange) (*transfer.View, error) {
	sess, err := s.registry.Get(id)
	if err != nil {
		return nil, s.mapError(err)
	}
	v, err := sess.Update(s.catalog, change)
	if err != nil {
		return nil, s.mapError(err)
	}
	return &v, nil
}

func (s *transferService) CloseSession(_ context.Context, id string) error {
	if _, err := s.registry.Get(id); err != nil {
		return s.mapError(err)
	}
	s.registry.Close(id)
	metrics.OpenSessions.Set(float64(s.registry.Len()))
	return nil
}

func (s *transferService) Beneficiaries(_ context.Context, id string, wallets route.Wallets) ([]route.Account, error) {
	sess, err := s.registry.Get(id)
	if err != nil {
		return nil, s.mapError(err)
	}
	accounts := route.Beneficiaries(sess.Route().Destination, wallets)
	if accounts == nil {
		accounts = []route.Account{}
	}
	return accounts, nil
}

// Submit validates the form, runs the feasibility check for the session's
// route and records the outcome. Failed preconditions are a successful call
// with an errors outcome.
func (s *transferService) Submit(ctx context.Context, id string, req *transfer.SubmitRequest) (*transfer.Outcome, error) {
	sess, err := s.registry.Get(id)
	if err != nil {
		return nil, s.mapError(err)
	}

	r := sess.Route()
	direction := directionOf(r)
	attempt := &transfer.Attempt{
		SessionID: id,
		Direction: direction,
		Values:    req.Values,
	}

	if fieldErrs := req.Values.Validate(r.Destination); len(fieldErrs) > 0 {
		s.finishAttempt(ctx, attempt, transfer.AttemptInvalid, fieldErrs.Messages())
		return nil, apperrors.ValidationError(fieldErrs, "invalid transfer form", fieldErrs)
	}

	if req.Signer == "" {
		s.finishAttempt(ctx, attempt, transfer.AttemptWalletNotConnected, []string{walletNotConnectedMessage})
		return nil, apperrors.PreconditionFailedError(transfer.ErrWalletNotConnected, walletNotConnectedMessage)
	}
	if !validSigner(r.Source, req.Signer) {
		s.finishAttempt(ctx, attempt, transfer.AttemptInvalid, []string{"Invalid signer address."})
		return nil, apperrors.BadRequestError(nil, "invalid signer address")
	}

	ticket, err := sess.BeginSubmit(req.Values)
	if err != nil {
		return nil, s.mapError(err)
	}

	result, err := s.check(ctx, ticket, req.Signer)
	if err != nil {
		sess.Abort(ticket)
		s.finishAttempt(ctx, attempt, transfer.AttemptFailed, []string{err.Error()})
		return nil, err
	}

	failures := plan.Failures(result, plan.Request{
		Token:       ticket.Values.Token,
		Beneficiary: ticket.Values.Beneficiary,
		Signer:      req.Signer,
		Gateway:     s.catalog.Gateway(),
	})

	outcome := transfer.Outcome{Status: transfer.OutcomePassed}
	if len(failures) > 0 {
		outcome = transfer.Outcome{Status: transfer.OutcomeErrors, Failures: failures}
		for _, f := range failures {
			outcome.Errors = append(outcome.Errors, f.Message)
			metrics.PreconditionFailures.WithLabelValues(string(direction), f.Check).Inc()
		}
	}

	if err := sess.Finish(ticket, outcome); err != nil {
		s.finishAttempt(ctx, attempt, transfer.AttemptStale, outcome.Errors)
		return nil, apperrors.ConflictError(err, "transfer form changed during validation")
	}

	res := transfer.AttemptPassed
	if outcome.Status == transfer.OutcomeErrors {
		res = transfer.AttemptRejected
	}
	s.finishAttempt(ctx, attempt, res, outcome.Errors)
	return &outcome, nil
}

func (s *transferService) Attempts(ctx context.Context, id string, limit int) ([]*transfer.Attempt, error) {
	if _, err := s.registry.Get(id); err != nil {
		return nil, s.mapError(err)
	}
	opts := []attemptstore.QueryOption{attemptstore.WithSessionID(id)}
	if limit > 0 {
		opts = append(opts, attemptstore.WithLimit(limit))
	}
	attempts, err := s.store.ListAttempts(ctx, opts...)
	if err != nil {
		return nil, apperrors.GeneralError(err)
	}
	if attempts == nil {
		attempts = []*transfer.Attempt{}
	}
	return attempts, nil
}

// check calls the planner for the ticket's direction
func (s *transferService) check(ctx context.Context, t transfer.Ticket, signer string) (plan.Result, error) {
	amount, err := transfer.ParseAmount(t.Values.Amount)
	if err != nil {
		return plan.Result{}, apperrors.BadRequestError(err, "invalid amount")
	}

	direction := directionOf(t.Route)
	start := time.Now()
	defer func() {
		metrics.PlannerDuration.WithLabelValues(string(direction)).Observe(time.Since(start).Seconds())
	}()

	var result plan.Result
	switch direction {
	case plan.ToEthereum:
		src := t.Route.Source
		if src.ParaInfo == nil {
			return plan.Result{}, apperrors.GeneralError(fmt.Errorf("source %s has no parachain info", src.ID))
		}
		if t.Route.Destination.Type != location.TypeEthereum {
			return plan.Result{}, apperrors.GeneralError(fmt.Errorf("%w: substrate to substrate route %s to %s",
				transfer.ErrFormStateMismatch, src.ID, t.Route.Destination.ID))
		}
		result, err = s.planner.ValidateToEthereum(ctx, plan.ToEthereumRequest{
			Signer:       signer,
			SourceParaID: src.ParaInfo.ParaID,
			Beneficiary:  t.Values.Beneficiary,
			Token:        t.Values.Token,
			Amount:       amount,
		})
	case plan.ToPolkadot:
		dst := t.Route.Destination
		if dst.ParaInfo == nil {
			return plan.Result{}, apperrors.GeneralError(fmt.Errorf("destination %s has no parachain info", dst.ID))
		}
		result, err = s.planner.ValidateToPolkadot(ctx, plan.ToPolkadotRequest{
			Signer:              signer,
			Beneficiary:         t.Values.Beneficiary,
			Token:               t.Values.Token,
			DestinationParaID:   dst.ParaInfo.ParaID,
			Amount:              amount,
			DestinationFeeInDOT: dst.ParaInfo.DestinationFeeDOT,
		})
	}
	if err != nil {
		return plan.Result{}, apperrors.DependencyError(err, "feasibility check failed")
	}
	if !result.Valid(direction) {
		return plan.Result{}, apperrors.DependencyError(
			fmt.Errorf("%w: %s answer for a %s check", plan.ErrMalformedResult, result.Direction, direction),
			"feasibility check failed")
	}
	return result, nil
}

func (s *transferService) finishAttempt(ctx context.Context, a *transfer.Attempt, result transfer.AttemptResult, errs []string) {
	a.Result = result
	a.Errors = errs
	metrics.SubmitsTotal.WithLabelValues(string(a.Direction), string(result)).Inc()

	if err := s.store.RecordAttempt(ctx, a); err != nil {
		s.logger.Warn("Failed to record submit attempt",
			zap.String("session_id", a.SessionID),
			zap.String("result", string(result)),
			zap.Error(err),
		)
		metrics.ErrorsTotal.WithLabelValues("transfer", "persist").Inc()
	}
}

// mapError converts domain errors into service errors. Catalog and form
// state errors are programmer errors and surface as internal errors.
func (s *transferService) mapError(err error) error {
	switch {
	case errors.Is(err, transfer.ErrSessionNotFound):
		return apperrors.ResourceNotFoundError(err, "session not found")
	case errors.Is(err, transfer.ErrSubmitInFlight):
		return apperrors.ConflictError(err, "feasibility check already in flight")
	case errors.Is(err, transfer.ErrFormStateMismatch),
		errors.Is(err, route.ErrUnknownLocation),
		errors.Is(err, route.ErrNoDestinations),
		errors.Is(err, route.ErrNoTokens):
		s.logger.Error("Transfer form state error", zap.Error(err))
		metrics.ErrorsTotal.WithLabelValues("transfer", "form_state").Inc()
		return apperrors.GeneralError(err)
	default:
		return apperrors.GeneralError(err)
	}
}

func directionOf(r route.Route) plan.Direction {
	if r.Source != nil && r.Source.Type == location.TypeEthereum {
		return plan.ToPolkadot
	}
	return plan.ToEthereum
}

// validSigner reports whether signer is an account of source's chain type
func validSigner(source *location.Location, signer string) bool {
	if source == nil {
		return false
	}
	if source.Type == location.TypeEthereum {
		return address.IsEthereum(signer)
	}
	if source.Accepts20ByteAccounts() && address.IsEthereum(signer) {
		return true
	}
	return address.IsSS58(signer)
}
