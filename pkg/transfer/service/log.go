package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/chainsafe/bridge-console/pkg/route"
	"github.com/chainsafe/bridge-console/pkg/transfer"
)

const serviceName = "TransferService"

// logService wraps Service with automatic logging of all method calls
type logService struct {
	svc    Service
	logger *zap.Logger
}

// NewLog creates a logging decorator for the transfer Service.
// It logs method entry/exit, duration and errors.
func NewLog(svc Service, logger *zap.Logger) Service {
	return &logService{
		svc:    svc,
		logger: logger,
	}
}

func (ls *logService) done(method string, start time.Time, err error, fields ...zap.Field) {
	fields = append([]zap.Field{
		zap.String("service", serviceName),
		zap.String("method", method),
		zap.Duration("duration", time.Since(start)),
	}, fields...)

	if err != nil {
		ls.logger.Error(method+" failed", append(fields, zap.Error(err))...)
		return
	}
	ls.logger.Debug(method+" completed", fields...)
}

// Locations wraps the service method with logging
func (ls *logService) Locations(ctx context.Context) (resp *transfer.Locations, err error) {
	defer func(start time.Time) {
		ls.done("Locations", start, err)
	}(time.Now())
	return ls.svc.Locations(ctx)
}

// OpenSession wraps the service method with logging
func (ls *logService) OpenSession(ctx context.Context) (resp *transfer.View, err error) {
	defer func(start time.Time) {
		var fields []zap.Field
		if resp != nil {
			fields = append(fields, zap.String("session_id", resp.ID), zap.String("source", resp.Values.Source))
		}
		ls.done("OpenSession", start, err, fields...)
	}(time.Now())
	return ls.svc.OpenSession(ctx)
}

// GetSession wraps the service method with logging
func (ls *logService) GetSession(ctx context.Context, id string) (resp *transfer.View, err error) {
	defer func(start time.Time) {
		ls.done("GetSession", start, err, zap.String("session_id", id))
	}(time.Now())
	return ls.svc.GetSession(ctx, id)
}

// UpdateSession wraps the service method with logging
func (ls *logService) UpdateSession(
	ctx context.Context,
	id string,
	change transfer.FieldChange,
) (resp *transfer.View, err error) {
	defer func(start time.Time) {
		fields := []zap.Field{zap.String("session_id", id)}
		if resp != nil {
			fields = append(fields,
				zap.String("source", resp.Values.Source),
				zap.String("destination", resp.Values.Destination),
				zap.String("token", resp.Values.Token),
				zap.Uint64("generation", resp.Generation),
			)
		}
		ls.done("UpdateSession", start, err, fields...)
	}(time.Now())
	return ls.svc.UpdateSession(ctx, id, change)
}

// CloseSession wraps the service method with logging
func (ls *logService) CloseSession(ctx context.Context, id string) (err error) {
	defer func(start time.Time) {
		ls.done("CloseSession", start, err, zap.String("session_id", id))
	}(time.Now())
	return ls.svc.CloseSession(ctx, id)
}

// Beneficiaries wraps the service method with logging
func (ls *logService) Beneficiaries(
	ctx context.Context,
	id string,
	wallets route.Wallets,
) (resp []route.Account, err error) {
	defer func(start time.Time) {
		ls.done("Beneficiaries", start, err,
			zap.String("session_id", id),
			zap.Int("accounts", len(resp)),
		)
	}(time.Now())
	return ls.svc.Beneficiaries(ctx, id, wallets)
}

// Submit wraps the service method with logging. Submits are logged at info
// level since they are the console's main audit trail.
func (ls *logService) Submit(
	ctx context.Context,
	id string,
	req *transfer.SubmitRequest,
) (resp *transfer.Outcome, err error) {
	start := time.Now()

	ls.logger.Info("Submit started",
		zap.String("service", serviceName),
		zap.String("method", "Submit"),
		zap.String("session_id", id),
		zap.String("source", req.Values.Source),
		zap.String("destination", req.Values.Destination),
		zap.String("token", req.Values.Token),
		zap.String("amount", req.Values.Amount),
	)

	defer func() {
		duration := time.Since(start)
		if err != nil {
			ls.logger.Error("Submit failed",
				zap.String("service", serviceName),
				zap.String("method", "Submit"),
				zap.String("session_id", id),
				zap.Duration("duration", duration),
				zap.Error(err),
			)
			return
		}
		ls.logger.Info("Submit completed",
			zap.String("service", serviceName),
			zap.String("method", "Submit"),
			zap.String("session_id", id),
			zap.String("status", string(resp.Status)),
			zap.Int("errors", len(resp.Errors)),
			zap.Duration("duration", duration),
		)
	}()

	return ls.svc.Submit(ctx, id, req)
}

// Attempts wraps the service method with logging
func (ls *logService) Attempts(ctx context.Context, id string, limit int) (resp []*transfer.Attempt, err error) {
	defer func(start time.Time) {
		ls.done("Attempts", start, err, zap.String("session_id", id), zap.Int("count", len(resp)))
	}(time.Now())
	return ls.svc.Attempts(ctx, id, limit)
}
