// Package gateway decides which statements reach the database and turns
// pool outcomes into the gateway's error taxonomy. It holds no state of its
// own between calls; everything shared lives in the pool.
package gateway

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"sqlgate/apperr"
	"sqlgate/models"
	"sqlgate/pool"
	"sqlgate/telemetry"
	"sqlgate/validation"
)

// Executor is the part of the pool the gateway needs.
type Executor interface {
	Execute(ctx context.Context, statement string) pool.Result
	Probe(ctx context.Context) bool
	TablesStatement() string
}

// ErrNotPermitted is returned for statements outside the read-only class.
var ErrNotPermitted = apperr.New(apperr.PolicyRejection,
	"statement type not permitted: only SELECT, SHOW, DESCRIBE and EXPLAIN queries are allowed").
	WithCode("NOT_PERMITTED")

type Health struct {
	Status            string
	DatabaseReachable bool
	Timestamp         time.Time
}

type Gateway struct {
	executor Executor
	now      func() time.Time
	outcomes telemetry.CounterVec
}

func New(executor Executor, metrics *telemetry.Registry) *Gateway {
	if metrics == nil {
		metrics = telemetry.Noop()
	}
	return &Gateway{
		executor: executor,
		now:      time.Now,
		outcomes: metrics.NewCounterVec("gateway_queries_total", "Query requests by outcome kind", []string{"kind"}),
	}
}

// HealthCheck never fails: a database that cannot be reached, or a probe
// that panics, is reported as DatabaseReachable=false.
func (g *Gateway) HealthCheck(ctx context.Context) Health {
	return Health{
		Status:            "ok",
		DatabaseReachable: g.probe(ctx),
		Timestamp:         g.now(),
	}
}

func (g *Gateway) probe(ctx context.Context) (reachable bool) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("Database probe panicked")
			reachable = false
		}
	}()
	reachable = g.executor.Probe(ctx)
	if !reachable {
		log.Warn().Msg("Database probe failed")
	}
	return reachable
}

// RunQuery validates, classifies and executes raw. The pool is touched only
// for non-empty statements in the read-only class.
func (g *Gateway) RunQuery(ctx context.Context, raw string) ([]models.Row, error) {
	statement := strings.TrimSpace(raw)
	if statement == "" {
		g.outcomes.With(string(apperr.Validation)).Inc()
		return nil, validation.ErrQueryRequired
	}

	class := validation.Classify(statement)
	if class != validation.Readonly {
		g.outcomes.With(string(apperr.PolicyRejection)).Inc()
		log.Info().Str("keyword", validation.LeadingKeyword(statement)).Msg("Statement rejected by policy")
		return nil, ErrNotPermitted
	}

	log.Debug().Str("statement", statement).Msg("Executing statement")
	res := g.executor.Execute(ctx, statement)
	if !res.OK() {
		g.outcomes.With(string(apperr.ExecutionFailure)).Inc()
		return nil, apperr.New(apperr.ExecutionFailure, res.Failure.Message).WithCode(res.Failure.Code)
	}

	g.outcomes.With("success").Inc()
	return res.Rows, nil
}

// ListTables runs the dialect's table listing through RunQuery and keeps
// the single column of each row.
func (g *Gateway) ListTables(ctx context.Context) ([]string, error) {
	rows, err := g.RunQuery(ctx, g.executor.TablesStatement())
	if err != nil {
		return nil, err
	}
	return TableNames(rows), nil
}

// TableNames reshapes a table listing into a flat sequence of names.
func TableNames(rows []models.Row) []string {
	names := make([]string, 0, len(rows))
	for _, row := range rows {
		v, ok := row.First()
		if !ok || v == nil {
			continue
		}
		if s, ok := v.(string); ok {
			names = append(names, s)
		} else {
			names = append(names, fmt.Sprint(v))
		}
	}
	return names
}
