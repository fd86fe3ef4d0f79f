// Package pool owns the bounded set of database connections shared by every
// request. Callers never see a connection: they hand a statement to Execute
// and get back rows or a Failure.
package pool

import (
	"context"
	"database/sql"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"sqlgate/config"
	"sqlgate/models"
	"sqlgate/telemetry"
)

const probeStatement = "SELECT 1 AS test"

// Failure is a driver or pool failure in the gateway's vocabulary.
type Failure struct {
	Message string
	Code    string
}

// Result is the outcome of one statement: Rows when Failure is nil.
type Result struct {
	Rows    []models.Row
	Failure *Failure
}

func (r Result) OK() bool { return r.Failure == nil }

type Stats struct {
	Size     int   `json:"size"`
	InFlight int64 `json:"inFlight"`
	Waiting  int64 `json:"waiting"`
}

type Pool struct {
	db         *sql.DB
	dialect    string
	size       int
	queueLimit int64

	// sem admits at most size statements; its waiters are served FIFO.
	sem      *semaphore.Weighted
	inFlight atomic.Int64
	waiting  atomic.Int64

	statements   telemetry.CounterVec
	duration     telemetry.Histogram
	inFlightStat telemetry.Gauge
	waitingStat  telemetry.Gauge
}

// New opens the pool described by cfg. An unreachable database does not fail
// construction; the first statement or probe reports it instead.
func New(cfg config.DatabaseConfig, metrics *telemetry.Registry) (*Pool, error) {
	driverName, dsn, err := buildDSN(cfg)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s connection pool: %w", driverName, err)
	}

	p := NewWithDB(db, cfg.Driver, cfg.PoolSize, cfg.QueueLimit, metrics)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		log.Warn().Err(err).
			Str("host", cfg.Host).
			Int("port", cfg.Port).
			Str("database", cfg.Name).
			Msg("Database not reachable at startup")
	} else {
		log.Info().
			Str("driver", driverName).
			Str("host", cfg.Host).
			Str("database", cfg.Name).
			Int("pool_size", cfg.PoolSize).
			Msg("Connection pool ready")
	}

	return p, nil
}

// NewWithDB wraps an already opened *sql.DB. size must be at least 1.
func NewWithDB(db *sql.DB, dialect string, size, queueLimit int, metrics *telemetry.Registry) *Pool {
	if size < 1 {
		size = config.DefaultPoolSize
	}
	if metrics == nil {
		metrics = telemetry.Noop()
	}

	db.SetMaxOpenConns(size)
	db.SetMaxIdleConns(size)

	return &Pool{
		db:         db,
		dialect:    dialect,
		size:       size,
		queueLimit: int64(queueLimit),
		sem:        semaphore.NewWeighted(int64(size)),

		statements:   metrics.NewCounterVec("pool_statements_total", "Statements executed by outcome", []string{"outcome"}),
		duration:     metrics.NewHistogram("pool_statement_seconds", "Statement execution time including queueing", nil),
		inFlightStat: metrics.NewGauge("pool_in_flight", "Statements currently holding a connection"),
		waitingStat:  metrics.NewGauge("pool_waiting", "Callers queued for a connection"),
	}
}

// Execute runs statement on a pooled connection.
//
// At most size statements run at once; further callers queue in arrival
// order. The caller's cancellation is ignored: once submitted, a statement
// runs to completion even if the client has gone away.
func (p *Pool) Execute(ctx context.Context, statement string) Result {
	return p.execute(ctx, statement, true)
}

func (p *Pool) execute(ctx context.Context, statement string, limited bool) Result {
	ctx = context.WithoutCancel(ctx)
	start := time.Now()

	if failure := p.acquire(ctx, limited); failure != nil {
		p.statements.With("rejected").Inc()
		return Result{Failure: failure}
	}
	defer p.release()

	rows, err := p.query(ctx, statement)
	p.duration.Observe(time.Since(start).Seconds())

	if err != nil {
		failure := failureFromError(err)
		p.statements.With("failure").Inc()
		log.Warn().Err(err).Str("code", failure.Code).Msg("Statement failed")
		return Result{Failure: failure}
	}

	p.statements.With("success").Inc()
	log.Debug().Int("rows", len(rows)).Dur("took", time.Since(start)).Msg("Statement executed")
	return Result{Rows: rows}
}

// acquire takes a slot, queueing behind earlier callers. With limited set,
// a caller that would exceed queueLimit is turned away instead.
func (p *Pool) acquire(ctx context.Context, limited bool) *Failure {
	if p.sem.TryAcquire(1) {
		p.inFlightStat.Set(float64(p.inFlight.Add(1)))
		return nil
	}

	for {
		n := p.waiting.Load()
		if limited && p.queueLimit > 0 && n >= p.queueLimit {
			return &Failure{Message: "Queue limit reached.", Code: CodeQueueLimit}
		}
		if p.waiting.CompareAndSwap(n, n+1) {
			break
		}
	}
	p.waitingStat.Inc()

	err := p.sem.Acquire(ctx, 1)

	p.waiting.Add(-1)
	p.waitingStat.Dec()
	if err != nil {
		return &Failure{Message: err.Error(), Code: CodeConnection}
	}

	p.inFlightStat.Set(float64(p.inFlight.Add(1)))
	return nil
}

func (p *Pool) release() {
	p.inFlightStat.Set(float64(p.inFlight.Add(-1)))
	p.sem.Release(1)
}

func (p *Pool) query(ctx context.Context, statement string) ([]models.Row, error) {
	rows, err := p.db.QueryContext(ctx, statement)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanRows(rows)
}

// Probe issues a trivial read-only statement through the same pool and
// reports whether the database answered. The probe waits for a slot even
// when the queue limit is reached, so a busy pool is not reported as down.
func (p *Pool) Probe(ctx context.Context) bool {
	return p.execute(ctx, probeStatement, false).OK()
}

// TablesStatement returns the statement listing the tables of the current
// database for this pool's dialect.
func (p *Pool) TablesStatement() string {
	if p.dialect == config.DriverSQLServer {
		return "SELECT TABLE_NAME FROM INFORMATION_SCHEMA.TABLES WHERE TABLE_TYPE = 'BASE TABLE' ORDER BY TABLE_NAME"
	}
	return "SHOW TABLES"
}

func (p *Pool) Stats() Stats {
	return Stats{
		Size:     p.size,
		InFlight: p.inFlight.Load(),
		Waiting:  p.waiting.Load(),
	}
}

func (p *Pool) Close() error {
	if p.db != nil {
		return p.db.Close()
	}
	return nil
}
