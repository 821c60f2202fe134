package dbmetrics

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/m04kA/CMS-SchedulingService/pkg/metrics"
)

// defaultPoolStatsInterval период сбора статистики connection pool
const defaultPoolStatsInterval = 10 * time.Second

// DB обёртка над *sql.DB, записывающая длительность запросов в prometheus
type DB struct {
	db      *sql.DB
	metrics *metrics.Metrics
	pool    string
}

// Wrap оборачивает *sql.DB сбором метрик запросов
func Wrap(db *sql.DB, m *metrics.Metrics, pool string) *DB {
	return &DB{db: db, metrics: m, pool: pool}
}

// WrapWithDefault оборачивает *sql.DB и запускает фоновый сбор статистики
// connection pool с дефолтным интервалом до закрытия stop-канала
func WrapWithDefault(db *sql.DB, m *metrics.Metrics, pool string, stop <-chan struct{}) *DB {
	wrapped := Wrap(db, m, pool)
	go wrapped.collectPoolStats(defaultPoolStatsInterval, stop)
	return wrapped
}

// ExecContext выполняет запрос с записью метрики длительности
func (d *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	result, err := d.db.ExecContext(ctx, query, args...)
	d.metrics.ObserveDBQuery(queryOperation(query), time.Since(start))
	return result, err
}

// QueryContext выполняет запрос с записью метрики длительности
func (d *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := d.db.QueryContext(ctx, query, args...)
	d.metrics.ObserveDBQuery(queryOperation(query), time.Since(start))
	return rows, err
}

// QueryRowContext выполняет запрос с записью метрики длительности
func (d *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := d.db.QueryRowContext(ctx, query, args...)
	d.metrics.ObserveDBQuery(queryOperation(query), time.Since(start))
	return row
}

// BeginTx открывает транзакцию, запросы которой тоже попадают в метрики
func (d *DB) BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error) {
	tx, err := d.db.BeginTx(ctx, opts)
	if err != nil {
		return nil, err
	}
	return &Tx{tx: tx, metrics: d.metrics}, nil
}

func (d *DB) collectPoolStats(interval time.Duration, stop <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			d.metrics.SetDBConnStats(d.pool, d.db.Stats())
		case <-stop:
			return
		}
	}
}

// Tx обёртка над *sql.Tx с метриками запросов
type Tx struct {
	tx      *sql.Tx
	metrics *metrics.Metrics
}

func (t *Tx) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	result, err := t.tx.ExecContext(ctx, query, args...)
	t.metrics.ObserveDBQuery(queryOperation(query), time.Since(start))
	return result, err
}

func (t *Tx) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := t.tx.QueryContext(ctx, query, args...)
	t.metrics.ObserveDBQuery(queryOperation(query), time.Since(start))
	return rows, err
}

func (t *Tx) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := t.tx.QueryRowContext(ctx, query, args...)
	t.metrics.ObserveDBQuery(queryOperation(query), time.Since(start))
	return row
}

func (t *Tx) Commit() error {
	return t.tx.Commit()
}

func (t *Tx) Rollback() error {
	return t.tx.Rollback()
}

// queryOperation извлекает тип операции (SELECT, INSERT...) для лейбла метрики
func queryOperation(query string) string {
	trimmed := strings.TrimSpace(query)
	if idx := strings.IndexByte(trimmed, ' '); idx > 0 {
		return strings.ToUpper(trimmed[:idx])
	}
	return strings.ToUpper(trimmed)
}
