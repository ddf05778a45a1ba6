package qb

import (
	"context"
	"database/sql"

	"github.com/go-sql-driver/mysql"
	"go.uber.org/atomic"
)

// Executor prepares statements. *sql.DB, *sql.Tx and *sql.Conn all satisfy it.
type Executor interface {
	PrepareContext(ctx context.Context, query string) (*sql.Stmt, error)
}

var (
	_ Executor = (*sql.DB)(nil)
	_ Executor = (*sql.Tx)(nil)
	_ Executor = (*sql.Conn)(nil)
)

type ConnectionConfig struct {
	Driver           string
	ConnectionString string
	// DB and Dialect, when both set, are used instead of Driver and
	// ConnectionString.
	DB      *sql.DB
	Dialect *Dialect
	Config  Config
}

// Connection is the handle every builder is created from. It is safe for
// concurrent use; builders are not.
type Connection struct {
	Dialect *Dialect

	executor Executor
	db       *sql.DB
	config   Config
	logger   Logger
	lastSQL  *atomic.String
	lastErr  *atomic.Error
}

// Connect opens a database by driver name and wraps it.
func Connect(conf ConnectionConfig) (*Connection, error) {
	if conf.DB != nil && conf.Dialect != nil {
		return New(conf.DB, conf.Dialect, conf.Config)
	}
	dialect, err := getDialect(conf.Driver)
	if err != nil {
		return nil, err
	}
	dsn := conf.ConnectionString
	if dialect == Dialects.MySQL {
		dsn, err = mysqlDSN(dsn)
		if err != nil {
			return nil, err
		}
	}
	db, err := sql.Open(dialect.DriverName, dsn)
	if err != nil {
		return nil, err
	}
	return New(db, dialect, conf.Config)
}

// mysqlDSN makes MySQL report matched rows instead of changed rows, so an
// UPDATE that rewrites identical values does not look like a miss to Save.
func mysqlDSN(dsn string) (string, error) {
	cfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		return "", err
	}
	cfg.ClientFoundRows = true
	return cfg.FormatDSN(), nil
}

// New wraps an existing executor.
func New(executor Executor, dialect *Dialect, config Config) (*Connection, error) {
	config = config.withDefaults()
	logger := config.Logger
	if logger == nil {
		zl, err := newZapLogger(config.LogLevel)
		if err != nil {
			return nil, err
		}
		logger = zl
	}
	c := &Connection{
		Dialect:  dialect,
		executor: executor,
		config:   config,
		logger:   logger,
		lastSQL:  atomic.NewString(""),
		lastErr:  atomic.NewError(nil),
	}
	if db, ok := executor.(*sql.DB); ok {
		c.db = db
	}
	return c, nil
}

// Table starts a builder for table.
func (c *Connection) Table(table string) *Builder {
	return newBuilder(c, table)
}

func (c *Connection) Config() Config {
	return c.config
}

// DB returns the underlying *sql.DB, or nil when the connection wraps a
// transaction or a single conn.
func (c *Connection) DB() *sql.DB {
	return c.db
}

// LastSQL returns the last statement sent to the database.
func (c *Connection) LastSQL() string {
	return c.lastSQL.Load()
}

// LastError returns the error of the last terminal operation, including
// errors swallowed by ErrorModeWarning and ErrorModeSilent.
func (c *Connection) LastError() error {
	return c.lastErr.Load()
}

func (c *Connection) Close() error {
	if c.db == nil {
		return nil
	}
	return c.db.Close()
}

func (c *Connection) prepare(ctx context.Context, q string, args []interface{}) (*sql.Stmt, error) {
	c.logger.Debugf("%s %v", q, args)
	c.lastSQL.Store(q)
	return c.executor.PrepareContext(ctx, q)
}

func (c *Connection) exec(ctx context.Context, q string, args []interface{}) (sql.Result, error) {
	stmt, err := c.prepare(ctx, q, args)
	if err != nil {
		return nil, err
	}
	defer stmt.Close()
	return stmt.ExecContext(ctx, args...)
}

// query returns open rows; closing them is the caller's job.
func (c *Connection) query(ctx context.Context, q string, args []interface{}) (*sql.Rows, error) {
	stmt, err := c.prepare(ctx, q, args)
	if err != nil {
		return nil, err
	}
	defer stmt.Close()
	return stmt.QueryContext(ctx, args...)
}

// handle applies the error mode to a driver error.
func (c *Connection) handle(err error) error {
	c.lastErr.Store(err)
	if err == nil {
		return nil
	}
	switch c.config.ErrorMode {
	case ErrorModeWarning:
		c.logger.Warnf("%s: %v", c.lastSQL.Load(), err)
		return nil
	case ErrorModeSilent:
		return nil
	default:
		return err
	}
}
