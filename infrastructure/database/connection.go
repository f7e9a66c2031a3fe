// Package database abre as conexões somente leitura usadas pelas consultas de ranking
package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/yuuki-courage/aads/internal/config"
)

type Conn interface {
	Queryer
	Close() error
	Ping(context.Context) error
}

type Connection struct {
	*sql.DB
	Driver string
}

// NewConnection abre o banco de ranking. No sqlite o arquivo é aberto em modo somente leitura,
// no postgres o alvo é o DSN completo.
func NewConnection(
	ctx context.Context,
	driver string,
	target string,
) (*Connection, error) {
	var dsn string
	switch driver {
	case config.DriverSQLite:
		dsn = SQLiteReadOnlyDSN(target)
	case config.DriverPostgres:
		dsn = target
	default:
		return nil, fmt.Errorf("driver de banco não suportado: %q", driver)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, err
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Connection{DB: db, Driver: driver}, nil
}

func (c *Connection) Ping(ctx context.Context) error {
	return c.DB.PingContext(ctx)
}

// SQLiteReadOnlyDSN monta a URI file: com mode=ro
func SQLiteReadOnlyDSN(path string) string {
	if strings.HasPrefix(path, "file:") {
		if strings.Contains(path, "mode=") {
			return path
		}
		sep := "?"
		if strings.Contains(path, "?") {
			sep = "&"
		}
		return path + sep + "mode=ro"
	}
	return "file:" + path + "?mode=ro"
}
