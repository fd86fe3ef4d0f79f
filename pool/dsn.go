package pool

import (
	"fmt"
	"net"
	"strconv"

	"github.com/go-sql-driver/mysql"

	"sqlgate/config"
)

func buildDSN(cfg config.DatabaseConfig) (driverName string, dsn string, err error) {
	switch cfg.Driver {
	case config.DriverMySQL, "":
		return "mysql", mysqlDSN(cfg), nil
	case config.DriverSQLServer:
		return "sqlserver", sqlServerDSN(cfg), nil
	default:
		return "", "", fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// mysqlDSN leaves multiStatements off, so the server refuses chained
// statements even when the leading keyword passed classification.
func mysqlDSN(cfg config.DatabaseConfig) string {
	mc := mysql.NewConfig()
	mc.User = cfg.User
	mc.Passwd = cfg.Password
	mc.Net = "tcp"
	mc.Addr = net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port))
	mc.DBName = cfg.Name
	mc.ParseTime = true
	mc.MultiStatements = false
	return mc.FormatDSN()
}

func sqlServerDSN(cfg config.DatabaseConfig) string {
	connStr := fmt.Sprintf("server=%s;port=%d;database=%s", cfg.Host, cfg.Port, cfg.Name)

	if cfg.User != "" {
		connStr += fmt.Sprintf(";user id=%s;password=%s", cfg.User, cfg.Password)
	} else {
		connStr += ";trusted_connection=true"
	}

	if cfg.Encrypt {
		// Self-signed / internal certificates are accepted.
		connStr += ";encrypt=true;TrustServerCertificate=true"
	} else {
		connStr += ";encrypt=false"
	}

	return connStr
}
