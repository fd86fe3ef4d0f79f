package pool

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"net"

	"github.com/go-sql-driver/mysql"
	mssql "github.com/microsoft/go-mssqldb"
)

const (
	CodeQueueLimit = "POOL_ENQUEUE_LIMIT"
	CodeConnection = "CONN_ERROR"
)

var mysqlErrorNames = map[uint16]string{
	1040: "ER_CON_COUNT_ERROR",
	1044: "ER_DBACCESS_DENIED_ERROR",
	1045: "ER_ACCESS_DENIED_ERROR",
	1046: "ER_NO_DB_ERROR",
	1049: "ER_BAD_DB_ERROR",
	1051: "ER_BAD_TABLE_ERROR",
	1052: "ER_NON_UNIQ_ERROR",
	1054: "ER_BAD_FIELD_ERROR",
	1064: "ER_PARSE_ERROR",
	1109: "ER_UNKNOWN_TABLE",
	1142: "ER_TABLEACCESS_DENIED_ERROR",
	1146: "ER_NO_SUCH_TABLE",
	1205: "ER_LOCK_WAIT_TIMEOUT",
	1213: "ER_LOCK_DEADLOCK",
	1227: "ER_SPECIFIC_ACCESS_DENIED_ERROR",
	1290: "ER_OPTION_PREVENTS_STATEMENT",
	1317: "ER_QUERY_INTERRUPTED",
	3024: "ER_QUERY_TIMEOUT",
}

// failureFromError translates a driver error into a Failure carrying the
// driver's own message and a machine-readable code where one is known.
func failureFromError(err error) *Failure {
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		code, ok := mysqlErrorNames[myErr.Number]
		if !ok {
			code = fmt.Sprintf("ER_%d", myErr.Number)
		}
		return &Failure{Message: myErr.Message, Code: code}
	}

	var msErr mssql.Error
	if errors.As(err, &msErr) {
		return &Failure{Message: msErr.Message, Code: fmt.Sprintf("MSSQL_%d", msErr.Number)}
	}

	var netErr net.Error
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, mysql.ErrInvalidConn) || errors.As(err, &netErr) {
		return &Failure{Message: err.Error(), Code: CodeConnection}
	}

	return &Failure{Message: err.Error()}
}
