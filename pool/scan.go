package pool

import (
	"database/sql"
	"strconv"
	"strings"

	"sqlgate/models"
)

func scanRows(rows *sql.Rows) ([]models.Row, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	types := make([]string, len(columns))
	if colTypes, err := rows.ColumnTypes(); err == nil {
		for i, ct := range colTypes {
			types[i] = ct.DatabaseTypeName()
		}
	}

	result := make([]models.Row, 0)
	for rows.Next() {
		values := make([]interface{}, len(columns))
		valuePtrs := make([]interface{}, len(columns))
		for i := range values {
			valuePtrs[i] = &values[i]
		}

		if err := rows.Scan(valuePtrs...); err != nil {
			return nil, err
		}

		for i, val := range values {
			values[i] = convertValue(val, types[i])
		}

		result = append(result, models.NewRow(columns, values))
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

// convertValue turns raw driver bytes into JSON-friendly values. Integers and
// floats become numbers; DECIMAL and everything else stays text.
func convertValue(val interface{}, dbType string) interface{} {
	raw, ok := val.([]byte)
	if !ok {
		return val
	}

	s := string(raw)
	switch strings.TrimPrefix(strings.ToUpper(dbType), "UNSIGNED ") {
	case "TINYINT", "SMALLINT", "MEDIUMINT", "INT", "INTEGER", "BIGINT", "YEAR":
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			return n
		}
		if n, err := strconv.ParseUint(s, 10, 64); err == nil {
			return n
		}
	case "FLOAT", "DOUBLE", "REAL":
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f
		}
	}
	return s
}
