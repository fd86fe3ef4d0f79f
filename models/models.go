package models

import (
	"bytes"
	"encoding/json"
)

type QueryRequest struct {
	Query string `json:"query" example:"SELECT * FROM actor LIMIT 10"`
}

type TranslateRequest struct {
	Query string `json:"query" example:"show me all customers from Spain"`
}

// Row is one result row. Column order is preserved when encoding to JSON.
type Row struct {
	columns []string
	values  []interface{}
}

// NewRow builds a row from parallel column/value slices. A repeated column
// name overwrites the earlier value in place.
func NewRow(columns []string, values []interface{}) Row {
	r := Row{
		columns: make([]string, 0, len(columns)),
		values:  make([]interface{}, 0, len(values)),
	}
	for i, col := range columns {
		r.Set(col, values[i])
	}
	return r
}

func (r *Row) Set(column string, value interface{}) {
	for i, c := range r.columns {
		if c == column {
			r.values[i] = value
			return
		}
	}
	r.columns = append(r.columns, column)
	r.values = append(r.values, value)
}

func (r Row) Get(column string) (interface{}, bool) {
	for i, c := range r.columns {
		if c == column {
			return r.values[i], true
		}
	}
	return nil, false
}

func (r Row) Columns() []string { return r.columns }

func (r Row) Len() int { return len(r.columns) }

// First returns the value of the leftmost column.
func (r Row) First() (interface{}, bool) {
	if len(r.values) == 0 {
		return nil, false
	}
	return r.values[0], true
}

func (r Row) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, col := range r.columns {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(col)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(r.values[i])
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// ModelInfo identifies the model that produced a translation.
type ModelInfo struct {
	Name     string `json:"name,omitempty"`
	Provider string `json:"provider,omitempty"`
}

type TranslationValidation struct {
	Warnings []string `json:"warnings"`
}

// Translation is the normalized output of the translation service. Nil
// pointers mean the upstream did not report the field.
type Translation struct {
	SQLText        string                 `json:"sql"`
	NaturalQuery   string                 `json:"naturalQuery,omitempty"`
	ModelInfo      *ModelInfo             `json:"modelInfo,omitempty"`
	Explanation    *string                `json:"explanation,omitempty"`
	Considerations *string                `json:"considerations,omitempty"`
	Alternatives   *string                `json:"alternatives,omitempty"`
	Validation     *TranslationValidation `json:"validation,omitempty"`
}

// JournalEntry is one recorded translation.
type JournalEntry struct {
	NaturalQuery string     `json:"naturalQuery"`
	SQLText      string     `json:"sql"`
	ModelInfo    *ModelInfo `json:"modelInfo,omitempty"`
	Warnings     []string   `json:"warnings,omitempty"`
	Timestamp    string     `json:"timestamp"`
}
