package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want StatementClass
	}{
		{name: "select padded", raw: "  select * from actor  ", want: Readonly},
		{name: "show tables", raw: "SHOW TABLES", want: Readonly},
		{name: "describe", raw: "Describe actor", want: Readonly},
		{name: "explain", raw: "EXPLAIN SELECT * FROM film", want: Readonly},
		{name: "select with paren", raw: "SELECT(1)", want: Readonly},
		{name: "newline separated", raw: "\n\tSELECT\n1", want: Readonly},
		{name: "drop", raw: "DROP TABLE actor", want: Rejected},
		{name: "delete", raw: "delete from actor", want: Rejected},
		{name: "insert", raw: "INSERT INTO actor VALUES (1)", want: Rejected},
		{name: "update", raw: "UPDATE actor SET first_name = 'x'", want: Rejected},
		{name: "with cte", raw: "WITH x AS (SELECT 1) SELECT * FROM x", want: Rejected},
		{name: "prefix only", raw: "SELECTED things", want: Rejected},
		{name: "comment first", raw: "/* hi */ SELECT 1", want: Rejected},
		{name: "empty", raw: "", want: Rejected},
		{name: "whitespace", raw: "   \t ", want: Rejected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.raw))
		})
	}
}

// Only the leading keyword is inspected; chained statements are not caught here.
func TestClassify_DoesNotInspectBody(t *testing.T) {
	assert.Equal(t, Readonly, Classify("SELECT 1; DROP TABLE actor"))
}

func TestLeadingKeyword(t *testing.T) {
	assert.Equal(t, "select", LeadingKeyword("  select * from actor"))
	assert.Equal(t, "SHOW", LeadingKeyword("SHOW;"))
	assert.Equal(t, "EXPLAIN", LeadingKeyword("EXPLAIN"))
	assert.Equal(t, "", LeadingKeyword("   "))
}

func TestStatementClass_String(t *testing.T) {
	assert.Equal(t, "readonly", Readonly.String())
	assert.Equal(t, "rejected", Rejected.String())
}
