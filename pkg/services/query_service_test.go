package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestReplaceOrderByRewritesExisting(t *testing.T) {
	got := ReplaceOrderBy("SELECT * FROM t ORDER BY a LIMIT 10", "b", "desc")
	assert.Equal(t, "SELECT * FROM t ORDER BY b DESC LIMIT 10", got)
}

func TestReplaceOrderByInsertsBeforeLimit(t *testing.T) {
	got := ReplaceOrderBy("SELECT * FROM t LIMIT 10", "b", "desc")
	assert.Equal(t, "SELECT * FROM t ORDER BY b DESC LIMIT 10", got)
}

func TestReplaceOrderByAppendsWhenNoTrailingClause(t *testing.T) {
	got := ReplaceOrderBy("SELECT * FROM t", "b", "asc")
	assert.Equal(t, "SELECT * FROM t ORDER BY b ASC", got)
}

func TestReplaceOrderByIdempotent(t *testing.T) {
	cases := []string{
		"SELECT * FROM t ORDER BY a LIMIT 10",
		"SELECT * FROM t LIMIT 10 OFFSET 5",
		"SELECT * FROM t",
		"SELECT a, count(*) FROM t GROUP BY a ORDER BY count(*) DESC",
	}
	for _, sql := range cases {
		once := ReplaceOrderBy(sql, "b", "desc")
		twice := ReplaceOrderBy(once, "b", "desc")
		assert.Equal(t, once, twice, "input %q", sql)
	}
}

func TestReplaceOrderByLeavesSubqueryAlone(t *testing.T) {
	sql := "SELECT * FROM (SELECT a FROM t ORDER BY a) AS x"
	got := ReplaceOrderBy(sql, "b", "asc")
	assert.Equal(t, sql+" ORDER BY b ASC", got)
}

func TestReplaceOrderByDefaultsToAscending(t *testing.T) {
	got := ReplaceOrderBy("SELECT * FROM t", "b", "sideways")
	assert.Equal(t, "SELECT * FROM t ORDER BY b ASC", got)
}

func TestReplaceOrderByEmptyColumnIsNoop(t *testing.T) {
	sql := "SELECT * FROM t ORDER BY a"
	assert.Equal(t, sql, ReplaceOrderBy(sql, "", "desc"))
}

func TestComputeETagStable(t *testing.T) {
	id := uuid.New()
	rows := []map[string]any{
		{"a": 1, "b": "x"},
		{"a": 2, "b": "y"},
	}

	first := computeETag(id, 10, 0, 2, rows)
	second := computeETag(id, 10, 0, 2, rows)
	assert.Equal(t, first, second)
	assert.Regexp(t, `^W/"[0-9a-f]{64}"$`, first)
}

func TestComputeETagVariesWithPage(t *testing.T) {
	id := uuid.New()
	rows := []map[string]any{{"a": 1}}

	base := computeETag(id, 10, 0, 1, rows)
	assert.NotEqual(t, base, computeETag(id, 10, 10, 1, rows))
	assert.NotEqual(t, base, computeETag(id, 10, 0, 2, rows))
	assert.NotEqual(t, base, computeETag(id, 10, 0, 1, []map[string]any{{"a": 2}}))
	assert.NotEqual(t, base, computeETag(uuid.New(), 10, 0, 1, rows))
}
