package warehouse

import (
	"log/slog"

	chparser "github.com/AfterShip/clickhouse-sql-parser/parser"
)

// CheckSyntax parses the statement with the ClickHouse dialect. Advisory
// only: a parse failure is logged and returned, but callers proceed and let
// preflight give the authoritative verdict.
func CheckSyntax(query string) error {
	p := chparser.NewParser(query)
	if _, err := p.ParseStmts(); err != nil {
		slog.Warn("SQL failed dialect parse", "error", err)
		return err
	}
	return nil
}
