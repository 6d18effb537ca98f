package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/lib/pq"

	"github.com/poplandstore/popland-backend/internal/config"
)

// A tiny migration helper that applies migrations/001_initial_schema.sql,
// including the tag seed, to the configured Postgres database.
//
// Usage:
//
//	DATABASE_URL=postgres://... go run ./cmd/migrate
func main() {
	cfg := config.Load()
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	ddlPath := filepath.Join("migrations", "001_initial_schema.sql")
	stmts, err := readStatements(ddlPath)
	if err != nil {
		log.Fatalf("read DDL: %v", err)
	}
	if len(stmts) == 0 {
		log.Fatalf("no statements found in %s", ddlPath)
	}

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()

	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			log.Fatalf("exec %q: %v", firstLine(stmt), err)
		}
	}

	fmt.Printf("Applied %d statements from %s\n", len(stmts), ddlPath)
}

func readStatements(path string) ([]string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	sql := strings.ReplaceAll(string(b), "\r\n", "\n")

	parts := strings.Split(sql, ";")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		stmt := strings.TrimSpace(p)
		if stmt == "" {
			continue
		}
		out = append(out, stmt)
	}
	return out, nil
}

func firstLine(stmt string) string {
	if i := strings.IndexByte(stmt, '\n'); i >= 0 {
		return stmt[:i]
	}
	return stmt
}
