package db

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
)

// openDB opens a database connection without pinging.
func openDB(dsn string) (*sql.DB, error) {
	return sql.Open("postgres", dsn)
}

// Open returns an open and verified database connection.
func Open(dsn string) (*sql.DB, error) {
	conn, err := openDB(dsn)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}

	return conn, nil
}
