package repository

import (
	"database/sql"

	_ "github.com/lib/pq"
)

func sqlOpen(dsn string) (*sql.DB, error) {
	return sql.Open("postgres", dsn)
}
