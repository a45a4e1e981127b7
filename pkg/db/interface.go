package db

import "database/sql"

// DBProvider is an interface for database clients that provide access
// to a sql.DB handle. The loader accepts either a plain Postgres client
// or a Supabase-backed one; both expose the same relational surface.
type DBProvider interface {
	DB() *sql.DB
}
