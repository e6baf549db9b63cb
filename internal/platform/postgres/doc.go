// Package postgres provides the PostgreSQL implementation of store.TaskStore.
// It talks to the database through database/sql with the pgx driver, maps
// PostgreSQL error codes to store errors, and ships its schema as embedded
// goose migrations.
package postgres
