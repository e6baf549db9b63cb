// Package sqlite provides an embedded, pure-Go SQLite implementation of
// store.TaskStore. It backs local development (database.driver=sqlite) and the
// test suites that must run without a PostgreSQL server.
//
// Timestamps are stored as Unix microseconds in INTEGER columns and IDs as
// canonical UUID text, so ordering and equality behave the same as in the
// PostgreSQL store.
package sqlite
