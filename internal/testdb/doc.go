// Package testdb provides database helpers for tests.
//
// Unit tests use NewSQLite, which returns a migrated private in-memory SQLite
// database that is closed when the test ends. Integration tests against
// PostgreSQL use GetTestDBWithT together with WithTx: each test runs inside a
// transaction that is rolled back afterwards, so tests can run in parallel
// without cleaning up after themselves.
//
//	func TestSomething(t *testing.T) {
//	    db := testdb.GetTestDBWithT(t) // skips when no database is configured
//	    testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
//	        s := postgres.NewPostgresTaskStore(tx, nil)
//	        ...
//	    })
//	}
package testdb
