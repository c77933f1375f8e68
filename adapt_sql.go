package usererror

import (
	"database/sql"
	"database/sql/driver"
	"errors"

	"github.com/go-sql-driver/mysql"
)

// SQLSummary is the summary of Messages built by [FromSQLError].
const SQLSummary = "The database has encountered an issue"

var sqlTable = []curated{
	{sql.ErrNoRows, "The query returned no rows", ""},
	{sql.ErrConnDone, "The database connection was already closed", ""},
	{sql.ErrTxDone, "The transaction was already committed or rolled back", ""},
	{driver.ErrBadConn, "The database connection is no longer usable", "Check that the database server is running and reachable."},
	{mysql.ErrInvalidConn, "The database connection is no longer usable", "Check that the database server is running and reachable."},
	{mysql.ErrMalformPkt, "The server sent a malformed packet", ""},
	{mysql.ErrNativePassword, "The server requires native password authentication", "Add allowNativePasswords=true to the DSN."},
	{mysql.ErrOldPassword, "The server requires an old-style password", "Add allowOldPasswords=true to the DSN, or upgrade the account's password."},
}

type mysqlHint struct {
	reason string
	help   string
}

// mysqlHints curates common server error numbers.
var mysqlHints = map[uint16]mysqlHint{
	1045: {"Access was denied for the database user", "Check the user name and password in the connection string."},
	1049: {"The database does not exist", "Create it first, or check the database name in the connection string."},
	1062: {"A row with the same unique key already exists", ""},
	1064: {"The SQL statement has a syntax error", ""},
	1146: {"The table does not exist", "Run the migrations, or check the table name."},
	1205: {"Timed out waiting for a lock", "Try again once concurrent transactions finish."},
	1213: {"The transaction was rolled back to resolve a deadlock", "Retry the transaction."},
}

// FromSQLError converts a database/sql or MySQL driver error into a Message.
func FromSQLError(err error) *Message {
	if err == nil {
		return New("")
	}
	m := New(SQLSummary)
	m.cause = err

	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		m.AddReason("Underlying MySQL call failed")
		if hint, ok := mysqlHints[myErr.Number]; ok {
			m.AddReason(hint.reason)
			m.SetHelp(hint.help)
		}
		m.AddReasonf("Error %d (%s): %s", myErr.Number, sqlState(myErr), myErr.Message)
		return m
	}
	if c, ok := lookup(sqlTable, err); ok {
		m.AddReason(c.reason)
		m.SetHelp(c.help)
		return m
	}
	return m.AddReason(err.Error())
}

func isSQLError(err error) bool {
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return true
	}
	_, ok := lookup(sqlTable, err)
	return ok
}

func sqlState(e *mysql.MySQLError) string {
	if e.SQLState == [5]byte{} {
		return "HY000"
	}
	return string(e.SQLState[:])
}
