package database

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"sync"

	sqlitedriver "github.com/glebarez/go-sqlite"
)

var (
	sqliteFuncsOnce sync.Once
	sqliteFuncsErr  error
)

// RegisterSQLiteFunctions replaces SQLite's ASCII-only lower() with a
// Unicode-aware one so case-insensitive search behaves as on Postgres.
// It affects connections opened after the first call.
func RegisterSQLiteFunctions() error {
	sqliteFuncsOnce.Do(func() {
		sqliteFuncsErr = sqlitedriver.RegisterDeterministicScalarFunction("lower", 1, unicodeLower)
	})
	return sqliteFuncsErr
}

func unicodeLower(_ *sqlitedriver.FunctionContext, args []driver.Value) (driver.Value, error) {
	switch v := args[0].(type) {
	case nil:
		return nil, nil
	case string:
		return strings.ToLower(v), nil
	case []byte:
		return strings.ToLower(string(v)), nil
	default:
		return strings.ToLower(fmt.Sprint(v)), nil
	}
}
