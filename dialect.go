package qb

import (
	"fmt"

	"github.com/pkg/errors"

	// Drivers
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

// Dialect describes the only thing that differs between the supported
// databases: how positional placeholders are spelled.
type Dialect struct {
	DriverName                string
	PlaceholderChar           string
	IncludeIndexInPlaceholder bool
	SupportsLastInsertID      bool
	PlaceHolderGenerator      func(n int) []string
}

var Dialects = &struct {
	MySQL      *Dialect
	PostgreSQL *Dialect
	SQLite3    *Dialect
}{
	MySQL: &Dialect{
		DriverName:                "mysql",
		PlaceholderChar:           "?",
		IncludeIndexInPlaceholder: false,
		SupportsLastInsertID:      true,
		PlaceHolderGenerator:      questionMarks,
	},
	PostgreSQL: &Dialect{
		DriverName:                "postgres",
		PlaceholderChar:           "$",
		IncludeIndexInPlaceholder: true,
		SupportsLastInsertID:      false,
		PlaceHolderGenerator:      postgresPlaceholder,
	},
	SQLite3: &Dialect{
		DriverName:                "sqlite3",
		PlaceholderChar:           "?",
		IncludeIndexInPlaceholder: false,
		SupportsLastInsertID:      true,
		PlaceHolderGenerator:      questionMarks,
	},
}

func getDialect(driver string) (*Dialect, error) {
	switch driver {
	case "mysql":
		return Dialects.MySQL, nil
	case "sqlite", "sqlite3":
		return Dialects.SQLite3, nil
	case "postgres", "postgresql":
		return Dialects.PostgreSQL, nil
	default:
		return nil, errors.Wrapf(ErrUnknownDriver, "driver %q", driver)
	}
}

func postgresPlaceholder(n int) []string {
	output := []string{}
	for i := 1; i < n+1; i++ {
		output = append(output, fmt.Sprintf("$%d", i))
	}
	return output
}

func questionMarks(n int) []string {
	output := []string{}
	for i := 0; i < n; i++ {
		output = append(output, "?")
	}

	return output
}

// pop removes and returns the first placeholder of phs.
func pop(phs *[]string) string {
	top := (*phs)[0]
	*phs = (*phs)[1:]
	return top
}
