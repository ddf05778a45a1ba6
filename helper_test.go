package qb

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPostgresPlaceholder(t *testing.T) {
	t.Run("for 5 it should have 5", func(t *testing.T) {
		phs := postgresPlaceholder(5)
		assert.EqualValues(t, []string{"$1", "$2", "$3", "$4", "$5"}, phs)
	})
}

func TestQuestionMarks(t *testing.T) {
	assert.EqualValues(t, []string{"?", "?", "?"}, questionMarks(3))
	assert.Empty(t, questionMarks(0))
}

func TestPop(t *testing.T) {
	phs := []string{"$1", "$2"}
	assert.Equal(t, "$1", pop(&phs))
	assert.Equal(t, []string{"$2"}, phs)
}

func TestGetDialect(t *testing.T) {
	for driver, want := range map[string]*Dialect{
		"mysql":      Dialects.MySQL,
		"sqlite":     Dialects.SQLite3,
		"sqlite3":    Dialects.SQLite3,
		"postgres":   Dialects.PostgreSQL,
		"postgresql": Dialects.PostgreSQL,
	} {
		d, err := getDialect(driver)
		assert.NoError(t, err)
		assert.Same(t, want, d)
	}

	_, err := getDialect("oracle")
	assert.ErrorIs(t, err, ErrUnknownDriver)
}

func TestMySQLDSN(t *testing.T) {
	dsn, err := mysqlDSN("root:secret@tcp(localhost:3306)/qb_test")
	assert.NoError(t, err)
	assert.Contains(t, dsn, "clientFoundRows=true")
	assert.Contains(t, dsn, "/qb_test")
}
