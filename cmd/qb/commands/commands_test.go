package commands

import (
	"bytes"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupDatabase(t *testing.T) string {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "qb_test.db")
	db, err := sql.Open("sqlite3", dsn)
	require.NoError(t, err)
	defer db.Close()
	_, err = db.Exec(`CREATE TABLE todos(id INTEGER PRIMARY KEY, title VARCHAR(255), completed INTEGER)`)
	require.NoError(t, err)
	return dsn
}

func run(t *testing.T, dsn string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--driver", "sqlite3", "--dsn", dsn}, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestCommands(t *testing.T) {
	dsn := setupDatabase(t)

	out, _, err := run(t, dsn, "save", "todos", "title=buy milk", "completed=0")
	require.NoError(t, err)
	assert.Equal(t, "inserted id 1\n", out)

	out, _, err = run(t, dsn, "save", "todos", "title=walk dog", "completed=1")
	require.NoError(t, err)
	assert.Equal(t, "inserted id 2\n", out)

	out, _, err = run(t, dsn, "save", "todos", "completed=1", "--id", "1")
	require.NoError(t, err)
	assert.Equal(t, "updated 1 rows\n", out)

	out, _, err = run(t, dsn, "save", "todos", "completed=1", "--id", "9", "--update-only")
	require.NoError(t, err)
	assert.Equal(t, "updated 0 rows\n", out)

	out, _, err = run(t, dsn, "count", "todos", "--where", "completed=1")
	require.NoError(t, err)
	assert.Equal(t, "2\n", out)

	out, _, err = run(t, dsn, "get", "todos", "1")
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":1,"title":"buy milk","completed":1}`, out)

	_, _, err = run(t, dsn, "get", "todos", "9")
	assert.EqualError(t, err, "todos: no row with id = 9")

	out, stderr, err := run(t, dsn, "--echo", "list", "todos", "--format", "json", "--order", "-id", "--limit", "1")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":2,"title":"walk dog","completed":1}]`, out)
	assert.Equal(t, "SELECT * FROM todos ORDER BY id DESC LIMIT 1\n", stderr)

	out, _, err = run(t, dsn, "list", "todos", "--where", "title=walk dog")
	require.NoError(t, err)
	assert.Contains(t, out, "walk dog")
	assert.NotContains(t, out, "buy milk")

	_, _, err = run(t, dsn, "delete", "todos")
	assert.EqualError(t, err, "refusing to delete every row without --all")

	out, _, err = run(t, dsn, "delete", "todos", "--id", "2")
	require.NoError(t, err)
	assert.Equal(t, "deleted 1 rows\n", out)

	out, _, err = run(t, dsn, "delete", "todos", "--all")
	require.NoError(t, err)
	assert.Equal(t, "deleted 1 rows\n", out)

	out, _, err = run(t, dsn, "count", "todos")
	require.NoError(t, err)
	assert.Equal(t, "0\n", out)
}

func TestArgumentErrors(t *testing.T) {
	dsn := setupDatabase(t)

	_, _, err := run(t, dsn, "save", "todos", "title")
	assert.EqualError(t, err, `expected column=value, got "title"`)

	_, _, err = run(t, dsn, "save", "todos", "title=x", "--update-only")
	assert.EqualError(t, err, "--update-only needs --id")

	_, _, err = run(t, dsn, "list", "todos", "--format", "xml")
	assert.EqualError(t, err, `unknown format "xml"`)

	_, _, err = run(t, dsn, "--error-mode", "loud", "count", "todos")
	assert.EqualError(t, err, `unknown error mode "loud"`)
}
