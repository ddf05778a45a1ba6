package qb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestWithDefaults(t *testing.T) {
	assert.Equal(t, DefaultConfig(), Config{}.withDefaults())

	c := Config{PrimaryKey: "id2", JSONOptions: JSONRaw, ErrorMode: ErrorModeSilent}.withDefaults()
	assert.Equal(t, "id2", c.PrimaryKey)
	assert.Equal(t, JSONRaw, c.JSONOptions)
	assert.Equal(t, ErrorModeSilent, c.ErrorMode)
	assert.False(t, c.JSONOptions.Has(JSONHexTag))
}

func TestLogLevels(t *testing.T) {
	for _, level := range []LogLevel{LogLevelNone, LogLevelDev, LogLevelProd} {
		_, err := newZapLogger(level)
		assert.NoError(t, err)
	}
	_, err := newZapLogger(LogLevel(42))
	assert.Error(t, err)
}

func TestWarningModeLogs(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	conn, err := New(nil, Dialects.SQLite3, Config{
		ErrorMode: ErrorModeWarning,
		Logger:    NewZapLogger(zap.New(core)),
	})
	require.NoError(t, err)

	conn.lastSQL.Store("SELECT * FROM nope")
	assert.NoError(t, conn.handle(assert.AnError))
	assert.Equal(t, assert.AnError, conn.LastError())

	entries := logs.FilterLevelExact(zap.WarnLevel).All()
	require.Len(t, entries, 1)
	assert.Contains(t, entries[0].Message, "[WARN] SELECT * FROM nope")
}
