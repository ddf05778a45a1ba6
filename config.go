package qb

// ErrorMode decides what a Connection does with driver errors.
type ErrorMode int

const (
	// ErrorModeException returns every driver error to the caller unmodified.
	ErrorModeException ErrorMode = iota
	// ErrorModeWarning logs driver errors at warn level and swallows them.
	ErrorModeWarning
	// ErrorModeSilent swallows driver errors. They stay readable through
	// Connection.LastError.
	ErrorModeSilent
)

func (m ErrorMode) String() string {
	switch m {
	case ErrorModeException:
		return "exception"
	case ErrorModeWarning:
		return "warning"
	case ErrorModeSilent:
		return "silent"
	default:
		return "unknown"
	}
}

// JSONOptions selects which characters ToJSON and OneJSON write as \uXXXX
// escapes inside string values.
type JSONOptions uint8

const (
	JSONHexTag JSONOptions = 1 << iota
	JSONHexAmp
	JSONHexApos
	JSONHexQuot
	// JSONRaw disables every escape. A zero JSONOptions means DefaultJSONOptions.
	JSONRaw

	DefaultJSONOptions = JSONHexTag | JSONHexAmp | JSONHexApos | JSONHexQuot
)

func (o JSONOptions) Has(flag JSONOptions) bool {
	return o&flag == flag
}

const DefaultPrimaryKey = "id"

// Config is shared by every builder created from a Connection. It is copied
// on construction and never mutated afterwards.
type Config struct {
	// PrimaryKey is the column used by WhereID and ByID.
	PrimaryKey string
	ErrorMode  ErrorMode
	// JSONOptions defaults to DefaultJSONOptions when zero.
	JSONOptions JSONOptions
	LogLevel    LogLevel
	// Logger overrides LogLevel when set.
	Logger Logger
}

// DefaultConfig returns the configuration used when none is given.
func DefaultConfig() Config {
	return Config{
		PrimaryKey:  DefaultPrimaryKey,
		ErrorMode:   ErrorModeException,
		JSONOptions: DefaultJSONOptions,
		LogLevel:    LogLevelNone,
	}
}

func (c Config) withDefaults() Config {
	if c.PrimaryKey == "" {
		c.PrimaryKey = DefaultPrimaryKey
	}
	if c.JSONOptions == 0 {
		c.JSONOptions = DefaultJSONOptions
	}
	return c
}
