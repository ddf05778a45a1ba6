// Package commands implements the qb CLI commands.
package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/golobby/qb"
	"github.com/golobby/qb/internal/config"
)

// Version information (set at build time).
var Version = "dev"

var (
	sqlColor     = color.New(color.FgCyan)
	successColor = color.New(color.FgGreen, color.Bold)
)

type rootOptions struct {
	configFile string
	echo       bool
}

// NewRootCommand creates the qb command with every subcommand attached.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "qb",
		Short:         "Query and edit database tables from the command line",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&opts.configFile, "config", "", "config file (default is ./qb.yaml or ~/.config/qb/qb.yaml)")
	pf.String("driver", "sqlite3", "database driver: sqlite3, mysql or postgres")
	pf.String("dsn", "", "data source name")
	pf.String("primary-key", qb.DefaultPrimaryKey, "primary key column used by --id")
	pf.String("error-mode", qb.ErrorModeException.String(), "exception, warning or silent")
	pf.String("log-level", "none", "none, dev or prod")
	pf.BoolVar(&opts.echo, "echo", false, "print the executed SQL to stderr")

	cmd.AddCommand(newListCommand(opts))
	cmd.AddCommand(newGetCommand(opts))
	cmd.AddCommand(newCountCommand(opts))
	cmd.AddCommand(newSaveCommand(opts))
	cmd.AddCommand(newDeleteCommand(opts))
	return cmd
}

// connect opens the configured database. The returned func echoes the last
// statement when --echo is set and closes the connection.
func (o *rootOptions) connect(cmd *cobra.Command) (*qb.Connection, func(), error) {
	cfg, err := config.Load(o.configFile, cmd.Flags())
	if err != nil {
		return nil, nil, err
	}
	cc, err := cfg.Connection()
	if err != nil {
		return nil, nil, err
	}
	conn, err := qb.Connect(cc)
	if err != nil {
		return nil, nil, err
	}
	done := func() {
		if o.echo && conn.LastSQL() != "" {
			sqlColor.Fprintln(cmd.ErrOrStderr(), conn.LastSQL())
		}
		conn.Close()
	}
	return conn, done, nil
}
