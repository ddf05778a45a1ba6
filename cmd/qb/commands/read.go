package commands

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/golobby/qb"
)

type listOptions struct {
	where  []string
	order  []string
	limit  int
	offset int
	format string
}

func newListCommand(root *rootOptions) *cobra.Command {
	opts := &listOptions{}
	cmd := &cobra.Command{
		Use:   "list TABLE",
		Short: "Print the rows of a table",
		Example: `  qb list todos --where completed=0 --order -id --limit 10
  qb list todos --format json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.format != "table" && opts.format != "json" {
				return errors.Errorf("unknown format %q", opts.format)
			}
			conn, done, err := root.connect(cmd)
			if err != nil {
				return err
			}
			defer done()

			b := conn.Table(args[0]).Limit(opts.limit).Offset(opts.offset)
			if err := applyWhere(b, opts.where); err != nil {
				return err
			}
			applyOrder(b, opts.order)

			var out string
			if opts.format == "json" {
				out, err = b.ToJSON(cmd.Context())
			} else {
				out, err = b.ToTable(cmd.Context())
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&opts.where, "where", nil, "column=value condition, repeatable")
	cmd.Flags().StringArrayVar(&opts.order, "order", nil, "order column, prefix with - for descending, repeatable")
	cmd.Flags().IntVar(&opts.limit, "limit", -1, "maximum number of rows")
	cmd.Flags().IntVar(&opts.offset, "offset", -1, "rows to skip")
	cmd.Flags().StringVar(&opts.format, "format", "table", "output format: table or json")
	return cmd
}

func newGetCommand(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "get TABLE ID",
		Short: "Print one row by primary key as JSON",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, done, err := root.connect(cmd)
			if err != nil {
				return err
			}
			defer done()

			row, err := conn.Table(args[0]).OneJSON(cmd.Context(), qb.ByID(args[1]))
			if err != nil {
				return err
			}
			if row == "null" {
				return errors.Errorf("%s: no row with %s = %s", args[0], conn.Config().PrimaryKey, args[1])
			}
			fmt.Fprintln(cmd.OutOrStdout(), row)
			return nil
		},
	}
}

func newCountCommand(root *rootOptions) *cobra.Command {
	var where []string
	cmd := &cobra.Command{
		Use:   "count TABLE",
		Short: "Print the number of matching rows",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, done, err := root.connect(cmd)
			if err != nil {
				return err
			}
			defer done()

			b := conn.Table(args[0])
			if err := applyWhere(b, where); err != nil {
				return err
			}
			n, err := b.Count(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), n)
			return nil
		},
	}
	cmd.Flags().StringArrayVar(&where, "where", nil, "column=value condition, repeatable")
	return cmd
}
