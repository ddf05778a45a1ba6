package commands

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/golobby/qb"
)

func newSaveCommand(root *rootOptions) *cobra.Command {
	var (
		id         string
		updateOnly bool
	)
	cmd := &cobra.Command{
		Use:   "save TABLE COLUMN=VALUE...",
		Short: "Insert a row, or update the row given by --id",
		Long: `Insert a row, or update the row given by --id.

With --id the row is updated, and inserted when it does not exist yet.
--update-only skips that insert.`,
		Example: `  qb save todos title="buy milk" completed=0
  qb save todos completed=1 --id 3`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := parseAssignments(args[1:])
			if err != nil {
				return err
			}
			if updateOnly && id == "" {
				return errors.New("--update-only needs --id")
			}
			conn, done, err := root.connect(cmd)
			if err != nil {
				return err
			}
			defer done()

			b := conn.Table(args[0])
			if id != "" {
				b.WhereID(id)
			}
			var res qb.Result
			if updateOnly {
				res, err = b.Update(cmd.Context(), values)
			} else {
				res, err = b.Save(cmd.Context(), values)
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch {
			case res.Inserted && conn.Dialect.SupportsLastInsertID:
				successColor.Fprintf(out, "inserted %s %d\n", conn.Config().PrimaryKey, res.LastInsertID)
			case res.Inserted:
				successColor.Fprintln(out, "inserted")
			default:
				successColor.Fprintf(out, "updated %d rows\n", res.RowsAffected)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&id, "id", "", "primary key of the row to update")
	cmd.Flags().BoolVar(&updateOnly, "update-only", false, "do not insert when no row matches --id")
	return cmd
}

func newDeleteCommand(root *rootOptions) *cobra.Command {
	var (
		id    string
		where []string
		all   bool
	)
	cmd := &cobra.Command{
		Use:   "delete TABLE",
		Short: "Delete rows by --id, by --where or --all of them",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if id == "" && len(where) == 0 && !all {
				return errors.New("refusing to delete every row without --all")
			}
			conn, done, err := root.connect(cmd)
			if err != nil {
				return err
			}
			defer done()

			b := conn.Table(args[0])
			if err := applyWhere(b, where); err != nil {
				return err
			}
			var filters []qb.Filter
			if id != "" {
				filters = append(filters, qb.ByID(id))
			}
			n, err := b.Delete(cmd.Context(), filters...)
			if err != nil {
				return err
			}
			successColor.Fprintf(cmd.OutOrStdout(), "deleted %d rows\n", n)
			return nil
		},
	}
	cmd.Flags().StringVar(&id, "id", "", "primary key of the row to delete")
	cmd.Flags().StringArrayVar(&where, "where", nil, "column=value condition, repeatable")
	cmd.Flags().BoolVar(&all, "all", false, "delete every row of the table")
	return cmd
}
