package commands

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/golobby/qb"
)

// parseAssignments turns col=val arguments into Values.
func parseAssignments(args []string) (qb.Values, error) {
	values := qb.Values{}
	for _, arg := range args {
		column, value, ok := strings.Cut(arg, "=")
		if !ok || column == "" {
			return nil, errors.Errorf("expected column=value, got %q", arg)
		}
		values[column] = value
	}
	return values, nil
}

func applyWhere(b *qb.Builder, where []string) error {
	for _, arg := range where {
		column, value, ok := strings.Cut(arg, "=")
		if !ok || column == "" {
			return errors.Errorf("expected column=value, got %q", arg)
		}
		b.Where(column, value)
	}
	return nil
}

// applyOrder reads "col" as ascending and "-col" as descending.
func applyOrder(b *qb.Builder, orders []string) {
	for _, o := range orders {
		if column, ok := strings.CutPrefix(o, "-"); ok {
			b.Desc(column)
		} else {
			b.Asc(column)
		}
	}
}
