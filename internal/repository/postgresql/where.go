package postgresql

import (
	"fmt"
	"strings"
)

// cond is one optional filter predicate: an SQL fragment with a single %d
// placeholder position and its bound argument.
type cond struct {
	expr string
	arg  interface{}
}

// buildWhere joins predicates with AND, numbering placeholders from start.
// An empty predicate list yields "TRUE" so callers can always interpolate
// the result after WHERE.
func buildWhere(conds []cond, start int) (string, []interface{}) {
	if len(conds) == 0 {
		return "TRUE", nil
	}

	parts := make([]string, 0, len(conds))
	args := make([]interface{}, 0, len(conds))
	for i, c := range conds {
		parts = append(parts, fmt.Sprintf(c.expr, start+i))
		args = append(args, c.arg)
	}
	return strings.Join(parts, " AND "), args
}
