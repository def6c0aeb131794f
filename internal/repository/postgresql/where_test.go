package postgresql

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildWhere_Empty(t *testing.T) {
	clause, args := buildWhere(nil, 1)
	assert.Equal(t, "TRUE", clause)
	assert.Empty(t, args)
}

func TestBuildWhere_SinglePredicate(t *testing.T) {
	clause, args := buildWhere([]cond{
		{expr: "a.status = $%d", arg: "present"},
	}, 1)

	assert.Equal(t, "a.status = $1", clause)
	assert.Equal(t, []interface{}{"present"}, args)
}

func TestBuildWhere_ConjunctiveNumbering(t *testing.T) {
	clause, args := buildWhere([]cond{
		{expr: "a.employee_id = $%d", arg: "u1"},
		{expr: "a.date >= $%d", arg: "2025-11-01"},
		{expr: "a.date <= $%d", arg: "2025-11-30"},
	}, 2)

	assert.Equal(t, "a.employee_id = $2 AND a.date >= $3 AND a.date <= $4", clause)
	assert.Equal(t, []interface{}{"u1", "2025-11-01", "2025-11-30"}, args)
}
