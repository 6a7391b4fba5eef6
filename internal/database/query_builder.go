package database

import (
	"fmt"
	"strings"

	"github.com/akyairhashvil/pomotask/internal/models"
)

type TaskQuery struct {
	columns string
	filters []string
	args    []interface{}
	orderBy string
}

func NewTaskQuery() *TaskQuery {
	return &TaskQuery{columns: taskColumns}
}

func (q *TaskQuery) Where(filter string, args ...interface{}) *TaskQuery {
	q.filters = append(q.filters, filter)
	q.args = append(q.args, args...)
	return q
}

func (q *TaskQuery) WherePending() *TaskQuery {
	return q.Where("done = 0")
}

// WhereFilter applies a list view filter. FilterAll adds nothing.
func (q *TaskQuery) WhereFilter(filter models.TaskFilter) *TaskQuery {
	if filter == models.FilterPending {
		return q.WherePending()
	}
	return q
}

func (q *TaskQuery) OrderBy(orderBy string) *TaskQuery {
	q.orderBy = orderBy
	return q
}

func (q *TaskQuery) Build() (string, []interface{}) {
	query := fmt.Sprintf("SELECT %s FROM tasks", q.columns)
	if len(q.filters) > 0 {
		query += " WHERE " + strings.Join(q.filters, " AND ")
	}
	if q.orderBy != "" {
		query += " ORDER BY " + q.orderBy
	}
	return query, q.args
}
