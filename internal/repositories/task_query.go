package repositories

import (
	"fmt"
	"strings"

	"taskboard/internal/models"
)

const taskColumns = `
	t.id, t.title, t.description, t.status, t.priority, t.due_date, t.tags, t.is_overdue,
	t.created_at, t.updated_at,
	a.id, a.name, a.email,
	c.id, c.name, c.email`

const taskFrom = `
	FROM tasks t
	JOIN users a ON a.id = t.assignee_id
	JOIN users c ON c.id = t.created_by`

const taskSearchVector = `to_tsvector('english', t.title || ' ' || t.description)`

// buildTaskWhere renders the filter as a WHERE clause. The assignee scope always comes first.
func buildTaskWhere(f models.TaskFilter) (string, []interface{}) {
	var (
		conditions []string
		args       []interface{}
	)
	add := func(format string, arg interface{}) {
		args = append(args, arg)
		conditions = append(conditions, fmt.Sprintf(format, len(args)))
	}

	if f.AssigneeID != "" {
		add("t.assignee_id = $%d", f.AssigneeID)
	}
	if s := strings.TrimSpace(f.Search); s != "" {
		add(taskSearchVector+" @@ plainto_tsquery('english', $%d)", s)
	}
	if f.Status != "" {
		add("t.status = $%d", string(f.Status))
	}
	if f.Priority != "" {
		add("t.priority = $%d", string(f.Priority))
	}

	if len(conditions) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

var taskSortColumns = map[string]string{
	models.SortCreatedAt: "t.created_at",
	models.SortUpdatedAt: "t.updated_at",
	models.SortDueDate:   "t.due_date",
	models.SortTitle:     "t.title",
	models.SortPriority:  "CASE t.priority WHEN 'low' THEN 0 WHEN 'medium' THEN 1 WHEN 'high' THEN 2 ELSE 3 END",
}

// taskOrderBy returns an ORDER BY clause with an id tie-break so pages are stable.
func taskOrderBy(raw string) string {
	s, ok := models.ParseTaskSort(raw)
	if !ok {
		s, _ = models.ParseTaskSort("")
	}
	dir := "ASC"
	if s.Desc {
		dir = "DESC"
	}
	return fmt.Sprintf(" ORDER BY %s %s, t.id %s", taskSortColumns[s.Key], dir, dir)
}
