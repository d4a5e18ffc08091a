package models

import "strings"

const (
	SortCreatedAt = "createdAt"
	SortUpdatedAt = "updatedAt"
	SortDueDate   = "dueDate"
	SortTitle     = "title"
	SortPriority  = "priority"

	DefaultTaskSort = "-" + SortCreatedAt
)

// TaskSort is a parsed sort parameter such as "-createdAt".
type TaskSort struct {
	Key  string
	Desc bool
}

// ParseTaskSort accepts a known key with an optional leading "-" for descending order.
// An empty value yields the default, most recent first.
func ParseTaskSort(raw string) (TaskSort, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		raw = DefaultTaskSort
	}
	s := TaskSort{Key: raw}
	if strings.HasPrefix(raw, "-") {
		s = TaskSort{Key: raw[1:], Desc: true}
	}
	switch s.Key {
	case SortCreatedAt, SortUpdatedAt, SortDueDate, SortTitle, SortPriority:
		return s, true
	}
	return TaskSort{}, false
}
