package postgre

import (
	"fmt"
	"strings"

	repo "chat-task-scheduler/internal/task/repository"
)

// buildListQuery builds the WHERE + ORDER clause for ListTasks.
func buildListQuery(opt repo.ListTasksOptions) (string, []any) {
	var conditions []string
	var args []any
	idx := 1

	if opt.UserID != "" {
		conditions = append(conditions, fmt.Sprintf("user_id = $%d", idx))
		args = append(args, opt.UserID)
		idx++
	}
	if opt.Kind != "" {
		conditions = append(conditions, fmt.Sprintf("kind = $%d", idx))
		args = append(args, string(opt.Kind))
		idx++
	}
	if len(opt.IDs) > 0 {
		conditions = append(conditions, fmt.Sprintf("id = ANY($%d)", idx))
		args = append(args, opt.IDs)
	}

	var parts []string
	if len(conditions) > 0 {
		parts = append(parts, "WHERE "+strings.Join(conditions, " AND "))
	}
	parts = append(parts, "ORDER BY created_at ASC, id ASC")
	return strings.Join(parts, " "), args
}
