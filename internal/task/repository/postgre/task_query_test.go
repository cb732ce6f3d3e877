package postgre

import (
	"reflect"
	"testing"

	"chat-task-scheduler/internal/model"
	repo "chat-task-scheduler/internal/task/repository"
)

func TestBuildListQuery(t *testing.T) {
	tests := []struct {
		name     string
		opt      repo.ListTasksOptions
		wantMods string
		wantArgs []any
	}{
		{
			name:     "no filters",
			opt:      repo.ListTasksOptions{},
			wantMods: "ORDER BY created_at ASC, id ASC",
			wantArgs: nil,
		},
		{
			name:     "user and kind",
			opt:      repo.ListTasksOptions{UserID: "42", Kind: model.TaskKindFuture},
			wantMods: "WHERE user_id = $1 AND kind = $2 ORDER BY created_at ASC, id ASC",
			wantArgs: []any{"42", "future"},
		},
		{
			name:     "user and ids",
			opt:      repo.ListTasksOptions{UserID: "42", IDs: []string{"a", "b"}},
			wantMods: "WHERE user_id = $1 AND id = ANY($2) ORDER BY created_at ASC, id ASC",
			wantArgs: []any{"42", []string{"a", "b"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mods, args := buildListQuery(tt.opt)
			if mods != tt.wantMods {
				t.Errorf("mods = %q, want %q", mods, tt.wantMods)
			}
			if !reflect.DeepEqual(args, tt.wantArgs) {
				t.Errorf("args = %#v, want %#v", args, tt.wantArgs)
			}
		})
	}
}
