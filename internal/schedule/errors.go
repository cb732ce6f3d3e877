package schedule

import "errors"

// NoTasksMessage is returned as the proposal text when nothing was selected.
const NoTasksMessage = "📭 Chưa có công việc nào được chọn để xếp lịch. Hãy thêm công việc trước hoặc chọn theo số thứ tự trong /tasks."

var (
	ErrNoPendingProposal   = errors.New("no pending proposal")
	ErrEmptyProposal       = errors.New("pending proposal has no time blocks")
	ErrCalendarUnavailable = errors.New("calendar is not configured")
)
