package telegram

import (
	"errors"
	"fmt"

	"chat-task-scheduler/internal/schedule"
	"chat-task-scheduler/internal/task"
)

var errInvalidIndex = errors.New("invalid task index")

// errorMessage returns a user-facing error string for the given error.
func errorMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, task.ErrNoTasksParsed), errors.Is(err, task.ErrParseFailed):
		return "⚠️ Mình chưa hiểu công việc trong tin nhắn. Hãy ghi rõ tên và thời lượng, ví dụ: \"Viết báo cáo 60 phút\"."
	case errors.Is(err, task.ErrEmptyInput):
		return "⚠️ Tin nhắn trống."
	case errors.Is(err, task.ErrTaskNotFound):
		return "⚠️ Không tìm thấy công việc này."
	case errors.Is(err, errInvalidIndex):
		return fmt.Sprintf("⚠️ Số thứ tự không hợp lệ. Gõ /tasks để xem danh sách. (%v)", err)
	case errors.Is(err, schedule.ErrNoPendingProposal):
		return "⚠️ Chưa có lịch đề xuất nào. Gõ /plan hoặc /planweek trước."
	case errors.Is(err, schedule.ErrEmptyProposal):
		return "⚠️ Lịch đề xuất không có khung giờ nào để thêm. Gõ /plan để xếp lại."
	case errors.Is(err, schedule.ErrCalendarUnavailable):
		return "⚠️ Google Calendar chưa được cấu hình nên chưa thể thêm lịch."
	default:
		return "❌ Có lỗi xảy ra khi xử lý yêu cầu của bạn. Vui lòng thử lại."
	}
}
