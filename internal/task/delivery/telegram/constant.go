package telegram

import "time"

const defaultProcessTimeout = 2 * time.Minute

// Webhook outcomes.
const (
	outcomeAccepted    = "accepted"
	outcomeIgnored     = "ignored"
	outcomeBadRequest  = "bad_request"
	outcomeRateLimited = "rate_limited"
)

const (
	msgProcessing = "⏳ Đang xử lý..."

	msgHelp = `👋 Chào bạn! Mình giúp bạn xếp công việc vào thời gian trống trên Google Calendar.

📝 Gửi công việc bằng lời, ví dụ: "Viết báo cáo 2 tiếng trước thứ 6, gọi khách hàng 30 phút gấp"

Lệnh:
/tasks - xem danh sách công việc
/plan [số…] - xếp lịch hôm nay (mặc định: các việc hằng ngày)
/planweek [số…] - xếp lịch tuần tới (mặc định: tất cả)
/approve - thêm lịch vừa đề xuất vào Google Calendar
/cancel - huỷ lịch vừa đề xuất
/done <số> - đánh dấu hoàn thành`

	msgConversation = "🤖 Mình là trợ lý xếp lịch. Hãy gửi công việc cần làm, hoặc gõ /plan để xếp lịch hôm nay. Gõ /help để xem hướng dẫn."
	msgNoTasks      = "📭 Bạn chưa có công việc nào. Hãy gửi công việc cần làm cho mình."
	msgCancelled    = "🗑️ Đã huỷ lịch đề xuất. Bạn có thể chỉnh sửa công việc rồi gõ /plan để xếp lại."
	msgDoneUsage    = "Cách dùng: /done <số thứ tự trong /tasks>"
)
