package router

// Log prefixes
const (
	LogPrefixClassify = "internal.router.Classify"
)

// Router prompts
const (
	PromptRouterSystem = `Bạn là Semantic Router của một bot xếp lịch làm việc. Phân tích tin nhắn và xác định ý định (intent) của người dùng.

Các intent có thể:
1. ADD_TASK: Thêm công việc mới, nhắc việc, deadline, thời lượng
2. LIST_TASKS: Xem danh sách công việc
3. PROPOSE_TODAY: Nhờ xếp lịch cho hôm nay
4. PROPOSE_WEEK: Nhờ xếp lịch cho tuần tới
5. APPROVE: Đồng ý với lịch vừa đề xuất
6. CANCEL: Huỷ lịch vừa đề xuất
7. CONVERSATION: Chào hỏi, hỏi về tính năng, chat thông thường

Trả về JSON với format:
{
  "intent": "ADD_TASK|LIST_TASKS|PROPOSE_TODAY|PROPOSE_WEEK|APPROVE|CANCEL|CONVERSATION",
  "confidence": 0-100,
  "reasoning": "Giải thích ngắn gọn"
}`

	PromptMessagePrefix = "Tin nhắn hiện tại: "
)

// Router configuration
const (
	RouterFallbackIntent     = IntentConversation
	RouterFallbackConfidence = 50
	CommandConfidence        = 100
)

// Error messages
const (
	ErrMsgLLMCallFailed   = "LLM call failed"
	ErrMsgJSONParseFailed = "Failed to parse JSON, falling back to CONVERSATION"
	ErrMsgUnknownIntent   = "Unknown intent, falling back to CONVERSATION"
)

// Fallback reasons
const (
	ReasonParsingError  = "Fallback due to parsing error - route to conversation"
	ReasonUnknownIntent = "Fallback due to unknown intent"
	ReasonLLMError      = "Fallback due to LLM error"
	ReasonSlashCommand  = "Slash command"
)
