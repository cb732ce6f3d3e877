package router

// Intent represents user's intention
type Intent string

const (
	IntentHelp         Intent = "HELP"
	IntentAddTask      Intent = "ADD_TASK"
	IntentListTasks    Intent = "LIST_TASKS"
	IntentProposeToday Intent = "PROPOSE_TODAY"
	IntentProposeWeek  Intent = "PROPOSE_WEEK"
	IntentApprove      Intent = "APPROVE"
	IntentCancel       Intent = "CANCEL"
	IntentCompleteTask Intent = "COMPLETE_TASK"
	IntentConversation Intent = "CONVERSATION"
)

// classifiable are the intents the LLM may return.
var classifiable = map[Intent]bool{
	IntentAddTask:      true,
	IntentListTasks:    true,
	IntentProposeToday: true,
	IntentProposeWeek:  true,
	IntentApprove:      true,
	IntentCancel:       true,
	IntentConversation: true,
}

// commands maps slash commands to intents.
var commands = map[string]Intent{
	"/start":    IntentHelp,
	"/help":     IntentHelp,
	"/tasks":    IntentListTasks,
	"/plan":     IntentProposeToday,
	"/planweek": IntentProposeWeek,
	"/approve":  IntentApprove,
	"/cancel":   IntentCancel,
	"/done":     IntentCompleteTask,
	"/add":      IntentAddTask,
}

// RouterOutput is the structured response of the router.
type RouterOutput struct {
	Intent     Intent   `json:"intent"`
	Confidence int      `json:"confidence"` // 0-100
	Reasoning  string   `json:"reasoning"`  // Optional: Why this intent was chosen
	Args       []string `json:"-"`          // slash command arguments
}
