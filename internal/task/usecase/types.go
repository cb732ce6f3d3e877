package usecase

// parsedTask is one entry of the JSON array the LLM returns.
type parsedTask struct {
	Name            string `json:"name"`
	DurationMinutes int    `json:"duration_minutes"`
	DueDate         string `json:"due_date"`
	Priority        string `json:"priority"`
	Kind            string `json:"kind"`
}
