package model

// Scope identifies the user a request is made on behalf of.
type Scope struct {
	UserID   string
	Username string
	ChatID   int64
}
