package webhook

// SecurityConfig holds webhook security settings
type SecurityConfig struct {
	Secret          string   // compared with the X-Telegram-Bot-Api-Secret-Token header
	AllowedIPs      []string // IP or CIDR allowlist (optional)
	RateLimitPerMin int      // max updates per chat per minute, 0 disables
}
