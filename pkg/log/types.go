package log

// ZapConfig holds the logger settings read from config.yaml.
type ZapConfig struct {
	Level        string
	Mode         string // "production" or "debug"
	Encoding     string // "json" or "console"
	ColorEnabled bool
}

const (
	ModeProduction = "production"
	EncodingJSON   = "json"
)

type ctxKey string

// TraceIDKey is the context key whose value is attached to every log line.
const TraceIDKey ctxKey = "trace_id"
