package constant

type contextKey string

const (
	SessionKey contextKey = "session"
)
