package auth

import "context"

type contextKey string

const subjectKey = contextKey("subject")

// WithSubject returns a copy of ctx carrying the token subject.
func WithSubject(ctx context.Context, subject string) context.Context {
	return context.WithValue(ctx, subjectKey, subject)
}

// SubjectFromContext returns the token subject, or "" for anonymous requests.
func SubjectFromContext(ctx context.Context) string {
	if val, ok := ctx.Value(subjectKey).(string); ok {
		return val
	}
	return ""
}
