package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/y23cs140nandinipinneboina/sahayak/internal/session"
)

type contextKey string

// VisitorContextKey is the context key for the visitor.
const VisitorContextKey contextKey = "visitor"

// Session returns a middleware that loads the visitor into the request
// context, issuing a new visitor cookie when the request has none.
func Session(store *session.Store, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			visitor, err := store.Get(r)
			if err != nil || visitor == nil {
				visitor, err = store.New(w)
				if err != nil {
					logger.Warn("failed to issue visitor cookie", "error", err)
				}
			}

			if visitor != nil {
				r = r.WithContext(WithVisitor(r.Context(), visitor))
			}

			next.ServeHTTP(w, r)
		})
	}
}

// WithVisitor returns a copy of ctx carrying v.
func WithVisitor(ctx context.Context, v *session.Visitor) context.Context {
	return context.WithValue(ctx, VisitorContextKey, v)
}

// GetVisitor retrieves the visitor from context.
func GetVisitor(ctx context.Context) *session.Visitor {
	v, ok := ctx.Value(VisitorContextKey).(*session.Visitor)
	if !ok {
		return nil
	}
	return v
}
