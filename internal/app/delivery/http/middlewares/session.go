package middlewares

import (
	"context"
	"net/http"

	"carelink-service/internal/pkg/constvars"
	"carelink-service/internal/pkg/utils"
)

// SessionMiddleware identifies one browser view session. The client sends the
// id it was handed on the first response; a missing header mints a fresh one.
// The session id scopes the cached resolved sets and selection state, so two
// tabs never share selections.
func (m *Middlewares) SessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID := r.Header.Get(constvars.HeaderXSessionID)
		if sessionID == "" {
			sessionID = utils.GenerateSessionID()
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_SESSION_ID_KEY, sessionID)
		w.Header().Set(constvars.HeaderXSessionID, sessionID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
