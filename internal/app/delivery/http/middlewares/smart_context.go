package middlewares

import (
	"context"
	"net/http"
	"strings"

	"carelink-service/internal/pkg/constvars"

	"go.uber.org/zap"
)

// SmartContextMiddleware lifts the SMART-on-FHIR bearer token off the request
// so the FHIR client can forward it upstream, and extracts the launch-context
// patient claim for logging. The token is never verified here; authorization
// is the FHIR server's job. Requests without a token pass through, which is
// the direct-connect sandbox mode.
func (m *Middlewares) SmartContextMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authorization := r.Header.Get(constvars.HeaderAuthorization)
		if authorization == "" {
			next.ServeHTTP(w, r)
			return
		}

		token := strings.TrimSpace(strings.TrimPrefix(authorization, "Bearer "))
		if token == "" {
			next.ServeHTTP(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_FHIR_TOKEN_KEY, token)

		launch, err := m.LaunchParser.Parse(token)
		if err != nil {
			requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
			m.Log.Warn("SmartContextMiddleware could not parse launch token",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
		} else if launch.PatientID != "" {
			ctx = context.WithValue(ctx, constvars.CONTEXT_LAUNCH_PATIENT_KEY, launch.PatientID)
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
