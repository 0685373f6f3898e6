package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/facilityops/scheduling-service/internal/api/handlers"
)

const (
	// TenantHeader identifies the tenant on every API request
	TenantHeader = "X-Tenant-ID"

	msgMissingTenant = "cabeçalho X-Tenant-ID ausente"
	msgInvalidTenant = "cabeçalho X-Tenant-ID inválido, esperado um UUID"
)

type contextKey string

const tenantContextKey contextKey = "tenant_id"

// Tenant extracts and validates the X-Tenant-ID header and stores the tenant
// id in the request context. Requests without a valid tenant never reach the
// handlers.
func Tenant(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(TenantHeader)
		if raw == "" {
			handlers.RespondError(w, http.StatusUnauthorized, msgMissingTenant)
			return
		}

		tenantID, err := uuid.Parse(raw)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidTenant)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithTenant(r.Context(), tenantID)))
	})
}

// WithTenant stores a tenant id in the context the way the Tenant middleware
// does. Exposed for handler tests.
func WithTenant(ctx context.Context, tenantID uuid.UUID) context.Context {
	return context.WithValue(ctx, tenantContextKey, tenantID)
}

// TenantFromContext returns the tenant id stored by the Tenant middleware
func TenantFromContext(ctx context.Context) (uuid.UUID, bool) {
	tenantID, ok := ctx.Value(tenantContextKey).(uuid.UUID)
	return tenantID, ok
}
