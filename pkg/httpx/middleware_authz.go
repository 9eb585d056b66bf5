package httpx

import (
	"net/http"
	"strings"
)

// RequireAnyRole the caller must hold at least one of the provided roles.
func RequireAnyRole(required ...string) Middleware {
	want := make(map[string]struct{}, len(required))
	for _, s := range required {
		want[s] = struct{}{}
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, s := range rolesFromCtx(r.Context()) {
				if _, ok := want[s]; ok {
					next.ServeHTTP(w, r)
					return
				}
			}

			writeForbidden(w, required...)
		})
	}
}

func writeForbidden(w http.ResponseWriter, required ...string) {
	WriteJSON(w, http.StatusForbidden, map[string]any{
		"code":    http.StatusForbidden,
		"message": "requires role " + strings.Join(required, " or "),
	})
}
