package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/csrf"

	"github.com/habitflow/HabitFlowBackend/config"
)

// CSRFProtection guards the mutating API routes with gorilla/csrf. Each
// response carries a fresh token in the X-CSRF-Token header so the web
// client can echo it back on the next write.
func CSRFProtection(cfg config.CSRFConfig) gin.HandlerFunc {
	protect := csrf.Protect(
		[]byte(cfg.AuthKey),
		csrf.Secure(!cfg.Insecure),
		csrf.HttpOnly(true),
		csrf.Path("/"),
		csrf.ErrorHandler(http.HandlerFunc(csrfReject)),
	)

	return func(c *gin.Context) {
		handler := protect(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := csrf.Token(r)
			c.Set("csrf_token", token)
			c.Header("X-CSRF-Token", token)
			c.Next()
		}))
		handler.ServeHTTP(c.Writer, c.Request)
	}
}

// csrfReject answers a failed token check the way the gin handlers answer
// errors, so clients see one error shape everywhere.
func csrfReject(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusForbidden)
	w.Write([]byte(`{"error":"CSRF token invalid or missing"}`))
}
