package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/vfg2006/cloud-spend-api/pkg/apiErrors"
	"github.com/vfg2006/cloud-spend-api/pkg/log"
	"golang.org/x/time/rate"
)

// RateLimit limita as requisições da rota a perMinute por minuto, com rajada igual ao limite.
// perMinute <= 0 desliga o limite.
func RateLimit(perMinute int) func(http.Handler) http.Handler {
	if perMinute <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}

	limiter := rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), perMinute)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reservation := limiter.Reserve()
			if delay := reservation.Delay(); delay > 0 {
				reservation.Cancel()

				log.ForContext(r.Context()).WithFields(log.Fields{
					"path":  r.URL.Path,
					"delay": delay.String(),
				}).Warn("ratelimit: requisição recusada")

				w.Header().Set("Retry-After", strconv.Itoa(int(delay.Seconds())+1))
				apiErrors.WriteError(w, apiErrors.ErrTooManyRequests, "Limite de exportações excedido, tente novamente em instantes", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
