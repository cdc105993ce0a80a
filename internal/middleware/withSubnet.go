package middleware

import (
	"net"
	"net/http"
)

// WithSubnet restricts a route to clients whose X-Real-IP falls inside the
// trusted CIDR. An empty subnet disables the check; a malformed one denies
// everything.
func WithSubnet(subnet string) func(next http.Handler) http.Handler {
	var trusted *net.IPNet
	if subnet != "" {
		_, trusted, _ = net.ParseCIDR(subnet)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if subnet == "" {
				next.ServeHTTP(w, r)
				return
			}

			ip := net.ParseIP(r.Header.Get("X-Real-IP"))
			if trusted == nil || ip == nil || !trusted.Contains(ip) {
				http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
