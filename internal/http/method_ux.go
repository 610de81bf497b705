package http

import "net/http"

// MethodMux chooses a handler based on the incoming HTTP method.
func MethodMux(handlers map[string]http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h, ok := handlers[r.Method]; ok {
			h(w, r)
			return
		}
		JSONError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Invalid HTTP method.", nil)
	})
}
