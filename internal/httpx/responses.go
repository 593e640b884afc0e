package httpx

import (
	"encoding/json"
	"net/http"
)

// JSONError writes a minimal {"error": message} body with the given
// status. Middleware uses it for rejections produced before a handler
// runs.
func JSONError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
