package httpapi

import (
	"encoding/json"
	"net/http"

	"modelprobe/internal/detect"
	"modelprobe/pkg/types"
)

// writeJSONError writes a consistent JSON error payload.
func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(types.ErrorResponse{Error: msg, Code: status})
}

// resultStatus maps a detection result to an HTTP status. Request-level
// defects (unknown kind, unusable directory) surface as client errors;
// a completed-but-failed classification is still a valid result and
// returns 200 with ok=false.
func resultStatus(res types.DetectionResult) int {
	switch res.ErrorCode {
	case detect.CodeUnknownKind:
		return http.StatusBadRequest
	case detect.CodeEmptyDir:
		return http.StatusNotFound
	}
	return http.StatusOK
}
