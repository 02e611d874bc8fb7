package detect

import "modelprobe/pkg/types"

// failedResult shapes every failure path identically: unknown kind,
// message and code set, any plausible detections preserved.
func failedResult(err error, detected []types.DetectedModel, tokensRequired bool) types.DetectionResult {
	return types.DetectionResult{
		OK:             false,
		Error:          err.Error(),
		ErrorCode:      errorCode(err),
		Kind:           "unknown",
		Detected:       detected,
		TokensRequired: tokensRequired,
	}
}

// normalizeKind maps the "auto" sentinel to the internal empty value.
func normalizeKind(s string) string {
	if s == "auto" {
		return ""
	}
	return s
}
