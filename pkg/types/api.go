package types

// DetectedModel records one plausible architecture for a directory.
// A single directory can yield several entries when more than one
// matcher is satisfied by the same file set.
type DetectedModel struct {
	// Architecture kind as a string (AsrKind or TtsKind value).
	// example: transducer
	Kind string `json:"kind" example:"transducer"`
	// Directory the detection ran against.
	// example: /models/sherpa-onnx-zipformer-en
	ModelDir string `json:"model_dir" example:"/models/sherpa-onnx-zipformer-en"`
}

// DetectionResult is the sole output of one classification call.
// It is pure output: built once, never mutated afterwards.
type DetectionResult struct {
	// True when a kind was selected and all of its required resources
	// were confirmed present.
	OK bool `json:"ok"`
	// Human-readable failure reason; empty iff OK.
	Error string `json:"error,omitempty" example:"tokens.txt not found under /models/broken"`
	// Stable machine-readable failure code; empty iff OK.
	// One of: empty_dir, unknown_kind, missing_role, missing_resource, no_match.
	ErrorCode string `json:"error_code,omitempty" example:"missing_resource"`
	// Selected kind; "unknown" on failure. Always exactly one value
	// even when Detected lists several plausible kinds.
	Kind string `json:"kind" example:"transducer"`
	// All plausible architectures found for the directory.
	Detected []DetectedModel `json:"detected,omitempty"`
	// Resolved paths; exactly one of Asr/Tts is set on success.
	Asr *AsrPaths `json:"asr,omitempty"`
	Tts *TtsPaths `json:"tts,omitempty"`
	// Whether the selected kind requires a token table.
	TokensRequired bool `json:"tokens_required"`
}

// ClassifyRequest is the POST /classify payload.
type ClassifyRequest struct {
	// Directory to classify.
	// example: /models/sherpa-onnx-zipformer-en
	Dir string `json:"dir" example:"/models/sherpa-onnx-zipformer-en"`
	// Model family: "asr" or "tts".
	// example: asr
	Family string `json:"family" example:"asr"`
	// Requested kind, or "auto" (default) for priority-order detection.
	// example: auto
	Kind string `json:"kind,omitempty" example:"auto"`
	// Quantization preference for role resolution: "int8", "non-int8", or empty.
	// example: int8
	Quant string `json:"quant,omitempty" example:"int8"`
	// Enable debug-level logging for this request.
	Verbose bool `json:"verbose,omitempty"`
}

// ModelEntry summarizes one classified directory under the models root.
type ModelEntry struct {
	// Directory base name, used as the entry id.
	// example: sherpa-onnx-zipformer-en
	Name string `json:"name" example:"sherpa-onnx-zipformer-en"`
	// Absolute directory path.
	Dir string `json:"dir"`
	// Family the directory classified under: "asr" or "tts".
	Family string `json:"family" example:"asr"`
	// Selected kind for the directory.
	Kind string `json:"kind" example:"transducer"`
	// All plausible kinds found.
	Detected []DetectedModel `json:"detected,omitempty"`
}

// ModelsResponse wraps the registry listing returned by GET /models.
type ModelsResponse struct {
	Models []ModelEntry `json:"models"`
}

// StatusResponse is returned by GET /status.
type StatusResponse struct {
	// Configured models root directory.
	RootDir string `json:"root_dir" example:"/models"`
	// Total classification calls served.
	ClassificationsTotal uint64 `json:"classifications_total" example:"42"`
	// Classification calls that returned a failed result.
	FailuresTotal uint64 `json:"failures_total" example:"3"`
	// Uptime of the server in seconds.
	UptimeSeconds int64 `json:"uptime_seconds" example:"3600"`
	// Server time in unix seconds.
	ServerTimeUnix int64 `json:"server_time_unix" example:"1700000000"`
}

// ErrorResponse is a consistent JSON error payload.
type ErrorResponse struct {
	// Error message.
	// example: invalid JSON body
	Error string `json:"error" example:"invalid JSON body"`
	// HTTP status code.
	// example: 400
	Code int `json:"code" example:"400"`
}
