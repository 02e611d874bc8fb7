package detect

import "fmt"

// Stable machine-readable codes carried on DetectionResult.ErrorCode.
const (
	CodeEmptyDir        = "empty_dir"
	CodeUnknownKind     = "unknown_kind"
	CodeMissingRole     = "missing_role"
	CodeMissingResource = "missing_resource"
	CodeNoMatch         = "no_match"
)

// emptyDirError signals a missing, empty, or non-directory root path.
type emptyDirError struct{ dir string }

func (e emptyDirError) Error() string {
	if e.dir == "" {
		return "model directory path is empty"
	}
	return fmt.Sprintf("model directory %q is missing, empty, or not a directory", e.dir)
}

// IsEmptyDir reports whether err indicates an unusable root directory.
func IsEmptyDir(err error) bool {
	_, ok := err.(emptyDirError)
	return ok
}

// unknownKindError signals an explicit kind string that maps to no
// known architecture.
type unknownKindError struct{ kind string }

func (e unknownKindError) Error() string {
	return fmt.Sprintf("unknown model kind %q", e.kind)
}

// IsUnknownKind reports whether err indicates an unrecognized
// requested kind.
func IsUnknownKind(err error) bool {
	_, ok := err.(unknownKindError)
	return ok
}

// missingRoleError names the unresolvable role for the requested or
// matched kind.
type missingRoleError struct{ kind, role, dir string }

func (e missingRoleError) Error() string {
	return fmt.Sprintf("%s: required %s file not found under %s", e.kind, e.role, e.dir)
}

// IsMissingRole reports whether err indicates an unresolvable role.
func IsMissingRole(err error) bool {
	_, ok := err.(missingRoleError)
	return ok
}

// missingResourceError names the absent auxiliary resource (token
// table, lexicon, data directory, tokenizer directory).
type missingResourceError struct{ kind, resource, dir string }

func (e missingResourceError) Error() string {
	return fmt.Sprintf("%s: %s not found under %s", e.kind, e.resource, e.dir)
}

// IsMissingResource reports whether err indicates an absent auxiliary
// resource.
func IsMissingResource(err error) bool {
	_, ok := err.(missingResourceError)
	return ok
}

// noMatchError signals that auto-detection exhausted its priority
// order without a match.
type noMatchError struct{ dir string }

func (e noMatchError) Error() string {
	return fmt.Sprintf("no compatible model architecture detected under %s", e.dir)
}

// IsNoMatch reports whether err indicates exhausted auto-detection.
func IsNoMatch(err error) bool {
	_, ok := err.(noMatchError)
	return ok
}

// errorCode maps a taxonomy error to its stable code.
func errorCode(err error) string {
	switch {
	case IsEmptyDir(err):
		return CodeEmptyDir
	case IsUnknownKind(err):
		return CodeUnknownKind
	case IsMissingRole(err):
		return CodeMissingRole
	case IsMissingResource(err):
		return CodeMissingResource
	case IsNoMatch(err):
		return CodeNoMatch
	}
	return ""
}
