// Package detect classifies a directory of on-disk inference-model
// artifacts into one of the known speech-recognition or
// speech-synthesis architectures and resolves the concrete file for
// each architectural role. It is structured into small files by
// concern:
//
//   - probe.go: per-call filesystem snapshot and auxiliary-resource lookups.
//   - rule.go: matcher records (role sets, absence checks, hints, aux
//     requirements) and the generic evaluation over them.
//   - selector.go: explicit-kind validation and fixed-priority
//     auto-detection over a rule table.
//   - asr.go / tts.go: the per-family rule tables and entry points.
//   - errors.go: the error taxonomy and IsXxx helpers.
//   - result.go: DetectionResult assembly.
//
// Classification is a pure function of the filesystem snapshot and the
// caller's parameters: no caching, no shared mutable state, safe for
// concurrent use. Expected "not found" conditions are reported in the
// result, never raised.
package detect
