package resolve

import (
	"strings"

	"modelprobe/internal/scan"
	"modelprobe/pkg/types"
)

// WeightExt is the extension that marks a serialized weight file.
// Role tokens are only ever matched against files carrying it.
const WeightExt = ".onnx"

// int8Marker names quantized variants, e.g. "encoder.int8.onnx".
const int8Marker = "int8"

// ByToken resolves the single best weight file whose lowercased name
// contains token. Candidates are first narrowed by quantization
// preference (falling back to the full candidate set when the
// preferred subset is empty), then the largest file wins; equal sizes
// keep the first-encountered file. Returns "" when nothing matches.
func ByToken(files []scan.FileEntry, token string, pref types.QuantPreference) string {
	return ByTokenExcluding(files, token, nil, pref)
}

// ByTokenExcluding is ByToken with per-role exclude tokens: a file
// whose name contains any exclude token is never a candidate. Needed
// where one role token is a substring of another role's file names
// (e.g. "cached_decode" inside "uncached_decode").
func ByTokenExcluding(files []scan.FileEntry, token string, exclude []string, pref types.QuantPreference) string {
	var cands []scan.FileEntry
	for _, f := range files {
		if !strings.HasSuffix(f.NameLower, WeightExt) {
			continue
		}
		if !strings.Contains(f.NameLower, token) {
			continue
		}
		if containsAny(f.NameLower, exclude) {
			continue
		}
		cands = append(cands, f)
	}
	return pickLargest(preferQuant(cands, pref))
}

// ByAnyToken tries tokens in the caller-given order and returns the
// first token's resolution that succeeds. Supports alternate spellings
// of the same role ("encoder_adaptor" vs "encoder-adaptor").
func ByAnyToken(files []scan.FileEntry, tokens []string, pref types.QuantPreference) string {
	for _, tok := range tokens {
		if p := ByToken(files, tok, pref); p != "" {
			return p
		}
	}
	return ""
}

// LargestExcluding picks the largest weight file whose name contains
// none of the exclude tokens. It backs the catch-all "model" role when
// no file is explicitly named "model".
func LargestExcluding(files []scan.FileEntry, exclude []string) string {
	var cands []scan.FileEntry
	for _, f := range files {
		if !strings.HasSuffix(f.NameLower, WeightExt) {
			continue
		}
		if containsAny(f.NameLower, exclude) {
			continue
		}
		cands = append(cands, f)
	}
	return pickLargest(cands)
}

// preferQuant narrows candidates by quantization preference. An empty
// preferred subset falls back to the full set so a preference never
// turns a resolvable role into a miss.
func preferQuant(cands []scan.FileEntry, pref types.QuantPreference) []scan.FileEntry {
	if pref == types.QuantUnspecified || len(cands) == 0 {
		return cands
	}
	var sub []scan.FileEntry
	for _, f := range cands {
		quantized := strings.Contains(f.NameLower, int8Marker)
		if (pref == types.QuantInt8) == quantized {
			sub = append(sub, f)
		}
	}
	if len(sub) == 0 {
		return cands
	}
	return sub
}

// pickLargest keeps the first-encountered file on equal sizes. Main
// weight files are reliably larger than side files that happen to
// share a token substring.
func pickLargest(cands []scan.FileEntry) string {
	best := -1
	for i, f := range cands {
		if best < 0 || f.Size > cands[best].Size {
			best = i
		}
	}
	if best < 0 {
		return ""
	}
	return cands[best].Path
}

func containsAny(name string, tokens []string) bool {
	for _, t := range tokens {
		if t != "" && strings.Contains(name, t) {
			return true
		}
	}
	return false
}
