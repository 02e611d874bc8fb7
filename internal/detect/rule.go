package detect

import (
	"modelprobe/internal/resolve"
	"modelprobe/pkg/types"
)

// role is one architectural slot a matcher requires: candidate tokens
// tried in order, per-role exclude tokens, and an optional
// largest-file fallback for the catch-all "model" slot.
type role struct {
	name     string
	tokens   []string
	exclude  []string
	fallback bool
}

// exactFile is a required file matched by exact name rather than by
// role token (Pocket's vocab.json / token_scores.json).
type exactFile struct {
	name string
	role string
}

// resource is an auxiliary requirement checked after a kind is
// selected. A missing resource demotes the result to failed even when
// the matcher itself was satisfied.
type resource int

const (
	resTokens resource = iota
	resDataDir
	resLexicon
	resTokenizerDir
)

// rule is one matcher record. The two family tables list rules in
// auto-detection priority order; adding an architecture is a table
// change, not a control-flow change.
type rule struct {
	kind  string
	roles []role
	exact []exactFile
	// absent lists tokens that must resolve to nothing for the matcher
	// to be satisfied (auto-detection only; explicit requests validate
	// required roles and skip structural disambiguators).
	absent []string
	// voiceBank requires a voice-bank file and resolves it into the
	// "voices" role.
	voiceBank bool
	// hint gates matcher satisfaction during auto-detection.
	hint func(p *probe) bool
	// selectHint gates selection only: a satisfied rule still counts
	// as detected when its selectHint misses (Kitten vs Kokoro).
	selectHint func(p *probe) bool
	// aux lists post-selection requirements.
	aux []resource
	// fallbackExclude is the family-wide exclude set for fallback roles.
	fallbackExclude []string
}

func (r rule) needsTokens() bool {
	for _, res := range r.aux {
		if res == resTokens {
			return true
		}
	}
	return false
}

// evalRoles resolves every role and exact file of r. On failure it
// returns the first missing slot's name.
func (p *probe) evalRoles(r rule) (map[string]string, string) {
	got := make(map[string]string, len(r.roles))
	for _, ro := range r.roles {
		path := ""
		for _, tok := range ro.tokens {
			if path = resolve.ByTokenExcluding(p.files, tok, ro.exclude, p.quant); path != "" {
				break
			}
		}
		if path == "" && ro.fallback {
			path = resolve.LargestExcluding(p.files, r.fallbackExclude)
		}
		if path == "" {
			return nil, ro.name
		}
		got[ro.name] = path
	}
	for _, ef := range r.exact {
		path := p.exactFile(ef.name)
		if path == "" {
			return nil, ef.name
		}
		got[ef.role] = path
	}
	if r.voiceBank {
		vb := p.voiceBank()
		if vb == "" {
			return nil, "voices"
		}
		got["voices"] = vb
	}
	return got, ""
}

// matches evaluates r as an auto-detection matcher: hint gate, absence
// checks, then full role resolution.
func (p *probe) matches(r rule) (map[string]string, bool) {
	if r.hint != nil && !r.hint(p) {
		return nil, false
	}
	for _, tok := range r.absent {
		if resolve.ByToken(p.files, tok, types.QuantUnspecified) != "" {
			return nil, false
		}
	}
	got, missing := p.evalRoles(r)
	if missing != "" {
		return nil, false
	}
	return got, true
}

// auxPaths carries resolved auxiliary resources for the selected kind.
type auxPaths struct {
	tokens       string
	dataDir      string
	lexicon      string
	tokenizerDir string
}

// validate confirms the selected rule's auxiliary resources.
func (p *probe) validate(r rule) (auxPaths, error) {
	var a auxPaths
	for _, res := range r.aux {
		switch res {
		case resTokens:
			if a.tokens = p.tokensFile(); a.tokens == "" {
				return a, missingResourceError{kind: r.kind, resource: "tokens.txt", dir: p.dir}
			}
		case resDataDir:
			if a.dataDir = p.dataDir(); a.dataDir == "" {
				return a, missingResourceError{kind: r.kind, resource: "phonemizer data directory (espeak-ng-data)", dir: p.dir}
			}
		case resLexicon:
			if a.lexicon = p.lexiconFile(); a.lexicon == "" {
				return a, missingResourceError{kind: r.kind, resource: "lexicon.txt", dir: p.dir}
			}
		case resTokenizerDir:
			if a.tokenizerDir = p.tokenizerDir(); a.tokenizerDir == "" {
				return a, missingResourceError{kind: r.kind, resource: "tokenizer directory with vocab.json", dir: p.dir}
			}
		}
	}
	return a, nil
}

// hintAny builds a directory-path hint gate.
func hintAny(needles ...string) func(p *probe) bool {
	return func(p *probe) bool { return resolve.HasAnyHint(p.dir, needles...) }
}

// hintNone builds a negative hint gate: satisfied only when none of
// the needles appear in the path.
func hintNone(needles ...string) func(p *probe) bool {
	return func(p *probe) bool { return !resolve.HasAnyHint(p.dir, needles...) }
}
