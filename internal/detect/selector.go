package detect

import "modelprobe/pkg/types"

// outcome is the selector's intermediate state handed to the result
// builder.
type outcome struct {
	rule     *rule
	roles    map[string]string
	aux      auxPaths
	detected []types.DetectedModel
	err      error
}

// run dispatches between explicit-kind validation and auto-detection.
// kind must already be normalized ("" means auto) and verified against
// the family's enum.
func (p *probe) run(rules []rule, kind string) outcome {
	if kind != "" {
		return p.runExplicit(rules, kind)
	}
	return p.runAuto(rules)
}

// runAuto evaluates every rule in table order. All satisfied matchers
// contribute a detected entry; the first satisfied rule whose
// selection gate passes is selected, then post-validated.
func (p *probe) runAuto(rules []rule) outcome {
	var out outcome
	seen := make(map[string]bool)
	for i := range rules {
		r := &rules[i]
		got, ok := p.matches(*r)
		if !ok {
			continue
		}
		p.log.Debug().Str("kind", r.kind).Msg("matcher satisfied")
		if !seen[r.kind] {
			seen[r.kind] = true
			out.detected = append(out.detected, types.DetectedModel{Kind: r.kind, ModelDir: p.dir})
		}
		if out.rule == nil && (r.selectHint == nil || r.selectHint(p)) {
			out.rule = r
			out.roles = got
		}
	}
	if out.rule == nil {
		out.err = noMatchError{dir: p.dir}
		return out
	}
	p.log.Debug().Str("kind", out.rule.kind).Msg("kind selected")
	out.aux, out.err = p.validate(*out.rule)
	return out
}

// runExplicit validates the requested kind directly. Kinds with more
// than one rule (variants, gated duplicates) try each in table order;
// the first fully-resolved rule wins, otherwise the first rule's first
// missing slot names the failure.
func (p *probe) runExplicit(rules []rule, kind string) outcome {
	var out outcome
	var first *rule
	var firstMissing string
	for i := range rules {
		r := &rules[i]
		if r.kind != kind {
			continue
		}
		got, missing := p.evalRoles(*r)
		if missing == "" {
			out.rule = r
			out.roles = got
			out.detected = []types.DetectedModel{{Kind: kind, ModelDir: p.dir}}
			out.aux, out.err = p.validate(*r)
			return out
		}
		if first == nil {
			first = r
			firstMissing = missing
		}
	}
	if first == nil {
		// Callers verify the kind against the enum before probing, so a
		// kind with no rule is a table defect rather than user error.
		out.err = unknownKindError{kind: kind}
		return out
	}
	out.rule = first
	out.err = missingRoleError{kind: kind, role: firstMissing, dir: p.dir}
	return out
}
