package detect

import "modelprobe/pkg/types"

// Shared role sets for the recognition tables. The adaptor exclude
// keeps FunAsrNano's encoder_adaptor file from satisfying a plain
// encoder role.
var (
	transducerRoles = []role{
		{name: "encoder", tokens: []string{"encoder"}, exclude: []string{"adaptor"}},
		{name: "decoder", tokens: []string{"decoder"}},
		{name: "joiner", tokens: []string{"joiner"}},
	}

	encDecRoles = []role{
		{name: "encoder", tokens: []string{"encoder"}, exclude: []string{"adaptor"}},
		{name: "decoder", tokens: []string{"decoder"}},
	}

	// Catch-all single-model role: an explicit "model" token, else the
	// largest weight file that is not some other component.
	ctcModelRoles = []role{
		{name: "model", tokens: []string{"model"}, fallback: true},
	}

	funAsrNanoRoles = []role{
		{name: "encoder_adaptor", tokens: []string{"encoder_adaptor", "encoder-adaptor"}},
		{name: "llm", tokens: []string{"llm"}},
		{name: "embedding", tokens: []string{"embedding"}},
	}

	// The uncached variant contains the cached role's token as a
	// substring, hence the excludes.
	moonshineRoles = []role{
		{name: "preprocessor", tokens: []string{"preprocess"}},
		{name: "encoder", tokens: []string{"encode"}, exclude: []string{"decode", "preprocess"}},
		{name: "uncached_decoder", tokens: []string{"uncached_decode"}},
		{name: "cached_decoder", tokens: []string{"cached_decode"}, exclude: []string{"uncached"}},
	}

	transducerTokens = []string{"encoder", "decoder", "joiner"}

	asrFallbackExclude = []string{"encoder", "decoder", "joiner", "preprocess", "llm", "embedding", "adaptor"}
)

func asrRule(kind types.AsrKind, r rule) rule {
	r.kind = string(kind)
	r.fallbackExclude = asrFallbackExclude
	return r
}

// funAsrNanoHint: a bundled tokenizer directory is as strong a signal
// as the directory name itself.
func funAsrNanoHint(p *probe) bool {
	return hintAny("funasr", "nano")(p) || p.tokenizerDir() != ""
}

// asrRules is the recognition matcher table in auto-detection priority
// order. The order is deliberate and load-bearing: several matchers
// can be simultaneously satisfiable for one directory.
var asrRules = []rule{
	asrRule(types.AsrNemoTransducer, rule{roles: transducerRoles, hint: hintAny("nemo", "parakeet"), aux: []resource{resTokens}}),
	asrRule(types.AsrTransducer, rule{roles: transducerRoles, aux: []resource{resTokens}}),
	asrRule(types.AsrNemoCtc, rule{roles: ctcModelRoles, absent: transducerTokens, hint: hintAny("nemo", "parakeet"), aux: []resource{resTokens}}),
	asrRule(types.AsrWenetCtc, rule{roles: ctcModelRoles, absent: transducerTokens, hint: hintAny("wenet"), aux: []resource{resTokens}}),
	asrRule(types.AsrSenseVoice, rule{roles: ctcModelRoles, absent: transducerTokens, hint: hintAny("sense"), aux: []resource{resTokens}}),
	asrRule(types.AsrFunAsrNano, rule{roles: funAsrNanoRoles, hint: funAsrNanoHint, aux: []resource{resTokenizerDir}}),
	asrRule(types.AsrParaformer, rule{roles: ctcModelRoles, absent: transducerTokens, hint: hintAny("paraformer"), aux: []resource{resTokens}}),
	asrRule(types.AsrWhisper, rule{roles: encDecRoles, absent: []string{"joiner"}, hint: hintNone("firered", "canary"), aux: []resource{resTokens}}),
	asrRule(types.AsrFunAsrNano, rule{roles: funAsrNanoRoles, aux: []resource{resTokenizerDir}}),
	asrRule(types.AsrMoonshine, rule{roles: moonshineRoles, hint: hintAny("moonshine"), aux: []resource{resTokens}}),
	asrRule(types.AsrDolphin, rule{roles: ctcModelRoles, absent: transducerTokens, hint: hintAny("dolphin"), aux: []resource{resTokens}}),
	asrRule(types.AsrFireRedAsr, rule{roles: encDecRoles, absent: []string{"joiner"}, hint: hintAny("firered"), aux: []resource{resTokens}}),
	asrRule(types.AsrCanary, rule{roles: encDecRoles, absent: []string{"joiner"}, hint: hintAny("canary"), aux: []resource{resTokens}}),
	asrRule(types.AsrOmnilingual, rule{roles: ctcModelRoles, absent: transducerTokens, hint: hintAny("omnilingual"), aux: []resource{resTokens}}),
	asrRule(types.AsrMedAsr, rule{roles: ctcModelRoles, absent: transducerTokens, hint: hintAny("medasr", "med-asr", "med_asr"), aux: []resource{resTokens}}),
	asrRule(types.AsrTeleSpeechCtc, rule{roles: ctcModelRoles, absent: transducerTokens, hint: hintAny("telespeech"), aux: []resource{resTokens}}),
	// Generic CTC fallback: any single-model directory with a token
	// table that nothing more specific claimed.
	asrRule(types.AsrZipformerCtc, rule{roles: ctcModelRoles, absent: transducerTokens, aux: []resource{resTokens}}),
}

// ClassifyASR classifies dir as a speech-recognition model directory.
// The result is pure output; expected failures are reported in it, not
// returned.
func ClassifyASR(dir string, opts Options) types.DetectionResult {
	kind := normalizeKind(opts.Kind)
	if kind != "" {
		if _, ok := types.ParseAsrKind(kind); !ok {
			return failedResult(unknownKindError{kind: kind}, nil, false)
		}
	}
	p, err := newProbe(dir, opts)
	if err != nil {
		return failedResult(err, nil, false)
	}
	out := p.run(asrRules, kind)
	if out.err != nil {
		needTokens := out.rule != nil && out.rule.needsTokens()
		return failedResult(out.err, out.detected, needTokens)
	}
	paths := asrPathsFrom(out.roles)
	paths.Tokens = out.aux.tokens
	paths.TokenizerDir = out.aux.tokenizerDir
	return types.DetectionResult{
		OK:             true,
		Kind:           out.rule.kind,
		Detected:       out.detected,
		Asr:            paths,
		TokensRequired: out.rule.needsTokens(),
	}
}

func asrPathsFrom(roles map[string]string) *types.AsrPaths {
	var a types.AsrPaths
	for name, path := range roles {
		switch name {
		case "encoder":
			a.Encoder = path
		case "decoder":
			a.Decoder = path
		case "joiner":
			a.Joiner = path
		case "model":
			a.Model = path
		case "preprocessor":
			a.Preprocessor = path
		case "cached_decoder":
			a.CachedDecoder = path
		case "uncached_decoder":
			a.UncachedDecoder = path
		case "encoder_adaptor":
			a.EncoderAdaptor = path
		case "llm":
			a.LLM = path
		case "embedding":
			a.Embedding = path
		}
	}
	return &a
}
