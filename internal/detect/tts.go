package detect

import "modelprobe/pkg/types"

var (
	// Vits-style single-model role, shared by the voice-bank kinds.
	ttsModelRoles = []role{
		{name: "model", tokens: []string{"model"}, fallback: true},
	}

	matchaRoles = []role{
		{name: "acoustic_model", tokens: []string{"acoustic_model", "model-steps", "matcha"}},
		{name: "vocoder", tokens: []string{"vocoder", "vocos", "hifigan"}},
	}

	pocketRoles = []role{
		{name: "lm_flow", tokens: []string{"lm_flow"}},
		{name: "lm_main", tokens: []string{"lm_main"}},
		{name: "encoder", tokens: []string{"encoder"}},
		{name: "decoder", tokens: []string{"decoder"}},
		{name: "text_conditioner", tokens: []string{"text_conditioner", "conditioner"}},
	}

	zipvoiceFullRoles = []role{
		{name: "encoder", tokens: []string{"encoder"}},
		{name: "decoder", tokens: []string{"decoder"}},
		{name: "vocoder", tokens: []string{"vocoder", "vocos"}},
	}

	zipvoiceDistillRoles = []role{
		{name: "encoder", tokens: []string{"encoder"}},
		{name: "decoder", tokens: []string{"decoder"}},
	}

	pocketFiles = []exactFile{
		{name: "vocab.json", role: "vocab"},
		{name: "token_scores.json", role: "token_scores"},
	}

	ttsFallbackExclude = []string{"encoder", "decoder", "joiner", "vocoder", "vocos", "flow", "conditioner", "preprocess"}
)

func ttsRule(kind types.TtsKind, r rule) rule {
	r.kind = string(kind)
	r.fallbackExclude = ttsFallbackExclude
	return r
}

// ttsRules is the synthesis matcher table in auto-detection priority
// order. Kitten and Kokoro are both recorded as detected for any
// voice-bank directory; the select-only hint picks Kitten when the
// path says so, otherwise Kokoro is the compatibility default.
var ttsRules = []rule{
	ttsRule(types.TtsMatcha, rule{roles: matchaRoles, aux: []resource{resTokens, resDataDir}}),
	ttsRule(types.TtsPocket, rule{roles: pocketRoles, exact: pocketFiles}),
	ttsRule(types.TtsZipvoice, rule{roles: zipvoiceFullRoles, aux: []resource{resTokens, resDataDir}}),
	// Distilled variant ships no vocoder; the lexicon marks it apart
	// from other encoder/decoder pairs.
	ttsRule(types.TtsZipvoice, rule{roles: zipvoiceDistillRoles, exact: []exactFile{{name: "lexicon.txt", role: "lexicon"}}, aux: []resource{resTokens}}),
	ttsRule(types.TtsKitten, rule{roles: ttsModelRoles, voiceBank: true, selectHint: hintAny("kitten"), aux: []resource{resTokens, resDataDir}}),
	ttsRule(types.TtsKokoro, rule{roles: ttsModelRoles, voiceBank: true, aux: []resource{resTokens, resDataDir}}),
	ttsRule(types.TtsVits, rule{roles: ttsModelRoles, aux: []resource{resTokens, resDataDir}}),
}

// ClassifyTTS classifies dir as a speech-synthesis model directory.
func ClassifyTTS(dir string, opts Options) types.DetectionResult {
	kind := normalizeKind(opts.Kind)
	if kind != "" {
		if _, ok := types.ParseTtsKind(kind); !ok {
			return failedResult(unknownKindError{kind: kind}, nil, false)
		}
	}
	p, err := newProbe(dir, opts)
	if err != nil {
		return failedResult(err, nil, false)
	}
	out := p.run(ttsRules, kind)
	if out.err != nil {
		needTokens := out.rule != nil && out.rule.needsTokens()
		return failedResult(out.err, out.detected, needTokens)
	}
	paths := ttsPathsFrom(out.roles)
	paths.Tokens = out.aux.tokens
	paths.DataDir = out.aux.dataDir
	if paths.Lexicon == "" {
		paths.Lexicon = out.aux.lexicon
	}
	return types.DetectionResult{
		OK:             true,
		Kind:           out.rule.kind,
		Detected:       out.detected,
		Tts:            paths,
		TokensRequired: out.rule.needsTokens(),
	}
}

func ttsPathsFrom(roles map[string]string) *types.TtsPaths {
	var t types.TtsPaths
	for name, path := range roles {
		switch name {
		case "model":
			t.Model = path
		case "acoustic_model":
			t.AcousticModel = path
		case "vocoder":
			t.Vocoder = path
		case "voices":
			t.Voices = path
		case "lm_flow":
			t.LMFlow = path
		case "lm_main":
			t.LMMain = path
		case "encoder":
			t.Encoder = path
		case "decoder":
			t.Decoder = path
		case "text_conditioner":
			t.TextConditioner = path
		case "vocab":
			t.Vocab = path
		case "token_scores":
			t.TokenScores = path
		case "lexicon":
			t.Lexicon = path
		}
	}
	return &t
}
