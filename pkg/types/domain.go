package types

// AsrKind identifies one supported speech-recognition model family.
type AsrKind string

const (
	AsrTransducer     AsrKind = "transducer"
	AsrNemoTransducer AsrKind = "nemo_transducer"
	AsrParaformer     AsrKind = "paraformer"
	AsrNemoCtc        AsrKind = "nemo_ctc"
	AsrWenetCtc       AsrKind = "wenet_ctc"
	AsrSenseVoice     AsrKind = "sense_voice"
	AsrZipformerCtc   AsrKind = "zipformer_ctc"
	AsrWhisper        AsrKind = "whisper"
	AsrFunAsrNano     AsrKind = "funasr_nano"
	AsrFireRedAsr     AsrKind = "firered_asr"
	AsrMoonshine      AsrKind = "moonshine"
	AsrDolphin        AsrKind = "dolphin"
	AsrCanary         AsrKind = "canary"
	AsrOmnilingual    AsrKind = "omnilingual"
	AsrMedAsr         AsrKind = "med_asr"
	AsrTeleSpeechCtc  AsrKind = "telespeech_ctc"
	AsrUnknown        AsrKind = "unknown"
)

// TtsKind identifies one supported speech-synthesis model family.
type TtsKind string

const (
	TtsVits     TtsKind = "vits"
	TtsMatcha   TtsKind = "matcha"
	TtsKokoro   TtsKind = "kokoro"
	TtsKitten   TtsKind = "kitten"
	TtsPocket   TtsKind = "pocket"
	TtsZipvoice TtsKind = "zipvoice"
	TtsUnknown  TtsKind = "unknown"
)

// ParseAsrKind maps a kind string to an AsrKind. The second return is
// false when the string names no known recognition family.
func ParseAsrKind(s string) (AsrKind, bool) {
	switch AsrKind(s) {
	case AsrTransducer, AsrNemoTransducer, AsrParaformer, AsrNemoCtc,
		AsrWenetCtc, AsrSenseVoice, AsrZipformerCtc, AsrWhisper,
		AsrFunAsrNano, AsrFireRedAsr, AsrMoonshine, AsrDolphin,
		AsrCanary, AsrOmnilingual, AsrMedAsr, AsrTeleSpeechCtc:
		return AsrKind(s), true
	}
	return AsrUnknown, false
}

// ParseTtsKind maps a kind string to a TtsKind. The second return is
// false when the string names no known synthesis family.
func ParseTtsKind(s string) (TtsKind, bool) {
	switch TtsKind(s) {
	case TtsVits, TtsMatcha, TtsKokoro, TtsKitten, TtsPocket, TtsZipvoice:
		return TtsKind(s), true
	}
	return TtsUnknown, false
}

// QuantPreference steers role resolution between quantized (int8) and
// full-precision weight files when both are present.
type QuantPreference string

const (
	QuantUnspecified QuantPreference = ""
	QuantInt8        QuantPreference = "int8"
	QuantNonInt8     QuantPreference = "non-int8"
)

// ParseQuantPreference normalizes a caller-supplied quantization string.
// Unrecognized values fall back to QuantUnspecified.
func ParseQuantPreference(s string) QuantPreference {
	switch s {
	case "int8", "i8":
		return QuantInt8
	case "non-int8", "nonint8", "fp32", "float32":
		return QuantNonInt8
	}
	return QuantUnspecified
}
