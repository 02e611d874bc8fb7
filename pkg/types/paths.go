package types

// AsrPaths is the resolved file set for a recognition model directory.
// Fields are architecture-specific; unused roles stay empty.
type AsrPaths struct {
	// Transducer-style components.
	Encoder string `json:"encoder,omitempty" example:"/models/zipformer/encoder.onnx"`
	Decoder string `json:"decoder,omitempty" example:"/models/zipformer/decoder.onnx"`
	Joiner  string `json:"joiner,omitempty" example:"/models/zipformer/joiner.onnx"`
	// Single-file architectures (Paraformer, CTC family).
	Model string `json:"model,omitempty" example:"/models/paraformer/model.int8.onnx"`
	// Moonshine components.
	Preprocessor    string `json:"preprocessor,omitempty"`
	CachedDecoder   string `json:"cached_decoder,omitempty"`
	UncachedDecoder string `json:"uncached_decoder,omitempty"`
	// Multi-component LLM-style (FunAsrNano) components.
	EncoderAdaptor string `json:"encoder_adaptor,omitempty"`
	LLM            string `json:"llm,omitempty"`
	Embedding      string `json:"embedding,omitempty"`
	TokenizerDir   string `json:"tokenizer_dir,omitempty"`
	// Token table shared by most architectures.
	Tokens string `json:"tokens,omitempty" example:"/models/zipformer/tokens.txt"`
}

// TtsPaths is the resolved file set for a synthesis model directory.
type TtsPaths struct {
	// Vits-style single model, or the voice-bank architectures' model.
	Model string `json:"model,omitempty"`
	// Matcha components.
	AcousticModel string `json:"acoustic_model,omitempty"`
	Vocoder       string `json:"vocoder,omitempty"`
	// Voice-bank file (Kokoro / Kitten).
	Voices string `json:"voices,omitempty"`
	// Pocket components.
	LMFlow          string `json:"lm_flow,omitempty"`
	LMMain          string `json:"lm_main,omitempty"`
	Encoder         string `json:"encoder,omitempty"`
	Decoder         string `json:"decoder,omitempty"`
	TextConditioner string `json:"text_conditioner,omitempty"`
	Vocab           string `json:"vocab,omitempty"`
	TokenScores     string `json:"token_scores,omitempty"`
	// Zipvoice distill lexicon.
	Lexicon string `json:"lexicon,omitempty"`
	// Shared auxiliary resources.
	Tokens  string `json:"tokens,omitempty"`
	DataDir string `json:"data_dir,omitempty" example:"/models/vits/espeak-ng-data"`
}
