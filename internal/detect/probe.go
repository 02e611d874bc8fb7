package detect

import (
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"modelprobe/internal/common/fsutil"
	"modelprobe/internal/scan"
	"modelprobe/pkg/types"
)

// Scan depth bounds. Weight files sit at most two levels below the
// root, but some releases nest the token table deeper
// (e.g. root/data/lang_bpe_500/tokens.txt), hence the wider bound for
// auxiliary-file searches.
const (
	weightScanDepth = 2
	auxScanDepth    = 4
	subdirScanDepth = 2
)

// Options are the caller-supplied parameters of one classification.
type Options struct {
	// Kind is the requested architecture, or "auto"/"" for
	// priority-order auto-detection.
	Kind string
	// Quant steers role resolution between int8 and full-precision
	// weight files.
	Quant types.QuantPreference
	// Log, when set, receives debug-level traces of matcher evaluation.
	Log *zerolog.Logger
}

// probe is the per-call filesystem snapshot. Built once, read-only
// afterwards.
type probe struct {
	dir   string
	files []scan.FileEntry // weight-depth file listing
	deep  []scan.FileEntry // aux-depth listing for token/lexicon search
	dirs  []scan.DirEntry
	quant types.QuantPreference
	log   zerolog.Logger
}

func newProbe(dir string, opts Options) (*probe, error) {
	if strings.TrimSpace(dir) == "" || !fsutil.IsDir(dir) {
		return nil, emptyDirError{dir: dir}
	}
	p := &probe{
		dir:   dir,
		files: scan.Walk(dir, weightScanDepth),
		deep:  scan.Walk(dir, auxScanDepth),
		dirs:  scan.Subdirs(dir, subdirScanDepth),
		quant: opts.Quant,
		log:   zerolog.Nop(),
	}
	if opts.Log != nil {
		p.log = *opts.Log
	}
	if len(p.deep) == 0 {
		return nil, emptyDirError{dir: dir}
	}
	return p, nil
}

// tokensFile locates the token table, preferring the shallowest match.
func (p *probe) tokensFile() string { return p.deepExact("tokens.txt") }

// lexiconFile locates a lexicon, preferring the shallowest match.
func (p *probe) lexiconFile() string { return p.deepExact("lexicon.txt") }

func (p *probe) deepExact(name string) string {
	best := ""
	bestDepth := 0
	for _, f := range p.deep {
		if f.NameLower != name {
			continue
		}
		d := strings.Count(f.Path, string(filepath.Separator))
		if best == "" || d < bestDepth {
			best, bestDepth = f.Path, d
		}
	}
	return best
}

// exactFile finds a file by exact lowercased name at weight depth.
func (p *probe) exactFile(name string) string {
	for _, f := range p.files {
		if f.NameLower == name {
			return f.Path
		}
	}
	return ""
}

// dataDir locates the phonemizer data directory used by most TTS
// architectures (conventionally espeak-ng-data, sometimes dict/ or
// data/).
func (p *probe) dataDir() string {
	for _, d := range p.dirs {
		if strings.Contains(d.NameLower, "espeak") || d.NameLower == "dict" || d.NameLower == "data" {
			return d.Path
		}
	}
	return ""
}

// tokenizerDir locates a tokenizer subdirectory by directory-name hint
// (e.g. a bundled qwen3 tokenizer) that actually carries a vocabulary
// file.
func (p *probe) tokenizerDir() string {
	for _, d := range p.dirs {
		if !strings.Contains(d.NameLower, "qwen") && !strings.Contains(d.NameLower, "tokenizer") {
			continue
		}
		if fsutil.PathExists(filepath.Join(d.Path, "vocab.json")) {
			return d.Path
		}
	}
	return ""
}

// voiceBank locates a voice-bank file (Kokoro/Kitten style). Same
// largest-wins tie-break as role resolution.
func (p *probe) voiceBank() string {
	best := -1
	var cands []scan.FileEntry
	for _, f := range p.files {
		if !strings.Contains(f.NameLower, "voices") {
			continue
		}
		if strings.HasSuffix(f.NameLower, ".bin") || strings.HasSuffix(f.NameLower, ".npz") {
			cands = append(cands, f)
		}
	}
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
