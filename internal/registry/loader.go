package registry

import (
	"fmt"
	"os"
	"path/filepath"

	"modelprobe/internal/common/fsutil"
	"modelprobe/internal/detect"
	"modelprobe/pkg/types"
)

// LoadRoot scans a root directory for candidate model directories and
// classifies each immediate subdirectory. Entries that classify under
// neither family are skipped. Synthesis is tried first: its matchers
// demand synthesis-only resources (voice banks, phonemizer data), while
// the recognition fallback would claim any single-model directory with
// a token table.
func LoadRoot(root string, quant types.QuantPreference) ([]types.ModelEntry, error) {
	base, err := fsutil.ExpandHome(root)
	if err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(base)
	if err != nil {
		return nil, fmt.Errorf("abs path: %w", err)
	}
	entries, err := os.ReadDir(abs)
	if err != nil {
		return nil, fmt.Errorf("read dir: %w", err)
	}
	var models []types.ModelEntry
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		dir := filepath.Join(abs, e.Name())
		opts := detect.Options{Quant: quant}
		if res := detect.ClassifyTTS(dir, opts); res.OK {
			models = append(models, entry(e.Name(), dir, "tts", res))
			continue
		}
		if res := detect.ClassifyASR(dir, opts); res.OK {
			models = append(models, entry(e.Name(), dir, "asr", res))
		}
	}
	return models, nil
}

func entry(name, dir, family string, res types.DetectionResult) types.ModelEntry {
	return types.ModelEntry{
		Name:     name,
		Dir:      dir,
		Family:   family,
		Kind:     res.Kind,
		Detected: res.Detected,
	}
}
