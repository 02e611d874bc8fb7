package classifier

import (
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"modelprobe/internal/common/fsutil"
	"modelprobe/internal/detect"
	"modelprobe/internal/registry"
	"modelprobe/pkg/types"
)

// Service wraps the classifier core for the HTTP and CLI surfaces:
// it applies server defaults, keeps serving counters, and exposes the
// registry view of the configured models root. Classification itself
// is stateless; Service carries no per-call state and is safe for
// concurrent use.
type Service struct {
	rootDir string
	quant   types.QuantPreference
	log     zerolog.Logger
	start   time.Time

	classifications atomic.Uint64
	failures        atomic.Uint64
}

// New builds a Service. rootDir may be empty when no registry listing
// is wanted; quant is the server-wide default preference applied when
// a request leaves it unset.
func New(rootDir string, quant types.QuantPreference, log zerolog.Logger) *Service {
	return &Service{
		rootDir: rootDir,
		quant:   quant,
		log:     log,
		start:   time.Now(),
	}
}

// Classify runs one classification call and records serving metrics.
func (s *Service) Classify(req types.ClassifyRequest) types.DetectionResult {
	opts := detect.Options{
		Kind:  req.Kind,
		Quant: s.preference(req.Quant),
	}
	if req.Verbose {
		l := s.log.Level(zerolog.DebugLevel)
		opts.Log = &l
	}
	family := req.Family
	if family == "" {
		family = "asr"
	}
	start := time.Now()
	var res types.DetectionResult
	if family == "tts" {
		res = detect.ClassifyTTS(req.Dir, opts)
	} else {
		res = detect.ClassifyASR(req.Dir, opts)
	}
	s.classifications.Add(1)
	if !res.OK {
		s.failures.Add(1)
	}
	observeClassification(family, res, time.Since(start))
	return res
}

// ListModels classifies every immediate subdirectory of the models
// root.
func (s *Service) ListModels() ([]types.ModelEntry, error) {
	if s.rootDir == "" {
		return nil, nil
	}
	return registry.LoadRoot(s.rootDir, s.quant)
}

// Status reports serving totals for GET /status.
func (s *Service) Status() types.StatusResponse {
	now := time.Now()
	return types.StatusResponse{
		RootDir:              s.rootDir,
		ClassificationsTotal: s.classifications.Load(),
		FailuresTotal:        s.failures.Load(),
		UptimeSeconds:        int64(now.Sub(s.start).Seconds()),
		ServerTimeUnix:       now.Unix(),
	}
}

// Ready reports whether the configured models root is usable. An
// unset root never blocks readiness: classification takes explicit
// directories.
func (s *Service) Ready() bool {
	return s.rootDir == "" || fsutil.IsDir(s.rootDir)
}

func (s *Service) preference(q string) types.QuantPreference {
	if q == "" {
		return s.quant
	}
	return types.ParseQuantPreference(q)
}
