// Package cli implements the modelprobe command tree: one-shot
// directory classification and models-root listing from the shell,
// sharing the classifier core with the daemon.
package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"modelprobe/internal/classifier"
	"modelprobe/internal/common/fsutil"
	"modelprobe/pkg/types"
)

// Config carries persistent flag values shared by all subcommands.
type Config struct {
	Quant  string
	LogLvl string
}

// Run dispatches the CLI command. It returns an error instead of
// exiting, enabling reuse from tests.
func Run(args []string) error {
	root := BuildRootCmd()
	root.SetArgs(args)
	return root.Execute()
}

// BuildRootCmd constructs the Cobra command tree.
func BuildRootCmd() *cobra.Command {
	cfg := &Config{Quant: os.Getenv("MODELPROBE_QUANT"), LogLvl: "warn"}
	root := &cobra.Command{
		Use:           "modelprobe",
		Short:         "Classify speech-model directories",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Persistent flags -> Config
	root.PersistentFlags().StringVar(&cfg.Quant, "quant", cfg.Quant, "Quantization preference: int8 or non-int8 (defaults MODELPROBE_QUANT)")
	root.PersistentFlags().StringVar(&cfg.LogLvl, "log-level", cfg.LogLvl, "Log level: debug|info|warn|error")

	var family, kind string
	var verbose bool
	classifyCmd := &cobra.Command{
		Use:     "classify <dir>",
		Short:   "Classify one model directory and print the detection result",
		Example: "  modelprobe classify ~/models/speech/sherpa-onnx-zipformer-en --family asr",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if family != "asr" && family != "tts" {
				return fmt.Errorf("family must be asr or tts, got %q", family)
			}
			dir, err := fsutil.ExpandHome(args[0])
			if err != nil {
				return err
			}
			svc := classifier.New("", types.ParseQuantPreference(cfg.Quant), newLogger(cfg))
			res := svc.Classify(types.ClassifyRequest{
				Dir:     dir,
				Family:  family,
				Kind:    kind,
				Quant:   cfg.Quant,
				Verbose: verbose || cfg.LogLvl == "debug",
			})
			if err := printJSON(cmd, res); err != nil {
				return err
			}
			if !res.OK {
				return fmt.Errorf("%s", res.Error)
			}
			return nil
		},
	}
	classifyCmd.Flags().StringVar(&family, "family", "asr", "Model family: asr or tts")
	classifyCmd.Flags().StringVar(&kind, "kind", "auto", "Requested kind, or auto")
	classifyCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Trace matcher evaluation")

	listCmd := &cobra.Command{
		Use:     "list <root>",
		Short:   "Classify every model directory under a root and print the registry",
		Example: "  modelprobe list ~/models/speech",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := fsutil.ExpandHome(args[0])
			if err != nil {
				return err
			}
			svc := classifier.New(root, types.ParseQuantPreference(cfg.Quant), newLogger(cfg))
			models, err := svc.ListModels()
			if err != nil {
				return err
			}
			if models == nil {
				models = []types.ModelEntry{}
			}
			return printJSON(cmd, types.ModelsResponse{Models: models})
		},
	}

	root.AddCommand(classifyCmd, listCmd)
	return root
}

func newLogger(cfg *Config) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(cfg.LogLvl)
	if err != nil {
		lvl = zerolog.WarnLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger().Level(lvl)
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
