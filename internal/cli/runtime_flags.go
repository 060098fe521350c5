package cli

import (
	"time"

	"github.com/example/osshealth/internal/config"
	"github.com/spf13/cobra"
)

// runtimeFlagSet tracks audit flags before they are converted into config overrides.
type runtimeFlagSet struct {
	logLevel string
	timeout  time.Duration
	root     string
}

func bindRuntimeFlags(cmd *cobra.Command, flags *runtimeFlagSet) {
	cmd.Flags().StringVar(&flags.logLevel, "log-level", "", "Diagnostic log level on stderr (debug, info, warn, error)")
	cmd.Flags().DurationVar(&flags.timeout, "timeout", 0, "Per-command timeout, e.g. 30s (0 disables)")
	cmd.Flags().StringVar(&flags.root, "root", "", "Audit a host tree staged under this directory")
	if err := cmd.Flags().MarkHidden("root"); err != nil {
		panic(err)
	}
}

func (f runtimeFlagSet) toOverrides(cmd *cobra.Command) config.Overrides {
	ov := config.Overrides{}
	if cmd.Flags().Changed("log-level") {
		ov.LogLevel = f.logLevel
	}

	if cmd.Flags().Changed("timeout") {
		ov.Timeout = f.timeout
		ov.TimeoutSet = true
	}

	if cmd.Flags().Changed("root") {
		ov.Root = f.root
	}

	return ov
}
