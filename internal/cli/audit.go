package cli

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/example/osshealth/internal/audit"
	"github.com/example/osshealth/internal/config"
	"github.com/example/osshealth/internal/hostexec"
	"github.com/example/osshealth/internal/layout"
	"github.com/example/osshealth/internal/logger"
	"github.com/example/osshealth/internal/report"
)

func runAudit(cmd *cobra.Command, cfg config.RuntimeConfig, runner hostexec.Runner) error {
	level, err := cfg.Level()
	if err != nil {
		return err
	}
	log := logger.New(level, cmd.ErrOrStderr())

	hostLayout, err := layout.Default(cfg.Root)
	if err != nil {
		return err
	}

	if runner == nil {
		runner = hostexec.NewRunner(cfg.Timeout, log)
	}

	env := audit.EnvironmentFromOS()
	log.WithFields(logrus.Fields{
		"root":    cfg.Root,
		"timeout": cfg.Timeout,
		"path":    env.Path,
		"shell":   env.Shell,
	}).Debug("starting audit")

	findings := audit.New(hostLayout, env, runner, log).Run(cmd.Context())
	return report.Write(cmd.OutOrStdout(), findings)
}
