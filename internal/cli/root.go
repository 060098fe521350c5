package cli

import (
	"errors"
	"fmt"

	"github.com/example/osshealth/internal/config"
	"github.com/example/osshealth/internal/hostexec"
	"github.com/spf13/cobra"
)

// version is overridden at build time with -ldflags "-X".
var version = "dev"

// ErrUsage is returned after the usage line has been printed for unexpected arguments.
var ErrUsage = errors.New("unexpected arguments")

// Execute builds the root command and runs the audit.
func Execute() error {
	return newRootCmd(&config.Loader{}, nil).Execute()
}

// newRootCmd wires the audit command. A nil runner launches real host programs.
func newRootCmd(loader *config.Loader, runner hostexec.Runner) *cobra.Command {
	flags := &runtimeFlagSet{}

	rootCmd := &cobra.Command{
		Use:   "osshealth",
		Short: "Check a PASE shell environment for legacy tools shadowing the open-source package tree",
		Long: `osshealth inspects PATH, SHELL, well-known directories and the yum package database
on an IBM i PASE host and reports:
- errors: misconfigurations that will likely break open-source tooling
- warnings: setups that work but are not recommended`,
		Args:          rejectArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loader.Load(flags.toOverrides(cmd))
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			if err := cfg.Validate(); err != nil {
				return err
			}

			return runAudit(cmd, cfg, runner)
		},
	}
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, _ error) error {
		fmt.Fprintf(cmd.OutOrStdout(), "usage: %s\n", cmd.Name())
		return ErrUsage
	})
	rootCmd.SetVersionTemplate("osshealth version {{.Version}}\n")

	bindRuntimeFlags(rootCmd, flags)

	return rootCmd
}
