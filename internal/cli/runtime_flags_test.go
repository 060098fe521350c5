package cli

import (
	"reflect"
	"testing"
	"time"

	"github.com/example/osshealth/internal/config"
	"github.com/spf13/cobra"
)

func TestRuntimeFlagSetToOverrides(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(*cobra.Command)
		expected config.Overrides
	}{
		{
			name:     "no flags changed returns empty overrides",
			setup:    func(cmd *cobra.Command) {},
			expected: config.Overrides{},
		},
		{
			name: "log-level flag changed",
			setup: func(cmd *cobra.Command) {
				cmd.Flags().Set("log-level", "debug")
			},
			expected: config.Overrides{LogLevel: "debug"},
		},
		{
			name: "timeout flag changed",
			setup: func(cmd *cobra.Command) {
				cmd.Flags().Set("timeout", "45s")
			},
			expected: config.Overrides{Timeout: 45 * time.Second, TimeoutSet: true},
		},
		{
			name: "timeout set to zero should still set TimeoutSet",
			setup: func(cmd *cobra.Command) {
				cmd.Flags().Set("timeout", "0s")
			},
			expected: config.Overrides{TimeoutSet: true},
		},
		{
			name: "root flag changed",
			setup: func(cmd *cobra.Command) {
				cmd.Flags().Set("root", "/staging")
			},
			expected: config.Overrides{Root: "/staging"},
		},
		{
			name: "multiple flags changed",
			setup: func(cmd *cobra.Command) {
				cmd.Flags().Set("log-level", "info")
				cmd.Flags().Set("timeout", "1m")
				cmd.Flags().Set("root", "/stage")
			},
			expected: config.Overrides{LogLevel: "info", Timeout: time.Minute, TimeoutSet: true, Root: "/stage"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &cobra.Command{Use: "test"}
			flags := &runtimeFlagSet{}
			bindRuntimeFlags(cmd, flags)

			tt.setup(cmd)

			result := flags.toOverrides(cmd)
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("toOverrides() mismatch\nGot:      %+v\nExpected: %+v", result, tt.expected)
			}
		})
	}
}

func TestRootFlagIsHidden(t *testing.T) {
	cmd := &cobra.Command{Use: "test"}
	bindRuntimeFlags(cmd, &runtimeFlagSet{})

	flag := cmd.Flags().Lookup("root")
	if flag == nil || !flag.Hidden {
		t.Fatalf("expected hidden --root flag, got %+v", flag)
	}
}
