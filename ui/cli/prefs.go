// Copyright (c) 2026 Sena Team
// Sena - accessible chat companion
// This source code is licensed under the MIT license found in the LICENSE file.
package cli

import (
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
)

func newPrefsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "prefs",
		Short: "Print the stored preferences as YAML",
		Long: `Prints the preferences changed through the settings menu. When nothing
was stored yet the configured defaults are shown.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			prefs, ok, err := store.LoadPreferences(cmd.Context())
			if err != nil {
				return err
			}
			if !ok {
				prefs = defaultPreferences()
			}

			out, err := yaml.Marshal(prefs)
			if err != nil {
				return fmt.Errorf("could not encode preferences: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
}
