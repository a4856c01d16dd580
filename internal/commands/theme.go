package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/klabast/wb-services/feriados-kalender/internal/storage"
	"github.com/klabast/wb-services/feriados-kalender/internal/theme"
)

func newThemeCmd(o *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Show, toggle or reset the persisted dark/light theme",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the resolved theme",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			toggle, store, err := o.openToggle(cmd.Context())
			if err != nil {
				return err
			}
			defer closeStore(store)

			fmt.Fprintf(cmd.OutOrStdout(), "mode:       %s\n", toggle.Mode())
			fmt.Fprintf(cmd.OutOrStdout(), "preference: %s\n", toggle.Preference())
			fmt.Fprintf(cmd.OutOrStdout(), "pressed:    %t\n", toggle.Pressed())
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "toggle",
		Short: "Flip the theme and persist the new choice",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			toggle, store, err := o.openToggle(cmd.Context())
			if err != nil {
				return err
			}
			defer closeStore(store)

			mode, err := toggle.Toggle(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "✅ Theme set to %s\n", mode)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "reset",
		Short: "Forget the stored choice and follow the system signal again",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := storage.Open(o.cfg.Storage.Backend, o.cfg.Storage.Path)
			if err != nil {
				return fmt.Errorf("opening preference store: %w", err)
			}
			defer closeStore(store)

			if err := store.Delete(cmd.Context(), theme.PreferenceKey); err != nil {
				return fmt.Errorf("clearing theme preference: %w", err)
			}

			toggle, err := theme.New(cmd.Context(), store, theme.ForSystem(o.cfg.Theme.System))
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "✅ Theme preference cleared (now %s)\n", toggle.Mode())
			return nil
		},
	})

	return cmd
}
