package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/trunkit/trunkit/internal/config"
	"github.com/trunkit/trunkit/internal/service"
)

// newInitCmd creates the init command
func newInitCmd() *cobra.Command {
	var noConfirm bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the workflow configuration to the repository",
		Long: `Write the workflow configuration to the repository's git config.

Every option resolves flag over stored value over default; options not passed
as flags keep their stored value on re-initialization. Without --no-confirm
each remaining option is confirmed interactively on a terminal.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log, err := newLogger()
			if err != nil {
				return err
			}
			store, _, _, err := openStore(cmd.Context(), log)
			if err != nil {
				return err
			}
			prompter := service.NewPrompter()
			confirm := !noConfirm && service.Interactive()
			for _, opt := range config.Options {
				flag := cmd.Flags().Lookup(opt.Name)
				current := store.Get(opt.Key)
				if current == "" {
					current = opt.Default
				}
				value := current
				switch {
				case flag.Changed:
					value = flag.Value.String()
				case confirm:
					value, err = prompter.Input(fmt.Sprintf("%s (%s)", opt.Name, opt.Description), current)
					if err != nil {
						return err
					}
				}
				normalized, err := config.Normalize(opt, value)
				if err != nil {
					return err
				}
				if err := store.Set(opt.Key, normalized); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&noConfirm, "no-confirm", false, "Accept values without interactive confirmation")
	for _, opt := range config.Options {
		cmd.Flags().String(opt.Name, "", opt.Description)
	}
	return cmd
}
