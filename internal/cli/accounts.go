package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/telesign/apiclient/config"
)

func newAccountsCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "accounts",
		Short: "List the accounts defined in the configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := o.configPath()
			if path == "" {
				return errors.New("no configuration file found, use --config")
			}

			names, err := config.ListAccounts(path)
			if err != nil {
				return err
			}

			if o.jsonOutput {
				return printJSON(cmd.OutOrStdout(), map[string]interface{}{
					"config_file": path,
					"accounts":    names,
				})
			}

			for _, n := range names {
				fmt.Fprintln(cmd.OutOrStdout(), n)
			}

			return nil
		},
	}
}
