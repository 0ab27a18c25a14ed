package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/telesign/apiclient/auth"
	"github.com/telesign/apiclient/common"
)

var ErrAlreadyHandled = errors.New("already handled")

var okLabel = color.New(color.FgGreen)
var errorLabel = color.New(color.FgRed)
var keyLabel = color.New(color.FgCyan)

// options holds the global flags
type options struct {
	configFile string
	account    string
	endpoint   string
	authMethod auth.Method
	timeout    time.Duration
	jsonOutput bool
	verbose    bool
}

// NewRootCmd builds the telesign command tree.
func NewRootCmd() *cobra.Command {
	o := &options{}

	rootCmd := &cobra.Command{
		Use:   "telesign [command] [flags]",
		Short: "TeleSign CLI - send messages, calls and verifications through the TeleSign REST API",
		Long: `TeleSign CLI is a command line interface to the TeleSign REST API.
Credentials are read from a configuration file (TeleSign.config.xml or a
YAML/JSON/TOML profile file) and TELESIGN_* environment variables, which may
also be set in a .env file.

Examples:
  # Send an SMS
  telesign sms 15555555555 "Your package has shipped" --type ARN

  # Get phone information
  telesign phoneid 15555555555 --json

  # Send a verification code by SMS and check it
  telesign verify sms 15555555555
  telesign verify status <reference_id> --code 12345`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadDotEnv()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&o.configFile, "config", "", "Path to configuration file (default TeleSign.config.xml next to the executable)")
	flags.StringVarP(&o.account, "account", "a", "", "Account to use from the configuration file")
	flags.StringVar(&o.endpoint, "endpoint", "", "Override the API endpoint, e.g. to target a mock server")
	flags.Var(&o.authMethod, "auth-method", "Authentication method: hmac or basic")
	flags.DurationVar(&o.timeout, "timeout", 0, "Request timeout (default 10s)")
	flags.BoolVarP(&o.jsonOutput, "json", "j", false, "Output in JSON format")
	flags.BoolVarP(&o.verbose, "verbose", "v", false, "Log requests to stderr")

	rootCmd.AddCommand(
		newSMSCmd(o),
		newSMSStatusCmd(o),
		newCallCmd(o),
		newCallStatusCmd(o),
		newPhoneIDCmd(o),
		newScoreCmd(o),
		newAppVerifyStatusCmd(o),
		newVerifyCmd(o),
		newTelebureauCmd(o),
		newSignCmd(o),
		newAccountsCmd(o),
		newVersionCmd(o),
	)

	return rootCmd
}

// Execute runs the telesign command. This is called by main.main().
func Execute() {
	rootCmd := NewRootCmd()

	err := rootCmd.Execute()
	if err != nil {
		if errors.Is(err, ErrAlreadyHandled) {
			os.Exit(1)
		}

		jsonOutput, _ := rootCmd.PersistentFlags().GetBool("json")
		if jsonOutput {
			printJSON(os.Stdout, map[string]string{"error": err.Error()})
		} else {
			errorLabel.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func newVersionCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of the TeleSign CLI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ua := common.BuildUserAgent("", "", "")

			if o.jsonOutput {
				return printJSON(cmd.OutOrStdout(), map[string]string{
					"version":    common.Version,
					"user_agent": ua,
				})
			}

			fmt.Fprintf(cmd.OutOrStdout(), "telesign CLI %s\n", common.Version)
			fmt.Fprintf(cmd.OutOrStdout(), "User-Agent: %s\n", ua)
			return nil
		},
	}
}

func printJSON(w io.Writer, data interface{}) error {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(jsonData))
	return err
}
