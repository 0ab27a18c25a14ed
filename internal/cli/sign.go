package cli

import (
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"github.com/telesign/apiclient/auth"
)

// newSignCmd prints the authentication headers of a request without sending
// it, to debug signatures against the ones computed by the service.
func newSignCmd(o *options) *cobra.Command {
	var (
		method      string
		resource    string
		body        string
		contentType string
		date        string
		nonce       string
	)

	cmd := &cobra.Command{
		Use:   "sign",
		Short: "Compute the TeleSign authentication headers of a request offline",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := o.profile()
			if err != nil {
				return err
			}

			method = strings.ToUpper(method)

			headers, err := auth.GenerateHeaders(p.CustomerID, p.APIKey, method, resource, body,
				auth.WithContentType(contentType),
				auth.WithDate(date),
				auth.WithNonce(nonce),
			)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()

			if o.jsonOutput {
				return printJSON(w, headers)
			}

			if o.verbose {
				keyLabel.Fprintln(w, "String to sign:")
				fmt.Fprintln(w, auth.StringToSign(method, headers[auth.HeaderContentType],
					headers[auth.HeaderDate], headers[auth.HeaderNonce], body, resource))
				fmt.Fprintln(w)
			}

			names := make([]string, 0, len(headers))
			for k := range headers {
				names = append(names, k)
			}
			sort.Strings(names)

			for _, k := range names {
				keyLabel.Fprintf(w, "%s: ", k)
				fmt.Fprintln(w, headers[k])
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&method, "method", "X", http.MethodPost, "HTTP method")
	cmd.Flags().StringVarP(&resource, "resource", "r", "", "Resource path, e.g. /v1/messaging")
	cmd.Flags().StringVarP(&body, "body", "d", "", "Encoded request body")
	cmd.Flags().StringVar(&contentType, "content-type", "", "Content type (derived from the method when empty)")
	cmd.Flags().StringVar(&date, "date", "", "RFC 2616 date (now when empty)")
	cmd.Flags().StringVar(&nonce, "nonce", "", "Nonce (random UUID when empty)")
	_ = cmd.MarkFlagRequired("resource")

	return cmd
}
