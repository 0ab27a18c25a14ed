package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/telesign/apiclient/appverify"
	"github.com/telesign/apiclient/common"
	"github.com/telesign/apiclient/messaging"
	"github.com/telesign/apiclient/phoneid"
	"github.com/telesign/apiclient/score"
	"github.com/telesign/apiclient/telebureau"
	"github.com/telesign/apiclient/voice"
)

// paramFlag collects repeated --param key=value flags.
type paramFlag []string

func addParamFlag(cmd *cobra.Command, p *paramFlag) {
	cmd.Flags().StringArrayVarP((*[]string)(p), "param", "p", nil, "Extra request parameter as key=value (repeatable)")
}

func (o paramFlag) params() (*common.Params, error) {
	p := common.NewParams()

	for _, kv := range o {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			return nil, fmt.Errorf("malformed parameter %q, expected key=value", kv)
		}
		p.Set(k, v)
	}

	return p, nil
}

func newSMSCmd(o *options) *cobra.Command {
	var (
		messageType string
		extra       paramFlag
	)

	cmd := &cobra.Command{
		Use:   "sms <phone_number> <message>",
		Short: "Send an SMS",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := extra.params()
			if err != nil {
				return err
			}

			client, p, err := o.client()
			if err != nil {
				return err
			}
			defer client.Close()

			service, err := messaging.NewService(o.restEndpoint(p), client)
			if err != nil {
				return err
			}

			res, err := service.Message(cmd.Context(), args[0], args[1], messageType, params)
			if err != nil {
				return err
			}

			return o.printResponse(cmd.OutOrStdout(), res, nil)
		},
	}

	cmd.Flags().StringVarP(&messageType, "type", "t", messaging.MessageTypeARN, "Message type: ARN, MKT or OTP")
	addParamFlag(cmd, &extra)

	return cmd
}

func newSMSStatusCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "sms-status <reference_id>",
		Short: "Retrieve the status of an SMS",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, p, err := o.client()
			if err != nil {
				return err
			}
			defer client.Close()

			service, err := messaging.NewService(o.restEndpoint(p), client)
			if err != nil {
				return err
			}

			res, err := service.Status(cmd.Context(), args[0], nil)
			if err != nil {
				return err
			}

			return o.printResponse(cmd.OutOrStdout(), res, nil)
		},
	}
}

func newCallCmd(o *options) *cobra.Command {
	var (
		messageType string
		extra       paramFlag
	)

	cmd := &cobra.Command{
		Use:   "call <phone_number> <message>",
		Short: "Place a text-to-speech voice call",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := extra.params()
			if err != nil {
				return err
			}

			client, p, err := o.client()
			if err != nil {
				return err
			}
			defer client.Close()

			service, err := voice.NewService(o.restEndpoint(p), client)
			if err != nil {
				return err
			}

			res, err := service.Call(cmd.Context(), args[0], args[1], messageType, params)
			if err != nil {
				return err
			}

			return o.printResponse(cmd.OutOrStdout(), res, nil)
		},
	}

	cmd.Flags().StringVarP(&messageType, "type", "t", messaging.MessageTypeARN, "Message type: ARN, MKT or OTP")
	addParamFlag(cmd, &extra)

	return cmd
}

func newCallStatusCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "call-status <reference_id>",
		Short: "Retrieve the status of a voice call",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, p, err := o.client()
			if err != nil {
				return err
			}
			defer client.Close()

			service, err := voice.NewService(o.restEndpoint(p), client)
			if err != nil {
				return err
			}

			res, err := service.Status(cmd.Context(), args[0], nil)
			if err != nil {
				return err
			}

			return o.printResponse(cmd.OutOrStdout(), res, nil)
		},
	}
}

func newPhoneIDCmd(o *options) *cobra.Command {
	var extra paramFlag

	cmd := &cobra.Command{
		Use:   "phoneid <phone_number>",
		Short: "Get carrier, location and device information about a phone number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := extra.params()
			if err != nil {
				return err
			}

			client, p, err := o.client()
			if err != nil {
				return err
			}
			defer client.Close()

			service, err := phoneid.NewService(o.restEndpoint(p), client)
			if err != nil {
				return err
			}

			res, err := service.PhoneID(cmd.Context(), args[0], params)
			if err != nil {
				return err
			}

			return o.printResponse(cmd.OutOrStdout(), res, nil)
		},
	}

	addParamFlag(cmd, &extra)

	return cmd
}

func newScoreCmd(o *options) *cobra.Command {
	var (
		event  string
		legacy bool
		extra  paramFlag
	)

	cmd := &cobra.Command{
		Use:   "score <phone_number>",
		Short: "Get a risk recommendation for a phone number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := extra.params()
			if err != nil {
				return err
			}

			client, _, err := o.client()
			if err != nil {
				return err
			}
			defer client.Close()

			// the profile endpoint serves the REST family, not detect
			service, err := score.NewService(o.endpoint, client)
			if err != nil {
				return err
			}

			var res *common.Response
			if legacy {
				res, err = service.LegacyScore(cmd.Context(), args[0], event, params)
			} else {
				res, err = service.Score(cmd.Context(), args[0], event, params)
			}
			if err != nil {
				return err
			}

			return o.printResponse(cmd.OutOrStdout(), res, nil)
		},
	}

	cmd.Flags().StringVarP(&event, "event", "e", score.EventCreate, "Account lifecycle event: create, sign-in, transact, update or delete")
	cmd.Flags().BoolVar(&legacy, "legacy", false, "Use the v1 Score API")
	addParamFlag(cmd, &extra)

	return cmd
}

func newAppVerifyStatusCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "appverify-status <external_id>",
		Short: "Retrieve the status of an App Verify transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, p, err := o.client()
			if err != nil {
				return err
			}
			defer client.Close()

			service, err := appverify.NewService(o.restEndpoint(p), client)
			if err != nil {
				return err
			}

			res, err := service.Status(cmd.Context(), args[0], nil)
			if err != nil {
				return err
			}

			return o.printResponse(cmd.OutOrStdout(), res, nil)
		},
	}
}

func newTelebureauCmd(o *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "telebureau",
		Short: "Report, retrieve and delete fraud events",
	}

	service := func() (*telebureau.Service, func(), error) {
		client, p, err := o.client()
		if err != nil {
			return nil, nil, err
		}

		s, err := telebureau.NewService(o.restEndpoint(p), client)
		if err != nil {
			client.Close()
			return nil, nil, err
		}

		return s, client.Close, nil
	}

	createCmd := &cobra.Command{
		Use:   "create <phone_number> <fraud_type> <occurred_at>",
		Short: "Report a fraud event",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, done, err := service()
			if err != nil {
				return err
			}
			defer done()

			res, err := s.Create(cmd.Context(), args[0], args[1], args[2], nil)
			if err != nil {
				return err
			}

			return o.printResponse(cmd.OutOrStdout(), res, nil)
		},
	}

	retrieveCmd := &cobra.Command{
		Use:   "retrieve <reference_id>",
		Short: "Retrieve a fraud event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, done, err := service()
			if err != nil {
				return err
			}
			defer done()

			res, err := s.Retrieve(cmd.Context(), args[0], nil)
			if err != nil {
				return err
			}

			return o.printResponse(cmd.OutOrStdout(), res, nil)
		},
	}

	deleteCmd := &cobra.Command{
		Use:   "delete <reference_id>",
		Short: "Delete a fraud event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, done, err := service()
			if err != nil {
				return err
			}
			defer done()

			res, err := s.Delete(cmd.Context(), args[0], nil)
			if err != nil {
				return err
			}

			return o.printResponse(cmd.OutOrStdout(), res, nil)
		},
	}

	cmd.AddCommand(createCmd, retrieveCmd, deleteCmd)

	return cmd
}
