package cli

import (
	"github.com/spf13/cobra"
	"github.com/telesign/apiclient/common"
	"github.com/telesign/apiclient/verify"
)

func newVerifyCmd(o *options) *cobra.Command {
	var (
		code     string
		language string
		template string
	)

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Send and check one time passcodes",
	}

	service := func() (*verify.Service, func(), error) {
		client, p, err := o.client()
		if err != nil {
			return nil, nil, err
		}

		s, err := newVerifyService(client, o.restEndpoint(p), o.mobileEndpoint(p))
		if err != nil {
			client.Close()
			return nil, nil, err
		}

		return s, client.Close, nil
	}

	smsCmd := &cobra.Command{
		Use:   "sms <phone_number>",
		Short: "Send a verification code by SMS",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, done, err := service()
			if err != nil {
				return err
			}
			defer done()

			res, err := s.SMS(cmd.Context(), args[0], verify.SMSOptions{
				VerifyCode: code,
				Language:   language,
				Template:   template,
			})
			if err != nil {
				return err
			}

			return o.printResponse(cmd.OutOrStdout(), res.Response, map[string]string{"verify_code": res.VerifyCode})
		},
	}
	smsCmd.Flags().StringVar(&template, "template", "", "Message template, e.g. \"Your code is $$CODE$$\"")

	callCmd := &cobra.Command{
		Use:   "call <phone_number>",
		Short: "Send a verification code by voice call",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, done, err := service()
			if err != nil {
				return err
			}
			defer done()

			res, err := s.Call(cmd.Context(), args[0], verify.CallOptions{
				VerifyCode: code,
				Language:   language,
			})
			if err != nil {
				return err
			}

			return o.printResponse(cmd.OutOrStdout(), res.Response, map[string]string{"verify_code": res.VerifyCode})
		},
	}

	for _, c := range []*cobra.Command{smsCmd, callCmd} {
		c.Flags().StringVar(&code, "code", "", "Verification code to send (generated when empty)")
		c.Flags().StringVar(&language, "language", verify.DefaultLanguage, "Language of the message")
	}

	statusCmd := &cobra.Command{
		Use:   "status <reference_id>",
		Short: "Retrieve the status of a verification, optionally checking a code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, done, err := service()
			if err != nil {
				return err
			}
			defer done()

			res, err := s.Status(cmd.Context(), args[0], code)
			if err != nil {
				return err
			}

			return o.printResponse(cmd.OutOrStdout(), res, nil)
		},
	}
	statusCmd.Flags().StringVar(&code, "code", "", "Code entered by the end user")

	cmd.AddCommand(smsCmd, callCmd, statusCmd)

	return cmd
}

// newVerifyService keeps the default endpoints unless overridden.
func newVerifyService(client *common.Client, rest, mobile string) (*verify.Service, error) {
	s, err := verify.NewService("", client)
	if err != nil {
		return nil, err
	}

	if rest != "" {
		if s.Caller, err = common.NewCaller(rest, client); err != nil {
			return nil, err
		}
	}

	if mobile != "" {
		if s.MobileCaller, err = common.NewCaller(mobile, client); err != nil {
			return nil, err
		}
	}

	return s, nil
}
