// Copyright 2023 Contributors to the Veraison project.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/telesign/apiclient/auth"
	"github.com/telesign/apiclient/common"
)

// DefaultAccount is the account selected when none is named.
const DefaultAccount = "default"

// Profile is everything needed to talk to TeleSign on behalf of one
// account.
type Profile struct {
	Name string `mapstructure:"-"`

	CustomerID string `mapstructure:"customer_id" validate:"required"`
	APIKey     string `mapstructure:"api_key" validate:"required,base64"`

	RestEndpoint   string `mapstructure:"rest_endpoint" validate:"omitempty,url"`
	MobileEndpoint string `mapstructure:"mobile_endpoint" validate:"omitempty,url"`

	Timeout time.Duration `mapstructure:"timeout" validate:"gte=0"`
	Proxy   Proxy         `mapstructure:"proxy"`

	// AuthMethod is one of hmac (default) or basic.
	AuthMethod string `mapstructure:"auth_method" validate:"omitempty,oneof=hmac tsa hmac-sha256 basic"`
}

type Proxy struct {
	URL      string `mapstructure:"url" validate:"omitempty,url"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

func (o Profile) String() string {
	return fmt.Sprintf("Profile{Name: %s, CustomerID: %s, RestEndpoint: %s}", o.Name, o.CustomerID, o.RestEndpoint)
}

// Validate checks that the profile is usable, reporting the first offending
// field.
func (o Profile) Validate() error {
	err := validate.Struct(o)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}

	return fmt.Errorf("invalid profile %q: %s failed %q validation", o.Name, verrs[0].Field(), verrs[0].Tag())
}

func (o Profile) Credential() auth.Credential {
	return auth.Credential{CustomerID: o.CustomerID, APIKey: o.APIKey}
}

// Authenticator returns the request signer selected by AuthMethod.
func (o Profile) Authenticator() (auth.IAuthenticator, error) {
	var m auth.Method
	if err := m.Set(o.AuthMethod); err != nil {
		return nil, err
	}

	return auth.New(m, map[string]interface{}{
		"customer_id": o.CustomerID,
		"api_key":     o.APIKey,
	})
}

func (o Profile) ClientConfig() common.ClientConfig {
	return common.ClientConfig{
		Timeout:       o.Timeout,
		ProxyURL:      o.Proxy.URL,
		ProxyUsername: o.Proxy.Username,
		ProxyPassword: o.Proxy.Password,
	}
}

// NewClient builds a signing Client out of the profile.
func (o Profile) NewClient() (*common.Client, error) {
	a, err := o.Authenticator()
	if err != nil {
		return nil, err
	}

	return common.NewClientWithConfig(a, o.ClientConfig())
}
