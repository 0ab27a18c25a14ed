package cli

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/telesign/apiclient/common"
	"github.com/telesign/apiclient/config"
)

// dotEnvFile is loaded, when present, before any configuration is read.
// Variables already set in the environment win.
const dotEnvFile = ".env"

func loadDotEnv() error {
	err := godotenv.Load(dotEnvFile)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// configPath returns the --config value, or the default XML file when it
// exists. An empty result means environment-only configuration.
func (o *options) configPath() string {
	if o.configFile != "" {
		return o.configFile
	}

	p, err := config.DefaultPath()
	if err != nil {
		return ""
	}

	if _, err := os.Stat(p); err != nil {
		return ""
	}

	return p
}

func (o *options) profile() (*config.Profile, error) {
	p, err := config.Load(o.configPath(), o.account)
	if err != nil {
		return nil, err
	}

	if o.authMethod != "" {
		p.AuthMethod = string(o.authMethod)
	}

	if o.timeout > 0 {
		p.Timeout = o.timeout
	}

	return p, nil
}

func (o *options) logger() zerolog.Logger {
	level := zerolog.InfoLevel
	if o.verbose {
		level = zerolog.DebugLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// client builds the signing client along with the profile it was built from.
func (o *options) client() (*common.Client, *config.Profile, error) {
	p, err := o.profile()
	if err != nil {
		return nil, nil, err
	}

	a, err := p.Authenticator()
	if err != nil {
		return nil, nil, err
	}

	logger := o.logger()

	cfg := p.ClientConfig()
	cfg.Source = "telesign_cli"
	cfg.SDKVersionOrigin = common.Version
	cfg.Logger = &logger

	c, err := common.NewClientWithConfig(a, cfg)
	if err != nil {
		return nil, nil, err
	}

	return c, p, nil
}

// restEndpoint picks the --endpoint flag over the profile's endpoint.
func (o *options) restEndpoint(p *config.Profile) string {
	if o.endpoint != "" {
		return o.endpoint
	}
	return p.RestEndpoint
}

func (o *options) mobileEndpoint(p *config.Profile) string {
	if o.endpoint != "" {
		return o.endpoint
	}
	return p.MobileEndpoint
}
