// Package config handles input from etc/*.toml files
package config

import (
	"bytes"
	"encoding/json"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

const (
	// EnvConfigJSON names the environment variable holding a JSON config override.
	EnvConfigJSON = "GOFRONTPAGE_CONFIG_JSON"

	defaultShutDownTime = 5
	defaultPostsPerPage = 10
	defaultCacheTTL     = 30 * time.Second
	defaultSessionTTL   = 12 * time.Hour
	defaultHomeType     = "post"
)

// ReadConfig from config file.
func ReadConfig(path string) (Config, error) {
	var (
		c             Config
		JSONConfigEnv string
		err           error
	)

	if path == "" {
		path = "./etc/"
	}

	if _, err = toml.DecodeFile(path+"main.toml", &c); err != nil {
		return Config{}, errors.Wrap(err, "failed to read main config file")
	}

	// override it from env
	JSONConfigEnv = os.Getenv(EnvConfigJSON)

	if JSONConfigEnv != "" {
		c, err = decodeAndMergeConfig(c, JSONConfigEnv)
		if err != nil {
			return c, err
		}
	}

	err = validate(&c)

	return c, err
}

func decodeAndMergeConfig(c Config, configAsJSON string) (Config, error) {
	if err := json.Unmarshal([]byte(configAsJSON), &c); err != nil {
		return Config{}, errors.Wrap(err, "failed to decode "+EnvConfigJSON)
	}

	return c, nil
}

// DumpConfig config as TOML String.
func DumpConfig(c *Config) (string, error) {
	var buffer bytes.Buffer

	if err := toml.NewEncoder(&buffer).Encode(c); err != nil {
		return "", err //nolint: wrapcheck
	}

	return buffer.String(), nil
}

// DumpConfigJSON config as JSON String.
func DumpConfigJSON(c *Config) (string, error) {
	var buffer bytes.Buffer

	j := json.NewEncoder(&buffer)
	j.SetIndent("", "  ")

	if err := j.Encode(c); err != nil {
		return "", err //nolint: wrapcheck
	}

	return buffer.String(), nil
}

// validate checks the required settings and fills in defaults for the optional ones.
func validate(c *Config) error {
	invalidErrMessage := "invalid config"

	if c.Webserver.Port == 0 {
		return errors.Wrap(ErrWebServerPortCanNotBeZero, invalidErrMessage)
	}

	if c.Webserver.URL == "" {
		return errors.Wrap(ErrEmptyURL, invalidErrMessage)
	}

	if c.Webserver.ShutDownTime == 0 {
		c.Webserver.ShutDownTime = defaultShutDownTime
	}

	if c.Webserver.Session.ExpiryTime <= 0 {
		c.Webserver.Session.ExpiryTime = defaultSessionTTL
	}

	if c.Site.HomeType == "" {
		c.Site.HomeType = defaultHomeType
	}

	if c.Site.PostsPerPage <= 0 {
		c.Site.PostsPerPage = defaultPostsPerPage
	}

	if c.Site.OptionsCacheTTL <= 0 {
		c.Site.OptionsCacheTTL = defaultCacheTTL
	}

	if len(c.ContentTypes) == 0 {
		c.ContentTypes = DefaultContentTypes()
	}

	seen := make(map[string]struct{}, len(c.ContentTypes))
	for _, ct := range c.ContentTypes {
		if ct.Name == "" {
			return errors.Wrap(ErrContentTypeNameEmpty, invalidErrMessage)
		}

		if _, dup := seen[ct.Name]; dup {
			return errors.Wrapf(ErrContentTypeDuplicate, "%s: %s", invalidErrMessage, ct.Name)
		}

		seen[ct.Name] = struct{}{}
	}

	return nil
}
