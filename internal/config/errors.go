package config

import (
	"errors"
)

var (
	// ErrEmptyURL error if config webserver.URL is empty.
	ErrEmptyURL = errors.New("toml config webserver.url can not be empty")

	// ErrWebServerPortCanNotBeZero error if config webserver listening port is 0.
	ErrWebServerPortCanNotBeZero = errors.New("toml config webserver.port listening port can not be 0")

	// ErrContentTypeNameEmpty error if a configured content type has no name.
	ErrContentTypeNameEmpty = errors.New("toml config contentTypes.name can not be empty")

	// ErrContentTypeDuplicate error if a content type name is configured twice.
	ErrContentTypeDuplicate = errors.New("toml config contentTypes.name must be unique")
)
