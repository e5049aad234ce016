// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"

	"gocoreutils/pkg/types"
)

var (
	// ErrInvalidHelpWidth is returned when a help width is negative.
	ErrInvalidHelpWidth = errors.New("invalid help width")
	// ErrInvalidHTTPDConfig is the sentinel error wrapped by InvalidHTTPDConfigError.
	ErrInvalidHTTPDConfig = errors.New("invalid httpd config")
	// ErrInvalidSMTPDConfig is the sentinel error wrapped by InvalidSMTPDConfigError.
	ErrInvalidSMTPDConfig = errors.New("invalid smtpd config")
	// ErrInvalidSendmailConfig is the sentinel error wrapped by InvalidSendmailConfigError.
	ErrInvalidSendmailConfig = errors.New("invalid sendmail config")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// Config holds the application configuration.
	Config struct {
		// HelpWidth is the column the command listing in --help wraps at.
		// Zero means detect the terminal width, falling back to 78.
		HelpWidth int `mapstructure:"help_width" toml:"help_width"`
		// HTTPD configures the httpd command defaults.
		HTTPD HTTPDConfig `mapstructure:"httpd" toml:"httpd"`
		// SMTPD configures the smtpd command defaults.
		SMTPD SMTPDConfig `mapstructure:"smtpd" toml:"smtpd"`
		// Sendmail configures the sendmail command defaults.
		Sendmail SendmailConfig `mapstructure:"sendmail" toml:"sendmail"`
		// Wget configures the wget command defaults.
		Wget WgetConfig `mapstructure:"wget" toml:"wget"`
	}

	// HTTPDConfig holds the default listen address of the httpd command.
	HTTPDConfig struct {
		// Address is the interface to bind to. Empty means all interfaces.
		Address string `mapstructure:"address" toml:"address"`
		// Port is the port to listen on.
		Port types.ListenPort `mapstructure:"port" toml:"port"`
	}

	// SMTPDConfig holds the default listen and relay addresses of the smtpd
	// command. An empty RemoteAddress disables relaying; received messages
	// are logged instead.
	SMTPDConfig struct {
		// LocalAddress is the interface to accept mail on. Empty means all
		// interfaces.
		LocalAddress string `mapstructure:"local_address" toml:"local_address"`
		// LocalPort is the port to accept mail on.
		LocalPort types.ListenPort `mapstructure:"local_port" toml:"local_port"`
		// RemoteAddress is the host to relay accepted mail to.
		RemoteAddress string `mapstructure:"remote_address" toml:"remote_address"`
		// RemotePort is the port to relay accepted mail to.
		RemotePort types.ListenPort `mapstructure:"remote_port" toml:"remote_port"`
	}

	// SendmailConfig holds the default submission server of the sendmail
	// command.
	SendmailConfig struct {
		// Address is the SMTP server to submit to.
		Address string `mapstructure:"address" toml:"address"`
		// Port is the SMTP server port.
		Port types.ListenPort `mapstructure:"port" toml:"port"`
	}

	// WgetConfig holds the defaults of the wget command.
	WgetConfig struct {
		// UserAgent overrides the User-Agent header sent with each request.
		// Empty means "gocoreutils/VERSION".
		UserAgent string `mapstructure:"user_agent" toml:"user_agent"`
	}

	// InvalidHelpWidthError is returned when a Config carries a negative
	// help width. It wraps ErrInvalidHelpWidth for errors.Is() compatibility.
	InvalidHelpWidthError struct {
		Value int
	}

	// InvalidHTTPDConfigError is returned when an HTTPDConfig has invalid fields.
	// It wraps ErrInvalidHTTPDConfig for errors.Is() compatibility and collects
	// field-level validation errors.
	InvalidHTTPDConfigError struct {
		FieldErrors []error
	}

	// InvalidSMTPDConfigError is returned when an SMTPDConfig has invalid fields.
	// It wraps ErrInvalidSMTPDConfig for errors.Is() compatibility and collects
	// field-level validation errors.
	InvalidSMTPDConfigError struct {
		FieldErrors []error
	}

	// InvalidSendmailConfigError is returned when a SendmailConfig has invalid
	// fields. It wraps ErrInvalidSendmailConfig for errors.Is() compatibility
	// and collects field-level validation errors.
	InvalidSendmailConfigError struct {
		FieldErrors []error
	}

	// InvalidConfigError is returned when a Config has invalid fields.
	// It wraps ErrInvalidConfig for errors.Is() compatibility and collects
	// field-level validation errors from all sub-components.
	InvalidConfigError struct {
		FieldErrors []error
	}
)

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		HelpWidth: 78,
		HTTPD: HTTPDConfig{
			Address: "",
			Port:    8000,
		},
		SMTPD: SMTPDConfig{
			LocalAddress:  "",
			LocalPort:     8025,
			RemoteAddress: "",
			RemotePort:    8025,
		},
		Sendmail: SendmailConfig{
			Address: "localhost",
			Port:    25,
		},
		Wget: WgetConfig{
			UserAgent: "",
		},
	}
}

// IsValid returns whether the HTTPDConfig has valid fields.
// It delegates to Port.Validate(); Address needs no validation.
func (c HTTPDConfig) IsValid() (bool, []error) {
	var errs []error
	if err := c.Port.Validate(); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return false, []error{&InvalidHTTPDConfigError{FieldErrors: errs}}
	}
	return true, nil
}

// Error implements the error interface for InvalidHTTPDConfigError.
func (e *InvalidHTTPDConfigError) Error() string {
	return fmt.Sprintf("invalid httpd config: %d field error(s)", len(e.FieldErrors))
}

// Unwrap returns ErrInvalidHTTPDConfig and the field errors for errors.Is()
// compatibility.
func (e *InvalidHTTPDConfigError) Unwrap() []error {
	return append([]error{ErrInvalidHTTPDConfig}, e.FieldErrors...)
}

// IsValid returns whether the SMTPDConfig has valid fields.
// It delegates to LocalPort.Validate() and RemotePort.Validate(); the
// address fields need no validation.
func (c SMTPDConfig) IsValid() (bool, []error) {
	var errs []error
	if err := c.LocalPort.Validate(); err != nil {
		errs = append(errs, err)
	}
	if err := c.RemotePort.Validate(); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return false, []error{&InvalidSMTPDConfigError{FieldErrors: errs}}
	}
	return true, nil
}

// Error implements the error interface for InvalidSMTPDConfigError.
func (e *InvalidSMTPDConfigError) Error() string {
	return fmt.Sprintf("invalid smtpd config: %d field error(s)", len(e.FieldErrors))
}

// Unwrap returns ErrInvalidSMTPDConfig and the field errors for errors.Is()
// compatibility.
func (e *InvalidSMTPDConfigError) Unwrap() []error {
	return append([]error{ErrInvalidSMTPDConfig}, e.FieldErrors...)
}

// IsValid returns whether the SendmailConfig has valid fields.
// It delegates to Port.Validate(); Address needs no validation.
func (c SendmailConfig) IsValid() (bool, []error) {
	var errs []error
	if err := c.Port.Validate(); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return false, []error{&InvalidSendmailConfigError{FieldErrors: errs}}
	}
	return true, nil
}

// Error implements the error interface for InvalidSendmailConfigError.
func (e *InvalidSendmailConfigError) Error() string {
	return fmt.Sprintf("invalid sendmail config: %d field error(s)", len(e.FieldErrors))
}

// Unwrap returns ErrInvalidSendmailConfig and the field errors for errors.Is()
// compatibility.
func (e *InvalidSendmailConfigError) Unwrap() []error {
	return append([]error{ErrInvalidSendmailConfig}, e.FieldErrors...)
}

// Error implements the error interface for InvalidHelpWidthError.
func (e *InvalidHelpWidthError) Error() string {
	return fmt.Sprintf("invalid help width %d: must be 0 (auto-detect) or positive", e.Value)
}

// Unwrap returns ErrInvalidHelpWidth for errors.Is() compatibility.
func (e *InvalidHelpWidthError) Unwrap() error { return ErrInvalidHelpWidth }

// IsValid returns whether the Config has valid fields.
// It checks HelpWidth and delegates to HTTPD.IsValid(), SMTPD.IsValid(),
// and Sendmail.IsValid(). Wget has no constrained fields.
func (c Config) IsValid() (bool, []error) {
	var errs []error
	if c.HelpWidth < 0 {
		errs = append(errs, &InvalidHelpWidthError{Value: c.HelpWidth})
	}
	if valid, fieldErrs := c.HTTPD.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if valid, fieldErrs := c.SMTPD.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if valid, fieldErrs := c.Sendmail.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if len(errs) > 0 {
		return false, []error{&InvalidConfigError{FieldErrors: errs}}
	}
	return true, nil
}

// Error implements the error interface for InvalidConfigError.
func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("invalid config: %d field error(s)", len(e.FieldErrors))
}

// Unwrap returns ErrInvalidConfig and the field errors for errors.Is()
// compatibility.
func (e *InvalidConfigError) Unwrap() []error {
	return append([]error{ErrInvalidConfig}, e.FieldErrors...)
}
