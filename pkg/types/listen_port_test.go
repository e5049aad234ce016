// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"testing"
)

func TestListenPort_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		port ListenPort
		want string
	}{
		{0, "0"},
		{80, "80"},
		{8025, "8025"},
		{65535, "65535"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()
			if got := tt.port.String(); got != tt.want {
				t.Errorf("ListenPort(%d).String() = %q, want %q", tt.port, got, tt.want)
			}
		})
	}
}

func TestListenPort_HostPort(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		host string
		port ListenPort
		want string
	}{
		{name: "host and port", host: "localhost", port: 25, want: "localhost:25"},
		{name: "empty host", host: "", port: 8000, want: ":8000"},
		{name: "ipv6 host is bracketed", host: "::1", port: 8025, want: "[::1]:8025"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.port.HostPort(tt.host); got != tt.want {
				t.Errorf("ListenPort(%d).HostPort(%q) = %q, want %q", tt.port, tt.host, got, tt.want)
			}
		})
	}
}

func TestListenPort_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		port      ListenPort
		wantValid bool
	}{
		{name: "zero means auto-select", port: 0, wantValid: true},
		{name: "common port", port: 8000, wantValid: true},
		{name: "max port", port: 65535, wantValid: true},
		{name: "negative", port: -1, wantValid: false},
		{name: "too large", port: 65536, wantValid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.port.Validate()
			if (err == nil) != tt.wantValid {
				t.Errorf("ListenPort(%d).Validate() error = %v, wantValid %v", tt.port, err, tt.wantValid)
			}
			if !tt.wantValid && !errors.Is(err, ErrInvalidListenPort) {
				t.Errorf("error does not wrap ErrInvalidListenPort: %v", err)
			}
		})
	}
}
