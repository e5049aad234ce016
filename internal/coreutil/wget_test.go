// SPDX-License-Identifier: MPL-2.0

package coreutil

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gocoreutils/internal/config"
)

func TestWgetFetchesToStdout(t *testing.T) {
	t.Parallel()

	var gotAgent string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAgent = r.Header.Get("User-Agent")
		_, _ = w.Write([]byte("hello from httptest\n"))
	}))
	defer srv.Close()

	hc, stdout, _ := testHandlerContext(t)
	if err := runCommand(t, newWgetCommand(config.WgetConfig{}), hc, srv.URL); err != nil {
		t.Fatalf("wget returned error: %v", err)
	}

	out := stdout.String()
	if !strings.Contains(out, "Getting 20 bytes from "+srv.URL) {
		t.Errorf("output = %q, want the transfer announcement", out)
	}
	if !strings.Contains(out, "hello from httptest\n") {
		t.Errorf("output = %q, want the body", out)
	}
	if !strings.Contains(out, "Done") {
		t.Errorf("output = %q, want Done", out)
	}
	if want := "gocoreutils/" + Version; gotAgent != want {
		t.Errorf("User-Agent = %q, want %q", gotAgent, want)
	}
}

func TestWgetWritesOutputDocument(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(r.URL.Path + "\n"))
	}))
	defer srv.Close()

	hc, stdout, _ := testHandlerContext(t)
	err := runCommand(t, newWgetCommand(config.WgetConfig{}), hc,
		"-O", "combined.txt", srv.URL+"/first", srv.URL+"/second")
	if err != nil {
		t.Fatalf("wget -O returned error: %v", err)
	}

	got, err := os.ReadFile(filepath.Join(hc.Dir, "combined.txt"))
	if err != nil {
		t.Fatalf("output document missing: %v", err)
	}
	if string(got) != "/first\n/second\n" {
		t.Errorf("output document = %q, want %q", got, "/first\n/second\n")
	}
	if strings.Contains(stdout.String(), "/first") {
		t.Error("body should go to the output document, not stdout")
	}
}

func TestWgetCustomUserAgent(t *testing.T) {
	t.Parallel()

	var gotAgent string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAgent = r.Header.Get("User-Agent")
	}))
	defer srv.Close()

	hc, _, _ := testHandlerContext(t)
	err := runCommand(t, newWgetCommand(config.WgetConfig{UserAgent: "from-config/1"}), hc,
		"-u", "from-flag/2", srv.URL)
	if err != nil {
		t.Fatalf("wget returned error: %v", err)
	}
	if gotAgent != "from-flag/2" {
		t.Errorf("User-Agent = %q, want the flag to win over config", gotAgent)
	}
}

func TestWgetReportsHTTPErrors(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	hc, _, stderr := testHandlerContext(t)
	err := runCommand(t, newWgetCommand(config.WgetConfig{}), hc, srv.URL+"/missing")
	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("wget returned %v, want *ExitError", err)
	}
	if !strings.Contains(stderr.String(), "Error opening "+srv.URL+"/missing") {
		t.Errorf("stderr = %q, want the error to name the URL", stderr.String())
	}
}
