package mailer_test

import (
	"testing"

	"github.com/JaimeStill/courier/pkg/mailer"
)

func TestConfigFinalize(t *testing.T) {
	t.Run("applies defaults", func(t *testing.T) {
		c := mailer.Config{}
		if err := c.Finalize(nil); err != nil {
			t.Fatalf("Finalize error: %v", err)
		}

		if c.Backend != mailer.BackendLog {
			t.Errorf("backend = %q, want log", c.Backend)
		}
		if c.Port != 587 {
			t.Errorf("port = %d, want 587", c.Port)
		}
		if c.From != "courier@localhost" {
			t.Errorf("from = %q", c.From)
		}
	})

	t.Run("smtp backend requires a host", func(t *testing.T) {
		c := mailer.Config{Backend: mailer.BackendSMTP}
		if err := c.Finalize(nil); err == nil {
			t.Error("expected error for smtp backend without host")
		}

		c = mailer.Config{Backend: mailer.BackendSMTP, Host: "smtp.example.com"}
		if err := c.Finalize(nil); err != nil {
			t.Errorf("Finalize error: %v", err)
		}
	})

	t.Run("rejects unknown backends", func(t *testing.T) {
		c := mailer.Config{Backend: "carrier-pigeon"}
		if err := c.Finalize(nil); err == nil {
			t.Error("expected error for unknown backend")
		}
	})

	t.Run("environment overrides file values", func(t *testing.T) {
		t.Setenv("TEST_MAIL_BACKEND", "smtp")
		t.Setenv("TEST_MAIL_HOST", "smtp.example.com")
		t.Setenv("TEST_MAIL_PORT", "2525")

		c := mailer.Config{Backend: mailer.BackendLog}
		env := &mailer.Env{
			Backend: "TEST_MAIL_BACKEND",
			Host:    "TEST_MAIL_HOST",
			Port:    "TEST_MAIL_PORT",
		}

		if err := c.Finalize(env); err != nil {
			t.Fatalf("Finalize error: %v", err)
		}

		if c.Backend != mailer.BackendSMTP {
			t.Errorf("backend = %q, want smtp", c.Backend)
		}
		if c.Host != "smtp.example.com" {
			t.Errorf("host = %q", c.Host)
		}
		if c.Port != 2525 {
			t.Errorf("port = %d, want 2525", c.Port)
		}
	})
}

func TestConfigMerge(t *testing.T) {
	base := mailer.Config{Backend: mailer.BackendLog, Port: 587, From: "courier@localhost"}
	overlay := mailer.Config{Backend: mailer.BackendSMTP, Host: "smtp.example.com", Username: "mailer"}

	base.Merge(&overlay)

	if base.Backend != mailer.BackendSMTP {
		t.Errorf("backend = %q, want smtp", base.Backend)
	}
	if base.Host != "smtp.example.com" {
		t.Errorf("host = %q", base.Host)
	}
	if base.Username != "mailer" {
		t.Errorf("username = %q", base.Username)
	}
	if base.Port != 587 {
		t.Errorf("port = %d, zero overlay field should not overwrite", base.Port)
	}
	if base.From != "courier@localhost" {
		t.Errorf("from = %q, zero overlay field should not overwrite", base.From)
	}
}
