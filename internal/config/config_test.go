package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/JaimeStill/courier/internal/config"
)

const baseConfig = `
shutdown_timeout = "30s"
version = "0.1.0"

[server]
host = "0.0.0.0"
port = 8080
read_timeout = "1m"
write_timeout = "15m"
shutdown_timeout = "30s"

[database]
host = "localhost"
port = 5432
name = "courier"
user = "courier"
password = "courier"
ssl_mode = "disable"

[storage]
backend = "memory"
container_name = "artifacts"

[mail]
backend = "log"

[workflow]
target_language = "French"
signature = "The Translation Team"
download_workers = 4

[workflow.agent]
name = "test-agent"

[workflow.agent.provider]
name = "ollama"
base_url = "http://localhost:11434"

[workflow.agent.model]
name = "llama3.1:8b"

[api]
base_path = "/api"
max_submit_size = "50MB"

[api.cors]
enabled = false
`

const overlayConfig = `
[server]
port = 9090

[database]
host = "prodhost"

[workflow]
target_language = "German"
`

const minimalConfig = `
[database]
name = "courier"
user = "courier"
`

func writeConfig(t *testing.T, dir, filename, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, filename), []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", filename, err)
	}
}

func chdir(t *testing.T, dir string) {
	t.Helper()
	orig, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { os.Chdir(orig) })
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "config.toml", baseConfig)
	chdir(t, dir)

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("server port: got %d, want 8080", cfg.Server.Port)
	}
	if cfg.Database.Host != "localhost" {
		t.Errorf("db host: got %s, want localhost", cfg.Database.Host)
	}
	if cfg.Storage.Backend != "memory" {
		t.Errorf("storage backend: got %s, want memory", cfg.Storage.Backend)
	}
	if cfg.Mail.Backend != "log" {
		t.Errorf("mail backend: got %s, want log", cfg.Mail.Backend)
	}
	if cfg.Workflow.TargetLanguage != "French" {
		t.Errorf("target language: got %s, want French", cfg.Workflow.TargetLanguage)
	}
	if cfg.API.BasePath != "/api" {
		t.Errorf("api base_path: got %s, want /api", cfg.API.BasePath)
	}
}

func TestLoadWithOverlay(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "config.toml", baseConfig)
	writeConfig(t, dir, "config.staging.toml", overlayConfig)
	chdir(t, dir)

	t.Setenv("COURIER_ENV", "staging")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("server port: got %d, want 9090 (from overlay)", cfg.Server.Port)
	}
	if cfg.Database.Host != "prodhost" {
		t.Errorf("db host: got %s, want prodhost (from overlay)", cfg.Database.Host)
	}
	if cfg.Database.Port != 5432 {
		t.Errorf("db port: got %d, want 5432 (from base)", cfg.Database.Port)
	}
	if cfg.Workflow.TargetLanguage != "German" {
		t.Errorf("target language: got %s, want German (from overlay)", cfg.Workflow.TargetLanguage)
	}
	if cfg.Workflow.Signature != "The Translation Team" {
		t.Errorf("signature: got %s, want value from base", cfg.Workflow.Signature)
	}
}

func TestLoadEnvVarOverrides(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "config.toml", baseConfig)
	chdir(t, dir)

	t.Setenv("COURIER_VERSION", "2.0.0")
	t.Setenv("COURIER_SERVER_PORT", "3000")
	t.Setenv("COURIER_WORKFLOW_TARGET_LANGUAGE", "Spanish")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Version != "2.0.0" {
		t.Errorf("version: got %s, want 2.0.0", cfg.Version)
	}
	if cfg.Server.Port != 3000 {
		t.Errorf("server port: got %d, want 3000", cfg.Server.Port)
	}
	if cfg.Workflow.TargetLanguage != "Spanish" {
		t.Errorf("target language: got %s, want Spanish", cfg.Workflow.TargetLanguage)
	}
}

func TestLoadNoConfigFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	t.Setenv("COURIER_DB_NAME", "testdb")
	t.Setenv("COURIER_DB_USER", "testuser")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load without config.toml failed: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("server port default: got %d, want 8080", cfg.Server.Port)
	}
	if cfg.Database.Name != "testdb" {
		t.Errorf("db name from env: got %s, want testdb", cfg.Database.Name)
	}
	if cfg.Storage.Backend != "memory" {
		t.Errorf("storage backend default: got %s, want memory", cfg.Storage.Backend)
	}
	if cfg.Mail.Backend != "log" {
		t.Errorf("mail backend default: got %s, want log", cfg.Mail.Backend)
	}
	if cfg.Workflow.DownloadWorkers != 4 {
		t.Errorf("download workers default: got %d, want 4", cfg.Workflow.DownloadWorkers)
	}
}

func TestLoadInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "config.toml", "shutdown_timeout = [broken")
	chdir(t, dir)

	if _, err := config.Load(); err == nil {
		t.Fatal("expected error for invalid TOML")
	}
}

func TestEnv(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "config.toml", minimalConfig)
	chdir(t, dir)

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Env() != "local" {
		t.Errorf("env: got %s, want local", cfg.Env())
	}

	t.Setenv("COURIER_ENV", "production")
	if cfg.Env() != "production" {
		t.Errorf("env: got %s, want production", cfg.Env())
	}
}

func TestShutdownTimeoutDuration(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "config.toml", baseConfig)
	chdir(t, dir)

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if d := cfg.ShutdownTimeoutDuration(); d != 30*time.Second {
		t.Errorf("shutdown timeout: got %v, want 30s", d)
	}
}

func TestServerAddr(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "config.toml", baseConfig)
	chdir(t, dir)

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if addr := cfg.Server.Addr(); addr != "0.0.0.0:8080" {
		t.Errorf("addr: got %s, want 0.0.0.0:8080", addr)
	}
}

func TestMaxSubmitSizeBytes(t *testing.T) {
	tests := []struct {
		name string
		size string
		want int64
	}{
		{"valid 50MB", "50MB", 50 * 1024 * 1024},
		{"valid 10MB", "10MB", 10 * 1024 * 1024},
		{"valid 1GB", "1GB", 1024 * 1024 * 1024},
		{"invalid falls back to 50MB", "bad", 50 * 1024 * 1024},
		{"empty falls back to 50MB", "", 50 * 1024 * 1024},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.APIConfig{MaxSubmitSize: tt.size}
			if got := cfg.MaxSubmitSizeBytes(); got != tt.want {
				t.Errorf("MaxSubmitSizeBytes() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestServerValidation(t *testing.T) {
	tests := []struct {
		name    string
		config  string
		wantErr string
	}{
		{
			name: "invalid port",
			config: `
[server]
port = 99999

[database]
name = "courier"
user = "courier"
`,
			wantErr: "invalid port",
		},
		{
			name: "invalid read_timeout",
			config: `
[server]
read_timeout = "bad"

[database]
name = "courier"
user = "courier"
`,
			wantErr: "invalid read_timeout",
		},
		{
			name: "invalid workflow workers",
			config: `
[database]
name = "courier"
user = "courier"

[workflow]
download_workers = -1
`,
			wantErr: "download_workers",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeConfig(t, dir, "config.toml", tt.config)
			chdir(t, dir)

			_, err := config.Load()
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not contain %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestAgentConfig(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "config.toml", baseConfig)
	chdir(t, dir)

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	agent := cfg.Workflow.Agent
	if agent.Name != "test-agent" {
		t.Errorf("agent name: got %s, want test-agent", agent.Name)
	}
	if agent.Provider == nil || agent.Provider.Name != "ollama" {
		t.Errorf("provider: got %+v, want ollama", agent.Provider)
	}
	if agent.Model == nil || agent.Model.Name != "llama3.1:8b" {
		t.Errorf("model: got %+v, want llama3.1:8b", agent.Model)
	}
}

func TestAgentEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "config.toml", baseConfig)
	chdir(t, dir)

	t.Setenv("COURIER_AGENT_PROVIDER_NAME", "azure")
	t.Setenv("COURIER_AGENT_BASE_URL", "https://myendpoint.openai.azure.com")
	t.Setenv("COURIER_AGENT_MODEL_NAME", "gpt-5-mini")
	t.Setenv("COURIER_AGENT_TOKEN", "test-token")
	t.Setenv("COURIER_AGENT_AUTH_TYPE", "api_key")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	agent := cfg.Workflow.Agent
	if agent.Provider.Name != "azure" {
		t.Errorf("provider name: got %s, want azure", agent.Provider.Name)
	}
	if agent.Provider.BaseURL != "https://myendpoint.openai.azure.com" {
		t.Errorf("provider base_url: got %s", agent.Provider.BaseURL)
	}
	if agent.Model.Name != "gpt-5-mini" {
		t.Errorf("model name: got %s, want gpt-5-mini", agent.Model.Name)
	}

	opts := agent.Provider.Options
	if opts["token"] != "test-token" {
		t.Errorf("token: got %v, want test-token", opts["token"])
	}
	if opts["auth_type"] != "api_key" {
		t.Errorf("auth_type: got %v, want api_key", opts["auth_type"])
	}
}
