package config

import (
	"fmt"
	"os"
	"strconv"

	gaconfig "github.com/JaimeStill/go-agents/pkg/config"
)

const (
	EnvWorkflowTargetLanguage  = "COURIER_WORKFLOW_TARGET_LANGUAGE"
	EnvWorkflowSignature       = "COURIER_WORKFLOW_SIGNATURE"
	EnvWorkflowDownloadWorkers = "COURIER_WORKFLOW_DOWNLOAD_WORKERS"
)

// WorkflowConfig holds workflow behavior settings and the model agent
// configuration used by workflow steps.
type WorkflowConfig struct {
	Agent           gaconfig.AgentConfig `toml:"agent"`
	TargetLanguage  string               `toml:"target_language"`
	Signature       string               `toml:"signature"`
	DownloadWorkers int                  `toml:"download_workers"`
}

// Finalize applies defaults, environment variable overrides, and validation
// for the workflow config and its nested agent config.
func (c *WorkflowConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()

	if err := c.validate(); err != nil {
		return err
	}
	if err := FinalizeAgent(&c.Agent); err != nil {
		return fmt.Errorf("agent: %w", err)
	}
	return nil
}

// Merge overwrites non-zero fields from overlay.
func (c *WorkflowConfig) Merge(overlay *WorkflowConfig) {
	if overlay.TargetLanguage != "" {
		c.TargetLanguage = overlay.TargetLanguage
	}
	if overlay.Signature != "" {
		c.Signature = overlay.Signature
	}
	if overlay.DownloadWorkers != 0 {
		c.DownloadWorkers = overlay.DownloadWorkers
	}
	c.Agent.Merge(&overlay.Agent)
}

func (c *WorkflowConfig) loadDefaults() {
	if c.TargetLanguage == "" {
		c.TargetLanguage = "French"
	}
	if c.Signature == "" {
		c.Signature = "The Translation Team"
	}
	if c.DownloadWorkers == 0 {
		c.DownloadWorkers = 4
	}
}

func (c *WorkflowConfig) loadEnv() {
	if v := os.Getenv(EnvWorkflowTargetLanguage); v != "" {
		c.TargetLanguage = v
	}
	if v := os.Getenv(EnvWorkflowSignature); v != "" {
		c.Signature = v
	}
	if v := os.Getenv(EnvWorkflowDownloadWorkers); v != "" {
		if workers, err := strconv.Atoi(v); err == nil {
			c.DownloadWorkers = workers
		}
	}
}

func (c *WorkflowConfig) validate() error {
	if c.DownloadWorkers < 1 {
		return fmt.Errorf("download_workers must be positive: %d", c.DownloadWorkers)
	}
	return nil
}
