package api

import (
	"github.com/JaimeStill/courier/internal/guard"
	"github.com/JaimeStill/courier/internal/language"
	"github.com/JaimeStill/courier/internal/model"
	"github.com/JaimeStill/courier/internal/runs"
	"github.com/JaimeStill/courier/internal/workflow"
)

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Runs     runs.System
	Workflow *workflow.Service
}

// NewDomain creates all domain systems from the API runtime.
func NewDomain(runtime *Runtime) *Domain {
	runsSystem := runs.New(
		runtime.Database.Connection(),
		runtime.Logger,
	)

	completer := model.NewAgent(runtime.Workflow.Agent)

	rt := &workflow.Runtime{
		Completer:       completer,
		Translator:      language.New(completer),
		Artifacts:       runtime.Artifacts,
		Transport:       runtime.Transport,
		Guard:           guard.New(),
		Logger:          runtime.Logger.With("workflow", "email"),
		TargetLanguage:  runtime.Workflow.TargetLanguage,
		Signature:       runtime.Workflow.Signature,
		DownloadWorkers: runtime.Workflow.DownloadWorkers,
	}

	return &Domain{
		Runs:     runsSystem,
		Workflow: workflow.NewService(rt, runsSystem),
	}
}
