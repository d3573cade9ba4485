package workflow

import (
	"log/slog"

	"github.com/JaimeStill/courier/internal/guard"
	"github.com/JaimeStill/courier/internal/language"
	"github.com/JaimeStill/courier/internal/model"
	"github.com/JaimeStill/courier/internal/tools"
	"github.com/JaimeStill/courier/pkg/artifacts"
	"github.com/JaimeStill/courier/pkg/mailer"
)

// Runtime bundles the dependencies that workflow steps and nodes require.
// It is constructed by higher-level composition code from Infrastructure.
type Runtime struct {
	Completer  model.Completer
	Translator language.Translator
	Artifacts  artifacts.Store
	Transport  mailer.Transport
	Guard      *guard.Guard
	Logger     *slog.Logger

	TargetLanguage  string
	Signature       string
	DownloadWorkers int
}

// toolset holds one instance of each workflow tool, constructed per run
// from the runtime dependencies.
type toolset struct {
	download  *tools.Download
	extract   *tools.Extract
	translate *tools.Translate
	check     *tools.Check
	edit      *tools.Edit
	convert   *tools.Convert
	send      *tools.Send
}

func newToolset(rt *Runtime) *toolset {
	return &toolset{
		download:  tools.NewDownload(rt.Artifacts, rt.DownloadWorkers, rt.Logger),
		extract:   tools.NewExtract(rt.Artifacts, rt.Logger),
		translate: tools.NewTranslate(rt.Translator, rt.Logger),
		check:     tools.NewCheck(rt.Translator, rt.Logger),
		edit:      tools.NewEdit(rt.Artifacts, rt.Completer, rt.Logger),
		convert:   tools.NewConvert(rt.Artifacts, rt.Logger),
		send:      tools.NewSend(rt.Artifacts, rt.Transport, rt.Logger),
	}
}
