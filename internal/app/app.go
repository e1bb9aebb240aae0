package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/patrickprogramme/subshare/internal/config"
	"github.com/patrickprogramme/subshare/internal/export"
	"github.com/patrickprogramme/subshare/internal/sharelink"
	"github.com/patrickprogramme/subshare/internal/timeline"
	"github.com/patrickprogramme/subshare/internal/ui"
	"github.com/patrickprogramme/subshare/pkg/model"
)

// Modes d'exécution (-mode).
const (
	ModeExport = "export"
	ModeWatch  = "watch"
	ModeServe  = "serve"
	ModeInfo   = "info"
)

const dirPerm = 0o755

// CLIFlags contient les information venant des flags de l'app
type CLIFlags struct {
	ConfigPath string
	Link       string
	Mode       string
	Lang       string
	Addr       string
}

// App orchestre les différentes dépendances (UI, config, export...)
type App struct {
	cfg      *config.Config
	ui       ui.Interface
	flags    *CLIFlags
	exporter export.Exporter

	// remplaçables dans les tests
	watch func(ctx context.Context, track timeline.Track) error
	serve func(ctx context.Context) error
}

// New construit l'application. md peut être nil : le format md est alors refusé.
func New(cfg *config.Config, uiClient ui.Interface, flags *CLIFlags, md export.MarkdownRenderer) *App {
	a := &App{
		cfg:      cfg,
		ui:       uiClient,
		flags:    flags,
		exporter: export.Exporter{Markdown: md},
	}
	a.watch = a.runWatch
	a.serve = a.runServe
	return a
}

// Run exécute le mode demandé. Un lien absent n'est pas une erreur ;
// un lien illisible l'est.
func (a *App) Run(ctx context.Context) error {
	if err := a.applyFlags(); err != nil {
		return err
	}

	mode := strings.ToLower(strings.TrimSpace(a.flags.Mode))
	if mode == "" {
		mode = ModeExport
	}
	if mode == ModeServe {
		return a.serve(ctx)
	}
	switch mode {
	case ModeExport, ModeWatch, ModeInfo:
	default:
		return fmt.Errorf("mode inconnu: %q", a.flags.Mode)
	}

	track, interactive, err := a.loadTrack(ctx)
	if err != nil {
		if errors.Is(err, sharelink.ErrNoPayload) || errors.Is(err, ui.ErrNoInput) {
			a.ui.PrintInfo(ctx, "Aucun sous-titre à afficher.")
			return nil
		}
		return err
	}

	switch mode {
	case ModeWatch:
		return a.watch(ctx, track)
	case ModeInfo:
		a.ui.PrintInfo(ctx, DescribeTrack(track, a.cfg.Lang()))
		return nil
	}

	paths, err := a.ExportAll(track)
	if err != nil {
		return err
	}
	a.ui.PrintInfo(ctx, "Fichiers écrits :\n"+strings.Join(paths, "\n"))

	// Attendre terminaison (Entrée OU Ctrl+C) si le lien a été saisi
	if interactive {
		return a.ui.WaitForExit(ctx)
	}
	return nil
}

// applyFlags : les flags l'emportent sur le fichier et l'environnement.
func (a *App) applyFlags() error {
	if a.flags.Lang != "" {
		lang, err := model.ParseLang(a.flags.Lang)
		if err != nil {
			return fmt.Errorf("flag -lang: %w", err)
		}
		a.cfg.ExportLang = string(lang)
	}
	if a.flags.Addr != "" {
		a.cfg.Server.Addr = a.flags.Addr
	}
	return nil
}

// loadTrack : priorité flag > clipboard > prompt.
func (a *App) loadTrack(ctx context.Context) (timeline.Track, bool, error) {
	link := a.flags.Link
	interactive := false
	if link == "" {
		l, err := a.ui.GetSharedLink(ctx)
		if err != nil {
			return timeline.Track{}, false, fmt.Errorf("get link: %w", err)
		}
		link = l
		interactive = true
	}

	track, err := sharelink.DecodeLink(link)
	if err != nil {
		return timeline.Track{}, interactive, fmt.Errorf("lien partagé: %w", err)
	}
	return track, interactive, nil
}
