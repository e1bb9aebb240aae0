package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/patrickprogramme/subshare/internal/app"
	"github.com/patrickprogramme/subshare/internal/assets"
	"github.com/patrickprogramme/subshare/internal/bootstrap"
	"github.com/patrickprogramme/subshare/internal/config"
	"github.com/patrickprogramme/subshare/internal/render"
	"github.com/patrickprogramme/subshare/internal/ui"
)

func main() {
	flags := parseFlags()

	// .env optionnel
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("warning: .env: %v", err)
	}

	// déterminer exePath/binDir
	binDir := "."
	exePath, err := os.Executable()
	if err != nil {
		log.Printf("impossible de déterminer le chemin de l'executable: %v", err)
	} else {
		binDir = filepath.Dir(exePath)
	}

	// emplacement config par défaut
	if flags.ConfigPath == config.DefaultFileName || flags.ConfigPath == "" {
		flags.ConfigPath = filepath.Join(binDir, config.DefaultFileName)
	}

	// s'assurer que le fichier config existe, si non on le crée
	created, err := bootstrap.EnsureConfigPresent(flags.ConfigPath, assets.Embedded, assets.DefaultConfigAsset)
	if err != nil {
		log.Printf("erreur: EnsureConfigPresent: %v", err)
	} else if created {
		fmt.Printf("Configuration créée: %s\n", flags.ConfigPath)
	}

	// s'assurer que les templates existent (dans binDir/templates)
	tplDir := filepath.Join(binDir, "templates")
	if _, err := bootstrap.EnsureTemplatesPresent(tplDir, assets.Embedded, assets.DefaultTemplatePaths); err != nil {
		log.Printf("warning: ensure templates present: %v", err)
	}

	cfg, err := config.Load(flags.ConfigPath)
	if err != nil {
		log.Fatalf("config load: %v", err)
	}
	cfg.ApplyEnv(os.Getenv)

	// templates modifiables à côté du binaire, sinon ceux embarqués
	var renderer *render.Renderer
	if exePath != "" {
		renderer, err = render.DefaultRenderer(exePath)
		if err != nil {
			log.Printf("warning: templates locaux illisibles, utilisation des templates embarqués: %v", err)
		}
	}
	if renderer == nil {
		renderer = render.EmbeddedRenderer()
	}

	// root context qui s'annule sur SIGINT / SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := app.New(cfg, ui.NewTerminal(), flags, renderer)
	if err := a.Run(ctx); err != nil {
		log.Fatalf("app run: %v", err)
	}
}

func parseFlags() *app.CLIFlags {
	f := &app.CLIFlags{}
	flag.StringVar(&f.ConfigPath, "config", config.DefaultFileName, "path to config file")
	flag.StringVar(&f.Link, "link", "", "lien de partage ou payload (optionnel)")
	flag.StringVar(&f.Mode, "mode", app.ModeExport, "export | watch | serve | info")
	flag.StringVar(&f.Lang, "lang", "", "langue d'export: ja | ko")
	flag.StringVar(&f.Addr, "addr", "", "adresse d'écoute du mode serve")
	flag.Parse()
	return f
}
