package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/patrickprogramme/subshare/internal/clipboard"
	"github.com/patrickprogramme/subshare/internal/export"
	"github.com/patrickprogramme/subshare/internal/fsutil"
	"github.com/patrickprogramme/subshare/internal/playback"
	"github.com/patrickprogramme/subshare/internal/server"
	"github.com/patrickprogramme/subshare/internal/timeline"
	"github.com/patrickprogramme/subshare/internal/tui"
	"github.com/patrickprogramme/subshare/pkg/model"
)

// previewCount est le nombre de sous-titres affichés par le mode info.
const previewCount = 5

// OutputDir retourne le dossier d'export de la piste.
func (a *App) OutputDir(track timeline.Track) string {
	outDir := a.cfg.OutputDir
	if a.cfg.SaveInSubdir && track.VideoID != "" {
		outDir = filepath.Join(outDir, fsutil.SanitizeFilename(track.VideoID))
	}
	return outDir
}

// ExportAll écrit la piste dans chaque format configuré ; retourne les chemins.
func (a *App) ExportAll(track timeline.Track) ([]string, error) {
	outDir := a.OutputDir(track)
	if err := os.MkdirAll(outDir, dirPerm); err != nil {
		return nil, fmt.Errorf("create out dir: %w", err)
	}

	lang := a.cfg.Lang()
	var paths []string
	for _, f := range a.cfg.Formats() {
		p, err := a.exporter.Save(outDir, track, lang, f, a.cfg.Overwrite)
		if err != nil {
			return paths, err
		}
		paths = append(paths, p)
	}
	return paths, nil
}

// DescribeTrack résume la piste pour le mode info.
func DescribeTrack(track timeline.Track, lang model.Lang) string {
	var b strings.Builder
	start, end := track.Span()
	fmt.Fprintf(&b, "Vidéo : %s\n", track.VideoID)
	fmt.Fprintf(&b, "Sous-titres : %d\n", track.Len())
	fmt.Fprintf(&b, "Durée : %s -> %s\n", export.ShortTimestamp(start), export.ShortTimestamp(end))

	var captioned float64
	for _, seg := range track.Segments {
		captioned += seg.Duration()
	}
	fmt.Fprintf(&b, "Temps sous-titré : %s", export.ShortTimestamp(captioned))

	for i, seg := range track.Segments {
		if i == previewCount {
			fmt.Fprintf(&b, "\n  ... (%d de plus)", track.Len()-previewCount)
			break
		}
		fmt.Fprintf(&b, "\n  [%s] %s", export.ShortTimestamp(seg.StartTime), seg.Text(lang))
	}
	return b.String()
}

func (a *App) runWatch(ctx context.Context, track timeline.Track) error {
	_, end := track.Span()
	clock := playback.NewClock(end)
	return tui.Run(ctx, track, clock, tui.Options{
		Style:       a.cfg.Style,
		Overlay:     a.cfg.OverlayOptions(),
		ScrollRatio: a.cfg.ListScrollRatio,
		Tick:        time.Duration(a.cfg.TickIntervalMs) * time.Millisecond,
		Copy:        clipboard.WriteAll,
		Export:      a.ExportAll,
	})
}

func (a *App) runServe(ctx context.Context) error {
	srv := server.New(server.Config{
		Exporter: a.exporter,
		Lang:     a.cfg.Lang(),
	})
	return srv.ListenAndServe(ctx, a.cfg.Server.Addr)
}
