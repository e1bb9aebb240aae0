// Package render produit la note Markdown d'une piste à partir de templates
// text/template (embarqués, ou copiés à côté du binaire pour être modifiés).
package render

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"text/template"

	"github.com/patrickprogramme/subshare/internal/assets"
	"github.com/patrickprogramme/subshare/internal/timeline"
	"github.com/patrickprogramme/subshare/pkg/model"
)

// Renderer gère le parsing paresseux (lazy) des templates et fournit des méthodes de rendu.
// Sûr pour un usage concurrent une fois construit (serveur HTTP).
type Renderer struct {
	templates *template.Template // templates parsés
	fsys      fs.FS              // source des templates (embed.FS ou os.DirFS)
	patterns  []string           // patterns relatifs au fsys
	once      sync.Once          // protège l'initialisation paresseuse
	err       error              // mémorise l'erreur d'initialisation
}

// NewRendererFromFS construit un Renderer qui parsera plus tard les patterns
// fournis depuis fsys.
func NewRendererFromFS(fsys fs.FS, patterns []string) (*Renderer, error) {
	if fsys == nil {
		return nil, fmt.Errorf("fsys est nil")
	}
	if len(patterns) == 0 {
		return nil, fmt.Errorf("aucun template fourni")
	}
	cp := append([]string(nil), patterns...)
	return &Renderer{
		fsys:     fsys,
		patterns: cp,
	}, nil
}

// DefaultRenderer lit les templates du dossier "templates" à côté du binaire
// et les parse tout de suite.
func DefaultRenderer(exePath string) (*Renderer, error) {
	tplDir := filepath.Join(filepath.Dir(exePath), "templates")

	r, err := NewRendererFromFS(os.DirFS(tplDir), []string{assets.TranscriptTemplate})
	if err != nil {
		return nil, err
	}
	if err := r.ParseNow(); err != nil {
		return nil, err
	}
	return r, nil
}

// EmbeddedRenderer utilise les templates embarqués dans le binaire.
func EmbeddedRenderer() *Renderer {
	return &Renderer{
		fsys:     assets.Embedded,
		patterns: []string{"templates/*.tmpl"},
	}
}

// parseTemplates effectue le parsing des templates une seule fois (sync.Once).
func (r *Renderer) parseTemplates() error {
	r.once.Do(func() {
		t := template.New("root").Funcs(baseFuncMap())
		for _, p := range r.patterns {
			var parseErr error
			t, parseErr = t.ParseFS(r.fsys, p)
			if parseErr != nil {
				r.err = fmt.Errorf("parse pattern %q: %w", p, parseErr)
				return
			}
		}
		r.templates = t
	})
	return r.err
}

// ParseNow force le parsing immédiat et retourne l'erreur si problème.
func (r *Renderer) ParseNow() error {
	if r == nil {
		return fmt.Errorf("nil renderer")
	}
	return r.parseTemplates()
}

// Render exécute le template nommé tmplName (basename du fichier .tmpl) avec data.
func (r *Renderer) Render(tmplName string, data any) ([]byte, error) {
	if r == nil {
		return nil, fmt.Errorf("renderer is nil")
	}
	if err := r.parseTemplates(); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := r.templates.ExecuteTemplate(&buf, tmplName, data); err != nil {
		return nil, fmt.Errorf("execute template %s: %w", tmplName, err)
	}
	return buf.Bytes(), nil
}

// Transcript rend la note Markdown de la piste dans la langue principale lang.
func (r *Renderer) Transcript(track timeline.Track, lang model.Lang) ([]byte, error) {
	return r.Render(assets.TranscriptTemplate, NewTranscriptData(track, lang))
}

// baseFuncMap construit la liste des fonctions exposées aux templates.
func baseFuncMap() template.FuncMap {
	return template.FuncMap{
		"yamlList":   yamlListBlock,
		"quoteBlock": quoteBlockPure,
		"indent":     indentPure,
		"cueLink":    cueLinkPure,
	}
}
