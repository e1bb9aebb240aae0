package assets

import "embed"

//go:embed subshare.example.yaml
//go:embed templates/*tmpl
var Embedded embed.FS

// Nom de l'asset de config par défaut (chemin DANS Embedded)
const DefaultConfigAsset = "subshare.example.yaml"

// TranscriptTemplate est le nom du template de la note Markdown.
const TranscriptTemplate = "transcript.md.tmpl"

// DefaultTemplatePaths : templates embarqués copiés à côté du binaire au démarrage.
// Ce sont des chemins relatifs DANS Embedded.
var DefaultTemplatePaths = []string{
	"templates/" + TranscriptTemplate,
}
