package bootstrap

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/patrickprogramme/subshare/internal/fsutil"
)

// EnsureTemplatesPresent s'assure que les templates listés existent sur disque,
// dans tplDir, pour que l'utilisateur puisse les modifier.
//
// - tplDir  : dossier destination sur disque (ex: "<binDir>/templates")
// - fsys    : embed.FS (ou autre fs.FS) contenant les ressources embarquées
// - srcFiles: chemins DANS fsys (ex: "templates/transcript.md.tmpl")
//
// Crée tplDir si besoin et copie les fichiers absents. NE REMPLACE JAMAIS
// un fichier existant : un template modifié par l'utilisateur est conservé.
// Retourne la liste des fichiers écrits.
func EnsureTemplatesPresent(tplDir string, fsys fs.FS, srcFiles []string) ([]string, error) {
	parent := filepath.Dir(tplDir)
	if st, err := os.Stat(parent); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("le répertoire parent n'existe pas : %s", parent)
		}
		return nil, fmt.Errorf("échec lors du test du répertoire parent %s : %w", parent, err)
	} else if !st.IsDir() {
		return nil, fmt.Errorf("le parent existe mais n'est pas un répertoire : %s", parent)
	}

	if err := os.MkdirAll(tplDir, 0o755); err != nil {
		return nil, fmt.Errorf("échec de création du répertoire de templates %s : %w", tplDir, err)
	}

	// dossier vide : tout copier sans tester chaque fichier
	empty, err := fsutil.IsDirEmpty(tplDir)
	if err != nil {
		return nil, fmt.Errorf("échec lors de la vérification du répertoire %s : %w", tplDir, err)
	}

	var written []string
	for _, src := range srcFiles {
		dest := filepath.Join(tplDir, filepath.Base(src))
		if !empty {
			if _, err := os.Stat(dest); err == nil {
				continue
			} else if !os.IsNotExist(err) {
				return written, fmt.Errorf("échec lors du test du fichier %s : %w", dest, err)
			}
		}
		if err := copyAsset(fsys, src, dest); err != nil {
			return written, err
		}
		written = append(written, dest)
	}
	return written, nil
}

// copyAsset lit src dans fsys et l'écrit atomiquement dans dest.
func copyAsset(fsys fs.FS, src, dest string) error {
	data, err := fs.ReadFile(fsys, filepath.ToSlash(src))
	if err != nil {
		return fmt.Errorf("échec de lecture de la ressource embarquée %s : %w", src, err)
	}
	if err := fsutil.WriteFileAtomic(dest, data, 0o644); err != nil {
		return fmt.Errorf("échec d'écriture du fichier %s : %w", dest, err)
	}
	return nil
}
