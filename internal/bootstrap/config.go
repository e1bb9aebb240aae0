package bootstrap

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// EnsureConfigPresent copie l'asset assetPath (dans fsys) vers dstPath
// si dstPath n'existe pas encore. Retourne true si le fichier a été créé.
// Idempotent : ne remplace jamais un fichier existant.
func EnsureConfigPresent(dstPath string, fsys fs.FS, assetPath string) (bool, error) {
	parent := filepath.Dir(dstPath)
	if st, err := os.Stat(parent); err != nil {
		if !os.IsNotExist(err) {
			return false, fmt.Errorf("échec test parent %s: %w", parent, err)
		}
		// WriteFileAtomic créera le dossier
	} else if !st.IsDir() {
		return false, fmt.Errorf("le parent existe mais n'est pas un répertoire : %s", parent)
	}

	// si le fichier existe déjà -> ne rien faire
	if _, err := os.Stat(dstPath); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("échec stat fichier cible %s: %w", dstPath, err)
	}

	if err := copyAsset(fsys, assetPath, dstPath); err != nil {
		return false, err
	}
	return true, nil
}
