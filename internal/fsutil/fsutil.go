// Package fsutil écrit les exports et la config sans jamais laisser de
// fichier à moitié écrit.
package fsutil

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// maxSuffix borne la recherche d'un nom libre (_1 ... _maxSuffix).
const maxSuffix = 999

var ErrNoFreeName = errors.New("aucun nom de fichier libre")

// IsDirEmpty indique si path est un dossier sans entrée.
func IsDirEmpty(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()

	if _, err := f.Readdirnames(1); err != nil {
		if errors.Is(err, io.EOF) {
			return true, nil
		}
		return false, fmt.Errorf("%s: %w", path, err)
	}
	return false, nil
}

// WriteFileAtomic écrit dans un fichier temporaire voisin puis le renomme
// en destPath. Les dossiers parents sont créés.
func WriteFileAtomic(destPath string, data []byte, perm os.FileMode) (err error) {
	dir := filepath.Dir(destPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(destPath)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("write %s: %w", tmp.Name(), err)
	}
	_ = tmp.Sync()
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", tmp.Name(), err)
	}
	if err := os.Chmod(tmp.Name(), perm); err != nil {
		return fmt.Errorf("chmod %s: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), destPath); err != nil {
		return fmt.Errorf("rename to %s: %w", destPath, err)
	}
	return nil
}

// SaveAtomic écrit content dans outDir/baseName+ext (ext avec le point).
// Sans overwrite, un fichier existant donne baseName_1+ext, _2, etc.
// Retourne le chemin écrit.
func SaveAtomic(outDir, baseName, ext string, content []byte, overwrite bool) (string, error) {
	if baseName == "" {
		return "", errors.New("save: nom de fichier vide")
	}

	dest := filepath.Join(outDir, baseName+ext)
	if !overwrite {
		free, err := freeName(outDir, baseName, ext)
		if err != nil {
			return "", err
		}
		dest = free
	}

	if err := WriteFileAtomic(dest, content, 0o644); err != nil {
		return "", err
	}
	return dest, nil
}

func freeName(outDir, baseName, ext string) (string, error) {
	for i := 0; i <= maxSuffix; i++ {
		name := baseName + ext
		if i > 0 {
			name = fmt.Sprintf("%s_%d%s", baseName, i, ext)
		}
		p := filepath.Join(outDir, name)
		if _, err := os.Stat(p); errors.Is(err, os.ErrNotExist) {
			return p, nil
		} else if err != nil {
			return "", err
		}
	}
	return "", fmt.Errorf("%s%s: %w", baseName, ext, ErrNoFreeName)
}
