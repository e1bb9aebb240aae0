package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/patrickprogramme/subshare/internal/fsutil"
	"gopkg.in/yaml.v3"
)

// migrations[v] fait passer une config de la version v à v+1.
// Un fichier sans config_version est lu comme une v1.
var migrations = map[int]func(*Config){
	0: addViewerSettings,
	1: addViewerSettings,
}

// addViewerSettings (v1 -> v2) : ajout de display et du bloc style.
func addViewerSettings(cfg *Config) {
	if cfg.Style == (Style{}) {
		cfg.Style = defaultStyle()
	}
	if cfg.Display == "" {
		cfg.Display = "both"
	}
}

// upgradeConfig sauvegarde le fichier, applique les migrations puis le réécrit.
// En cas d'échec d'écriture le fichier d'origine est intact.
func upgradeConfig(cfg *Config, from int) error {
	if cfg.configFilePath == "" {
		return fmt.Errorf("migration v%d: chemin du fichier de configuration inconnu", from)
	}

	backup, err := backupConfig(cfg.configFilePath)
	if err != nil {
		return fmt.Errorf("migration v%d: %w", from, err)
	}

	migrateConfig(cfg, from)
	cfg.normalizeConfig()

	b, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("migration v%d: encodage yaml: %w", from, err)
	}
	if err := fsutil.WriteFileAtomic(cfg.configFilePath, b, 0o644); err != nil {
		return fmt.Errorf("migration v%d: %w", from, err)
	}

	log.Printf("configuration migrée v%d -> v%d (sauvegarde : %s)", from, CurrentConfigVersion, backup)
	return nil
}

func migrateConfig(cfg *Config, from int) {
	for v := from; v < CurrentConfigVersion; v++ {
		if step, ok := migrations[v]; ok {
			step(cfg)
		}
	}
	cfg.ConfigVersion = CurrentConfigVersion
}

// backupConfig copie path en path.bak.<horodatage>.
func backupConfig(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("sauvegarde: %w", err)
	}
	backup := path + ".bak." + time.Now().Format("20060102T150405")
	if err := fsutil.WriteFileAtomic(backup, data, 0o644); err != nil {
		return "", fmt.Errorf("sauvegarde: %w", err)
	}
	return backup, nil
}
