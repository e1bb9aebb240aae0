package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/patrickprogramme/subshare/internal/assets"
	"github.com/patrickprogramme/subshare/internal/fsutil"
	"gopkg.in/yaml.v3"
)

const CurrentConfigVersion = 2

// DefaultFileName est le nom du fichier de configuration à côté du binaire.
const DefaultFileName = "subshare.yaml"

// Variables d'environnement (lues après le fichier, éventuellement depuis .env).
const (
	EnvOutputDir  = "SUBSHARE_OUTPUT_DIR"
	EnvExportLang = "SUBSHARE_EXPORT_LANG"
	EnvAddr       = "SUBSHARE_ADDR"
)

// Style remplace les préférences d'affichage globales : il est passé
// explicitement aux vues et n'est jamais lu par la synchronisation.
type Style struct {
	JaColor    string `yaml:"ja_color"`
	KoColor    string `yaml:"ko_color"`
	Highlight  string `yaml:"highlight_color"`
	Background string `yaml:"background"`
	Bold       bool   `yaml:"bold"`
	Border     bool   `yaml:"border"`
	KoFirst    bool   `yaml:"ko_first"`
	Ruby       bool   `yaml:"ruby"`
}

// struct pour les paramètres de configuration
type Config struct {
	// Chemins
	OutputDir string `yaml:"output_dir"`

	// Organisation
	SaveInSubdir bool `yaml:"save_in_subdir"`

	// Export
	ExportLang    string   `yaml:"export_lang"`
	ExportFormats []string `yaml:"export_formats"`
	Overwrite     bool     `yaml:"overwrite"`

	// Lecteur terminal
	Display         string  `yaml:"display"`
	ListScrollRatio float64 `yaml:"list_scroll_ratio"`
	TickIntervalMs  int     `yaml:"tick_interval_ms"`
	Style           Style   `yaml:"style"`

	// API HTTP
	Server struct {
		Addr string `yaml:"addr"`
	} `yaml:"server"`

	ConfigVersion int `yaml:"config_version"`

	configFilePath string
}

// Configuration par défaut (fallback si l'asset embarqué est manquant)
func defaultConfig() *Config {
	c := &Config{}

	// Chemins
	c.OutputDir = "."

	// Organisation
	c.SaveInSubdir = false

	// Export
	c.ExportLang = "ja"
	c.ExportFormats = []string{"srt"}
	c.Overwrite = false

	// Lecteur terminal
	c.Display = "both"
	c.ListScrollRatio = 0.5
	c.TickIntervalMs = 100
	c.Style = defaultStyle()

	// API
	c.Server.Addr = "127.0.0.1:8080"

	c.ConfigVersion = CurrentConfigVersion

	return c
}

func defaultStyle() Style {
	return Style{
		JaColor:   "#FFFFFF",
		KoColor:   "#FFD75F",
		Highlight: "#5F87FF",
		Bold:      true,
		Border:    true,
		Ruby:      true,
	}
}

// Load lit la config; si le fichier n'existe pas, on copie l'exemple embarqué depuis internal/assets
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultFileName
	}

	// si le fichier n'existe pas -> essayer de créer à partir de l'asset embarqué
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := createDefaultConfigFromEmbedded(path); err != nil {
			return nil, fmt.Errorf("échec de création du fichier de configuration par défaut : %w", err)
		}
	}

	cfg := defaultConfig()

	// lire le YAML brut et déserialiser dans cfg (les champs présents écraseront les defaults)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("lecture du fichier de configuration %s impossible : %w", path, err)
	}

	// corriger les chemins Windows avec des backslashes
	data = bytes.ReplaceAll(data, []byte(`\`), []byte(`/`))

	// Un fichier sans config_version est un fichier v1.
	cfg.ConfigVersion = 1
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("analyse du fichier de configuration %s impossible : %w", path, err)
	}
	cfg.configFilePath = path

	cfg.normalizeConfig()

	// gestion de version : si le fichier est plus ancien -> orchestrer la mise à jour
	if cfg.ConfigVersion < CurrentConfigVersion {
		if err := upgradeConfig(cfg, cfg.ConfigVersion); err != nil {
			return nil, fmt.Errorf("échec de mise à niveau de la configuration : %w", err)
		}
		cfg.normalizeConfig()
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration %s invalide : %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv applique les variables SUBSHARE_* non vides ; getenv vaut os.Getenv si nil.
func (c *Config) ApplyEnv(getenv func(string) string) {
	if getenv == nil {
		getenv = os.Getenv
	}
	if v := strings.TrimSpace(getenv(EnvOutputDir)); v != "" {
		c.OutputDir = v
	}
	if v := strings.TrimSpace(getenv(EnvExportLang)); v != "" {
		c.ExportLang = v
	}
	if v := strings.TrimSpace(getenv(EnvAddr)); v != "" {
		c.Server.Addr = v
	}
	c.normalizeConfig()
}

// Path retourne le fichier d'où la config a été lue.
func (c *Config) Path() string {
	return c.configFilePath
}

func createDefaultConfigFromEmbedded(dstPath string) error {
	b, err := assets.Embedded.ReadFile(assets.DefaultConfigAsset)
	if err != nil {
		return fmt.Errorf("lecture du modèle de configuration embarqué impossible : %w", err)
	}

	// écrire atomiquement sur disque (évite les fichiers partiels)
	if err := fsutil.WriteFileAtomic(dstPath, b, 0o644); err != nil {
		return fmt.Errorf("échec d'écriture du fichier de configuration %s : %w", dstPath, err)
	}

	fmt.Printf("info : fichier de configuration par défaut créé : %s\n", dstPath)
	return nil
}

func (c *Config) normalizeConfig() {
	// Nettoyage des chemins
	c.OutputDir = filepath.Clean(strings.TrimSpace(c.OutputDir))

	// Trim and normalize strings
	c.ExportLang = strings.TrimSpace(strings.ToLower(c.ExportLang))
	if c.ExportLang == "" {
		c.ExportLang = "ja"
	}
	c.Display = strings.TrimSpace(strings.ToLower(c.Display))
	if c.Display == "" {
		c.Display = "both"
	}

	formats := make([]string, 0, len(c.ExportFormats))
	seen := make(map[string]bool, len(c.ExportFormats))
	for _, f := range c.ExportFormats {
		f = strings.TrimSpace(strings.ToLower(f))
		if f == "" || seen[f] {
			continue
		}
		seen[f] = true
		formats = append(formats, f)
	}
	if len(formats) == 0 {
		formats = []string{"srt"}
	}
	c.ExportFormats = formats

	if c.ListScrollRatio < 0 || c.ListScrollRatio > 1 {
		c.ListScrollRatio = 0.5
	}
	if c.TickIntervalMs < 20 {
		c.TickIntervalMs = 20
	}
	if c.TickIntervalMs > 1000 {
		c.TickIntervalMs = 1000
	}

	c.Server.Addr = strings.TrimSpace(c.Server.Addr)
	if c.Server.Addr == "" {
		c.Server.Addr = "127.0.0.1:8080"
	}
}
