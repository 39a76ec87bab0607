// Package file loads pagepress configuration from a TOML file.
// Secrets can be supplied or overridden via PAGEPRESS_* environment
// variables so tokens never have to live on disk.
package file

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/custodia-labs/pagepress-cli/internal/core/domain"
)

// Environment variables overriding file-based secrets.
const (
	EnvGoogleClientID     = "PAGEPRESS_GOOGLE_CLIENT_ID"
	EnvGoogleClientSecret = "PAGEPRESS_GOOGLE_CLIENT_SECRET"
	EnvGoogleRefreshToken = "PAGEPRESS_GOOGLE_REFRESH_TOKEN"
	EnvDropboxToken       = "PAGEPRESS_DROPBOX_TOKEN"
)

// Sink selects where output documents are stored.
const (
	SinkDrive   = "drive"
	SinkDropbox = "dropbox"
)

// Config is the full application configuration.
type Config struct {
	// Verbose enables debug logging.
	Verbose bool `toml:"verbose"`

	// DataDir is the local state directory (history database).
	// Empty means ~/.pagepress/data.
	DataDir string `toml:"data_dir"`

	// PollIntervalSeconds > 0 makes `pagepress run` poll the ledger
	// repeatedly; 0 runs a single sweep.
	PollIntervalSeconds int `toml:"poll_interval_seconds"`

	// Sink selects the output destination: "drive" or "dropbox".
	Sink string `toml:"sink"`

	Target  TargetConfig  `toml:"target"`
	Search  SearchConfig  `toml:"search"`
	Google  GoogleConfig  `toml:"google"`
	Dropbox DropboxConfig `toml:"dropbox"`
}

// TargetConfig describes the output document constraints.
type TargetConfig struct {
	WidthPt    float64 `toml:"width_pt"`
	HeightPt   float64 `toml:"height_pt"`
	ByteBudget int64   `toml:"byte_budget"`
}

// SearchConfig describes the (DPI, quality) search ranges.
type SearchConfig struct {
	StartDPI     int `toml:"start_dpi"`
	MinDPI       int `toml:"min_dpi"`
	DPIStep      int `toml:"dpi_step"`
	StartQuality int `toml:"start_quality"`
	MinQuality   int `toml:"min_quality"`
	QualityStep  int `toml:"quality_step"`
}

// GoogleConfig holds OAuth credentials and the ledger spreadsheet.
type GoogleConfig struct {
	ClientID     string `toml:"client_id"`
	ClientSecret string `toml:"client_secret"`
	RefreshToken string `toml:"refresh_token"`

	// SpreadsheetID and Sheet identify the job ledger.
	SpreadsheetID string `toml:"spreadsheet_id"`
	Sheet         string `toml:"sheet"`

	// StartRow is the first data row (1-based; row 1 is the header).
	StartRow int `toml:"start_row"`

	// StatusColumn is the ledger column status writes go to.
	StatusColumn string `toml:"status_column"`

	// DriveFolderID is the upload destination for the Drive sink.
	// Empty uploads into the Drive root.
	DriveFolderID string `toml:"drive_folder_id"`
}

// DropboxConfig holds the Dropbox sink credentials.
type DropboxConfig struct {
	AccessToken string `toml:"access_token"`
	Folder      string `toml:"folder"`
}

// Default returns the shipped configuration.
func Default() *Config {
	s := domain.DefaultSettings()
	return &Config{
		Sink: SinkDrive,
		Target: TargetConfig{
			WidthPt:    s.TargetWidthPt,
			HeightPt:   s.TargetHeightPt,
			ByteBudget: s.ByteBudget,
		},
		Search: SearchConfig{
			StartDPI:     s.StartDPI,
			MinDPI:       s.MinDPI,
			DPIStep:      s.DPIStep,
			StartQuality: s.StartQuality,
			MinQuality:   s.MinQuality,
			QualityStep:  s.QualityStep,
		},
		Google: GoogleConfig{
			Sheet:        "Jobs",
			StartRow:     2,
			StatusColumn: "C",
		},
	}
}

// DefaultPath returns ~/.pagepress/config.toml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".pagepress", "config.toml"), nil
}

// Load reads the configuration at path, merged over defaults, with
// environment overrides applied last. An empty path uses DefaultPath;
// a missing file is not an error and yields defaults plus environment.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		// Defaults only.
	case err != nil:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	default:
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvGoogleClientID); v != "" {
		c.Google.ClientID = v
	}
	if v := os.Getenv(EnvGoogleClientSecret); v != "" {
		c.Google.ClientSecret = v
	}
	if v := os.Getenv(EnvGoogleRefreshToken); v != "" {
		c.Google.RefreshToken = v
	}
	if v := os.Getenv(EnvDropboxToken); v != "" {
		c.Dropbox.AccessToken = v
	}
}

// Settings maps the configuration onto the core search settings.
func (c *Config) Settings() domain.Settings {
	return domain.Settings{
		TargetWidthPt:  c.Target.WidthPt,
		TargetHeightPt: c.Target.HeightPt,
		ByteBudget:     c.Target.ByteBudget,
		StartDPI:       c.Search.StartDPI,
		MinDPI:         c.Search.MinDPI,
		DPIStep:        c.Search.DPIStep,
		StartQuality:   c.Search.StartQuality,
		MinQuality:     c.Search.MinQuality,
		QualityStep:    c.Search.QualityStep,
	}
}
