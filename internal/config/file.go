package config

import (
	"os"

	"gopkg.in/yaml.v2"

	"github.com/ytdesk/ytdesk/internal/download"
	"github.com/ytdesk/ytdesk/internal/options"
	"github.com/ytdesk/ytdesk/internal/platform"
)

// Default number of concurrent downloads in the CLI
const DefaultMaxParallel = 2

// FileConfig is the YAML configuration consumed by the headless CLI
type FileConfig struct {
	BaseDir            string `yaml:"base_dir"`
	MaxParallel        int    `yaml:"max_parallel"`
	TruncateDateToYear *bool  `yaml:"truncate_date_to_year"`
	RetagAudio         *bool  `yaml:"retag_audio"`
	ConvertThumbnails  *bool  `yaml:"convert_thumbnails"`
}

// LoadFileConfig reads a YAML config file and applies defaults for absent
// fields. A missing file yields pure defaults without error.
func LoadFileConfig(path string) (*FileConfig, error) {
	cfg := &FileConfig{}

	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, err
			}
		} else {
			defer f.Close()
			dec := yaml.NewDecoder(f)
			if err := dec.Decode(cfg); err != nil {
				return nil, err
			}
		}
	}

	cfg.applyDefaults()
	return cfg, nil
}

func (c *FileConfig) applyDefaults() {
	if c.BaseDir == "" {
		c.BaseDir = platform.DefaultBaseDir()
	}
	if c.MaxParallel <= 0 {
		c.MaxParallel = DefaultMaxParallel
	}
	if c.TruncateDateToYear == nil {
		v := DefaultTruncateDateToYear
		c.TruncateDateToYear = &v
	}
	if c.RetagAudio == nil {
		v := DefaultRetagAudio
		c.RetagAudio = &v
	}
	if c.ConvertThumbnails == nil {
		v := DefaultConvertThumbnails
		c.ConvertThumbnails = &v
	}
}

// RunnerConfig assembles the download runner configuration from the file
func (c *FileConfig) RunnerConfig() download.Config {
	return download.Config{
		Prefs: options.Prefs{
			TruncateDateToYear: *c.TruncateDateToYear,
		},
		RetagAudio:        *c.RetagAudio,
		ConvertThumbnails: *c.ConvertThumbnails,
	}
}
