package excel

import (
	"net/http"
	"time"

	"heroscores/ports"
)

// SourceConfig describes where the scores workbook lives
type SourceConfig struct {
	FilePath string        `json:"file_path"`
	URL      string        `json:"url"` // takes precedence over FilePath when set
	Timeout  time.Duration `json:"timeout"`
}

// DefaultSourceConfig returns the conventional public scores location
func DefaultSourceConfig() SourceConfig {
	return SourceConfig{
		FilePath: "public/scores.xlsx",
		Timeout:  10 * time.Second,
	}
}

// NewSource builds the file or HTTP source described by the config
func NewSource(config SourceConfig) ports.ScoreSourcePort {
	if config.URL != "" {
		return &HTTPSource{
			URL:    config.URL,
			Client: &http.Client{Timeout: config.Timeout},
		}
	}
	return &FileSource{Path: config.FilePath}
}

// NewReaderFromConfig wires a ScoreReader to the configured source,
// inferring the format from the file name or URL
func NewReaderFromConfig(config SourceConfig) *ScoreReader {
	location := config.FilePath
	if config.URL != "" {
		location = config.URL
	}
	return NewScoreReader(NewSource(config), FormatFromPath(location))
}
