// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// DataConfig holds the file locations the toolkit reads and writes.
type DataConfig struct {
	// MetadataPath is the raw CORD-19 metadata CSV (default "data/metadata.csv").
	MetadataPath string `json:"metadata_path" yaml:"metadata_path" mapstructure:"metadata_path"`

	// CleanedPath is the cleaned CSV artifact the batch stage writes and
	// the dashboard reads (default "data/cleaned_metadata.csv").
	CleanedPath string `json:"cleaned_path" yaml:"cleaned_path" mapstructure:"cleaned_path"`

	// VisualsDir is the directory for chart artifacts (default "visuals").
	VisualsDir string `json:"visuals_dir" yaml:"visuals_dir" mapstructure:"visuals_dir"`

	// SummaryPath is the key-findings YAML artifact (default "data/summary.yaml").
	SummaryPath string `json:"summary_path" yaml:"summary_path" mapstructure:"summary_path"`

	// CachePath is the SQLite load cache used by the dashboard
	// (default "data/explorer.db").
	CachePath string `json:"cache_path" yaml:"cache_path" mapstructure:"cache_path"`
}

// CleanConfig holds the cleaning-stage policy constants.
type CleanConfig struct {
	// DefaultYear is assigned to rows whose publish_time is absent or
	// unparseable (default 2020, the dataset's dominant year; rows are
	// kept rather than discarded).
	DefaultYear int `json:"default_year" yaml:"default_year" mapstructure:"default_year"`

	// MinYear is the inclusive lower bound on publication_year; rows
	// below it are dropped during cleaning (default 2019).
	MinYear int `json:"min_year" yaml:"min_year" mapstructure:"min_year"`
}

// AnalysisConfig holds settings for the aggregation stage and charts.
type AnalysisConfig struct {
	// TopJournals is the size of the journal ranking (default 10).
	TopJournals int `json:"top_journals" yaml:"top_journals" mapstructure:"top_journals"`

	// WordCloudLimit caps the number of title words rendered (default 100).
	WordCloudLimit int `json:"word_cloud_limit" yaml:"word_cloud_limit" mapstructure:"word_cloud_limit"`

	// HistogramBinWidth is the abstract word-count bin width (default 10).
	HistogramBinWidth int `json:"histogram_bin_width" yaml:"histogram_bin_width" mapstructure:"histogram_bin_width"`

	// HistogramMax is the word count above which rows fall into a single
	// overflow bucket (default 500).
	HistogramMax int `json:"histogram_max" yaml:"histogram_max" mapstructure:"histogram_max"`
}

// ServerConfig holds settings for the interactive dashboard.
type ServerConfig struct {
	// Addr is the listen address (default ":8501").
	Addr string `json:"addr" yaml:"addr" mapstructure:"addr"`

	// DefaultMinYear and DefaultMaxYear are the initial publication-year
	// bounds, inclusive (defaults 2020 and 2021).
	DefaultMinYear int `json:"default_min_year" yaml:"default_min_year" mapstructure:"default_min_year"`
	DefaultMaxYear int `json:"default_max_year" yaml:"default_max_year" mapstructure:"default_max_year"`

	// DefaultMinWords is the initial minimum abstract word count (default 50).
	DefaultMinWords int `json:"default_min_words" yaml:"default_min_words" mapstructure:"default_min_words"`

	// SampleRows is the number of papers shown in the sample table (default 10).
	SampleRows int `json:"sample_rows" yaml:"sample_rows" mapstructure:"sample_rows"`
}

// ExplorerConfig groups all stage configurations for the toolkit.
type ExplorerConfig struct {
	Data     DataConfig     `json:"data" yaml:"data" mapstructure:"data"`
	Clean    CleanConfig    `json:"clean" yaml:"clean" mapstructure:"clean"`
	Analysis AnalysisConfig `json:"analysis" yaml:"analysis" mapstructure:"analysis"`
	Server   ServerConfig   `json:"server" yaml:"server" mapstructure:"server"`
}
