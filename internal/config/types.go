package config

// Config is the .quizconv/config.yml schema.
type Config struct {
	Version int          `yaml:"version"`
	Inputs  []string     `yaml:"inputs"`
	Output  OutputConfig `yaml:"output"`
	Export  ExportConfig `yaml:"export"`
	Serve   ServeConfig  `yaml:"serve"`
}

type OutputConfig struct {
	Dir    string `yaml:"dir"`
	Format string `yaml:"format"`
}

type ExportConfig struct {
	DuckDB string `yaml:"duckdb"`
	XLSX   string `yaml:"xlsx"`
}

type ServeConfig struct {
	Addr           string   `yaml:"addr"`
	AllowedOrigins []string `yaml:"allowed_origins"`
	MaxBodyBytes   int64    `yaml:"max_body_bytes"`
}
