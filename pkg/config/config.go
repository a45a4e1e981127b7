// Package config loads pipeline configuration from the environment.
// Everything has a usable default except the storage credentials, which
// are only required by the load stage.
package config

import (
	"os"

	"catalog-scrape/pkg/urls"
)

// Artifact file names shared between stages. Each stage reads its
// predecessor's artifact and writes its own.
const (
	CoursesFile          = "rpi_courses.json"
	NormalizedFile       = "normalized_courses.json"
	ProgramsFile         = "programs.json"
	EnrichedProgramsFile = "enriched_programs.json"
	CommCoursesFile      = "comm_courses.json"
)

// Config holds everything the pipeline stages need from the
// environment.
type Config struct {
	// DatabaseURL is the Postgres DSN used by the load stage.
	DatabaseURL string

	// Supabase credentials; when set, the load stage targets Supabase
	// instead of a plain Postgres instance.
	SupabaseURL      string
	SupabaseKey      string
	SupabasePassword string

	// MongoURI enables the optional raw-scrape archive.
	MongoURI string

	// OutputDir is where intermediate JSON artifacts live.
	OutputDir string

	// IndexURL overrides the catalog index page, mainly for fixtures.
	IndexURL string
}

// FromEnv reads configuration from the environment, applying defaults.
func FromEnv() *Config {
	cfg := &Config{
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		SupabaseURL:      os.Getenv("SUPABASE_URL"),
		SupabaseKey:      os.Getenv("SUPABASE_KEY"),
		SupabasePassword: os.Getenv("SUPABASE_DB_PASSWORD"),
		MongoURI:         os.Getenv("MONGO_URI"),
		OutputDir:        os.Getenv("CATALOG_OUTPUT_DIR"),
		IndexURL:         os.Getenv("CATALOG_INDEX_URL"),
	}

	if cfg.OutputDir == "" {
		cfg.OutputDir = "."
	}
	if cfg.IndexURL == "" {
		cfg.IndexURL = urls.IndexURL
	}
	return cfg
}

// UseSupabase reports whether the load stage should target Supabase.
func (c *Config) UseSupabase() bool {
	return c.SupabaseURL != "" && c.SupabaseKey != ""
}
