package seeder

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds the sample data written by the seed command.
type Config struct {
	TopicTitle   string   `yaml:"topic_title"   env:"SEEDER_TOPIC_TITLE"   env-default:"Welcome to threadboard"`
	TopicSummary string   `yaml:"topic_summary" env:"SEEDER_TOPIC_SUMMARY" env-default:"Say hello and try out the board."`
	Posts        []string `yaml:"posts"         env:"SEEDER_POSTS"         env-separator:"|" env-default:"Hello, and welcome!|Each thread holds a limited number of posts.|When a thread fills up it is locked and a notice is posted."`
	DryRun       bool     `yaml:"dry_run"       env:"SEEDER_DRY_RUN"`
}

// LoadConfig reads seeder configuration from a YAML file and environment variables.
// Priority: ENV > YAML > defaults (via env-default tags).
func LoadConfig(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("seeder config: file %s not found", path)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("seeder config: read %s: %w", path, err)
		}
		return &cfg, nil
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("seeder config: read env: %w", err)
	}

	return &cfg, nil
}
