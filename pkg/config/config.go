// Package config loads back-office settings from a .crest file or CREST_*
// environment variables.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"tableflip.dev/crest/pkg/record"
)

// Config exposes the tunable settings.
type Config interface {
	// ArchivePath is where saved analysis summaries land on disk.
	ArchivePath() string
	// StatusVocabulary is the client pipeline stage set.
	StatusVocabulary() []record.ClientStatus
	// DefaultRate is the rate preselected for new commissions.
	DefaultRate() record.Rate
	// AnalysisDelay is how long the offer analyzer pretends to think.
	AnalysisDelay() time.Duration
}

// Load reads the config. A missing file is fine; every setting has a
// default and the environment can override each one.
func Load() (Config, error) {
	v := viper.New()
	v.SetDefault("archive", "~/.crest.db")
	v.SetDefault("rate", string(record.Rate3))
	v.SetDefault("analysis-delay", "3s")
	v.SetDefault("statuses", []string{})
	v.SetConfigName(".crest") // .yaml is implicit
	v.SetEnvPrefix("CREST")
	v.AutomaticEnv()

	if override := os.Getenv("CREST_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")
	if home, err := homedir.Dir(); err == nil {
		v.AddConfigPath(home)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("config: read: %w", err)
		}
	}

	archive, err := homedir.Expand(v.GetString("archive"))
	if err != nil {
		return nil, fmt.Errorf("config: expand archive path: %w", err)
	}

	rate, err := record.ParseRate(v.GetString("rate"))
	if err != nil {
		return nil, err
	}

	delay := v.GetDuration("analysis-delay")
	if delay < 0 {
		return nil, fmt.Errorf("config: negative analysis delay %v", delay)
	}

	var vocab []record.ClientStatus
	for _, s := range v.GetStringSlice("statuses") {
		vocab = append(vocab, record.ClientStatus(s))
	}

	return &fileConfig{
		archive: archive,
		vocab:   vocab,
		rate:    rate,
		delay:   delay,
	}, nil
}

type fileConfig struct {
	archive string
	vocab   []record.ClientStatus
	rate    record.Rate
	delay   time.Duration
}

func (c *fileConfig) ArchivePath() string { return c.archive }

func (c *fileConfig) StatusVocabulary() []record.ClientStatus {
	if len(c.vocab) == 0 {
		return record.DefaultStatusVocabulary()
	}
	return c.vocab
}

func (c *fileConfig) DefaultRate() record.Rate { return c.rate }

func (c *fileConfig) AnalysisDelay() time.Duration { return c.delay }
