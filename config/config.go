/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package config

import (
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	storeerrors "github.com/suparena/recordstore/errors"
)

// Supported backends.
const (
	BackendFile     = "file"
	BackendDynamoDB = "dynamodb"
)

// Defaults applied by Load.
const (
	DefaultBackend  = BackendFile
	DefaultFilePath = "file.json"
	DefaultLogLevel = "info"
	DefaultDocument = "default"
)

// Config selects and parameterizes the document backend.
type Config struct {
	Backend  string         `yaml:"backend"`
	File     FileConfig     `yaml:"file"`
	DynamoDB DynamoDBConfig `yaml:"dynamodb"`
	LogLevel string         `yaml:"log_level"`
}

type FileConfig struct {
	Path   string `yaml:"path"`
	Indent bool   `yaml:"indent"`
}

type DynamoDBConfig struct {
	Region    string `yaml:"region"`
	Table     string `yaml:"table"`
	Document  string `yaml:"document"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Backend:  DefaultBackend,
		File:     FileConfig{Path: DefaultFilePath},
		DynamoDB: DynamoDBConfig{Document: DefaultDocument},
		LogLevel: DefaultLogLevel,
	}
}

// Load builds a Config from defaults, then the YAML file at path (skipped
// when path is empty), then environment variables. A .env file in the
// working directory is loaded first if present; it never overrides
// variables that are already set.
func Load(path string) (Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return Config{}, errors.Wrap(err, "config: load .env")
	}

	cfg := Default()
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return Config{}, errors.Wrapf(err, "config: read %s", path)
		}
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return Config{}, storeerrors.NewParseError(path, "config", nil, err)
		}
	}

	cfg.applyEnv(os.LookupEnv)
	return cfg, cfg.Validate()
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) {
	set := func(dst *string, name string) {
		if v, ok := lookup(name); ok && strings.TrimSpace(v) != "" {
			*dst = strings.TrimSpace(v)
		}
	}
	set(&c.Backend, "RECORDSTORE_BACKEND")
	set(&c.File.Path, "RECORDSTORE_FILE")
	set(&c.LogLevel, "RECORDSTORE_LOG_LEVEL")
	set(&c.DynamoDB.Document, "RECORDSTORE_DOCUMENT")
	set(&c.DynamoDB.Region, "AWS_REGION")
	set(&c.DynamoDB.Table, "AWS_DDB_TABLE")
	set(&c.DynamoDB.AccessKey, "AWS_ACCESS_KEY")
	set(&c.DynamoDB.SecretKey, "AWS_SECRET_KEY")
}

// Validate checks the backend-specific settings.
func (c Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return err
	}
	switch c.Backend {
	case BackendFile:
		if strings.TrimSpace(c.File.Path) == "" {
			return storeerrors.NewValidationError("file.path", "must not be empty")
		}
	case BackendDynamoDB:
		if c.DynamoDB.Region == "" {
			return storeerrors.NewValidationError("dynamodb.region", "must not be empty")
		}
		if c.DynamoDB.Table == "" {
			return storeerrors.NewValidationError("dynamodb.table", "must not be empty")
		}
		if c.DynamoDB.Document == "" {
			return storeerrors.NewValidationError("dynamodb.document", "must not be empty")
		}
	default:
		return storeerrors.NewValidationError("backend", "unsupported backend "+c.Backend)
	}
	return nil
}

// Level parses LogLevel.
func (c Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, storeerrors.NewValidationError("log_level", err.Error())
	}
	return level, nil
}
