package application

import (
	"bytes"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/merkle-sys/merkle-go/crypto/hasher"
)

// Config is the configuration of a merkle executable: which registered
// hash capability to commit with, and how to log. The zero Hasher means
// DefaultHasherID.
type Config struct {
	Path   string        `toml:"-"`
	Hasher string        `toml:"hasher"`
	Logger *LoggerConfig `toml:"logger"`
}

// DefaultHasherID is the capability used when the config names none.
const DefaultHasherID = "SHA-256"

// NewConfig initializes a config with the given file path, hasher id
// and logger configuration.
func NewConfig(file, hasherID string, logger *LoggerConfig) *Config {
	return &Config{
		Path:   file,
		Hasher: hasherID,
		Logger: logger,
	}
}

// LoadConfig reads and parses the TOML config at file.
func LoadConfig(file string) (*Config, error) {
	conf := &Config{}
	if _, err := toml.DecodeFile(file, conf); err != nil {
		return nil, fmt.Errorf("Failed to load config: %v", err)
	}
	conf.Path = file
	return conf, nil
}

// Save writes the config in TOML to its file path. It refuses to
// overwrite an existing file.
func (conf *Config) Save() error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(conf); err != nil {
		return err
	}
	if _, err := os.Stat(conf.Path); err == nil {
		return fmt.Errorf("%s already exists", conf.Path)
	}
	return os.WriteFile(conf.Path, buf.Bytes(), 0644)
}

// TreeHasher resolves the configured hash capability from the registry.
func (conf *Config) TreeHasher() (hasher.TreeHasher, error) {
	id := conf.Hasher
	if id == "" {
		id = DefaultHasherID
	}
	return hasher.Hasher(id)
}
