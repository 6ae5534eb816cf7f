package peer

import (
	"os"

	"golang.org/x/xerrors"
	"gopkg.in/yaml.v3"
)

// -----------------------------------------------------------------------------
// config

// Configuration controls how share documents are validated and how
// recoveries are run.
type Configuration struct {
	// StrictKeys rejects document keys that are neither "keys" nor a decimal
	// abscissa. When false they are ignored.
	StrictKeys bool `yaml:"strict_keys"`

	// EnforceShareCount requires the declared n to match the number of
	// shares found in the document.
	EnforceShareCount bool `yaml:"enforce_share_count"`

	// RejectDuplicates makes the loader fail on two entries with the same
	// abscissa, before any interpolation.
	RejectDuplicates bool `yaml:"reject_duplicates"`

	// MaxThreshold bounds k. Zero means unbounded.
	MaxThreshold int `yaml:"max_threshold"`

	// Workers is the number of recoveries run in parallel by a batch.
	Workers int `yaml:"workers"`

	// Cache keeps recovered secrets keyed by share set fingerprint.
	Cache bool `yaml:"cache"`
}

// DefaultConfiguration returns the configuration used when none is given.
func DefaultConfiguration() Configuration {
	return Configuration{
		StrictKeys:        false,
		EnforceShareCount: false,
		RejectDuplicates:  true,
		MaxThreshold:      512,
		Workers:           4,
		Cache:             true,
	}
}

// ConfigurationFromYAML reads a configuration file. Fields missing from the
// file keep their default value.
func ConfigurationFromYAML(path string) (*Configuration, error) {
	yamlFile, err := os.ReadFile(path)
	if err != nil {
		return nil, xerrors.Errorf("failed to read config %s: %v", path, err)
	}

	conf := DefaultConfiguration()
	err = yaml.Unmarshal(yamlFile, &conf)
	if err != nil {
		return nil, xerrors.Errorf("failed to parse config %s: %v", path, err)
	}

	err = conf.Validate()
	if err != nil {
		return nil, err
	}

	return &conf, nil
}

// Validate checks the bounds of the numeric fields.
func (c Configuration) Validate() error {
	if c.MaxThreshold < 0 {
		return xerrors.Errorf("max_threshold must not be negative, got %d", c.MaxThreshold)
	}
	if c.Workers <= 0 {
		return xerrors.Errorf("workers must be positive, got %d", c.Workers)
	}
	return nil
}
