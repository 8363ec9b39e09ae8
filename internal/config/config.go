// Package config defines the data structures related to configuration and
// includes functions for loading and validating the config.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/iwvelando/finance-tracker/pkg/constants"
	"github.com/iwvelando/finance-tracker/pkg/validation"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for finance-tracker.
type Configuration struct {
	Logging LoggingConfig `yaml:"logging,omitempty"`
	Output  OutputConfig  `yaml:"output,omitempty"`
	Loans   []Loan        `yaml:"loans"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, json, yaml
}

// envKeys are the settings that can be overridden from the environment even
// when the config file omits them, e.g. FINANCE_TRACKER_OUTPUT_FORMAT=json.
var envKeys = []string{
	"logging.level",
	"logging.format",
	"logging.outputFile",
	"output.format",
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there. A .env file in the working directory is loaded first
// if present.
func LoadConfiguration(configPath string) (*Configuration, error) {
	return LoadConfigurationWithEnv(configPath, constants.DefaultEnvFile)
}

// LoadConfigurationWithEnv is LoadConfiguration with an explicit dotenv file.
// A missing dotenv file is not an error.
func LoadConfigurationWithEnv(configPath, envPath string) (*Configuration, error) {
	if err := loadEnvFile(envPath); err != nil {
		return nil, err
	}

	v := newViper()
	v.SetConfigFile(configPath)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %w", err)
	}

	return decode(v)
}

// LoadConfigurationFromReader loads YAML configuration from r. Environment
// overrides apply as with LoadConfiguration; no dotenv file is read.
func LoadConfigurationFromReader(r io.Reader) (*Configuration, error) {
	v := newViper()
	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("error reading config, %w", err)
	}

	return decode(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yml")
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, key := range envKeys {
		_ = v.BindEnv(key)
	}
	return v
}

func decode(v *viper.Viper) (*Configuration, error) {
	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}
	return &configuration, nil
}

func loadEnvFile(envPath string) error {
	if envPath == "" {
		return nil
	}
	if _, err := os.Stat(envPath); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(envPath); err != nil {
		return fmt.Errorf("error loading env file %s, %w", envPath, err)
	}
	return nil
}

// ValidateConfiguration performs business validation of the configured loans
// and returns warnings. The engine does not apply these checks itself.
func (c *Configuration) ValidateConfiguration() []string {
	validator := &validation.ConfigValidator{}
	for i := range c.Loans {
		validator.Loans = append(validator.Loans, c.Loans[i].validationConfig())
	}
	warnings := validator.ValidateAll()

	for _, loan := range c.Loans {
		if loan.InterestRate != 0 && loan.AnnualRatePercent != 0 {
			warnings = append(warnings, fmt.Sprintf("Loan '%s' sets both interestRate and annualRatePercent, annualRatePercent will be used",
				loan.Name))
		}
	}

	return warnings
}

// FindLoan returns the configured loan with the given name.
func (c *Configuration) FindLoan(name string) (*Loan, bool) {
	for i := range c.Loans {
		if c.Loans[i].Name == name {
			return &c.Loans[i], true
		}
	}
	return nil, false
}
