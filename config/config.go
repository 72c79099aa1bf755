// Package config loads writ configuration from YAML.
//
//	policy: age-by-ten        # age-by-ten | fixture
//	sample: populated         # populated | empty
//	fixture: {name: test, age: 1}
//	log: {level: info, format: console}
//	metrics: {enabled: false, namespace: writ, file: ""}
//
// Unknown keys are rejected. Missing keys keep their Default values.
package config

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/wippyai/writ/errors"
	"github.com/wippyai/writ/records"
)

// Config is the root configuration document.
type Config struct {
	Policy  string  `yaml:"policy" validate:"oneof=age-by-ten fixture"`
	Sample  string  `yaml:"sample" validate:"oneof=populated empty"`
	Fixture Fixture `yaml:"fixture"`
	Log     Log     `yaml:"log"`
	Metrics Metrics `yaml:"metrics"`
}

// Fixture is the record the fixture policy normalizes to.
type Fixture struct {
	Name string `yaml:"name"`
	Age  int32  `yaml:"age"`
}

type Log struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=console json"`
}

type Metrics struct {
	Namespace string `yaml:"namespace" validate:"required_if=Enabled true"`
	// File, when set, receives the metrics in text exposition format
	// after each command.
	File    string `yaml:"file"`
	Enabled bool   `yaml:"enabled"`
}

var validate = validator.New()

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Policy:  records.PolicyAgeByTen,
		Sample:  records.SamplePopulatedName,
		Fixture: Fixture{Name: records.DefaultFixture.Name, Age: records.DefaultFixture.Age},
		Log:     Log{Level: "info", Format: "console"},
		Metrics: Metrics{Namespace: "writ"},
	}
}

// Load reads and validates the file at path on top of Default.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(errors.PhaseConfig, errors.KindNotFound, err, "read config")
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes and validates a YAML document on top of Default. An empty
// document yields Default.
func Parse(data []byte) (Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return Config{}, errors.Wrap(errors.PhaseConfig, errors.KindInvalidData, err, "parse config")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every field against its allowed values.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(errors.PhaseConfig, errors.KindInvalidInput, err, "invalid config")
	}
	return nil
}

// FixtureRecord returns the fixture as a record.
func (c Config) FixtureRecord() records.FlatRecord {
	return records.FlatRecord{Name: c.Fixture.Name, Age: c.Fixture.Age}
}

// Engine builds a records engine with the configured policy and sample
// variant.
func (c Config) Engine() (*records.Engine, error) {
	policy, err := records.PolicyByName(c.Policy, c.FixtureRecord())
	if err != nil {
		return nil, err
	}
	variant, err := records.ParseSampleVariant(c.Sample)
	if err != nil {
		return nil, err
	}
	return records.NewEngine(records.WithTransform(policy), records.WithSampleVariant(variant)), nil
}

// Logger builds a zap logger writing to stderr at the configured level
// and format.
func (l Log) Logger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(l.Level)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseConfig, errors.KindInvalidInput, err, "log level")
	}

	var zc zap.Config
	if l.Format == "json" {
		zc = zap.NewProductionConfig()
	} else {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}
	zc.DisableStacktrace = true
	return zc.Build()
}
