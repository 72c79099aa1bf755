package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/wippyai/writ/records"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	engine, err := cfg.Engine()
	require.NoError(t, err)
	assert.Equal(t, records.SamplePopulated, engine.Variant())
	assert.Equal(t, records.FlatRecord{Name: "n", Age: 11},
		engine.Transform().TransformRecord(records.FlatRecord{Name: "n", Age: 1}))
}

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(`
policy: fixture
sample: empty
fixture:
  name: norm
  age: 7
log:
  level: debug
  format: json
metrics:
  enabled: true
  file: /tmp/writ.prom
`))
	require.NoError(t, err)

	assert.Equal(t, "fixture", cfg.Policy)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "writ", cfg.Metrics.Namespace)
	assert.True(t, cfg.Metrics.Enabled)

	engine, err := cfg.Engine()
	require.NoError(t, err)
	assert.Equal(t, records.SampleEmpty, engine.Variant())
	assert.Equal(t, records.FlatRecord{Name: "norm", Age: 7},
		engine.Transform().TransformRecord(records.FlatRecord{Name: "x", Age: 100}))
}

func TestParse_Empty(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParse_Invalid(t *testing.T) {
	tests := map[string]string{
		"unknown key":       "polcy: fixture\n",
		"unknown policy":    "policy: age-by-five\n",
		"unknown sample":    "sample: partial\n",
		"bad level":         "log: {level: loud}\n",
		"bad format":        "log: {format: xml}\n",
		"age overflow":      "fixture: {name: x, age: 3000000000}\n",
		"missing namespace": "metrics: {enabled: true, namespace: \"\"}\n",
		"not yaml":          "policy: [\n",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			assert.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "writ.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sample: empty\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "empty", cfg.Sample)
	assert.Equal(t, "age-by-ten", cfg.Policy)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLogLogger(t *testing.T) {
	for _, format := range []string{"console", "json"} {
		l, err := Log{Level: "warn", Format: format}.Logger()
		require.NoError(t, err)
		assert.False(t, l.Core().Enabled(zapcore.DebugLevel))
	}

	_, err := Log{Level: "loud", Format: "console"}.Logger()
	assert.Error(t, err)
}
