package envconf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	type Config struct {
		Prefix   string `env:"DYNAMODEL_TEST_PREFIX" envDefault:"dev-"`
		Level    string `env:"DYNAMODEL_TEST_LEVEL" envDefault:"info"`
		Untagged string
	}

	config := &Config{}
	require.NoError(t, Load(config))

	assert.Equal(t, "dev-", config.Prefix)
	assert.Equal(t, "info", config.Level)
	assert.Empty(t, config.Untagged)
}

func TestLoad_EnvironmentOverridesDefault(t *testing.T) {
	t.Setenv("DYNAMODEL_TEST_PREFIX", "prod-")

	type Config struct {
		Prefix string `env:"DYNAMODEL_TEST_PREFIX" envDefault:"dev-"`
	}

	config := &Config{}
	require.NoError(t, Load(config))
	assert.Equal(t, "prod-", config.Prefix)
}

func TestLoad_TypedFields(t *testing.T) {
	t.Setenv("DYNAMODEL_TEST_LIMIT", "250")
	t.Setenv("DYNAMODEL_TEST_CONSISTENT", "false")
	t.Setenv("DYNAMODEL_TEST_RATE", "1.5")

	type Config struct {
		Limit      int     `env:"DYNAMODEL_TEST_LIMIT"`
		Consistent bool    `env:"DYNAMODEL_TEST_CONSISTENT" envDefault:"true"`
		Rate       float64 `env:"DYNAMODEL_TEST_RATE"`
	}

	config := &Config{}
	require.NoError(t, Load(config))

	assert.Equal(t, 250, config.Limit)
	assert.False(t, config.Consistent)
	assert.Equal(t, 1.5, config.Rate)
}

func TestLoad_NestedStruct(t *testing.T) {
	t.Setenv("DYNAMODEL_TEST_LOG_LEVEL", "debug")

	type Log struct {
		Level string `env:"DYNAMODEL_TEST_LOG_LEVEL" envDefault:"info"`
	}
	type Config struct {
		Log Log
	}

	config := &Config{}
	require.NoError(t, Load(config))
	assert.Equal(t, "debug", config.Log.Level)
}

func TestLoad_PointerToNestedStruct(t *testing.T) {
	type Log struct {
		Level string `env:"DYNAMODEL_TEST_LOG_LEVEL" envDefault:"warn"`
	}
	type Config struct {
		Log *Log
	}

	config := &Config{}
	require.NoError(t, Load(config))
	require.NotNil(t, config.Log)
	assert.Equal(t, "warn", config.Log.Level)
}

func TestLoad_InvalidArgument(t *testing.T) {
	err := Load("not a struct")

	var invalidErr *InvalidConfigError
	require.ErrorAs(t, err, &invalidErr)
}

func TestLoad_ConversionError(t *testing.T) {
	t.Setenv("DYNAMODEL_TEST_LIMIT", "not-a-number")

	type Config struct {
		Limit int `env:"DYNAMODEL_TEST_LIMIT"`
	}

	err := Load(&Config{})

	var fieldErr *FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "Limit", fieldErr.FieldName)
	assert.Equal(t, "DYNAMODEL_TEST_LIMIT", fieldErr.EnvVar)
}

func TestLoad_UnsupportedType(t *testing.T) {
	t.Setenv("DYNAMODEL_TEST_TAGS", "a,b")

	type Config struct {
		Tags []string `env:"DYNAMODEL_TEST_TAGS"`
	}

	err := Load(&Config{})
	require.Error(t, err)

	var fieldErr *FieldError
	require.ErrorAs(t, err, &fieldErr)

	var unsupportedErr *UnsupportedTypeError
	assert.ErrorAs(t, fieldErr.Err, &unsupportedErr)
}

func TestMustLoad_PanicsOnError(t *testing.T) {
	assert.Panics(t, func() {
		MustLoad(42)
	})
}
