package config

import (
	"flag"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/nobletooth/primer/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("full", func(t *testing.T) {
		conf, err := Load([]byte(`
log:
  handler_type: json
  level: debug
sort:
  input: "[3, 1, 2]"
  descending: true
shell:
  script: ./ops.txt
`))
		require.NoError(t, err)
		require.NotNil(t, conf.Log)
		assert.Equal(t, "json", *conf.Log.HandlerType)
		assert.Equal(t, "debug", *conf.Log.Level)
		require.NotNil(t, conf.Sort)
		assert.Equal(t, "[3, 1, 2]", *conf.Sort.Input)
		assert.True(t, *conf.Sort.Descending)
		require.NotNil(t, conf.Shell)
		assert.Equal(t, "./ops.txt", *conf.Shell.Script)
		assert.Nil(t, conf.Shell.Prompt)
	})

	t.Run("empty", func(t *testing.T) {
		conf, err := Load(nil)
		require.NoError(t, err)
		assert.Equal(t, &Config{}, conf)
	})

	t.Run("unknown_field", func(t *testing.T) {
		_, err := Load([]byte("log:\n  colour: red\n"))
		assert.Error(t, err)
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := Load([]byte("log: [unterminated"))
		assert.Error(t, err)
	})
}

func TestCollectAndRegisterFlags(t *testing.T) {
	conf, err := Load([]byte("log:\n  level: error\nsort:\n  descending: false\n"))
	require.NoError(t, err)

	flags := make(map[string]string)
	require.NoError(t, collectAndRegisterFlags(flags, reflect.ValueOf(conf).Elem()))
	assert.Equal(t, map[string]string{"log_level": "error", "descending": "false"}, flags)
}

func TestSetConfigFlags(t *testing.T) {
	utils.SetTestFlag(t, "log_level", "info")
	conf, err := Load([]byte("log:\n  level: debug\nshell:\n  script: ops.txt\n"))
	require.NoError(t, err)

	// The "script" flag isn't defined in this binary, so it is skipped.
	require.NoError(t, setConfigFlags(conf))
	assert.Equal(t, "debug", flag.Lookup("log_level").Value.String())
}

func TestInitFlags(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("log:\n  handler_type: json\n"), 0o644))
	utils.SetTestFlag(t, "config_file", configPath)
	utils.SetTestFlag(t, "log_handler_type", "text")

	InitFlags()
	assert.Equal(t, "json", flag.Lookup("log_handler_type").Value.String())
}

func TestInitFlags_MissingFile(t *testing.T) {
	utils.SetTestFlag(t, "config_file", filepath.Join(t.TempDir(), "missing.yaml"))
	utils.SetTestFlag(t, "log_handler_type", "text")

	InitFlags()
	assert.Equal(t, "text", flag.Lookup("log_handler_type").Value.String())
}

func TestGetDefinedFlags(t *testing.T) {
	definedFlags, err := getDefinedFlags(reflect.TypeOf(Config{}))
	require.NoError(t, err)
	for _, name := range []string{"log_handler_type", "log_level", "input", "descending", "script", "prompt"} {
		assert.Containsf(t, definedFlags, name, "Flag %s should be defined", name)
	}

	type duplicated struct {
		A *string `flag:"same"`
		B *struct {
			C *string `flag:"same"`
		}
	}
	_, err = getDefinedFlags(reflect.TypeOf(duplicated{}))
	assert.Error(t, err)
}

func TestFlagsAreRegisteredInConfig(t *testing.T) {
	assert.Empty(t, CollectUnregisteredFlags())
}
