// Package config holds the walletgen settings. Values come from command-line
// flags, then WALLETGEN_* environment variables, then the defaults below.
package config

import (
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// DirKey is the directory default artifact files are read from and
	// written to.
	DirKey = "DIR"
	// LanguageKey selects the mnemonic word list.
	LanguageKey = "LANGUAGE"
	// AssumeYesKey overwrites existing artifact files without asking.
	AssumeYesKey = "YES"
	// LogLevelKey is one of debug, info, warn, error or off.
	LogLevelKey = "LOG_LEVEL"
	// LogJSONKey switches log output to JSON.
	LogJSONKey = "LOG_JSON"

	// EnvPrefix is prepended to every key when read from the environment.
	EnvPrefix = "WALLETGEN"
)

// Config is a snapshot of the resolved settings.
type Config struct {
	Dir       string
	Language  string
	AssumeYes bool
	LogLevel  string
	LogJSON   bool
}

// New returns a viper instance with defaults and environment lookup set up.
func New() *viper.Viper {
	vip := viper.New()
	vip.SetEnvPrefix(EnvPrefix)
	vip.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	vip.AutomaticEnv()

	vip.SetDefault(DirKey, ".")
	vip.SetDefault(LanguageKey, "en")
	vip.SetDefault(AssumeYesKey, false)
	vip.SetDefault(LogLevelKey, "info")
	vip.SetDefault(LogJSONKey, false)
	return vip
}

// BindFlags binds command-line flags to keys. Each entry maps a key to the
// name of a flag in fs.
func BindFlags(vip *viper.Viper, fs *pflag.FlagSet, flags map[string]string) error {
	for key, name := range flags {
		if err := vip.BindPFlag(key, fs.Lookup(name)); err != nil {
			return err
		}
	}
	return nil
}

// Load resolves the settings.
func Load(vip *viper.Viper) Config {
	return Config{
		Dir:       vip.GetString(DirKey),
		Language:  vip.GetString(LanguageKey),
		AssumeYes: vip.GetBool(AssumeYesKey),
		LogLevel:  strings.ToLower(vip.GetString(LogLevelKey)),
		LogJSON:   vip.GetBool(LogJSONKey),
	}
}

// Path returns the location of a default artifact file inside Dir.
func (c Config) Path(name string) string {
	return filepath.Join(c.Dir, name)
}
