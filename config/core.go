// Package config implements configuration for the accfind executable using
// https://github.com/spf13/viper.
package config

import (
	"bytes"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Contains all the keys for accfind's config
const (
	LogLevelKey     = "loglevel"
	ParallelKey     = "parallel"
	WaitTimeoutKey  = "wait.timeout"
	WaitIntervalKey = "wait.interval"
)

// Load sets accfind's defaults and tells viper where to find the config.
// Values can come from ACCFIND_<key> environment variables, where "." in a
// key is replaced by "_" (e.g. ACCFIND_WAIT_TIMEOUT).
func Load() error {
	viper.SetDefault(LogLevelKey, "warn")
	viper.SetDefault(ParallelKey, 4)
	viper.SetDefault(WaitTimeoutKey, 10*time.Second)
	viper.SetDefault(WaitIntervalKey, 100*time.Millisecond)

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return err
	}
	defaultFileAbs = filepath.Join(homeDir, defaultFileSuffix)

	viper.SetEnvPrefix("ACCFIND")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetConfigType("yaml")
	return nil
}

var defaultFileSuffix = filepath.Join(".puppetlabs", "accfind", "accfind.yaml")
var defaultFileRel = filepath.Join("~", defaultFileSuffix)
var defaultFileAbs string

// DefaultFile returns the default config file's path
func DefaultFile() string {
	return defaultFileRel
}

// ReadFrom reads the config from the specified file.
// If file == DefaultFile(), then ReadFrom will not return
// an error if file does not exist.
func ReadFrom(file string) error {
	if file == DefaultFile() {
		if defaultFileAbs == "" {
			panic("config.ReadFrom: default file not set. Please call config.Load()")
		}
		if _, err := os.Stat(defaultFileAbs); os.IsNotExist(err) {
			return nil
		}
		file = defaultFileAbs
	}
	content, err := ioutil.ReadFile(file)
	if err != nil {
		return newConfigReadErr(file, err)
	}
	if err := viper.ReadConfig(bytes.NewReader(content)); err != nil {
		return newConfigReadErr(file, err)
	}
	return nil
}

func newConfigReadErr(file string, reason error) error {
	return fmt.Errorf("could not read the config from %v: %v", file, reason)
}

// Parallel is the number of snapshots searched at once.
func Parallel() int {
	if n := viper.GetInt(ParallelKey); n > 0 {
		return n
	}
	return 1
}

// WaitTimeout is how long `accfind wait` keeps retrying.
func WaitTimeout() time.Duration {
	return viper.GetDuration(WaitTimeoutKey)
}

// WaitInterval is the delay between `accfind wait` attempts.
func WaitInterval() time.Duration {
	return viper.GetDuration(WaitIntervalKey)
}
