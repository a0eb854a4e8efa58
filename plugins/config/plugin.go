package config

import (
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var (
	// flags
	configName          = flag.StringP("config", "c", "config", "Filename of the config file without the file extension")
	configDirPath       = flag.StringP("config-dir", "d", ".", "Path to the directory containing the config file")
	skipConfigAvailable = flag.Bool("skip-config", false, "Skip config file availability check")

	// Node is viper
	Node = viper.New()
)

func init() {
	// parse errors are returned by Fetch instead of terminating the process
	flag.CommandLine.Init(os.Args[0], flag.ContinueOnError)
}

// Fetch fetches config values from a dir defined via CLI flag --config-dir (or the current working dir if not set).
//
// It parses the command line, binds all registered flags and reads in a single config file starting with "config"
// (can be changed via the --config CLI flag) and ending with: .json, .toml, .yaml or .yml. A missing config file is
// only an error if it is neither optional nor skipped via --skip-config.
func Fetch(arguments []string, optional bool) error {
	if err := flag.CommandLine.Parse(arguments); err != nil {
		return err
	}

	return load(Node, flag.CommandLine, *configDirPath, *configName, optional || *skipConfigAvailable)
}

func load(config *viper.Viper, flagSet *flag.FlagSet, configDir, configName string, skipConfig bool) error {
	// replace dots with underscores in env
	dotReplacer := strings.NewReplacer(".", "_")
	config.SetEnvKeyReplacer(dotReplacer)
	// read in ENV variables
	config.AutomaticEnv()

	if err := config.BindPFlags(flagSet); err != nil {
		return errors.Errorf("failed to bind flags: %w", err)
	}

	config.SetConfigName(configName)
	config.AddConfigPath(configDir)
	if err := config.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) && skipConfig {
			return nil
		}

		return errors.Errorf("failed to read config file %s in %s: %w", configName, configDir, err)
	}

	return nil
}
