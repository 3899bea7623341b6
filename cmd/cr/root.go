package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/daviddao/calendrier/pkg/config"
)

// flagKeys maps persistent flag names to viper keys.
var flagKeys = map[string]string{
	"json":      "json",
	"offset":    "offset",
	"table-db":  "table_db",
	"log-level": "log_level",
}

func newRootCmd(out, errOut io.Writer, now func() time.Time) *cobra.Command {
	a := &app{out: out, errOut: errOut, now: now}

	root := &cobra.Command{
		Use:           "cr",
		Short:         "French Republican calendar conversions",
		Long:          "cr converts Gregorian instants to Republican dates and decimal time, and back.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := initConfig(cmd); err != nil {
				return err
			}
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			return a.setup(cmd.Context(), cfg)
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	pf := root.PersistentFlags()
	pf.String("config", "", "config file (default .calendrier.yaml)")
	pf.Bool("json", false, "JSON output")
	pf.String("offset", "decree", "clock offset: decree, none, average or seconds")
	pf.String("table-db", "", "load the year-start table from this SQLite file")
	pf.String("log-level", "warn", "log level: debug, info, warn or error")

	root.AddCommand(
		newNowCmd(a),
		newConvertCmd(a),
		newGregorianCmd(a),
		newYearCmd(a),
		newTableCmd(a),
	)
	return root
}

// initConfig points viper at the config file and binds the persistent
// flags. A missing default config file is not an error.
func initConfig(cmd *cobra.Command) error {
	if cfgFile, _ := cmd.Flags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".calendrier")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix(config.EnvPrefix)
	viper.AutomaticEnv()

	for name, key := range flagKeys {
		if err := viper.BindPFlag(key, cmd.Flags().Lookup(name)); err != nil {
			return fmt.Errorf("bind --%s: %w", name, err)
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}
	return nil
}
