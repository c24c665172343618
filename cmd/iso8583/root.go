package main

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	Version = "0.3.0"
)

// app carries the state built by the root command's PersistentPreRunE.
type app struct {
	v      *viper.Viper
	cfg    cliConfig
	logger zerolog.Logger
}

func newRootCmd(v *viper.Viper) *cobra.Command {
	a := &app{v: v}

	rootCmd := &cobra.Command{
		Use:   "iso8583",
		Short: "pack and unpack hex encoded ISO8583 messages",
		Long: fmt.Sprintf(`iso8583 (v%s)

Packs and unpacks ISO8583 messages in hex wire form, driven by the
ISO 8583:1987 dictionary or one loaded from a JSON, TOML or YAML file.`, Version),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			initConfig(a.v)
			if err := bindFlags(a.v, cmd); err != nil {
				return err
			}
			a.cfg = readConfig(a.v)
			a.logger = newLogger(cmd.ErrOrStderr(), a.cfg.LogLevel)
			return nil
		},
	}

	rootCmd.PersistentFlags().Int("length-prefix", 0, "digits of the message length prefix (0 disables framing)")
	rootCmd.PersistentFlags().String("dictionary", "", "field dictionary file (.json, .toml, .yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Int("concurrency", 4, "parallel workers for batch unpacking")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version number of iso8583",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "iso8583 v%s\n", Version)
		},
	}

	rootCmd.AddCommand(newPackCmd(a))
	rootCmd.AddCommand(newUnpackCmd(a))
	rootCmd.AddCommand(newFieldsCmd(a))
	rootCmd.AddCommand(versionCmd)
	return rootCmd
}
