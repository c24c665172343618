package main

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	iso8583 "github.com/mkadit/iso8583hex"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

// cliConfig is the resolved configuration shared by all subcommands.
type cliConfig struct {
	LengthPrefix int
	Dictionary   string
	LogLevel     string
	Concurrency  int
}

// initConfig loads .env files and binds ISO8583_* environment variables.
func initConfig(v *viper.Viper) {
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	v.SetEnvPrefix("iso8583")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
}

func bindFlags(v *viper.Viper, cmd *cobra.Command) error {
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}
	return v.BindPFlags(cmd.InheritedFlags())
}

func readConfig(v *viper.Viper) cliConfig {
	return cliConfig{
		LengthPrefix: v.GetInt("length-prefix"),
		Dictionary:   strings.TrimSpace(v.GetString("dictionary")),
		LogLevel:     v.GetString("log-level"),
		Concurrency:  v.GetInt("concurrency"),
	}
}

// loadProtocol returns the dictionary named by cfg, or ISO 8583:1987.
func loadProtocol(cfg cliConfig) (*iso8583.Protocol, error) {
	if cfg.Dictionary == "" {
		return iso8583.DefaultProtocol(), nil
	}
	return iso8583.LoadProtocolFile(cfg.Dictionary)
}

func messageOptions(cfg cliConfig) []iso8583.MessageOption {
	return []iso8583.MessageOption{iso8583.WithLengthPrefix(cfg.LengthPrefix)}
}

// newLogger writes console logs to w, coloured only on a terminal.
func newLogger(w io.Writer, level string) zerolog.Logger {
	noColor := true
	if f, ok := w.(*os.File); ok {
		noColor = !term.IsTerminal(int(f.Fd()))
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	output := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
		NoColor:    noColor,
	}
	return zerolog.New(output).Level(lvl).With().Timestamp().Str("app", "iso8583").Logger()
}
