package main

import (
	"bufio"
	"encoding/json"
	"log/slog"
	"os"
	"strings"

	iso8583 "github.com/mkadit/iso8583hex"
	"github.com/spf13/cobra"
)

func newUnpackCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unpack [hex]...",
		Short: "Unpack hex wire messages and print them as JSON",
		Example: `  iso8583 unpack 303230306000000000000000...
  iso8583 unpack --file messages.txt --metrics`,
		RunE: func(cmd *cobra.Command, args []string) error {
			dict, err := loadProtocol(a.cfg)
			if err != nil {
				return err
			}

			inputs := make([]string, 0, len(args))
			for _, arg := range args {
				if s := strings.TrimSpace(arg); s != "" {
					inputs = append(inputs, s)
				}
			}
			if path, _ := cmd.Flags().GetString("file"); path != "" {
				lines, err := readLines(path)
				if err != nil {
					return err
				}
				inputs = append(inputs, lines...)
			}
			if len(inputs) == 0 {
				return cmd.Usage()
			}

			msgOpts := messageOptions(a.cfg)
			if strict, _ := cmd.Flags().GetBool("strict-trailer"); strict {
				msgOpts = append(msgOpts, iso8583.WithStrictTrailer())
			}
			processor := iso8583.NewProcessor(dict,
				iso8583.WithConcurrency(a.cfg.Concurrency),
				iso8583.WithMessageOptions(msgOpts...),
				iso8583.WithLogger(slog.New(slog.DiscardHandler)),
				iso8583.WithErrorHandler(func(err error) {
					a.logger.Warn().Err(err).Msg("unpack failed")
				}),
			)

			msgs, batchErr := processor.ProcessBatch(cmd.Context(), inputs)
			enc := json.NewEncoder(cmd.OutOrStdout())
			for _, msg := range msgs {
				if msg == nil {
					continue
				}
				if err := enc.Encode(toView(dict, msg)); err != nil {
					return err
				}
			}

			if withMetrics, _ := cmd.Flags().GetBool("metrics"); withMetrics {
				processor.WriteMetrics(cmd.ErrOrStderr())
			}
			unpacked, failed, _, _ := processor.Stats()
			a.logger.Debug().Uint64("unpacked", unpacked).Uint64("failed", failed).Msg("batch done")
			return batchErr
		},
	}

	cmd.Flags().String("file", "", "read hex messages from a file, one per line")
	cmd.Flags().Bool("strict-trailer", false, "reject hex left over after the last field")
	cmd.Flags().Bool("metrics", false, "write processor counters to stderr in Prometheus format")
	return cmd
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	return lines, sc.Err()
}
