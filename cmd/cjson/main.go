// Command cjson reads a JSON document from stdin, decodes it, and writes it
// back out through Encode — a round-trip harness useful for exercising the
// codec's options from the shell.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cjson-go/cjson"
)

var log = logrus.New()

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		allUnicode  bool
		dateFormat  string
		timeFormat  string
		dateTimeFmt string
	)

	cmd := &cobra.Command{
		Use:   "cjson",
		Short: "Decode JSON from stdin and re-encode it to stdout",
		RunE: func(cmd *cobra.Command, args []string) error {
			reqID := uuid.New()
			entry := log.WithField("request_id", reqID.String())

			input, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				entry.WithError(err).Error("failed to read stdin")
				return errors.Wrap(err, "reading stdin")
			}

			var decOpts []cjson.DecodeOption
			if allUnicode {
				decOpts = append(decOpts, cjson.WithAllUnicode())
			}

			val, err := cjson.Decode(input, decOpts...)
			if err != nil {
				entry.WithError(err).Error("decode failed")
				return errors.Wrap(err, "decoding input")
			}

			var encOpts []cjson.EncodeOption
			if dateFormat != "" {
				encOpts = append(encOpts, cjson.WithDateFormat(dateFormat))
			}
			if timeFormat != "" {
				encOpts = append(encOpts, cjson.WithTimeFormat(timeFormat))
			}
			if dateTimeFmt != "" {
				encOpts = append(encOpts, cjson.WithDateTimeFormat(dateTimeFmt))
			}

			out, err := cjson.Encode(val, encOpts...)
			if err != nil {
				entry.WithError(err).Error("encode failed")
				return errors.Wrap(err, "encoding output")
			}

			entry.Debug("round-trip complete")
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}

	flags := cmd.Flags()
	flags.BoolVar(&allUnicode, "all-unicode", false, "force every decoded string through the \\u escape path")
	flags.StringVar(&dateFormat, "date-format", "", "strftime pattern for date-only values (default %Y-%m-%d)")
	flags.StringVar(&timeFormat, "time-format", "", "strftime pattern for time-only values (default %H:%M:%S)")
	flags.StringVar(&dateTimeFmt, "datetime-format", "", "strftime pattern for combined date+time values")

	return cmd
}
