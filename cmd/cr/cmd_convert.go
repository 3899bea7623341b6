package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/daviddao/calendrier/pkg/clock"
	"github.com/daviddao/calendrier/pkg/model"
)

// gregorianLayouts are tried in order after plain Unix seconds.
var gregorianLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func newConvertCmd(a *app) *cobra.Command {
	var traditional bool
	cmd := &cobra.Command{
		Use:   "convert <unix-seconds|RFC3339|YYYY-MM-DD>",
		Short: "Convert a Gregorian instant to a Republican date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			unix, err := parseInstant(args[0])
			if err != nil {
				return err
			}
			a.log.Debug("converting", "unix", unix)
			ts, err := a.conv.FromUnix(unix)
			if err != nil {
				return err
			}
			return a.printDate(a.cal.Decompose(ts), traditional)
		},
	}
	cmd.Flags().BoolVarP(&traditional, "traditional", "t", false, "write the year in Roman numerals")
	return cmd
}

// parseInstant accepts Unix seconds within the converter's range or a
// UTC timestamp.
func parseInstant(s string) (int64, error) {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		if err := model.CheckRange("unix time", n, clock.MinUnix, clock.MaxUnix); err != nil {
			return 0, err
		}
		return n, nil
	}
	for _, layout := range gregorianLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Unix(), nil
		}
	}
	return 0, fmt.Errorf("cannot parse %q as Unix seconds or RFC 3339 time", s)
}
