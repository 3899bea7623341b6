package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/daviddao/calendrier/pkg/model"
)

func newGregorianCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "gregorian <year> <month> <day> [hour minute second]",
		Short: "Convert a Republican date to a Gregorian instant",
		Long: "Convert a Republican date to a Gregorian instant (UTC).\n\n" +
			"The month is a number from 1 to 13 or a name such as vendemiaire or sansculottides.\n" +
			"Time of day is decimal: hour 0-9, minute and second 0-99.",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 3 && len(args) != 6 {
				return fmt.Errorf("want 3 or 6 arguments, got %d", len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := parseField("year", args[0])
			if err != nil {
				return err
			}
			month, err := parseMonthArg(args[1])
			if err != nil {
				return err
			}
			day, err := parseField("day", args[2])
			if err != nil {
				return err
			}
			var hms [3]int64
			if len(args) == 6 {
				for i, name := range []string{"hour", "minute", "second"} {
					if hms[i], err = parseField(name, args[3+i]); err != nil {
						return err
					}
				}
			}

			d, err := a.cal.FromYMDHMS(year, month, day, hms[0], hms[1], hms[2])
			if err != nil {
				return err
			}
			if a.cfg.JSON {
				v, err := a.view(d)
				if err != nil {
					return err
				}
				return printJSON(a.out, v)
			}
			greg, err := a.gregorian(d.Timestamp())
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(a.out, "%s %s -> %s\n", d, d.TimeOfDay(), greg)
			return err
		},
	}
}

func parseField(name, s string) (int64, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %q is not an integer", name, s)
	}
	return n, nil
}

// parseMonthArg accepts a 1-based month number or a month name.
func parseMonthArg(s string) (int64, error) {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n, nil
	}
	m, err := model.ParseMonth(s)
	if err != nil {
		return 0, err
	}
	return m.Num(), nil
}
