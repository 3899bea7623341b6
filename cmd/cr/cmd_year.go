package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/daviddao/calendrier/pkg/calendar"
	"github.com/daviddao/calendrier/pkg/model"
	"github.com/daviddao/calendrier/pkg/years"
)

type yearView struct {
	Year int64 `json:"year"`
	years.Boundary
	Franciade      int64  `json:"franciade"`
	GregorianStart string `json:"gregorian_start"`
}

func newYearCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "year <year>",
		Short: "Show the start, length and kind of a Republican year",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := parseField("year", args[0])
			if err != nil {
				return err
			}
			year0, err := model.Year0(year)
			if err != nil {
				return err
			}
			if err := model.CheckYear0(year0); err != nil {
				return err
			}
			b := a.cal.Years().Boundary(year0)
			greg, err := a.gregorian(b.Start)
			if err != nil {
				return fmt.Errorf("year %d: %w", year, err)
			}
			v := yearView{
				Year:           year,
				Boundary:       b,
				Franciade:      model.DisplayFranciade(years.Franciade0(year0)),
				GregorianStart: greg,
			}
			if a.cfg.JSON {
				return printJSON(a.out, v)
			}

			kind := "standard"
			if b.Sextile {
				kind = "sextile"
			}
			fmt.Fprintf(a.out, "year %d (an %s)\n", year, calendar.Roman(year))
			fmt.Fprintf(a.out, "  start      %d (%s)\n", b.Start, v.GregorianStart)
			fmt.Fprintf(a.out, "  days       %d, %s\n", b.Days, kind)
			fmt.Fprintf(a.out, "  franciade  %d\n", v.Franciade)
			if b.Extrapolated {
				fmt.Fprintln(a.out, "  extrapolated beyond the equinox table")
			}
			return nil
		},
	}
}
