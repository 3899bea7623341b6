package main

import (
	"github.com/spf13/cobra"
)

func newNowCmd(a *app) *cobra.Command {
	var traditional bool
	cmd := &cobra.Command{
		Use:   "now",
		Short: "Print the current Republican date and decimal time",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ts, err := a.wallClock().Now()
			if err != nil {
				return err
			}
			return a.printDate(a.cal.Decompose(ts), traditional)
		},
	}
	cmd.Flags().BoolVarP(&traditional, "traditional", "t", false, "write the year in Roman numerals")
	return cmd
}
