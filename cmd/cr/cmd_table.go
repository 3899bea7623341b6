package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/daviddao/calendrier/pkg/equinox"
	"github.com/daviddao/calendrier/pkg/model"
	"github.com/daviddao/calendrier/pkg/store"
)

func newTableCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "table",
		Short: "Work with the year-start table",
	}
	cmd.AddCommand(newTableInfoCmd(a), newTableExportCmd(a), newTableImportCmd(a))
	return cmd
}

type tableInfoView struct {
	Source    string           `json:"source"`
	FirstYear int64            `json:"first_year"`
	LastYear  int64            `json:"last_year"`
	Years     int              `json:"years"`
	Stored    *store.TableInfo `json:"stored,omitempty"`
}

func newTableInfoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show the coverage and source of the active table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			v := tableInfoView{
				Source:    a.source,
				FirstYear: model.DisplayYear(a.table.First()),
				LastYear:  model.DisplayYear(a.table.Last()),
				Years:     a.table.Len(),
			}
			if a.source != embeddedSource {
				s, err := openStore(a.source)
				if err != nil {
					return err
				}
				defer s.Close()
				info, err := s.Info(cmd.Context())
				if err != nil {
					return err
				}
				v.Stored = &info
			}
			if a.cfg.JSON {
				return printJSON(a.out, v)
			}
			fmt.Fprintf(a.out, "source    %s\n", v.Source)
			fmt.Fprintf(a.out, "coverage  %d to %d (%d years)\n", v.FirstYear, v.LastYear, v.Years)
			if v.Stored != nil {
				fmt.Fprintf(a.out, "saved     %s from %s\n", v.Stored.SavedAt.Format("2006-01-02 15:04:05"), v.Stored.Source)
			}
			return nil
		},
	}
}

// tableDoc is the TOML and JSON export layout.
type tableDoc struct {
	Source string  `toml:"source" json:"source"`
	First  int64   `toml:"first_year0" json:"first_year0"`
	Starts []int64 `toml:"starts" json:"starts"`
}

func newTableExportCmd(a *app) *cobra.Command {
	var format, out string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the active table as csv, toml or json, or into a SQLite file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if out != "" {
				if err := ensureDBDir(out); err != nil {
					return err
				}
				s, err := openStore(out)
				if err != nil {
					return fmt.Errorf("cannot open %q: %w", out, err)
				}
				defer s.Close()
				if err := s.SaveTable(cmd.Context(), a.table, a.source); err != nil {
					return fmt.Errorf("save table: %w", err)
				}
				a.log.Info("table exported", "path", out, "years", a.table.Len())
				return nil
			}

			doc := tableDoc{Source: a.source, First: a.table.First()}
			for _, s := range a.table.All() {
				doc.Starts = append(doc.Starts, s.Seconds())
			}
			switch format {
			case "csv":
				return writeTableCSV(a, doc)
			case "toml":
				data, err := toml.Marshal(doc)
				if err != nil {
					return err
				}
				_, err = a.out.Write(data)
				return err
			case "json":
				return printJSON(a.out, doc)
			}
			return fmt.Errorf("unknown format %q: want csv, toml or json", format)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "csv", "output format: csv, toml or json")
	cmd.Flags().StringVarP(&out, "out", "o", "", "write into this SQLite file instead of stdout")
	return cmd
}

func writeTableCSV(a *app, doc tableDoc) error {
	w := csv.NewWriter(a.out)
	if err := w.Write([]string{"year0", "start"}); err != nil {
		return err
	}
	for i, s := range doc.Starts {
		rec := []string{strconv.FormatInt(doc.First+int64(i), 10), strconv.FormatInt(s, 10)}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func newTableImportCmd(a *app) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "import <equinoxes.csv>",
		Short: "Build a table from a file of equinox instants and store it",
		Long: "Build a table from rows of \"gregorian_year,RFC3339 instant\" and save it\n" +
			"into a SQLite file that --table-db can load.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if out == "" {
				return errors.New("--out is required")
			}
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			eqs, err := equinox.Parse(f)
			if err != nil {
				return err
			}
			t, err := equinox.FromEquinoxes(eqs)
			if err != nil {
				return err
			}

			if err := ensureDBDir(out); err != nil {
				return err
			}
			s, err := openStore(out)
			if err != nil {
				return fmt.Errorf("cannot open %q: %w", out, err)
			}
			defer s.Close()
			if err := s.SaveTable(cmd.Context(), t, args[0]); err != nil {
				return fmt.Errorf("save table: %w", err)
			}
			a.log.Info("table imported", "from", args[0], "path", out, "years", t.Len())
			if a.cfg.JSON {
				return printJSON(a.out, tableInfoView{
					Source:    args[0],
					FirstYear: model.DisplayYear(t.First()),
					LastYear:  model.DisplayYear(t.Last()),
					Years:     t.Len(),
				})
			}
			_, err = fmt.Fprintf(a.out, "stored %d years (%d to %d) in %s\n",
				t.Len(), model.DisplayYear(t.First()), model.DisplayYear(t.Last()), out)
			return err
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "SQLite file to write")
	return cmd
}
