package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/ecoquery/internal/dataset"
)

const forestDataset = "forest"

// NewDeforestationCommand creates the deforestation command.
func NewDeforestationCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deforestation [COUNTRY]",
		Short: "Show annual change in forest area (net change)",
		Long: `Show annual change in forest area (net change, hectares).

Provide COUNTRY for a single value, or omit COUNTRY to list a ranking.
Without --year the single value uses the country's most recent year and the
list uses the most recent year in the dataset.

Example:
  ecoquery deforestation Brazil --year 2020
  ecoquery deforestation --order gain --top 5`,
		Args:          maxOneCountry(rootOpts),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDeforestation(rootOpts, countryArg(args), cmd)
		},
	}

	return cmd
}

func runDeforestation(opts *RootOptions, country string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	result, err := deforestation(opts, country)
	if err != nil {
		return reportError(formatter, err)
	}
	return formatter.Result(result)
}

func deforestation(opts *RootOptions, country string) (Result, error) {
	forest, err := loadForest(opts)
	if err != nil {
		return nil, err
	}

	if country != "" {
		v, err := forest.ValueForEntityYear(country, opts.yearArg())
		if err != nil {
			return nil, err
		}
		return ValueResult{
			Dataset: forestDataset,
			Metric:  dataset.ForestChangeColumn,
			Unit:    dataset.ForestChangeUnit,
			Entity:  v.Entity,
			Year:    v.Year,
			Value:   v.Value,
		}, nil
	}

	year, err := opts.listYear(forest.LatestYear)
	if err != nil {
		return nil, err
	}
	entries, err := forest.RankEntities(year, opts.order(), opts.Top)
	if err != nil {
		return nil, err
	}

	return ListResult{
		Title: fmt.Sprintf("Top %d entities for %s in %d (order=%s, %s):",
			min(opts.Top, len(entries)), dataset.ForestChangeColumn, year, opts.Order, opts.scope()),
		Dataset:       forestDataset,
		Metric:        dataset.ForestChangeColumn,
		Unit:          dataset.ForestChangeUnit,
		Year:          year,
		Order:         opts.order(),
		CountriesOnly: opts.onlyCountries(),
		Entries:       entries,
	}, nil
}

// loadForest loads the forest dataset with the configured country filter.
func loadForest(opts *RootOptions) (dataset.Forest, error) {
	slog.Debug("loading dataset", "dataset", forestDataset, "dir", opts.DataDir)
	rows, err := dataset.LoadForestChange(opts.DataDir)
	if err != nil {
		return dataset.Forest{}, err
	}
	return dataset.Forest{Rows: rows, OnlyCountries: opts.onlyCountries()}, nil
}
