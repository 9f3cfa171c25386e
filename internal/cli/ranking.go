package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/ecoquery/internal/dataset"
)

// NewRankingCommand creates the ranking command.
func NewRankingCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ranking [COUNTRY]",
		Short: "Rank countries by annual change in forest area",
		Long: `Rank countries by annual change in forest area.

Provide COUNTRY to see its rank ("K of N"), or omit COUNTRY to list the top
entries. --order loss ranks the largest losses first; --order gain the
largest gains.

Example:
  ecoquery ranking Brazil --year 2020
  ecoquery ranking --year 2020 --top 10`,
		Args:          maxOneCountry(rootOpts),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRanking(rootOpts, countryArg(args), cmd)
		},
	}

	return cmd
}

func runRanking(opts *RootOptions, country string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	result, err := ranking(opts, country)
	if err != nil {
		return reportError(formatter, err)
	}
	return formatter.Result(result)
}

func ranking(opts *RootOptions, country string) (Result, error) {
	forest, err := loadForest(opts)
	if err != nil {
		return nil, err
	}

	if country != "" {
		r, err := forest.RankForEntity(country, opts.yearArg(), opts.order())
		if err != nil {
			return nil, err
		}
		return RankResult{
			Dataset: forestDataset,
			Metric:  dataset.ForestChangeColumn,
			Unit:    dataset.ForestChangeUnit,
			Order:   opts.order(),
			Entity:  r.Entity,
			Year:    r.Year,
			Rank:    r.Rank,
			Total:   forest.CountForYear(r.Year),
			Value:   r.Value,
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
		Title:         fmt.Sprintf("Forest change ranking for %d (order=%s, %s):", year, opts.Order, opts.scope()),
		Dataset:       forestDataset,
		Metric:        dataset.ForestChangeColumn,
		Unit:          dataset.ForestChangeUnit,
		Year:          year,
		Order:         opts.order(),
		CountriesOnly: opts.onlyCountries(),
		Entries:       entries,
	}, nil
}
