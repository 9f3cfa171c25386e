package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/ecoquery/internal/dataset"
)

const co2Dataset = "co2"

// NewCO2Command creates the co2 command.
func NewCO2Command(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "co2 [COUNTRY]",
		Short: "Show annual CO₂ emissions per capita",
		Long: `Show annual CO₂ emissions per capita (tonnes per person).

Provide COUNTRY for a single value, or omit COUNTRY to list the top emitters.
The CO₂ dataset has no country classification of its own; unless
--include-aggregates is given, entities are restricted to the countries of
the forest dataset.

Example:
  ecoquery co2 Canada --year 2021
  ecoquery co2 --year 2020 --top 5 --include-aggregates`,
		Args:          maxOneCountry(rootOpts),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCO2(rootOpts, countryArg(args), cmd)
		},
	}

	return cmd
}

func runCO2(opts *RootOptions, country string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	result, err := co2(opts, country)
	if err != nil {
		return reportError(formatter, err)
	}
	return formatter.Result(result)
}

func co2(opts *RootOptions, country string) (Result, error) {
	emissions, err := loadCO2(opts)
	if err != nil {
		return nil, err
	}

	if country != "" {
		v, err := emissions.ValueForEntityYear(country, opts.yearArg())
		if err != nil {
			return nil, err
		}
		return ValueResult{
			Dataset: co2Dataset,
			Metric:  dataset.CO2Column,
			Unit:    dataset.CO2Unit,
			Entity:  v.Entity,
			Year:    v.Year,
			Value:   v.Value,
		}, nil
	}

	year, err := opts.listYear(emissions.LatestYear)
	if err != nil {
		return nil, err
	}
	entries, err := emissions.TopEmitters(year, opts.Top)
	if err != nil {
		return nil, err
	}

	return ListResult{
		Title: fmt.Sprintf("Top %d entities for %s in %d (%s):",
			min(opts.Top, len(entries)), dataset.CO2Column, year, opts.scope()),
		Dataset:       co2Dataset,
		Metric:        dataset.CO2Column,
		Unit:          dataset.CO2Unit,
		Year:          year,
		CountriesOnly: opts.onlyCountries(),
		Entries:       entries,
	}, nil
}

// loadCO2 loads the CO₂ dataset. The forest dataset is loaded as well when
// results are restricted to countries.
func loadCO2(opts *RootOptions) (dataset.CO2, error) {
	slog.Debug("loading dataset", "dataset", co2Dataset, "dir", opts.DataDir)
	rows, err := dataset.LoadCO2(opts.DataDir)
	if err != nil {
		return dataset.CO2{}, err
	}

	emissions := dataset.CO2{Rows: rows, OnlyCountries: opts.onlyCountries()}
	if emissions.OnlyCountries {
		countries, err := dataset.LoadCountrySet(opts.DataDir)
		if err != nil {
			return dataset.CO2{}, err
		}
		slog.Debug("country set derived", "countries", len(countries))
		emissions.Countries = countries
	}
	return emissions, nil
}
