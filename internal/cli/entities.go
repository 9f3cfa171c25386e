package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// EntitiesOptions holds flags for the entities command.
type EntitiesOptions struct {
	*RootOptions
	Dataset string
}

// NewEntitiesCommand creates the entities command.
func NewEntitiesCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &EntitiesOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "entities",
		Short: "List the entity names of a dataset",
		Long: `List the distinct entity names of a dataset in file order.

These are the names COUNTRY arguments are matched against. Matching ignores
case, accents, spaces and punctuation.

Example:
  ecoquery entities --dataset co2 --include-aggregates`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEntities(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Dataset, "dataset", forestDataset, "dataset to list (forest|co2)")

	return cmd
}

func runEntities(opts *EntitiesOptions, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	var names []string
	switch opts.Dataset {
	case forestDataset:
		forest, err := loadForest(opts.RootOptions)
		if err != nil {
			return reportError(formatter, err)
		}
		names = forest.Entities()
	case co2Dataset:
		emissions, err := loadCO2(opts.RootOptions)
		if err != nil {
			return reportError(formatter, err)
		}
		names = emissions.Entities()
	default:
		return opts.usageError(cmd, fmt.Errorf("invalid dataset %q: must be %q or %q", opts.Dataset, forestDataset, co2Dataset))
	}

	return formatter.Result(EntitiesResult{
		Dataset:       opts.Dataset,
		CountriesOnly: opts.onlyCountries(),
		Entities:      names,
	})
}
