package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/i474232898/weather-lookup/internal/weather"
)

// New builds the weather-cli command tree around service, which must render
// to presenter.
func New(service *weather.Service, presenter *TerminalPresenter, suggestLimit int) *cobra.Command {
	var (
		unit   string
		format string
	)

	root := &cobra.Command{
		Use:           "weather-cli",
		Short:         "Look up current weather by city name or coordinates",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			u, err := weather.ParseUnit(unit)
			if err != nil {
				return err
			}
			service.SetUnit(u)
			return presenter.SetFormat(format)
		},
	}
	root.PersistentFlags().StringVarP(&unit, "unit", "u", string(service.Unit()), "temperature unit: c or f")
	root.PersistentFlags().StringVarP(&format, "format", "o", FormatText, "output format: text, json or yaml")

	root.AddCommand(
		newSearchCmd(service),
		newLocateCmd(service),
		newSuggestCmd(service, presenter, suggestLimit),
	)
	return root
}

func newSearchCmd(service *weather.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "search <city>",
		Short: "Show current weather for a city",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return service.Search(cmd.Context(), strings.Join(args, " "))
		},
	}
}

func newLocateCmd(service *weather.Service) *cobra.Command {
	var lat, lon float64

	cmd := &cobra.Command{
		Use:   "locate",
		Short: "Show current weather for coordinates, or the configured default position",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("lat") || cmd.Flags().Changed("lon") {
				return service.SearchCoordinates(cmd.Context(), lat, lon)
			}
			return service.Locate(cmd.Context())
		},
	}
	cmd.Flags().Float64Var(&lat, "lat", 0, "latitude")
	cmd.Flags().Float64Var(&lon, "lon", 0, "longitude")
	cmd.MarkFlagsRequiredTogether("lat", "lon")
	return cmd
}

func newSuggestCmd(service *weather.Service, presenter *TerminalPresenter, limit int) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "suggest <query>",
		Short: "List places matching a partial name",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			places, err := service.Suggest(cmd.Context(), strings.Join(args, " "), limit)
			if err != nil {
				return err
			}
			presenter.RenderSuggestions(places)
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", limit, "maximum number of suggestions")
	return cmd
}
