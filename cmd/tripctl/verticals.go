package main

import (
	"strings"

	"github.com/spf13/cobra"

	storehttp "github.com/tripnest/storefront/internal/adapter/http"
	"github.com/tripnest/storefront/internal/domain"
)

func newVerticalsCmd(root *rootOptions) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "verticals",
		Short: "List the verticals and the filters and sorts each supports",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			storefront, _, err := root.load()
			if err != nil {
				return err
			}

			caps := storefront.Capabilities()
			dtos := make([]storehttp.VerticalDTO, 0, len(caps))
			for _, v := range domain.AllVerticals() {
				if c, ok := caps[v]; ok {
					dtos = append(dtos, storehttp.ToVerticalDTO(v, c))
				}
			}

			p := newPrinter(cmd.OutOrStdout(), asJSON)
			if asJSON {
				return p.json(storehttp.VerticalsResponseDTO{Verticals: dtos})
			}

			rows := make([][]string, 0, len(dtos))
			for _, d := range dtos {
				rows = append(rows, []string{
					d.Name,
					strings.Join(d.Axes, ", "),
					strings.Join(filterNames(d), ", "),
					strings.Join(d.SortFields, ", "),
				})
			}
			p.table([]string{"Vertical", "Categories", "Filters", "Sorts"}, rows)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print as JSON")
	return cmd
}

// filterNames lists the non-category filters a vertical accepts, using their flag names.
func filterNames(d storehttp.VerticalDTO) []string {
	names := []string{"price"}
	if d.TimeSlots {
		names = append(names, "slot")
	}
	if d.Stops {
		names = append(names, "stops")
	}
	if d.Duration {
		names = append(names, "duration")
	}
	if d.Rating {
		names = append(names, "rating")
	}
	return names
}
