package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	storehttp "github.com/tripnest/storefront/internal/adapter/http"
	"github.com/tripnest/storefront/internal/app"
	"github.com/tripnest/storefront/internal/domain"
	"github.com/tripnest/storefront/internal/usecase"
)

type searchFlags struct {
	origin      string
	destination string
	city        string
	date        string
	checkOut    string
	travellers  int
	class       string
	sortBy      string
	page        int
	pageSize    int

	minPrice    float64
	maxPrice    float64
	minDuration int
	maxDuration int
	minRating   float64
	categories  []string
	slots       []string
	stops       []string

	asJSON bool
}

func newSearchCmd(root *rootOptions) *cobra.Command {
	var f *searchFlags

	cmd := &cobra.Command{
		Use:   "search <vertical>",
		Short: "Search one vertical and print a page of results",
		Example: `  tripctl search flights --origin DEL --destination BOM --date 2026-12-15 --sort price-low-high
  tripctl search flights --origin DEL --destination BOM --date 2026-12-15 --category airline=IndiGo --stops non-stop
  tripctl search hotels --city Goa --date 2026-12-20 --checkout 2026-12-23 --category amenity=Pool --min-rating 4
  tripctl search buses --origin Bangalore --destination Chennai --date 2026-12-15 --slot evening --json`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: verticalNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			vertical, err := domain.ParseVertical(args[0])
			if err != nil {
				return err
			}

			req, err := f.request(cmd.Flags())
			if err != nil {
				return err
			}

			storefront, cfg, err := root.load()
			if err != nil {
				return err
			}

			paging := storehttp.PagingConfig{
				DefaultSize: cfg.Search.DefaultPageSize,
				MaxSize:     cfg.Search.MaxPageSize,
			}
			p := newPrinter(cmd.OutOrStdout(), f.asJSON)
			return dispatch(cmd.Context(), storefront, vertical, req, paging, p)
		},
	}

	f = bindSearchFlags(cmd.Flags())
	return cmd
}

// bindSearchFlags registers the search flags on flags.
func bindSearchFlags(flags *pflag.FlagSet) *searchFlags {
	f := &searchFlags{}
	flags.StringVar(&f.origin, "origin", "", "departure airport, station or city")
	flags.StringVar(&f.destination, "destination", "", "arrival place, or the trip destination for insurance")
	flags.StringVar(&f.city, "city", "", "stay location for hotels and homestays")
	flags.StringVar(&f.date, "date", "", "travel, pickup, check-in or trip start date (YYYY-MM-DD)")
	flags.StringVar(&f.checkOut, "checkout", "", "check-out date for stays (YYYY-MM-DD)")
	flags.IntVar(&f.travellers, "travellers", 1, "number of travellers")
	flags.StringVar(&f.class, "class", "", "flight cabin class: economy, premium-economy, business or first")
	flags.StringVar(&f.sortBy, "sort", "", "sort token (price-low-high, rating-high-low, ...) or field:direction")
	flags.IntVar(&f.page, "page", 0, "zero-based page index")
	flags.IntVar(&f.pageSize, "page-size", 0, "items per page (configured default when 0)")

	flags.Float64Var(&f.minPrice, "min-price", 0, "lowest price to keep")
	flags.Float64Var(&f.maxPrice, "max-price", 0, "highest price to keep")
	flags.IntVar(&f.minDuration, "min-duration", 0, "shortest duration to keep, in minutes")
	flags.IntVar(&f.maxDuration, "max-duration", 0, "longest duration to keep, in minutes")
	flags.Float64Var(&f.minRating, "min-rating", 0, "lowest rating to keep")
	flags.StringArrayVar(&f.categories, "category", nil, "category selection as axis=value; repeat to select more")
	flags.StringSliceVar(&f.slots, "slot", nil, "departure time slots: early-morning, morning, afternoon, evening")
	flags.StringSliceVar(&f.stops, "stops", nil, "stop categories: non-stop, 1-stop, 2+-stops")

	flags.BoolVar(&f.asJSON, "json", false, "print the full result as JSON")
	return f
}

// request builds the search request from the parsed flags. Filter bounds are only
// set when their flag was given.
func (f *searchFlags) request(flags *pflag.FlagSet) (*storehttp.SearchRequest, error) {
	req := &storehttp.SearchRequest{
		Origin:      f.origin,
		Destination: f.destination,
		City:        f.city,
		Date:        f.date,
		CheckOut:    f.checkOut,
		Travellers:  f.travellers,
		Class:       f.class,
		SortBy:      f.sortBy,
		Page:        f.page,
		PageSize:    f.pageSize,
	}

	filters := &storehttp.FilterDTO{
		TimeSlots: f.slots,
		Stops:     f.stops,
	}
	empty := len(f.slots) == 0 && len(f.stops) == 0

	if flags.Changed("min-price") || flags.Changed("max-price") {
		filters.PriceRange = &storehttp.PriceRangeDTO{}
		if flags.Changed("min-price") {
			filters.PriceRange.Min = &f.minPrice
		}
		if flags.Changed("max-price") {
			filters.PriceRange.Max = &f.maxPrice
		}
		empty = false
	}

	if flags.Changed("min-duration") || flags.Changed("max-duration") {
		filters.DurationRange = &storehttp.DurationRangeDTO{}
		if flags.Changed("min-duration") {
			filters.DurationRange.MinMinutes = &f.minDuration
		}
		if flags.Changed("max-duration") {
			filters.DurationRange.MaxMinutes = &f.maxDuration
		}
		empty = false
	}

	if flags.Changed("min-rating") {
		filters.MinRating = &f.minRating
		empty = false
	}

	if len(f.categories) > 0 {
		categories, err := parseCategories(f.categories)
		if err != nil {
			return nil, err
		}
		filters.Categories = categories
		empty = false
	}

	if !empty {
		req.Filters = filters
	}
	return req, nil
}

// parseCategories groups axis=value pairs by axis, keeping flag order.
func parseCategories(pairs []string) (map[string][]string, error) {
	categories := make(map[string][]string)
	for _, pair := range pairs {
		axis, value, ok := strings.Cut(pair, "=")
		axis = strings.TrimSpace(axis)
		value = strings.TrimSpace(value)
		if !ok || axis == "" || value == "" {
			return nil, fmt.Errorf("invalid --category %q: expected axis=value", pair)
		}
		categories[axis] = append(categories[axis], value)
	}
	return categories, nil
}

func dispatch(
	ctx context.Context,
	storefront *app.Storefront,
	vertical domain.Vertical,
	req *storehttp.SearchRequest,
	paging storehttp.PagingConfig,
	p *printer,
) error {
	switch vertical {
	case domain.VerticalFlights:
		return runSearch(ctx, storefront.Flights, req, paging, p, flightTable)
	case domain.VerticalHotels:
		return runSearch(ctx, storefront.Hotels, req, paging, p, hotelTable)
	case domain.VerticalTrains:
		return runSearch(ctx, storefront.Trains, req, paging, p, trainTable)
	case domain.VerticalBuses:
		return runSearch(ctx, storefront.Buses, req, paging, p, busTable)
	case domain.VerticalCabs:
		return runSearch(ctx, storefront.Cabs, req, paging, p, cabTable)
	case domain.VerticalHomestays:
		return runSearch(ctx, storefront.Homestays, req, paging, p, homestayTable)
	case domain.VerticalInsurance:
		return runSearch(ctx, storefront.Insurance, req, paging, p, insuranceTable)
	default:
		return fmt.Errorf("vertical %q is not served", vertical)
	}
}

func runSearch[T any](
	ctx context.Context,
	uc usecase.SearchUseCase[T],
	req *storehttp.SearchRequest,
	paging storehttp.PagingConfig,
	p *printer,
	table tableSpec[T],
) error {
	if err := req.Validate(uc.Vertical(), uc.Capabilities(), paging); err != nil {
		return invalidFlags(err)
	}

	query := storehttp.ToDomainQuery(uc.Vertical(), req)
	result, err := uc.Search(ctx, query, storehttp.ToSearchOptions(req, paging))
	if err != nil {
		return fmt.Errorf("search %s: %w", uc.Vertical(), err)
	}

	if p.asJSON {
		return p.json(result)
	}
	return printResult(p, result, table)
}

// invalidFlags lists every field error on its own line.
func invalidFlags(err error) error {
	var verrs *storehttp.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs.Errors) == 1 {
		return err
	}

	lines := make([]string, 0, len(verrs.Errors))
	for _, e := range verrs.Errors {
		lines = append(lines, "  "+e.Field+": "+e.Message)
	}
	return fmt.Errorf("invalid search:\n%s", strings.Join(lines, "\n"))
}

func verticalNames() []string {
	names := make([]string, 0, len(domain.AllVerticals()))
	for _, v := range domain.AllVerticals() {
		names = append(names, string(v))
	}
	return names
}
