package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/tripnest/storefront/internal/domain"
	"github.com/tripnest/storefront/internal/infrastructure/timeutil"
)

type printer struct {
	w      io.Writer
	asJSON bool
}

func newPrinter(w io.Writer, asJSON bool) *printer {
	return &printer{w: w, asJSON: asJSON}
}

func (p *printer) json(v any) error {
	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (p *printer) table(columns []string, rows [][]string) {
	t := tablewriter.NewWriter(p.w)
	t.SetHeader(columns)
	t.SetAutoFormatHeaders(false)
	t.SetAlignment(tablewriter.ALIGN_LEFT)
	t.AppendBulk(rows)
	t.Render()
}

// tableSpec renders one vertical's items as table rows.
type tableSpec[T any] struct {
	columns []string
	row     func(T) []string
}

func printResult[T any](p *printer, result *domain.SearchResult[T], tbl tableSpec[T]) error {
	heading := color.New(color.Bold)
	warn := color.New(color.FgYellow)

	heading.Fprintf(p.w, "%s %s, sorted by %s\n", result.Query.Vertical, describeQuery(result.Query), result.SortKey)

	page := result.Page
	if len(page.Items) == 0 {
		if page.Total == 0 {
			fmt.Fprintln(p.w, "No results.")
		} else {
			fmt.Fprintf(p.w, "Page %d is past the last of %d results.\n", page.Index+1, page.Total)
		}
	} else {
		rows := make([][]string, 0, len(page.Items))
		for _, item := range page.Items {
			rows = append(rows, tbl.row(item))
		}
		p.table(tbl.columns, rows)

		first := page.Index*page.Size + 1
		fmt.Fprintf(p.w, "Showing %d-%d of %d", first, first+len(page.Items)-1, page.Total)
		if page.HasMore {
			fmt.Fprintf(p.w, " (more on page %d)", page.Index+2)
		}
		fmt.Fprintln(p.w)
	}

	meta := result.Metadata
	fmt.Fprintf(p.w, "%d fetched from %s in %dms", meta.TotalResults, strings.Join(meta.SourcesQueried, ", "), meta.SearchTimeMs)
	if meta.CacheHit {
		fmt.Fprint(p.w, " (cached)")
	}
	fmt.Fprintln(p.w)
	if len(meta.SourcesFailed) > 0 {
		warn.Fprintf(p.w, "Unavailable sources: %s\n", strings.Join(meta.SourcesFailed, ", "))
	}

	if len(result.Facets) > 0 {
		rows := make([][]string, 0, len(result.Facets))
		for _, f := range result.Facets {
			rows = append(rows, []string{f.Axis, f.Value, strconv.Itoa(f.Count), facetPrice(f.MinPrice)})
		}
		p.table([]string{"Filter", "Value", "Results", "From"}, rows)
	}
	return nil
}

func describeQuery(q domain.SearchQuery) string {
	var b strings.Builder
	switch {
	case q.Vertical.IsTransport():
		fmt.Fprintf(&b, "%s to %s on %s", q.Origin, q.Destination, q.Date)
	case q.Vertical.IsStay():
		fmt.Fprintf(&b, "in %s from %s", q.City, q.Date)
		if q.CheckOut != "" {
			fmt.Fprintf(&b, " to %s", q.CheckOut)
		}
	default:
		fmt.Fprintf(&b, "for %s from %s", q.Destination, q.Date)
	}
	fmt.Fprintf(&b, ", %d traveller", q.Travellers)
	if q.Travellers != 1 {
		b.WriteString("s")
	}
	return b.String()
}

func facetPrice(amount *float64) string {
	if amount == nil {
		return "-"
	}
	return strconv.FormatFloat(*amount, 'f', -1, 64)
}

func clock(p domain.Point) string {
	if !p.HasTime() {
		return "-"
	}
	return timeutil.FormatTime(p.DateTime)
}

func price(p domain.PriceInfo) string {
	if p.Formatted == "" {
		return "-"
	}
	return p.Formatted
}

func rating(r float64) string {
	if r <= 0 {
		return "-"
	}
	return strconv.FormatFloat(r, 'f', 1, 64)
}

var flightTable = tableSpec[domain.Flight]{
	columns: []string{"Flight", "Airline", "Departs", "Arrives", "Duration", "Stops", "Class", "Price"},
	row: func(f domain.Flight) []string {
		return []string{
			f.FlightNumber, f.Airline.Name, clock(f.Departure), clock(f.Arrival),
			f.Duration.Formatted, strconv.Itoa(f.Stops), f.Class, price(f.Price),
		}
	},
}

var hotelTable = tableSpec[domain.Hotel]{
	columns: []string{"Hotel", "Area", "Type", "Stars", "Rating", "Per night"},
	row: func(h domain.Hotel) []string {
		return []string{
			h.Name, h.Area, h.PropertyType, strconv.Itoa(h.StarRating), rating(h.GuestRating), price(h.Price),
		}
	},
}

var trainTable = tableSpec[domain.Train]{
	columns: []string{"Train", "Name", "Type", "Class", "Departs", "Arrives", "Duration", "Halts", "Fare"},
	row: func(t domain.Train) []string {
		return []string{
			t.Number, t.Name, t.TrainType, t.Class, clock(t.Departure), clock(t.Arrival),
			t.Duration.Formatted, strconv.Itoa(t.Halts), price(t.Price),
		}
	},
}

var busTable = tableSpec[domain.Bus]{
	columns: []string{"Operator", "Type", "Departs", "Arrives", "Duration", "Stops", "Rating", "Fare"},
	row: func(b domain.Bus) []string {
		return []string{
			b.Operator, b.BusType, clock(b.Departure), clock(b.Arrival),
			b.Duration.Formatted, strconv.Itoa(b.Stops), rating(b.Rating), price(b.Price),
		}
	},
}

var cabTable = tableSpec[domain.Cab]{
	columns: []string{"Provider", "Type", "Model", "Seats", "Pickup", "Duration", "Rating", "Fare"},
	row: func(c domain.Cab) []string {
		return []string{
			c.Provider, c.CabType, c.Model, strconv.Itoa(c.Capacity), clock(c.Pickup),
			c.Duration.Formatted, rating(c.Rating), price(c.Price),
		}
	},
}

var homestayTable = tableSpec[domain.Homestay]{
	columns: []string{"Homestay", "Host", "Type", "Bedrooms", "Rating", "Per night"},
	row: func(h domain.Homestay) []string {
		return []string{
			h.Name, h.HostName, h.PropertyType, strconv.Itoa(h.Bedrooms), rating(h.GuestRating), price(h.Price),
		}
	},
}

var insuranceTable = tableSpec[domain.InsurancePlan]{
	columns: []string{"Plan", "Insurer", "Coverage", "Sum insured", "Rating", "Premium"},
	row: func(i domain.InsurancePlan) []string {
		return []string{
			i.Name, i.Insurer, i.CoverageType, price(i.SumInsured), rating(i.Rating), price(i.Premium),
		}
	},
}
