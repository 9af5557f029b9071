// Package domain contains the core business entities and rules for the travel storefront.
// These entities are source-agnostic and form the foundation upon which all other components are built.
package domain

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// PriceInfo contains pricing information for a searchable item.
type PriceInfo struct {
	// Amount is the numeric price value
	Amount float64 `json:"amount"`

	// Currency is the ISO 4217 currency code (e.g., "INR")
	Currency string `json:"currency"`

	// Formatted is an optional human-readable price string (e.g., "₹1,703")
	Formatted string `json:"formatted,omitempty"`
}

// Valid reports whether the price carries a usable amount.
// A price without a currency, or with a negative or non-finite amount, is treated as missing.
func (p PriceInfo) Valid() bool {
	if p.Currency == "" {
		return false
	}
	if math.IsNaN(p.Amount) || math.IsInf(p.Amount, 0) {
		return false
	}
	return p.Amount >= 0
}

// currencySymbols maps ISO codes to display prefixes.
var currencySymbols = map[string]string{
	"INR": "₹",
	"USD": "$",
	"EUR": "€",
	"AED": "AED ",
}

// NewPriceInfo creates a PriceInfo and fills Formatted for valid amounts.
// INR amounts use lakh grouping (₹1,23,456); other currencies group by thousands.
func NewPriceInfo(amount float64, currency string) PriceInfo {
	p := PriceInfo{Amount: amount, Currency: strings.ToUpper(strings.TrimSpace(currency))}
	if !p.Valid() {
		return p
	}

	symbol, ok := currencySymbols[p.Currency]
	if !ok {
		symbol = p.Currency + " "
	}
	p.Formatted = symbol + groupDigits(strconv.FormatInt(int64(math.Round(amount)), 10), p.Currency == "INR")
	return p
}

func groupDigits(digits string, indian bool) string {
	if len(digits) <= 3 {
		return digits
	}
	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]
	size := 3
	if indian {
		size = 2
	}

	var groups []string
	for len(head) > size {
		groups = append([]string{head[len(head)-size:]}, groups...)
		head = head[:len(head)-size]
	}
	groups = append([]string{head}, groups...)
	return strings.Join(append(groups, tail), ",")
}

// DurationInfo contains travel duration information.
type DurationInfo struct {
	// TotalMinutes is the total duration in minutes
	TotalMinutes int `json:"totalMinutes"`

	// Formatted is a human-readable duration string (e.g., "2h 30m")
	Formatted string `json:"formatted"`
}

// Point represents one end of a journey (departure, arrival, pickup or drop).
type Point struct {
	// Code is the airport, station or city code (e.g., "DEL", "NDLS")
	Code string `json:"code"`

	// Name is the full place name (e.g., "New Delhi (DEL)")
	Name string `json:"name,omitempty"`

	// Terminal is the terminal or platform identifier
	Terminal string `json:"terminal,omitempty"`

	// DateTime is the scheduled time. Zero when the source timestamp could not be parsed.
	DateTime time.Time `json:"dateTime"`

	// Timezone is the IANA timezone identifier (e.g., "Asia/Kolkata")
	Timezone string `json:"timezone,omitempty"`
}

// HasTime reports whether the point carries a parsed timestamp.
func (p Point) HasTime() bool {
	return !p.DateTime.IsZero()
}

// NewDurationInfo creates a DurationInfo from total minutes and formats it.
func NewDurationInfo(totalMinutes int) DurationInfo {
	hours := totalMinutes / 60
	mins := totalMinutes % 60

	var formatted string
	switch {
	case hours > 0 && mins > 0:
		formatted = strconv.Itoa(hours) + "h " + strconv.Itoa(mins) + "m"
	case hours > 0:
		formatted = strconv.Itoa(hours) + "h"
	default:
		formatted = strconv.Itoa(mins) + "m"
	}

	return DurationInfo{
		TotalMinutes: totalMinutes,
		Formatted:    formatted,
	}
}
