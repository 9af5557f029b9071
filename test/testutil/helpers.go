// Package testutil holds helpers shared by the storefront's HTTP-level tests.
package testutil

import (
	"encoding/json"
	"testing"
)

// MustDecode unmarshals a JSON response body into a T, failing the test on error.
func MustDecode[T any](t *testing.T, body []byte) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(body, &v); err != nil {
		t.Fatalf("decode %T from %s: %v", v, body, err)
	}
	return v
}

// FloatPtr is for optional price and rating bounds in request literals.
func FloatPtr(f float64) *float64 {
	return &f
}
