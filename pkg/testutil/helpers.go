// Package testutil provides common utility functions for testing.
package testutil

import (
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

var cent = decimal.New(1, -2)

// TestingT is the subset of testing.TB the assertions need.
type TestingT interface {
	Errorf(format string, args ...interface{})
	Helper()
}

// Dec parses a decimal literal and panics on error.
// This is intended for use in tests where the literal is known to be valid.
func Dec(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

// AssertCents asserts that got equals the decimal literal want exactly.
func AssertCents(t TestingT, want string, got decimal.Decimal, what string) bool {
	t.Helper()
	expected := Dec(want)
	return assert.Truef(t, expected.Equal(got), "%s: expected %s, got %s",
		what, expected.StringFixed(2), got.StringFixed(2))
}

// AssertWithinCent asserts that got is no more than one cent away from want.
func AssertWithinCent(t TestingT, want, got decimal.Decimal, what string) bool {
	t.Helper()
	return AssertWithin(t, want, got, cent, what)
}

// AssertWithin asserts that got is no more than tolerance away from want.
func AssertWithin(t TestingT, want, got, tolerance decimal.Decimal, what string) bool {
	t.Helper()
	diff := want.Sub(got).Abs()
	return assert.Truef(t, diff.LessThanOrEqual(tolerance), "%s: expected %s, got %s (diff: %s)",
		what, want.StringFixed(2), got.StringFixed(2), diff.StringFixed(2))
}
