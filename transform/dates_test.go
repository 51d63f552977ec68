package transform

import (
	"testing"
)

func TestFormatDate(t *testing.T) {

	tests := []struct {
		raw      string
		expected string
		ok       bool
	}{
		{"2020-03-15", "15/03/2020", true},
		{"1990-01-01", "01/01/1990", true},
		{" 1990-01-01 ", "01/01/1990", true},
		{"", "", false},
		{"not-a-date", "", false},
		{"2020-13-40", "", false},
	}

	for _, tc := range tests {

		v, ok := FormatDate(tc.raw)

		if ok != tc.ok {
			t.Fatalf("Unexpected status for '%s', expected %t", tc.raw, tc.ok)
		}

		if v != tc.expected {
			t.Fatalf("Unexpected result for '%s', expected '%s' but got '%s'", tc.raw, tc.expected, v)
		}
	}
}

func TestYearAdded(t *testing.T) {

	tests := []struct {
		raw      string
		expected string
		ok       bool
	}{
		{"2020-03-15", "2020", true},
		{"1990-01-01", "1990", true},
		{"", "", false},
		{"not-a-date", "", false},
	}

	for _, tc := range tests {

		v, ok := YearAdded(tc.raw)

		if ok != tc.ok {
			t.Fatalf("Unexpected status for '%s', expected %t", tc.raw, tc.ok)
		}

		if v != tc.expected {
			t.Fatalf("Unexpected result for '%s', expected '%s' but got '%s'", tc.raw, tc.expected, v)
		}
	}
}
