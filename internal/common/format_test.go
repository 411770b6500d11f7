package common

import "testing"

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "$0.00"},
		{5, "$5.00"},
		{1234.56, "$1,234.56"},
		{1000000, "$1,000,000.00"},
		{-42.5, "-$42.50"},
	}
	for _, tt := range tests {
		if got := FormatMoney(tt.in); got != tt.want {
			t.Errorf("FormatMoney(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatSignedMoney(t *testing.T) {
	if got := FormatSignedMoney(100); got != "+$100.00" {
		t.Errorf("expected +$100.00, got %q", got)
	}
	if got := FormatSignedMoney(-100); got != "-$100.00" {
		t.Errorf("expected -$100.00, got %q", got)
	}
}

func TestFormatSignedPct(t *testing.T) {
	if got := FormatSignedPct(12.345); got != "+12.35%" {
		t.Errorf("expected +12.35%%, got %q", got)
	}
	if got := FormatSignedPct(-3.1); got != "-3.10%" {
		t.Errorf("expected -3.10%%, got %q", got)
	}
}
