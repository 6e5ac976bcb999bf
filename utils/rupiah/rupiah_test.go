package rupiah_test

import (
	"math"
	"strings"
	"testing"
	"time"
	"unicode"

	"github.com/muhammadheryan/fw-development/utils/rupiah"
	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name   string
		amount int64
		want   string
	}{
		{name: "zero", amount: 0, want: "Rp0"},
		{name: "below a thousand", amount: 999, want: "Rp999"},
		{name: "add-on price", amount: 300000, want: "Rp300.000"},
		{name: "service price", amount: 6000000, want: "Rp6.000.000"},
		{name: "order total", amount: 6300000, want: "Rp6.300.000"},
		{name: "miliar", amount: 1250000000, want: "Rp1.250.000.000"},
		{name: "negative", amount: -15000, want: "-Rp15.000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := rupiah.Format(tt.amount)
			if got != tt.want {
				t.Fatalf("Format(%d) = %q, want %q", tt.amount, got, tt.want)
			}
			assert.NotContains(t, got, ",", "no fractional digits")
		})
	}
}

func TestWords(t *testing.T) {
	tests := []struct {
		amount int64
		want   string
	}{
		{0, "nol"},
		{1, "satu rupiah"},
		{10, "sepuluh rupiah"},
		{11, "sebelas rupiah"},
		{15, "lima belas rupiah"},
		{20, "dua puluh rupiah"},
		{45, "empat puluh lima rupiah"},
		{100, "seratus rupiah"},
		{115, "seratus lima belas rupiah"},
		{250, "dua ratus lima puluh rupiah"},
		{1000, "seribu rupiah"},
		{1001, "seribu satu rupiah"},
		{2000, "dua ribu rupiah"},
		{11000, "sebelas ribu rupiah"},
		{101000, "seratus satu ribu rupiah"},
		{300000, "tiga ratus ribu rupiah"},
		{1000000, "satu juta rupiah"},
		{6300000, "enam juta tiga ratus ribu rupiah"},
		{16000000, "enam belas juta rupiah"},
		{1001000, "satu juta seribu rupiah"},
		{2000000000, "dua miliar rupiah"},
		{1000000000000, "satu triliun rupiah"},
		{999999999999999, "sembilan ratus sembilan puluh sembilan triliun sembilan ratus sembilan puluh sembilan miliar sembilan ratus sembilan puluh sembilan juta sembilan ratus sembilan puluh sembilan ribu sembilan ratus sembilan puluh sembilan rupiah"},
		{1000000000000000, "seribu triliun rupiah"},
		{-1000, "minus seribu rupiah"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := rupiah.Words(tt.amount); got != tt.want {
				t.Fatalf("Words(%d) = %q, want %q", tt.amount, got, tt.want)
			}
		})
	}
}

func TestWords_NoDigitsOrDoubleSpaces(t *testing.T) {
	amounts := []int64{7, 19, 1000, 1010, 100100, 9000001, 123456789, 5000000000000, math.MaxInt64, math.MinInt64}
	for _, a := range amounts {
		got := rupiah.Words(a)
		assert.False(t, strings.ContainsFunc(got, unicode.IsDigit), "Words(%d) = %q contains digits", a, got)
		assert.NotContains(t, got, "  ", "Words(%d) = %q", a, got)
		assert.Equal(t, strings.TrimSpace(got), got)
	}
}

func TestDate(t *testing.T) {
	ts := time.Date(2026, time.October, 6, 14, 5, 0, 0, time.UTC)

	assert.Equal(t, "06 Oktober 2026", rupiah.Date(ts))
	assert.Equal(t, "06 Oktober 2026 14.05", rupiah.DateTime(ts))
	assert.Equal(t, "01 Januari 2025", rupiah.Date(time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)))
}
