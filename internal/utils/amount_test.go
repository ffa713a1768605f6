package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		input    string
		expected int64
		wantErr  bool
	}{
		{input: "1500", expected: 1500},
		{input: " 1500 ", expected: 1500},
		{input: "1,500", expected: 1500},
		{input: "1.500.000", expected: 1_500_000},
		{input: "$2,000", expected: 2000},
		{input: "1_000", expected: 1000},
		{input: "-300", expected: -300},
		{input: "150.50", wantErr: true},
		{input: "1,50", wantErr: true},
		{input: ",500", wantErr: true},
		{input: "500,", wantErr: true},
		{input: "1,,000", wantErr: true},
		{input: "1..000", wantErr: true},
		{input: "1,.000", wantErr: true},
		{input: "abc", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseAmount(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestFormatMoney(t *testing.T) {
	require.NoError(t, SetLocale("en"))

	assert.Equal(t, "$1,234,567", FormatMoney("$", 1_234_567))
	assert.Equal(t, "-$1,500", FormatMoney("$", -1500))
	assert.Equal(t, "+$20", FormatSigned("$", 20))
	assert.Equal(t, "-$20", FormatSigned("$", -20))
}

func TestSetLocale(t *testing.T) {
	t.Cleanup(func() { _ = SetLocale("en") })

	require.NoError(t, SetLocale("de"))
	assert.Equal(t, "1.234.567", FormatAmount(1_234_567))

	assert.Error(t, SetLocale("not a locale!"))
	assert.NoError(t, SetLocale(""))
}

func TestParseDate(t *testing.T) {
	fallback := time.Date(2026, 1, 2, 3, 4, 5, 0, time.Local)

	got, err := ParseDate("", fallback)
	require.NoError(t, err)
	assert.Equal(t, fallback, got)

	got, err = ParseDate("2025-12-24", fallback)
	require.NoError(t, err)
	assert.Equal(t, "2025-12-24", FormatDate(got))

	_, err = ParseDate("24/12/2025", fallback)
	assert.Error(t, err)
}

func TestMonthBounds(t *testing.T) {
	start, end := MonthBounds(time.Date(2026, time.February, 14, 10, 0, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2026, time.February, 28, 23, 59, 59, 0, time.UTC), end)
}
