package money_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mgoncalo/centavo/internal/money"
)

func TestParse(t *testing.T) {
	type testCase struct {
		name    string
		input   string
		want    money.Amount
		wantErr bool
	}

	tests := []testCase{
		{name: "WholeAmount", input: "300", want: 30000},
		{name: "TwoDecimals", input: "12.34", want: 1234},
		{name: "OneDecimal", input: "12.3", want: 1230},
		{name: "Zero", input: "0", want: 0},
		{name: "Negative", input: "-5.00", want: -500},
		{name: "LargeAmount", input: "999999.99", want: 99999999},
		{name: "ThreeDecimals", input: "12.345", wantErr: true},
		{name: "NotANumber", input: "abc", wantErr: true},
		{name: "Empty", input: "", wantErr: true},
		{name: "FloatNoise", input: "0.1000000000000001", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := money.Parse(tt.input)

			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, money.ErrInvalidAmount)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParsePositive(t *testing.T) {
	_, err := money.ParsePositive("0")
	assert.ErrorIs(t, err, money.ErrInvalidAmount)

	_, err = money.ParsePositive("-1.50")
	assert.ErrorIs(t, err, money.ErrInvalidAmount)

	got, err := money.ParsePositive("1.50")
	require.NoError(t, err)
	assert.Equal(t, money.Amount(150), got)
}

func TestParseNonNegative(t *testing.T) {
	got, err := money.ParseNonNegative("0")
	require.NoError(t, err)
	assert.Equal(t, money.Amount(0), got)

	_, err = money.ParseNonNegative("-0.01")
	assert.ErrorIs(t, err, money.ErrInvalidAmount)
}

func TestString(t *testing.T) {
	assert.Equal(t, "12.34", money.Amount(1234).String())
	assert.Equal(t, "0.00", money.Amount(0).String())
	assert.Equal(t, "300.00", money.Amount(30000).String())
	assert.Equal(t, "-0.05", money.Amount(-5).String())
}

func TestRoundTrip(t *testing.T) {
	for _, s := range []string{"0.01", "19.99", "1000.00", "450.00"} {
		a, err := money.Parse(s)
		require.NoError(t, err)
		assert.Equal(t, s, a.String())
	}
}
