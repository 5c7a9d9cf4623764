package billing

import (
	"testing"

	"github.com/shopspring/decimal"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func TestComputeTotals(t *testing.T) {
	cases := []struct {
		name      string
		items     []LineInput
		taxRate   string
		discount  string
		subtotal  string
		taxAmount string
		total     string
	}{
		{
			name:      "empty item list is zero everywhere",
			items:     nil,
			taxRate:   "0",
			discount:  "0",
			subtotal:  "0",
			taxAmount: "0",
			total:     "0",
		},
		{
			name:      "single item no tax",
			items:     []LineInput{{Description: "Haircut", Quantity: 1, UnitPrice: d("1500")}},
			taxRate:   "0",
			discount:  "0",
			subtotal:  "1500",
			taxAmount: "0",
			total:     "1500",
		},
		{
			name: "two items with 10 percent tax",
			items: []LineInput{
				{Quantity: 2, UnitPrice: d("500")},
				{Quantity: 1, UnitPrice: d("1000")},
			},
			taxRate:   "10",
			discount:  "0",
			subtotal:  "2000",
			taxAmount: "200",
			total:     "2200",
		},
		{
			name:      "discount exceeding subtotal goes negative unclamped",
			items:     []LineInput{{Quantity: 1, UnitPrice: d("1000")}},
			taxRate:   "0",
			discount:  "1500",
			subtotal:  "1000",
			taxAmount: "0",
			total:     "-500",
		},
		{
			name:      "fractional prices stay exact",
			items:     []LineInput{{Quantity: 3, UnitPrice: d("19.99")}},
			taxRate:   "10",
			discount:  "0.97",
			subtotal:  "59.97",
			taxAmount: "5.997",
			total:     "64.997",
		},
	}

	for _, tc := range cases {
		got, err := ComputeTotals(tc.items, d(tc.taxRate), d(tc.discount))
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.name, err)
		}
		if !got.Subtotal.Equal(d(tc.subtotal)) {
			t.Fatalf("%s: subtotal = %s, want %s", tc.name, got.Subtotal, tc.subtotal)
		}
		if !got.TaxAmount.Equal(d(tc.taxAmount)) {
			t.Fatalf("%s: taxAmount = %s, want %s", tc.name, got.TaxAmount, tc.taxAmount)
		}
		if !got.Total.Equal(d(tc.total)) {
			t.Fatalf("%s: total = %s, want %s", tc.name, got.Total, tc.total)
		}
	}
}

func TestComputeTotals_SumInvariant(t *testing.T) {
	// subtotal must equal the plain sum of quantity × price for any
	// number of items.
	var items []LineInput
	want := decimal.Zero
	for i := 1; i <= 25; i++ {
		price := d("7.25").Mul(decimal.NewFromInt(int64(i)))
		items = append(items, LineInput{Quantity: i, UnitPrice: price})
		want = want.Add(price.Mul(decimal.NewFromInt(int64(i))))
	}

	got, err := ComputeTotals(items, decimal.Zero, decimal.Zero)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Subtotal.Equal(want) {
		t.Fatalf("subtotal = %s, want %s", got.Subtotal, want)
	}
	if !got.Total.Equal(want) {
		t.Fatalf("total = %s, want %s", got.Total, want)
	}
}

func TestComputeTotals_RejectsBadInput(t *testing.T) {
	one := []LineInput{{Quantity: 1, UnitPrice: d("100")}}

	cases := []struct {
		name     string
		items    []LineInput
		taxRate  string
		discount string
		want     error
	}{
		{"negative tax rate", one, "-1", "0", ErrTaxRateOutOfRange},
		{"tax rate above 100", one, "100.01", "0", ErrTaxRateOutOfRange},
		{"negative discount", one, "0", "-5", ErrNegativeDiscount},
		{"zero quantity", []LineInput{{Quantity: 0, UnitPrice: d("10")}}, "0", "0", ErrInvalidQuantity},
		{"negative unit price", []LineInput{{Quantity: 1, UnitPrice: d("-10")}}, "0", "0", ErrNegativeUnitPrice},
	}

	for _, tc := range cases {
		_, err := ComputeTotals(tc.items, d(tc.taxRate), d(tc.discount))
		if err != tc.want {
			t.Fatalf("%s: error = %v, want %v", tc.name, err, tc.want)
		}
	}
}

func TestLineAmount(t *testing.T) {
	if got := LineAmount(4, d("2.50")); !got.Equal(d("10")) {
		t.Fatalf("LineAmount(4, 2.50) = %s, want 10", got)
	}
}
