package payment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCardNumber(t *testing.T) {
	tests := []struct {
		name        string
		raw         string
		wantDigits  string
		wantDisplay string
	}{
		{name: "empty", raw: "", wantDigits: "", wantDisplay: ""},
		{name: "partial group", raw: "12345", wantDigits: "12345", wantDisplay: "1234 5"},
		{name: "full number", raw: "4242424242424242", wantDigits: "4242424242424242", wantDisplay: "4242 4242 4242 4242"},
		{name: "strips existing spacing", raw: "4242 4242 4242 4242", wantDigits: "4242424242424242", wantDisplay: "4242 4242 4242 4242"},
		{name: "strips letters and symbols", raw: "42a4-24b2", wantDigits: "424242", wantDisplay: "4242 42"},
		{name: "caps at sixteen digits", raw: "42424242424242429999", wantDigits: "4242424242424242", wantDisplay: "4242 4242 4242 4242"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			digits, display := NormalizeCardNumber(tt.raw)
			assert.Equal(t, tt.wantDigits, digits)
			assert.Equal(t, tt.wantDisplay, display)
		})
	}
}

func TestNormalizeCardNumber_Idempotent(t *testing.T) {
	_, display := NormalizeCardNumber("4242424242424242")
	digitsAgain, displayAgain := NormalizeCardNumber(display)
	assert.Equal(t, "4242424242424242", digitsAgain)
	assert.Equal(t, display, displayAgain)
}

func TestNormalizeExpiry(t *testing.T) {
	tests := []struct {
		name        string
		raw         string
		wantDigits  string
		wantDisplay string
	}{
		{name: "empty", raw: "", wantDigits: "", wantDisplay: ""},
		{name: "single digit displays as-is", raw: "1", wantDigits: "1", wantDisplay: "1"},
		{name: "two digits display as-is", raw: "12", wantDigits: "12", wantDisplay: "12"},
		{name: "third digit inserts separator", raw: "123", wantDigits: "123", wantDisplay: "12 / 3"},
		{name: "full expiry", raw: "1234", wantDigits: "1234", wantDisplay: "12 / 34"},
		{name: "strips formatted input", raw: "12 / 34", wantDigits: "1234", wantDisplay: "12 / 34"},
		{name: "caps at four digits", raw: "123456", wantDigits: "1234", wantDisplay: "12 / 34"},
		{name: "strips slashes", raw: "12/34", wantDigits: "1234", wantDisplay: "12 / 34"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			digits, display := NormalizeExpiry(tt.raw)
			assert.Equal(t, tt.wantDigits, digits)
			assert.Equal(t, tt.wantDisplay, display)
		})
	}
}

func TestNormalizeCvc(t *testing.T) {
	assert.Equal(t, "", NormalizeCvc(""))
	assert.Equal(t, "123", NormalizeCvc("123"))
	assert.Equal(t, "1234", NormalizeCvc("12345"))
	assert.Equal(t, "123", NormalizeCvc("1a2b3c"))
}

func TestNormalizeHolderName(t *testing.T) {
	assert.Equal(t, "ASHA RAO", NormalizeHolderName("Asha Rao"))
	assert.Equal(t, "ASHA RAO", NormalizeHolderName("ASHA RAO"))
	assert.Equal(t, "", NormalizeHolderName(""))
}

func TestNormalizeCardFields(t *testing.T) {
	fields := NormalizeCardFields("4242 4242 4242 4242", "12/34", "123", "Asha Rao")

	assert.Equal(t, "4242424242424242", fields.Number)
	assert.Equal(t, "1234", fields.Expiry)
	assert.Equal(t, "123", fields.Cvc)
	assert.Equal(t, "ASHA RAO", fields.HolderName)
	assert.True(t, fields.Complete())
}

func TestCardFields_Complete(t *testing.T) {
	full := CardFields{Number: "4242424242424242", Expiry: "1234", Cvc: "123", HolderName: "ASHA RAO"}
	assert.True(t, full.Complete())

	tests := []struct {
		name   string
		fields CardFields
	}{
		{name: "missing number", fields: CardFields{Expiry: "1234", Cvc: "123", HolderName: "ASHA RAO"}},
		{name: "missing expiry", fields: CardFields{Number: "4242424242424242", Cvc: "123", HolderName: "ASHA RAO"}},
		{name: "missing cvc", fields: CardFields{Number: "4242424242424242", Expiry: "1234", HolderName: "ASHA RAO"}},
		{name: "missing holder name", fields: CardFields{Number: "4242424242424242", Expiry: "1234", Cvc: "123"}},
		{name: "all empty", fields: CardFields{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, tt.fields.Complete())
		})
	}
}
