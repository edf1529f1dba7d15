package payment

import "strings"

// Per-keystroke formatting rules for the card form. All transforms are
// total functions over strings: any input yields a result, never an error.
const (
	maxCardNumberDigits = 16
	maxExpiryDigits     = 4
	maxCvcDigits        = 4
	cardGroupSize       = 4
)

// CardFields holds the canonical form of the card inputs: digits only
// for number/expiry/cvc, independent of display formatting.
type CardFields struct {
	Number     string `json:"number"`
	Expiry     string `json:"expiry"`
	Cvc        string `json:"cvc"`
	HolderName string `json:"holder_name"`
}

// Complete reports whether every field required for submission is present.
func (f CardFields) Complete() bool {
	return f.Number != "" && f.Expiry != "" && f.Cvc != "" && f.HolderName != ""
}

// NormalizeCardFields canonicalizes raw form values into CardFields.
func NormalizeCardFields(number, expiry, cvc, holderName string) CardFields {
	numberDigits, _ := NormalizeCardNumber(number)
	expiryDigits, _ := NormalizeExpiry(expiry)
	return CardFields{
		Number:     numberDigits,
		Expiry:     expiryDigits,
		Cvc:        NormalizeCvc(cvc),
		HolderName: NormalizeHolderName(holderName),
	}
}

// NormalizeCardNumber strips non-digits, caps at 16 digits, and renders
// the display form in groups of 4 ("1234 5678 9012 3456"; "1234 5").
func NormalizeCardNumber(raw string) (digits, display string) {
	digits = digitsOnly(raw, maxCardNumberDigits)

	groups := make([]string, 0, (len(digits)+cardGroupSize-1)/cardGroupSize)
	for i := 0; i < len(digits); i += cardGroupSize {
		end := i + cardGroupSize
		if end > len(digits) {
			end = len(digits)
		}
		groups = append(groups, digits[i:end])
	}
	return digits, strings.Join(groups, " ")
}

// NormalizeExpiry strips non-digits, caps at 4 digits, and renders
// "MM / YY" once a third digit exists; shorter inputs display as-is.
func NormalizeExpiry(raw string) (digits, display string) {
	digits = digitsOnly(raw, maxExpiryDigits)

	if len(digits) > 2 {
		return digits, digits[:2] + " / " + digits[2:]
	}
	return digits, digits
}

// NormalizeCvc strips non-digits and caps at 4 digits.
func NormalizeCvc(raw string) string {
	return digitsOnly(raw, maxCvcDigits)
}

// NormalizeHolderName upper-cases the name; no length limit here.
func NormalizeHolderName(raw string) string {
	return strings.ToUpper(raw)
}

func digitsOnly(raw string, max int) string {
	var b strings.Builder
	for _, r := range raw {
		if r < '0' || r > '9' {
			continue
		}
		b.WriteRune(r)
		if b.Len() == max {
			break
		}
	}
	return b.String()
}
