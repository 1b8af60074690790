package display

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	microThreshold = decimal.New(1, -4) // 0.0001
	microPattern   = regexp.MustCompile(`^0\.(0+)([1-9]\d*)`)
	subscripts     = []rune("₀₁₂₃₄₅₆₇₈₉")
)

// MicroPrice is a display form of a price string. Prices below 0.0001 are
// shown as a zero-run count plus the first significant digits, so
// "0.00000123" becomes "$0.0₍₅₎123". The source string is kept unchanged.
type MicroPrice struct {
	Raw     string
	Valid   bool
	Compact bool   // zero-run form in use
	Zeros   int    // zeros between the decimal point and the first significant digit
	Digits  string // up to four significant digits
	Display string
}

// FormatMicroPrice builds the display form of a provider price string.
// Unparseable input is displayed verbatim.
func FormatMicroPrice(price string) MicroPrice {
	raw := strings.TrimSpace(price)
	mp := MicroPrice{Raw: raw, Display: raw}

	d, err := decimal.NewFromString(raw)
	if err != nil {
		return mp
	}
	mp.Valid = true

	if d.GreaterThanOrEqual(microThreshold) {
		mp.Display = "$" + groupDecimalString(d.Round(6).String())
		return mp
	}

	// Match the plain decimal form so exponent input ("1.23e-6") compacts too.
	m := microPattern.FindStringSubmatch(d.String())
	if m == nil {
		mp.Display = "$" + raw
		return mp
	}
	digits := m[2]
	if len(digits) > 4 {
		digits = digits[:4]
	}
	mp.Compact = true
	mp.Zeros = len(m[1])
	mp.Digits = digits
	mp.Display = "$0.0" + subscript(mp.Zeros) + digits
	return mp
}

// Decimal re-derives the value that is shown. For compact prices this is the
// zero run followed by the shown digits; otherwise the parsed source value.
func (m MicroPrice) Decimal() decimal.Decimal {
	if !m.Valid {
		return decimal.Zero
	}
	if m.Compact {
		d, err := decimal.NewFromString("0." + strings.Repeat("0", m.Zeros) + m.Digits)
		if err != nil {
			return decimal.Zero
		}
		return d
	}
	d, _ := decimal.NewFromString(m.Raw)
	return d
}

// ZeroCount is the zero-run length as text, for templates that style it separately.
func (m MicroPrice) ZeroCount() string {
	return strconv.Itoa(m.Zeros)
}

func subscript(n int) string {
	var b strings.Builder
	b.WriteRune('₍')
	for _, c := range strconv.Itoa(n) {
		b.WriteRune(subscripts[c-'0'])
	}
	b.WriteRune('₎')
	return b.String()
}
