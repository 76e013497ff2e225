package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Money is an amount in minor currency units (cents). Keeping prices integral
// makes nights * price exact; the wire format stays a plain decimal number.
type Money int64

// MoneyFromUnits converts whole currency units to Money.
func MoneyFromUnits(units int64) Money {
	return Money(units * 100)
}

// ParseMoney parses a decimal string such as "1000" or "149.99".
func ParseMoney(s string) (Money, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty amount")
	}

	neg := false
	if s[0] == '-' {
		neg = true
		s = s[1:]
	}

	intPart, fracPart, _ := strings.Cut(s, ".")
	if intPart == "" {
		intPart = "0"
	}
	units, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q", s)
	}

	var cents int64
	switch len(fracPart) {
	case 0:
	case 1:
		c, err := strconv.ParseInt(fracPart, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid amount %q", s)
		}
		cents = c * 10
	default:
		c, err := strconv.ParseInt(fracPart[:2], 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid amount %q", s)
		}
		cents = c
	}

	m := Money(units*100 + cents)
	if neg {
		m = -m
	}
	return m, nil
}

func (m Money) String() string {
	units := int64(m) / 100
	cents := int64(m) % 100
	if cents < 0 {
		cents = -cents
	}
	if units == 0 && m < 0 {
		return fmt.Sprintf("-0.%02d", cents)
	}
	return fmt.Sprintf("%d.%02d", units, cents)
}

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *Money) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "null" {
		*m = 0
		return nil
	}
	parsed, err := ParseMoney(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
