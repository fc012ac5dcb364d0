package models

import (
	"fmt"
	"math"
	"strconv"
)

// Percentage is a 0-100 value rounded to one decimal.
// NaN means undefined (no attempts).
type Percentage float64

// UndefinedPercentage returns the undefined percentage value
func UndefinedPercentage() Percentage {
	return Percentage(math.NaN())
}

// PercentageOf computes 100 * made / attempted rounded to one decimal.
// Zero attempts yields an undefined percentage.
func PercentageOf(made, attempted int) Percentage {
	if attempted == 0 {
		return UndefinedPercentage()
	}
	return Percentage(RoundTenth(100 * float64(made) / float64(attempted)))
}

// RoundTenth rounds to one decimal place, ties to even
func RoundTenth(v float64) float64 {
	return math.RoundToEven(v*10) / 10
}

// Valid reports whether the percentage is defined
func (p Percentage) Valid() bool {
	return !math.IsNaN(float64(p))
}

// Float64 returns the raw value, NaN when undefined
func (p Percentage) Float64() float64 {
	return float64(p)
}

// String formats as "46.2%", or "N/A" when undefined
func (p Percentage) String() string {
	if !p.Valid() {
		return "N/A"
	}
	return fmt.Sprintf("%.1f%%", float64(p))
}

// MarshalJSON encodes undefined as null
func (p Percentage) MarshalJSON() ([]byte, error) {
	if !p.Valid() {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatFloat(float64(p), 'f', 1, 64)), nil
}

// UnmarshalJSON decodes null as undefined
func (p *Percentage) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*p = UndefinedPercentage()
		return nil
	}
	f, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return fmt.Errorf("parsing percentage: %w", err)
	}
	*p = Percentage(f)
	return nil
}
