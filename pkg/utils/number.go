package utils

import "math"

// RoundMoney arredonda valores monetários para duas casas decimais, como
// são gravados na coluna NUMERIC(14, 2).
func RoundMoney(v *float64) *float64 {
	if v == nil {
		return nil
	}

	rounded := math.Round(*v*100) / 100
	return &rounded
}
