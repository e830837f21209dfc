package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// FlexNumber aceita tanto número quanto texto numérico no JSON ("1500" ou 1500).
// Texto vazio é tratado como ausente.
type FlexNumber struct {
	Value float64
	Set   bool
}

func (n *FlexNumber) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		return nil
	}

	if strings.HasPrefix(raw, `"`) {
		unquoted, err := strconv.Unquote(raw)
		if err != nil {
			return fmt.Errorf("valor numérico inválido: %s", raw)
		}
		raw = strings.TrimSpace(unquoted)
		if raw == "" {
			return nil
		}
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("valor numérico inválido: %s", raw)
	}

	n.Value = v
	n.Set = true
	return nil
}

func (n FlexNumber) MarshalJSON() ([]byte, error) {
	if !n.Set {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatFloat(n.Value, 'f', -1, 64)), nil
}

// Float retorna o ponteiro para o valor, ou nil quando ausente
func (n *FlexNumber) Float() *float64 {
	if n == nil || !n.Set {
		return nil
	}
	v := n.Value
	return &v
}
