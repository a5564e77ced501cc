package catalogo

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Kind indica qué contiene una celda.
type Kind uint8

const (
	KindEmpty Kind = iota
	KindText
	KindDecimal
	KindInteger
)

// Value es el valor tipado de una celda. El valor cero es una celda vacía (nulo).
type Value struct {
	kind Kind
	text string
	dec  decimal.Decimal
	n    int64
}

// Empty devuelve una celda vacía.
func Empty() Value { return Value{} }

// Text construye una celda de texto. La cadena vacía equivale a celda vacía.
func Text(s string) Value {
	if s == "" {
		return Value{}
	}
	return Value{kind: KindText, text: s}
}

// Decimal construye una celda numérica decimal.
func Decimal(d decimal.Decimal) Value { return Value{kind: KindDecimal, dec: d} }

// Integer construye una celda entera.
func Integer(n int64) Value { return Value{kind: KindInteger, n: n} }

func (v Value) Kind() Kind   { return v.kind }
func (v Value) IsNull() bool { return v.kind == KindEmpty }

// String devuelve la forma textual del valor; vacío para celdas nulas.
func (v Value) String() string {
	switch v.kind {
	case KindText:
		return v.text
	case KindDecimal:
		return v.dec.String()
	case KindInteger:
		return strconv.FormatInt(v.n, 10)
	default:
		return ""
	}
}

// AsDecimal intenta interpretar el valor como número. El texto se recorta antes de convertir.
func (v Value) AsDecimal() (decimal.Decimal, bool) {
	switch v.kind {
	case KindDecimal:
		return v.dec, true
	case KindInteger:
		return decimal.NewFromInt(v.n), true
	case KindText:
		d, err := decimal.NewFromString(strings.TrimSpace(v.text))
		if err != nil {
			return decimal.Zero, false
		}
		return d, true
	default:
		return decimal.Zero, false
	}
}

// AsInteger devuelve el entero de una celda KindInteger.
func (v Value) AsInteger() (int64, bool) {
	if v.kind != KindInteger {
		return 0, false
	}
	return v.n, true
}

// Equal compara tipo y valor; los decimales se comparan numéricamente.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindText:
		return v.text == o.text
	case KindDecimal:
		return v.dec.Equal(o.dec)
	case KindInteger:
		return v.n == o.n
	default:
		return true
	}
}

// MarshalJSON emite null, cadena o número según el tipo.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindText:
		return json.Marshal(v.text)
	case KindDecimal:
		return []byte(v.dec.String()), nil
	case KindInteger:
		return []byte(strconv.FormatInt(v.n, 10)), nil
	default:
		return []byte("null"), nil
	}
}
