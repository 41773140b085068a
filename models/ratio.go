package models

import (
	"strconv"

	json "github.com/goccy/go-json"
)

// Ratio is the result of a division that may be undefined, e.g. LTV with zero
// churn. Undefined ratios encode as JSON null so consumers never see infinity.
type Ratio struct {
	Value   float64
	Defined bool
}

// Finite wraps a defined ratio value.
func Finite(v float64) Ratio { return Ratio{Value: v, Defined: true} }

// Undefined is the ratio of something over zero.
func Undefined() Ratio { return Ratio{} }

// Ptr returns the value, or nil when undefined.
func (r Ratio) Ptr() *float64 {
	if !r.Defined {
		return nil
	}
	v := r.Value
	return &v
}

func (r Ratio) String() string {
	if !r.Defined {
		return "undefined"
	}
	return strconv.FormatFloat(r.Value, 'f', 2, 64)
}

func (r Ratio) MarshalJSON() ([]byte, error) {
	if !r.Defined {
		return []byte("null"), nil
	}
	return strconv.AppendFloat(nil, r.Value, 'f', -1, 64), nil
}

func (r *Ratio) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*r = Undefined()
		return nil
	}
	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*r = Finite(v)
	return nil
}
