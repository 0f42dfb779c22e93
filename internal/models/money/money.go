package money

import (
	"encoding/json"
	"errors"
)

// Money is a sum in the smallest currency unit.
type Money uint64

func (v Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(float64(v) / 100)
}

func (v *Money) UnmarshalJSON(data []byte) error {
	var tmp float64

	if err := json.Unmarshal(data, &tmp); err != nil {
		return err
	}

	if tmp < 0 {
		return errors.New("money value cannot be negative")
	}

	*v = Money(tmp * 100)

	return nil
}
