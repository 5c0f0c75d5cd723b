package model

import (
	"encoding/json"
	"math"
)

// Number はJSONの数値として出力される値。
// NaNおよび無限大はnullとして出力する。
type Number float64

// MarshalJSON はjson.Marshalerを実装する。
func (n Number) MarshalJSON() ([]byte, error) {
	f := float64(n)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return []byte("null"), nil
	}
	return json.Marshal(f)
}
