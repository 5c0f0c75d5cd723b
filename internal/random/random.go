// Package random は一様乱数の取得と範囲指定の整数化を提供する。
package random

import (
	"math"
	"math/rand/v2"
)

// Source は[0, 1)の一様乱数を返す乱数源。
type Source interface {
	Float64() float64
}

// globalSource はmath/rand/v2のトップレベル関数を使う乱数源。
// 並行に呼び出しても安全。
type globalSource struct{}

func (globalSource) Float64() float64 {
	return rand.Float64()
}

// Default はプロセス共通の乱数源を返す。
func Default() Source {
	return globalSource{}
}

// Between は round(u*(max-min)+min) を返す。
// 丸めは四捨五入（floor(x+0.5)）で、min・maxの両端も選ばれうる。
// 両端の出現確率は内側の値の約半分になる。
func Between(src Source, min, max float64) float64 {
	return math.Floor(src.Float64()*(max-min) + min + 0.5)
}

// Sequence は指定した値を順番に返す乱数源。テスト用。
// 値を使い切ると先頭に戻る。
type Sequence struct {
	values []float64
	next   int
}

// NewSequence はSequenceを生成する。
func NewSequence(values ...float64) *Sequence {
	return &Sequence{values: values}
}

// Float64 は次の値を返す。
func (s *Sequence) Float64() float64 {
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[s.next%len(s.values)]
	s.next++
	return v
}
