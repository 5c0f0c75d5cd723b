// Package amount はamount等の数値パラメータの変換と、
// バッチ生成時のレスポンス形状（単一オブジェクトか配列か）の決定を行う。
package amount

import (
	"errors"
	"math"
	"math/big"
	"regexp"
	"strconv"
	"strings"

	"github.com/hitoshi/randapi/internal/model"
)

var (
	// numericPrefix は数値として受け付ける文字列の先頭パターン。
	numericPrefix = regexp.MustCompile(`^[+-]?[0-9]+`)
	// decimalLiteral は10進数として解釈できる文字列全体のパターン。
	decimalLiteral = regexp.MustCompile(`^[+-]?([0-9]+\.?[0-9]*|\.[0-9]+)([eE][+-]?[0-9]+)?$`)
)

// Convert は文字列パラメータを数値に変換する。
// 先頭が符号付き整数でなければmodel.ErrNotANumberを返す。
// 先頭が数字でも全体が数値として解釈できない場合（例: "6abc"）はNaNを返す。
func Convert(raw string) (float64, error) {
	if !numericPrefix.MatchString(raw) {
		return 0, model.ErrNotANumber
	}
	return coerce(raw), nil
}

// coerce は文字列全体を数値として解釈する。解釈できなければNaN。
func coerce(raw string) float64 {
	s := strings.TrimSpace(raw)

	if len(s) > 2 && s[0] == '0' {
		base := 0
		switch s[1] {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}
		if base != 0 {
			n, ok := new(big.Int).SetString(s[2:], base)
			if !ok {
				return math.NaN()
			}
			f, _ := new(big.Float).SetInt(n).Float64()
			return f
		}
	}

	if !decimalLiteral.MatchString(s) {
		return math.NaN()
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return math.NaN()
	}
	return f
}
