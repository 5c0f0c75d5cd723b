package generator

import (
	"strconv"
	"strings"

	"github.com/hitoshi/randapi/internal/model"
)

// Format は色の出力形式。
type Format int

const (
	FormatInvalid Format = iota
	FormatHSx            // hs, hsl, hsb（出力はh, s, b）
	FormatRGB
	FormatCMYK
	FormatHex
)

// ParseFormat はフォーマット指定文字列を解釈する。大文字小文字は区別しない。
// 判定順:
//  1. "hs" の後に "(", "b", "l", ")" のいずれか1文字が任意で続く文字列全体
//  2. "rgb" を含む
//  3. "cmyk" を含む
//  4. "hex" または "hexadecimal" の文字列全体
func ParseFormat(s string) Format {
	lower := strings.ToLower(s)

	switch {
	case isHSx(lower):
		return FormatHSx
	case strings.Contains(lower, "rgb"):
		return FormatRGB
	case strings.Contains(lower, "cmyk"):
		return FormatCMYK
	case lower == "hex" || lower == "hexadecimal":
		return FormatHex
	default:
		return FormatInvalid
	}
}

func isHSx(lower string) bool {
	if !strings.HasPrefix(lower, "hs") {
		return false
	}
	switch len(lower) {
	case 2:
		return true
	case 3:
		return strings.IndexByte("(bl)", lower[2]) >= 0
	default:
		return false
	}
}

// Color は指定フォーマットの色を1件生成する。
func (g *Generator) Color(format Format) (model.Color, error) {
	c := model.Color{Timestamp: g.timestamp()}

	switch format {
	case FormatHSx:
		c.Color = model.HSB{
			H: g.intBetween(0, 360),
			S: g.intBetween(0, 100),
			B: g.intBetween(0, 100),
		}
	case FormatRGB:
		c.Color = model.RGB{
			R: g.intBetween(0, 256),
			G: g.intBetween(0, 256),
			B: g.intBetween(0, 256),
		}
	case FormatCMYK:
		c.Color = model.CMYK{
			C: g.intBetween(0, 100),
			M: g.intBetween(0, 100),
			Y: g.intBetween(0, 100),
			K: g.intBetween(0, 100),
		}
	case FormatHex:
		// 各値はゼロ埋めしない（5は"5"、256は"100"）
		var b strings.Builder
		b.WriteByte('#')
		for i := 0; i < 3; i++ {
			b.WriteString(strconv.FormatInt(int64(g.intBetween(0, 256)), 16))
		}
		c.Color = model.Hex{Hex: b.String()}
	default:
		return model.Color{}, model.ErrInvalidFormat
	}

	return c, nil
}

func (g *Generator) intBetween(min, max int) int {
	return int(g.between(float64(min), float64(max)))
}
