package generator

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/hitoshi/randapi/internal/corpus"
	"github.com/hitoshi/randapi/internal/model"
)

// Gender は人物生成時の性別指定。
type Gender int

const (
	GenderInvalid Gender = iota
	GenderAny            // ランダムに選ぶ
	GenderMale
	GenderFemale
)

var (
	malePattern   = regexp.MustCompile(`(?i)^m(ale)?$`)
	femalePattern = regexp.MustCompile(`(?i)^f(emale)?$`)
)

// ParseGender は性別指定文字列を解釈する。大文字小文字は区別しない。
// 空文字または"both"を含む場合はGenderAny。
func ParseGender(s string) Gender {
	switch {
	case s == "" || strings.Contains(strings.ToLower(s), "both"):
		return GenderAny
	case malePattern.MatchString(s):
		return GenderMale
	case femalePattern.MatchString(s):
		return GenderFemale
	default:
		return GenderInvalid
	}
}

// Person は人物を1件生成する。
// 名前リストは呼び出しのたびにコーパスから読み込む。
func (g *Generator) Person(ctx context.Context, gender Gender) (model.Person, error) {
	surnames, err := g.corpus.LoadLines(ctx, corpus.Surnames)
	if err != nil {
		return model.Person{}, fmt.Errorf("failed to load surnames: %w", err)
	}
	boyNames, err := g.corpus.LoadLines(ctx, corpus.BoyNames)
	if err != nil {
		return model.Person{}, fmt.Errorf("failed to load boy names: %w", err)
	}
	girlNames, err := g.corpus.LoadLines(ctx, corpus.GirlNames)
	if err != nil {
		return model.Person{}, fmt.Errorf("failed to load girl names: %w", err)
	}

	if gender == GenderAny {
		gender = GenderFemale
		if g.src.Float64() < 0.5 {
			gender = GenderMale
		}
	}

	var p model.Person
	switch gender {
	case GenderMale:
		p.Name = g.pick(boyNames)
		p.Gender = model.GenderMale
	case GenderFemale:
		p.Name = g.pick(girlNames)
		p.Gender = model.GenderFemale
	default:
		return model.Person{}, model.ErrInvalidGender
	}

	p.Surname = g.pick(surnames)
	p.DateOfBirth = g.DateOfBirth()
	p.Age = g.Age(p.DateOfBirth)

	return p, nil
}

// pick はlinesから round(u*len) 番目の要素を返す。
// 添字がlenに等しくなった場合（範囲外）はnilを返す。
func (g *Generator) pick(lines []string) *string {
	idx := int(g.between(0, float64(len(lines))))
	if idx >= len(lines) {
		return nil
	}
	return &lines[idx]
}

// DateOfBirth はUNIXエポックから現在までの一様な時刻を選び、
// ローカルタイムでの年月日を返す。
func (g *Generator) DateOfBirth() model.Date {
	now := g.now()
	ms := g.between(0, float64(now.UnixMilli()))
	t := time.UnixMilli(int64(ms)).In(now.Location())

	return model.Date{
		Year:  t.Year(),
		Month: int(t.Month()),
		Day:   t.Day(),
	}
}

// Age は現在日付における満年齢を返す。
func (g *Generator) Age(dob model.Date) int {
	today := g.now()
	age := today.Year() - dob.Year

	month := int(today.Month())
	if month < dob.Month || (month == dob.Month && today.Day() < dob.Day) {
		age--
	}
	return age
}
