package amount

import (
	"math"

	"github.com/hitoshi/randapi/internal/model"
)

// DefaultMax は設定で上限を指定しなかった場合の生成数の上限。
const DefaultMax = 10000

// hardMax は上限なし（max <= 0）でも生成回数をintに収めるための上限。
const hardMax = math.MaxInt32

// Policy は配列形式で返し始める閾値をエンドポイントごとに表す。
type Policy int

const (
	// FromOne は amount >= 1 で配列形式とする（dice, people）。
	// 0 < amount < 1 の場合は要素1件の配列になる。
	FromOne Policy = iota
	// AboveOne は amount > 1 で配列形式とする（coin, color, place）。
	// 0 < amount < 1 の場合は単一オブジェクトになる。
	AboveOne
)

// Plan はバッチ生成の実行計画。
type Plan struct {
	Count  int  // 生成回数
	Single bool // trueなら配列で包まず単一オブジェクトを返す
	Empty  bool // trueなら何も生成せず空のボディを返す
}

// NewPlan はamountを検証し、生成回数とレスポンス形状を決定する。
// 生成回数は i < amount を満たす非負整数iの個数。
// maxが0以下の場合は上限を設けない（ただしhardMaxを超える値と無限大は拒否する）。
func NewPlan(amount float64, policy Policy, max int) (Plan, error) {
	if max <= 0 {
		max = hardMax
	}

	// NaNとの比較はすべて偽になるため、ループは1回も回らない
	if math.IsNaN(amount) {
		return Plan{Empty: true}, nil
	}
	if amount <= 0 {
		return Plan{}, model.ErrOutOfRange
	}
	if amount > float64(max) {
		return Plan{}, model.NewTooLargeError(max)
	}

	single := amount == 1 || (policy == AboveOne && amount < 1)

	return Plan{
		Count:  int(math.Ceil(amount)),
		Single: single,
	}, nil
}

// Run はplanに従いgenをi = 0..Count-1で呼び出し、結果を組み立てる。
// genがエラーを返した時点で中断してそのエラーを返す。
// Singleなら最後に生成した値を、そうでなければ順序を保ったスライスを返す。
// Emptyならnilを返す。
func Run[T any](plan Plan, gen func(i int) (T, error)) (any, error) {
	if plan.Empty {
		return nil, nil
	}

	items := make([]T, 0, plan.Count)
	for i := 0; i < plan.Count; i++ {
		item, err := gen(i)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	if plan.Single && len(items) > 0 {
		return items[len(items)-1], nil
	}
	return items, nil
}
