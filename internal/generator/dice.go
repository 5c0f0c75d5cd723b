package generator

import (
	"github.com/hitoshi/randapi/internal/amount"
	"github.com/hitoshi/randapi/internal/model"
)

// じゃんけんの結果
const (
	Rock    = "Rock"
	Paper   = "Paper"
	Scissor = "Scissor"
)

// RollDice はfaces面のダイスを1回振る。
// facesが0以下の場合はエラーメッセージのみを持つRollを返す。
// facesがNaNの場合、rollはnullになる。
func (g *Generator) RollDice(faces float64) model.Roll {
	if faces <= 0 {
		return model.Roll{Error: model.FacesBelowZeroMessage}
	}

	roll := model.Number(g.between(1, faces))
	return model.Roll{
		Timestamp: g.timestamp(),
		Roll:      &roll,
	}
}

// RollDiceRaw は文字列の面数を変換してからダイスを振る。
// 面数が数値でなければmodel.ErrNotANumberを返す。
func (g *Generator) RollDiceRaw(faces string) (model.Roll, error) {
	n, err := amount.Convert(faces)
	if err != nil {
		return model.Roll{}, err
	}
	return g.RollDice(n), nil
}

// FlipCoin はコインを1回投げる。
func (g *Generator) FlipCoin() model.CoinFlip {
	side := "H"
	if g.src.Float64() < 0.5 {
		side = "T"
	}
	return model.CoinFlip{
		Timestamp: g.timestamp(),
		Flip:      side,
	}
}

// RockPaperScissors は3面ダイスを振ってじゃんけんの手を決める。IDは常に0。
func (g *Generator) RockPaperScissors() model.RPSResult {
	res := model.RPSResult{
		ID:        0,
		Timestamp: g.timestamp(),
	}

	roll := g.RollDice(3)
	switch *roll.Roll {
	case 1:
		res.Result = Rock
	case 2:
		res.Result = Paper
	case 3:
		res.Result = Scissor
	}
	return res
}
