package handler

import (
	"net/http"

	"github.com/hitoshi/randapi/internal/amount"
	"github.com/hitoshi/randapi/internal/generator"
	"github.com/hitoshi/randapi/internal/metrics"
	"github.com/hitoshi/randapi/internal/model"
)

// メトリクスのkindラベル
const (
	kindDice   = "dice"
	kindPeople = "people"
	kindCoin   = "coin"
	kindRPS    = "rps"
	kindColor  = "color"
	kindPlace  = "place"
)

// パラメータのデフォルト値
const (
	defaultFaces  = "6"
	defaultAmount = "1"
	defaultGender = "both"
	defaultFormat = "hexadecimal"
)

// RandomHandler はランダムデータ生成エンドポイントのHTTPハンドラー。
type RandomHandler struct {
	gen       *generator.Generator
	metrics   metrics.MetricsCollector
	maxAmount int
}

// NewRandomHandler はRandomHandlerを生成する。
// collectorがnilの場合はメトリクスを記録しない。maxAmountが0以下なら生成数の上限を設けない。
func NewRandomHandler(gen *generator.Generator, collector metrics.MetricsCollector, maxAmount int) *RandomHandler {
	if collector == nil {
		collector = metrics.NopCollector{}
	}
	return &RandomHandler{
		gen:       gen,
		metrics:   collector,
		maxAmount: maxAmount,
	}
}

// Dice はダイスを振る。
// GET /dice/{faces}/{amount}
func (h *RandomHandler) Dice(w http.ResponseWriter, r *http.Request) {
	faces := param(r, "faces", defaultFaces)

	serveBatch(h, w, r, kindDice, amount.FromOne, func(i int) (model.Roll, error) {
		roll, err := h.gen.RollDiceRaw(faces)
		if err != nil {
			return model.Roll{}, err
		}
		roll.ID = i
		return roll, nil
	})
}

// People は人物を生成する。
// GET /people/{gender}/{amount}
func (h *RandomHandler) People(w http.ResponseWriter, r *http.Request) {
	gender := generator.ParseGender(param(r, "gender", defaultGender))

	serveBatch(h, w, r, kindPeople, amount.FromOne, func(i int) (model.Person, error) {
		p, err := h.gen.Person(r.Context(), gender)
		if err != nil {
			return model.Person{}, err
		}
		p.ID = i
		return p, nil
	})
}

// Coin はコインを投げる。
// GET /coin/{amount}
func (h *RandomHandler) Coin(w http.ResponseWriter, r *http.Request) {
	serveBatch(h, w, r, kindCoin, amount.AboveOne, func(i int) (model.CoinFlip, error) {
		flip := h.gen.FlipCoin()
		flip.ID = i
		return flip, nil
	})
}

// RPS はじゃんけんの手を1つ返す。
// GET /rps
func (h *RandomHandler) RPS(w http.ResponseWriter, r *http.Request) {
	res := h.gen.RockPaperScissors()
	h.metrics.RecordGenerated(kindRPS, 1)
	writeJSON(w, res)
}

// Color は色を生成する。
// GET /color/{format}/{amount}
func (h *RandomHandler) Color(w http.ResponseWriter, r *http.Request) {
	format := generator.ParseFormat(param(r, "format", defaultFormat))

	serveBatch(h, w, r, kindColor, amount.AboveOne, func(i int) (model.Color, error) {
		c, err := h.gen.Color(format)
		if err != nil {
			return model.Color{}, err
		}
		c.ID = i
		return c, nil
	})
}

// Place は座標を生成する。
// GET /place/{amount}
func (h *RandomHandler) Place(w http.ResponseWriter, r *http.Request) {
	serveBatch(h, w, r, kindPlace, amount.AboveOne, func(i int) (model.Place, error) {
		p := h.gen.Place()
		p.ID = i
		return p, nil
	})
}

// Health はヘルスチェック用のエンドポイント。
// GET /health
func (h *RandomHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "ok"})
}

// serveBatch はamountパラメータを検証し、genをamount回呼び出した結果を書き込む。
// パラメータ検証・生成エラーはhandleErrorに委ねる。
func serveBatch[T any](h *RandomHandler, w http.ResponseWriter, r *http.Request, kind string, policy amount.Policy, gen func(i int) (T, error)) {
	n, err := amount.Convert(param(r, "amount", defaultAmount))
	if err != nil {
		handleError(w, r, h.metrics, kind, err)
		return
	}

	plan, err := amount.NewPlan(n, policy, h.maxAmount)
	if err != nil {
		handleError(w, r, h.metrics, kind, err)
		return
	}

	data, err := amount.Run(plan, gen)
	if err != nil {
		handleError(w, r, h.metrics, kind, err)
		return
	}

	h.metrics.RecordGenerated(kind, plan.Count)
	writeJSON(w, data)
}
