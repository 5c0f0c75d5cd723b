// Package generator はダイス・コイン・じゃんけん・色・座標・人物の
// ランダムデータを1件ずつ生成する。
package generator

import (
	"time"

	"github.com/hitoshi/randapi/internal/corpus"
	"github.com/hitoshi/randapi/internal/random"
)

// timestampLayout はエンティティのtimestampフィールドの書式（UTC、ミリ秒精度）。
const timestampLayout = "2006-01-02T15:04:05.000Z"

// Generator はランダムデータの生成器。
// 状態を持たないため、リクエスト間で共有してよい（乱数源が並行安全な場合）。
type Generator struct {
	src    random.Source
	corpus corpus.Corpus
	now    func() time.Time
}

// Option はGeneratorの設定を変更する。
type Option func(*Generator)

// WithClock は現在時刻の取得方法を差し替える。テスト用。
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		g.now = now
	}
}

// New はGeneratorを生成する。
func New(src random.Source, c corpus.Corpus, opts ...Option) *Generator {
	g := &Generator{
		src:    src,
		corpus: c,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// between はrandom.Betweenのショートカット。
func (g *Generator) between(min, max float64) float64 {
	return random.Between(g.src, min, max)
}

// timestamp は現在時刻をtimestampフィールドの書式で返す。
func (g *Generator) timestamp() string {
	return g.now().UTC().Format(timestampLayout)
}
