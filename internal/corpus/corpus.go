// Package corpus は人物生成に使う名前リスト（コーパス）の読み込みを提供する。
package corpus

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// リソース名
const (
	Surnames    = "surname.txt"
	BoyNames    = "nameBoy.txt"
	GirlNames   = "nameGirl.txt"
	lineDivider = "\n"
)

// Corpus は改行区切りのテキストリソースを行のスライスとして返す。
type Corpus interface {
	LoadLines(ctx context.Context, name string) ([]string, error)
}

// FileCorpus はBasePath配下のファイルを呼び出しのたびに読み込むCorpus実装。
type FileCorpus struct {
	BasePath string
}

// NewFileCorpus はFileCorpusを生成する。
func NewFileCorpus(basePath string) *FileCorpus {
	return &FileCorpus{BasePath: basePath}
}

// LoadLines はファイルを読み込み"\n"で分割して返す。
// 末尾の改行は空要素として残り、"\r"は除去しない。
func (c *FileCorpus) LoadLines(ctx context.Context, name string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(filepath.Join(c.BasePath, name))
	if err != nil {
		return nil, fmt.Errorf("failed to read corpus %s: %w", name, err)
	}
	return strings.Split(string(data), lineDivider), nil
}

// CachedCorpus は初回読み込み成功後の内容をリソースごとに保持するCorpus実装。
// アセットが起動中に変化しない場合にのみ使用する。
type CachedCorpus struct {
	next Corpus

	mu    sync.RWMutex
	lines map[string][]string
}

// NewCachedCorpus はnextをラップしたCachedCorpusを生成する。
func NewCachedCorpus(next Corpus) *CachedCorpus {
	return &CachedCorpus{
		next:  next,
		lines: make(map[string][]string),
	}
}

// LoadLines はキャッシュ済みであればその内容を、なければnextから読み込んで返す。
// 読み込みに失敗した場合はキャッシュしない。
func (c *CachedCorpus) LoadLines(ctx context.Context, name string) ([]string, error) {
	c.mu.RLock()
	lines, ok := c.lines[name]
	c.mu.RUnlock()
	if ok {
		return lines, nil
	}

	lines, err := c.next.LoadLines(ctx, name)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.lines[name] = lines
	c.mu.Unlock()

	return lines, nil
}
