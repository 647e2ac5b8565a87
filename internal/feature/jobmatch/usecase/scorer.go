// Package usecase はjobmatchフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultScorerCapacity はメモ化キャッシュの既定容量です。
const DefaultScorerCapacity = 100

// ScoreFunc は求人票とプロフィールテキストからマッチスコアを計算する関数です。
type ScoreFunc func(jobDescription, userData string) float64

// MatchScore は単語集合の重なりに基づく簡易マッチスコアを計算します。
// 小文字化した単語集合の共通語数を、両テキストの（元のままの）ユニーク単語数の
// 合計で割った値を返します。両方が空の場合は0を返します。
func MatchScore(jobDescription, userData string) float64 {
	jobWords := uniqueWords(strings.ToLower(jobDescription))
	userWords := uniqueWords(strings.ToLower(userData))

	common := 0
	for w := range jobWords {
		if _, ok := userWords[w]; ok {
			common++
		}
	}

	denom := len(uniqueWords(jobDescription)) + len(uniqueWords(userData))
	if denom == 0 {
		return 0
	}
	return float64(common) / float64(denom)
}

// uniqueWords は空白区切りの単語集合を返します。
func uniqueWords(s string) map[string]struct{} {
	words := map[string]struct{}{}
	for _, w := range strings.Fields(s) {
		words[w] = struct{}{}
	}
	return words
}

// scoreKey は(求人票, プロフィール)のリテラルペアをキャッシュキーとして表します。
type scoreKey struct {
	jobDescription string
	userData       string
}

// MemoizedScorer はScoreFuncを容量制限付きLRUキャッシュでメモ化します。
// キャッシュは正しさに影響しない。失っても再計算のコストがかかるだけです。
type MemoizedScorer struct {
	cache *lru.Cache[scoreKey, float64]
	score ScoreFunc
}

// NewMemoizedScorer は指定容量のLRUキャッシュでスコア関数をラップします。
// capacityが0以下の場合はDefaultScorerCapacityにフォールバックします。
func NewMemoizedScorer(capacity int, score ScoreFunc) (*MemoizedScorer, error) {
	if capacity <= 0 {
		capacity = DefaultScorerCapacity
	}
	cache, err := lru.New[scoreKey, float64](capacity)
	if err != nil {
		return nil, err
	}
	return &MemoizedScorer{cache: cache, score: score}, nil
}

// Score はキャッシュ済みならそのスコアを、未計算ならスコア関数の結果を返します。
func (s *MemoizedScorer) Score(jobDescription, userData string) float64 {
	key := scoreKey{jobDescription: jobDescription, userData: userData}
	if v, ok := s.cache.Get(key); ok {
		return v
	}
	v := s.score(jobDescription, userData)
	s.cache.Add(key, v)
	return v
}
