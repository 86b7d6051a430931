package deal

import (
	"cmp"
	"slices"
	"strconv"
	"strings"
)

const (
	// LabelOnlyScore 할인 표시는 있으나 숫자를 읽을 수 없을 때 부여하는 점수입니다.
	LabelOnlyScore = 5.0

	referencePriceBonus = 3.0
	completenessBonus   = 1.0
)

// ParseDiscountMagnitude 할인 표시 문자열에서 숫자와 '.'만 순서대로 골라 숫자로 해석합니다.
// 예: "-45%" -> 45, "1.5x" -> 1.5
//
// 숫자가 없거나 골라낸 문자열이 올바른 숫자가 아니면 false를 반환합니다.
func ParseDiscountMagnitude(label string) (float64, bool) {
	var b strings.Builder
	hasDigit := false
	for _, r := range label {
		switch {
		case r >= '0' && r <= '9':
			hasDigit = true
			b.WriteRune(r)
		case r == '.':
			b.WriteRune(r)
		}
	}
	if !hasDigit {
		return 0, false
	}

	v, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Score 후보의 발송 우선순위 점수를 계산합니다.
func Score(c Candidate) float64 {
	var score float64

	if c.DiscountLabel != "" {
		if v, ok := ParseDiscountMagnitude(c.DiscountLabel); ok {
			score = v
		} else {
			score = LabelOnlyScore
		}
	}
	if c.ReferencePrice != "" {
		score += referencePriceBonus
	}
	if c.Title != "" && c.DisplayPrice != "" {
		score += completenessBonus
	}

	return score
}

// Rank 점수 내림차순으로 정렬한 새 슬라이스를 반환합니다. 점수가 같으면 입력 순서를 유지합니다.
func Rank(cs []Candidate) []Candidate {
	type scored struct {
		c     Candidate
		score float64
	}

	items := make([]scored, len(cs))
	for i, c := range cs {
		items[i] = scored{c: c, score: Score(c)}
	}
	slices.SortStableFunc(items, func(a, b scored) int {
		return cmp.Compare(b.score, a.score)
	})

	out := make([]Candidate, len(items))
	for i, it := range items {
		out[i] = it.c
	}
	return out
}
