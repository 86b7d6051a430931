// Package source 할인 상품 목록을 제공하는 수집 대상(Source)을 정의합니다.
//
// 지원하는 종류:
//   - html: 상품 목록 페이지를 goquery로 파싱하고, 카드마다 필드별 추출 전략을 순서대로 적용합니다.
//   - rss: RSS/Atom 피드를 gofeed로 파싱하고, 제목과 본문에서 가격과 할인율을 찾아냅니다.
package source

import (
	"context"
	"net/url"
	"sync"

	"github.com/darkkaiser/deal-notifier/internal/service/deal"
)

const component = "source"

// Source 하나의 수집 대상입니다.
type Source interface {
	// ID 설정에 정의된 소스 식별자입니다.
	ID() string

	// BaseURL 상대 경로 링크를 해석할 때 기준으로 삼는 URL입니다.
	BaseURL() *url.URL

	// Limit 한 번의 수집에서 이 소스가 기여할 수 있는 최대 후보 수입니다.
	Limit() int

	// Fetch 가공 전 상품 목록을 가져옵니다.
	// 목록이 비어 있는 것은 에러가 아니며, 네트워크나 파싱 실패만 에러로 반환합니다.
	Fetch(ctx context.Context) ([]deal.RawListing, error)
}

// base 모든 Source 구현이 공유하는 식별 정보입니다.
type base struct {
	id    string
	limit int

	mu      sync.RWMutex
	baseURL *url.URL
}

func (b *base) ID() string {
	return b.id
}

func (b *base) BaseURL() *url.URL {
	b.mu.RLock()
	defer b.mu.RUnlock()

	u := *b.baseURL
	return &u
}

// setBaseURL 리다이렉트 등으로 실제 문서 위치가 바뀌었을 때 기준 URL을 갱신합니다.
func (b *base) setBaseURL(u *url.URL) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.baseURL = u
}

func (b *base) Limit() int {
	return b.limit
}
