// Package deal 할인 상품 후보(Candidate)의 정규화, 식별(Fingerprint), 순위 산정, 메시지 렌더링을 담당합니다.
//
// 이 패키지의 함수들은 모두 순수 함수이며 외부 I/O를 수행하지 않습니다.
package deal

// RawListing 소스에서 추출한 가공 전 상품 정보입니다.
// 모든 필드는 추출된 텍스트 그대로이며, 비어 있을 수 있습니다.
type RawListing struct {
	Title    string
	Price    string
	OldPrice string
	Discount string
	ImageURL string
	Link     string
}

// Candidate 정규화를 통과한 발송 후보 상품입니다.
//
// Title과 ProductURL은 항상 채워져 있고, ProductURL은 http(s) 절대 경로입니다.
// 나머지 문자열 필드는 빈 값이 "없음"을 의미합니다.
type Candidate struct {
	Title          string
	DisplayPrice   string
	ReferencePrice string
	DiscountLabel  string
	ImageURL       string
	ProductURL     string

	// Source 후보를 만든 소스의 ID입니다. 식별(Fingerprint)에는 사용하지 않습니다.
	Source string
}

func (c Candidate) HasImage() bool {
	return c.ImageURL != ""
}
