// Package record 발송에 성공한 상품의 Fingerprint 집합(발송 이력)을 관리합니다.
//
// Deduplicator가 메모리 집합과 영속 저장소(Store)를 함께 소유하며, 발송 성공 직후 전체 집합을 다시 기록합니다.
// 이력은 삭제하지 않습니다.
package record

import "context"

const component = "record"

// Store 발송 이력 전체를 한 번에 읽고 쓰는 영속 저장소입니다.
type Store interface {
	// Load 저장된 Fingerprint 목록을 반환합니다. 아직 저장된 적이 없으면 빈 목록과 nil을 반환합니다.
	Load(ctx context.Context) ([]string, error)

	// Save 기존 내용을 fingerprints로 통째로 교체합니다.
	Save(ctx context.Context, fingerprints []string) error

	// Describe 로그와 상태 조회에 표시할 저장소 설명입니다. (예: "file:/data/deal-notifier-delivered.json")
	Describe() string
}
