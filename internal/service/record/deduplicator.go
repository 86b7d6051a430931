package record

import (
	"context"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/darkkaiser/deal-notifier/internal/service/deal"
	applog "github.com/darkkaiser/deal-notifier/pkg/log"
)

// Deduplicator 이미 발송한 상품인지 판별하고, 발송 성공을 기록합니다.
//
// 메모리의 Fingerprint 집합이 기준이며, 저장소 쓰기가 실패해도 메모리 집합은 유지됩니다.
// 같은 프로세스 안에서는 저장 실패와 관계없이 한 번 기록된 상품을 다시 발송하지 않습니다.
type Deduplicator struct {
	store Store

	// saveMu 스냅샷 생성과 저장을 묶어, 오래된 스냅샷이 최신 스냅샷을 덮어쓰지 않게 합니다.
	saveMu sync.Mutex

	mu   sync.RWMutex
	seen map[string]struct{}

	loaded atomic.Bool
}

func NewDeduplicator(store Store) *Deduplicator {
	if store == nil {
		panic("record: Store는 nil일 수 없습니다")
	}
	return &Deduplicator{
		store: store,
		seen:  make(map[string]struct{}),
	}
}

// Load 저장소에서 발송 이력을 읽어 메모리 집합을 채웁니다. 프로세스 시작 시 한 번 호출합니다.
//
// 저장소를 읽지 못하면 빈 이력으로 시작하고 에러를 로그로만 남깁니다.
func (d *Deduplicator) Load(ctx context.Context) {
	fingerprints, err := d.store.Load(ctx)
	if err != nil {
		applog.WithComponentAndFields(component, applog.Fields{
			"store": d.store.Describe(),
			"error": err.Error(),
		}).Error("발송 이력 로드 실패: 빈 이력으로 시작합니다")
		fingerprints = nil
	}

	d.mu.Lock()
	d.seen = make(map[string]struct{}, len(fingerprints))
	for _, fp := range fingerprints {
		d.seen[fp] = struct{}{}
	}
	count := len(d.seen)
	d.mu.Unlock()

	d.loaded.Store(err == nil)

	applog.WithComponentAndFields(component, applog.Fields{
		"store": d.store.Describe(),
		"count": count,
	}).Info("발송 이력 로드 완료")
}

// IsNew 후보가 아직 발송되지 않았는지 확인합니다. 상태를 변경하지 않습니다.
func (d *Deduplicator) IsNew(c deal.Candidate) bool {
	fp := deal.Fingerprint(c)

	d.mu.RLock()
	defer d.mu.RUnlock()

	_, exists := d.seen[fp]
	return !exists
}

// MarkDelivered 후보의 Fingerprint를 이력에 추가하고 전체 이력을 즉시 저장합니다.
// 저장 실패는 로그로 남기며, 메모리 이력에는 그대로 반영됩니다.
func (d *Deduplicator) MarkDelivered(ctx context.Context, c deal.Candidate) {
	fp := deal.Fingerprint(c)

	d.saveMu.Lock()
	defer d.saveMu.Unlock()

	d.mu.Lock()
	d.seen[fp] = struct{}{}
	snapshot := make([]string, 0, len(d.seen))
	for k := range d.seen {
		snapshot = append(snapshot, k)
	}
	d.mu.Unlock()

	slices.Sort(snapshot)

	if err := d.store.Save(ctx, snapshot); err != nil {
		applog.WithComponentAndFields(component, applog.Fields{
			"store":       d.store.Describe(),
			"fingerprint": fp,
			"error":       err.Error(),
		}).Error("발송 이력 저장 실패: 메모리 이력은 유지됩니다")
	}
}

// Len 기록된 Fingerprint 수를 반환합니다.
func (d *Deduplicator) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return len(d.seen)
}

// Loaded 마지막 Load가 저장소를 정상적으로 읽었는지 여부입니다.
func (d *Deduplicator) Loaded() bool {
	return d.loaded.Load()
}

// Describe 사용 중인 저장소 설명을 반환합니다.
func (d *Deduplicator) Describe() string {
	return d.store.Describe()
}
