// Package pipeline 수집, 중복 제거, 순위 산정, 발송으로 이어지는 한 번의 실행(Run)을 담당합니다.
package pipeline

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"
	"sync/atomic"
	"time"

	"github.com/darkkaiser/deal-notifier/internal/service/deal"
	"github.com/darkkaiser/deal-notifier/internal/service/dispatcher"
	"github.com/darkkaiser/deal-notifier/internal/service/link"
	"github.com/darkkaiser/deal-notifier/internal/service/source"
	applog "github.com/darkkaiser/deal-notifier/pkg/log"
	"golang.org/x/sync/errgroup"
)

const component = "pipeline"

const (
	defaultMaxPerRun     = 25
	defaultSourceTimeout = 30 * time.Second

	// maxConcurrentSources 동시에 수집하는 소스 수의 상한입니다.
	maxConcurrentSources = 4

	// markDeliveredTimeout 발송에 성공한 후보의 이력 저장에 허용하는 최대 시간입니다.
	// 실행 컨텍스트와 분리되어 있어 실행이 취소되어도 저장은 끝까지 시도합니다.
	markDeliveredTimeout = 10 * time.Second
)

// Deduplicator 발송 이력 조회와 기록을 담당합니다.
type Deduplicator interface {
	IsNew(c deal.Candidate) bool
	MarkDelivered(ctx context.Context, c deal.Candidate)
}

// Rewriter 상품 URL에 제휴 파라미터를 붙입니다.
type Rewriter interface {
	Rewrite(productURL string) string
}

// Config Orchestrator 동작 설정입니다.
type Config struct {
	// MaxPerRun 한 번의 실행에서 발송할 최대 후보 수입니다.
	MaxPerRun int

	// SourceTimeout 소스 하나를 수집하는 데 허용하는 최대 시간입니다.
	SourceTimeout time.Duration
}

// Orchestrator 한 번의 실행(Run)을 수행합니다.
//
// Run은 동시에 하나만 실행된다고 가정합니다. 동시 실행 방지는 호출자(scheduler)의 책임입니다.
type Orchestrator struct {
	sources      []source.Source
	deduplicator Deduplicator
	rewriter     Rewriter
	shortener    link.Shortener
	dispatcher   dispatcher.Dispatcher

	maxPerRun     int
	sourceTimeout time.Duration

	now func() time.Time

	state atomic.Int32

	mu         sync.RWMutex
	lastReport *Report
}

// New 필수 의존성이 nil이면 패닉이 발생합니다.
func New(cfg Config, sources []source.Source, d Deduplicator, rw Rewriter, sh link.Shortener, dp dispatcher.Dispatcher) *Orchestrator {
	if d == nil {
		panic("pipeline: Deduplicator는 nil일 수 없습니다")
	}
	if rw == nil {
		panic("pipeline: Rewriter는 nil일 수 없습니다")
	}
	if sh == nil {
		panic("pipeline: Shortener는 nil일 수 없습니다")
	}
	if dp == nil {
		panic("pipeline: Dispatcher는 nil일 수 없습니다")
	}

	maxPerRun := cfg.MaxPerRun
	if maxPerRun <= 0 {
		maxPerRun = defaultMaxPerRun
	}
	sourceTimeout := cfg.SourceTimeout
	if sourceTimeout <= 0 {
		sourceTimeout = defaultSourceTimeout
	}

	return &Orchestrator{
		sources:       sources,
		deduplicator:  d,
		rewriter:      rw,
		shortener:     sh,
		dispatcher:    dp,
		maxPerRun:     maxPerRun,
		sourceTimeout: sourceTimeout,
		now:           time.Now,
	}
}

// State 현재 실행 단계를 반환합니다.
func (o *Orchestrator) State() State {
	return State(o.state.Load())
}

// LastReport 마지막으로 완료된 실행 결과를 반환합니다. 아직 실행된 적이 없으면 nil입니다.
func (o *Orchestrator) LastReport() *Report {
	o.mu.RLock()
	defer o.mu.RUnlock()

	if o.lastReport == nil {
		return nil
	}
	r := *o.lastReport
	return &r
}

// MaxPerRun 한 번의 실행에서 발송하는 최대 후보 수입니다.
func (o *Orchestrator) MaxPerRun() int {
	return o.maxPerRun
}

// Run 한 번의 실행을 수행하고 결과를 반환합니다.
//
// 개별 소스나 발송 실패는 실행 전체를 중단시키지 않습니다.
// ctx가 취소되면 발송 루프를 멈추고, 남은 후보는 다음 실행에서 다시 고려됩니다.
func (o *Orchestrator) Run(ctx context.Context) Report {
	report := Report{StartedAt: o.now()}
	defer o.setState(Idle)

	applog.WithComponentAndFields(component, applog.Fields{
		"sources":     len(o.sources),
		"max_per_run": o.maxPerRun,
	}).Info("실행 시작")

	o.setState(Collecting)
	collected := o.collect(ctx)

	o.setState(Deduplicating)
	fresh := o.dedupe(collected)

	o.setState(Ranking)
	ranked := deal.Rank(fresh)
	if len(ranked) > o.maxPerRun {
		ranked = ranked[:o.maxPerRun]
	}
	report.Considered = len(ranked)

	o.setState(Delivering)
	o.deliver(ctx, ranked, &report)

	report.FinishedAt = o.now()

	o.mu.Lock()
	o.lastReport = &report
	o.mu.Unlock()

	applog.WithComponentAndFields(component, applog.Fields{
		"collected":  len(collected),
		"fresh":      len(fresh),
		"considered": report.Considered,
		"delivered":  report.Delivered,
		"failed":     report.Failed,
		"duration":   report.Duration().String(),
	}).Info("실행 완료")

	return report
}

func (o *Orchestrator) setState(s State) {
	o.state.Store(int32(s))
}

// collect 모든 소스를 수집합니다. 결과는 소스 설정 순서와 각 소스의 발견 순서를 유지합니다.
func (o *Orchestrator) collect(ctx context.Context) []deal.Candidate {
	results := make([][]deal.Candidate, len(o.sources))

	var g errgroup.Group
	g.SetLimit(maxConcurrentSources)
	for i, src := range o.sources {
		g.Go(func() error {
			results[i] = o.collectSource(ctx, src)
			return nil
		})
	}
	_ = g.Wait()

	var merged []deal.Candidate
	for _, r := range results {
		merged = append(merged, r...)
	}
	return merged
}

// collectSource 소스 하나를 수집하여 정규화된 후보를 최대 Limit개까지 반환합니다.
// 에러, 타임아웃, 패닉은 모두 로그로 남기고 빈 결과로 처리합니다.
func (o *Orchestrator) collectSource(ctx context.Context, src source.Source) (candidates []deal.Candidate) {
	logger := applog.WithComponentAndFields(component, applog.Fields{
		"source": src.ID(),
	})

	defer func() {
		if r := recover(); r != nil {
			logger.WithFields(applog.Fields{
				"panic": fmt.Sprint(r),
				"stack": string(debug.Stack()),
			}).Error("소스 수집 중 패닉이 발생했습니다")
			candidates = nil
		}
	}()

	ctx, cancel := context.WithTimeout(ctx, o.sourceTimeout)
	defer cancel()

	listings, err := src.Fetch(ctx)
	if err != nil {
		logger.WithField("error", err.Error()).Warn("소스 수집 실패: 이번 실행에서는 제외합니다")
		return nil
	}

	base := src.BaseURL()
	limit := src.Limit()
	for _, raw := range listings {
		if limit > 0 && len(candidates) >= limit {
			break
		}
		c, ok := deal.Normalize(raw, base)
		if !ok {
			continue
		}
		c.Source = src.ID()
		candidates = append(candidates, c)
	}

	logger.WithFields(applog.Fields{
		"listings":   len(listings),
		"candidates": len(candidates),
	}).Debug("소스 수집 완료")

	return candidates
}

// dedupe 같은 ProductURL은 처음 나온 것만 남기고, 이미 발송한 후보를 제외합니다.
func (o *Orchestrator) dedupe(cs []deal.Candidate) []deal.Candidate {
	seen := make(map[string]struct{}, len(cs))
	fresh := make([]deal.Candidate, 0, len(cs))

	for _, c := range cs {
		if _, dup := seen[c.ProductURL]; dup {
			continue
		}
		seen[c.ProductURL] = struct{}{}

		if !o.deduplicator.IsNew(c) {
			continue
		}
		fresh = append(fresh, c)
	}
	return fresh
}

func (o *Orchestrator) deliver(ctx context.Context, cs []deal.Candidate, report *Report) {
	for i, c := range cs {
		if err := ctx.Err(); err != nil {
			applog.WithComponentAndFields(component, applog.Fields{
				"remaining": len(cs) - i,
				"error":     err.Error(),
			}).Warn("실행이 취소되어 남은 후보는 다음 실행으로 넘깁니다")
			return
		}

		longURL := o.rewriter.Rewrite(c.ProductURL)
		finalURL := o.shorten(ctx, longURL)
		caption := deal.RenderCaption(c, finalURL, o.now())

		if !o.dispatcher.Dispatch(ctx, c, caption) {
			report.Failed++
			applog.WithComponentAndFields(component, applog.Fields{
				"source": c.Source,
				"title":  c.Title,
				"url":    c.ProductURL,
			}).Warn("발송 실패: 다음 실행에서 다시 시도합니다")
			continue
		}

		o.markDelivered(ctx, c)
		report.Delivered++

		applog.WithComponentAndFields(component, applog.Fields{
			"source": c.Source,
			"title":  c.Title,
			"link":   finalURL,
			"score":  deal.Score(c),
		}).Info("발송 완료")
	}
}

// markDelivered 발송이 확인된 후보는 실행이 취소된 뒤에도 이력에 저장합니다.
func (o *Orchestrator) markDelivered(ctx context.Context, c deal.Candidate) {
	markCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), markDeliveredTimeout)
	defer cancel()

	o.deduplicator.MarkDelivered(markCtx, c)
}

// shorten 단축에 실패하면 긴 URL을 그대로 사용합니다.
func (o *Orchestrator) shorten(ctx context.Context, longURL string) string {
	short, err := o.shortener.Shorten(ctx, longURL)
	if err != nil || short == "" {
		fields := applog.Fields{"url": longURL}
		if err != nil {
			fields["error"] = err.Error()
		}
		applog.WithComponentAndFields(component, fields).Warn("링크 단축 실패: 원래 링크를 사용합니다")
		return longURL
	}
	return short
}
