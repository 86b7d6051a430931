package source

import (
	"net/url"

	"github.com/darkkaiser/deal-notifier/internal/config"
	"github.com/darkkaiser/deal-notifier/internal/service/fetcher"
	applog "github.com/darkkaiser/deal-notifier/pkg/log"
	"github.com/darkkaiser/deal-notifier/pkg/maputil"
	"github.com/iancoleman/strcase"
)

// New 소스 설정 하나로 Source를 생성합니다. options는 종류별 옵션 구조체로 디코딩되며, 알 수 없는 키는 에러입니다.
func New(cfg config.SourceConfig, f fetcher.Fetcher) (Source, error) {
	id := strcase.ToKebab(cfg.ID)

	pageURL, err := url.Parse(cfg.URL)
	if err != nil || !pageURL.IsAbs() {
		return nil, NewErrInvalidURL(err, id, cfg.URL)
	}

	switch cfg.Kind {
	case config.SourceKindHTML:
		opts, err := maputil.Decode[HTMLOptions](cfg.Options, maputil.WithErrorUnused(true))
		if err != nil {
			return nil, NewErrInvalidOptions(err, id, "options")
		}
		return newHTMLSource(id, pageURL, cfg.Limit, f, *opts), nil

	case config.SourceKindRSS:
		opts, err := maputil.Decode[RSSOptions](cfg.Options, maputil.WithErrorUnused(true))
		if err != nil {
			return nil, NewErrInvalidOptions(err, id, "options")
		}
		return NewRSSSource(id, pageURL, cfg.Limit, f, *opts)

	default:
		return nil, NewErrUnsupportedKind(id, cfg.Kind)
	}
}

// NewAll 설정된 모든 소스를 생성합니다. 하나라도 실패하면 에러를 반환합니다.
func NewAll(cfgs []config.SourceConfig, f fetcher.Fetcher) ([]Source, error) {
	sources := make([]Source, 0, len(cfgs))
	seen := make(map[string]struct{}, len(cfgs))
	for _, cfg := range cfgs {
		s, err := New(cfg, f)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[s.ID()]; dup {
			return nil, NewErrDuplicateID(s.ID())
		}
		seen[s.ID()] = struct{}{}
		sources = append(sources, s)

		applog.WithComponentAndFields(component, applog.Fields{
			"source": s.ID(),
			"kind":   cfg.Kind,
			"url":    cfg.URL,
			"limit":  cfg.Limit,
		}).Debug("소스 등록")
	}
	return sources, nil
}
