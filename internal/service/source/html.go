package source

import (
	"context"
	"net/url"

	"github.com/PuerkitoBio/goquery"
	"github.com/darkkaiser/deal-notifier/internal/service/deal"
	"github.com/darkkaiser/deal-notifier/internal/service/fetcher"
	applog "github.com/darkkaiser/deal-notifier/pkg/log"
)

// HTMLOptions html 소스의 options 항목입니다. 선택자 목록을 지정하면 해당 필드의 기본 전략을 대체합니다.
type HTMLOptions struct {
	CardSelector      string   `json:"card_selector"`
	TitleSelectors    []string `json:"title_selectors"`
	PriceSelectors    []string `json:"price_selectors"`
	OldPriceSelectors []string `json:"old_price_selectors"`
	DiscountSelectors []string `json:"discount_selectors"`
	ImageSelectors    []string `json:"image_selectors"`
	LinkSelectors     []string `json:"link_selectors"`
}

// HTMLSource 상품 목록 HTML 페이지에서 상품 카드를 추출합니다.
type HTMLSource struct {
	base

	url          string
	fetcher      fetcher.Fetcher
	cardSelector string
	strategies   FieldStrategies
}

var _ Source = (*HTMLSource)(nil)

// NewHTMLSource 기본 카드 선택자와 추출 전략을 사용하는 HTML 소스를 생성합니다.
func NewHTMLSource(id string, pageURL *url.URL, limit int, f fetcher.Fetcher) *HTMLSource {
	return newHTMLSource(id, pageURL, limit, f, HTMLOptions{})
}

func newHTMLSource(id string, pageURL *url.URL, limit int, f fetcher.Fetcher, opts HTMLOptions) *HTMLSource {
	if f == nil {
		panic("source: Fetcher는 nil일 수 없습니다")
	}

	cardSelector := opts.CardSelector
	if cardSelector == "" {
		cardSelector = DefaultCardSelector
	}

	return &HTMLSource{
		base:         base{id: id, baseURL: pageURL, limit: limit},
		url:          pageURL.String(),
		fetcher:      f,
		cardSelector: cardSelector,
		strategies:   DefaultStrategies().withOverrides(opts),
	}
}

func (s *HTMLSource) Fetch(ctx context.Context) ([]deal.RawListing, error) {
	doc, err := fetcher.FetchHTMLDocument(ctx, s.fetcher, s.url)
	if err != nil {
		return nil, NewErrFetchFailed(err, s.id)
	}

	// 리다이렉트되었다면 최종 페이지를 기준으로 상대 경로를 해석해야 한다.
	if doc.Url != nil {
		s.setBaseURL(doc.Url)
	}

	return s.extract(doc), nil
}

func (s *HTMLSource) extract(doc *goquery.Document) []deal.RawListing {
	cards := doc.Find(s.cardSelector)

	listings := make([]deal.RawListing, 0, cards.Length())
	cards.Each(func(_ int, card *goquery.Selection) {
		listings = append(listings, s.strategies.Extract(card))
	})

	if len(listings) == 0 {
		applog.WithComponentAndFields(component, applog.Fields{
			"source":        s.id,
			"url":           s.url,
			"card_selector": s.cardSelector,
		}).Warn("상품 카드를 찾지 못했습니다: 페이지 구조가 변경되었을 수 있습니다")
	}

	return listings
}
