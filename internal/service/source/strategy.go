package source

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/darkkaiser/deal-notifier/internal/service/deal"
)

// Strategy 상품 카드 하나에서 필드 값 하나를 추출합니다. 찾지 못하면 빈 문자열을 반환합니다.
type Strategy func(card *goquery.Selection) string

// TextOf selector에 해당하는 첫 요소의 텍스트를 추출합니다.
func TextOf(selector string) Strategy {
	return func(card *goquery.Selection) string {
		return strings.TrimSpace(card.Find(selector).First().Text())
	}
}

// AttrOf selector에 해당하는 첫 요소의 속성 값을 추출합니다.
func AttrOf(selector, attr string) Strategy {
	return func(card *goquery.Selection) string {
		v, _ := card.Find(selector).First().Attr(attr)
		return strings.TrimSpace(v)
	}
}

// SelfAttr 카드 요소 자신의 속성 값을 추출합니다. 카드가 <a> 태그인 경우에 사용합니다.
func SelfAttr(attr string) Strategy {
	return func(card *goquery.Selection) string {
		v, _ := card.Attr(attr)
		return strings.TrimSpace(v)
	}
}

// FirstOf 전략을 순서대로 적용하여 처음으로 비어 있지 않은 결과를 반환합니다.
func FirstOf(card *goquery.Selection, strategies []Strategy) string {
	for _, s := range strategies {
		if v := s(card); v != "" {
			return v
		}
	}
	return ""
}

// FieldStrategies 필드별 추출 전략 목록입니다. 목록의 앞쪽 전략이 우선합니다.
type FieldStrategies struct {
	Title    []Strategy
	Price    []Strategy
	OldPrice []Strategy
	Discount []Strategy
	Image    []Strategy
	Link     []Strategy
}

// Extract 카드 하나를 RawListing으로 변환합니다.
func (fs FieldStrategies) Extract(card *goquery.Selection) deal.RawListing {
	return deal.RawListing{
		Title:    FirstOf(card, fs.Title),
		Price:    FirstOf(card, fs.Price),
		OldPrice: FirstOf(card, fs.OldPrice),
		Discount: FirstOf(card, fs.Discount),
		ImageURL: FirstOf(card, fs.Image),
		Link:     FirstOf(card, fs.Link),
	}
}

// DefaultCardSelector Jumia 상품 목록 페이지의 상품 카드 선택자입니다.
const DefaultCardSelector = "article.prd, div.sku, div.c-prd"

// DefaultStrategies Jumia 상품 카드 마크업에 맞춘 기본 추출 전략입니다.
func DefaultStrategies() FieldStrategies {
	return FieldStrategies{
		Title: []Strategy{
			TextOf("h3.name"),
			TextOf("h3.title"),
			TextOf("h2.title"),
			TextOf("a.name"),
			SelfAttr("aria-label"),
			AttrOf("a", "aria-label"),
		},
		Price: []Strategy{
			TextOf(".prc"),
			TextOf("span.price"),
			TextOf(".price"),
			TextOf(".prc-w"),
			TextOf(".old"),
		},
		OldPrice: []Strategy{
			TextOf(".old"),
			TextOf(".old-prc"),
			TextOf("span.old"),
		},
		Discount: []Strategy{
			TextOf(".bdg._dsct"),
			TextOf(".discount"),
			TextOf(".prdPopUp .discount"),
		},
		Image: []Strategy{
			AttrOf("img[data-src]", "data-src"),
			AttrOf("img[src]", "src"),
		},
		Link: []Strategy{
			AttrOf("a[href]", "href"),
			SelfAttr("href"),
		},
	}
}

// withOverrides 선택자가 지정된 필드만 해당 선택자 목록으로 교체한 전략을 반환합니다.
func (fs FieldStrategies) withOverrides(o HTMLOptions) FieldStrategies {
	if len(o.TitleSelectors) > 0 {
		fs.Title = textStrategies(o.TitleSelectors)
	}
	if len(o.PriceSelectors) > 0 {
		fs.Price = textStrategies(o.PriceSelectors)
	}
	if len(o.OldPriceSelectors) > 0 {
		fs.OldPrice = textStrategies(o.OldPriceSelectors)
	}
	if len(o.DiscountSelectors) > 0 {
		fs.Discount = textStrategies(o.DiscountSelectors)
	}
	if len(o.ImageSelectors) > 0 {
		fs.Image = make([]Strategy, 0, len(o.ImageSelectors)*2)
		for _, sel := range o.ImageSelectors {
			fs.Image = append(fs.Image, AttrOf(sel, "data-src"), AttrOf(sel, "src"))
		}
	}
	if len(o.LinkSelectors) > 0 {
		fs.Link = make([]Strategy, 0, len(o.LinkSelectors))
		for _, sel := range o.LinkSelectors {
			fs.Link = append(fs.Link, AttrOf(sel, "href"))
		}
	}
	return fs
}

func textStrategies(selectors []string) []Strategy {
	strategies := make([]Strategy, 0, len(selectors))
	for _, sel := range selectors {
		strategies = append(strategies, TextOf(sel))
	}
	return strategies
}
