package source

import (
	"context"
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/darkkaiser/deal-notifier/internal/service/deal"
	"github.com/darkkaiser/deal-notifier/internal/service/fetcher"
	"github.com/mmcdole/gofeed"
)

const (
	defaultDiscountPattern = `-?\d+(?:\.\d+)?\s?%`
	defaultPricePattern    = `(?i)(?:KSh|KES)\s?[\d,]+(?:\.\d+)?`
)

// RSSOptions rss 소스의 options 항목입니다.
type RSSOptions struct {
	// DiscountPattern 제목과 설명에서 할인 표시를 찾는 정규식입니다.
	DiscountPattern string `json:"discount_pattern"`

	// PricePattern 제목과 설명에서 가격을 찾는 정규식입니다. 첫 번째 일치가 판매가, 두 번째가 정가입니다.
	PricePattern string `json:"price_pattern"`
}

// RSSSource RSS/Atom 피드의 항목을 상품 목록으로 변환합니다.
type RSSSource struct {
	base

	url        string
	fetcher    fetcher.Fetcher
	discountRe *regexp.Regexp
	priceRe    *regexp.Regexp
}

var _ Source = (*RSSSource)(nil)

// NewRSSSource 패턴이 비어 있으면 기본 패턴을 사용합니다.
func NewRSSSource(id string, feedURL *url.URL, limit int, f fetcher.Fetcher, opts RSSOptions) (*RSSSource, error) {
	if f == nil {
		panic("source: Fetcher는 nil일 수 없습니다")
	}

	if opts.DiscountPattern == "" {
		opts.DiscountPattern = defaultDiscountPattern
	}
	if opts.PricePattern == "" {
		opts.PricePattern = defaultPricePattern
	}

	discountRe, err := regexp.Compile(opts.DiscountPattern)
	if err != nil {
		return nil, NewErrInvalidOptions(err, id, "discount_pattern")
	}
	priceRe, err := regexp.Compile(opts.PricePattern)
	if err != nil {
		return nil, NewErrInvalidOptions(err, id, "price_pattern")
	}

	return &RSSSource{
		base:       base{id: id, baseURL: feedURL, limit: limit},
		url:        feedURL.String(),
		fetcher:    f,
		discountRe: discountRe,
		priceRe:    priceRe,
	}, nil
}

func (s *RSSSource) Fetch(ctx context.Context) ([]deal.RawListing, error) {
	resp, err := fetcher.Get(ctx, s.fetcher, s.url)
	if err != nil {
		return nil, NewErrFetchFailed(err, s.id)
	}
	defer resp.Body.Close()

	if err := fetcher.CheckResponseStatus(resp); err != nil {
		return nil, NewErrFetchFailed(err, s.id)
	}

	feed, err := gofeed.NewParser().Parse(resp.Body)
	if err != nil {
		return nil, NewErrFeedParseFailed(err, s.id)
	}

	if feed.Link != "" {
		if u, err := url.Parse(feed.Link); err == nil && u.IsAbs() {
			s.setBaseURL(u)
		}
	}

	listings := make([]deal.RawListing, 0, len(feed.Items))
	for _, item := range feed.Items {
		listings = append(listings, s.toListing(item))
	}
	return listings, nil
}

func (s *RSSSource) toListing(item *gofeed.Item) deal.RawListing {
	descText, descImage := parseDescription(item.Description)
	haystack := item.Title + " " + descText

	listing := deal.RawListing{
		Title:    item.Title,
		Discount: s.discountRe.FindString(haystack),
		ImageURL: itemImage(item, descImage),
		Link:     item.Link,
	}

	if prices := s.priceRe.FindAllString(haystack, 2); len(prices) > 0 {
		listing.Price = prices[0]
		if len(prices) > 1 {
			listing.OldPrice = prices[1]
		}
	}

	return listing
}

// parseDescription 항목 설명(HTML 조각)에서 텍스트와 첫 이미지 주소를 꺼냅니다.
func parseDescription(description string) (text, image string) {
	if description == "" {
		return "", ""
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(description))
	if err != nil {
		return description, ""
	}

	image, _ = doc.Find("img[src]").First().Attr("src")
	return doc.Text(), image
}

// itemImage 피드 항목 이미지, 이미지 첨부 파일, 설명 안의 이미지 순으로 찾습니다.
func itemImage(item *gofeed.Item, fromDescription string) string {
	if item.Image != nil && item.Image.URL != "" {
		return item.Image.URL
	}
	for _, enc := range item.Enclosures {
		if enc != nil && strings.HasPrefix(enc.Type, "image/") && enc.URL != "" {
			return enc.URL
		}
	}
	return fromDescription
}
