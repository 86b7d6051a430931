package source

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/darkkaiser/deal-notifier/internal/service/deal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const listingPage = `<html><body>
<article class="prd">
  <a class="core" href="/samsung-a15.html">
    <div class="img-c"><img data-src="https://img.example/a15.jpg" src="data:image/gif;base64,R0lG"></div>
    <div class="info">
      <h3 class="name">Samsung   A15
      </h3>
      <div class="prc">KSh 15,000</div>
      <div class="old">KSh 30,000</div>
      <div class="bdg _dsct">-50%</div>
    </div>
  </a>
</article>
<div class="sku">
  <a href="https://shop.example/tecno-spark" aria-label="Tecno Spark">
    <img src="/img/spark.jpg">
    <span class="price">KSh 9,000</span>
  </a>
</div>
<article class="prd"><h3 class="name">링크 없는 상품</h3></article>
</body></html>`

func parseDoc(t *testing.T, html string) *goquery.Document {
	t.Helper()

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func TestFirstOf(t *testing.T) {
	t.Parallel()

	card := parseDoc(t, `<div><span class="b">second</span><span class="c"></span></div>`).Find("div")

	t.Run("앞선 전략이 비어 있으면 다음 전략 사용", func(t *testing.T) {
		got := FirstOf(card, []Strategy{TextOf(".a"), TextOf(".c"), TextOf(".b")})
		assert.Equal(t, "second", got)
	})

	t.Run("모든 전략이 실패하면 빈 문자열", func(t *testing.T) {
		assert.Empty(t, FirstOf(card, []Strategy{TextOf(".x"), AttrOf("img", "src")}))
		assert.Empty(t, FirstOf(card, nil))
	})
}

func TestDefaultStrategies_Extract(t *testing.T) {
	t.Parallel()

	doc := parseDoc(t, listingPage)
	cards := doc.Find(DefaultCardSelector)
	require.Equal(t, 3, cards.Length())

	fs := DefaultStrategies()

	t.Run("Jumia 카드의 모든 필드", func(t *testing.T) {
		got := fs.Extract(cards.Eq(0))

		assert.Equal(t, deal.RawListing{
			Title:    "Samsung   A15",
			Price:    "KSh 15,000",
			OldPrice: "KSh 30,000",
			Discount: "-50%",
			ImageURL: "https://img.example/a15.jpg",
			Link:     "/samsung-a15.html",
		}, got)
	})

	t.Run("대체 전략: aria-label 제목과 src 이미지", func(t *testing.T) {
		got := fs.Extract(cards.Eq(1))

		assert.Equal(t, "Tecno Spark", got.Title)
		assert.Equal(t, "KSh 9,000", got.Price)
		assert.Empty(t, got.OldPrice)
		assert.Empty(t, got.Discount)
		assert.Equal(t, "/img/spark.jpg", got.ImageURL)
		assert.Equal(t, "https://shop.example/tecno-spark", got.Link)
	})

	t.Run("대체 전략: 카드 자신의 aria-label 제목을 먼저 사용", func(t *testing.T) {
		card := parseDoc(t, `<article class="prd" aria-label="Infinix Hot 40">
  <a href="/hot40.html" aria-label="링크 설명"><span class="prc">KSh 12,000</span></a>
</article>`).Find("article")

		got := fs.Extract(card)

		assert.Equal(t, "Infinix Hot 40", got.Title)
		assert.Equal(t, "/hot40.html", got.Link)
	})

	t.Run("링크가 없는 카드", func(t *testing.T) {
		got := fs.Extract(cards.Eq(2))

		assert.Equal(t, "링크 없는 상품", got.Title)
		assert.Empty(t, got.Link)
	})
}

func TestFieldStrategies_WithOverrides(t *testing.T) {
	t.Parallel()

	card := parseDoc(t, `<li class="item">
		<span class="t">Kettle</span><b class="h3name">ignored</b>
		<em class="now">KSh 1,200</em>
		<img class="pic" src="/k.jpg">
		<a class="go" href="/kettle">buy</a><a href="/other">x</a>
	</li>`).Find("li")

	fs := DefaultStrategies().withOverrides(HTMLOptions{
		TitleSelectors: []string{".missing", ".t"},
		PriceSelectors: []string{".now"},
		ImageSelectors: []string{"img.pic"},
		LinkSelectors:  []string{"a.go"},
	})
	got := fs.Extract(card)

	assert.Equal(t, "Kettle", got.Title)
	assert.Equal(t, "KSh 1,200", got.Price)
	assert.Equal(t, "/k.jpg", got.ImageURL)
	assert.Equal(t, "/kettle", got.Link)
}
