package deal

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParseURL(t *testing.T, raw string) *url.URL {
	t.Helper()

	u, err := url.Parse(raw)
	require.NoError(t, err)
	return u
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	base := mustParseURL(t, "https://www.jumia.co.ke/flash-sales/")

	t.Run("성공: 공백 정리와 상대 경로 해석", func(t *testing.T) {
		c, ok := Normalize(RawListing{
			Title:    "  Samsung\n\tGalaxy   A15  ",
			Price:    " KSh 15,999 ",
			OldPrice: "KSh 19,999",
			Discount: " -20% ",
			ImageURL: "//ke.jumia.is/a15.jpg",
			Link:     "/samsung-galaxy-a15.html",
		}, base)

		require.True(t, ok)
		assert.Equal(t, "Samsung Galaxy A15", c.Title)
		assert.Equal(t, "KSh 15,999", c.DisplayPrice)
		assert.Equal(t, "KSh 19,999", c.ReferencePrice)
		assert.Equal(t, "-20%", c.DiscountLabel)
		assert.Equal(t, "https://ke.jumia.is/a15.jpg", c.ImageURL)
		assert.Equal(t, "https://www.jumia.co.ke/samsung-galaxy-a15.html", c.ProductURL)
	})

	t.Run("성공: 절대 경로 링크는 그대로", func(t *testing.T) {
		c, ok := Normalize(RawListing{Title: "TV", Link: "http://shop.example.com/tv?id=1"}, base)

		require.True(t, ok)
		assert.Equal(t, "http://shop.example.com/tv?id=1", c.ProductURL)
		assert.Empty(t, c.ImageURL)
	})

	t.Run("성공: NFC 정규화", func(t *testing.T) {
		// "e" + U+0301 (결합 악센트)
		c, ok := Normalize(RawListing{Title: "Cafe\u0301", Link: "/x"}, base)

		require.True(t, ok)
		assert.Equal(t, "Caf\u00e9", c.Title)
	})

	t.Run("성공: 해석할 수 없는 이미지는 비움", func(t *testing.T) {
		c, ok := Normalize(RawListing{Title: "Phone", Link: "/p", ImageURL: "data:image/png;base64,AAAA"}, base)

		require.True(t, ok)
		assert.Empty(t, c.ImageURL)
	})

	t.Run("성공: base 없이 절대 경로", func(t *testing.T) {
		c, ok := Normalize(RawListing{Title: "Phone", Link: "https://x/p1"}, nil)

		require.True(t, ok)
		assert.Equal(t, "https://x/p1", c.ProductURL)
	})

	tests := []struct {
		name string
		raw  RawListing
		base *url.URL
	}{
		{"실패: 제목 없음", RawListing{Title: "   ", Link: "/p"}, base},
		{"실패: 링크 없음", RawListing{Title: "Phone"}, base},
		{"실패: http(s)가 아닌 링크", RawListing{Title: "Phone", Link: "javascript:void(0)"}, base},
		{"실패: 파싱 불가 링크", RawListing{Title: "Phone", Link: "http://[::1"}, base},
		{"실패: base 없는 상대 경로", RawListing{Title: "Phone", Link: "/p"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := Normalize(tt.raw, tt.base)
			assert.False(t, ok)
		})
	}
}
