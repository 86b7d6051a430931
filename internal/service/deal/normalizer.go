package deal

import (
	"net/url"

	"github.com/darkkaiser/deal-notifier/pkg/strutil"
	"golang.org/x/text/unicode/norm"
)

// Normalize 소스에서 추출한 RawListing을 Candidate로 변환합니다.
//
// 텍스트 필드는 NFC 정규화 후 공백을 하나로 합칩니다. 상대 경로 링크와 이미지 주소는 base를 기준으로
// 절대 경로로 바꾸며, 스킴이 생략된 "//host/path" 형태는 base의 스킴을 따릅니다.
//
// 제목이 비어 있거나 링크를 http(s) 절대 경로로 만들 수 없으면 false를 반환합니다.
// 이미지 주소를 해석할 수 없는 경우에는 후보를 버리지 않고 이미지만 비웁니다.
func Normalize(raw RawListing, base *url.URL) (Candidate, bool) {
	title := cleanText(raw.Title)
	if title == "" {
		return Candidate{}, false
	}

	productURL, ok := resolveHTTPURL(cleanText(raw.Link), base)
	if !ok {
		return Candidate{}, false
	}

	imageURL, ok := resolveHTTPURL(cleanText(raw.ImageURL), base)
	if !ok {
		imageURL = ""
	}

	return Candidate{
		Title:          title,
		DisplayPrice:   cleanText(raw.Price),
		ReferencePrice: cleanText(raw.OldPrice),
		DiscountLabel:  cleanText(raw.Discount),
		ImageURL:       imageURL,
		ProductURL:     productURL,
	}, true
}

func cleanText(s string) string {
	return strutil.NormalizeSpaces(norm.NFC.String(s))
}

func resolveHTTPURL(ref string, base *url.URL) (string, bool) {
	if ref == "" {
		return "", false
	}

	u, err := url.Parse(ref)
	if err != nil {
		return "", false
	}
	if base != nil {
		u = base.ResolveReference(u)
	}

	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", false
	}
	return u.String(), true
}
