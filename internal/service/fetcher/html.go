package fetcher

import (
	"context"

	"github.com/PuerkitoBio/goquery"
	apperrors "github.com/darkkaiser/deal-notifier/internal/pkg/errors"
	"golang.org/x/net/html/charset"
)

// FetchHTMLDocument URL의 HTML 문서를 가져와 goquery.Document로 파싱합니다.
// Content-Type 헤더나 meta 태그에 선언된 인코딩(예: EUC-KR, ISO-8859-1)은 UTF-8로 변환합니다.
// 반환된 문서의 Url에는 리다이렉트를 따라간 최종 URL이 설정됩니다.
func FetchHTMLDocument(ctx context.Context, f Fetcher, url string) (*goquery.Document, error) {
	resp, err := Get(ctx, f, url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if err := CheckResponseStatus(resp); err != nil {
		return nil, err
	}

	utf8Reader, err := charset.NewReader(resp.Body, resp.Header.Get("Content-Type"))
	if err != nil {
		return nil, apperrors.Wrapf(err, apperrors.ParsingFailed, "페이지(%s)의 인코딩 변환에 실패했습니다", url)
	}

	doc, err := goquery.NewDocumentFromReader(utf8Reader)
	if err != nil {
		return nil, apperrors.Wrapf(err, apperrors.ParsingFailed, "페이지(%s)의 HTML 파싱에 실패했습니다", url)
	}

	if resp.Request != nil {
		doc.Url = resp.Request.URL
	}

	return doc, nil
}
