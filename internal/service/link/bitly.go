package link

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/darkkaiser/deal-notifier/internal/service/fetcher"
	"github.com/tidwall/gjson"
)

const (
	bitlyShortenPath = "/v4/shorten"

	// maxErrorBodyBytes 실패 응답에서 에러 메시지를 찾기 위해 읽는 최대 크기입니다.
	maxErrorBodyBytes = 4 * 1024
)

// BitlyShortener Bitly v4 API로 단축 URL을 생성합니다.
type BitlyShortener struct {
	fetcher  fetcher.Fetcher
	endpoint string
	token    string
}

var _ Shortener = (*BitlyShortener)(nil)

// NewBitlyShortener endpoint는 "https://api-ssl.bitly.com" 형태의 API 기본 주소입니다.
func NewBitlyShortener(f fetcher.Fetcher, endpoint, token string) *BitlyShortener {
	if f == nil {
		panic("link: Fetcher는 nil일 수 없습니다")
	}
	return &BitlyShortener{
		fetcher:  f,
		endpoint: strings.TrimRight(endpoint, "/"),
		token:    token,
	}
}

// Shorten 재시도 없이 한 번만 요청합니다.
// 200 또는 201 응답에 비어 있지 않은 link 필드가 있을 때만 성공으로 봅니다.
func (s *BitlyShortener) Shorten(ctx context.Context, longURL string) (string, error) {
	body, err := json.Marshal(map[string]string{"long_url": longURL})
	if err != nil {
		return "", NewErrShortenFailed(err, longURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint+bitlyShortenPath, bytes.NewReader(body))
	if err != nil {
		return "", NewErrShortenFailed(err, longURL)
	}
	req.Header.Set("Authorization", "Bearer "+s.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.fetcher.Do(req)
	if err != nil {
		if resp != nil {
			_ = resp.Body.Close()
		}
		return "", NewErrShortenFailed(err, longURL)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		return "", NewErrUnexpectedStatus(resp.StatusCode, gjson.GetBytes(data, "message").String())
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", NewErrShortenFailed(err, longURL)
	}

	link := gjson.GetBytes(data, "link").String()
	if link == "" {
		return "", ErrMissingLink
	}

	return link, nil
}
