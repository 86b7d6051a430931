// Package link 상품 링크에 제휴 파라미터를 붙이고 단축 URL로 변환합니다.
package link

import (
	"net/url"
	"strings"
)

const component = "link"

// Rewriter 상품 URL에 제휴 파라미터(param=id)를 설정합니다.
type Rewriter struct {
	param string
	id    string
}

// NewRewriter id가 비어 있으면 Rewrite는 입력을 그대로 반환합니다.
func NewRewriter(param, id string) *Rewriter {
	if param == "" {
		panic("link: 제휴 파라미터 이름은 비어 있을 수 없습니다")
	}
	return &Rewriter{param: param, id: id}
}

// Rewrite 제휴 파라미터를 설정한 URL을 반환합니다.
//
// 다른 쿼리 파라미터는 원문 그대로, 같은 순서로 유지합니다. 같은 이름의 파라미터는 제거한 뒤
// 끝에 다시 붙이므로 여러 번 적용해도 결과가 같습니다.
// 해석할 수 없거나 스킴/호스트가 없는 URL은 변경하지 않습니다.
func (r *Rewriter) Rewrite(productURL string) string {
	if r.id == "" {
		return productURL
	}

	u, err := url.Parse(productURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return productURL
	}

	u.RawQuery = r.setParam(u.RawQuery)

	return u.String()
}

// setParam 원본 쿼리 문자열을 디코딩하지 않고 제휴 파라미터 쌍만 교체합니다.
// url.ParseQuery는 ';'나 잘못된 '%' 이스케이프가 포함된 쌍을 버리므로 사용하지 않습니다.
func (r *Rewriter) setParam(rawQuery string) string {
	pairs := make([]string, 0, strings.Count(rawQuery, "&")+2)
	for _, pair := range strings.Split(rawQuery, "&") {
		if pair == "" || r.isParamKey(pair) {
			continue
		}
		pairs = append(pairs, pair)
	}
	pairs = append(pairs, url.QueryEscape(r.param)+"="+url.QueryEscape(r.id))

	return strings.Join(pairs, "&")
}

func (r *Rewriter) isParamKey(pair string) bool {
	key, _, _ := strings.Cut(pair, "=")
	if key == r.param {
		return true
	}
	unescaped, err := url.QueryUnescape(key)
	return err == nil && unescaped == r.param
}
