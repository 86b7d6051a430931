// Package strutil 메시지 작성과 로깅에 쓰이는 문자열 유틸리티를 제공합니다.
package strutil

import (
	"strings"
	"unicode/utf8"
)

// htmlEscaper 텔레그램 HTML 파싱 모드에서 의미를 갖는 문자만 치환합니다.
var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

// NormalizeSpaces 앞뒤 공백을 제거하고 연속된 공백(개행 포함)을 하나로 줄입니다.
// 예: "  Samsung \n  A15  " -> "Samsung A15"
func NormalizeSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// EscapeHTML 텔레그램 HTML 메시지에 안전하게 넣을 수 있도록 &, <, >, " 를 엔티티로 바꿉니다.
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

// Mask 토큰 같은 민감한 값을 로그에 남길 때 일부만 노출합니다.
//   - 3자 이하: 전체 마스킹
//   - 12자 이하: 앞 4자만 노출
//   - 그 외: 앞 4자와 뒤 4자 노출
func Mask(s string) string {
	switch {
	case s == "":
		return ""
	case len(s) <= 3:
		return "***"
	case len(s) <= 12:
		return s[:4] + "***"
	default:
		return s[:4] + "***" + s[len(s)-4:]
	}
}

// TruncateRunes 문자열을 최대 limit개의 문자(rune)로 자릅니다.
// 잘린 경우 마지막 문자를 말줄임표(…)로 바꿔 전체 길이가 limit을 넘지 않게 합니다.
func TruncateRunes(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= limit {
		return s
	}

	runes := []rune(s)
	return string(runes[:limit-1]) + "…"
}
