// Package validation 설정 검증에 쓰이는 형식 검사 함수들을 제공합니다.
package validation

import (
	"fmt"
	"net"
	"net/url"
	"regexp"
	"strconv"
	"strings"
)

// hostnameRegex RFC 1123 호스트명 (레이블 63자 이하, 하이픈으로 시작하거나 끝나지 않음)
var hostnameRegex = regexp.MustCompile(`^([a-zA-Z0-9]([a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)(\.[a-zA-Z0-9]([a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$`)

// ValidateCORSOrigin CORS Origin 문자열이 "Scheme://Host[:Port]" 형식인지 검사합니다.
// "*"는 모든 출처 허용으로 간주하여 유효합니다. 경로, 쿼리, 프래그먼트, 사용자 정보는 허용하지 않습니다.
func ValidateCORSOrigin(origin string) error {
	origin = strings.TrimSpace(origin)
	if origin == "*" {
		return nil
	}
	if origin == "" {
		return fmt.Errorf("CORS Origin은 비어있을 수 없습니다")
	}
	if strings.HasSuffix(origin, "/") {
		return fmt.Errorf("CORS Origin은 '/'로 끝날 수 없습니다 (input=%q)", origin)
	}

	u, err := url.Parse(origin)
	if err != nil {
		return fmt.Errorf("CORS Origin 파싱 실패 (input=%q): %w", origin, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("CORS Origin 스키마는 http 또는 https만 허용됩니다 (input=%q)", origin)
	}
	if u.Path != "" || u.RawQuery != "" || u.Fragment != "" || u.User != nil {
		return fmt.Errorf("CORS Origin은 Scheme://Host[:Port] 형식이어야 합니다 (input=%q)", origin)
	}

	if p := u.Port(); p != "" {
		port, err := strconv.Atoi(p)
		if err != nil {
			return fmt.Errorf("CORS Origin 포트가 숫자가 아닙니다 (input=%q)", origin)
		}
		if err := ValidatePort(port); err != nil {
			return fmt.Errorf("CORS Origin 포트 오류 (input=%q): %w", origin, err)
		}
	}

	return ValidateHostname(u.Hostname())
}

// ValidatePort 포트 번호가 1-65535 범위인지 검사합니다.
func ValidatePort(port int) error {
	if port < 1 || port > 65535 {
		return fmt.Errorf("유효한 포트 범위(1-65535)가 아닙니다 (port=%d)", port)
	}
	return nil
}

// ValidateHostname localhost, IP 주소, RFC 1123 호스트명을 허용합니다.
func ValidateHostname(host string) error {
	if host == "" {
		return fmt.Errorf("호스트가 비어 있습니다")
	}
	if host == "localhost" || net.ParseIP(host) != nil {
		return nil
	}
	if len(host) > 253 || !hostnameRegex.MatchString(host) {
		return fmt.Errorf("유효하지 않은 호스트명입니다 (host=%q)", host)
	}
	return nil
}
