package deal

import (
	"crypto/sha256"
	"encoding/hex"
)

// Fingerprint 상품 URL, 표시 가격, 제목을 "|"로 이어 붙인 값의 SHA-256 16진수 문자열을 반환합니다.
// 세 값이 같으면 같은 상품 제안으로 간주하며, 가격이 바뀌면 새 제안이 됩니다.
func Fingerprint(c Candidate) string {
	sum := sha256.Sum256([]byte(c.ProductURL + "|" + c.DisplayPrice + "|" + c.Title))
	return hex.EncodeToString(sum[:])
}
