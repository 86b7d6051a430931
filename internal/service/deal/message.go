package deal

import (
	"strings"
	"time"

	"github.com/darkkaiser/deal-notifier/pkg/strutil"
)

const postedAtLayout = "2006-01-02 15:04:05Z"

// RenderCaption 텔레그램 HTML 모드로 발송할 알림 메시지를 만듭니다.
//
//	🔥 <b>제목</b>
//	💰 Price: <b>가격</b> <s>정가</s>
//	💥 Discount: 할인 표시
//	🛒 BUY NOW ➜ 링크
//	<i>Posted: 2006-01-02 15:04:05Z</i>
//
// 가격과 할인 줄은 값이 있을 때만 포함하며, 게시 시각은 UTC로 표기합니다.
func RenderCaption(c Candidate, link string, postedAt time.Time) string {
	var sb strings.Builder

	sb.WriteString("🔥 <b>" + strutil.EscapeHTML(c.Title) + "</b>\n")

	if c.DisplayPrice != "" {
		sb.WriteString("💰 Price: <b>" + strutil.EscapeHTML(c.DisplayPrice) + "</b>")
		if c.ReferencePrice != "" && c.ReferencePrice != c.DisplayPrice {
			sb.WriteString(" <s>" + strutil.EscapeHTML(c.ReferencePrice) + "</s>")
		}
		sb.WriteString("\n")
	}

	if c.DiscountLabel != "" {
		sb.WriteString("💥 Discount: " + strutil.EscapeHTML(c.DiscountLabel) + "\n")
	}

	sb.WriteString("🛒 BUY NOW ➜ " + strutil.EscapeHTML(link) + "\n")
	sb.WriteString("<i>Posted: " + postedAt.UTC().Format(postedAtLayout) + "</i>")

	return sb.String()
}
