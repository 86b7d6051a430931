// Package telegram 텔레그램 봇 API로 상품 알림을 발송하는 Dispatcher 구현입니다.
package telegram

import (
	"context"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/darkkaiser/deal-notifier/internal/service/deal"
	"github.com/darkkaiser/deal-notifier/internal/service/dispatcher"
	applog "github.com/darkkaiser/deal-notifier/pkg/log"
	"github.com/darkkaiser/deal-notifier/pkg/strutil"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"golang.org/x/time/rate"
)

const component = "dispatcher.telegram"

const (
	// captionMaxLength 사진 캡션의 최대 길이(문자 수)입니다.
	captionMaxLength = 1024

	// messageMaxLength 텍스트 메시지의 최대 길이(문자 수)입니다.
	messageMaxLength = 4096
)

// client 텔레그램 봇 API 중 발송에 필요한 부분입니다.
type client interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// telegramDispatcher 하나의 채팅방으로 발송합니다.
//
// 이미지가 있는 후보는 사진 메시지로 먼저 보내고, 실패하면 텍스트 메시지로 대신 보냅니다.
// 모든 API 호출은 rateLimiter를 거치므로 연속된 호출 사이에 최소 requestDelay 간격이 유지됩니다.
type telegramDispatcher struct {
	chatID      int64
	client      client
	rateLimiter *rate.Limiter
}

var _ dispatcher.Dispatcher = (*telegramDispatcher)(nil)

func newDispatcher(c client, chatID int64, requestDelay time.Duration) *telegramDispatcher {
	if c == nil {
		panic("telegram: client는 nil일 수 없습니다")
	}

	limit := rate.Inf
	if requestDelay > 0 {
		limit = rate.Every(requestDelay)
	}

	return &telegramDispatcher{
		chatID:      chatID,
		client:      c,
		rateLimiter: rate.NewLimiter(limit, 1),
	}
}

func (d *telegramDispatcher) Enabled() bool {
	return true
}

func (d *telegramDispatcher) Dispatch(ctx context.Context, c deal.Candidate, caption string) bool {
	if c.HasImage() {
		err := d.sendPhoto(ctx, c.ImageURL, caption)
		if err == nil {
			return true
		}
		if ctx.Err() != nil {
			return false
		}

		applog.WithComponentAndFields(component, applog.Fields{
			"chat_id":   d.chatID,
			"title":     c.Title,
			"image_url": c.ImageURL,
			"error":     err.Error(),
		}).Warn("사진 발송 실패: 텍스트 메시지로 대신 발송합니다")
	}

	if err := d.sendMessage(ctx, caption, true); err != nil {
		applog.WithComponentAndFields(component, applog.Fields{
			"chat_id": d.chatID,
			"title":   c.Title,
			"url":     c.ProductURL,
			"error":   err.Error(),
		}).Error("발송 실패: 텔레그램 API가 메시지를 거부했습니다")

		return false
	}

	return true
}

func (d *telegramDispatcher) SendText(ctx context.Context, text string) error {
	return d.sendMessage(ctx, text, true)
}

func (d *telegramDispatcher) sendPhoto(ctx context.Context, imageURL, caption string) error {
	if err := d.rateLimiter.Wait(ctx); err != nil {
		return err
	}

	photo := tgbotapi.NewPhoto(d.chatID, tgbotapi.FileURL(imageURL))
	photo.Caption = strutil.TruncateRunes(caption, captionMaxLength)
	photo.ParseMode = tgbotapi.ModeHTML

	if _, err := d.client.Send(photo); err != nil {
		return err
	}

	applog.WithComponentAndFields(component, applog.Fields{
		"chat_id":        d.chatID,
		"caption_length": len(photo.Caption),
	}).Debug("사진 발송 성공")

	return nil
}

// sendMessage HTML 모드에서 400 응답을 받으면 태그를 제거한 일반 텍스트로 한 번 더 보냅니다.
func (d *telegramDispatcher) sendMessage(ctx context.Context, text string, useHTML bool) error {
	if err := d.rateLimiter.Wait(ctx); err != nil {
		return err
	}

	msg := tgbotapi.NewMessage(d.chatID, strutil.TruncateRunes(text, messageMaxLength))
	msg.DisableWebPagePreview = true
	if useHTML {
		msg.ParseMode = tgbotapi.ModeHTML
	}

	_, err := d.client.Send(msg)
	if err == nil {
		applog.WithComponentAndFields(component, applog.Fields{
			"chat_id":        d.chatID,
			"mode":           formatParseMode(msg.ParseMode),
			"message_length": len(msg.Text),
		}).Debug("메시지 발송 성공")

		return nil
	}

	if code, _ := parseTelegramError(err); useHTML && code == 400 {
		applog.WithComponentAndFields(component, applog.Fields{
			"chat_id": d.chatID,
			"error":   err.Error(),
		}).Warn("HTML 파싱 오류(400): 일반 텍스트 모드로 다시 발송합니다")

		return d.sendMessage(ctx, plainText(text), false)
	}

	return err
}

// plainText HTML 태그를 제거하고 엔티티를 원래 문자로 되돌립니다.
func plainText(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return html
	}
	return doc.Text()
}

func formatParseMode(mode string) string {
	if mode == tgbotapi.ModeHTML {
		return "HTML"
	}
	return "PlainText"
}

// parseTelegramError 텔레그램 API 에러에서 에러 코드와 재시도 대기 시간(초)을 꺼냅니다.
// API 에러가 아니면 0, 0을 반환합니다.
func parseTelegramError(err error) (code int, retryAfter int) {
	if apiErr, ok := err.(tgbotapi.Error); ok {
		return apiErr.Code, apiErr.ResponseParameters.RetryAfter
	}
	if apiErrPtr, ok := err.(*tgbotapi.Error); ok {
		return apiErrPtr.Code, apiErrPtr.ResponseParameters.RetryAfter
	}
	return 0, 0
}
