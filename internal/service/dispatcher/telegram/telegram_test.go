package telegram

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/darkkaiser/deal-notifier/internal/service/deal"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testChatID int64 = -1001234

type mockClient struct {
	mock.Mock
}

var _ client = (*mockClient)(nil)

func (m *mockClient) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	args := m.Called(c)
	return tgbotapi.Message{}, args.Error(1)
}

func isPhoto(c tgbotapi.Chattable) bool {
	_, ok := c.(tgbotapi.PhotoConfig)
	return ok
}

func isMessage(c tgbotapi.Chattable) bool {
	_, ok := c.(tgbotapi.MessageConfig)
	return ok
}

func htmlMessage(c tgbotapi.Chattable) bool {
	msg, ok := c.(tgbotapi.MessageConfig)
	return ok && msg.ParseMode == tgbotapi.ModeHTML
}

func plainMessage(c tgbotapi.Chattable) bool {
	msg, ok := c.(tgbotapi.MessageConfig)
	return ok && msg.ParseMode == ""
}

var (
	withImage    = deal.Candidate{Title: "TV", ProductURL: "https://x/p1", ImageURL: "https://img/p1.jpg"}
	withoutImage = deal.Candidate{Title: "Radio", ProductURL: "https://x/p2"}
)

const caption = "🔥 <b>TV &amp; Sound</b>\n🛒 BUY NOW ➜ https://bit.ly/x"

// =============================================================================
// Dispatch
// =============================================================================

func TestDispatch(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("성공: 이미지가 있으면 사진으로 발송", func(t *testing.T) {
		c := &mockClient{}
		c.On("Send", mock.MatchedBy(func(ch tgbotapi.Chattable) bool {
			p, ok := ch.(tgbotapi.PhotoConfig)
			return ok && p.ChatID == testChatID && p.Caption == caption && p.ParseMode == tgbotapi.ModeHTML
		})).Return(tgbotapi.Message{}, nil).Once()

		d := newDispatcher(c, testChatID, 0)

		assert.True(t, d.Dispatch(ctx, withImage, caption))
		c.AssertExpectations(t)
		c.AssertNotCalled(t, "Send", mock.MatchedBy(isMessage))
	})

	t.Run("성공: 사진 발송 실패 시 텍스트로 대체", func(t *testing.T) {
		c := &mockClient{}
		c.On("Send", mock.MatchedBy(isPhoto)).Return(tgbotapi.Message{}, &tgbotapi.Error{Code: 400, Message: "wrong file identifier"}).Once()
		c.On("Send", mock.MatchedBy(func(ch tgbotapi.Chattable) bool {
			msg, ok := ch.(tgbotapi.MessageConfig)
			return ok && msg.Text == caption && msg.DisableWebPagePreview
		})).Return(tgbotapi.Message{}, nil).Once()

		d := newDispatcher(c, testChatID, 0)

		assert.True(t, d.Dispatch(ctx, withImage, caption))
		c.AssertExpectations(t)
	})

	t.Run("성공: 이미지가 없으면 텍스트만 발송", func(t *testing.T) {
		c := &mockClient{}
		c.On("Send", mock.MatchedBy(htmlMessage)).Return(tgbotapi.Message{}, nil).Once()

		d := newDispatcher(c, testChatID, 0)

		assert.True(t, d.Dispatch(ctx, withoutImage, caption))
		c.AssertExpectations(t)
		c.AssertNotCalled(t, "Send", mock.MatchedBy(isPhoto))
	})

	t.Run("성공: HTML 파싱 오류는 일반 텍스트로 재발송", func(t *testing.T) {
		c := &mockClient{}
		c.On("Send", mock.MatchedBy(htmlMessage)).Return(tgbotapi.Message{}, &tgbotapi.Error{Code: 400, Message: "can't parse entities"}).Once()
		c.On("Send", mock.MatchedBy(func(ch tgbotapi.Chattable) bool {
			msg, ok := ch.(tgbotapi.MessageConfig)
			return ok && msg.ParseMode == "" && msg.Text == "🔥 TV & Sound\n🛒 BUY NOW ➜ https://bit.ly/x"
		})).Return(tgbotapi.Message{}, nil).Once()

		d := newDispatcher(c, testChatID, 0)

		assert.True(t, d.Dispatch(ctx, withoutImage, caption))
		c.AssertExpectations(t)
	})

	t.Run("실패: 사진과 텍스트 모두 실패", func(t *testing.T) {
		c := &mockClient{}
		c.On("Send", mock.MatchedBy(isPhoto)).Return(tgbotapi.Message{}, errors.New("timeout")).Once()
		c.On("Send", mock.MatchedBy(htmlMessage)).Return(tgbotapi.Message{}, &tgbotapi.Error{Code: 500, Message: "internal"}).Once()

		d := newDispatcher(c, testChatID, 0)

		assert.False(t, d.Dispatch(ctx, withImage, caption))
		c.AssertExpectations(t)
		c.AssertNotCalled(t, "Send", mock.MatchedBy(plainMessage))
	})

	t.Run("실패: 취소된 컨텍스트는 API를 호출하지 않음", func(t *testing.T) {
		c := &mockClient{}
		d := newDispatcher(c, testChatID, time.Hour)
		// 첫 토큰을 소진해 두어야 Wait가 컨텍스트를 확인한다.
		require.True(t, d.rateLimiter.Allow())

		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		assert.False(t, d.Dispatch(cancelled, withImage, caption))
		c.AssertNotCalled(t, "Send", mock.Anything)
	})
}

func TestDispatch_CaptionTruncated(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("가", 2000)

	c := &mockClient{}
	c.On("Send", mock.MatchedBy(func(ch tgbotapi.Chattable) bool {
		p, ok := ch.(tgbotapi.PhotoConfig)
		return ok && utf8.RuneCountInString(p.Caption) == captionMaxLength
	})).Return(tgbotapi.Message{}, nil).Once()

	d := newDispatcher(c, testChatID, 0)

	assert.True(t, d.Dispatch(context.Background(), withImage, long))
	c.AssertExpectations(t)
}

func TestDispatch_RequestDelay(t *testing.T) {
	t.Parallel()

	const delay = 80 * time.Millisecond

	c := &mockClient{}
	c.On("Send", mock.Anything).Return(tgbotapi.Message{}, nil)

	d := newDispatcher(c, testChatID, delay)

	start := time.Now()
	for range 3 {
		require.True(t, d.Dispatch(context.Background(), withoutImage, caption))
	}

	assert.GreaterOrEqual(t, time.Since(start), 2*delay-10*time.Millisecond)
	c.AssertNumberOfCalls(t, "Send", 3)
}

// =============================================================================
// SendText / 기타
// =============================================================================

func TestSendText(t *testing.T) {
	t.Parallel()

	c := &mockClient{}
	c.On("Send", mock.MatchedBy(htmlMessage)).Return(tgbotapi.Message{}, errors.New("network down")).Once()

	d := newDispatcher(c, testChatID, 0)

	err := d.SendText(context.Background(), "<b>test</b>")

	require.Error(t, err)
	assert.True(t, d.Enabled())
}

func TestPlainText(t *testing.T) {
	t.Parallel()

	assert.Equal(t, `a & b <c> "d"`, plainText(`<b>a &amp; b</b> &lt;c&gt; &quot;d&quot;`))
	assert.Equal(t, "line1\nline2", plainText("<i>line1</i>\nline2"))
}

func TestParseTelegramError(t *testing.T) {
	t.Parallel()

	code, retry := parseTelegramError(&tgbotapi.Error{Code: 429, ResponseParameters: tgbotapi.ResponseParameters{RetryAfter: 3}})
	assert.Equal(t, 429, code)
	assert.Equal(t, 3, retry)

	code, _ = parseTelegramError(tgbotapi.Error{Code: 400})
	assert.Equal(t, 400, code)

	code, retry = parseTelegramError(errors.New("plain"))
	assert.Zero(t, code)
	assert.Zero(t, retry)
}

func TestNewDispatcher_NilClientPanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { newDispatcher(nil, testChatID, 0) })
}
