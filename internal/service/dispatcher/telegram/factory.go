package telegram

import (
	"net/http"
	"time"

	"github.com/darkkaiser/deal-notifier/internal/service/dispatcher"
	applog "github.com/darkkaiser/deal-notifier/pkg/log"
	"github.com/darkkaiser/deal-notifier/pkg/strutil"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const defaultHTTPTimeout = 12 * time.Second

// Config 텔레그램 Dispatcher 생성 설정입니다.
type Config struct {
	BotToken     string
	ChatID       int64
	RequestDelay time.Duration
	Timeout      time.Duration
	Debug        bool

	// Endpoint 봇 API 주소 형식입니다. 비어 있으면 tgbotapi.APIEndpoint를 사용합니다.
	Endpoint string
}

// New 봇 토큰과 채팅방 ID가 모두 있으면 텔레그램 Dispatcher를, 하나라도 없으면 비활성 Dispatcher를 생성합니다.
//
// 봇 생성 시 getMe 호출로 토큰을 확인하며, 실패하면 에러를 반환합니다.
func New(cfg Config) (dispatcher.Dispatcher, error) {
	if cfg.BotToken == "" || cfg.ChatID == 0 {
		applog.WithComponentAndFields(component, applog.Fields{
			"bot_token_set": cfg.BotToken != "",
			"chat_id":       cfg.ChatID,
		}).Warn("텔레그램 자격 증명이 설정되지 않아 발송이 비활성화됩니다")

		return dispatcher.NewDisabled("텔레그램 bot_token 또는 chat_id가 설정되지 않았습니다"), nil
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultHTTPTimeout
	}
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = tgbotapi.APIEndpoint
	}

	botAPI, err := tgbotapi.NewBotAPIWithClient(cfg.BotToken, endpoint, &http.Client{Timeout: timeout})
	if err != nil {
		return nil, NewErrInvalidBotToken(err)
	}
	botAPI.Debug = cfg.Debug

	applog.WithComponentAndFields(component, applog.Fields{
		"bot_username":  botAPI.Self.UserName,
		"bot_token":     strutil.Mask(cfg.BotToken),
		"chat_id":       cfg.ChatID,
		"request_delay": cfg.RequestDelay.String(),
	}).Info("텔레그램 Dispatcher 초기화 완료")

	return newDispatcher(botAPI, cfg.ChatID, cfg.RequestDelay), nil
}
