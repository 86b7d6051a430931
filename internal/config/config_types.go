package config

import (
	"fmt"
	"time"

	apperrors "github.com/darkkaiser/deal-notifier/internal/pkg/errors"
	"github.com/darkkaiser/deal-notifier/pkg/cronx"
	"github.com/go-playground/validator/v10"
	"github.com/iancoleman/strcase"
)

const (
	SourceKindHTML = "html"
	SourceKindRSS  = "rss"

	RecordBackendFile  = "file"
	RecordBackendRedis = "redis"
)

// AppConfig 애플리케이션의 모든 설정을 포함하는 최상위 구조체
type AppConfig struct {
	Debug     bool            `json:"debug"`
	Pipeline  PipelineConfig  `json:"pipeline"`
	Sources   []SourceConfig  `json:"sources" validate:"unique=ID"`
	Fetch     FetchConfig     `json:"fetch"`
	Referral  ReferralConfig  `json:"referral"`
	Shortener ShortenerConfig `json:"shortener"`
	Telegram  TelegramConfig  `json:"telegram"`
	Record    RecordConfig    `json:"record"`
	HTTP      HTTPConfig      `json:"http"`
}

// validate 설정 파일 로드 직후, 각 설정 항목의 정합성과 필수 값의 유효성을 검증합니다.
func (c *AppConfig) validate(v *validator.Validate) error {
	if err := c.Pipeline.validate(v); err != nil {
		return err
	}

	if err := checkUniqueField(v, c.Sources, "ID", "Source"); err != nil {
		return err
	}
	if err := checkNormalizedSourceIDs(c.Sources); err != nil {
		return err
	}
	for _, s := range c.Sources {
		if err := checkStruct(v, s, fmt.Sprintf("Source['%s']", s.ID)); err != nil {
			return err
		}
	}

	if err := checkStruct(v, c.Fetch, "Fetch"); err != nil {
		return err
	}
	if err := checkStruct(v, c.Referral, "Referral"); err != nil {
		return err
	}
	if err := checkStruct(v, c.Shortener, "Shortener"); err != nil {
		return err
	}
	if err := checkStruct(v, c.Telegram, "Telegram"); err != nil {
		return err
	}
	if err := c.Record.validate(v); err != nil {
		return err
	}

	return c.HTTP.validate(v)
}

// VerifyRecommendations 실행은 가능하지만 의도와 다르게 동작할 수 있는 설정에 대한 경고 목록을 반환합니다.
func (c *AppConfig) VerifyRecommendations() []string {
	var warnings []string

	if !c.Telegram.Configured() {
		warnings = append(warnings, "텔레그램 봇 토큰(bot_token) 또는 채팅 ID(chat_id)가 설정되지 않았습니다. 모든 알림 발송이 실패로 집계됩니다")
	}
	if c.Shortener.Token == "" {
		warnings = append(warnings, "단축 URL 서비스 토큰(shortener.token)이 설정되지 않았습니다. 원본 링크가 그대로 발송됩니다")
	}
	if c.Referral.ID == "" {
		warnings = append(warnings, "제휴 ID(referral.id)가 설정되지 않았습니다. 링크에 제휴 파라미터가 추가되지 않습니다")
	}
	if c.HTTP.ListenPort < 1024 {
		warnings = append(warnings, fmt.Sprintf("시스템 예약 포트(1-1023)를 사용하도록 설정되었습니다(port: %d). 이 경우 서버 구동 시 관리자 권한이 필요할 수 있습니다", c.HTTP.ListenPort))
	}

	return warnings
}

// PipelineConfig 수집/발송 실행 주기와 실행당 한도를 정의합니다.
type PipelineConfig struct {
	Interval      string        `json:"interval" validate:"required"`
	RunOnStart    bool          `json:"run_on_start"`
	MaxPerRun     int           `json:"max_per_run" validate:"min=1"`
	RunTimeout    time.Duration `json:"run_timeout" validate:"gt=0"`
	SourceTimeout time.Duration `json:"source_timeout" validate:"gt=0"`
}

func (c *PipelineConfig) validate(v *validator.Validate) error {
	if err := checkStruct(v, c, "Pipeline"); err != nil {
		return err
	}
	if err := cronx.Validate(c.Interval); err != nil {
		return apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("실행 주기(interval) 설정이 유효하지 않습니다: '%s'", c.Interval))
	}
	return nil
}

// SourceConfig 할인 상품 목록을 가져올 페이지 또는 피드 하나를 정의합니다.
// Options는 Kind별 추가 설정이며 source 패키지에서 해석합니다.
type SourceConfig struct {
	ID      string         `json:"id" validate:"required"`
	Kind    string         `json:"kind" validate:"oneof=html rss"`
	URL     string         `json:"url" validate:"required,http_url"`
	Limit   int            `json:"limit" validate:"min=1"`
	Options map[string]any `json:"options"`
}

// FetchConfig 소스 페이지 요청에 사용하는 HTTP 설정입니다.
type FetchConfig struct {
	Timeout   time.Duration `json:"timeout" validate:"gt=0"`
	UserAgent string        `json:"user_agent" validate:"required"`
	MaxBytes  int64         `json:"max_bytes" validate:"min=0"`
}

// ReferralConfig 상품 링크에 덧붙일 제휴 파라미터입니다. ID가 비어 있으면 링크를 변경하지 않습니다.
type ReferralConfig struct {
	Param string `json:"param" validate:"required"`
	ID    string `json:"id"`
}

// ShortenerConfig 단축 URL 서비스(Bitly) 설정입니다.
type ShortenerConfig struct {
	Endpoint        string        `json:"endpoint" validate:"required,http_url"`
	Token           string        `json:"token"`
	Timeout         time.Duration `json:"timeout" validate:"gt=0"`
	MemcacheServers []string      `json:"memcache_servers" validate:"dive,hostname_port"`
	CacheTTL        time.Duration `json:"cache_ttl" validate:"min=0"`
}

// TelegramConfig 알림을 발송할 텔레그램 봇과 채팅방 정보입니다.
type TelegramConfig struct {
	BotToken     string        `json:"bot_token" validate:"omitempty,telegram_bot_token"`
	ChatID       int64         `json:"chat_id"`
	RequestDelay time.Duration `json:"request_delay" validate:"min=0"`
	Timeout      time.Duration `json:"timeout" validate:"gt=0"`
}

// Configured 봇 토큰과 채팅 ID가 모두 설정되었는지 여부를 반환합니다.
func (c TelegramConfig) Configured() bool {
	return c.BotToken != "" && c.ChatID != 0
}

// RecordConfig 발송 이력 저장소 설정입니다.
type RecordConfig struct {
	Backend string      `json:"backend" validate:"oneof=file redis"`
	Dir     string      `json:"dir"`
	Redis   RedisConfig `json:"redis"`
}

func (c *RecordConfig) validate(v *validator.Validate) error {
	if err := checkStruct(v, c, "Record"); err != nil {
		return err
	}

	switch c.Backend {
	case RecordBackendFile:
		if c.Dir == "" {
			return apperrors.New(apperrors.InvalidInput, "파일 저장소를 사용하려면 저장 디렉토리(record.dir)를 지정해야 합니다")
		}
	case RecordBackendRedis:
		if c.Redis.Addr == "" {
			return apperrors.New(apperrors.InvalidInput, "Redis 저장소를 사용하려면 주소(record.redis.addr)를 지정해야 합니다")
		}
		if c.Redis.Key == "" {
			return apperrors.New(apperrors.InvalidInput, "Redis 저장소를 사용하려면 키(record.redis.key)를 지정해야 합니다")
		}
	}
	return nil
}

// RedisConfig Redis 발송 이력 저장소 접속 정보입니다.
type RedisConfig struct {
	Addr     string `json:"addr"`
	Password string `json:"password"`
	DB       int    `json:"db" validate:"min=0"`
	Key      string `json:"key"`
}

// HTTPConfig 트리거/상태 조회용 HTTP 서버 설정입니다.
type HTTPConfig struct {
	ListenPort   int      `json:"listen_port" validate:"min=1,max=65535"`
	AllowOrigins []string `json:"allow_origins" validate:"dive,cors_origin"`
}

func (c *HTTPConfig) validate(v *validator.Validate) error {
	if len(c.AllowOrigins) == 0 {
		return apperrors.New(apperrors.InvalidInput, "CORS 허용 도메인(allow_origins) 목록이 비어있습니다")
	}
	for _, origin := range c.AllowOrigins {
		if origin == "*" && len(c.AllowOrigins) > 1 {
			return apperrors.New(apperrors.InvalidInput, "와일드카드(*)는 다른 도메인과 함께 사용할 수 없습니다. 모든 도메인을 허용하려면 와일드카드만 설정하세요")
		}
	}
	return checkStruct(v, c, "HTTP")
}

// checkNormalizedSourceIDs 소스 ID는 kebab-case로 정규화되어 사용되므로, 정규화한 값끼리도 겹치지 않아야 합니다.
func checkNormalizedSourceIDs(sources []SourceConfig) error {
	seen := make(map[string]string, len(sources))
	for _, s := range sources {
		id := strcase.ToKebab(s.ID)
		if prev, dup := seen[id]; dup {
			return apperrors.Newf(apperrors.InvalidInput, "중복된 Source ID가 존재합니다: '%s'와 '%s'는 같은 ID(%s)로 취급됩니다", prev, s.ID, id)
		}
		seen[id] = s.ID
	}
	return nil
}
