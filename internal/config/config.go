// Package config 애플리케이션 설정을 로드하고 검증합니다.
//
// 설정은 다음 순서로 병합되며 뒤에 오는 값이 앞의 값을 덮어씁니다.
//
//  1. 구조체 기본값 (newDefaultConfig)
//  2. JSON 설정 파일 (deal-notifier.json)
//  3. DEAL_ 접두사 환경 변수 (예: DEAL_TELEGRAM__BOT_TOKEN -> telegram.bot_token)
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	apperrors "github.com/darkkaiser/deal-notifier/internal/pkg/errors"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

const (
	// AppName 애플리케이션의 전역 고유 식별자입니다.
	AppName string = "deal-notifier"

	// DefaultFilename 실행 인자로 경로가 주어지지 않을 때 읽는 설정 파일명입니다.
	DefaultFilename = AppName + ".json"

	// EnvPrefix 설정을 덮어쓰는 환경 변수의 접두사입니다.
	EnvPrefix = "DEAL_"
)

const (
	DefaultInterval      = "@every 60m"
	DefaultMaxPerRun     = 25
	DefaultRunTimeout    = 10 * time.Minute
	DefaultSourceTimeout = 30 * time.Second

	DefaultFetchTimeout = 12 * time.Second
	DefaultUserAgent    = "Mozilla/5.0 (Windows NT 10.0; Win64; x64)"
	DefaultMaxBytes     = 10 * 1024 * 1024

	DefaultReferralParam = "aff_id"

	DefaultShortenerEndpoint = "https://api-ssl.bitly.com"
	DefaultShortenerTimeout  = 12 * time.Second
	DefaultShortLinkCacheTTL = 24 * time.Hour

	DefaultTelegramRequestDelay = 1 * time.Second
	DefaultTelegramTimeout      = 12 * time.Second

	DefaultRecordBackend  = RecordBackendFile
	DefaultRecordDir      = "data"
	DefaultRecordRedisKey = AppName + ":delivered"

	DefaultListenPort = 8080
)

// DefaultBaseURL 소스가 설정되지 않았을 때 사용하는 기본 쇼핑몰 주소입니다.
const DefaultBaseURL = "https://www.jumia.co.ke"

// DefaultSources 기본 쇼핑몰의 할인 페이지와 주요 카테고리 목록입니다.
func DefaultSources() []SourceConfig {
	sources := []SourceConfig{
		{ID: "flash-sales", Kind: SourceKindHTML, URL: DefaultBaseURL + "/flash-sales/", Limit: 12},
		{ID: "deals", Kind: SourceKindHTML, URL: DefaultBaseURL + "/deals/", Limit: 12},
	}
	for _, category := range []string{"phones-tablets", "tv-video", "home-office", "computing", "health-beauty", "fashion", "groceries"} {
		sources = append(sources, SourceConfig{
			ID:    category,
			Kind:  SourceKindHTML,
			URL:   DefaultBaseURL + "/" + category + "/",
			Limit: 6,
		})
	}
	return sources
}

func newDefaultConfig() AppConfig {
	return AppConfig{
		Pipeline: PipelineConfig{
			Interval:      DefaultInterval,
			RunOnStart:    true,
			MaxPerRun:     DefaultMaxPerRun,
			RunTimeout:    DefaultRunTimeout,
			SourceTimeout: DefaultSourceTimeout,
		},
		Sources: DefaultSources(),
		Fetch: FetchConfig{
			Timeout:   DefaultFetchTimeout,
			UserAgent: DefaultUserAgent,
			MaxBytes:  DefaultMaxBytes,
		},
		Referral: ReferralConfig{
			Param: DefaultReferralParam,
		},
		Shortener: ShortenerConfig{
			Endpoint: DefaultShortenerEndpoint,
			Timeout:  DefaultShortenerTimeout,
			CacheTTL: DefaultShortLinkCacheTTL,
		},
		Telegram: TelegramConfig{
			RequestDelay: DefaultTelegramRequestDelay,
			Timeout:      DefaultTelegramTimeout,
		},
		Record: RecordConfig{
			Backend: DefaultRecordBackend,
			Dir:     DefaultRecordDir,
			Redis:   RedisConfig{Key: DefaultRecordRedisKey},
		},
		HTTP: HTTPConfig{
			ListenPort:   DefaultListenPort,
			AllowOrigins: []string{"*"},
		},
	}
}

// normalizeEnvKey DEAL_TELEGRAM__BOT_TOKEN 형태의 환경 변수명을 telegram.bot_token 형태의 키로 변환합니다.
func normalizeEnvKey(s string) string {
	s = strings.TrimPrefix(s, EnvPrefix)
	s = strings.ToLower(s)
	return strings.ReplaceAll(s, "__", ".")
}

// Load 기본 설정 파일을 읽어 애플리케이션 설정을 로드합니다.
func Load() (*AppConfig, error) {
	return LoadWithFile(DefaultFilename)
}

// LoadWithFile 지정된 경로의 설정 파일을 읽어 AppConfig 객체를 생성합니다.
// 파일이 없으면 기본값과 환경 변수만으로 구성합니다.
func LoadWithFile(filename string) (*AppConfig, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(newDefaultConfig(), "json"), nil); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "애플리케이션 기본 설정 로드에 실패했습니다")
	}

	if err := k.Load(file.Provider(filename), json.Parser()); err != nil {
		if !os.IsNotExist(err) {
			return nil, apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("설정 파일 로드 중 오류가 발생했습니다: '%s'", filename))
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", normalizeEnvKey), nil); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "환경 변수 로드에 실패했습니다")
	}

	var appConfig AppConfig
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "json",
		DecoderConfig: &mapstructure.DecoderConfig{
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
			ErrorUnused:      true, // 구조체에 없는 키는 오타로 간주한다.
			WeaklyTypedInput: true,
			Result:           &appConfig,
		},
	}
	if err := k.UnmarshalWithConf("", &appConfig, unmarshalConf); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "설정 데이터를 애플리케이션 구조체로 변환하는데 실패했습니다")
	}

	if len(appConfig.Sources) == 0 {
		appConfig.Sources = DefaultSources()
	}

	if err := appConfig.validate(newValidator()); err != nil {
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("설정 파일('%s')의 유효성 검증에 실패했습니다", filename))
	}

	return &appConfig, nil
}
