package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	apperrors "github.com/darkkaiser/deal-notifier/internal/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validBotToken = "123456789:ABC-DEF1234ghIkl-zyx57W2v1u123ew11"

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), DefaultFilename)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// =============================================================================
// Helpers
// =============================================================================

func TestNormalizeEnvKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected string
	}{
		{"DEAL_DEBUG", "debug"},
		{"DEAL_TELEGRAM__BOT_TOKEN", "telegram.bot_token"},
		{"DEAL_RECORD__REDIS__ADDR", "record.redis.addr"},
		{"DEAL_Mixed_Case__Key", "mixed_case.key"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, normalizeEnvKey(tt.input), "Input: %s", tt.input)
	}
}

func TestDefaultSources(t *testing.T) {
	t.Parallel()

	sources := DefaultSources()

	require.Len(t, sources, 9)
	assert.Equal(t, "flash-sales", sources[0].ID)
	assert.Equal(t, 12, sources[0].Limit)
	assert.Equal(t, "https://www.jumia.co.ke/deals/", sources[1].URL)
	for _, s := range sources[2:] {
		assert.Equal(t, 6, s.Limit, s.ID)
		assert.Equal(t, SourceKindHTML, s.Kind)
	}
}

// =============================================================================
// LoadWithFile
// =============================================================================

func TestLoadWithFile_Defaults(t *testing.T) {
	cfg, err := LoadWithFile(filepath.Join(t.TempDir(), "missing.json"))
	require.NoError(t, err)

	assert.Equal(t, DefaultInterval, cfg.Pipeline.Interval)
	assert.True(t, cfg.Pipeline.RunOnStart)
	assert.Equal(t, DefaultMaxPerRun, cfg.Pipeline.MaxPerRun)
	assert.Equal(t, DefaultFetchTimeout, cfg.Fetch.Timeout)
	assert.Equal(t, DefaultUserAgent, cfg.Fetch.UserAgent)
	assert.Equal(t, DefaultReferralParam, cfg.Referral.Param)
	assert.Equal(t, DefaultTelegramRequestDelay, cfg.Telegram.RequestDelay)
	assert.Equal(t, RecordBackendFile, cfg.Record.Backend)
	assert.Equal(t, []string{"*"}, cfg.HTTP.AllowOrigins)
	assert.Len(t, cfg.Sources, 9)
	assert.False(t, cfg.Telegram.Configured())
}

func TestLoadWithFile_FileOverridesDefaults(t *testing.T) {
	path := writeConfigFile(t, `{
		"debug": true,
		"pipeline": {"interval": "@every 30m", "max_per_run": 5, "run_timeout": "2m"},
		"sources": [
			{"id": "feed", "kind": "rss", "url": "https://example.com/deals.rss", "limit": 10, "options": {"discount_pattern": "-?\\d+%"}}
		],
		"referral": {"id": "AB12"},
		"telegram": {"bot_token": "`+validBotToken+`", "chat_id": -100123, "request_delay": "500ms"},
		"http": {"listen_port": 9090}
	}`)

	cfg, err := LoadWithFile(path)
	require.NoError(t, err)

	assert.True(t, cfg.Debug)
	assert.Equal(t, "@every 30m", cfg.Pipeline.Interval)
	assert.Equal(t, 5, cfg.Pipeline.MaxPerRun)
	assert.Equal(t, 2*time.Minute, cfg.Pipeline.RunTimeout)
	assert.Equal(t, DefaultSourceTimeout, cfg.Pipeline.SourceTimeout)
	require.Len(t, cfg.Sources, 1)
	assert.Equal(t, SourceKindRSS, cfg.Sources[0].Kind)
	assert.Equal(t, `-?\d+%`, cfg.Sources[0].Options["discount_pattern"])
	assert.Equal(t, "AB12", cfg.Referral.ID)
	assert.Equal(t, DefaultReferralParam, cfg.Referral.Param)
	assert.Equal(t, int64(-100123), cfg.Telegram.ChatID)
	assert.Equal(t, 500*time.Millisecond, cfg.Telegram.RequestDelay)
	assert.True(t, cfg.Telegram.Configured())
	assert.Equal(t, 9090, cfg.HTTP.ListenPort)
}

func TestLoadWithFile_EnvOverridesFile(t *testing.T) {
	path := writeConfigFile(t, `{"referral": {"id": "FILE"}}`)

	t.Setenv("DEAL_REFERRAL__ID", "ENV")
	t.Setenv("DEAL_TELEGRAM__BOT_TOKEN", validBotToken)
	t.Setenv("DEAL_TELEGRAM__CHAT_ID", "42")
	t.Setenv("DEAL_SHORTENER__MEMCACHE_SERVERS", "127.0.0.1:11211,127.0.0.1:11212")

	cfg, err := LoadWithFile(path)
	require.NoError(t, err)

	assert.Equal(t, "ENV", cfg.Referral.ID)
	assert.Equal(t, int64(42), cfg.Telegram.ChatID)
	assert.Equal(t, []string{"127.0.0.1:11211", "127.0.0.1:11212"}, cfg.Shortener.MemcacheServers)
}

func TestLoadWithFile_Errors(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		errorMsg string
	}{
		{
			name:     "실패: JSON 문법 오류",
			content:  `{"debug": `,
			errorMsg: "설정 파일 로드 중 오류가 발생했습니다",
		},
		{
			name:     "실패: 알 수 없는 키",
			content:  `{"unknown_key": 1}`,
			errorMsg: "설정 데이터를 애플리케이션 구조체로 변환하는데 실패했습니다",
		},
		{
			name:     "실패: 잘못된 실행 주기",
			content:  `{"pipeline": {"interval": "every hour"}}`,
			errorMsg: "실행 주기(interval)",
		},
		{
			name:     "실패: 잘못된 봇 토큰",
			content:  `{"telegram": {"bot_token": "invalid"}}`,
			errorMsg: "텔레그램 BotToken 형식이 올바르지 않습니다",
		},
		{
			name: "실패: 중복된 소스 ID",
			content: `{"sources": [
				{"id": "a", "kind": "html", "url": "https://example.com/a", "limit": 1},
				{"id": "a", "kind": "html", "url": "https://example.com/b", "limit": 1}
			]}`,
			errorMsg: "중복된 Source ID",
		},
		{
			name: "실패: 정규화하면 같아지는 소스 ID",
			content: `{"sources": [
				{"id": "FlashSales", "kind": "html", "url": "https://example.com/a", "limit": 1},
				{"id": "flash-sales", "kind": "html", "url": "https://example.com/b", "limit": 1}
			]}`,
			errorMsg: "같은 ID(flash-sales)",
		},
		{
			name:     "실패: 지원하지 않는 소스 종류",
			content:  `{"sources": [{"id": "a", "kind": "json", "url": "https://example.com", "limit": 1}]}`,
			errorMsg: "소스 종류(kind)",
		},
		{
			name:     "실패: Redis 주소 누락",
			content:  `{"record": {"backend": "redis"}}`,
			errorMsg: "record.redis.addr",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadWithFile(writeConfigFile(t, tt.content))

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorMsg)
		})
	}
}

func TestLoadWithFile_ErrorType(t *testing.T) {
	_, err := LoadWithFile(writeConfigFile(t, `{"http": {"listen_port": 0}}`))

	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.InvalidInput))
	assert.Contains(t, err.Error(), "listen_port")
}

func TestLoadWithFile_EmptySourcesFallsBackToDefaults(t *testing.T) {
	cfg, err := LoadWithFile(writeConfigFile(t, `{"sources": []}`))
	require.NoError(t, err)

	assert.Equal(t, DefaultSources(), cfg.Sources)
}

// =============================================================================
// VerifyRecommendations
// =============================================================================

func TestAppConfig_VerifyRecommendations(t *testing.T) {
	t.Parallel()

	t.Run("미설정 항목마다 경고", func(t *testing.T) {
		cfg := newDefaultConfig()
		cfg.HTTP.ListenPort = 80

		warnings := cfg.VerifyRecommendations()

		assert.Len(t, warnings, 4)
	})

	t.Run("모두 설정되면 경고 없음", func(t *testing.T) {
		cfg := newDefaultConfig()
		cfg.Telegram.BotToken = validBotToken
		cfg.Telegram.ChatID = 1
		cfg.Shortener.Token = "bitly"
		cfg.Referral.ID = "AB12"

		assert.Empty(t, cfg.VerifyRecommendations())
	})
}
