package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/darkkaiser/deal-notifier/internal/config"
	"github.com/darkkaiser/deal-notifier/internal/pkg/version"
	"github.com/darkkaiser/deal-notifier/internal/service/api/constants"
	"github.com/darkkaiser/deal-notifier/internal/service/deal"
	"github.com/darkkaiser/deal-notifier/internal/service/pipeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Test Doubles
// =============================================================================

type fakeTrigger struct {
	mu    sync.Mutex
	calls int
}

func (f *fakeTrigger) RunNow(context.Context) (pipeline.Report, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return pipeline.Report{Considered: 2, Delivered: 2}, nil
}
func (f *fakeTrigger) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}
func (f *fakeTrigger) Interval() string   { return "@every 1h" }
func (f *fakeTrigger) NextRun() time.Time { return time.Time{} }

type fakeRunStatus struct{}

func (fakeRunStatus) State() pipeline.State         { return pipeline.Idle }
func (fakeRunStatus) LastReport() *pipeline.Report { return nil }
func (fakeRunStatus) MaxPerRun() int                { return 25 }

type fakeRecord struct{}

func (fakeRecord) Len() int         { return 7 }
func (fakeRecord) Loaded() bool     { return true }
func (fakeRecord) Describe() string { return "file:/tmp/delivered.json" }

type fakeDispatcher struct {
	mu    sync.Mutex
	texts []string
}

func (f *fakeDispatcher) Dispatch(context.Context, deal.Candidate, string) bool { return true }
func (f *fakeDispatcher) SendText(_ context.Context, text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.texts = append(f.texts, text)
	return nil
}
func (f *fakeDispatcher) Enabled() bool { return true }

func (f *fakeDispatcher) sent() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.texts...)
}

func testDependencies() Dependencies {
	return Dependencies{
		Trigger:    &fakeTrigger{},
		RunStatus:  fakeRunStatus{},
		Record:     fakeRecord{},
		Dispatcher: &fakeDispatcher{},
	}
}

func freePort(t *testing.T) int {
	t.Helper()

	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()

	return l.Addr().(*net.TCPAddr).Port
}

func testAppConfig(port int) *config.AppConfig {
	appConfig := &config.AppConfig{Debug: true}
	appConfig.HTTP.ListenPort = port
	appConfig.HTTP.AllowOrigins = []string{"*"}
	appConfig.Pipeline.RunTimeout = time.Minute
	return appConfig
}

func waitForServer(t *testing.T, port int) {
	t.Helper()

	require.Eventually(t, func() bool {
		conn, err := net.DialTimeout("tcp", fmt.Sprintf("127.0.0.1:%d", port), 100*time.Millisecond)
		if err != nil {
			return false
		}
		_ = conn.Close()
		return true
	}, 5*time.Second, 20*time.Millisecond, "서버가 시작되지 않았습니다")
}

// =============================================================================
// Constructor
// =============================================================================

func TestNewService(t *testing.T) {
	t.Run("성공: 의존성 설정", func(t *testing.T) {
		deps := testDependencies()
		s := NewService(testAppConfig(8080), deps, version.Info{Version: "v1"})

		assert.Equal(t, deps, s.deps)
		assert.Equal(t, "v1", s.buildInfo.Version)
		assert.False(t, s.Running())
	})

	t.Run("실패: 필수 의존성 누락은 panic", func(t *testing.T) {
		tests := []struct {
			name     string
			mutate   func(*Dependencies)
			expected string
		}{
			{"Trigger", func(d *Dependencies) { d.Trigger = nil }, constants.PanicMsgTriggerRequired},
			{"RunStatus", func(d *Dependencies) { d.RunStatus = nil }, constants.PanicMsgRunStatusRequired},
			{"Record", func(d *Dependencies) { d.Record = nil }, constants.PanicMsgRecordRequired},
			{"Dispatcher", func(d *Dependencies) { d.Dispatcher = nil }, constants.PanicMsgDispatcherRequired},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				deps := testDependencies()
				tt.mutate(&deps)

				assert.PanicsWithValue(t, tt.expected, func() {
					NewService(testAppConfig(8080), deps, version.Info{})
				})
			})
		}

		assert.PanicsWithValue(t, constants.PanicMsgAppConfigRequired, func() {
			NewService(nil, testDependencies(), version.Info{})
		})
	})
}

// =============================================================================
// Lifecycle
// =============================================================================

func TestService_Lifecycle(t *testing.T) {
	port := freePort(t)
	deps := testDependencies()
	s := NewService(testAppConfig(port), deps, version.Info{Version: "v1"})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	wg := &sync.WaitGroup{}
	wg.Add(1)

	require.NoError(t, s.Start(ctx, wg))
	waitForServer(t, port)
	assert.True(t, s.Running())

	client := &http.Client{Timeout: 5 * time.Second, Transport: &http.Transport{DisableKeepAlives: true}}

	t.Run("성공: 상태 조회", func(t *testing.T) {
		resp, err := client.Get(fmt.Sprintf("http://127.0.0.1:%d/", port))
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, config.AppName, body["app_name"])
		assert.Equal(t, "v1", body["version"])
		assert.EqualValues(t, 7, body["record_size"])
	})

	t.Run("성공: 수동 실행", func(t *testing.T) {
		resp, err := client.Post(fmt.Sprintf("http://127.0.0.1:%d/trigger", port), "application/json", nil)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, 1, deps.Trigger.(*fakeTrigger).callCount())
	})

	t.Run("성공: 테스트 메시지", func(t *testing.T) {
		resp, err := client.Post(fmt.Sprintf("http://127.0.0.1:%d/test", port), "application/json", nil)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, []string{constants.TestMessage}, deps.Dispatcher.(*fakeDispatcher).sent())
	})

	cancel()
	wg.Wait()

	assert.False(t, s.Running())
	_, err := net.DialTimeout("tcp", fmt.Sprintf("127.0.0.1:%d", port), 200*time.Millisecond)
	assert.Error(t, err, "종료 후에는 연결할 수 없어야 합니다")
}

func TestService_DuplicateStart(t *testing.T) {
	port := freePort(t)
	s := NewService(testAppConfig(port), testDependencies(), version.Info{})

	ctx, cancel := context.WithCancel(context.Background())
	wg := &sync.WaitGroup{}

	wg.Add(1)
	require.NoError(t, s.Start(ctx, wg))
	waitForServer(t, port)

	wg.Add(1)
	require.NoError(t, s.Start(ctx, wg), "중복 시작은 에러 없이 무시되어야 합니다")

	cancel()

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(10 * time.Second):
		t.Fatal("WaitGroup이 완료되지 않았습니다")
	}
}

func TestService_PortConflictStopsService(t *testing.T) {
	l, err := net.Listen("tcp", ":0")
	require.NoError(t, err)
	defer l.Close()

	port := l.Addr().(*net.TCPAddr).Port
	deps := testDependencies()
	s := NewService(testAppConfig(port), deps, version.Info{})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	wg := &sync.WaitGroup{}
	wg.Add(1)

	require.NoError(t, s.Start(ctx, wg))
	wg.Wait()

	assert.False(t, s.Running())

	sent := deps.Dispatcher.(*fakeDispatcher).sent()
	require.Len(t, sent, 1, "서버 오류는 발송 채널로 알려야 합니다")
	assert.Contains(t, sent[0], constants.LogMsgServiceHTTPServerFatalError)
}
