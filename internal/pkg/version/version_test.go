package version

import (
	"runtime"
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInfo_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input Info
		want  string
	}{
		{
			name:  "빈 정보",
			input: Info{},
			want:  "unknown",
		},
		{
			name:  "버전만 존재",
			input: Info{Version: "v1.0.0"},
			want:  "v1.0.0",
		},
		{
			name: "전체 정보와 dirty 빌드",
			input: Info{
				Version:     "v1.2.0",
				Commit:      "f25b8bf0123456",
				BuildNumber: "7",
				BuildDate:   "2025-01-01",
				GoVersion:   "go1.24",
				OS:          "linux",
				Arch:        "amd64",
				DirtyBuild:  true,
			},
			want: "v1.2.0+dirty (commit: f25b8bf, build: 7, date: 2025-01-01, go_version: go1.24, os: linux, arch: amd64)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.input.String())
		})
	}
}

// readBuildInfo 를 교체하므로 병렬로 실행하지 않습니다.
func TestEnrich(t *testing.T) {
	original := readBuildInfo
	t.Cleanup(func() { readBuildInfo = original })

	t.Run("VCS 메타데이터로 빈 필드 보강", func(t *testing.T) {
		readBuildInfo = func() (*debug.BuildInfo, bool) {
			return &debug.BuildInfo{
				Main: debug.Module{Version: "v0.3.1"},
				Settings: []debug.BuildSetting{
					{Key: "vcs.revision", Value: "abc123"},
					{Key: "vcs.time", Value: "2025-02-02T00:00:00Z"},
					{Key: "vcs.modified", Value: "true"},
				},
			}, true
		}

		got := enrich(Info{})

		assert.Equal(t, "v0.3.1", got.Version)
		assert.Equal(t, "abc123", got.Commit)
		assert.Equal(t, "2025-02-02T00:00:00Z", got.BuildDate)
		assert.True(t, got.DirtyBuild)
		assert.Equal(t, runtime.Version(), got.GoVersion)
		assert.Equal(t, runtime.GOOS, got.OS)
		assert.Equal(t, runtime.GOARCH, got.Arch)
	})

	t.Run("주입된 값이 우선", func(t *testing.T) {
		readBuildInfo = func() (*debug.BuildInfo, bool) {
			return &debug.BuildInfo{
				Main:     debug.Module{Version: "(devel)"},
				Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "zzz"}},
			}, true
		}

		got := enrich(Info{Version: "v9.0.0", Commit: "injected"})

		assert.Equal(t, "v9.0.0", got.Version)
		assert.Equal(t, "injected", got.Commit)
	})

	t.Run("빌드 정보가 없으면 unknown", func(t *testing.T) {
		readBuildInfo = func() (*debug.BuildInfo, bool) { return nil, false }

		got := enrich(Info{})

		assert.Equal(t, unknown, got.Version)
		assert.Equal(t, unknown, got.Commit)
	})
}

func TestInfo_ToMap(t *testing.T) {
	t.Parallel()

	m := Info{Version: "v1", Commit: "c", DirtyBuild: true}.ToMap()

	assert.Equal(t, "v1", m["version"])
	assert.Equal(t, "c", m["commit"])
	assert.Equal(t, true, m["dirty_build"])
	assert.Len(t, m, 8)
}

func TestGet(t *testing.T) {
	t.Parallel()

	assert.NotEmpty(t, Get().Version)
}
