package record

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	apperrors "github.com/darkkaiser/deal-notifier/internal/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// 생성 및 파일명
// =============================================================================

func TestGenerateFilename(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"kebab-case 유지", "deal-notifier", "deal-notifier-delivered.json"},
		{"CamelCase 변환", "DealNotifier", "deal-notifier-delivered.json"},
		{"빈 이름은 기본값", "", "deal-notifier-delivered.json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, generateFilename(tt.input))
		})
	}
}

func TestNewFileStore(t *testing.T) {
	t.Parallel()

	t.Run("성공: 하위 디렉토리를 생성", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "nested", "data")

		s, err := NewFileStore(dir, "deal-notifier")

		require.NoError(t, err)
		assert.DirExists(t, dir)
		assert.Equal(t, filepath.Join(dir, "deal-notifier-delivered.json"), s.Path())
		assert.Equal(t, "file:"+s.Path(), s.Describe())
	})

	t.Run("성공: 오래된 임시 파일 정리", func(t *testing.T) {
		dir := t.TempDir()
		stale := filepath.Join(dir, "delivered-123.tmp")
		fresh := filepath.Join(dir, "delivered-456.tmp")
		require.NoError(t, os.WriteFile(stale, []byte("x"), 0644))
		require.NoError(t, os.WriteFile(fresh, []byte("x"), 0644))
		old := time.Now().Add(-2 * time.Hour)
		require.NoError(t, os.Chtimes(stale, old, old))

		_, err := NewFileStore(dir, "deal-notifier")

		require.NoError(t, err)
		assert.NoFileExists(t, stale)
		assert.FileExists(t, fresh)
	})

	t.Run("실패: 디렉토리 자리에 파일이 존재", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "occupied")
		require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

		_, err := NewFileStore(file, "deal-notifier")

		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.System))
	})
}

// =============================================================================
// Load / Save
// =============================================================================

func TestFileStore_LoadSave(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("성공: 파일이 없으면 빈 이력", func(t *testing.T) {
		s, err := NewFileStore(t.TempDir(), "deal-notifier")
		require.NoError(t, err)

		fps, err := s.Load(ctx)

		require.NoError(t, err)
		assert.Empty(t, fps)
	})

	t.Run("성공: 저장 후 다시 읽기", func(t *testing.T) {
		dir := t.TempDir()
		s, err := NewFileStore(dir, "deal-notifier")
		require.NoError(t, err)

		require.NoError(t, s.Save(ctx, []string{"aaa", "bbb"}))

		reopened, err := NewFileStore(dir, "deal-notifier")
		require.NoError(t, err)
		fps, err := reopened.Load(ctx)

		require.NoError(t, err)
		assert.Equal(t, []string{"aaa", "bbb"}, fps)
	})

	t.Run("성공: 덮어쓰기 후 임시 파일이 남지 않음", func(t *testing.T) {
		dir := t.TempDir()
		s, err := NewFileStore(dir, "deal-notifier")
		require.NoError(t, err)

		require.NoError(t, s.Save(ctx, []string{"aaa"}))
		require.NoError(t, s.Save(ctx, []string{"bbb", "ccc"}))

		fps, err := s.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"bbb", "ccc"}, fps)

		matches, err := filepath.Glob(filepath.Join(dir, "*.tmp"))
		require.NoError(t, err)
		assert.Empty(t, matches)
	})

	t.Run("성공: nil은 빈 배열로 저장", func(t *testing.T) {
		s, err := NewFileStore(t.TempDir(), "deal-notifier")
		require.NoError(t, err)

		require.NoError(t, s.Save(ctx, nil))

		data, err := os.ReadFile(s.Path())
		require.NoError(t, err)
		assert.JSONEq(t, `[]`, string(data))
	})

	t.Run("실패: 손상된 파일", func(t *testing.T) {
		s, err := NewFileStore(t.TempDir(), "deal-notifier")
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(s.Path(), []byte("{not json"), 0644))

		_, err = s.Load(ctx)

		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.ParsingFailed))
	})
}
