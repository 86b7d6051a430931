package record

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	applog "github.com/darkkaiser/deal-notifier/pkg/log"
	"github.com/iancoleman/strcase"
)

const (
	defaultDataDirectory = "data"

	tempFilePattern = "delivered-*.tmp"

	// staleTempFileAge 이보다 오래된 임시 파일은 이전 실행이 비정상 종료하며 남긴 것으로 보고 지웁니다.
	staleTempFileAge = time.Hour
)

// FileStore 발송 이력을 JSON 배열 파일 하나에 저장합니다.
//
// 쓰기는 임시 파일 작성, fsync, rename 순서로 진행하므로 중간에 프로세스가 죽어도
// 이전 내용이나 새 내용 중 하나만 남습니다.
type FileStore struct {
	path string
	mu   sync.Mutex
}

var _ Store = (*FileStore)(nil)

// NewFileStore dir 아래에 "{name의 kebab-case}-delivered.json" 파일을 사용하는 저장소를 생성합니다.
// dir가 비어 있으면 "data"를 사용합니다.
func NewFileStore(dir, name string) (*FileStore, error) {
	if dir == "" {
		dir = defaultDataDirectory
	}

	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, NewErrDirectoryAccessFailed(err, dir)
	}
	if err := os.MkdirAll(absDir, 0755); err != nil {
		return nil, NewErrDirectoryAccessFailed(err, absDir)
	}

	s := &FileStore{
		path: filepath.Join(absDir, generateFilename(name)),
	}
	s.cleanupStaleTempFiles(absDir)

	return s, nil
}

// generateFilename 애플리케이션 이름을 파일명으로 쓸 수 있는 kebab-case로 바꿉니다.
// 예: "DealNotifier" -> "deal-notifier-delivered.json"
func generateFilename(name string) string {
	base := strcase.ToKebab(name)
	if base == "" {
		base = "deal-notifier"
	}
	return base + "-delivered.json"
}

// Path 이력 파일의 절대 경로입니다.
func (s *FileStore) Path() string {
	return s.path
}

func (s *FileStore) Describe() string {
	return "file:" + s.path
}

func (s *FileStore) Load(_ context.Context) ([]string, error) {
	s.mu.Lock()
	data, err := os.ReadFile(s.path)
	s.mu.Unlock()

	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, NewErrStoreReadFailed(err, s.Describe())
	}

	var fingerprints []string
	if err := json.Unmarshal(data, &fingerprints); err != nil {
		return nil, NewErrStoreCorrupted(err, s.Describe())
	}

	return fingerprints, nil
}

func (s *FileStore) Save(_ context.Context, fingerprints []string) error {
	if fingerprints == nil {
		fingerprints = []string{}
	}

	data, err := json.MarshalIndent(fingerprints, "", "\t")
	if err != nil {
		return NewErrStoreWriteFailed(err, s.Describe())
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := writeAtomic(s.path, data); err != nil {
		return NewErrStoreWriteFailed(err, s.Describe())
	}
	return nil
}

func writeAtomic(filename string, data []byte) error {
	dir := filepath.Dir(filename)

	// rename이 원자적이려면 같은 디렉토리에 만들어야 한다.
	tmpFile, err := os.CreateTemp(dir, tempFilePattern)
	if err != nil {
		return err
	}
	tmpPath := tmpFile.Name()

	// Windows에서는 열린 파일을 지울 수 없으므로 Close가 Remove보다 먼저 실행되어야 한다.
	defer os.Remove(tmpPath)
	defer tmpFile.Close()

	if _, err := tmpFile.Write(data); err != nil {
		return err
	}
	if err := tmpFile.Sync(); err != nil {
		return err
	}
	if err := tmpFile.Close(); err != nil {
		return err
	}

	if err := renameWithRetry(tmpPath, filename); err != nil {
		return err
	}

	if dirFile, err := os.Open(dir); err == nil {
		_ = dirFile.Sync()
		dirFile.Close()
	}

	return nil
}

// renameWithRetry 백신이나 인덱서가 파일을 잠시 잡고 있는 경우를 위해 짧게 재시도합니다.
func renameWithRetry(oldPath, newPath string) error {
	const maxRetries = 5
	const retryDelay = 10 * time.Millisecond

	var lastErr error
	for range maxRetries {
		if err := os.Rename(oldPath, newPath); err == nil {
			return nil
		} else {
			lastErr = err
		}
		time.Sleep(retryDelay)
	}
	return lastErr
}

func (s *FileStore) cleanupStaleTempFiles(dir string) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}

	threshold := time.Now().Add(-staleTempFileAge)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if matched, _ := filepath.Match(tempFilePattern, entry.Name()); !matched {
			continue
		}
		info, err := entry.Info()
		if err != nil || info.ModTime().After(threshold) {
			continue
		}

		fullPath := filepath.Join(dir, entry.Name())
		if err := os.Remove(fullPath); err != nil {
			applog.WithComponentAndFields(component, applog.Fields{
				"file":  fullPath,
				"error": err.Error(),
			}).Warn("임시 파일 삭제 실패")
			continue
		}
		applog.WithComponentAndFields(component, applog.Fields{
			"file": fullPath,
		}).Info("이전 실행에서 남은 임시 파일을 삭제했습니다")
	}
}
