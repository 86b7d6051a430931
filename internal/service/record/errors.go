package record

import (
	"fmt"

	apperrors "github.com/darkkaiser/deal-notifier/internal/pkg/errors"
)

// NewErrDirectoryAccessFailed 이력 저장 디렉토리를 만들거나 접근할 수 없을 때의 에러를 생성합니다.
func NewErrDirectoryAccessFailed(err error, dir string) error {
	return apperrors.Wrap(err, apperrors.System, fmt.Sprintf("발송 이력 디렉토리에 접근할 수 없습니다: '%s'", dir))
}

// NewErrStoreReadFailed 저장소에서 이력을 읽지 못했을 때의 에러를 생성합니다.
func NewErrStoreReadFailed(err error, store string) error {
	return apperrors.Wrap(err, apperrors.System, fmt.Sprintf("발송 이력을 읽지 못했습니다 (%s)", store))
}

// NewErrStoreCorrupted 저장된 이력의 형식이 올바르지 않을 때의 에러를 생성합니다.
func NewErrStoreCorrupted(err error, store string) error {
	return apperrors.Wrap(err, apperrors.ParsingFailed, fmt.Sprintf("발송 이력 데이터가 손상되었습니다 (%s)", store))
}

// NewErrStoreWriteFailed 저장소에 이력을 기록하지 못했을 때의 에러를 생성합니다.
func NewErrStoreWriteFailed(err error, store string) error {
	return apperrors.Wrap(err, apperrors.System, fmt.Sprintf("발송 이력을 저장하지 못했습니다 (%s)", store))
}
