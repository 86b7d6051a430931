package errors

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errStd = errors.New("standard error")

// =============================================================================
// 생성 (New / Newf)
// =============================================================================

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		errType ErrorType
		message string
	}{
		{"InvalidInput", InvalidInput, "invalid input"},
		{"Internal", Internal, "internal error"},
		{"빈 메시지", NotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.errType, tt.message)

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.message)
			assert.True(t, Is(err, tt.errType))
		})
	}
}

func TestNewf(t *testing.T) {
	t.Parallel()

	err := Newf(ExecutionFailed, "status code: %d", 502)

	assert.Contains(t, err.Error(), "status code: 502")
	assert.True(t, Is(err, ExecutionFailed))
}

func TestErrorType_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		errType  ErrorType
		expected string
	}{
		{Unknown, "Unknown"},
		{Internal, "Internal"},
		{System, "System"},
		{Unauthorized, "Unauthorized"},
		{InvalidInput, "InvalidInput"},
		{Conflict, "Conflict"},
		{NotFound, "NotFound"},
		{ExecutionFailed, "ExecutionFailed"},
		{ParsingFailed, "ParsingFailed"},
		{Timeout, "Timeout"},
		{Unavailable, "Unavailable"},
		{ErrorType(99), "ErrorType(99)"},
		{ErrorType(-1), "ErrorType(-1)"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.errType.String())
		})
	}
}

// =============================================================================
// 래핑 (Wrap / Wrapf)
// =============================================================================

func TestWrap(t *testing.T) {
	t.Parallel()

	t.Run("표준 에러 래핑", func(t *testing.T) {
		wrapped := Wrap(errStd, System, "store write failed")

		assert.Contains(t, wrapped.Error(), "store write failed")
		assert.Contains(t, wrapped.Error(), "standard error")
		assert.True(t, Is(wrapped, System))
		assert.ErrorIs(t, wrapped, errStd)
	})

	t.Run("nil 에러는 nil 반환", func(t *testing.T) {
		assert.Nil(t, Wrap(nil, Internal, "ignored"))
		assert.Nil(t, Wrapf(nil, Internal, "ignored %d", 1))
	})

	t.Run("Wrapf 메시지 포맷", func(t *testing.T) {
		wrapped := Wrapf(errStd, Timeout, "source %q timed out", "deals")

		assert.Contains(t, wrapped.Error(), `source "deals" timed out`)
		assert.True(t, Is(wrapped, Timeout))
	})
}

// =============================================================================
// 체인 탐색 (Is / As / RootCause / UnderlyingType)
// =============================================================================

func TestIs_ChainTraversal(t *testing.T) {
	t.Parallel()

	inner := New(NotFound, "missing")
	mid := fmt.Errorf("std wrap: %w", inner)
	outer := Wrap(mid, Internal, "outer")

	assert.True(t, Is(outer, Internal))
	assert.True(t, Is(outer, NotFound))
	assert.False(t, Is(outer, Timeout))
	assert.False(t, Is(nil, Internal))
}

func TestAs(t *testing.T) {
	t.Parallel()

	err := Wrap(errStd, Conflict, "busy")

	var appErr *AppError
	require.True(t, As(err, &appErr))
	assert.Equal(t, Conflict, appErr.Type())
	assert.Equal(t, "busy", appErr.Message())
	assert.NotEmpty(t, appErr.Stack())
}

func TestRootCause(t *testing.T) {
	t.Parallel()

	err := Wrap(Wrap(errStd, System, "mid"), Internal, "top")

	assert.Equal(t, errStd, RootCause(err))
	assert.Nil(t, RootCause(nil))
	assert.Equal(t, errStd, RootCause(errStd))
}

func TestUnderlyingType(t *testing.T) {
	t.Parallel()

	t.Run("가장 안쪽 AppError의 타입", func(t *testing.T) {
		err := Wrap(New(Unavailable, "503"), ExecutionFailed, "fetch")
		assert.Equal(t, Unavailable, UnderlyingType(err))
	})

	t.Run("AppError가 없으면 Unknown", func(t *testing.T) {
		assert.Equal(t, Unknown, UnderlyingType(errStd))
	})
}

// =============================================================================
// 포맷 출력
// =============================================================================

func TestAppError_Format(t *testing.T) {
	t.Parallel()

	t.Run("기본 포맷", func(t *testing.T) {
		err := New(Internal, "test error")

		assert.Equal(t, "[Internal] test error", fmt.Sprintf("%s", err))
		assert.Equal(t, "[Internal] test error", fmt.Sprintf("%v", err))
		assert.Equal(t, `"[Internal] test error"`, fmt.Sprintf("%q", err))
	})

	t.Run("상세 포맷은 스택과 원인 체인을 포함", func(t *testing.T) {
		err := Wrap(New(NotFound, "not found"), Internal, "query failed")

		detailed := fmt.Sprintf("%+v", err)
		assert.Contains(t, detailed, "[Internal] query failed")
		assert.Contains(t, detailed, "Caused by:")
		assert.Contains(t, detailed, "[NotFound] not found")
		assert.Contains(t, detailed, "Stack trace:")
		assert.Contains(t, detailed, "errors_test.go")
	})

	t.Run("표준 에러 원인", func(t *testing.T) {
		detailed := fmt.Sprintf("%+v", Wrap(errStd, System, "io"))

		assert.Contains(t, detailed, "\tstandard error")
	})
}

// =============================================================================
// 스택 캡처
// =============================================================================

func TestCaptureStack(t *testing.T) {
	t.Parallel()

	err := New(Internal, "stack")

	var appErr *AppError
	require.True(t, As(err, &appErr))

	stack := appErr.Stack()
	require.NotEmpty(t, stack)
	assert.LessOrEqual(t, len(stack), maxStackFrames)
	assert.Equal(t, "errors_test.go", stack[0].File)
	assert.Contains(t, stack[0].Function, "TestCaptureStack")
}

func TestConcurrentErrorCreation(t *testing.T) {
	t.Parallel()

	const goroutines = 50

	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := range goroutines {
		go func(i int) {
			defer wg.Done()

			err := Wrapf(errStd, Internal, "worker %d", i)
			assert.True(t, Is(err, Internal))
		}(i)
	}
	wg.Wait()
}
