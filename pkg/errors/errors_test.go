package errors

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeNotRepository, "'%s' is not a git repository", "/tmp/x")

	if err.Code != ErrCodeNotRepository {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeNotRepository)
	}

	if err.Message != "'/tmp/x' is not a git repository" {
		t.Errorf("Message = %v", err.Message)
	}

	expected := "NOT_A_REPOSITORY: '/tmp/x' is not a git repository"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeOutput, cause, "failed to render")

	if err.Code != ErrCodeOutput {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeOutput)
	}

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}

	unwrapped := errors.Unwrap(err)
	if unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     Code
		expected bool
	}{
		{
			name:     "matching code",
			err:      New(ErrCodeGitNotFound, "test"),
			code:     ErrCodeGitNotFound,
			expected: true,
		},
		{
			name:     "non-matching code",
			err:      New(ErrCodeGitNotFound, "test"),
			code:     ErrCodeGraphvizNotFound,
			expected: false,
		},
		{
			name:     "wrapped error",
			err:      Wrap(ErrCodeOutput, New(ErrCodeInvalidFormat, "inner"), "outer"),
			code:     ErrCodeOutput,
			expected: true,
		},
		{
			name:     "non-Error type",
			err:      errors.New("plain error"),
			code:     ErrCodeInternal,
			expected: false,
		},
		{
			name:     "nil error",
			err:      nil,
			code:     ErrCodeInternal,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.expected {
				t.Errorf("Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Code
	}{
		{"structured error", New(ErrCodeRepoTooLarge, "too big"), ErrCodeRepoTooLarge},
		{"wrapped structured error", Wrap(ErrCodeGitCommand, errors.New("boom"), "git failed"), ErrCodeGitCommand},
		{"plain error", errors.New("plain"), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.want {
				t.Errorf("GetCode() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"structured without cause", New(ErrCodeInvalidFormat, "bad extension"), "bad extension"},
		{"structured with cause", Wrap(ErrCodeOutput, errors.New("disk full"), "cannot write"), "cannot write: disk full"},
		{"plain error", errors.New("plain"), "plain"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.want {
				t.Errorf("UserMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}
