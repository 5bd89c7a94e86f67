package services

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel markers classifying scoring-provider failures. The orchestrator
// treats every marker the same way (fall back to the heuristic scorer); they
// exist so diagnostics and tests can tell the failure modes apart.
var (
	// ErrConfiguration marks a missing or unusable credential/model setting.
	ErrConfiguration = errors.New("configuration error")
	// ErrUnavailable marks a provider that is not registered in this build.
	ErrUnavailable = errors.New("provider unavailable")
	// ErrProvider marks a transport or API failure from a remote provider.
	ErrProvider = errors.New("provider error")
	// ErrParse marks a remote reply that yielded no usable score.
	ErrParse = errors.New("unparseable reply")
)

// Wrap builds an error message that includes provider context while tagging it
// with the provided marker for later classification. The marker should be one
// of the exported sentinel errors above.
func Wrap(marker error, provider, operation, message string, err error) error {
	detail := buildDetail(provider, operation, message)
	if marker == nil {
		marker = ErrProvider
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// Recoverable reports whether an error may be absorbed by falling back to the
// heuristic scorer. Persistence failures never carry one of the markers above,
// so they always report false and stay hard failures.
func Recoverable(err error) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, ErrConfiguration),
		errors.Is(err, ErrUnavailable),
		errors.Is(err, ErrProvider),
		errors.Is(err, ErrParse):
		return true
	default:
		return false
	}
}

func buildDetail(provider, operation, message string) string {
	parts := make([]string, 0, 3)
	if provider = strings.TrimSpace(provider); provider != "" {
		parts = append(parts, provider)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "service failure"
	}
	return strings.Join(parts, ": ")
}
