package llm

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"

	apperrors "career-advisor/internal/common/errors"
)

var (
	ErrModelTimeout     = errors.New("LLM_TIMEOUT")
	ErrModelNetwork     = errors.New("LLM_NETWORK")
	ErrModelUnavailable = errors.New("LLM_UNAVAILABLE")
	ErrModelResponse    = errors.New("LLM_RESPONSE_INVALID")
)

// classify wraps a provider error with the matching sentinel. ctx is the
// context the call ran under.
func classify(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrModelTimeout) || errors.Is(err, ErrModelNetwork) ||
		errors.Is(err, ErrModelUnavailable) || errors.Is(err, ErrModelResponse) {
		return err
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", ErrModelTimeout, err)
	}
	if errors.Is(err, context.Canceled) {
		return fmt.Errorf("%w: %v", ErrModelNetwork, err)
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		if netErr.Timeout() {
			return fmt.Errorf("%w: %v", ErrModelTimeout, err)
		}
		return fmt.Errorf("%w: %v", ErrModelNetwork, err)
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return fmt.Errorf("%w: %v", ErrModelNetwork, err)
	}
	if hasNetworkWording(err) {
		return fmt.Errorf("%w: %v", ErrModelNetwork, err)
	}
	return fmt.Errorf("%w: %v", ErrModelUnavailable, err)
}

func hasNetworkWording(err error) bool {
	msg := strings.ToLower(err.Error())
	for _, word := range []string{"network", "fetch", "connection"} {
		if strings.Contains(msg, word) {
			return true
		}
	}
	return false
}

// IsNetworkError reports whether err means the model could not be reached in
// time, as opposed to the model answering with something unusable.
func IsNetworkError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrModelTimeout) || errors.Is(err, ErrModelNetwork) {
		return true
	}
	if errors.Is(err, ErrModelUnavailable) || errors.Is(err, ErrModelResponse) {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return true
	}
	return hasNetworkWording(err)
}

// Reason returns a short label for metrics.
func Reason(err error) string {
	switch {
	case err == nil:
		return "none"
	case errors.Is(err, ErrModelTimeout):
		return "timeout"
	case errors.Is(err, ErrModelNetwork):
		return "network"
	case errors.Is(err, ErrModelResponse):
		return "response"
	case errors.Is(err, ErrModelUnavailable):
		return "unavailable"
	default:
		return "unknown"
	}
}

// AsStandardError maps a model failure onto the service error codes.
func AsStandardError(err error) *apperrors.StandardError {
	switch {
	case errors.Is(err, ErrModelTimeout):
		return apperrors.NewLLMTimeoutError(err)
	case errors.Is(err, ErrModelResponse):
		return apperrors.NewLLMResponseInvalidError(err.Error())
	default:
		return apperrors.NewLLMUnavailableError(err)
	}
}
