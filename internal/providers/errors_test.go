package providers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"
)

func TestRemoteQueryErrorString(t *testing.T) {
	err := &RemoteQueryError{Provider: "apinba", Errors: `{"date":"invalid"}`}
	if !strings.Contains(err.Error(), `{"date":"invalid"}`) {
		t.Fatalf("expected upstream errors in message, got %q", err.Error())
	}

	wrapped := fmt.Errorf("fetch games: %w", err)
	rq, ok := AsRemoteQueryError(wrapped)
	if !ok || rq != err {
		t.Fatalf("expected to unwrap remote query error")
	}
	if _, ok := AsRemoteQueryError(errors.New("other")); ok {
		t.Fatalf("expected plain error not to match")
	}
}

func TestRemoteTransportErrorString(t *testing.T) {
	status := &RemoteTransportError{Provider: "apinba", StatusCode: 403, Body: "forbidden"}
	if got := status.Error(); !strings.Contains(got, "403") || !strings.Contains(got, "forbidden") {
		t.Fatalf("expected status and body in message, got %q", got)
	}
	if status.Unwrap() != nil {
		t.Fatalf("expected no cause for status errors")
	}

	rt, ok := AsRemoteTransportError(fmt.Errorf("wrapped: %w", status))
	if !ok || rt.StatusCode != 403 {
		t.Fatalf("expected to unwrap transport error")
	}
}

func TestNewExchangeErrorIsBadGatewayAndUnwraps(t *testing.T) {
	err := NewExchangeError("apinba", context.DeadlineExceeded)
	if err.StatusCode != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", err.StatusCode)
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected cause to be preserved")
	}
	if !strings.Contains(err.Error(), "deadline") {
		t.Fatalf("expected cause in message, got %q", err.Error())
	}
}
