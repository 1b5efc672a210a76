package tray

import (
	"testing"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/status"
)

func assertLocalized(t *testing.T, err error, reason, locale, message string) {
	t.Helper()
	st, ok := status.FromError(err)
	if !ok {
		t.Fatalf("expected status error, got %v", err)
	}
	var (
		info      *errdetails.ErrorInfo
		localized *errdetails.LocalizedMessage
	)
	for _, detail := range st.Details() {
		switch d := detail.(type) {
		case *errdetails.ErrorInfo:
			info = d
		case *errdetails.LocalizedMessage:
			localized = d
		}
	}
	if info == nil || info.GetReason() != reason {
		t.Fatalf("error info = %v, want reason %s", info, reason)
	}
	if localized == nil || localized.GetLocale() != locale || localized.GetMessage() != message {
		t.Fatalf("localized = %v, want %s %q", localized, locale, message)
	}
}
