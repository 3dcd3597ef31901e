package notification

import (
	"context"
	"errors"
	"reflect"
	"testing"
)

// fakeSender records what it was asked to send and replays scripted outcomes.
type fakeSender struct {
	calls    [][]string
	outcomes []SendOutcome
	err      error
}

func (f *fakeSender) SendBatch(_ context.Context, tokens []string, _ PushMessage) ([]SendOutcome, error) {
	f.calls = append(f.calls, tokens)
	if f.err != nil {
		return nil, f.err
	}
	if f.outcomes != nil {
		return f.outcomes, nil
	}
	out := make([]SendOutcome, 0, len(tokens))
	for _, t := range tokens {
		out = append(out, SendOutcome{Token: t, Success: true, MessageID: "mid-" + t})
	}
	return out, nil
}

func TestDispatchWithoutSenderIsNoOp(t *testing.T) {
	d := NewDispatcher(nil, nil)
	report := d.Dispatch(context.Background(), []string{"tok-a"}, PushMessage{Title: "hi"})
	if report.Attempted {
		t.Fatal("dispatch without a sender must not be attempted")
	}
}

func TestDispatchEmptyTokenList(t *testing.T) {
	sender := &fakeSender{}
	d := NewDispatcher(sender, nil)

	report := d.Dispatch(context.Background(), nil, PushMessage{Title: "hi"})
	if !report.Attempted {
		t.Fatal("empty dispatch should still count as attempted")
	}
	if report.SuccessCount != 0 || report.FailureCount != 0 {
		t.Fatalf("want zero result, got %+v", report)
	}
	if len(sender.calls) != 0 {
		t.Fatal("provider must not be called for an empty token list")
	}
}

func TestDispatchDeduplicatesAndFiltersTokens(t *testing.T) {
	sender := &fakeSender{}
	d := NewDispatcher(sender, nil)

	d.Dispatch(context.Background(), []string{"tok-a", "", "tok-b", "tok-a"}, PushMessage{Title: "hi"})
	if len(sender.calls) != 1 {
		t.Fatalf("want 1 provider call, got %d", len(sender.calls))
	}
	if want := []string{"tok-a", "tok-b"}; !reflect.DeepEqual(sender.calls[0], want) {
		t.Fatalf("sent tokens = %v, want %v", sender.calls[0], want)
	}
}

func TestDispatchClassifiesPermanentFailures(t *testing.T) {
	sender := &fakeSender{outcomes: []SendOutcome{
		{Token: "tok-a", Success: true, MessageID: "m1"},
		{Token: "tok-b", ErrCode: CodeUnregistered},
		{Token: "tok-c", ErrCode: CodeInternal},
		{Token: "tok-d", ErrCode: CodeInvalidToken},
	}}
	d := NewDispatcher(sender, nil)

	report := d.Dispatch(context.Background(), []string{"tok-a", "tok-b", "tok-c", "tok-d"}, PushMessage{Title: "hi"})
	if report.SuccessCount != 1 || report.FailureCount != 3 {
		t.Fatalf("counts = %d/%d, want 1/3", report.SuccessCount, report.FailureCount)
	}
	if want := []string{"tok-b", "tok-d"}; !reflect.DeepEqual(report.DeadTokens, want) {
		t.Fatalf("dead tokens = %v, want %v", report.DeadTokens, want)
	}
}

func TestDispatchProviderErrorIsCaptured(t *testing.T) {
	sender := &fakeSender{err: errors.New("provider offline")}
	d := NewDispatcher(sender, nil)

	report := d.Dispatch(context.Background(), []string{"tok-a", "tok-b"}, PushMessage{Title: "hi"})
	if !report.Attempted {
		t.Fatal("dispatch was attempted")
	}
	if report.FailureCount != 2 {
		t.Fatalf("failure count = %d, want 2", report.FailureCount)
	}
	if report.Error == "" {
		t.Fatal("provider error should be recorded in the report")
	}
	if len(report.DeadTokens) != 0 {
		t.Fatal("a transport-level error must not mark tokens dead")
	}
}
