package dashgate

import (
	"context"
	"errors"
	"testing"
)

func TestFromContextMissing(t *testing.T) {
	if _, err := FromContext(context.Background()); !errors.Is(err, ErrControllerMissing) {
		t.Fatalf("FromContext error = %v, want ErrControllerMissing", err)
	}
}

func TestFromContextRoundTrip(t *testing.T) {
	ctrl, _ := newTestController(t)

	ctx := WithController(context.Background(), ctrl)

	got, err := FromContext(ctx)
	if err != nil {
		t.Fatalf("FromContext failed: %v", err)
	}
	if got != ctrl {
		t.Fatal("FromContext returned a different controller")
	}
}

func TestFromContextNilController(t *testing.T) {
	ctx := WithController(context.Background(), nil)
	if _, err := FromContext(ctx); !errors.Is(err, ErrControllerMissing) {
		t.Fatalf("FromContext error = %v, want ErrControllerMissing", err)
	}
}
