package assert

import (
	"maps"
	"slices"
	"testing"
)

func Equal[T comparable](t *testing.T, got, want T) {
	t.Helper()
	if got != want {
		t.Errorf("got '%v', wanted '%v'", got, want)
	}
}

func True(t *testing.T, got bool, what string) {
	t.Helper()
	if !got {
		t.Errorf("expected true: %s", what)
	}
}

func IsError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Errorf("got error, err=%s", err)
	}
}

func HasError(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Errorf("expected an error, got nil")
	}
}

func SliceEqual[T comparable](t *testing.T, got, want []T) {
	t.Helper()
	if !slices.Equal(got, want) {
		t.Errorf("got '%v' (len=%v), wanted '%v'(len=%v)", got, len(got), want, len(want))
	}
}

func MapEqual[K, V comparable](t *testing.T, got, want map[K]V) {
	t.Helper()
	if !maps.Equal(got, want) {
		t.Errorf("got '%v' (len=%v), wanted '%v'(len=%v)", got, len(got), want, len(want))
	}
}
