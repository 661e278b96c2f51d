package services

import (
	"errors"
	"testing"
)

func TestWrapTagsMarker(t *testing.T) {
	base := errors.New("disk full")
	err := Wrap(ErrPersistence, "catalog", "save", "write index", base)
	if !errors.Is(err, ErrPersistence) {
		t.Error("expected persistence marker")
	}
	if !errors.Is(err, base) {
		t.Error("expected wrapped cause")
	}
	want := "persistence error: catalog: save: write index: disk full"
	if err.Error() != want {
		t.Errorf("message = %q, want %q", err.Error(), want)
	}
}

func TestWrapNilMarkerDefaultsTransient(t *testing.T) {
	err := Wrap(nil, "unify", "", "", nil)
	if !errors.Is(err, ErrTransient) {
		t.Error("expected transient marker")
	}
}

func TestWrapEmptyDetail(t *testing.T) {
	err := Wrap(ErrValidation, "", "", "", nil)
	if err.Error() != "validation error: service failure" {
		t.Errorf("unexpected message %q", err.Error())
	}
}

func TestFatal(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{Wrap(ErrConfiguration, "config", "load", "", nil), true},
		{Wrap(ErrPersistence, "catalog", "save", "", nil), true},
		{Wrap(ErrValidation, "sources", "decode", "", nil), false},
		{Wrap(ErrNotFound, "enrich", "lookup", "", nil), false},
		{errors.New("plain"), false},
	}
	for _, tt := range tests {
		if got := Fatal(tt.err); got != tt.want {
			t.Errorf("Fatal(%v) = %v, want %v", tt.err, got, tt.want)
		}
	}
}
