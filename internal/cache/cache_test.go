package cache

import (
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cache.sqlite")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestGetMissOnEmptyStore(t *testing.T) {
	s := openTestStore(t)
	_, ok, err := s.Get(Key([]byte(`["+",1,2]`), "number"))
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if ok {
		t.Fatalf("expected a miss")
	}
}

func TestPutThenGetRoundTrips(t *testing.T) {
	s := openTestStore(t)
	key := Key([]byte(`["+",1,2]`), "number")
	err := s.Put(key, Entry{
		ResultType:        "number",
		IsFeatureConstant: true,
		IsZoomConstant:    true,
		Errors:            nil,
	})
	if err != nil {
		t.Fatalf("Put: %v", err)
	}

	got, ok, err := s.Get(key)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !ok {
		t.Fatalf("expected a hit")
	}
	if got.ResultType != "number" || !got.IsFeatureConstant || !got.IsZoomConstant {
		t.Fatalf("got %+v", got)
	}
	if got.ID == "" {
		t.Fatalf("expected Put to stamp a correlation ID")
	}
}

func TestPutOverwritesExistingKey(t *testing.T) {
	s := openTestStore(t)
	key := Key([]byte(`["+",1,2]`), "number")
	if err := s.Put(key, Entry{ResultType: "number"}); err != nil {
		t.Fatalf("Put 1: %v", err)
	}
	firstGot, _, _ := s.Get(key)

	if err := s.Put(key, Entry{ResultType: "number", Errors: []string{"oops"}}); err != nil {
		t.Fatalf("Put 2: %v", err)
	}
	secondGot, ok, err := s.Get(key)
	if err != nil || !ok {
		t.Fatalf("Get: ok=%v err=%v", ok, err)
	}
	if len(secondGot.Errors) != 1 || secondGot.Errors[0] != "oops" {
		t.Fatalf("got %+v", secondGot)
	}
	if secondGot.ID == firstGot.ID {
		t.Fatalf("expected a fresh correlation ID on overwrite")
	}
}
