package kvstore

import (
	"context"
	"reflect"
	"testing"
)

func stores(t *testing.T) map[string]Store {
	t.Helper()

	file, err := NewFile(t.TempDir())
	if err != nil {
		t.Fatalf("NewFile: %v", err)
	}
	return map[string]Store{
		"memory": NewMemory(),
		"file":   file,
	}
}

func TestStore_RoundTrip(t *testing.T) {
	ctx := context.Background()

	type record struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	}
	want := []record{{1, "first"}, {2, "second"}}

	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			Put(ctx, s, "beneficiaries", want)

			got := Get(ctx, s, "beneficiaries", []record{})
			if !reflect.DeepEqual(got, want) {
				t.Errorf("round trip: got %+v, want %+v", got, want)
			}
		})
	}
}

func TestGet_MissingKeyReturnsDefault(t *testing.T) {
	ctx := context.Background()

	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			got := Get(ctx, s, "absent", []string{"fallback"})
			if len(got) != 1 || got[0] != "fallback" {
				t.Errorf("expected default value, got %v", got)
			}
		})
	}
}

func TestGet_CorruptValueReturnsDefault(t *testing.T) {
	ctx := context.Background()

	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			if err := s.Save(ctx, "broken", []byte("{not json")); err != nil {
				t.Fatalf("Save: %v", err)
			}

			got := Get(ctx, s, "broken", 42)
			if got != 42 {
				t.Errorf("expected default 42 on parse failure, got %d", got)
			}
		})
	}
}

func TestStore_RemoveAndClear(t *testing.T) {
	ctx := context.Background()

	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			Put(ctx, s, "a", 1)
			Put(ctx, s, "b", 2)

			if err := s.Remove(ctx, "a"); err != nil {
				t.Fatalf("Remove: %v", err)
			}
			if _, ok, _ := s.Load(ctx, "a"); ok {
				t.Error("expected key to be gone after Remove")
			}

			// Removing an absent key is not an error.
			if err := s.Remove(ctx, "a"); err != nil {
				t.Errorf("Remove absent key: %v", err)
			}

			if err := s.Clear(ctx); err != nil {
				t.Fatalf("Clear: %v", err)
			}
			if _, ok, _ := s.Load(ctx, "b"); ok {
				t.Error("expected all keys to be gone after Clear")
			}
		})
	}
}

func TestFile_RejectsUnsafeKeys(t *testing.T) {
	ctx := context.Background()

	f, err := NewFile(t.TempDir())
	if err != nil {
		t.Fatalf("NewFile: %v", err)
	}

	for _, key := range []string{"../escape", "a/b", "", "dot.dot"} {
		if err := f.Save(ctx, key, []byte("{}")); err == nil {
			t.Errorf("expected Save(%q) to fail", key)
		}
		if _, _, err := f.Load(ctx, key); err == nil {
			t.Errorf("expected Load(%q) to fail", key)
		}
	}
}

func TestOpen_SelectsDriver(t *testing.T) {
	ctx := context.Background()

	s, err := Open(ctx, Options{Driver: DriverMemory})
	if err != nil {
		t.Fatalf("Open memory: %v", err)
	}
	if _, ok := s.(*Memory); !ok {
		t.Errorf("expected *Memory, got %T", s)
	}

	s, err = Open(ctx, Options{Driver: DriverFile, DataDir: t.TempDir()})
	if err != nil {
		t.Fatalf("Open file: %v", err)
	}
	if _, ok := s.(*File); !ok {
		t.Errorf("expected *File, got %T", s)
	}

	if _, err := Open(ctx, Options{Driver: "bogus"}); err == nil {
		t.Error("expected error for unknown driver")
	}
}
