package registry

import (
	"fmt"
	"sync"
	"testing"

	"github.com/nelyj/command-line-reporter/pkg/errors"
)

// fakeStrategy stands in for the formatter factories stored in production use
type fakeStrategy struct {
	Name string
}

func TestNew(t *testing.T) {
	reg := New[fakeStrategy]()

	if reg == nil {
		t.Fatal("New() returned nil")
	}

	if reg.Count() != 0 {
		t.Errorf("New registry should be empty, got count %d", reg.Count())
	}
}

func TestRegister(t *testing.T) {
	reg := New[fakeStrategy]()

	t.Run("register valid item", func(t *testing.T) {
		err := reg.Register("nested", fakeStrategy{Name: "nested"})

		if err != nil {
			t.Fatalf("Register() error = %v, want nil", err)
		}

		if reg.Count() != 1 {
			t.Errorf("Count() = %d, want 1", reg.Count())
		}
	})

	t.Run("register with empty name", func(t *testing.T) {
		err := reg.Register("", fakeStrategy{})

		if !errors.IsErrorCode(err, errors.ErrInvalidArgument) {
			t.Errorf("Register() with empty name should return ErrInvalidArgument, got %v", err)
		}
	})

	t.Run("register duplicate", func(t *testing.T) {
		err := reg.Register("nested", fakeStrategy{Name: "other"})

		if !errors.IsErrorCode(err, errors.ErrAlreadyExists) {
			t.Errorf("Register() duplicate should return ErrAlreadyExists, got %v", err)
		}
	})
}

func TestGet(t *testing.T) {
	reg := New[fakeStrategy]()
	_ = reg.Register("progress", fakeStrategy{Name: "progress"})

	t.Run("get existing item", func(t *testing.T) {
		got, err := reg.Get("progress")

		if err != nil {
			t.Fatalf("Get() error = %v, want nil", err)
		}

		if got.Name != "progress" {
			t.Errorf("Get() = %+v, want name progress", got)
		}
	})

	t.Run("get missing item", func(t *testing.T) {
		_, err := reg.Get("bogus")

		if !errors.IsErrorCode(err, errors.ErrNotFound) {
			t.Errorf("Get() missing should return ErrNotFound, got %v", err)
		}
	})
}

func TestHasAndList(t *testing.T) {
	reg := New[fakeStrategy]()
	_ = reg.Register("progress", fakeStrategy{})
	_ = reg.Register("nested", fakeStrategy{})

	if !reg.Has("nested") {
		t.Error("Has(nested) = false, want true")
	}

	if reg.Has("bogus") {
		t.Error("Has(bogus) = true, want false")
	}

	names := reg.List()
	if len(names) != 2 || names[0] != "nested" || names[1] != "progress" {
		t.Errorf("List() = %v, want [nested progress]", names)
	}
}

func TestClear(t *testing.T) {
	reg := New[fakeStrategy]()
	_ = reg.Register("nested", fakeStrategy{})

	reg.Clear()

	if reg.Count() != 0 {
		t.Errorf("Count() after Clear = %d, want 0", reg.Count())
	}
}

func TestConcurrentAccess(t *testing.T) {
	reg := New[int]()
	var wg sync.WaitGroup

	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			name := fmt.Sprintf("item-%d", n)
			if err := reg.Register(name, n); err != nil {
				t.Errorf("Register(%s) error: %v", name, err)
			}
			if _, err := reg.Get(name); err != nil {
				t.Errorf("Get(%s) error: %v", name, err)
			}
		}(i)
	}

	wg.Wait()

	if reg.Count() != 32 {
		t.Errorf("Count() = %d, want 32", reg.Count())
	}
}

func TestMustRegisterPanics(t *testing.T) {
	reg := New[fakeStrategy]()
	MustRegister(reg, "nested", fakeStrategy{})

	defer func() {
		if recover() == nil {
			t.Error("MustRegister with duplicate name should panic")
		}
	}()

	MustRegister(reg, "nested", fakeStrategy{})
}
