package registry

import (
	"errors"
	"strings"
	"testing"
)

func TestRegisterListCreate(t *testing.T) {
	boom := errors.New("boom")
	Register("zz-test-broken", "Broken", func(Deps) (Game, error) {
		return nil, boom
	})

	if !Exists("zz-test-broken") {
		t.Fatal("registered game should exist")
	}
	if Exists("zz-test-missing") {
		t.Error("unregistered game should not exist")
	}
	if got := Title("zz-test-broken"); got != "Broken" {
		t.Errorf("Title = %q, want Broken", got)
	}
	if got := Title("zz-test-missing"); got != "zz-test-missing" {
		t.Errorf("Title of unknown game = %q, want its id", got)
	}

	found := false
	list := List()
	for i, info := range list {
		if info.ID == "zz-test-broken" {
			found = true
		}
		if i > 0 && list[i-1].ID > info.ID {
			t.Errorf("List not sorted: %q before %q", list[i-1].ID, info.ID)
		}
	}
	if !found {
		t.Error("List should contain the registered game")
	}

	if _, err := Create("zz-test-broken", Deps{}); !errors.Is(err, boom) {
		t.Errorf("Create error = %v, want wrapped factory error", err)
	}
	if _, err := Create("zz-test-missing", Deps{}); err == nil || !strings.Contains(err.Error(), "unknown game") {
		t.Errorf("Create unknown = %v, want unknown game error", err)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz-test-dup", "Dup", func(Deps) (Game, error) { return nil, nil })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("zz-test-dup", "Dup", func(Deps) (Game, error) { return nil, nil })
}
