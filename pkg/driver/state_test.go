package driver

import (
	"errors"
	"testing"
)

var noop = func() error { return nil }

func TestUpdate1(t *testing.T) {
	s := StateClosed
	s.Update(StateOpened, noop)

	if s != StateOpened {
		t.Fatalf("expected %s, got %s", StateOpened, s)
	}

	s.Update(StateClosed, noop)

	if s != StateClosed {
		t.Fatalf("expected %s, got %s", StateClosed, s)
	}

	s.Update(StateOpened, noop)

	if s != StateOpened {
		t.Fatalf("expected %s, got %s", StateOpened, s)
	}
}

func TestUpdate2(t *testing.T) {
	s := StateOpened
	if err := s.Update(StateOpened, noop); err == nil {
		t.Fatal("expected an error when opening twice")
	}

	s = StateClosed
	failure := errors.New("failed")
	if err := s.Update(StateOpened, func() error { return failure }); err != failure {
		t.Fatalf("expected %v, got %v", failure, err)
	}
	if s != StateClosed {
		t.Fatalf("expected state to stay %s, got %s", StateClosed, s)
	}
}
