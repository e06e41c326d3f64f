package coreaudio

import (
	"errors"
	"testing"

	"github.com/pion/volumectl/pkg/driver"
	"github.com/pion/volumectl/pkg/driver/availability"
)

func TestRegistration(t *testing.T) {
	_, registered := driver.GetManager().Lookup("coreaudio")

	if !native {
		if registered {
			t.Fatal("coreaudio must not be registered on this platform")
		}
		if Available() {
			t.Fatal("expected coreaudio to be unavailable")
		}
		if err := Check(); !errors.Is(err, availability.ErrUnimplemented) {
			t.Fatalf("expected ErrUnimplemented, got %v", err)
		}
		return
	}

	if !registered {
		t.Fatal("expected coreaudio to be registered")
	}
	if !Available() {
		t.Fatal("expected coreaudio to be available")
	}
	entry, ok := driver.GetManager().Preferred()
	if !ok || entry.Info.Label != "coreaudio" {
		t.Fatalf("expected coreaudio to be the preferred service, got %+v", entry.Info)
	}
}
