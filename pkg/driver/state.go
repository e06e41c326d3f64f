package driver

import "fmt"

// State represents the lifecycle state of a device session
type State string

const (
	// StateClosed means that no device has been opened. In this state the
	// device handle and its channels are still unknown.
	StateClosed State = "closed"
	// StateOpened means that the default output device is known and at least
	// one of its channels is controllable.
	StateOpened State = "opened"
)

// Update updates current state, s, to next. If f fails to execute,
// s will stay unchanged. Otherwise, s will be updated to next
func (s *State) Update(next State, f func() error) error {
	checkFunc := s.toClosed
	if next == StateOpened {
		checkFunc = s.toOpened
	}

	err := checkFunc()
	if err != nil {
		return err
	}

	err = f()
	if err == nil {
		*s = next
	}
	return err
}

func (s *State) toOpened() error {
	if *s == StateOpened {
		return fmt.Errorf("invalid state: device is already opened")
	}
	return nil
}

func (s *State) toClosed() error {
	return nil
}
