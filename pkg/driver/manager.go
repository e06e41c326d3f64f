package driver

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
)

// FilterFn is being used to decide if a driver should be included in the
// query result.
type FilterFn func(Entry) bool

// FilterLabel returns a filter that matches drivers registered with label.
func FilterLabel(label string) FilterFn {
	return func(e Entry) bool {
		return e.Info.Label == label
	}
}

// FilterNot returns a filter function that negates the given filter.
func FilterNot(filter FilterFn) FilterFn {
	return func(e Entry) bool {
		return !filter(e)
	}
}

// FilterAnd returns a filter function that takes the output of filter1 && filter2 && ... && filterN
func FilterAnd(filters ...FilterFn) FilterFn {
	return func(e Entry) bool {
		for _, filter := range filters {
			if !filter(e) {
				return false
			}
		}
		return true
	}
}

// Entry is a registered Service together with its registry metadata.
type Entry struct {
	ID      string
	Info    Info
	Service Service
}

// Manager is a singleton to manage the audio services built into the binary
type Manager struct {
	entries map[string]Entry
}

var manager = &Manager{
	entries: make(map[string]Entry),
}

// GetManager gets manager singleton instance.
func GetManager() *Manager {
	return manager
}

// Register registers a service to manager. Registration is expected to
// happen from package init functions only.
func (m *Manager) Register(s Service, info Info) error {
	if s == nil {
		return fmt.Errorf("driver: nil service")
	}
	if len(m.Query(FilterLabel(info.Label))) > 0 {
		return fmt.Errorf("driver: label %q is already registered", info.Label)
	}

	id := uuid.NewString()
	m.entries[id] = Entry{ID: id, Info: info, Service: s}
	return nil
}

// Query queries by using f to filter drivers, and simply return the filtered
// results, highest priority first.
func (m *Manager) Query(f FilterFn) []Entry {
	results := make([]Entry, 0)
	for _, e := range m.entries {
		if f(e) {
			results = append(results, e)
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Info.Priority != results[j].Info.Priority {
			return results[i].Info.Priority > results[j].Info.Priority
		}
		return results[i].Info.Label < results[j].Info.Label
	})
	return results
}

// Lookup returns the service registered with label.
func (m *Manager) Lookup(label string) (Service, bool) {
	results := m.Query(FilterLabel(label))
	if len(results) == 0 {
		return nil, false
	}
	return results[0].Service, true
}

// Preferred returns the highest priority service.
func (m *Manager) Preferred() (Entry, bool) {
	results := m.Query(func(Entry) bool { return true })
	if len(results) == 0 {
		return Entry{}, false
	}
	return results[0], true
}
