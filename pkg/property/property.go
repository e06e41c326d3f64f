// Package property describes how a controllable device property is addressed
// on the native audio service.
package property

import "fmt"

// Selector identifies which property of an audio object is addressed. Values
// are four-character codes, the same ones the native audio service uses.
type Selector uint32

// Scope identifies which part of an audio object a property belongs to.
type Scope uint32

// Element identifies a channel element. Element 0 is the main element.
type Element uint32

const (
	// SelectorVolume addresses the scalar (0.0-1.0) volume of a channel.
	SelectorVolume Selector = 'v'<<24 | 'o'<<16 | 'l'<<8 | 'm'
	// SelectorMute addresses the mute switch of a channel.
	SelectorMute Selector = 'm'<<24 | 'u'<<16 | 't'<<8 | 'e'
	// SelectorDefaultOutputDevice addresses the system wide default output device.
	SelectorDefaultOutputDevice Selector = 'd'<<24 | 'O'<<16 | 'u'<<8 | 't'
)

const (
	// ScopeOutput is the output side of a device.
	ScopeOutput Scope = 'o'<<24 | 'u'<<16 | 't'<<8 | 'p'
	// ScopeGlobal is the object as a whole.
	ScopeGlobal Scope = 'g'<<24 | 'l'<<16 | 'o'<<8 | 'b'
)

// ElementMain is the element global properties live on.
const ElementMain Element = 0

// Address is a fully specified property address.
type Address struct {
	Selector Selector
	Scope    Scope
	Element  Element
}

func (a Address) String() string {
	return fmt.Sprintf("%s/%s/%d", a.Selector, a.Scope, a.Element)
}

// Kind is the closed set of properties this module knows how to address.
type Kind int

// Kind definitions.
const (
	Volume Kind = iota + 1
	Mute
	DefaultOutputDevice
)

// Address returns the address of k on the given channel element. Global
// properties ignore element and always use ElementMain. An unknown Kind
// yields the zero Address.
func (k Kind) Address(element Element) Address {
	switch k {
	case Volume:
		return Address{Selector: SelectorVolume, Scope: ScopeOutput, Element: element}
	case Mute:
		return Address{Selector: SelectorMute, Scope: ScopeOutput, Element: element}
	case DefaultOutputDevice:
		return Address{Selector: SelectorDefaultOutputDevice, Scope: ScopeGlobal, Element: ElementMain}
	default:
		return Address{}
	}
}

// PerChannel reports whether k is addressed per channel element.
func (k Kind) PerChannel() bool {
	return k == Volume || k == Mute
}

func (k Kind) String() string {
	switch k {
	case Volume:
		return "volume"
	case Mute:
		return "mute"
	case DefaultOutputDevice:
		return "default output device"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

func (s Selector) String() string { return fourCC(uint32(s)) }

func (s Scope) String() string { return fourCC(uint32(s)) }

func fourCC(v uint32) string {
	b := []byte{byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v)}
	for _, c := range b {
		if c < ' ' || c > '~' {
			return fmt.Sprintf("0x%08x", v)
		}
	}
	return string(b)
}
