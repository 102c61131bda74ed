// Package profile classifies byte values and maps the classes to terminal
// styles. Classification is a fixed table lookup; the colour scheme applied
// on top of it is a named Profile picked from a registry, so new schemes can
// be added without touching any formatting code.
package profile

import (
	"errors"
	"fmt"
	"sort"
)

// ByteClass is the semantic class of a single byte value. Every value
// 0x00-0xff belongs to exactly one class.
type ByteClass int

const (
	ClassNull ByteClass = iota
	ClassWhitespace
	ClassPrintable
	ClassControl
	ClassHighBit
	ClassExtended

	numClasses
)

// String returns the class name, for debug output and profile listings.
func (c ByteClass) String() string {
	switch c {
	case ClassNull:
		return "null"
	case ClassWhitespace:
		return "whitespace"
	case ClassPrintable:
		return "printable"
	case ClassControl:
		return "control"
	case ClassHighBit:
		return "highbit"
	case ClassExtended:
		return "extended"
	}
	return fmt.Sprintf("ByteClass(%d)", int(c))
}

// classTable maps every byte value to its class. Built once at init so
// Classify is a plain lookup.
var classTable [256]ByteClass

func init() {
	for i := range classTable {
		classTable[i] = classOf(byte(i))
	}
}

func classOf(b byte) ByteClass {
	switch {
	case b == 0x00:
		return ClassNull
	case b == 0x09 || b == 0x0a || b == 0x0b || b == 0x0c || b == 0x0d || b == 0x20:
		return ClassWhitespace
	case b >= 0x21 && b <= 0x7e:
		return ClassPrintable
	case b < 0x80: // remaining C0 controls plus DEL
		return ClassControl
	case b < 0xa0: // 0x80-0x9f, the C1 range
		return ClassHighBit
	default:
		return ClassExtended
	}
}

// Classify returns the class of b. Total and pure: same input, same class.
func Classify(b byte) ByteClass {
	return classTable[b]
}

// Display returns the character used for b in the ASCII column: the byte
// itself when printable (space included), '.' otherwise.
func Display(b byte) byte {
	if b >= 0x20 && b <= 0x7e {
		return b
	}
	return '.'
}

// Style is an ANSI SGR prefix such as "\x1b[96m". The empty Style renders
// nothing.
type Style string

// Reset clears all SGR attributes.
const Reset = "\x1b[0m"

// Profile is a named colour scheme: one Style per ByteClass.
type Profile struct {
	Name   string
	styles [numClasses]Style
}

// Style returns the style for class c. Total: classes outside the known
// range fall back to the printable entry.
func (p *Profile) Style(c ByteClass) Style {
	if c < 0 || c >= numClasses {
		c = ClassPrintable
	}
	return p.styles[c]
}

// ErrUnknownProfile is returned by Lookup for names never registered.
var ErrUnknownProfile = errors.New("unknown colour profile")

var registry = map[string]*Profile{}

// Register adds p to the registry, replacing any profile with the same name.
func Register(p *Profile) {
	registry[p.Name] = p
}

// Lookup returns the profile registered under name.
func Lookup(name string) (*Profile, error) {
	p, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownProfile, name)
	}
	return p, nil
}

// Names returns all registered profile names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
