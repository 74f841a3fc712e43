// =======================
// cube/color.go
// =======================

package cube

import (
	"fmt"
	"image/color"
	"strings"

	"golang.org/x/image/colornames"
)

const digitCount = 6

// ColorCycle walks a #RRGGBB stroke color one digit at a time, ping-ponging
// between #999999 and #000000. Digits only take the values 0-9.
type ColorCycle struct {
	digits  [digitCount]uint8
	shift   int // 1..6, position of the digit being walked
	reverse bool
}

// ParseColor builds a cycle from a CSS color name, #RGB or #RRGGBB.
// The hex form must only contain decimal digits.
func ParseColor(s string) (ColorCycle, error) {
	var c ColorCycle
	hex, err := normalizeHex(s)
	if err != nil {
		return c, err
	}
	for i := 0; i < digitCount; i++ {
		ch := hex[i+1]
		if ch < '0' || ch > '9' {
			return c, fmt.Errorf("color %q (%s) has non-decimal digit %q at position %d", s, hex, ch, i+1)
		}
		c.digits[i] = ch - '0'
	}
	c.shift = 1
	return c, nil
}

// ParseRGBA resolves a CSS color name, #RGB or #RRGGBB to an opaque color.
func ParseRGBA(s string) (color.RGBA, error) {
	hex, err := normalizeHex(s)
	if err != nil {
		return color.RGBA{}, err
	}
	var v [3]uint8
	for i := range v {
		hi, _ := hexValue(hex[1+2*i])
		lo, _ := hexValue(hex[2+2*i])
		v[i] = hi<<4 | lo
	}
	return color.RGBA{R: v[0], G: v[1], B: v[2], A: 0xff}, nil
}

func normalizeHex(s string) (string, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" {
		return "", fmt.Errorf("empty color")
	}
	if !strings.HasPrefix(name, "#") {
		rgba, ok := colornames.Map[name]
		if !ok {
			return "", fmt.Errorf("unknown color name %q", s)
		}
		return fmt.Sprintf("#%02x%02x%02x", rgba.R, rgba.G, rgba.B), nil
	}
	switch len(name) {
	case 4:
		name = string([]byte{'#', name[1], name[1], name[2], name[2], name[3], name[3]})
	case 7:
	default:
		return "", fmt.Errorf("color %q: want #RGB or #RRGGBB", s)
	}
	for i := 1; i < len(name); i++ {
		if _, ok := hexValue(name[i]); !ok {
			return "", fmt.Errorf("color %q: invalid hex digit %q", s, name[i])
		}
	}
	return name, nil
}

func hexValue(ch byte) (uint8, bool) {
	switch {
	case ch >= '0' && ch <= '9':
		return ch - '0', true
	case ch >= 'a' && ch <= 'f':
		return ch - 'a' + 10, true
	case ch >= 'A' && ch <= 'F':
		return ch - 'A' + 10, true
	}
	return 0, false
}

// SetDigit replaces the character at index. Indices outside s leave it
// unchanged.
func SetDigit(s string, index int, d byte) string {
	if index < 0 || index > len(s)-1 {
		return s
	}
	return s[:index] + string(d) + s[index+1:]
}

// String formats the cycle as #DDDDDD.
func (c ColorCycle) String() string {
	s := "#000000"
	for i, d := range c.digits {
		s = SetDigit(s, i+1, '0'+d)
	}
	return s
}

// RGBA reads the digit pairs as hex bytes.
func (c ColorCycle) RGBA() color.RGBA {
	return color.RGBA{
		R: c.digits[0]<<4 | c.digits[1],
		G: c.digits[2]<<4 | c.digits[3],
		B: c.digits[4]<<4 | c.digits[5],
		A: 0xff,
	}
}

// Shift returns the 1-based position of the digit being walked.
func (c ColorCycle) Shift() int { return c.shift }

// Reverse reports whether the cycle is walking toward #000000.
func (c ColorCycle) Reverse() bool { return c.reverse }

// Digit returns the value at 1-based position i, or 0 when out of range.
func (c ColorCycle) Digit(i int) uint8 {
	if i < 1 || i > digitCount {
		return 0
	}
	return c.digits[i-1]
}

// Step walks one digit toward the current extreme. It returns true when
// the extreme was reached at the last position and the direction flipped.
func (c *ColorCycle) Step() bool {
	if c.shift < 1 || c.shift > digitCount {
		c.shift = 1
	}
	limit := c.limit()
	c.seek(limit)

	d := &c.digits[c.shift-1]
	if *d != limit {
		if c.reverse {
			*d--
		} else {
			*d++
		}
	}

	if c.shift == digitCount && c.saturated(limit) {
		c.reverse = !c.reverse
		c.shift = 1
		return true
	}
	return false
}

func (c *ColorCycle) limit() uint8 {
	if c.reverse {
		return 0
	}
	return 9
}

// seek moves shift past digits already at limit, wrapping from the last
// position back to the first unless every digit is at limit.
func (c *ColorCycle) seek(limit uint8) {
	for c.digits[c.shift-1] == limit {
		if c.shift < digitCount {
			c.shift++
			continue
		}
		if c.saturated(limit) {
			return
		}
		c.shift = 1
	}
}

func (c *ColorCycle) saturated(limit uint8) bool {
	for _, d := range c.digits {
		if d != limit {
			return false
		}
	}
	return true
}
