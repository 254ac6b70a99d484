/*
 * MIT License
 *
 * Copyright (c) 2024 Nicolas JUHEL
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 *
 */

package imaging

import "errors"

// ErrPaletteTooLarge is returned once a 257th distinct color is seen.
var ErrPaletteTooLarge = errors.New("imaging: palette exceeds 256 colors")

const paletteSlots = 4096
const paletteCap = 256

// Palette is an open-addressed set of up to 256 distinct 24-bit RGB
// colors, used to decide whether a surface can be downgraded to a
// paletted image instead of sent as full RGBA.
type Palette struct {
	slots [paletteSlots]int32 // -1 = empty, else the color stored there
	used  [paletteSlots]bool
	count int
}

// NewPalette returns an empty Palette.
func NewPalette() *Palette {
	p := &Palette{}
	for i := range p.slots {
		p.slots[i] = -1
	}
	return p
}

// Add inserts rgb (a 24-bit color) into the palette if not already
// present. It returns ErrPaletteTooLarge without mutating state once a
// 257th distinct color would be required.
func (p *Palette) Add(rgb uint32) error {
	idx := int(rgb) % paletteSlots

	for i := 0; i < paletteSlots; i++ {
		slot := (idx + i) % paletteSlots
		if !p.used[slot] {
			if p.count >= paletteCap {
				return ErrPaletteTooLarge
			}
			p.used[slot] = true
			p.slots[slot] = int32(rgb)
			p.count++
			return nil
		}
		if uint32(p.slots[slot]) == rgb {
			return nil
		}
	}
	return ErrPaletteTooLarge
}

// Len returns the number of distinct colors currently held.
func (p *Palette) Len() int {
	return p.count
}

// Colors returns the distinct colors added so far, in slot order.
func (p *Palette) Colors() []uint32 {
	out := make([]uint32, 0, p.count)
	for i, used := range p.used {
		if used {
			out = append(out, uint32(p.slots[i]))
		}
	}
	return out
}
