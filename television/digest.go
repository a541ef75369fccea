// This file is part of GoBoy.
//
// GoBoy is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GoBoy is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GoBoy.  If not, see <https://www.gnu.org/licenses/>.

package television

import (
	"crypto/sha1"
	"fmt"
)

const (
	screenWidth  = 160
	screenHeight = 144
	pixelDepth   = 1 // one shade byte per pixel; no palette mapping needed for fingerprinting
)

// DigestScreen is a PixelOut-compatible sink that produces a single
// sha1 fingerprint per frame, chained from the previous frame's
// fingerprint so that two ROMs producing identical single frames but
// diverging earlier still diverge in digest. Used by regression tests
// that assert "this ROM's video output never changes" without storing
// actual images.
//
// Note that sha1 is fine here - this is a fingerprint, not a
// cryptographic task.
type DigestScreen struct {
	digest [sha1.Size]byte
	pixels []byte
}

// NewDigestScreen returns a digest screen with a zeroed initial chain
// value.
func NewDigestScreen() *DigestScreen {
	d := &DigestScreen{}
	d.pixels = make([]byte, len(d.digest)+screenWidth*screenHeight*pixelDepth)
	return d
}

// String returns the current chained digest as a hex string.
func (d *DigestScreen) String() string {
	return fmt.Sprintf("%x", d.digest)
}

// Reset zeroes the digest chain, starting a fresh fingerprint series.
func (d *DigestScreen) Reset() {
	for i := range d.digest {
		d.digest[i] = 0
	}
}

// PixelOut records one pixel's shade into the pending frame buffer.
// Matches the ppu.PixelOut signature.
func (d *DigestScreen) PixelOut(x, y int, shade byte) {
	i := len(d.digest) + y*screenWidth*pixelDepth + x*pixelDepth
	if i >= 0 && i < len(d.pixels) {
		d.pixels[i] = shade
	}
}

// EndFrame folds the pending frame into the chained digest. Call once
// per drained video frame.
func (d *DigestScreen) EndFrame() {
	copy(d.pixels, d.digest[:])
	d.digest = sha1.Sum(d.pixels)
}
