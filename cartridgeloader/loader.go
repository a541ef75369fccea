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

package cartridgeloader

import (
	"crypto/sha1"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"

	"github.com/hexedcoder/goboy/curated"
)

// MaxCartridgeSize is the largest ROM image this emulator will read. Per
// spec.md's Non-goals, memory bank controllers are not emulated: a ROM
// larger than this is truncated and only its first bank is used.
const MaxCartridgeSize = 0x8000 // 32 KiB, addresses 0x0000-0x7FFF

// BootROMSize is the fixed size of a DMG boot ROM image.
const BootROMSize = 0x100

// Loader describes a cartridge ROM to attach to the bus. Unlike a real
// multi-cart-format loader, there is exactly one mapping: the raw bytes of
// the file land at address 0x0000, in file order, truncated to
// MaxCartridgeSize.
type Loader struct {
	// Filename of the cartridge to load. May be a local path or an http(s)
	// URL - the two schemes acceptance test harnesses most often need.
	Filename string

	// expected hash of the loaded cartridge. empty string means the hash is
	// unknown and need not be validated. after a successful Load() this
	// field holds the hash of the data actually loaded.
	Hash string

	// Data holds the loaded bytes after Load() succeeds.
	Data []byte

	// Truncated is set by Load() if the source file was larger than
	// MaxCartridgeSize and had to be cut down to size.
	Truncated bool
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string) Loader {
	return Loader{Filename: filename}
}

// ShortName returns a shortened version of the cartridge filename, useful
// for window titles and log tags.
func (cl Loader) ShortName() string {
	short := path.Base(cl.Filename)
	return strings.TrimSuffix(short, path.Ext(cl.Filename))
}

// HasLoaded returns true if Load() has been successfully called.
func (cl Loader) HasLoaded() bool {
	return len(cl.Data) > 0
}

// Load reads the cartridge data. Loader filenames with a recognised URL
// scheme use that method to load the data; otherwise the filename is
// treated as a local path. Data larger than MaxCartridgeSize is truncated.
func (cl *Loader) Load() error {
	if len(cl.Data) > 0 {
		return nil
	}

	raw, err := fetch(cl.Filename)
	if err != nil {
		return curated.Errorf("cartridgeloader: %v", err)
	}

	if len(raw) == 0 {
		return curated.Errorf("cartridgeloader: %v", "cartridge file is empty")
	}

	if len(raw) > MaxCartridgeSize {
		raw = raw[:MaxCartridgeSize]
		cl.Truncated = true
	}

	hash := fmt.Sprintf("%x", sha1.Sum(raw))
	if cl.Hash != "" && cl.Hash != hash {
		return curated.Errorf("cartridgeloader: %v", "unexpected hash value")
	}
	cl.Data = raw
	cl.Hash = hash

	return nil
}

// BootLoader describes an optional 256-byte boot ROM image.
type BootLoader struct {
	Filename string
	Data     []byte
}

// Load reads the boot ROM. Unlike cartridge loading, the size must match
// BootROMSize exactly - a boot ROM is mapped statically over 0x0000-0x00FF
// and there is no sensible way to truncate or pad it.
func (bl *BootLoader) Load() error {
	if bl.Filename == "" {
		return nil
	}

	raw, err := fetch(bl.Filename)
	if err != nil {
		return curated.Errorf("cartridgeloader: %v", err)
	}

	if len(raw) != BootROMSize {
		return curated.Errorf("cartridgeloader: %v", fmt.Sprintf("boot ROM must be exactly %d bytes, got %d", BootROMSize, len(raw)))
	}

	bl.Data = raw
	return nil
}

// fetch loads raw bytes from a local path or an http(s) URL.
func fetch(filename string) ([]byte, error) {
	scheme := "file"
	if u, err := url.Parse(filename); err == nil && u.Scheme != "" {
		scheme = u.Scheme
	}

	switch scheme {
	case "http", "https":
		resp, err := http.Get(filename)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()
		return ioutil.ReadAll(resp.Body)

	default:
		f, err := os.Open(filename)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return ioutil.ReadAll(f)
	}
}
