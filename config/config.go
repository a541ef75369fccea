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

// Package config is a small preference store, modelled on the teacher's
// prefs package but trimmed to the handful of values this emulator's host
// actually needs: a boot ROM path, a palette choice, the test-log LY
// override and whether registers power on to random values (as real
// hardware does) or to zero (useful for deterministic test runs).
//
// Preferences are held in memory for the lifetime of the process and
// persisted to a JSON file on Save(). Save() writes only when called,
// never implicitly. The CLI neither loads nor saves a preference file: it
// starts from Default() and applies its own flags.
package config

import (
	"encoding/json"
	"os"

	"github.com/hexedcoder/goboy/curated"
)

// Palette names recognised by the -palette flag and the Palette field.
const (
	PaletteGreen = "green"
	PaletteGrey  = "grey"
)

// Config holds every preference the host CLI exposes.
type Config struct {
	BootROM       string `json:"boot_rom"`
	Palette       string `json:"palette"`
	TestLogMode   bool   `json:"test_log_mode"`
	RandomPowerOn bool   `json:"random_power_on"`
}

// Default returns the preferences a fresh install would have.
func Default() Config {
	return Config{
		Palette:       PaletteGreen,
		TestLogMode:   false,
		RandomPowerOn: false,
	}
}

// Load reads preferences from path. A missing file is not an error - the
// defaults are returned instead, matching the teacher's convention that a
// virgin installation should never fail to start.
func Load(path string) (Config, error) {
	cfg := Default()

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, curated.Errorf("config: %v", err)
	}
	defer f.Close()

	if err := json.NewDecoder(f).Decode(&cfg); err != nil {
		return cfg, curated.Errorf("config: %v", err)
	}

	return cfg, nil
}

// Save writes preferences to path as JSON, creating the file if necessary.
func (c Config) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return curated.Errorf("config: %v", err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(c); err != nil {
		return curated.Errorf("config: %v", err)
	}

	return nil
}
