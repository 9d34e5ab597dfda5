package klipper

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Discover lists serial devices under root (normally "/dev") that may
// host a printer MCU. Stable by-id paths are preferred; raw ttyUSB and
// ttyACM nodes are only reported when no stable path exists.
func Discover(root string) []string {
	for _, sub := range []string{"serial/by-id", "serial/by-path"} {
		entries, err := os.ReadDir(filepath.Join(root, sub))
		if err != nil {
			continue
		}
		var devices []string
		for _, e := range entries {
			devices = append(devices, filepath.Join(root, sub, e.Name()))
		}
		if len(devices) > 0 {
			return devices
		}
	}

	var devices []string
	for _, pattern := range []string{"ttyUSB*", "ttyACM*"} {
		matches, _ := filepath.Glob(filepath.Join(root, pattern))
		devices = append(devices, matches...)
	}
	return devices
}

// CheckDevice verifies that a device path still exists before it is
// handed to the flash command. Boards drop off the bus when they are
// power-cycled between discovery and flashing.
func CheckDevice(path string) error {
	if path == "" {
		return errors.New("no device selected")
	}
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("device %s: %w", path, err)
	}
	return nil
}
