//go:build !unix

package tui

import "time"

// waitReadable has no poll(2) to lean on here; report ready and let Read block.
func waitReadable(_ int, _ time.Duration) (bool, error) {
	return true, nil
}
