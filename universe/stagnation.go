package universe

import (
	"crypto/md5"
	"fmt"
)

// historyDepth is how many recent fingerprints are kept for cycle detection
const historyDepth = 5

// Population returns the total number of living cells
func (u *Universe) Population() (count int) {
	for _, c := range u.cells {
		count += int(c)
	}
	return
}

// Hash returns an MD5 fingerprint of the current grid state
func (u *Universe) Hash() string {
	h := md5.New()
	for _, c := range u.cells {
		h.Write([]byte{byte(c)})
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// UpdateHistory records the current state's fingerprint, keeping only the
// most recent entries
func (u *Universe) UpdateHistory() {
	u.history = append(u.history, u.Hash())
	if len(u.history) > historyDepth {
		u.history = u.history[1:]
	}
}

// IsStagnant reports whether the grid is stuck in a static state or a short
// cycle, judged against the recorded fingerprint history
func (u *Universe) IsStagnant() bool {
	if len(u.history) < 3 {
		return false
	}

	currentHash := u.Hash()
	for lookback := 1; lookback <= 3; lookback++ {
		if u.history[len(u.history)-lookback] == currentHash {
			return true
		}
	}
	return false
}
