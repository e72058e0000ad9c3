package artifact

import (
	"fmt"
	"os"
)

// ChooseBest picks the candidate with the newest modification time. Ties go to the
// first one in the list.
func ChooseBest(paths []string) (string, error) {
	best := ""
	var bestMod int64
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return "", fmt.Errorf("failed to stat artifact candidate %s: %w", p, err)
		}
		mod := info.ModTime().UnixNano()
		if best == "" || mod > bestMod {
			best = p
			bestMod = mod
		}
	}
	if best == "" {
		return "", fmt.Errorf("no candidates to choose from")
	}
	return best, nil
}
