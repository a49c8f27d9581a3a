package game

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/iburimskiy/glowfield/internal/ui"
)

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// formatDuration formats a duration as MM:SS
func formatDuration(d time.Duration) string {
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

// itemsFromPaths names each gallery entry after its file.
func itemsFromPaths(paths []string) []ui.Item {
	items := make([]ui.Item, 0, len(paths))
	for _, p := range paths {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		base := filepath.Base(p)
		items = append(items, ui.Item{ID: strings.TrimSuffix(base, filepath.Ext(base)), Image: p})
	}
	return items
}
