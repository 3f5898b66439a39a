package main

import (
	"fmt"
	"io"
	"strings"
)

const progressBarWidth = 40

// newProgressPrinter returns a Progress callback drawing a single-line bar
// that restarts for each agent.
func newProgressPrinter(w io.Writer) func(agentID string, step, total int) {
	lastAgent := ""
	return func(agentID string, step, total int) {
		if agentID != lastAgent {
			if lastAgent != "" {
				fmt.Fprintln(w)
			}
			lastAgent = agentID
		}
		filled := 0
		if total > 0 {
			filled = step * progressBarWidth / total
		}
		if filled > progressBarWidth {
			filled = progressBarWidth
		}
		bar := strings.Repeat("#", filled) + strings.Repeat("-", progressBarWidth-filled)
		fmt.Fprintf(w, "\r%s [%s] %d/%d", agentID, bar, step, total)
	}
}
