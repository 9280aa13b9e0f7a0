// Package cliutil holds small terminal helpers shared by the demo
// command; nothing here is imported by the core engine.
package cliutil

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// ProgressBar renders an in-place terminal progress bar while the demo
// CLI's loader inserts rows one at a time. The loader is a single
// sequential loop (no worker goroutines), so unlike a build pipeline's
// progress bar this one has no background refresh goroutine, no atomic
// counter, and no mutex: Increment redraws itself, throttled by elapsed
// time so a large file doesn't repaint the terminal once per row.
type ProgressBar struct {
	total      int64
	processed  int64
	label      string
	barWidth   int
	start      time.Time
	lastDrawAt time.Time
}

// drawInterval bounds how often Increment repaints the bar.
const drawInterval = 100 * time.Millisecond

// NewProgressBar starts a progress bar labeled label, tracking total
// items.
func NewProgressBar(label string, total int64) *ProgressBar {
	return &ProgressBar{
		total:    total,
		label:    label,
		barWidth: 30,
		start:    time.Now(),
	}
}

// Increment marks one more item as processed and redraws the bar if
// enough time has passed since the last redraw. Not safe for concurrent
// use; the demo CLI's loader is single-threaded.
func (pb *ProgressBar) Increment() {
	pb.processed++
	now := time.Now()
	if now.Sub(pb.lastDrawAt) < drawInterval {
		return
	}
	pb.lastDrawAt = now
	pb.draw()
}

// Finish prints the final bar state with a trailing newline.
func (pb *ProgressBar) Finish() {
	pb.draw()
	fmt.Fprint(os.Stderr, "\n")
}

func (pb *ProgressBar) draw() {
	processed := pb.processed
	total := pb.total

	var frac float64
	if total > 0 {
		frac = float64(processed) / float64(total)
	}
	if frac > 1 {
		frac = 1
	}

	filled := int(float64(pb.barWidth) * frac)
	bar := strings.Repeat("█", filled) + strings.Repeat("░", pb.barWidth-filled)

	elapsed := time.Since(pb.start)
	rate := float64(0)
	if secs := elapsed.Seconds(); secs > 0 {
		rate = float64(processed) / secs
	}

	fmt.Fprintf(os.Stderr, "\r%s [%s] %3.0f%%  %d/%d items  %.0f/s  %s\033[K",
		pb.label, bar, frac*100, processed, total, rate, formatDuration(elapsed))
}

// formatDuration formats a duration concisely (e.g. "1m23s", "45s", "0s").
func formatDuration(d time.Duration) string {
	d = d.Truncate(time.Second)
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	m := int(d.Minutes())
	s := int(d.Seconds()) - m*60
	return fmt.Sprintf("%dm%02ds", m, s)
}
