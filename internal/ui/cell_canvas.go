package ui

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/cellbuf"
)

// Canvas wraps a cellbuf.Screen so lipgloss-rendered blocks can be stacked
// (board, overlays, toasts) before turning the frame back into a string for
// Bubble Tea.
type Canvas struct {
	screen *cellbuf.Screen
	writer *cellbuf.ScreenWriter
	width  int
	height int
}

func NewCanvas(width, height int) *Canvas {
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}
	screen := cellbuf.NewScreen(io.Discard, width, height, &cellbuf.ScreenOptions{
		ShowCursor: false,
		AltScreen:  false,
	})
	return &Canvas{
		screen: screen,
		writer: cellbuf.NewScreenWriter(screen),
		width:  width,
		height: height,
	}
}

// DrawStringAt writes the provided block starting at x,y. Each line starts at
// column x.
func (c *Canvas) DrawStringAt(x, y int, content string) {
	if content == "" || c == nil || c.writer == nil {
		return
	}
	c.drawBlockAt(x, y, splitOverlayLines(content))
}

// centerOverlay draws the block centered within the canvas, keeping the top
// and bottom margins (header and footer) visible.
func (c *Canvas) centerOverlay(overlay string, topMargin, bottomMargin int) {
	lines := splitOverlayLines(overlay)
	if len(lines) == 0 || c == nil {
		return
	}
	x, y := centeredOffsets(c.width, c.height, maxLineWidth(lines), len(lines), topMargin, bottomMargin)
	c.drawBlockAt(x, y, lines)
}

// bottomRightOverlay anchors the block to the bottom-right corner with the
// given padding from both edges.
func (c *Canvas) bottomRightOverlay(overlay string, padding int) {
	lines := splitOverlayLines(overlay)
	if len(lines) == 0 || c == nil {
		return
	}
	if padding < 0 {
		padding = 0
	}

	startY := c.height - len(lines) - padding
	if startY < 0 {
		startY = 0
	}
	startX := c.width - maxLineWidth(lines) - padding
	if startX < 0 {
		startX = 0
	}
	c.drawBlockAt(startX, startY, lines)
}

func (c *Canvas) drawBlockAt(x, y int, lines []string) {
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	for i, line := range lines {
		row := y + i
		if row >= c.height {
			break
		}
		if line == "" {
			continue
		}
		c.writer.PrintCropAt(x, row, line, "")
	}
}

// Render returns the composed frame as a newline-delimited string and
// releases the screen.
func (c *Canvas) Render() string {
	if c == nil || c.screen == nil {
		return ""
	}
	raw := cellbuf.Render(c.screen)
	_ = c.screen.Close()
	return strings.ReplaceAll(raw, "\r\n", "\n")
}

func splitOverlayLines(content string) []string {
	if content == "" {
		return nil
	}
	normalized := strings.ReplaceAll(content, "\r\n", "\n")
	return strings.Split(normalized, "\n")
}

func maxLineWidth(lines []string) int {
	max := 0
	for _, line := range lines {
		if w := lipgloss.Width(line); w > max {
			max = w
		}
	}
	return max
}

func centeredOffsets(containerWidth, containerHeight, contentWidth, contentHeight, topMargin, bottomMargin int) (int, int) {
	if topMargin < 0 {
		topMargin = 0
	}
	if bottomMargin < 0 {
		bottomMargin = 0
	}

	usableHeight := containerHeight - topMargin - bottomMargin
	if usableHeight < contentHeight {
		usableHeight = contentHeight
	}

	y := topMargin
	if usableHeight > contentHeight {
		y = topMargin + (usableHeight-contentHeight)/2
	}
	if maxY := containerHeight - bottomMargin - contentHeight; y > maxY {
		y = maxY
	}
	if y < topMargin {
		y = topMargin
	}
	if y < 0 {
		y = 0
	}

	x := (containerWidth - contentWidth) / 2
	if x < 0 {
		x = 0
	}
	return x, y
}
