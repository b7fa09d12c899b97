// Copyright (c) 2025 Stefano Scafiti
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.
package pbar

import (
	"fmt"
	"os"
	"strings"
	"time"
)

const MinRefreshRate = time.Millisecond * 500

// FrameBarState tracks render progress across a gif's frames, the
// render-command counterpart of the teacher's byte-oriented
// ProgressBarState.
type FrameBarState struct {
	TotalFrames     int
	RenderedFrames  int
	StartTime       time.Time
	LastUpdateTime  time.Time
	lastRenderCount int
}

func NewFrameBarState(totalFrames int) *FrameBarState {
	return &FrameBarState{
		TotalFrames:    totalFrames,
		StartTime:      time.Now(),
		LastUpdateTime: time.Unix(0, 0),
	}
}

// Render updates and prints the progress bar line.
func (s *FrameBarState) Render(force bool) {
	if !force && (s.LastUpdateTime.IsZero() || time.Since(s.LastUpdateTime) < MinRefreshRate) {
		return
	}

	percentage := float64(s.RenderedFrames) / float64(s.TotalFrames) * 100

	barLength := 20
	filledLen := int(float64(barLength) * percentage / 100)
	var bar string
	if filledLen >= barLength {
		bar = strings.Repeat("=", barLength)
	} else {
		bar = strings.Repeat("=", filledLen) + ">" + strings.Repeat(" ", barLength-filledLen-1)
	}

	framesPerSec := float64(s.RenderedFrames-s.lastRenderCount) / time.Since(s.LastUpdateTime).Seconds()

	s.LastUpdateTime = time.Now()
	s.lastRenderCount = s.RenderedFrames

	fmt.Fprintf(os.Stdout, "\r[INFO] Rendering: [%s] %3.0f%% (%d/%d frames) | @ %.1f fps    ",
		bar, percentage, s.RenderedFrames, s.TotalFrames, framesPerSec)
	os.Stdout.Sync()
}

// Finish prints a trailing newline once rendering completes.
func (s *FrameBarState) Finish() {
	fmt.Println()
}
