package display

import (
	// standard
	"fmt"
	"os"
	"time"
	// external
	"github.com/schollz/progressbar/v3"
	// local
)

// Progress tracks raw-list parsing. The TTY flavour draws a spinner on
// stderr; the silent flavour is used for pipes and for debug runs, where
// redraw sequences would garble the log.
type Progress interface {
	Add(n int)
	Finish()
}

// NewProgress returns the right reporter for the output channel.
func NewProgress(label string, isTTY bool) Progress {
	if !isTTY {
		return silentProgress{}
	}
	bar := progressbar.NewOptions(
		-1, // line count unknown up front: spinner mode
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionThrottle(time.Second/3),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetDescription(label),
		progressbar.OptionShowIts(),
		progressbar.OptionSetItsString("line"),
		progressbar.OptionSpinnerType(14),
	)
	return &ttyProgress{bar: bar}
}

type ttyProgress struct {
	bar *progressbar.ProgressBar
}

func (p *ttyProgress) Add(n int) {
	p.bar.Add(n)
}

func (p *ttyProgress) Finish() {
	p.bar.Finish()
	fmt.Fprintf(os.Stderr, "\033[0m\n")
}

type silentProgress struct{}

func (silentProgress) Add(n int) {}
func (silentProgress) Finish()   {}
