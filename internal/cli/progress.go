package cli

import (
	"fmt"
	"time"

	"github.com/schollz/progressbar/v3"
)

// extractionProgress implements runner.Progress with a progress bar.
type extractionProgress struct {
	quiet bool
	bar   *progressbar.ProgressBar
}

// newExtractionProgress creates a progress reporter for extraction passes.
func newExtractionProgress(quiet bool) *extractionProgress {
	return &extractionProgress{quiet: quiet}
}

func (p *extractionProgress) Start(total int) {
	if p.quiet {
		return
	}
	p.bar = progressbar.NewOptions(total,
		progressbar.OptionSetDescription("Extracting surfaces"),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionOnCompletion(func() {
			fmt.Println()
		}),
	)
}

func (p *extractionProgress) Step(profileID string) {
	if p.quiet || p.bar == nil {
		return
	}
	p.bar.Add(1)
}

func (p *extractionProgress) Done() {
	if p.quiet || p.bar == nil {
		return
	}
	p.bar.Finish()
	p.bar = nil
}
