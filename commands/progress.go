package commands

import (
	"fmt"

	"github.com/schollz/progressbar/v3"
)

// ProgressReporter receives per-album and per-file progress events from the
// migration engine. Injecting it keeps the engine free of console side
// effects and testable without capturing output.
type ProgressReporter interface {
	// StartAlbum is called once per album batch, before any uploads are
	// dispatched. pending is the number of files that will be uploaded.
	StartAlbum(album string, pending int)
	// FileDone is called once per dispatched file, with a nil err on
	// success.
	FileDone(path string, err error)
	// FinishAlbum is called after the album's batch has fully drained.
	FinishAlbum()
}

// barReporter renders one progress bar per album batch.
type barReporter struct {
	bar *progressbar.ProgressBar
}

// NewBarReporter returns the default console ProgressReporter.
func NewBarReporter() ProgressReporter {
	return &barReporter{}
}

func (r *barReporter) StartAlbum(album string, pending int) {
	r.bar = progressbar.NewOptions(pending,
		progressbar.OptionSetDescription(fmt.Sprintf("Uploading to %q:", album)),
		progressbar.OptionSetWidth(20), // Fit in an 80-column terminal.
		progressbar.OptionShowCount(),
		progressbar.OptionSetPredictTime(true),
		progressbar.OptionShowElapsedTimeOnFinish(),
	)
}

func (r *barReporter) FileDone(path string, err error) {
	if r.bar != nil {
		_ = r.bar.Add(1)
	}
}

func (r *barReporter) FinishAlbum() {
	if r.bar != nil {
		_ = r.bar.Finish()
		r.bar = nil
	}
}

// nopReporter discards all progress events.
type nopReporter struct{}

// NewNopReporter returns a ProgressReporter that reports nothing.
func NewNopReporter() ProgressReporter {
	return nopReporter{}
}

func (nopReporter) StartAlbum(string, int) {}
func (nopReporter) FileDone(string, error) {}
func (nopReporter) FinishAlbum() {}
