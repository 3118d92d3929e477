package progress

import (
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/fatih/color"
	"github.com/minio/pkg/console"
)

// Bar wraps pb.ProgressBar with the harness's theme.
type Bar struct {
	*pb.ProgressBar
}

// NewBar instantiates a progress bar tracking `total` units (bytes for
// large-file generation, files for batch transfers).
func NewBar(total int64) *Bar {
	console.SetColor("Bar", color.New(color.FgGreen, color.Bold))

	bar := pb.New64(total)
	bar.SetRefreshRate(time.Millisecond * 125)
	bar.SetTemplateString(`{{counters . }} {{bar . }} {{percent . }} {{speed . }}`)
	bar.Start()

	return &Bar{ProgressBar: bar}
}

// NewByteBar instantiates a progress bar with byte-scaled counters.
func NewByteBar(total int64) *Bar {
	bar := NewBar(total)
	bar.Set(pb.Bytes, true)
	return bar
}

// SetCaption sets the caption of the progress bar.
func (b *Bar) SetCaption(caption string) *Bar {
	b.ProgressBar.Set("prefix", caption+" ")
	return b
}
