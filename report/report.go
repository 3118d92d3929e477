package report

import (
	"errors"
	"fmt"
	"time"

	"github.com/fatih/color"
)

// ErrNoDuration is returned when a measured interval is too short to derive
// a meaningful rate from.
var ErrNoDuration = errors.New("report: elapsed duration must be positive")

// Sample is one timed transfer: operation kind, byte count and wall-clock
// duration. Samples are printed, never persisted.
type Sample struct {
	Operation string
	Bytes     int64
	Elapsed   time.Duration
}

// SpeedMBps returns the sample's throughput in MB/s.
func (s Sample) SpeedMBps() (float64, error) {
	return Throughput(s.Bytes, s.Elapsed)
}

// Throughput computes bytes/elapsed in MB/s. A non-positive elapsed time
// yields an error instead of a division fault.
func Throughput(bytes int64, elapsed time.Duration) (float64, error) {
	secs := elapsed.Seconds()
	if secs <= 0 {
		return 0, ErrNoDuration
	}
	return float64(bytes) / (1024 * 1024) / secs, nil
}

// PrintSample shows a single transfer measurement, teacher-report style:
// "<op> Speed: 123.45 MB/s (Duration: 6.78s)".
func PrintSample(s Sample) {
	speed, err := s.SpeedMBps()
	if err != nil {
		fmt.Printf("%s: transferred %d bytes too fast to measure\n", s.Operation, s.Bytes)
		return
	}
	fmt.Printf("%s Speed: %.2f MB/s (Duration: %.2fs)\n", s.Operation, speed, s.Elapsed.Seconds())
}

// Stats accumulates per-iteration speeds for aggregate reporting.
type Stats struct {
	speeds []float64
}

// Record adds one iteration's speed (MB/s).
func (st *Stats) Record(speed float64) {
	st.speeds = append(st.speeds, speed)
}

// Count returns the number of recorded iterations.
func (st *Stats) Count() int {
	return len(st.speeds)
}

// Avg returns the mean speed over all recorded iterations, 0 if none.
func (st *Stats) Avg() float64 {
	if len(st.speeds) == 0 {
		return 0
	}
	var sum float64
	for _, s := range st.speeds {
		sum += s
	}
	return sum / float64(len(st.speeds))
}

// Min returns the slowest recorded speed, 0 if none.
func (st *Stats) Min() float64 {
	if len(st.speeds) == 0 {
		return 0
	}
	min := st.speeds[0]
	for _, s := range st.speeds[1:] {
		if s < min {
			min = s
		}
	}
	return min
}

// Max returns the fastest recorded speed, 0 if none.
func (st *Stats) Max() float64 {
	if len(st.speeds) == 0 {
		return 0
	}
	max := st.speeds[0]
	for _, s := range st.speeds[1:] {
		if s > max {
			max = s
		}
	}
	return max
}

// PrintSummary shows the aggregate of repeated iterations.
func (st *Stats) PrintSummary(operation string) {
	if st.Count() == 0 {
		return
	}
	fmt.Printf("\n%s statistics:\n", operation)
	fmt.Printf("Average speed: %.2f MB/s\n", st.Avg())
	fmt.Printf("Max speed: %.2f MB/s\n", st.Max())
	fmt.Printf("Min speed: %.2f MB/s\n", st.Min())
}

// Good and Bad mark verification results in the console output.
var (
	Good = color.New(color.FgGreen).SprintFunc()
	Bad  = color.New(color.FgRed).SprintFunc()
)
