package telemetry

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// Event is a single combat-stats sample. Kind selects which field carries
// the payload: "kill" uses I, "damage" and "frame" use F.
type Event struct {
	Kind string
	I    int
	F    float64
	At   time.Time
}

// Batch is one flush interval worth of aggregated events.
type Batch struct {
	Kills  int
	Dmg    float64
	Frames int
	AvgDt  float64
}

// Sink aggregates events off the simulation thread and flushes a summary on
// a fixed interval. Emit drops on backpressure so a slow consumer can never
// stall a frame.
type Sink struct {
	In chan Event

	quit      chan struct{}
	closeOnce sync.Once
}

// NewSink starts a sink that logs a batch summary every two seconds.
func NewSink() *Sink {
	return newSink(2*time.Second, logBatch)
}

func newSink(interval time.Duration, flush func(Batch)) *Sink {
	s := &Sink{
		In:   make(chan Event, 256),
		quit: make(chan struct{}),
	}
	go s.loop(interval, flush)
	return s
}

// Emit queues an event without blocking. Events are dropped when the buffer
// is full.
func (s *Sink) Emit(ev Event) {
	select {
	case s.In <- ev:
	default:
	}
}

// Close stops the background loop. Safe to call more than once.
func (s *Sink) Close() {
	s.closeOnce.Do(func() {
		close(s.quit)
	})
}

func (s *Sink) loop(interval time.Duration, flush func(Batch)) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	var b Batch
	var dtSum float64

	for {
		select {
		case <-s.quit:
			return

		case ev := <-s.In:
			switch ev.Kind {
			case "kill":
				b.Kills += ev.I
			case "damage":
				b.Dmg += ev.F
			case "frame":
				b.Frames++
				dtSum += ev.F
			}

		case <-ticker.C:
			if b.Frames > 0 {
				b.AvgDt = dtSum / float64(b.Frames)
			}
			flush(b)
			b = Batch{}
			dtSum = 0
		}
	}
}

func logBatch(b Batch) {
	if b.Kills == 0 && b.Dmg == 0 && b.Frames == 0 {
		return
	}
	logrus.WithFields(logrus.Fields{
		"kills":  b.Kills,
		"damage": b.Dmg,
		"frames": b.Frames,
		"avg_dt": b.AvgDt,
	}).Info("telemetry batch")
}
