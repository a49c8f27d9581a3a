package blob

import (
	"errors"
	"fmt"
	"io"
	"log"
	"math/rand"

	"github.com/iburimskiy/glowfield/internal/config"
)

// FrameID identifies a scheduled frame callback. Zero means none.
type FrameID uint64

// Scheduler runs a callback once on the next presented frame.
type Scheduler interface {
	RequestFrame(fn func()) FrameID
	CancelFrame(id FrameID)
}

// Driver owns the blob field and its frame loop. It is either running, with
// exactly one frame callback pending, or stopped with none.
type Driver struct {
	cfg     config.Blobs
	sched   Scheduler
	surface Surface
	rng     *rand.Rand
	logger  *log.Logger

	items         []Circle
	width, height float64

	pending FrameID
	running bool
	frames  uint64
	lastErr error
}

func NewDriver(cfg config.Blobs, sched Scheduler, rng *rand.Rand) (*Driver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("blob config %q: %w", cfg.Name, err)
	}
	if sched == nil {
		return nil, errors.New("blob: nil scheduler")
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &Driver{
		cfg:    cfg,
		sched:  sched,
		rng:    rng,
		logger: log.New(io.Discard, "", 0),
	}, nil
}

func (d *Driver) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard, "", 0)
	}
	d.logger = l
}

// SetSurface swaps the drawing target. A nil surface pauses painting but not
// scheduling.
func (d *Driver) SetSurface(s Surface) { d.surface = s }

func (d *Driver) Config() config.Blobs { return d.cfg }

// Regenerate replaces the whole field with one sized for a width x height canvas.
func (d *Driver) Regenerate(width, height float64) {
	d.width, d.height = width, height
	d.items = Generate(d.rng, d.cfg, width, height, d.cfg.Count(width))
}

// Start schedules the next frame. Any frame already pending is cancelled
// first, so repeated calls never stack loops.
func (d *Driver) Start() {
	d.cancel()
	d.running = true
	d.pending = d.sched.RequestFrame(d.frame)
}

// Stop cancels the pending frame, if any.
func (d *Driver) Stop() {
	d.cancel()
	d.running = false
}

func (d *Driver) Running() bool { return d.running }

// Items exposes the current field. Callers must not retain it across frames.
func (d *Driver) Items() []Circle { return d.items }

// Frames counts completed stepper invocations.
func (d *Driver) Frames() uint64 { return d.frames }

func (d *Driver) cancel() {
	if d.pending != 0 {
		d.sched.CancelFrame(d.pending)
		d.pending = 0
	}
}

func (d *Driver) frame() {
	d.pending = 0
	if !d.running {
		return
	}
	d.report(Step(d.surface, d.items, d.width, d.height, d.cfg))
	d.frames++
	if d.running && d.pending == 0 {
		d.pending = d.sched.RequestFrame(d.frame)
	}
}

// report logs a step failure once until it changes.
func (d *Driver) report(err error) {
	if errors.Is(err, d.lastErr) {
		return
	}
	d.lastErr = err
	if err != nil {
		d.logger.Printf("skipping frames: %v", err)
	}
}
