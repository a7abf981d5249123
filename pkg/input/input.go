// Package input provides pointer backends for clicking at screen
// coordinates.
package input

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-vgo/robotgo"

	"github.com/devicelab-dev/uitestext/pkg/core"
	"github.com/devicelab-dev/uitestext/pkg/logger"
)

// Backend names accepted by New.
const (
	BackendDryRun = "dry-run"
	BackendRobot  = "robot"
)

// Pointer clicks at screen coordinates.
type Pointer interface {
	Click(x, y int) error
}

// New returns the pointer for backend. An empty backend selects dry-run.
func New(backend string, settle time.Duration) (Pointer, error) {
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case "", BackendDryRun:
		return &DryRun{}, nil
	case BackendRobot:
		return &Robot{Settle: settle}, nil
	default:
		return nil, core.ErrInvalidConfig.
			WithMessage(fmt.Sprintf("unknown pointer backend %q (want %s or %s)", backend, BackendDryRun, BackendRobot))
	}
}

// Robot moves the system cursor and sends a left click.
type Robot struct {
	// Settle is the pause between moving and clicking.
	Settle time.Duration
}

// Click moves to (x, y) and clicks the left button.
func (r *Robot) Click(x, y int) error {
	if x < 0 || y < 0 {
		return core.ErrInvalidArgument.WithMessage(fmt.Sprintf("point (%d, %d) is off screen", x, y))
	}
	robotgo.Move(x, y)
	if r.Settle > 0 {
		robotgo.MilliSleep(int(r.Settle / time.Millisecond))
	}
	robotgo.Click("left", false)
	logger.Debug("robot click at (%d, %d)", x, y)
	return nil
}

// Point is a screen coordinate.
type Point struct {
	X, Y int
}

// DryRun records clicks without touching the system cursor.
type DryRun struct {
	mu     sync.Mutex
	points []Point
}

// Click records (x, y).
func (d *DryRun) Click(x, y int) error {
	d.mu.Lock()
	d.points = append(d.points, Point{X: x, Y: y})
	d.mu.Unlock()
	logger.Info("dry-run click at (%d, %d)", x, y)
	return nil
}

// Points returns the recorded clicks in order.
func (d *DryRun) Points() []Point {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]Point, len(d.points))
	copy(out, d.points)
	return out
}
