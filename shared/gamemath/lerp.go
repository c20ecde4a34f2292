package gamemath

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// LerpTask is a resumable straight-line interpolation between two points.
// It is driven by calling Step once per simulation tick until it reports
// done; it never blocks and has no hidden scheduler.
type LerpTask struct {
	start, end mgl32.Vec3
	tween      *gween.Tween
	done       bool
}

// NewLerpTask builds a task moving from start to end at speed units/second.
func NewLerpTask(start, end mgl32.Vec3, speed float32) *LerpTask {
	dist := end.Sub(start).Len()
	if speed <= 0 || dist < 1e-5 {
		return &LerpTask{start: start, end: end, done: true}
	}
	return &LerpTask{
		start: start,
		end:   end,
		tween: gween.New(0, 1, dist/speed, ease.Linear),
	}
}

// Step advances the task by dt seconds and returns the current position and
// whether the end point has been reached. After completion it keeps
// returning the end point.
func (t *LerpTask) Step(dt float32) (mgl32.Vec3, bool) {
	if t.done {
		return t.end, true
	}
	p, finished := t.tween.Update(dt)
	if finished {
		t.done = true
		return t.end, true
	}
	return t.start.Add(t.end.Sub(t.start).Mul(p)), false
}

// Done reports whether the task has reached its end point.
func (t *LerpTask) Done() bool {
	return t.done
}

// End returns the task's target point.
func (t *LerpTask) End() mgl32.Vec3 {
	return t.end
}
