// SPDX-License-Identifier: MIT

package bench

import "time"

// Progress is delivered after every finished iteration.
type Progress struct {
	Size       int // current matrix side
	SizeIndex  int // zero-based position of Size in Config.Sizes
	Sizes      int // len(Config.Sizes)
	Iteration  int // 1-based, finished iterations for this size
	Iterations int // Config.Iterations
}

// Done reports whether p is the last iteration of the last size.
func (p Progress) Done() bool {
	return p.SizeIndex == p.Sizes-1 && p.Iteration == p.Iterations
}

// RunOption customizes Run without touching the Config.
type RunOption func(*runOptions)

type runOptions struct {
	progress func(Progress)
	now      func() time.Time
}

func defaultRunOptions() runOptions {
	return runOptions{now: time.Now}
}

// WithProgress registers a callback invoked synchronously after every
// iteration. A nil callback is ignored.
func WithProgress(fn func(Progress)) RunOption {
	return func(o *runOptions) {
		if fn != nil {
			o.progress = fn
		}
	}
}

// WithClock replaces time.Now as the timing source. Panics on nil.
func WithClock(now func() time.Time) RunOption {
	if now == nil {
		panic("bench: WithClock(nil)")
	}
	return func(o *runOptions) {
		o.now = now
	}
}
