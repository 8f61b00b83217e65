package scene

import (
	"sync"

	"github.com/ungerik/go3d/float64/vec3"
)

// Producer rebuilds a snapshot whenever its control points change and
// publishes it to subscribers. A Producer is safe for concurrent use.
//
// Subscribers receive the latest snapshot only: a subscriber which has not
// yet consumed the previous snapshot finds it replaced by the newer one.
type Producer struct {
	mx      sync.RWMutex
	opts    Options
	points  []vec3.T
	current *Snapshot
	subs    []chan *Snapshot
	closed  bool
}

// NewProducer creates a producer holding the snapshot of the default
// centerline.
func NewProducer(opts Options) *Producer {
	return &Producer{
		opts:    opts,
		current: Build(nil, opts),
	}
}

// Current returns the most recent snapshot.
func (p *Producer) Current() *Snapshot {
	p.mx.RLock()
	defer p.mx.RUnlock()
	return p.current
}

// Points returns a copy of the control points of the current snapshot, as
// given to Update.
func (p *Producer) Points() []vec3.T {
	p.mx.RLock()
	defer p.mx.RUnlock()
	pts := make([]vec3.T, len(p.points))
	copy(pts, p.points)
	return pts
}

// Update replaces the control points and publishes a new snapshot.
func (p *Producer) Update(points []vec3.T) *Snapshot {
	pts := make([]vec3.T, len(points))
	copy(pts, points)
	p.mx.Lock()
	defer p.mx.Unlock()
	p.points = pts
	return p.publish(Build(pts, p.opts))
}

// Configure replaces the options and publishes a new snapshot of the
// current control points.
func (p *Producer) Configure(opts Options) *Snapshot {
	p.mx.Lock()
	defer p.mx.Unlock()
	p.opts = opts
	return p.publish(Build(p.points, opts))
}

// Subscribe returns a channel delivering every snapshot published from now
// on. The channel is closed by Close.
func (p *Producer) Subscribe() <-chan *Snapshot {
	ch := make(chan *Snapshot, 1)
	p.mx.Lock()
	defer p.mx.Unlock()
	if p.closed {
		close(ch)
		return ch
	}
	p.subs = append(p.subs, ch)
	return ch
}

// Close closes all subscriber channels. Later updates still replace the
// current snapshot, but are not delivered.
func (p *Producer) Close() {
	p.mx.Lock()
	defer p.mx.Unlock()
	if p.closed {
		return
	}
	p.closed = true
	for _, ch := range p.subs {
		close(ch)
	}
	p.subs = nil
}

// must be called with p.mx held
func (p *Producer) publish(snap *Snapshot) *Snapshot {
	p.current = snap
	for _, ch := range p.subs {
		select { // drop a stale snapshot nobody has picked up
		case <-ch:
		default:
		}
		ch <- snap
	}
	return snap
}
