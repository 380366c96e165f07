package pathutil

import "sync"

const (
	defaultLabelCap = 4  // Collapsed chains rarely span more than a few hops
	maxLabelCap     = 64 // Don't pool builders grown by pathological chains
)

var labelPool = sync.Pool{
	New: func() any {
		return &PathBuilder{
			segments: make([]string, 0, defaultLabelCap),
		}
	},
}

// Get retrieves a PathBuilder from the pool, reset and ready to use.
func Get() *PathBuilder {
	p := labelPool.Get().(*PathBuilder)
	p.Reset()
	return p
}

// Put returns a PathBuilder to the pool unless it has grown oversized.
func Put(p *PathBuilder) {
	if p == nil || cap(p.segments) > maxLabelCap {
		return
	}
	labelPool.Put(p)
}
