package searcher

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Depth     int
	StartTime time.Time
	Duration  time.Duration
	Nodes     int
	Cutoffs   int
	Shortcuts int // Nodes answered by the static score without expansion
}

type Collector interface {
	Start(depth int)
	AddNode()
	AddCutoff()
	AddShortcut()
	Complete() SearchMetric
}

type collector struct {
	depth     int
	startTime time.Time
	nodes     atomic.Int64
	cutoffs   atomic.Int64
	shortcuts atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(depth int) {
	m.depth = depth
	m.startTime = time.Now()
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddCutoff() {
	m.cutoffs.Add(1)
}

func (m *collector) AddShortcut() {
	m.shortcuts.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Depth:     m.depth,
		StartTime: m.startTime,
		Duration:  time.Since(m.startTime),
		Nodes:     int(m.nodes.Load()),
		Cutoffs:   int(m.cutoffs.Load()),
		Shortcuts: int(m.shortcuts.Load()),
	}
}

// dummyCollector only keeps the depth, so callers can always report it.
type dummyCollector struct {
	depth int
}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(depth int)        { m.depth = depth }
func (m *dummyCollector) AddNode()               {}
func (m *dummyCollector) AddCutoff()             {}
func (m *dummyCollector) AddShortcut()           {}
func (m *dummyCollector) Complete() SearchMetric { return SearchMetric{Depth: m.depth} }
