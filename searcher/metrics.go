package searcher

import (
	"sync/atomic"
	"time"
)

type MoveMetrics struct {
	StartTime  time.Time
	Duration   time.Duration
	Iterations int64
	Expansions int64
	TreeReused bool
}

type MetricsCollector interface {
	Start()
	AddIteration()
	AddExpansion()
	ReusedTree()
	Complete() MoveMetrics
}

type metricsCollector struct {
	startTime  time.Time
	iterations atomic.Int64
	expansions atomic.Int64
	treeReused atomic.Bool
}

func NewMetricsCollector() MetricsCollector {
	return &metricsCollector{}
}

func (m *metricsCollector) Start() {
	m.startTime = time.Now()
	m.iterations.Store(0)
	m.expansions.Store(0)
	m.treeReused.Store(false)
}

func (m *metricsCollector) AddIteration() {
	m.iterations.Add(1)
}

func (m *metricsCollector) AddExpansion() {
	m.expansions.Add(1)
}

func (m *metricsCollector) ReusedTree() {
	m.treeReused.Store(true)
}

func (m *metricsCollector) Complete() MoveMetrics {
	return MoveMetrics{
		StartTime:  m.startTime,
		Duration:   time.Since(m.startTime),
		Iterations: m.iterations.Load(),
		Expansions: m.expansions.Load(),
		TreeReused: m.treeReused.Load(),
	}
}

type dummyCollector struct{}

func NewDummyCollector() MetricsCollector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start()                {}
func (m *dummyCollector) AddIteration()         {}
func (m *dummyCollector) AddExpansion()         {}
func (m *dummyCollector) ReusedTree()           {}
func (m *dummyCollector) Complete() MoveMetrics { return MoveMetrics{} }
