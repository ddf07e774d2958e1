package search

import "github.com/poiesic/resound/core"

// SearchMonitor provides hooks to observe the search process.
// Implement this interface to track intermediate steps and results during search.
type SearchMonitor interface {
	Start(query string)
	AfterRecordingScan(recordingIDs []string)
	SegmentHit(recordingID string, segment core.Segment)
	MemoryHit(memory *core.Memory)
	MomentHit(moment *core.Moment)
	EntityHit(entity *core.Entity)
	Finish(hits []*Hit)
}

// noopMonitor is a no-op implementation of SearchMonitor
type noopMonitor struct{}

var _ SearchMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)                      {}
func (n *noopMonitor) AfterRecordingScan(_ []string)       {}
func (n *noopMonitor) SegmentHit(_ string, _ core.Segment) {}
func (n *noopMonitor) MemoryHit(_ *core.Memory)            {}
func (n *noopMonitor) MomentHit(_ *core.Moment)            {}
func (n *noopMonitor) EntityHit(_ *core.Entity)            {}
func (n *noopMonitor) Finish(_ []*Hit)                     {}
