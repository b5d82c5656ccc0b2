package gsched

import (
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
)

// Statistics is a snapshot of the scheduler's tracking state, for logging and debug
// overlays. It is a copy; it does not update as the scheduler advances.
type Statistics struct {
	// SubmissionCurrent is the index the next submitted work will complete under
	SubmissionCurrent uint64
	// SubmissionCompleted is the latest submission proven complete through its fence
	SubmissionCompleted uint64
	// FrameCurrent is the index of the frame currently being recorded
	FrameCurrent uint64
	// FrameCompleted is the latest frame whose closing submission has completed
	FrameCompleted uint64

	// SubmissionsInFlight is the number of submissions awaiting fence completion
	SubmissionsInFlight int
	// FencesFree and SemaphoresFree are the pooled synchronization objects available for reuse
	FencesFree     int
	SemaphoresFree int
	// CommandBuffersWritable is the number of reset command pool/buffer pairs ready to record
	CommandBuffersWritable int
	// CommandBuffersSubmitted is the number of pool/buffer pairs tied to in-flight submissions
	CommandBuffersSubmitted int

	// SparseBindsPending is the number of sparse memory binds queued for the next submission
	SparseBindsPending int

	// PipelineLayoutsCached and TextureDescriptorSetLayoutsCached are the layout cache sizes
	PipelineLayoutsCached             int
	TextureDescriptorSetLayoutsCached int

	// SwapFramebuffersOutdated is the number of superseded swap framebuffers awaiting
	// reclamation
	SwapFramebuffersOutdated int
}

// Statistics returns a snapshot of the scheduler's current tracking state.
func (s *Scheduler) Statistics() Statistics {
	return Statistics{
		SubmissionCurrent:   s.GetCurrentSubmission(),
		SubmissionCompleted: s.submissionCompleted,
		FrameCurrent:        s.frameCurrent,
		FrameCompleted:      s.frameCompleted,

		SubmissionsInFlight:     len(s.submissionsInFlightFences),
		FencesFree:              len(s.fencesFree),
		SemaphoresFree:          len(s.semaphoresFree),
		CommandBuffersWritable:  len(s.commandBuffersWritable),
		CommandBuffersSubmitted: s.commandBuffersSubmitted.Len(),

		SparseBindsPending: len(s.sparseMemoryBinds),

		PipelineLayoutsCached:             s.layouts.pipelineLayouts.Count(),
		TextureDescriptorSetLayoutsCached: s.layouts.descriptorSetLayoutsTextures.Count(),

		SwapFramebuffersOutdated: s.swapFramebuffersOutdated.Len(),
	}
}

// BuildStateString builds a JSON description of the scheduler's tracking state. When
// detailed is set, per-slot and per-frame data is included as well.
func (s *Scheduler) BuildStateString(detailed bool) string {
	writer := jwriter.NewWriter()

	rootObj := writer.Object()

	stats := s.Statistics()
	statsObj := rootObj.Name("General").Object()
	statsObj.Name("SubmissionCurrent").Int(int(stats.SubmissionCurrent))
	statsObj.Name("SubmissionCompleted").Int(int(stats.SubmissionCompleted))
	statsObj.Name("FrameCurrent").Int(int(stats.FrameCurrent))
	statsObj.Name("FrameCompleted").Int(int(stats.FrameCompleted))
	statsObj.Name("SubmissionsInFlight").Int(stats.SubmissionsInFlight)
	statsObj.Name("FencesFree").Int(stats.FencesFree)
	statsObj.Name("SemaphoresFree").Int(stats.SemaphoresFree)
	statsObj.Name("CommandBuffersWritable").Int(stats.CommandBuffersWritable)
	statsObj.Name("CommandBuffersSubmitted").Int(stats.CommandBuffersSubmitted)
	statsObj.Name("SparseBindsPending").Int(stats.SparseBindsPending)
	statsObj.Name("PipelineLayoutsCached").Int(stats.PipelineLayoutsCached)
	statsObj.Name("TextureDescriptorSetLayoutsCached").Int(stats.TextureDescriptorSetLayoutsCached)
	statsObj.Name("SwapFramebuffersOutdated").Int(stats.SwapFramebuffersOutdated)
	statsObj.Name("SubmissionOpen").Bool(s.submissionOpen)
	statsObj.Name("FrameOpen").Bool(s.frameOpen)
	statsObj.Name("DeviceLost").Bool(s.deviceLost)
	statsObj.End()

	if detailed {
		s.printDetailedState(&rootObj)
	}

	rootObj.End()
	return string(writer.Bytes())
}

func (s *Scheduler) printDetailedState(json *jwriter.ObjectState) {
	frameRing := json.Name("ClosedFrameSubmissions").Array()
	for i := 0; i < MaxFramesInFlight; i++ {
		frameRing.Int(int(s.closedFrameSubmissions[i]))
	}
	frameRing.End()

	swapArray := json.Name("SwapFramebuffers").Array()
	for slotIndex := range s.swapFramebuffers {
		entry := &s.swapFramebuffers[slotIndex]
		slotObj := swapArray.Object()
		slotObj.Name("Populated").Bool(entry.framebuffer != nil)
		if entry.framebuffer != nil {
			slotObj.Name("Version").Int(int(entry.version))
			slotObj.Name("LastSubmission").Int(int(entry.lastSubmission))
		}
		slotObj.End()
	}
	swapArray.End()

	descriptorsObj := json.Name("TransientDescriptors").Object()
	descriptorsObj.Name("PageSets").Int(s.transientDescriptors.pageSets)
	descriptorsObj.Name("PageCurrentSetsUsed").Int(s.transientDescriptors.pageCurrentSetsUsed)
	descriptorsObj.Name("PagesRecycled").Int(len(s.transientDescriptors.pagesRecycled))
	descriptorsObj.Name("PagesRetired").Int(s.transientDescriptors.pagesRetired.Len())
	descriptorsObj.End()
}
