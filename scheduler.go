package gsched

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/core/v2/core1_0"
	"golang.org/x/exp/slog"
)

// Scheduler batches guest GPU work into host queue submissions, tracks in-flight submissions
// with fences, reclaims transient resources once the device has proven it is done with them,
// and caches layout and framebuffer objects keyed by the guest state that determines their
// shape.
//
// Submissions are identified by a strictly increasing 64-bit index starting at 1; index 0
// means "none" and is always considered complete. Frames group one or more submissions and
// are bounded by a presentation swap.
type Scheduler struct {
	logger *slog.Logger
	device Device
	queue  Queue

	createFlags                 CreateFlags
	collaborators               []Collaborator
	frameTracer                 FrameTracer
	guestVertexShaderStageFlags core1_0.ShaderStageFlags

	deviceLost          bool
	cacheClearRequested bool

	fencesFree     []Fence
	semaphoresFree []Semaphore

	submissionOpen      bool
	submissionCompleted uint64
	// Wait semaphores of the submission currently being assembled. Kept across a failed
	// queue submit so the retry does not re-wait on semaphores that were never consumed,
	// and does not lose ones that a successful sparse bind has already chained.
	currentSubmissionWaitSemaphores []Semaphore
	currentSubmissionWaitStageMasks []core1_0.PipelineStageFlags
	submissionsInFlightFences       []Fence
	submissionsInFlightSemaphores   reclaimQueue[Semaphore]

	frameOpen              bool
	frameCurrent           uint64
	frameCompleted         uint64
	closedFrameSubmissions [MaxFramesInFlight]uint64

	commandBuffersWritable  []commandBufferRecord
	commandBuffersSubmitted reclaimQueue[commandBufferRecord]
	currentCommandBuffer    commandBufferRecord
	// Set when the open submission's recording has been ended but its submit failed
	// recoverably; the retry must not end recording twice.
	currentRecordingEnded bool

	sparseMemoryBinds       []SparseMemoryBind
	sparseBufferBinds       []sparseBufferBind
	sparseBindWaitStageMask core1_0.PipelineStageFlags

	layouts              layoutCache
	transientDescriptors transientDescriptorPool

	swapFramebuffers         []swapFramebuffer
	swapFramebuffersOutdated reclaimQueue[Framebuffer]

	dynamicState dynamicStateTracker
	bound        boundGraphicsState

	frameCaptureRequested bool
	frameCaptureActive    bool
}

// GetCurrentSubmission returns the index the submission currently being assembled (or the
// next one to open) will be sent under.
func (s *Scheduler) GetCurrentSubmission() uint64 {
	return s.submissionCompleted + uint64(len(s.submissionsInFlightFences)) + 1
}

// GetCompletedSubmission returns the most recent submission index the device has been
// observed to complete. It never regresses.
func (s *Scheduler) GetCompletedSubmission() uint64 {
	return s.submissionCompleted
}

func (s *Scheduler) GetCurrentFrame() uint64 {
	return s.frameCurrent
}

func (s *Scheduler) GetCompletedFrame() uint64 {
	return s.frameCompleted
}

// CommandBuffer returns the recording target of the currently open submission. It is valid
// only while a submission is open.
func (s *Scheduler) CommandBuffer() (CommandBuffer, error) {
	if !s.submissionOpen {
		return nil, errors.WithStack(SubmissionNotOpenError)
	}
	return s.currentCommandBuffer.buffer, nil
}

// RequestCacheClear schedules a full clear of the layout cache, the swap framebuffer cache
// and the writable command buffer pool. The clear executes at the next frame close, after
// all queue operations have completed; every layout pointer previously returned from
// GetPipelineLayout becomes invalid at that point.
func (s *Scheduler) RequestCacheClear() {
	s.cacheClearRequested = true
}

// RequestFrameCapture arranges for the frame tracer to capture the next full frame. It has
// no effect when no FrameTracer was provided at creation.
func (s *Scheduler) RequestFrameCapture() {
	if s.frameTracer == nil {
		return
	}
	s.frameCaptureRequested = true
}

// DeviceLost reports whether a permanent device loss has been detected. Once set, all
// further submission attempts fail fast.
func (s *Scheduler) DeviceLost() bool {
	return s.deviceLost
}

func (s *Scheduler) notifyBeginSubmission(submissionIndex uint64) {
	for _, c := range s.collaborators {
		c.BeginSubmission(submissionIndex)
	}
}

func (s *Scheduler) notifyCompletedSubmissionUpdated() {
	for _, c := range s.collaborators {
		c.CompletedSubmissionUpdated(s.submissionCompleted)
	}
}
