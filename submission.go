package gsched

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/core/v2/common"
	"github.com/vkngwrapper/core/v2/core1_0"
	"golang.org/x/exp/slog"
)

// BeginSubmission and EndSubmission may be called at any time. If there is an open non-frame
// submission, BeginSubmission(true) promotes it to a frame. EndSubmission(true) closes the
// frame no matter whether the submission itself has already been closed.

// CheckSubmissionFenceAndDeviceLoss rechecks completion fences and reclaims per-submission
// resources. Pass 0 as awaitSubmission to simply poll status, or GetCurrentSubmission() to
// block until all queue operations have completed. Device loss reported by a fence wait is
// recorded permanently; after that every submission attempt fails fast.
func (s *Scheduler) CheckSubmissionFenceAndDeviceLoss(awaitSubmission uint64) {
	if s.deviceLost {
		return
	}

	advanced := false
	popped := 0
	for popped < len(s.submissionsInFlightFences) {
		fence := s.submissionsInFlightFences[popped]

		var res common.VkResult
		var err error
		if s.submissionCompleted+1 <= awaitSubmission {
			res, err = fence.Wait(common.NoTimeout)
		} else {
			res, err = fence.Status()
		}
		if res == core1_0.VKErrorDeviceLost {
			s.markDeviceLost("fence wait")
			break
		}
		if res != core1_0.VKSuccess {
			if err != nil {
				s.logger.Warn("Scheduler: checking a submission fence failed", slog.Any("error", err))
			}
			break
		}

		s.submissionCompleted++
		s.fencesFree = append(s.fencesFree, fence)
		popped++
		advanced = true
	}
	if popped > 0 {
		remaining := copy(s.submissionsInFlightFences, s.submissionsInFlightFences[popped:])
		s.submissionsInFlightFences = s.submissionsInFlightFences[:remaining]
	}

	if advanced {
		s.reclaimCompleted()
		s.notifyCompletedSubmissionUpdated()
	}
}

// AwaitAllQueueOperationsCompletion blocks until every submitted batch has completed,
// reporting whether the queue is now fully idle (false when a submission is still open or
// the device was lost mid-wait).
func (s *Scheduler) AwaitAllQueueOperationsCompletion() bool {
	s.CheckSubmissionFenceAndDeviceLoss(s.GetCurrentSubmission())
	return !s.submissionOpen && len(s.submissionsInFlightFences) == 0
}

// BeginSubmission ensures a submission is open and accepting commands, opening one if
// needed. If isGuestCommand is true and no frame is open, a new full frame is opened as
// well - with completion-bounded cleanup of per-frame transient pools and, if requested,
// starting a frame capture. Returns whether a submission is open and the device is not lost.
func (s *Scheduler) BeginSubmission(isGuestCommand bool) (bool, error) {
	if s.deviceLost {
		return false, errors.WithStack(DeviceLostError)
	}

	isOpeningFrame := isGuestCommand && !s.frameOpen
	if s.submissionOpen && !isOpeningFrame {
		return true, nil
	}

	s.logger.Debug("Scheduler::BeginSubmission")

	// When opening a frame, the ring slot about to be overwritten holds the closing
	// submission of the frame MaxFramesInFlight ago - awaiting it bounds the number of
	// closed-but-unreclaimed frames, which is what the per-frame pools size against.
	awaitSubmission := uint64(0)
	if isOpeningFrame {
		awaitSubmission = s.closedFrameSubmissions[s.frameCurrent%MaxFramesInFlight]
	}
	s.CheckSubmissionFenceAndDeviceLoss(awaitSubmission)
	if s.deviceLost {
		return false, errors.WithStack(DeviceLostError)
	}

	if !s.submissionOpen {
		record, err := s.acquireCommandBuffer()
		if err != nil {
			return false, err
		}
		if _, err := record.buffer.Begin(); err != nil {
			s.commandBuffersWritable = append(s.commandBuffersWritable, record)
			return false, errors.Wrap(err, "failed to begin command buffer recording")
		}
		s.currentCommandBuffer = record
		s.submissionOpen = true
		s.currentRecordingEnded = false

		// A fresh command buffer has no bound state.
		s.dynamicState.invalidate()
		s.bound.reset()

		s.notifyBeginSubmission(s.GetCurrentSubmission())
	}

	if isOpeningFrame {
		s.frameOpen = true
		if s.frameCaptureRequested {
			s.frameCaptureRequested = false
			s.frameCaptureActive = true
			s.frameTracer.BeginFrameCapture()
		}
	}
	return true, nil
}

// EndSubmission closes the currently open submission: flushes queued sparse binds, ends
// recording and submits with the accumulated wait semaphores and a pooled fence. If isSwap
// is true the current frame is closed as well - recording its closing submission into the
// ring, stopping an active frame capture and executing a pending cache clear.
//
// On a recoverable submit failure the submission remains open with its wait semaphores
// preserved, so a later attempt does not re-wait on already-consumed semaphores; the same
// recorded commands are then sent under the same submission index.
func (s *Scheduler) EndSubmission(isSwap bool) (bool, error) {
	if s.deviceLost {
		return false, errors.WithStack(DeviceLostError)
	}

	s.logger.Debug("Scheduler::EndSubmission")

	if s.submissionOpen {
		submissionIndex := s.GetCurrentSubmission()

		if !s.currentRecordingEnded {
			s.EndRenderPass()
			if _, err := s.currentCommandBuffer.buffer.End(); err != nil {
				return false, errors.Wrap(err, "failed to end command buffer recording")
			}
			s.currentRecordingEnded = true
		}

		if err := s.flushSparseBinds(submissionIndex); err != nil {
			if s.deviceLost {
				return false, errors.WithStack(DeviceLostError)
			}
			return false, err
		}

		fence, err := s.acquireFence()
		if err != nil {
			return false, err
		}

		submit := SubmitInfo{
			CommandBuffers: []CommandBuffer{s.currentCommandBuffer.buffer},
		}
		if len(s.currentSubmissionWaitSemaphores) != 0 {
			submit.WaitSemaphores = s.currentSubmissionWaitSemaphores
			submit.WaitDstStageMask = s.currentSubmissionWaitStageMasks
		}
		res, err := s.queue.Submit(fence, []SubmitInfo{submit})
		if err != nil {
			// The fence was never handed to the device; it stays reusable.
			s.fencesFree = append(s.fencesFree, fence)
			if res == core1_0.VKErrorDeviceLost {
				s.markDeviceLost("queue submit")
				return false, errors.WithStack(DeviceLostError)
			}
			return false, errors.Wrap(err, "queue submit failed, the submission remains open")
		}

		s.submissionsInFlightFences = append(s.submissionsInFlightFences, fence)
		s.commandBuffersSubmitted.Push(submissionIndex, s.currentCommandBuffer)
		s.currentCommandBuffer = commandBufferRecord{}
		s.currentSubmissionWaitSemaphores = nil
		s.currentSubmissionWaitStageMasks = nil
		s.submissionOpen = false
		s.currentRecordingEnded = false
	}

	if isSwap && s.frameOpen {
		s.closedFrameSubmissions[s.frameCurrent%MaxFramesInFlight] = s.GetCurrentSubmission() - 1
		s.frameCurrent++
		s.frameOpen = false

		if s.frameCaptureActive {
			s.frameCaptureActive = false
			s.frameTracer.EndFrameCapture()
		}

		if s.cacheClearRequested && s.AwaitAllQueueOperationsCompletion() {
			s.cacheClearRequested = false
			s.executeCacheClear()
		}
	}
	return true, nil
}

// Destroy drains in-flight work and releases everything the scheduler owns. It is safe to
// call after device loss, in which case waits that cannot succeed are skipped and objects
// are released unconditionally.
func (s *Scheduler) Destroy() {
	s.logger.Debug("Scheduler::Destroy")

	if !s.deviceLost {
		s.AwaitAllQueueOperationsCompletion()
	}

	if s.submissionOpen {
		s.commandBuffersWritable = append(s.commandBuffersWritable, s.currentCommandBuffer)
		s.currentCommandBuffer = commandBufferRecord{}
		s.submissionOpen = false
		s.currentRecordingEnded = false
	}

	s.commandBuffersSubmitted.Drain(func(record commandBufferRecord) {
		record.pool.Destroy()
	})
	for _, record := range s.commandBuffersWritable {
		record.pool.Destroy()
	}
	s.commandBuffersWritable = nil

	// Pending wait semaphores are owned by the in-flight queue, never destroyed here
	// directly.
	s.submissionsInFlightSemaphores.Drain(func(semaphore Semaphore) {
		semaphore.Destroy()
	})
	s.currentSubmissionWaitSemaphores = nil
	s.currentSubmissionWaitStageMasks = nil
	for _, semaphore := range s.semaphoresFree {
		semaphore.Destroy()
	}
	s.semaphoresFree = nil

	for _, fence := range s.submissionsInFlightFences {
		fence.Destroy()
	}
	s.submissionsInFlightFences = nil
	for _, fence := range s.fencesFree {
		fence.Destroy()
	}
	s.fencesFree = nil

	s.destroySwapFramebuffers()
	s.layouts.clear()
	s.transientDescriptors.clear()
}

func (s *Scheduler) executeCacheClear() {
	s.logger.Debug("Scheduler::executeCacheClear")

	// Only reached once the queue is fully idle.
	s.destroySwapFramebuffers()
	s.layouts.clear()
	s.transientDescriptors.clear()
	for _, record := range s.commandBuffersWritable {
		record.pool.Destroy()
	}
	s.commandBuffersWritable = nil
}

func (s *Scheduler) markDeviceLost(operation string) {
	if s.deviceLost {
		return
	}
	s.deviceLost = true
	s.logger.Warn("Scheduler: device loss detected, all further submissions will fail",
		slog.String("operation", operation))
}
