package gsched

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/core/v2/core1_0"
)

// sparseBufferBind records one SparseBindBuffer request as a window into the shared
// sparseMemoryBinds backing slice, so that queued requests for the same buffer can be
// grouped into a single bind info at flush time without copying each bind twice.
type sparseBufferBind struct {
	buffer     Buffer
	bindOffset int
	bindCount  int
}

// SparseBindBuffer queues sparse memory binds for the given buffer until the next
// submission flush. All binds queued for one submission are sent in a single batched bind
// operation, without a wait semaphore, before any semaphore-gated work of that submission;
// the submission itself waits on the bind through a pooled semaphore at waitStageMask.
//
// Because sparse binds execute without ordering against prior queue work, no two bind
// requests queued between the last completed submission and the next one to be issued may
// touch overlapping memory regions, including within a single flush. The batcher does not
// detect overlap; it is a caller invariant.
func (s *Scheduler) SparseBindBuffer(buffer Buffer, binds []SparseMemoryBind, waitStageMask core1_0.PipelineStageFlags) error {
	if s.createFlags&SchedulerCreateSparseBinding == 0 {
		return errors.New("SparseBindBuffer requires SchedulerCreateSparseBinding")
	}
	if buffer == nil {
		return errors.New("SparseBindBuffer requires a non-nil buffer")
	}
	if len(binds) == 0 {
		return nil
	}

	s.sparseBufferBinds = append(s.sparseBufferBinds, sparseBufferBind{
		buffer:     buffer,
		bindOffset: len(s.sparseMemoryBinds),
		bindCount:  len(binds),
	})
	s.sparseMemoryBinds = append(s.sparseMemoryBinds, binds...)
	s.sparseBindWaitStageMask |= waitStageMask
	return nil
}

// flushSparseBinds sends every queued bind in one batched operation, grouped by destination
// buffer, and chains its signal semaphore into the wait list of the submission being closed.
// On failure the queued binds are kept for a retry. Called from EndSubmission before the
// queue submit.
func (s *Scheduler) flushSparseBinds(submissionIndex uint64) error {
	if len(s.sparseBufferBinds) == 0 {
		return nil
	}

	signalSemaphore, err := s.acquireSemaphore()
	if err != nil {
		return err
	}

	// Group windows by buffer, preserving request order within each group. Requests are
	// not merged or reordered; overlapping inputs are a precondition violation and are
	// forwarded as-is.
	bufferOrder := make([]Buffer, 0, len(s.sparseBufferBinds))
	grouped := make(map[Buffer][]SparseMemoryBind, len(s.sparseBufferBinds))
	for _, bufferBind := range s.sparseBufferBinds {
		if _, seen := grouped[bufferBind.buffer]; !seen {
			bufferOrder = append(bufferOrder, bufferBind.buffer)
		}
		grouped[bufferBind.buffer] = append(grouped[bufferBind.buffer],
			s.sparseMemoryBinds[bufferBind.bindOffset:bufferBind.bindOffset+bufferBind.bindCount]...)
	}
	bufferBinds := make([]SparseBufferMemoryBindInfo, 0, len(bufferOrder))
	for _, buffer := range bufferOrder {
		bufferBinds = append(bufferBinds, SparseBufferMemoryBindInfo{
			Buffer: buffer,
			Binds:  grouped[buffer],
		})
	}

	res, err := s.queue.BindSparse([]BindSparseInfo{{
		BufferBinds:      bufferBinds,
		SignalSemaphores: []Semaphore{signalSemaphore},
	}})
	if err != nil {
		// Nothing was signaled; the semaphore is immediately reusable and the queued
		// binds stay pending for the next attempt.
		s.semaphoresFree = append(s.semaphoresFree, signalSemaphore)
		if res == core1_0.VKErrorDeviceLost {
			s.markDeviceLost("sparse bind")
			return errors.WithStack(DeviceLostError)
		}
		return errors.Wrap(err, "batched sparse bind failed, binds remain queued")
	}

	s.sparseMemoryBinds = s.sparseMemoryBinds[:0]
	s.sparseBufferBinds = s.sparseBufferBinds[:0]

	s.currentSubmissionWaitSemaphores = append(s.currentSubmissionWaitSemaphores, signalSemaphore)
	s.currentSubmissionWaitStageMasks = append(s.currentSubmissionWaitStageMasks, s.sparseBindWaitStageMask)
	s.sparseBindWaitStageMask = 0
	s.submissionsInFlightSemaphores.Push(submissionIndex, signalSemaphore)
	return nil
}
