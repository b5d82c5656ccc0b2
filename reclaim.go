package gsched

import (
	"github.com/cockroachdb/errors"
	"golang.org/x/exp/slog"
)

// reclaimQueue is a FIFO of values tagged with the submission index that last used them.
// Because submission indices only increase, the entries completed by any given watermark are
// always a prefix, so reclamation is a pop loop rather than a scan. The same structure serves
// command buffers, retiring semaphores and outdated framebuffers.
type reclaimQueue[T any] struct {
	entries []reclaimEntry[T]
}

type reclaimEntry[T any] struct {
	submission uint64
	value      T
}

func (q *reclaimQueue[T]) Push(submission uint64, value T) {
	q.entries = append(q.entries, reclaimEntry[T]{submission: submission, value: value})
}

// PopCompleted releases every entry tagged at or below the completed watermark.
func (q *reclaimQueue[T]) PopCompleted(completed uint64, release func(T)) {
	popped := 0
	for popped < len(q.entries) && q.entries[popped].submission <= completed {
		release(q.entries[popped].value)
		popped++
	}
	if popped > 0 {
		remaining := copy(q.entries, q.entries[popped:])
		q.entries = q.entries[:remaining]
	}
}

// Drain releases every entry regardless of its tag. Only valid once the device is idle or
// lost.
func (q *reclaimQueue[T]) Drain(release func(T)) {
	for i := range q.entries {
		release(q.entries[i].value)
	}
	q.entries = q.entries[:0]
}

func (q *reclaimQueue[T]) Len() int {
	return len(q.entries)
}

// commandBufferRecord is a command pool owning exactly one primary command buffer. A record
// is writable (free list), owned by the open submission, or submitted (reclaim queue) at any
// given time.
type commandBufferRecord struct {
	pool   CommandPool
	buffer CommandBuffer
}

// acquireFence takes a fence from the free list, resetting it, or creates a new one. Pools
// never shrink; a fence, once created, is reused indefinitely.
func (s *Scheduler) acquireFence() (Fence, error) {
	if n := len(s.fencesFree); n > 0 {
		fence := s.fencesFree[n-1]
		s.fencesFree = s.fencesFree[:n-1]
		if _, err := fence.Reset(); err != nil {
			// Not returned to the free list - a fence that cannot be reset cannot be reused.
			fence.Destroy()
			return nil, errors.Wrap(err, "failed to reset a pooled fence")
		}
		return fence, nil
	}

	fence, _, err := s.device.CreateFence(false)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create a submission fence")
	}
	return fence, nil
}

func (s *Scheduler) acquireSemaphore() (Semaphore, error) {
	if n := len(s.semaphoresFree); n > 0 {
		semaphore := s.semaphoresFree[n-1]
		s.semaphoresFree = s.semaphoresFree[:n-1]
		return semaphore, nil
	}

	semaphore, _, err := s.device.CreateSemaphore()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create a wait semaphore")
	}
	return semaphore, nil
}

// acquireCommandBuffer takes a writable command pool/buffer pair or allocates a new one.
func (s *Scheduler) acquireCommandBuffer() (commandBufferRecord, error) {
	if n := len(s.commandBuffersWritable); n > 0 {
		record := s.commandBuffersWritable[n-1]
		s.commandBuffersWritable = s.commandBuffersWritable[:n-1]
		return record, nil
	}

	pool, _, err := s.device.CreateCommandPool()
	if err != nil {
		return commandBufferRecord{}, errors.Wrap(err, "failed to create a command pool")
	}
	buffer, _, err := s.device.AllocateCommandBuffer(pool)
	if err != nil {
		pool.Destroy()
		return commandBufferRecord{}, errors.Wrap(err, "failed to allocate a command buffer")
	}
	return commandBufferRecord{pool: pool, buffer: buffer}, nil
}

// releaseCompletedCommandBuffer resets the pool backing a completed submission's commands
// and returns the record to the writable list.
func (s *Scheduler) releaseCompletedCommandBuffer(record commandBufferRecord) {
	if _, err := record.pool.Reset(); err != nil {
		s.logger.Warn("Scheduler: failed to reset a completed command pool", slog.Any("error", err))
		record.pool.Destroy()
		return
	}
	s.commandBuffersWritable = append(s.commandBuffersWritable, record)
}

// reclaimCompleted runs every deferred-reclamation ledger against the current completed
// submission index.
func (s *Scheduler) reclaimCompleted() {
	completed := s.submissionCompleted

	s.commandBuffersSubmitted.PopCompleted(completed, s.releaseCompletedCommandBuffer)
	s.submissionsInFlightSemaphores.PopCompleted(completed, func(semaphore Semaphore) {
		s.semaphoresFree = append(s.semaphoresFree, semaphore)
	})
	s.swapFramebuffersOutdated.PopCompleted(completed, func(framebuffer Framebuffer) {
		framebuffer.Destroy()
	})

	// Frames complete in open order; the ring holds the closing submission of each of the
	// most recent MaxFramesInFlight frames.
	for s.frameCompleted+1 < s.frameCurrent &&
		s.closedFrameSubmissions[(s.frameCompleted+1)%MaxFramesInFlight] <= completed {
		s.frameCompleted++
	}
	s.transientDescriptors.reclaim(s.frameCompleted)
}
