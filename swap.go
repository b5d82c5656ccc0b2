package gsched

import (
	"math"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/core/v2/core1_0"
	"golang.org/x/exp/slog"
)

// swapFramebufferVersionNone marks a slot that has never held a framebuffer.
const swapFramebufferVersionNone = uint64(math.MaxUint64)

// swapFramebuffer is one slot of the presentation framebuffer cache. version identifies
// the swap image generation the framebuffer was created against; lastSubmission is the
// latest submission that may have referenced it.
type swapFramebuffer struct {
	framebuffer    Framebuffer
	version        uint64
	lastSubmission uint64
}

// GetSwapFramebuffer returns the framebuffer cached for the given slot if its version
// matches, or nil when the slot is empty or stale. A non-nil result is marked as
// referenced by the current submission.
func (s *Scheduler) GetSwapFramebuffer(slot int, version uint64) Framebuffer {
	if slot < 0 || slot >= len(s.swapFramebuffers) {
		return nil
	}
	entry := &s.swapFramebuffers[slot]
	if entry.framebuffer == nil || entry.version != version {
		return nil
	}
	entry.lastSubmission = s.GetCurrentSubmission()
	return entry.framebuffer
}

// GetOrCreateSwapFramebuffer returns the framebuffer for the given slot and swap image
// version, creating it when the slot is empty or holds a framebuffer for an older version.
// A superseded framebuffer is not destroyed immediately: it is queued for reclamation
// after the last submission that referenced it completes.
func (s *Scheduler) GetOrCreateSwapFramebuffer(
	slot int,
	version uint64,
	renderPass RenderPass,
	attachment ImageView,
	width, height int,
) (Framebuffer, error) {
	if slot < 0 || slot >= len(s.swapFramebuffers) {
		return nil, errors.Newf("swap framebuffer slot %d is out of range", slot)
	}
	if renderPass == nil || attachment == nil {
		return nil, errors.New("GetOrCreateSwapFramebuffer requires a render pass and an attachment")
	}

	entry := &s.swapFramebuffers[slot]
	if entry.framebuffer != nil && entry.version == version {
		entry.lastSubmission = s.GetCurrentSubmission()
		return entry.framebuffer, nil
	}

	if entry.framebuffer != nil {
		s.swapFramebuffersOutdated.Push(entry.lastSubmission, entry.framebuffer)
		entry.framebuffer = nil
		entry.version = swapFramebufferVersionNone
	}

	framebuffer, res, err := s.device.CreateFramebuffer(FramebufferCreateInfo{
		RenderPass:  renderPass,
		Attachments: []ImageView{attachment},
		Width:       width,
		Height:      height,
		Layers:      1,
	})
	if err != nil {
		if res == core1_0.VKErrorDeviceLost {
			s.markDeviceLost("swap framebuffer creation")
		}
		return nil, errors.Wrapf(err, "failed to create the swap framebuffer for slot %d", slot)
	}

	s.logger.Debug("Scheduler::GetOrCreateSwapFramebuffer",
		slog.Int("slot", slot),
		slog.Uint64("version", version),
	)

	entry.framebuffer = framebuffer
	entry.version = version
	entry.lastSubmission = s.GetCurrentSubmission()
	return framebuffer, nil
}

// destroySwapFramebuffers destroys every slot's framebuffer along with any superseded
// framebuffers still awaiting reclamation. The caller must have proven all referencing
// submissions complete.
func (s *Scheduler) destroySwapFramebuffers() {
	for slotIndex := range s.swapFramebuffers {
		entry := &s.swapFramebuffers[slotIndex]
		if entry.framebuffer != nil {
			entry.framebuffer.Destroy()
			entry.framebuffer = nil
		}
		entry.version = swapFramebufferVersionNone
		entry.lastSubmission = 0
	}
	s.swapFramebuffersOutdated.Drain(func(framebuffer Framebuffer) {
		framebuffer.Destroy()
	})
}
