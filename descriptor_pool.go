package gsched

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/core/v2/common"
	"github.com/vkngwrapper/core/v2/core1_0"
)

// transientDescriptorPool allocates short-lived descriptor sets from fixed-size pool pages.
// Sets are never freed individually: a page fills up, is retired tagged with the last frame
// that allocated from it, and is bulk-reset for reuse once that frame completes. With the
// frame ring bounding how far completion can lag, the steady-state page count stays small.
type transientDescriptorPool struct {
	device   Device
	pageSets int

	pageCurrent           DescriptorPool
	pageCurrentSetsUsed   int
	pageCurrentUsageFrame uint64

	pagesRecycled []DescriptorPool
	pagesRetired  reclaimQueue[DescriptorPool]
}

func (p *transientDescriptorPool) init(device Device, pageSets int) {
	p.device = device
	p.pageSets = pageSets
}

func (p *transientDescriptorPool) createPage() (DescriptorPool, common.VkResult, error) {
	return p.device.CreateDescriptorPool(p.pageSets, []core1_0.DescriptorPoolSize{
		{Type: core1_0.DescriptorTypeUniformBuffer, DescriptorCount: p.pageSets},
		{Type: core1_0.DescriptorTypeStorageBuffer, DescriptorCount: p.pageSets},
		{Type: core1_0.DescriptorTypeCombinedImageSampler, DescriptorCount: p.pageSets},
	})
}

// retireCurrentPage moves the current page to the retired queue under the frame that last
// allocated from it.
func (p *transientDescriptorPool) retireCurrentPage() {
	if p.pageCurrent == nil {
		return
	}
	p.pagesRetired.Push(p.pageCurrentUsageFrame, p.pageCurrent)
	p.pageCurrent = nil
	p.pageCurrentSetsUsed = 0
}

// allocate returns a descriptor set with the given layout, valid until the given frame
// completes. When the current page reports exhaustion despite the set budget, the page is
// retired early and the allocation retried once on a fresh page.
func (p *transientDescriptorPool) allocate(layout DescriptorSetLayout, frame uint64) (DescriptorSet, common.VkResult, error) {
	for attempt := 0; ; attempt++ {
		if p.pageCurrent != nil && p.pageCurrentSetsUsed >= p.pageSets {
			p.retireCurrentPage()
		}
		if p.pageCurrent == nil {
			if n := len(p.pagesRecycled); n > 0 {
				p.pageCurrent = p.pagesRecycled[n-1]
				p.pagesRecycled = p.pagesRecycled[:n-1]
			} else {
				page, res, err := p.createPage()
				if err != nil {
					return nil, res, errors.Wrap(err, "failed to create a transient descriptor pool page")
				}
				p.pageCurrent = page
			}
			p.pageCurrentSetsUsed = 0
		}

		set, res, err := p.device.AllocateDescriptorSet(p.pageCurrent, layout)
		if err != nil {
			if attempt == 0 {
				// Fragmentation can exhaust a page before its set budget does.
				p.retireCurrentPage()
				p.pageCurrentUsageFrame = frame
				continue
			}
			return nil, res, errors.Wrap(err, "failed to allocate a transient descriptor set")
		}

		p.pageCurrentSetsUsed++
		p.pageCurrentUsageFrame = frame
		return set, res, nil
	}
}

// reclaim resets every retired page whose tagged frame has completed and returns it to the
// recycled list. A page that fails to reset is destroyed instead of reused.
func (p *transientDescriptorPool) reclaim(frameCompleted uint64) {
	p.pagesRetired.PopCompleted(frameCompleted, func(page DescriptorPool) {
		if _, err := page.Reset(); err != nil {
			page.Destroy()
			return
		}
		p.pagesRecycled = append(p.pagesRecycled, page)
	})
}

// clear destroys every page. Only valid once the device is idle or lost.
func (p *transientDescriptorPool) clear() {
	if p.pageCurrent != nil {
		p.pageCurrent.Destroy()
		p.pageCurrent = nil
		p.pageCurrentSetsUsed = 0
	}
	for _, page := range p.pagesRecycled {
		page.Destroy()
	}
	p.pagesRecycled = nil
	p.pagesRetired.Drain(func(page DescriptorPool) {
		page.Destroy()
	})
}

// AllocateTransientDescriptorSet allocates a descriptor set that remains valid for the
// current frame only. It may only be called while a submission is open, since the set's
// lifetime is tied to the frame the submission belongs to.
func (s *Scheduler) AllocateTransientDescriptorSet(layout DescriptorSetLayout) (DescriptorSet, common.VkResult, error) {
	if layout == nil {
		return nil, core1_0.VKErrorUnknown, errors.New("AllocateTransientDescriptorSet requires a layout")
	}
	if !s.submissionOpen {
		return nil, core1_0.VKErrorUnknown, errors.WithStack(SubmissionNotOpenError)
	}
	return s.transientDescriptors.allocate(layout, s.frameCurrent)
}
