package vulkan

import (
	"time"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/arsenal/gsched"
	"github.com/vkngwrapper/core/v2/common"
	"github.com/vkngwrapper/core/v2/core1_0"
	"github.com/vkngwrapper/core/v2/driver"
)

// This package adapts vkngwrapper device and queue objects to the contracts the scheduler
// consumes. Objects the scheduler owns (fences, command pools, layouts and so on) are
// wrapped so their Destroy can carry the allocation callbacks; reference-only objects
// (render passes, pipelines, buffers, image views, descriptor sets) are the vkngwrapper
// objects themselves, which already satisfy the handle contracts.
//
// Every handle object passed back into this adapter must have that provenance: reference
// objects must be vkngwrapper core1_0 objects and owned objects must have been created
// through the same provider. Foreign implementations of the scheduler contracts are not
// convertible to driver handles and panic at the point of use, except where the contract
// has an error return to report them through.

// DeviceProvider implements gsched.Device on a vkngwrapper logical device. All command
// pools it creates record for the provided queue family.
type DeviceProvider struct {
	device              core1_0.Device
	queueFamilyIndex    int
	allocationCallbacks *driver.AllocationCallbacks
}

// NewDeviceProvider creates a gsched.Device implementation from a vkngwrapper logical
// device. queueFamilyIndex must be the family of the queue passed to NewQueueProvider.
func NewDeviceProvider(device core1_0.Device, queueFamilyIndex int, allocationCallbacks *driver.AllocationCallbacks) (*DeviceProvider, error) {
	if device == nil {
		return nil, errors.New("a non-nil core1_0.Device is required")
	}
	return &DeviceProvider{
		device:              device,
		queueFamilyIndex:    queueFamilyIndex,
		allocationCallbacks: allocationCallbacks,
	}, nil
}

// QueueProvider implements gsched.Queue on a vkngwrapper queue. The queue must support
// graphics work; sparse binds additionally require sparse binding support on the family.
type QueueProvider struct {
	queue core1_0.Queue
}

func NewQueueProvider(queue core1_0.Queue) (*QueueProvider, error) {
	if queue == nil {
		return nil, errors.New("a non-nil core1_0.Queue is required")
	}
	return &QueueProvider{queue: queue}, nil
}

type fence struct {
	fence               core1_0.Fence
	allocationCallbacks *driver.AllocationCallbacks
}

func (f *fence) Status() (common.VkResult, error) {
	return f.fence.Status()
}

func (f *fence) Wait(timeout time.Duration) (common.VkResult, error) {
	return f.fence.Wait(timeout)
}

func (f *fence) Reset() (common.VkResult, error) {
	return f.fence.Reset()
}

func (f *fence) Destroy() {
	f.fence.Destroy(f.allocationCallbacks)
}

type semaphore struct {
	semaphore           core1_0.Semaphore
	allocationCallbacks *driver.AllocationCallbacks
}

func (s *semaphore) Destroy() {
	s.semaphore.Destroy(s.allocationCallbacks)
}

type commandPool struct {
	pool                core1_0.CommandPool
	allocationCallbacks *driver.AllocationCallbacks
}

func (p *commandPool) Reset() (common.VkResult, error) {
	return p.pool.Reset(0)
}

func (p *commandPool) Destroy() {
	p.pool.Destroy(p.allocationCallbacks)
}

type commandBuffer struct {
	buffer core1_0.CommandBuffer
}

func (c *commandBuffer) Begin() (common.VkResult, error) {
	return c.buffer.Begin(core1_0.CommandBufferBeginInfo{
		Flags: core1_0.CommandBufferUsageOneTimeSubmit,
	})
}

func (c *commandBuffer) End() (common.VkResult, error) {
	return c.buffer.End()
}

func (c *commandBuffer) CmdBeginRenderPass(renderPass gsched.RenderPass, framebuffer gsched.Framebuffer, renderArea core1_0.Rect2D) error {
	coreRenderPass, ok := renderPass.(core1_0.RenderPass)
	if !ok {
		return errors.Newf("render pass %T was not created through vkngwrapper", renderPass)
	}
	coreFramebuffer, ok := framebuffer.(*framebufferWrapper)
	if !ok {
		return errors.Newf("framebuffer %T was not created through this provider", framebuffer)
	}
	return c.buffer.CmdBeginRenderPass(core1_0.SubpassContentsInline, core1_0.RenderPassBeginInfo{
		RenderPass:  coreRenderPass,
		Framebuffer: coreFramebuffer.framebuffer,
		RenderArea:  renderArea,
	})
}

func (c *commandBuffer) CmdEndRenderPass() {
	c.buffer.CmdEndRenderPass()
}

func (c *commandBuffer) CmdBindPipeline(bindPoint core1_0.PipelineBindPoint, pipeline gsched.Pipeline) {
	c.buffer.CmdBindPipeline(bindPoint, pipeline.(core1_0.Pipeline))
}

func (c *commandBuffer) CmdBindDescriptorSets(bindPoint core1_0.PipelineBindPoint, layout gsched.PipelineLayout, sets []gsched.DescriptorSet) {
	coreSets := make([]core1_0.DescriptorSet, len(sets))
	for i, set := range sets {
		coreSets[i] = set.(core1_0.DescriptorSet)
	}
	c.buffer.CmdBindDescriptorSets(bindPoint, layout.(*pipelineLayout).layout, 0, coreSets, nil)
}

func (c *commandBuffer) CmdSetViewport(viewport core1_0.Viewport) {
	c.buffer.CmdSetViewport([]core1_0.Viewport{viewport})
}

func (c *commandBuffer) CmdSetScissor(scissor core1_0.Rect2D) {
	c.buffer.CmdSetScissor([]core1_0.Rect2D{scissor})
}

func (c *commandBuffer) CmdSetDepthBias(constantFactor, clamp, slopeFactor float32) {
	c.buffer.CmdSetDepthBias(constantFactor, clamp, slopeFactor)
}

func (c *commandBuffer) CmdSetBlendConstants(blendConstants [4]float32) {
	c.buffer.CmdSetBlendConstants(blendConstants)
}

func (c *commandBuffer) CmdSetStencilCompareMask(faceMask core1_0.StencilFaceFlags, compareMask uint32) {
	c.buffer.CmdSetStencilCompareMask(faceMask, compareMask)
}

func (c *commandBuffer) CmdSetStencilWriteMask(faceMask core1_0.StencilFaceFlags, writeMask uint32) {
	c.buffer.CmdSetStencilWriteMask(faceMask, writeMask)
}

func (c *commandBuffer) CmdSetStencilReference(faceMask core1_0.StencilFaceFlags, reference uint32) {
	c.buffer.CmdSetStencilReference(faceMask, reference)
}

type descriptorSetLayout struct {
	layout              core1_0.DescriptorSetLayout
	allocationCallbacks *driver.AllocationCallbacks
}

func (l *descriptorSetLayout) Destroy() {
	l.layout.Destroy(l.allocationCallbacks)
}

type pipelineLayout struct {
	layout              core1_0.PipelineLayout
	allocationCallbacks *driver.AllocationCallbacks
}

func (l *pipelineLayout) Destroy() {
	l.layout.Destroy(l.allocationCallbacks)
}

type descriptorPool struct {
	pool                core1_0.DescriptorPool
	allocationCallbacks *driver.AllocationCallbacks
}

func (p *descriptorPool) Reset() (common.VkResult, error) {
	return p.pool.Reset(0)
}

func (p *descriptorPool) Destroy() {
	p.pool.Destroy(p.allocationCallbacks)
}

type framebufferWrapper struct {
	framebuffer         core1_0.Framebuffer
	allocationCallbacks *driver.AllocationCallbacks
}

func (f *framebufferWrapper) Destroy() {
	f.framebuffer.Destroy(f.allocationCallbacks)
}

func (p *DeviceProvider) CreateFence(signaled bool) (gsched.Fence, common.VkResult, error) {
	var flags core1_0.FenceCreateFlags
	if signaled {
		flags = core1_0.FenceCreateSignaled
	}
	coreFence, res, err := p.device.CreateFence(p.allocationCallbacks, core1_0.FenceCreateInfo{
		Flags: flags,
	})
	if err != nil {
		return nil, res, err
	}
	return &fence{fence: coreFence, allocationCallbacks: p.allocationCallbacks}, res, nil
}

func (p *DeviceProvider) CreateSemaphore() (gsched.Semaphore, common.VkResult, error) {
	coreSemaphore, res, err := p.device.CreateSemaphore(p.allocationCallbacks, core1_0.SemaphoreCreateInfo{})
	if err != nil {
		return nil, res, err
	}
	return &semaphore{semaphore: coreSemaphore, allocationCallbacks: p.allocationCallbacks}, res, nil
}

func (p *DeviceProvider) CreateCommandPool() (gsched.CommandPool, common.VkResult, error) {
	corePool, res, err := p.device.CreateCommandPool(p.allocationCallbacks, core1_0.CommandPoolCreateInfo{
		QueueFamilyIndex: p.queueFamilyIndex,
	})
	if err != nil {
		return nil, res, err
	}
	return &commandPool{pool: corePool, allocationCallbacks: p.allocationCallbacks}, res, nil
}

func (p *DeviceProvider) AllocateCommandBuffer(pool gsched.CommandPool) (gsched.CommandBuffer, common.VkResult, error) {
	buffers, res, err := p.device.AllocateCommandBuffers(core1_0.CommandBufferAllocateInfo{
		CommandPool:        pool.(*commandPool).pool,
		Level:              core1_0.CommandBufferLevelPrimary,
		CommandBufferCount: 1,
	})
	if err != nil {
		return nil, res, err
	}
	return &commandBuffer{buffer: buffers[0]}, res, nil
}

func (p *DeviceProvider) CreateDescriptorSetLayout(bindings []core1_0.DescriptorSetLayoutBinding) (gsched.DescriptorSetLayout, common.VkResult, error) {
	coreLayout, res, err := p.device.CreateDescriptorSetLayout(p.allocationCallbacks, core1_0.DescriptorSetLayoutCreateInfo{
		Bindings: bindings,
	})
	if err != nil {
		return nil, res, err
	}
	return &descriptorSetLayout{layout: coreLayout, allocationCallbacks: p.allocationCallbacks}, res, nil
}

func (p *DeviceProvider) CreatePipelineLayout(setLayouts []gsched.DescriptorSetLayout) (gsched.PipelineLayout, common.VkResult, error) {
	coreLayouts := make([]core1_0.DescriptorSetLayout, len(setLayouts))
	for i, setLayout := range setLayouts {
		coreLayouts[i] = setLayout.(*descriptorSetLayout).layout
	}
	coreLayout, res, err := p.device.CreatePipelineLayout(p.allocationCallbacks, core1_0.PipelineLayoutCreateInfo{
		SetLayouts: coreLayouts,
	})
	if err != nil {
		return nil, res, err
	}
	return &pipelineLayout{layout: coreLayout, allocationCallbacks: p.allocationCallbacks}, res, nil
}

func (p *DeviceProvider) CreateDescriptorPool(maxSets int, poolSizes []core1_0.DescriptorPoolSize) (gsched.DescriptorPool, common.VkResult, error) {
	corePool, res, err := p.device.CreateDescriptorPool(p.allocationCallbacks, core1_0.DescriptorPoolCreateInfo{
		MaxSets:   maxSets,
		PoolSizes: poolSizes,
	})
	if err != nil {
		return nil, res, err
	}
	return &descriptorPool{pool: corePool, allocationCallbacks: p.allocationCallbacks}, res, nil
}

func (p *DeviceProvider) AllocateDescriptorSet(pool gsched.DescriptorPool, layout gsched.DescriptorSetLayout) (gsched.DescriptorSet, common.VkResult, error) {
	sets, res, err := p.device.AllocateDescriptorSets(core1_0.DescriptorSetAllocateInfo{
		DescriptorPool: pool.(*descriptorPool).pool,
		SetLayouts:     []core1_0.DescriptorSetLayout{layout.(*descriptorSetLayout).layout},
	})
	if err != nil {
		return nil, res, err
	}
	return sets[0], res, nil
}

func (p *DeviceProvider) CreateFramebuffer(o gsched.FramebufferCreateInfo) (gsched.Framebuffer, common.VkResult, error) {
	attachments := make([]core1_0.ImageView, len(o.Attachments))
	for i, attachment := range o.Attachments {
		attachments[i] = attachment.(core1_0.ImageView)
	}
	coreFramebuffer, res, err := p.device.CreateFramebuffer(p.allocationCallbacks, core1_0.FramebufferCreateInfo{
		RenderPass:  o.RenderPass.(core1_0.RenderPass),
		Attachments: attachments,
		Width:       o.Width,
		Height:      o.Height,
		Layers:      uint32(o.Layers),
	})
	if err != nil {
		return nil, res, err
	}
	return &framebufferWrapper{framebuffer: coreFramebuffer, allocationCallbacks: p.allocationCallbacks}, res, nil
}

func (q *QueueProvider) Submit(submitFence gsched.Fence, submits []gsched.SubmitInfo) (common.VkResult, error) {
	coreSubmits := make([]core1_0.SubmitInfo, len(submits))
	for i, submit := range submits {
		coreSubmit := core1_0.SubmitInfo{
			WaitDstStageMask: submit.WaitDstStageMask,
		}
		if len(submit.WaitSemaphores) > 0 {
			coreSubmit.WaitSemaphores = make([]core1_0.Semaphore, len(submit.WaitSemaphores))
			for j, waitSemaphore := range submit.WaitSemaphores {
				coreSubmit.WaitSemaphores[j] = waitSemaphore.(*semaphore).semaphore
			}
		}
		if len(submit.CommandBuffers) > 0 {
			coreSubmit.CommandBuffers = make([]core1_0.CommandBuffer, len(submit.CommandBuffers))
			for j, buffer := range submit.CommandBuffers {
				coreSubmit.CommandBuffers[j] = buffer.(*commandBuffer).buffer
			}
		}
		if len(submit.SignalSemaphores) > 0 {
			coreSubmit.SignalSemaphores = make([]core1_0.Semaphore, len(submit.SignalSemaphores))
			for j, signalSemaphore := range submit.SignalSemaphores {
				coreSubmit.SignalSemaphores[j] = signalSemaphore.(*semaphore).semaphore
			}
		}
		coreSubmits[i] = coreSubmit
	}

	return q.queue.Submit(submitFence.(*fence).fence, coreSubmits)
}

func (q *QueueProvider) BindSparse(bindInfos []gsched.BindSparseInfo) (common.VkResult, error) {
	coreBindInfos := make([]core1_0.BindSparseInfo, len(bindInfos))
	for i, bindInfo := range bindInfos {
		coreBindInfo := core1_0.BindSparseInfo{}

		if len(bindInfo.BufferBinds) > 0 {
			coreBindInfo.BufferBinds = make([]core1_0.SparseBufferMemoryBindInfo, len(bindInfo.BufferBinds))
			for j, bufferBind := range bindInfo.BufferBinds {
				coreBinds := make([]core1_0.SparseMemoryBind, len(bufferBind.Binds))
				for k, bind := range bufferBind.Binds {
					coreBind := core1_0.SparseMemoryBind{
						ResourceOffset: bind.ResourceOffset,
						Size:           bind.Size,
						MemoryOffset:   bind.MemoryOffset,
						Flags:          bind.Flags,
					}
					if bind.Memory != nil {
						coreBind.Memory = bind.Memory.(core1_0.DeviceMemory)
					}
					coreBinds[k] = coreBind
				}
				coreBindInfo.BufferBinds[j] = core1_0.SparseBufferMemoryBindInfo{
					Buffer: bufferBind.Buffer.(core1_0.Buffer),
					Binds:  coreBinds,
				}
			}
		}

		if len(bindInfo.SignalSemaphores) > 0 {
			coreBindInfo.SignalSemaphores = make([]core1_0.Semaphore, len(bindInfo.SignalSemaphores))
			for j, signalSemaphore := range bindInfo.SignalSemaphores {
				coreBindInfo.SignalSemaphores[j] = signalSemaphore.(*semaphore).semaphore
			}
		}

		coreBindInfos[i] = coreBindInfo
	}

	return q.queue.BindSparse(nil, coreBindInfos)
}
