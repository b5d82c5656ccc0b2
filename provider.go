package gsched

import (
	"time"

	"github.com/vkngwrapper/core/v2/common"
	"github.com/vkngwrapper/core/v2/core1_0"
	"github.com/vkngwrapper/core/v2/driver"
)

// This file defines the narrow contracts the scheduler consumes from its device/queue provider.
// The vulkan subpackage implements them on top of vkngwrapper objects; unit tests implement them
// with mocks. Objects the scheduler creates and owns (fences, semaphores, command pools and
// buffers, layouts, framebuffers, descriptor pools) are full interfaces with arg-free Destroy
// methods. Objects the scheduler merely passes through (buffers, pipelines, render passes, image
// views, descriptor sets) are handle-only interfaces that vkngwrapper objects already satisfy.

// Fence is a host-waitable completion fence. The scheduler recycles fences through a free list;
// a fence is reset when it is taken back out of the free list, not when it is returned to it.
type Fence interface {
	// Status performs a non-blocking signal check, returning core1_0.VKSuccess when signaled
	// and core1_0.VKNotReady when not.
	Status() (common.VkResult, error)
	// Wait blocks until the fence is signaled or the timeout elapses. A timeout of
	// common.NoTimeout blocks indefinitely.
	Wait(timeout time.Duration) (common.VkResult, error)
	Reset() (common.VkResult, error)
	Destroy()
}

// Semaphore orders GPU-side work between queue operations without CPU involvement.
type Semaphore interface {
	Destroy()
}

// CommandPool backs the command buffers of a single submission and is reset as a whole when
// that submission is observed complete.
type CommandPool interface {
	Reset() (common.VkResult, error)
	Destroy()
}

// CommandBuffer is the recording target of the currently open submission.
type CommandBuffer interface {
	// Begin opens recording for a single submission (one-time-submit semantics).
	Begin() (common.VkResult, error)
	End() (common.VkResult, error)

	CmdBeginRenderPass(renderPass RenderPass, framebuffer Framebuffer, renderArea core1_0.Rect2D) error
	CmdEndRenderPass()
	CmdBindPipeline(bindPoint core1_0.PipelineBindPoint, pipeline Pipeline)
	CmdBindDescriptorSets(bindPoint core1_0.PipelineBindPoint, layout PipelineLayout, sets []DescriptorSet)
	CmdSetViewport(viewport core1_0.Viewport)
	CmdSetScissor(scissor core1_0.Rect2D)
	CmdSetDepthBias(constantFactor, clamp, slopeFactor float32)
	CmdSetBlendConstants(blendConstants [4]float32)
	CmdSetStencilCompareMask(faceMask core1_0.StencilFaceFlags, compareMask uint32)
	CmdSetStencilWriteMask(faceMask core1_0.StencilFaceFlags, writeMask uint32)
	CmdSetStencilReference(faceMask core1_0.StencilFaceFlags, reference uint32)
}

// DescriptorSetLayout is a descriptor set layout owned by the scheduler's layout cache.
type DescriptorSetLayout interface {
	Destroy()
}

// PipelineLayout is a host pipeline layout handle owned by a PipelineLayoutProvider.
type PipelineLayout interface {
	Destroy()
}

// DescriptorPool is one page of the transient descriptor pool.
type DescriptorPool interface {
	Reset() (common.VkResult, error)
	Destroy()
}

// Framebuffer is a swap framebuffer created and later destroyed by the scheduler.
type Framebuffer interface {
	Destroy()
}

// Reference-only contracts. The scheduler forwards these to the device or queue without
// creating or destroying them.

type RenderPass interface {
	Handle() driver.VkRenderPass
}

type Pipeline interface {
	Handle() driver.VkPipeline
}

type Buffer interface {
	Handle() driver.VkBuffer
}

type DeviceMemory interface {
	Handle() driver.VkDeviceMemory
}

type ImageView interface {
	Handle() driver.VkImageView
}

type DescriptorSet interface {
	Handle() driver.VkDescriptorSet
}

// FramebufferCreateInfo describes a swap framebuffer to create.
type FramebufferCreateInfo struct {
	RenderPass  RenderPass
	Attachments []ImageView
	Width       int
	Height      int
	Layers      int
}

// Device is the object-creation surface of the device/queue provider. Creation methods may
// fail transiently (recoverable) or with core1_0.VKErrorDeviceLost (permanent).
type Device interface {
	CreateFence(signaled bool) (Fence, common.VkResult, error)
	CreateSemaphore() (Semaphore, common.VkResult, error)
	CreateCommandPool() (CommandPool, common.VkResult, error)
	AllocateCommandBuffer(pool CommandPool) (CommandBuffer, common.VkResult, error)
	CreateDescriptorSetLayout(bindings []core1_0.DescriptorSetLayoutBinding) (DescriptorSetLayout, common.VkResult, error)
	CreatePipelineLayout(setLayouts []DescriptorSetLayout) (PipelineLayout, common.VkResult, error)
	CreateDescriptorPool(maxSets int, poolSizes []core1_0.DescriptorPoolSize) (DescriptorPool, common.VkResult, error)
	// AllocateDescriptorSet returns a nil set with a non-success result when the pool is
	// exhausted; the transient descriptor pool treats that as a page-full signal rather
	// than an error.
	AllocateDescriptorSet(pool DescriptorPool, layout DescriptorSetLayout) (DescriptorSet, common.VkResult, error)
	CreateFramebuffer(o FramebufferCreateInfo) (Framebuffer, common.VkResult, error)
}

// SubmitInfo is one batch of command buffers with its semaphore dependencies.
type SubmitInfo struct {
	WaitSemaphores   []Semaphore
	WaitDstStageMask []core1_0.PipelineStageFlags
	CommandBuffers   []CommandBuffer
	SignalSemaphores []Semaphore
}

// SparseMemoryBind maps or unmaps one range of a sparsely-bound buffer. A nil Memory unbinds
// the range.
type SparseMemoryBind struct {
	ResourceOffset int
	Size           int
	Memory         DeviceMemory
	MemoryOffset   int
	Flags          core1_0.SparseMemoryBindFlags
}

// SparseBufferMemoryBindInfo carries all the binds of one flush destined for one buffer.
type SparseBufferMemoryBindInfo struct {
	Buffer Buffer
	Binds  []SparseMemoryBind
}

// BindSparseInfo is one batched sparse bind operation. The scheduler never requests wait
// semaphores on sparse binds; ordering against prior work is a caller precondition
// (see Scheduler.SparseBindBuffer).
type BindSparseInfo struct {
	BufferBinds      []SparseBufferMemoryBindInfo
	SignalSemaphores []Semaphore
}

// Queue is the submission queue of the device/queue provider.
type Queue interface {
	Submit(fence Fence, submits []SubmitInfo) (common.VkResult, error)
	BindSparse(bindInfos []BindSparseInfo) (common.VkResult, error)
}

// Collaborator is implemented by the systems that record work into submissions alongside the
// scheduler (shared memory, primitive processing, render target management). BeginSubmission
// is invoked once when a submission opens, before any guest commands are accepted;
// CompletedSubmissionUpdated is invoked whenever the completed submission index advances.
type Collaborator interface {
	BeginSubmission(submissionIndex uint64)
	CompletedSubmissionUpdated(completedSubmission uint64)
}

// FrameTracer receives frame capture boundaries. A capture requested through
// Scheduler.RequestFrameCapture starts when the next frame opens and stops when that frame's
// closing submission is sent.
type FrameTracer interface {
	BeginFrameCapture()
	EndFrameCapture()
}
