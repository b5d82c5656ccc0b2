package gsched

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/core/v2/common"
	"github.com/vkngwrapper/core/v2/core1_0"
	"golang.org/x/exp/slog"
)

// CreateFlags indicate specific scheduler behaviors to activate or deactivate
type CreateFlags int32

var schedulerCreateFlagsMapping = common.NewFlagStringMapping[CreateFlags]()

func (f CreateFlags) Register(str string) {
	schedulerCreateFlagsMapping.Register(f, str)
}
func (f CreateFlags) String() string {
	return schedulerCreateFlagsMapping.FlagsToString(f)
}

const (
	// SchedulerCreateSparseBinding indicates that the guest shared-memory buffer is sparsely
	// bound and that SparseBindBuffer requests will be made. When it is not set,
	// SparseBindBuffer returns an error instead of queueing.
	SchedulerCreateSparseBinding CreateFlags = 1 << iota
)

func init() {
	SchedulerCreateSparseBinding.Register("SchedulerCreateSparseBinding")
}

const (
	// MaxFramesInFlight is the maximum number of frames that may be closed but not yet fully
	// reclaimed at once. Per-frame transient pools size their reuse windows against this
	// bound rather than against raw submission counts.
	MaxFramesInFlight = 3

	// defaultSwapImageSlots is the number of presenter output image slots tracked by the
	// swap framebuffer cache when CreateOptions.SwapImageSlots is zero.
	defaultSwapImageSlots = 3

	// defaultDescriptorPoolPageSets is the number of descriptor sets in one transient
	// descriptor pool page when CreateOptions.DescriptorPoolPageSets is zero.
	defaultDescriptorPoolPageSets = 256
)

// CreateOptions contains optional settings when creating a Scheduler
type CreateOptions struct {
	// Flags indicates specific scheduler behaviors to activate or deactivate
	Flags CreateFlags

	// GuestVertexShaderStageFlags is the set of shader stages guest vertex-role descriptors
	// must be visible to. It depends on how the shader translator emits geometry - plain
	// vertex shaders only, or tessellation paths as well. Zero defaults to the vertex stage.
	GuestVertexShaderStageFlags core1_0.ShaderStageFlags

	// SwapImageSlots is the number of presenter output image slots the swap framebuffer
	// cache tracks. It must match the presenter's bound on concurrently live image versions.
	// Zero defaults to 3.
	SwapImageSlots int

	// DescriptorPoolPageSets is the per-page descriptor set capacity of the transient
	// descriptor pool. Zero defaults to 256.
	DescriptorPoolPageSets int

	// Collaborators are notified of submission lifecycle events in registration order.
	Collaborators []Collaborator

	// FrameTracer, when non-nil, receives frame capture boundaries requested through
	// RequestFrameCapture.
	FrameTracer FrameTracer
}

// New creates a Scheduler that batches command recording into submissions on the provided
// queue and tracks their completion against fences created from the provided device.
//
// The scheduler is single-threaded: all methods must be called from one command-processor
// goroutine. Parallelism exists only between that goroutine and the device executing
// submitted work.
func New(logger *slog.Logger, device Device, queue Queue, options CreateOptions) (*Scheduler, error) {
	if device == nil {
		return nil, errors.New("a non-nil Device is required to create a Scheduler")
	}
	if queue == nil {
		return nil, errors.New("a non-nil Queue is required to create a Scheduler")
	}
	if options.SwapImageSlots < 0 {
		return nil, errors.Newf("CreateOptions.SwapImageSlots is %d, but it cannot be negative", options.SwapImageSlots)
	}

	s := &Scheduler{
		logger: logger,
		device: device,
		queue:  queue,

		createFlags:   options.Flags,
		collaborators: options.Collaborators,
		frameTracer:   options.FrameTracer,

		frameCurrent: 1,
	}

	s.guestVertexShaderStageFlags = options.GuestVertexShaderStageFlags
	if s.guestVertexShaderStageFlags == 0 {
		s.guestVertexShaderStageFlags = core1_0.StageVertex
	}

	slots := options.SwapImageSlots
	if slots == 0 {
		slots = defaultSwapImageSlots
	}
	s.swapFramebuffers = make([]swapFramebuffer, slots)
	for slotIndex := range s.swapFramebuffers {
		s.swapFramebuffers[slotIndex].version = swapFramebufferVersionNone
	}

	pageSets := options.DescriptorPoolPageSets
	if pageSets == 0 {
		pageSets = defaultDescriptorPoolPageSets
	}
	s.transientDescriptors.init(device, pageSets)

	s.layouts.init(device, s.guestVertexShaderStageFlags)
	s.dynamicState.reset()

	return s, nil
}
