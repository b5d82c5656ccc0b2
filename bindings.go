package gsched

import (
	"math/bits"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/core/v2/core1_0"
)

// boundGraphicsState tracks what is currently attached to the graphics bind point of the
// open submission's command buffer. At most one of guestPipeline and externalPipeline is
// non-nil at a time.
//
// The two descriptor set bitsets may diverge transiently: descriptorSetValuesUpToDate
// tracks which of descriptorSets point to the desired content, descriptorSetsBoundUpToDate
// tracks which are actually attached to the bind point. They are reconciled explicitly in
// bindDescriptorSetsForDraw, never assumed to agree.
type boundGraphicsState struct {
	renderPass  RenderPass
	framebuffer Framebuffer

	guestPipeline       Pipeline
	externalPipeline    Pipeline
	guestPipelineLayout *PipelineLayoutProvider

	descriptorSets              [DescriptorSetCount]DescriptorSet
	descriptorSetValuesUpToDate uint32
	descriptorSetsBoundUpToDate uint32
}

func (b *boundGraphicsState) reset() {
	*b = boundGraphicsState{}
}

// EndRenderPass closes the render pass currently open in the command buffer, if any. It
// must be called before any operation outside the render pass scope, including pipeline
// barriers that are not part of it, while a submission is open.
func (s *Scheduler) EndRenderPass() {
	if !s.submissionOpen || s.bound.renderPass == nil {
		return
	}
	s.currentCommandBuffer.buffer.CmdEndRenderPass()
	s.bound.renderPass = nil
	s.bound.framebuffer = nil
}

// BeginRenderPass opens the given render pass with the given framebuffer, first closing a
// different one if needed. Re-beginning the pass that is already open is elided.
func (s *Scheduler) BeginRenderPass(renderPass RenderPass, framebuffer Framebuffer, renderArea core1_0.Rect2D) error {
	if !s.submissionOpen {
		return errors.WithStack(SubmissionNotOpenError)
	}
	if renderPass == nil || framebuffer == nil {
		return errors.New("BeginRenderPass requires a render pass and a framebuffer")
	}
	if s.bound.renderPass == renderPass && s.bound.framebuffer == framebuffer {
		return nil
	}
	s.EndRenderPass()
	if err := s.currentCommandBuffer.buffer.CmdBeginRenderPass(renderPass, framebuffer, renderArea); err != nil {
		return errors.Wrap(err, "failed to begin a render pass")
	}
	s.bound.renderPass = renderPass
	s.bound.framebuffer = framebuffer
	return nil
}

// BindExternalGraphicsPipeline binds a graphics pipeline for host-internal purposes,
// invalidating the affected dynamic state. The keep flags must be false - to invalidate
// after binding a pipeline with the same state static, or when the caller changes the
// state bypassing the scheduler - unless the caller declares those states dynamic in every
// pipeline it binds and routes changes through UpdateDynamicState.
func (s *Scheduler) BindExternalGraphicsPipeline(pipeline Pipeline, keepDynamicDepthBias, keepDynamicBlendConstants, keepDynamicStencilMaskRef bool) error {
	if !s.submissionOpen {
		return errors.WithStack(SubmissionNotOpenError)
	}
	if pipeline == nil {
		return errors.New("BindExternalGraphicsPipeline requires a pipeline")
	}

	s.dynamicState.invalidateForPipelineBind(keepDynamicDepthBias, keepDynamicBlendConstants, keepDynamicStencilMaskRef)

	if s.bound.externalPipeline == pipeline {
		return nil
	}
	s.currentCommandBuffer.buffer.CmdBindPipeline(core1_0.PipelineBindPointGraphics, pipeline)
	s.bound.guestPipeline = nil
	s.bound.externalPipeline = pipeline
	return nil
}

// BindGuestGraphicsPipeline binds a guest pipeline compiled against a layout obtained from
// GetPipelineLayout. Guest pipelines declare the tracked dynamic state dynamic, so no
// dynamic state is invalidated.
func (s *Scheduler) BindGuestGraphicsPipeline(pipeline Pipeline, layout *PipelineLayoutProvider) error {
	if !s.submissionOpen {
		return errors.WithStack(SubmissionNotOpenError)
	}
	if pipeline == nil || layout == nil {
		return errors.New("BindGuestGraphicsPipeline requires a pipeline and its layout")
	}

	s.setGuestPipelineLayout(layout)

	if s.bound.guestPipeline == pipeline {
		return nil
	}
	s.currentCommandBuffer.buffer.CmdBindPipeline(core1_0.PipelineBindPointGraphics, pipeline)
	s.bound.externalPipeline = nil
	s.bound.guestPipeline = pipeline
	return nil
}

// setGuestPipelineLayout switches the tracked guest pipeline layout, keeping descriptor
// set state only where the new layout is compatible: bound bits survive for the leading
// run of identical set layouts, and desired values survive wherever the set layout is
// unchanged.
func (s *Scheduler) setGuestPipelineLayout(layout *PipelineLayoutProvider) {
	old := s.bound.guestPipelineLayout
	if old == layout {
		return
	}
	if old == nil {
		s.bound.descriptorSetsBoundUpToDate = 0
	} else {
		identicalPrefix := uint32(0)
		changed := uint32(0)
		prefixEnded := false
		for i := 0; i < DescriptorSetCount; i++ {
			if old.descriptorSetLayout(i) != layout.descriptorSetLayout(i) {
				prefixEnded = true
				changed |= 1 << i
				continue
			}
			if !prefixEnded {
				identicalPrefix |= 1 << i
			}
		}
		s.bound.descriptorSetsBoundUpToDate &= identicalPrefix
		s.bound.descriptorSetValuesUpToDate &^= changed
	}
	s.bound.guestPipelineLayout = layout
}

// WriteGraphicsDescriptorSet records the desired descriptor set for one set index. The set
// is not attached to the bind point until bindDescriptorSetsForDraw runs.
func (s *Scheduler) WriteGraphicsDescriptorSet(setIndex int, set DescriptorSet) error {
	if setIndex < 0 || setIndex >= DescriptorSetCount {
		return errors.Newf("descriptor set index %d is out of range", setIndex)
	}
	if set == nil {
		return errors.New("WriteGraphicsDescriptorSet requires a descriptor set")
	}
	if s.bound.descriptorSets[setIndex] != set {
		s.bound.descriptorSets[setIndex] = set
		s.bound.descriptorSetsBoundUpToDate &^= 1 << setIndex
	}
	s.bound.descriptorSetValuesUpToDate |= 1 << setIndex
	return nil
}

// BindDescriptorSetsForDraw reconciles the descriptor sets attached to the bind point with
// the desired ones, binding the contiguous range from set zero through the last out-of-date
// set. Every set index must have an up-to-date value; a draw with missing values is a
// caller error, reported rather than silently skipped.
func (s *Scheduler) BindDescriptorSetsForDraw() error {
	if !s.submissionOpen {
		return errors.WithStack(SubmissionNotOpenError)
	}
	if s.bound.guestPipelineLayout == nil {
		return errors.New("no guest pipeline layout is bound")
	}

	const layoutMask = uint32(1<<DescriptorSetCount) - 1

	// Bound-up-to-date is not guaranteed to be a subset of values-up-to-date after layout
	// changes and rewrites; mask it down before computing what to bind.
	s.bound.descriptorSetsBoundUpToDate &= s.bound.descriptorSetValuesUpToDate & layoutMask

	if s.bound.descriptorSetValuesUpToDate&layoutMask != layoutMask {
		return errors.Newf("descriptor set values are not up to date for sets 0x%X",
			layoutMask&^s.bound.descriptorSetValuesUpToDate)
	}

	missing := layoutMask &^ s.bound.descriptorSetsBoundUpToDate
	if missing == 0 {
		return nil
	}

	last := 31 - bits.LeadingZeros32(missing)
	sets := make([]DescriptorSet, 0, last+1)
	for i := 0; i <= last; i++ {
		sets = append(sets, s.bound.descriptorSets[i])
	}
	s.currentCommandBuffer.buffer.CmdBindDescriptorSets(core1_0.PipelineBindPointGraphics,
		s.bound.guestPipelineLayout.pipelineLayout, sets)
	s.bound.descriptorSetsBoundUpToDate = layoutMask
	return nil
}
