package gsched

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/core/v2/core1_0"
)

// Dynamic state tracking for the graphics pipeline bind point. The host device ties
// dynamic state to the bind point, not to explicit re-declaration: binding any pipeline
// that declares a state static destroys the bind point's notion of that state, even if the
// pipeline never uses it. Each field therefore runs a small state machine instead of an ad
// hoc dirty flag, so that rule is one reusable transition.

type dynamicField int

const (
	dynamicFieldViewport dynamicField = iota
	dynamicFieldScissor
	dynamicFieldDepthBias
	dynamicFieldBlendConstants
	dynamicFieldStencilCompareMaskFront
	dynamicFieldStencilCompareMaskBack
	dynamicFieldStencilWriteMaskFront
	dynamicFieldStencilWriteMaskBack
	dynamicFieldStencilReferenceFront
	dynamicFieldStencilReferenceBack
	dynamicFieldCount
)

type dynamicFieldPhase uint8

const (
	// dynamicFieldUnknown - the bind point holds no known value (fresh command buffer).
	dynamicFieldUnknown dynamicFieldPhase = iota
	// dynamicFieldStale - the tracked value is known but the bind point no longer honors
	// it (a pipeline declaring the field static was bound since it was set).
	dynamicFieldStale
	// dynamicFieldCurrent - the tracked value is live at the bind point.
	dynamicFieldCurrent
)

// Stencil masks and references are pre-seeded with a shared non-zero default for both
// faces, because back-face values are updated only for polygonal primitives: toggling
// between non-polygonal and polygonal topologies must never emit a transition against an
// uninitialized back-face value.
const (
	defaultStencilMask      uint32 = 0xFF
	defaultStencilReference uint32 = 0
)

// DynamicStateUpdate is the desired per-draw dynamic state computed from guest registers.
// Back-face stencil values are ignored for non-polygonal primitives.
type DynamicStateUpdate struct {
	Viewport                core1_0.Viewport
	Scissor                 core1_0.Rect2D
	DepthBiasConstantFactor float32
	DepthBiasSlopeFactor    float32
	BlendConstants          [4]float32

	StencilCompareMaskFront uint32
	StencilCompareMaskBack  uint32
	StencilWriteMaskFront   uint32
	StencilWriteMaskBack    uint32
	StencilReferenceFront   uint32
	StencilReferenceBack    uint32

	PrimitivePolygonal bool
}

type dynamicStateTracker struct {
	phase [dynamicFieldCount]dynamicFieldPhase

	viewport                core1_0.Viewport
	scissor                 core1_0.Rect2D
	depthBiasConstantFactor float32
	depthBiasSlopeFactor    float32
	blendConstants          [4]float32

	stencilCompareMaskFront uint32
	stencilCompareMaskBack  uint32
	stencilWriteMaskFront   uint32
	stencilWriteMaskBack    uint32
	stencilReferenceFront   uint32
	stencilReferenceBack    uint32
}

// reset seeds the stencil defaults. Called once at scheduler creation.
func (t *dynamicStateTracker) reset() {
	t.stencilCompareMaskFront = defaultStencilMask
	t.stencilCompareMaskBack = defaultStencilMask
	t.stencilWriteMaskFront = defaultStencilMask
	t.stencilWriteMaskBack = defaultStencilMask
	t.stencilReferenceFront = defaultStencilReference
	t.stencilReferenceBack = defaultStencilReference
	t.invalidate()
}

// invalidate drops every field to Unknown. Called when a submission opens with a fresh
// command buffer.
func (t *dynamicStateTracker) invalidate() {
	for i := range t.phase {
		t.phase[i] = dynamicFieldUnknown
	}
}

// invalidateForPipelineBind marks the fields a pipeline bind destroys as Stale. A keep
// flag may only be passed by callers that declare the corresponding state dynamic in every
// pipeline they bind and route changes through this tracker.
func (t *dynamicStateTracker) invalidateForPipelineBind(keepDepthBias, keepBlendConstants, keepStencilMaskRef bool) {
	if !keepDepthBias {
		t.markStale(dynamicFieldDepthBias)
	}
	if !keepBlendConstants {
		t.markStale(dynamicFieldBlendConstants)
	}
	if !keepStencilMaskRef {
		t.markStale(dynamicFieldStencilCompareMaskFront)
		t.markStale(dynamicFieldStencilCompareMaskBack)
		t.markStale(dynamicFieldStencilWriteMaskFront)
		t.markStale(dynamicFieldStencilWriteMaskBack)
		t.markStale(dynamicFieldStencilReferenceFront)
		t.markStale(dynamicFieldStencilReferenceBack)
	}
}

func (t *dynamicStateTracker) markStale(field dynamicField) {
	if t.phase[field] == dynamicFieldCurrent {
		t.phase[field] = dynamicFieldStale
	}
}

// apply emits state-setting commands for exactly the fields whose desired value is not
// already live at the bind point.
func (t *dynamicStateTracker) apply(cb CommandBuffer, u *DynamicStateUpdate) {
	if t.phase[dynamicFieldViewport] != dynamicFieldCurrent || t.viewport != u.Viewport {
		t.viewport = u.Viewport
		t.phase[dynamicFieldViewport] = dynamicFieldCurrent
		cb.CmdSetViewport(u.Viewport)
	}

	if t.phase[dynamicFieldScissor] != dynamicFieldCurrent || t.scissor != u.Scissor {
		t.scissor = u.Scissor
		t.phase[dynamicFieldScissor] = dynamicFieldCurrent
		cb.CmdSetScissor(u.Scissor)
	}

	if t.phase[dynamicFieldDepthBias] != dynamicFieldCurrent ||
		t.depthBiasConstantFactor != u.DepthBiasConstantFactor ||
		t.depthBiasSlopeFactor != u.DepthBiasSlopeFactor {
		t.depthBiasConstantFactor = u.DepthBiasConstantFactor
		t.depthBiasSlopeFactor = u.DepthBiasSlopeFactor
		t.phase[dynamicFieldDepthBias] = dynamicFieldCurrent
		cb.CmdSetDepthBias(u.DepthBiasConstantFactor, 0, u.DepthBiasSlopeFactor)
	}

	if t.phase[dynamicFieldBlendConstants] != dynamicFieldCurrent || t.blendConstants != u.BlendConstants {
		t.blendConstants = u.BlendConstants
		t.phase[dynamicFieldBlendConstants] = dynamicFieldCurrent
		cb.CmdSetBlendConstants(u.BlendConstants)
	}

	t.applyStencil(cb, u)
}

// applyStencilValue resolves which faces need one stencil value set, pairing front/back
// emissions into a single front-and-back command when both need the same value.
func (t *dynamicStateTracker) applyStencilValue(
	cb CommandBuffer,
	emit func(cb CommandBuffer, faceMask core1_0.StencilFaceFlags, value uint32),
	frontField, backField dynamicField,
	front, back *uint32,
	desiredFront, desiredBack uint32,
	updateBack bool,
) {
	frontNeeded := t.phase[frontField] != dynamicFieldCurrent || *front != desiredFront
	backNeeded := updateBack && (t.phase[backField] != dynamicFieldCurrent || *back != desiredBack)

	if frontNeeded && backNeeded && desiredFront == desiredBack {
		*front = desiredFront
		*back = desiredBack
		t.phase[frontField] = dynamicFieldCurrent
		t.phase[backField] = dynamicFieldCurrent
		emit(cb, core1_0.StencilFaceFront|core1_0.StencilFaceBack, desiredFront)
		return
	}
	if frontNeeded {
		*front = desiredFront
		t.phase[frontField] = dynamicFieldCurrent
		emit(cb, core1_0.StencilFaceFront, desiredFront)
	}
	if backNeeded {
		*back = desiredBack
		t.phase[backField] = dynamicFieldCurrent
		emit(cb, core1_0.StencilFaceBack, desiredBack)
	}
}

func (t *dynamicStateTracker) applyStencil(cb CommandBuffer, u *DynamicStateUpdate) {
	t.applyStencilValue(cb,
		func(cb CommandBuffer, faceMask core1_0.StencilFaceFlags, value uint32) {
			cb.CmdSetStencilCompareMask(faceMask, value)
		},
		dynamicFieldStencilCompareMaskFront, dynamicFieldStencilCompareMaskBack,
		&t.stencilCompareMaskFront, &t.stencilCompareMaskBack,
		u.StencilCompareMaskFront, u.StencilCompareMaskBack,
		u.PrimitivePolygonal)

	t.applyStencilValue(cb,
		func(cb CommandBuffer, faceMask core1_0.StencilFaceFlags, value uint32) {
			cb.CmdSetStencilWriteMask(faceMask, value)
		},
		dynamicFieldStencilWriteMaskFront, dynamicFieldStencilWriteMaskBack,
		&t.stencilWriteMaskFront, &t.stencilWriteMaskBack,
		u.StencilWriteMaskFront, u.StencilWriteMaskBack,
		u.PrimitivePolygonal)

	t.applyStencilValue(cb,
		func(cb CommandBuffer, faceMask core1_0.StencilFaceFlags, value uint32) {
			cb.CmdSetStencilReference(faceMask, value)
		},
		dynamicFieldStencilReferenceFront, dynamicFieldStencilReferenceBack,
		&t.stencilReferenceFront, &t.stencilReferenceBack,
		u.StencilReferenceFront, u.StencilReferenceBack,
		u.PrimitivePolygonal)
}

// UpdateDynamicState compares the desired per-draw dynamic state against what is live at
// the graphics bind point and emits state-setting commands only for the fields that
// actually differ. A submission must be open.
func (s *Scheduler) UpdateDynamicState(u DynamicStateUpdate) error {
	if !s.submissionOpen {
		return errors.WithStack(SubmissionNotOpenError)
	}
	s.dynamicState.apply(s.currentCommandBuffer.buffer, &u)
	return nil
}
