package gsched_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/arsenal/gsched"
	mock_gsched "github.com/vkngwrapper/arsenal/gsched/mocks"
	"github.com/vkngwrapper/core/v2/core1_0"
)

func baseDynamicState() gsched.DynamicStateUpdate {
	return gsched.DynamicStateUpdate{
		Viewport: core1_0.Viewport{Width: 1280, Height: 720, MaxDepth: 1},
		Scissor: core1_0.Rect2D{
			Extent: core1_0.Extent2D{Width: 1280, Height: 720},
		},
		DepthBiasConstantFactor: 2,
		DepthBiasSlopeFactor:    0.5,
		BlendConstants:          [4]float32{0.25, 0.5, 0.75, 1},

		StencilCompareMaskFront: 0x0F,
		StencilCompareMaskBack:  0x0F,
		StencilWriteMaskFront:   0xFF,
		StencilWriteMaskBack:    0xFF,
		StencilReferenceFront:   1,
		StencilReferenceBack:    2,

		PrimitivePolygonal: true,
	}
}

func TestDynamicStateEmitsOnceThenElides(t *testing.T) {
	f := newFixture(t)
	scheduler := f.newScheduler(gsched.CreateOptions{})

	_, err := scheduler.BeginSubmission(false)
	require.NoError(t, err)
	buffer := f.currentBuffer()

	update := baseDynamicState()
	buffer.EXPECT().CmdSetViewport(update.Viewport).Times(1)
	buffer.EXPECT().CmdSetScissor(update.Scissor).Times(1)
	buffer.EXPECT().CmdSetDepthBias(float32(2), float32(0), float32(0.5)).Times(1)
	buffer.EXPECT().CmdSetBlendConstants(update.BlendConstants).Times(1)
	// Equal front and back values pair into one front-and-back command.
	buffer.EXPECT().CmdSetStencilCompareMask(core1_0.StencilFaceFront|core1_0.StencilFaceBack, uint32(0x0F)).Times(1)
	buffer.EXPECT().CmdSetStencilWriteMask(core1_0.StencilFaceFront|core1_0.StencilFaceBack, uint32(0xFF)).Times(1)
	buffer.EXPECT().CmdSetStencilReference(core1_0.StencilFaceFront, uint32(1)).Times(1)
	buffer.EXPECT().CmdSetStencilReference(core1_0.StencilFaceBack, uint32(2)).Times(1)

	require.NoError(t, scheduler.UpdateDynamicState(update))

	// Everything is live at the bind point now; the identical update emits nothing.
	require.NoError(t, scheduler.UpdateDynamicState(update))

	// A single changed field emits only that field.
	update.DepthBiasConstantFactor = 4
	buffer.EXPECT().CmdSetDepthBias(float32(4), float32(0), float32(0.5)).Times(1)
	require.NoError(t, scheduler.UpdateDynamicState(update))
}

func TestDynamicStateNonPolygonalSkipsBackFace(t *testing.T) {
	f := newFixture(t)
	scheduler := f.newScheduler(gsched.CreateOptions{})

	_, err := scheduler.BeginSubmission(false)
	require.NoError(t, err)
	buffer := f.currentBuffer()

	update := baseDynamicState()
	update.PrimitivePolygonal = false
	update.StencilReferenceFront = 5
	update.StencilReferenceBack = 7

	buffer.EXPECT().CmdSetViewport(update.Viewport).Times(1)
	buffer.EXPECT().CmdSetScissor(update.Scissor).Times(1)
	buffer.EXPECT().CmdSetDepthBias(float32(2), float32(0), float32(0.5)).Times(1)
	buffer.EXPECT().CmdSetBlendConstants(update.BlendConstants).Times(1)
	// Back-face stencil values are not updated for non-polygonal primitives.
	buffer.EXPECT().CmdSetStencilCompareMask(core1_0.StencilFaceFront, uint32(0x0F)).Times(1)
	buffer.EXPECT().CmdSetStencilWriteMask(core1_0.StencilFaceFront, uint32(0xFF)).Times(1)
	buffer.EXPECT().CmdSetStencilReference(core1_0.StencilFaceFront, uint32(5)).Times(1)

	require.NoError(t, scheduler.UpdateDynamicState(update))

	// Switching to a polygonal primitive catches the back face up without touching the
	// already-live front values.
	update.PrimitivePolygonal = true
	update.StencilCompareMaskBack = 0x0F
	update.StencilWriteMaskBack = 0xFF
	update.StencilReferenceBack = 7
	buffer.EXPECT().CmdSetStencilCompareMask(core1_0.StencilFaceBack, uint32(0x0F)).Times(1)
	buffer.EXPECT().CmdSetStencilWriteMask(core1_0.StencilFaceBack, uint32(0xFF)).Times(1)
	buffer.EXPECT().CmdSetStencilReference(core1_0.StencilFaceBack, uint32(7)).Times(1)

	require.NoError(t, scheduler.UpdateDynamicState(update))
}

func TestPipelineBindReemitsDestroyedState(t *testing.T) {
	f := newFixture(t)
	scheduler := f.newScheduler(gsched.CreateOptions{})

	_, err := scheduler.BeginSubmission(false)
	require.NoError(t, err)
	buffer := f.currentBuffer()

	update := baseDynamicState()
	buffer.EXPECT().CmdSetViewport(update.Viewport).Times(1)
	buffer.EXPECT().CmdSetScissor(update.Scissor).Times(1)
	buffer.EXPECT().CmdSetDepthBias(float32(2), float32(0), float32(0.5)).Times(2)
	buffer.EXPECT().CmdSetBlendConstants(update.BlendConstants).Times(2)
	buffer.EXPECT().CmdSetStencilCompareMask(core1_0.StencilFaceFront|core1_0.StencilFaceBack, uint32(0x0F)).Times(2)
	buffer.EXPECT().CmdSetStencilWriteMask(core1_0.StencilFaceFront|core1_0.StencilFaceBack, uint32(0xFF)).Times(2)
	buffer.EXPECT().CmdSetStencilReference(core1_0.StencilFaceFront, uint32(1)).Times(2)
	buffer.EXPECT().CmdSetStencilReference(core1_0.StencilFaceBack, uint32(2)).Times(2)

	require.NoError(t, scheduler.UpdateDynamicState(update))

	// A pipeline with every tracked state static destroys depth bias, blend constants and
	// stencil at the bind point, but never viewport and scissor, which all pipelines here
	// declare dynamic.
	pipeline := mock_gsched.NewMockPipeline(f.ctrl)
	buffer.EXPECT().CmdBindPipeline(core1_0.PipelineBindPointGraphics, pipeline).Times(1)
	require.NoError(t, scheduler.BindExternalGraphicsPipeline(pipeline, false, false, false))

	require.NoError(t, scheduler.UpdateDynamicState(update))
}

func TestPipelineBindWithKeepFlagsPreservesState(t *testing.T) {
	f := newFixture(t)
	scheduler := f.newScheduler(gsched.CreateOptions{})

	_, err := scheduler.BeginSubmission(false)
	require.NoError(t, err)
	buffer := f.currentBuffer()

	update := baseDynamicState()
	buffer.EXPECT().CmdSetViewport(update.Viewport).Times(1)
	buffer.EXPECT().CmdSetScissor(update.Scissor).Times(1)
	buffer.EXPECT().CmdSetDepthBias(float32(2), float32(0), float32(0.5)).Times(1)
	buffer.EXPECT().CmdSetBlendConstants(update.BlendConstants).Times(1)
	buffer.EXPECT().CmdSetStencilCompareMask(core1_0.StencilFaceFront|core1_0.StencilFaceBack, uint32(0x0F)).Times(1)
	buffer.EXPECT().CmdSetStencilWriteMask(core1_0.StencilFaceFront|core1_0.StencilFaceBack, uint32(0xFF)).Times(1)
	buffer.EXPECT().CmdSetStencilReference(core1_0.StencilFaceFront, uint32(1)).Times(1)
	buffer.EXPECT().CmdSetStencilReference(core1_0.StencilFaceBack, uint32(2)).Times(1)

	require.NoError(t, scheduler.UpdateDynamicState(update))

	// A pipeline declaring all tracked state dynamic destroys nothing.
	pipeline := mock_gsched.NewMockPipeline(f.ctrl)
	buffer.EXPECT().CmdBindPipeline(core1_0.PipelineBindPointGraphics, pipeline).Times(1)
	require.NoError(t, scheduler.BindExternalGraphicsPipeline(pipeline, true, true, true))

	require.NoError(t, scheduler.UpdateDynamicState(update))
}

func TestUpdateDynamicStateRequiresOpenSubmission(t *testing.T) {
	f := newFixture(t)
	scheduler := f.newScheduler(gsched.CreateOptions{})

	err := scheduler.UpdateDynamicState(baseDynamicState())
	require.ErrorIs(t, err, gsched.SubmissionNotOpenError)
}
