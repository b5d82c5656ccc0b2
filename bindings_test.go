package gsched_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/arsenal/gsched"
	mock_gsched "github.com/vkngwrapper/arsenal/gsched/mocks"
	"github.com/vkngwrapper/core/v2/core1_0"
	"go.uber.org/mock/gomock"
)

func TestRenderPassElision(t *testing.T) {
	f := newFixture(t)
	scheduler := f.newScheduler(gsched.CreateOptions{})

	_, err := scheduler.BeginSubmission(false)
	require.NoError(t, err)
	buffer := f.currentBuffer()

	renderPass := mock_gsched.NewMockRenderPass(f.ctrl)
	framebufferA := mock_gsched.NewMockFramebuffer(f.ctrl)
	framebufferB := mock_gsched.NewMockFramebuffer(f.ctrl)
	renderArea := core1_0.Rect2D{Extent: core1_0.Extent2D{Width: 1280, Height: 720}}

	buffer.EXPECT().CmdBeginRenderPass(renderPass, framebufferA, renderArea).Return(nil).Times(1)
	require.NoError(t, scheduler.BeginRenderPass(renderPass, framebufferA, renderArea))

	// Re-beginning the open pass with the same framebuffer is elided.
	require.NoError(t, scheduler.BeginRenderPass(renderPass, framebufferA, renderArea))

	// A different framebuffer closes the open pass and begins a new one.
	gomock.InOrder(
		buffer.EXPECT().CmdEndRenderPass(),
		buffer.EXPECT().CmdBeginRenderPass(renderPass, framebufferB, renderArea).Return(nil),
	)
	require.NoError(t, scheduler.BeginRenderPass(renderPass, framebufferB, renderArea))

	buffer.EXPECT().CmdEndRenderPass().Times(1)
	scheduler.EndRenderPass()
	scheduler.EndRenderPass()
}

func TestGuestPipelineBindElision(t *testing.T) {
	f := newFixture(t)
	scheduler := f.newScheduler(gsched.CreateOptions{})

	_, err := scheduler.BeginSubmission(false)
	require.NoError(t, err)
	buffer := f.currentBuffer()

	layout, err := scheduler.GetPipelineLayout(0, 0)
	require.NoError(t, err)

	guestPipeline := mock_gsched.NewMockPipeline(f.ctrl)
	externalPipeline := mock_gsched.NewMockPipeline(f.ctrl)

	buffer.EXPECT().CmdBindPipeline(core1_0.PipelineBindPointGraphics, guestPipeline).Times(1)
	require.NoError(t, scheduler.BindGuestGraphicsPipeline(guestPipeline, layout))
	require.NoError(t, scheduler.BindGuestGraphicsPipeline(guestPipeline, layout))

	// An external pipeline takes over the bind point, so rebinding the guest pipeline
	// afterwards must emit again.
	buffer.EXPECT().CmdBindPipeline(core1_0.PipelineBindPointGraphics, externalPipeline).Times(1)
	require.NoError(t, scheduler.BindExternalGraphicsPipeline(externalPipeline, true, true, true))

	buffer.EXPECT().CmdBindPipeline(core1_0.PipelineBindPointGraphics, guestPipeline).Times(1)
	require.NoError(t, scheduler.BindGuestGraphicsPipeline(guestPipeline, layout))
}

func writeAllDescriptorSets(t *testing.T, f *schedulerFixture, scheduler *gsched.Scheduler) [gsched.DescriptorSetCount]gsched.DescriptorSet {
	var sets [gsched.DescriptorSetCount]gsched.DescriptorSet
	for i := 0; i < gsched.DescriptorSetCount; i++ {
		sets[i] = mock_gsched.NewMockDescriptorSet(f.ctrl)
		require.NoError(t, scheduler.WriteGraphicsDescriptorSet(i, sets[i]))
	}
	return sets
}

func TestBindDescriptorSetsForDraw(t *testing.T) {
	f := newFixture(t)
	scheduler := f.newScheduler(gsched.CreateOptions{})

	_, err := scheduler.BeginSubmission(false)
	require.NoError(t, err)
	buffer := f.currentBuffer()

	layout, err := scheduler.GetPipelineLayout(1, 1)
	require.NoError(t, err)
	pipeline := mock_gsched.NewMockPipeline(f.ctrl)
	buffer.EXPECT().CmdBindPipeline(core1_0.PipelineBindPointGraphics, pipeline).Times(1)
	require.NoError(t, scheduler.BindGuestGraphicsPipeline(pipeline, layout))

	// A draw before any descriptor set values exist is a caller error.
	require.Error(t, scheduler.BindDescriptorSetsForDraw())

	sets := writeAllDescriptorSets(t, f, scheduler)

	var boundSets []gsched.DescriptorSet
	buffer.EXPECT().CmdBindDescriptorSets(core1_0.PipelineBindPointGraphics, layout.PipelineLayout(), gomock.Any()).
		DoAndReturn(func(_ core1_0.PipelineBindPoint, _ gsched.PipelineLayout, bind []gsched.DescriptorSet) {
			boundSets = bind
		}).Times(1)
	require.NoError(t, scheduler.BindDescriptorSetsForDraw())
	require.Len(t, boundSets, gsched.DescriptorSetCount)
	require.Same(t, sets[0], boundSets[0])
	require.Same(t, sets[gsched.DescriptorSetCount-1], boundSets[gsched.DescriptorSetCount-1])

	// Everything is attached; the next draw binds nothing.
	require.NoError(t, scheduler.BindDescriptorSetsForDraw())

	// Rewriting one set rebinds the contiguous range from set zero through it.
	replacement := mock_gsched.NewMockDescriptorSet(f.ctrl)
	require.NoError(t, scheduler.WriteGraphicsDescriptorSet(gsched.DescriptorSetSystemConstants, replacement))
	buffer.EXPECT().CmdBindDescriptorSets(core1_0.PipelineBindPointGraphics, layout.PipelineLayout(), gomock.Any()).
		DoAndReturn(func(_ core1_0.PipelineBindPoint, _ gsched.PipelineLayout, bind []gsched.DescriptorSet) {
			boundSets = bind
		}).Times(1)
	require.NoError(t, scheduler.BindDescriptorSetsForDraw())
	require.Len(t, boundSets, gsched.DescriptorSetSystemConstants+1)
	require.Same(t, replacement, boundSets[gsched.DescriptorSetSystemConstants])
}

func TestLayoutSwitchInvalidatesChangedSets(t *testing.T) {
	f := newFixture(t)
	scheduler := f.newScheduler(gsched.CreateOptions{})

	_, err := scheduler.BeginSubmission(false)
	require.NoError(t, err)
	buffer := f.currentBuffer()

	// The two layouts differ only in the pixel texture count, so only the pixel texture
	// set layout (the last set) changes between them.
	layoutA, err := scheduler.GetPipelineLayout(1, 1)
	require.NoError(t, err)
	layoutB, err := scheduler.GetPipelineLayout(2, 1)
	require.NoError(t, err)

	pipelineA := mock_gsched.NewMockPipeline(f.ctrl)
	pipelineB := mock_gsched.NewMockPipeline(f.ctrl)
	buffer.EXPECT().CmdBindPipeline(core1_0.PipelineBindPointGraphics, gomock.Any()).AnyTimes()

	require.NoError(t, scheduler.BindGuestGraphicsPipeline(pipelineA, layoutA))
	writeAllDescriptorSets(t, f, scheduler)

	buffer.EXPECT().CmdBindDescriptorSets(core1_0.PipelineBindPointGraphics, layoutA.PipelineLayout(), gomock.Any()).Times(1)
	require.NoError(t, scheduler.BindDescriptorSetsForDraw())

	// The pixel texture set's written value targets the old layout, so a draw under the
	// new layout must fail until it is rewritten.
	require.NoError(t, scheduler.BindGuestGraphicsPipeline(pipelineB, layoutB))
	require.Error(t, scheduler.BindDescriptorSetsForDraw())

	rewritten := mock_gsched.NewMockDescriptorSet(f.ctrl)
	require.NoError(t, scheduler.WriteGraphicsDescriptorSet(gsched.DescriptorSetTexturesPixel, rewritten))

	var boundSets []gsched.DescriptorSet
	buffer.EXPECT().CmdBindDescriptorSets(core1_0.PipelineBindPointGraphics, layoutB.PipelineLayout(), gomock.Any()).
		DoAndReturn(func(_ core1_0.PipelineBindPoint, _ gsched.PipelineLayout, bind []gsched.DescriptorSet) {
			boundSets = bind
		}).Times(1)
	require.NoError(t, scheduler.BindDescriptorSetsForDraw())
	require.Len(t, boundSets, gsched.DescriptorSetCount)
	require.Same(t, rewritten, boundSets[gsched.DescriptorSetTexturesPixel])
}

func TestWriteGraphicsDescriptorSetValidation(t *testing.T) {
	f := newFixture(t)
	scheduler := f.newScheduler(gsched.CreateOptions{})

	set := mock_gsched.NewMockDescriptorSet(f.ctrl)
	require.Error(t, scheduler.WriteGraphicsDescriptorSet(-1, set))
	require.Error(t, scheduler.WriteGraphicsDescriptorSet(gsched.DescriptorSetCount, set))
	require.Error(t, scheduler.WriteGraphicsDescriptorSet(0, nil))
}
