package gsched_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/arsenal/gsched"
	mock_gsched "github.com/vkngwrapper/arsenal/gsched/mocks"
)

func TestSwapFramebufferVersioning(t *testing.T) {
	f := newFixture(t)
	scheduler := f.newScheduler(gsched.CreateOptions{})

	renderPass := mock_gsched.NewMockRenderPass(f.ctrl)
	attachment := mock_gsched.NewMockImageView(f.ctrl)

	require.Nil(t, scheduler.GetSwapFramebuffer(0, 1))

	created, err := scheduler.GetOrCreateSwapFramebuffer(0, 1, renderPass, attachment, 1280, 720)
	require.NoError(t, err)
	require.Len(t, f.framebuffers, 1)

	// The same slot and version hit the cache.
	cached, err := scheduler.GetOrCreateSwapFramebuffer(0, 1, renderPass, attachment, 1280, 720)
	require.NoError(t, err)
	require.Same(t, created, cached)
	require.Len(t, f.framebuffers, 1)

	require.Same(t, created, scheduler.GetSwapFramebuffer(0, 1))
	require.Nil(t, scheduler.GetSwapFramebuffer(0, 2))

	// Slots are independent.
	other, err := scheduler.GetOrCreateSwapFramebuffer(1, 1, renderPass, attachment, 1280, 720)
	require.NoError(t, err)
	require.NotSame(t, created, other)
	require.Len(t, f.framebuffers, 2)
}

func TestSwapFramebufferSlotValidation(t *testing.T) {
	f := newFixture(t)
	scheduler := f.newScheduler(gsched.CreateOptions{SwapImageSlots: 2})

	renderPass := mock_gsched.NewMockRenderPass(f.ctrl)
	attachment := mock_gsched.NewMockImageView(f.ctrl)

	require.Nil(t, scheduler.GetSwapFramebuffer(2, 1))
	require.Nil(t, scheduler.GetSwapFramebuffer(-1, 1))

	_, err := scheduler.GetOrCreateSwapFramebuffer(2, 1, renderPass, attachment, 1280, 720)
	require.Error(t, err)
	_, err = scheduler.GetOrCreateSwapFramebuffer(0, 1, nil, attachment, 1280, 720)
	require.Error(t, err)
}

func TestSupersededSwapFramebufferDestroyedAfterCompletion(t *testing.T) {
	f := newFixture(t)
	f.expectSubmitSuccess()
	scheduler := f.newScheduler(gsched.CreateOptions{})

	renderPass := mock_gsched.NewMockRenderPass(f.ctrl)
	attachment := mock_gsched.NewMockImageView(f.ctrl)

	// The first version is referenced by submission 1.
	_, err := scheduler.BeginSubmission(false)
	require.NoError(t, err)
	_, err = scheduler.GetOrCreateSwapFramebuffer(0, 1, renderPass, attachment, 1280, 720)
	require.NoError(t, err)
	_, err = scheduler.EndSubmission(false)
	require.NoError(t, err)

	// A new swap image version supersedes it, but submission 1 has not completed yet, so
	// it must stay alive.
	_, err = scheduler.GetOrCreateSwapFramebuffer(0, 2, renderPass, attachment, 1280, 720)
	require.NoError(t, err)
	require.Len(t, f.framebuffers, 2)

	scheduler.CheckSubmissionFenceAndDeviceLoss(0)
	require.False(t, f.framebuffers[0].destroyed)

	f.signalAll()
	scheduler.CheckSubmissionFenceAndDeviceLoss(0)
	require.True(t, f.framebuffers[0].destroyed)
	require.False(t, f.framebuffers[1].destroyed)
}
