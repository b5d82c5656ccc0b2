package gsched_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/arsenal/gsched"
	mock_gsched "github.com/vkngwrapper/arsenal/gsched/mocks"
	"github.com/vkngwrapper/core/v2/common"
	"github.com/vkngwrapper/core/v2/core1_0"
	"go.uber.org/mock/gomock"
)

func TestSparseBindRequiresCreateFlag(t *testing.T) {
	f := newFixture(t)
	scheduler := f.newScheduler(gsched.CreateOptions{})

	buffer := mock_gsched.NewMockBuffer(f.ctrl)
	err := scheduler.SparseBindBuffer(buffer, []gsched.SparseMemoryBind{{Size: 4096}}, core1_0.PipelineStageVertexShader)
	require.Error(t, err)
}

func TestSparseBindsFlushGroupedByBuffer(t *testing.T) {
	f := newFixture(t)
	scheduler := f.newScheduler(gsched.CreateOptions{Flags: gsched.SchedulerCreateSparseBinding})

	bufferA := mock_gsched.NewMockBuffer(f.ctrl)
	bufferB := mock_gsched.NewMockBuffer(f.ctrl)
	memory := mock_gsched.NewMockDeviceMemory(f.ctrl)

	require.NoError(t, scheduler.SparseBindBuffer(bufferA, []gsched.SparseMemoryBind{
		{ResourceOffset: 0, Size: 4096, Memory: memory, MemoryOffset: 0},
	}, core1_0.PipelineStageVertexShader))
	require.NoError(t, scheduler.SparseBindBuffer(bufferB, []gsched.SparseMemoryBind{
		{ResourceOffset: 4096, Size: 4096, Memory: memory, MemoryOffset: 4096},
	}, core1_0.PipelineStageFragmentShader))
	// A second request for the first buffer joins its existing group.
	require.NoError(t, scheduler.SparseBindBuffer(bufferA, []gsched.SparseMemoryBind{
		{ResourceOffset: 8192, Size: 4096, Memory: memory, MemoryOffset: 8192},
	}, core1_0.PipelineStageVertexShader))

	var bound []gsched.BindSparseInfo
	f.queue.EXPECT().BindSparse(gomock.Any()).DoAndReturn(func(bindInfos []gsched.BindSparseInfo) (common.VkResult, error) {
		bound = bindInfos
		return core1_0.VKSuccess, nil
	})

	var submitted []gsched.SubmitInfo
	f.queue.EXPECT().Submit(gomock.Any(), gomock.Any()).DoAndReturn(func(_ gsched.Fence, submits []gsched.SubmitInfo) (common.VkResult, error) {
		submitted = submits
		return core1_0.VKSuccess, nil
	})

	_, err := scheduler.BeginSubmission(false)
	require.NoError(t, err)
	_, err = scheduler.EndSubmission(false)
	require.NoError(t, err)

	require.Len(t, bound, 1)
	require.Len(t, bound[0].BufferBinds, 2)
	require.Same(t, bufferA, bound[0].BufferBinds[0].Buffer)
	require.Len(t, bound[0].BufferBinds[0].Binds, 2)
	require.Equal(t, 0, bound[0].BufferBinds[0].Binds[0].ResourceOffset)
	require.Equal(t, 8192, bound[0].BufferBinds[0].Binds[1].ResourceOffset)
	require.Same(t, bufferB, bound[0].BufferBinds[1].Buffer)
	require.Len(t, bound[0].BufferBinds[1].Binds, 1)
	require.Len(t, bound[0].SignalSemaphores, 1)

	// The submission waits on the bind's signal semaphore with the union of the requested
	// stage masks.
	require.Len(t, submitted, 1)
	require.Len(t, submitted[0].WaitSemaphores, 1)
	require.Same(t, bound[0].SignalSemaphores[0], submitted[0].WaitSemaphores[0])
	require.Equal(t,
		core1_0.PipelineStageVertexShader|core1_0.PipelineStageFragmentShader,
		submitted[0].WaitDstStageMask[0])
}

func TestSparseBindFailureKeepsBindsQueued(t *testing.T) {
	f := newFixture(t)
	scheduler := f.newScheduler(gsched.CreateOptions{Flags: gsched.SchedulerCreateSparseBinding})

	buffer := mock_gsched.NewMockBuffer(f.ctrl)
	require.NoError(t, scheduler.SparseBindBuffer(buffer, []gsched.SparseMemoryBind{
		{Size: 4096},
	}, core1_0.PipelineStageVertexShader))

	gomock.InOrder(
		f.queue.EXPECT().BindSparse(gomock.Any()).
			Return(core1_0.VKErrorOutOfHostMemory, core1_0.VKErrorOutOfHostMemory.ToError()),
		f.queue.EXPECT().BindSparse(gomock.Any()).DoAndReturn(func(bindInfos []gsched.BindSparseInfo) (common.VkResult, error) {
			require.Len(t, bindInfos[0].BufferBinds, 1)
			require.Len(t, bindInfos[0].BufferBinds[0].Binds, 1)
			return core1_0.VKSuccess, nil
		}),
	)
	f.expectSubmitSuccess()

	_, err := scheduler.BeginSubmission(false)
	require.NoError(t, err)

	// The flush failure keeps the submission open and the binds queued.
	_, err = scheduler.EndSubmission(false)
	require.Error(t, err)
	require.Equal(t, uint64(1), scheduler.GetCurrentSubmission())

	_, err = scheduler.EndSubmission(false)
	require.NoError(t, err)
	require.Equal(t, uint64(2), scheduler.GetCurrentSubmission())
}
