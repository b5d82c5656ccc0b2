package vulkan

import (
	"log"
	"os"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/arsenal/gsched"
	"github.com/vkngwrapper/core/v2"
	"github.com/vkngwrapper/core/v2/common"
	"github.com/vkngwrapper/core/v2/core1_0"
	"github.com/vkngwrapper/extensions/v2/ext_debug_utils"
	"github.com/vkngwrapper/extensions/v2/khr_portability_enumeration"
	"github.com/vkngwrapper/extensions/v2/khr_portability_subset"
	"golang.org/x/exp/slog"
)

func logDebug(msgType ext_debug_utils.DebugUtilsMessageTypeFlags, severity ext_debug_utils.DebugUtilsMessageSeverityFlags, data *ext_debug_utils.DebugUtilsMessengerCallbackData) bool {
	log.Printf("[%s %s] - %s", severity, msgType, data.Message)
	return false
}

func createApplication(t require.TestingT, name string) (core1_0.Instance, ext_debug_utils.DebugUtilsMessenger, core1_0.Device, core1_0.Queue, int) {
	runtime.LockOSThread()

	loader, err := core.CreateSystemLoader()
	if err != nil {
		log.Fatalln(err)
	}

	instanceExtensions, _, err := loader.AvailableExtensions()
	require.NoError(t, err)

	instanceExtensionNames := []string{ext_debug_utils.ExtensionName}
	var flags core1_0.InstanceCreateFlags
	_, ok := instanceExtensions[khr_portability_enumeration.ExtensionName]
	if ok {
		instanceExtensionNames = append(instanceExtensionNames, khr_portability_enumeration.ExtensionName)
		flags |= khr_portability_enumeration.InstanceCreateEnumeratePortability
	}

	instance, _, err := loader.CreateInstance(nil, core1_0.InstanceCreateInfo{
		ApplicationName:       name,
		ApplicationVersion:    common.CreateVersion(1, 0, 0),
		EngineName:            "go test",
		EngineVersion:         common.CreateVersion(1, 0, 0),
		APIVersion:            common.Vulkan1_0,
		EnabledExtensionNames: instanceExtensionNames,
		Flags:                 flags,
		NextOptions: common.NextOptions{Next: ext_debug_utils.DebugUtilsMessengerCreateInfo{
			MessageSeverity: ext_debug_utils.SeverityError | ext_debug_utils.SeverityWarning,
			MessageType:     ext_debug_utils.TypeGeneral | ext_debug_utils.TypeValidation | ext_debug_utils.TypePerformance,
			UserCallback:    logDebug,
		}},
	})
	require.NoError(t, err)

	debugLoader := ext_debug_utils.CreateExtensionFromInstance(instance)
	debugMessenger, _, err := debugLoader.CreateDebugUtilsMessenger(instance, nil, ext_debug_utils.DebugUtilsMessengerCreateInfo{
		MessageSeverity: ext_debug_utils.SeverityError | ext_debug_utils.SeverityWarning,
		MessageType:     ext_debug_utils.TypeGeneral | ext_debug_utils.TypeValidation | ext_debug_utils.TypePerformance,
		UserCallback:    logDebug,
	})
	require.NoError(t, err)

	gpus, _, err := instance.EnumeratePhysicalDevices()
	require.NoError(t, err)

	physDevice := gpus[0]

	graphicsFamily := -1
	queueProps := physDevice.QueueFamilyProperties()
	for queueIndex, queueFamily := range queueProps {
		if queueFamily.QueueFlags&core1_0.QueueGraphics != 0 {
			graphicsFamily = queueIndex
			break
		}
	}
	require.GreaterOrEqual(t, graphicsFamily, 0)

	var deviceExtensionNames []string
	deviceExtensions, _, err := physDevice.EnumerateDeviceExtensionProperties()
	require.NoError(t, err)

	_, ok = deviceExtensions[khr_portability_subset.ExtensionName]
	if ok {
		deviceExtensionNames = append(deviceExtensionNames, khr_portability_subset.ExtensionName)
	}

	device, _, err := physDevice.CreateDevice(nil, core1_0.DeviceCreateInfo{
		QueueCreateInfos: []core1_0.DeviceQueueCreateInfo{
			{
				QueueFamilyIndex: graphicsFamily,
				QueuePriorities:  []float32{0.0},
			},
		},
		EnabledExtensionNames: deviceExtensionNames,
	})
	require.NoError(t, err)

	queue := device.GetQueue(graphicsFamily, 0)

	return instance, debugMessenger, device, queue, graphicsFamily
}

func destroyApplication(t require.TestingT, instance core1_0.Instance, debugMessenger ext_debug_utils.DebugUtilsMessenger, device core1_0.Device) {
	_, err := device.WaitIdle()
	require.NoError(t, err)

	device.Destroy(nil)
	debugMessenger.Destroy(nil)
	instance.Destroy(nil)

	runtime.UnlockOSThread()
}

func TestFullSubmissionLifecycle(t *testing.T) {
	instance, debugMessenger, device, queue, graphicsFamily := createApplication(t, "TestFullSubmissionLifecycle")
	defer destroyApplication(t, instance, debugMessenger, device)

	logger := slog.New(slog.NewTextHandler(os.Stdout))

	deviceProvider, err := NewDeviceProvider(device, graphicsFamily, nil)
	require.NoError(t, err)
	queueProvider, err := NewQueueProvider(queue)
	require.NoError(t, err)

	scheduler, err := gsched.New(logger, deviceProvider, queueProvider, gsched.CreateOptions{})
	require.NoError(t, err)
	defer scheduler.Destroy()

	for i := 0; i < 5; i++ {
		open, err := scheduler.BeginSubmission(true)
		require.NoError(t, err)
		require.True(t, open)

		_, err = scheduler.CommandBuffer()
		require.NoError(t, err)

		_, err = scheduler.EndSubmission(true)
		require.NoError(t, err)
	}

	require.True(t, scheduler.AwaitAllQueueOperationsCompletion())
	require.Equal(t, uint64(5), scheduler.GetCompletedSubmission())
	require.Equal(t, uint64(5), scheduler.GetCompletedFrame())
	require.False(t, scheduler.DeviceLost())
}

func TestFullLayoutAndDescriptorAllocation(t *testing.T) {
	instance, debugMessenger, device, queue, graphicsFamily := createApplication(t, "TestFullLayoutAndDescriptorAllocation")
	defer destroyApplication(t, instance, debugMessenger, device)

	logger := slog.New(slog.NewTextHandler(os.Stdout))

	deviceProvider, err := NewDeviceProvider(device, graphicsFamily, nil)
	require.NoError(t, err)
	queueProvider, err := NewQueueProvider(queue)
	require.NoError(t, err)

	scheduler, err := gsched.New(logger, deviceProvider, queueProvider, gsched.CreateOptions{})
	require.NoError(t, err)
	defer scheduler.Destroy()

	layout, err := scheduler.GetPipelineLayout(4, 2)
	require.NoError(t, err)
	require.NotNil(t, layout.PipelineLayout())

	again, err := scheduler.GetPipelineLayout(4, 2)
	require.NoError(t, err)
	require.Same(t, layout, again)

	_, err = scheduler.BeginSubmission(true)
	require.NoError(t, err)

	set, _, err := scheduler.AllocateTransientDescriptorSet(layout.DescriptorSetLayoutTexturesPixel())
	require.NoError(t, err)
	require.NotNil(t, set)

	_, err = scheduler.EndSubmission(true)
	require.NoError(t, err)
	require.True(t, scheduler.AwaitAllQueueOperationsCompletion())

	t.Log(scheduler.BuildStateString(true))
}
