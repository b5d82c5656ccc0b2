package vulkan

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/core/v2/core1_0"
	"github.com/vkngwrapper/core/v2/driver"
)

type foreignRenderPass struct{}

func (foreignRenderPass) Handle() (h driver.VkRenderPass) { return }

type foreignFramebuffer struct{}

func (foreignFramebuffer) Destroy() {}

func TestProviderConstructorValidation(t *testing.T) {
	_, err := NewDeviceProvider(nil, 0, nil)
	require.Error(t, err)

	_, err = NewQueueProvider(nil)
	require.Error(t, err)
}

func TestCmdBeginRenderPassRejectsForeignObjects(t *testing.T) {
	// Handle objects not backed by vkngwrapper cannot be converted to driver handles;
	// the render pass begin path has an error return and must report them instead of
	// panicking.
	buffer := &commandBuffer{}

	err := buffer.CmdBeginRenderPass(foreignRenderPass{}, foreignFramebuffer{}, core1_0.Rect2D{})
	require.Error(t, err)
}
