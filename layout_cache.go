package gsched

import (
	"github.com/cockroachdb/errors"
	"github.com/dolthub/swiss"
	"github.com/vkngwrapper/core/v2/core1_0"
)

// Descriptor set indices of guest graphics pipeline layouts. The most stable layouts sit at
// the low indices so that compatible-layout descriptor set bindings survive pipeline layout
// changes as long as possible; the texture sets vary per layout and come last.
const (
	DescriptorSetSharedMemoryAndEdram = iota
	DescriptorSetFetchBoolLoopConstants
	DescriptorSetSystemConstants
	DescriptorSetFloatConstantsVertex
	DescriptorSetFloatConstantsPixel
	DescriptorSetTexturesVertex
	DescriptorSetTexturesPixel
	DescriptorSetCount
)

// textureDescriptorSetLayoutKey identifies a texture descriptor set layout by shader role
// and slot count. Count 0 is never keyed - it resolves to the shared empty layout, which
// owns no per-instance state.
func textureDescriptorSetLayoutKey(isVertex bool, textureCount uint32) uint32 {
	key := textureCount << 1
	if isVertex {
		key |= 1
	}
	return key
}

// pipelineLayoutKey packs the two texture counts with the pixel count in the low half,
// since pixel texture counts vary much more commonly. This is a cache-friendliness
// ordering choice, not a correctness requirement.
func pipelineLayoutKey(textureCountPixel, textureCountVertex uint32) uint32 {
	return textureCountPixel&0xFFFF | textureCountVertex<<16
}

// PipelineLayoutProvider is one pipeline layout cache entry. It owns the host pipeline
// layout handle and borrows the two texture descriptor set layouts it was built from;
// ownership of those stays with the layout cache. Every reference obtained from
// GetPipelineLayout is valid only until the next full cache clear.
type PipelineLayoutProvider struct {
	pipelineLayout                    PipelineLayout
	descriptorSetLayoutTexturesVertex DescriptorSetLayout
	descriptorSetLayoutTexturesPixel  DescriptorSetLayout
	setLayouts                        [DescriptorSetCount]DescriptorSetLayout
}

func (p *PipelineLayoutProvider) PipelineLayout() PipelineLayout {
	return p.pipelineLayout
}

func (p *PipelineLayoutProvider) DescriptorSetLayoutTexturesVertex() DescriptorSetLayout {
	return p.descriptorSetLayoutTexturesVertex
}

func (p *PipelineLayoutProvider) DescriptorSetLayoutTexturesPixel() DescriptorSetLayout {
	return p.descriptorSetLayoutTexturesPixel
}

// descriptorSetLayout returns the layout at one set index, for compatible-layout
// comparisons when the bound pipeline layout changes.
func (p *PipelineLayoutProvider) descriptorSetLayout(setIndex int) DescriptorSetLayout {
	return p.setLayouts[setIndex]
}

// layoutCache memoizes descriptor set layouts and pipeline layouts, which are pure
// functions of small integer keys. Entries are never individually evicted; the cache
// clears in full on an explicit cache clear event.
type layoutCache struct {
	device                Device
	guestVertexStageFlags core1_0.ShaderStageFlags

	descriptorSetLayoutEmpty                  DescriptorSetLayout
	descriptorSetLayoutSharedMemoryAndEdram   DescriptorSetLayout
	descriptorSetLayoutFetchBoolLoopConstants DescriptorSetLayout
	descriptorSetLayoutSystemConstants        DescriptorSetLayout
	descriptorSetLayoutFloatConstantsVertex   DescriptorSetLayout
	descriptorSetLayoutFloatConstantsPixel    DescriptorSetLayout

	descriptorSetLayoutsTextures *swiss.Map[uint32, DescriptorSetLayout]
	pipelineLayouts              *swiss.Map[uint32, *PipelineLayoutProvider]
}

func (c *layoutCache) init(device Device, guestVertexStageFlags core1_0.ShaderStageFlags) {
	c.device = device
	c.guestVertexStageFlags = guestVertexStageFlags
	c.descriptorSetLayoutsTextures = swiss.NewMap[uint32, DescriptorSetLayout](32)
	c.pipelineLayouts = swiss.NewMap[uint32, *PipelineLayoutProvider](32)
}

func (c *layoutCache) guestStageFlags() core1_0.ShaderStageFlags {
	return c.guestVertexStageFlags | core1_0.StageFragment
}

func (c *layoutCache) createSingleBindingLayout(descriptorType core1_0.DescriptorType, descriptorCount int, stageFlags core1_0.ShaderStageFlags) (DescriptorSetLayout, error) {
	layout, _, err := c.device.CreateDescriptorSetLayout([]core1_0.DescriptorSetLayoutBinding{
		{
			Binding:         0,
			DescriptorType:  descriptorType,
			DescriptorCount: descriptorCount,
			StageFlags:      stageFlags,
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create a descriptor set layout")
	}
	return layout, nil
}

func (c *layoutCache) ensureFixedLayouts() error {
	if c.descriptorSetLayoutEmpty != nil {
		return nil
	}

	var err error
	c.descriptorSetLayoutEmpty, _, err = c.device.CreateDescriptorSetLayout(nil)
	if err != nil {
		return errors.Wrap(err, "failed to create the shared empty descriptor set layout")
	}
	c.descriptorSetLayoutSharedMemoryAndEdram, _, err = c.device.CreateDescriptorSetLayout([]core1_0.DescriptorSetLayoutBinding{
		{
			Binding:         0,
			DescriptorType:  core1_0.DescriptorTypeStorageBuffer,
			DescriptorCount: 1,
			StageFlags:      c.guestStageFlags(),
		},
		{
			Binding:         1,
			DescriptorType:  core1_0.DescriptorTypeStorageBuffer,
			DescriptorCount: 1,
			StageFlags:      c.guestStageFlags(),
		},
	})
	if err != nil {
		return errors.Wrap(err, "failed to create the shared memory and EDRAM descriptor set layout")
	}
	c.descriptorSetLayoutFetchBoolLoopConstants, err = c.createSingleBindingLayout(
		core1_0.DescriptorTypeUniformBuffer, 1, c.guestStageFlags())
	if err != nil {
		return err
	}
	c.descriptorSetLayoutSystemConstants, err = c.createSingleBindingLayout(
		core1_0.DescriptorTypeUniformBuffer, 1, c.guestStageFlags())
	if err != nil {
		return err
	}
	c.descriptorSetLayoutFloatConstantsVertex, err = c.createSingleBindingLayout(
		core1_0.DescriptorTypeUniformBuffer, 1, c.guestVertexStageFlags)
	if err != nil {
		return err
	}
	c.descriptorSetLayoutFloatConstantsPixel, err = c.createSingleBindingLayout(
		core1_0.DescriptorTypeUniformBuffer, 1, core1_0.StageFragment)
	if err != nil {
		return err
	}
	return nil
}

// getDescriptorSetLayout resolves the texture descriptor set layout for one shader role and
// slot count, creating and caching it on a miss.
func (c *layoutCache) getDescriptorSetLayout(isVertex bool, textureCount uint32) (DescriptorSetLayout, error) {
	if err := c.ensureFixedLayouts(); err != nil {
		return nil, err
	}
	if textureCount == 0 {
		return c.descriptorSetLayoutEmpty, nil
	}

	key := textureDescriptorSetLayoutKey(isVertex, textureCount)
	if layout, ok := c.descriptorSetLayoutsTextures.Get(key); ok {
		return layout, nil
	}

	stageFlags := core1_0.StageFragment
	if isVertex {
		stageFlags = c.guestVertexStageFlags
	}
	layout, err := c.createSingleBindingLayout(core1_0.DescriptorTypeCombinedImageSampler, int(textureCount), stageFlags)
	if err != nil {
		return nil, err
	}
	c.descriptorSetLayoutsTextures.Put(key, layout)
	return layout, nil
}

// getPipelineLayout resolves the pipeline layout for the given texture counts, assembling
// and caching it on a miss. The returned reference is valid until a cache clear.
func (c *layoutCache) getPipelineLayout(textureCountPixel, textureCountVertex uint32) (*PipelineLayoutProvider, error) {
	key := pipelineLayoutKey(textureCountPixel, textureCountVertex)
	if provider, ok := c.pipelineLayouts.Get(key); ok {
		return provider, nil
	}

	texturesVertex, err := c.getDescriptorSetLayout(true, textureCountVertex)
	if err != nil {
		return nil, err
	}
	texturesPixel, err := c.getDescriptorSetLayout(false, textureCountPixel)
	if err != nil {
		return nil, err
	}

	provider := &PipelineLayoutProvider{
		descriptorSetLayoutTexturesVertex: texturesVertex,
		descriptorSetLayoutTexturesPixel:  texturesPixel,
	}
	provider.setLayouts[DescriptorSetSharedMemoryAndEdram] = c.descriptorSetLayoutSharedMemoryAndEdram
	provider.setLayouts[DescriptorSetFetchBoolLoopConstants] = c.descriptorSetLayoutFetchBoolLoopConstants
	provider.setLayouts[DescriptorSetSystemConstants] = c.descriptorSetLayoutSystemConstants
	provider.setLayouts[DescriptorSetFloatConstantsVertex] = c.descriptorSetLayoutFloatConstantsVertex
	provider.setLayouts[DescriptorSetFloatConstantsPixel] = c.descriptorSetLayoutFloatConstantsPixel
	provider.setLayouts[DescriptorSetTexturesVertex] = texturesVertex
	provider.setLayouts[DescriptorSetTexturesPixel] = texturesPixel

	provider.pipelineLayout, _, err = c.device.CreatePipelineLayout(provider.setLayouts[:])
	if err != nil {
		return nil, errors.Wrap(err, "failed to create a pipeline layout")
	}
	c.pipelineLayouts.Put(key, provider)
	return provider, nil
}

// clear destroys every cached layout. All PipelineLayoutProvider references previously
// returned become invalid. Only valid while no cached layout is referenced by in-flight
// work.
func (c *layoutCache) clear() {
	c.pipelineLayouts.Iter(func(_ uint32, provider *PipelineLayoutProvider) bool {
		provider.pipelineLayout.Destroy()
		return false
	})
	c.pipelineLayouts = swiss.NewMap[uint32, *PipelineLayoutProvider](32)

	c.descriptorSetLayoutsTextures.Iter(func(_ uint32, layout DescriptorSetLayout) bool {
		layout.Destroy()
		return false
	})
	c.descriptorSetLayoutsTextures = swiss.NewMap[uint32, DescriptorSetLayout](32)

	for _, layout := range []DescriptorSetLayout{
		c.descriptorSetLayoutEmpty,
		c.descriptorSetLayoutSharedMemoryAndEdram,
		c.descriptorSetLayoutFetchBoolLoopConstants,
		c.descriptorSetLayoutSystemConstants,
		c.descriptorSetLayoutFloatConstantsVertex,
		c.descriptorSetLayoutFloatConstantsPixel,
	} {
		if layout != nil {
			layout.Destroy()
		}
	}
	c.descriptorSetLayoutEmpty = nil
	c.descriptorSetLayoutSharedMemoryAndEdram = nil
	c.descriptorSetLayoutFetchBoolLoopConstants = nil
	c.descriptorSetLayoutSystemConstants = nil
	c.descriptorSetLayoutFloatConstantsVertex = nil
	c.descriptorSetLayoutFloatConstantsPixel = nil
}

// GetDescriptorSetLayout returns the descriptor set layout for one texture shader role and
// slot count. Texture count 0 resolves to a shared empty layout. The returned layout is
// owned by the cache and valid until a cache clear.
func (s *Scheduler) GetDescriptorSetLayout(isVertex bool, textureCount uint32) (DescriptorSetLayout, error) {
	return s.layouts.getDescriptorSetLayout(isVertex, textureCount)
}

// GetPipelineLayout returns the pipeline layout for the given pixel and vertex texture
// counts. Equal counts return the identical provider between cache clears; the reference
// is valid only until the next cache clear.
func (s *Scheduler) GetPipelineLayout(textureCountPixel, textureCountVertex uint32) (*PipelineLayoutProvider, error) {
	s.logger.Debug("Scheduler::GetPipelineLayout")

	return s.layouts.getPipelineLayout(textureCountPixel, textureCountVertex)
}
