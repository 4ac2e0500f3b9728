package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleScene() *Scene {
	return &Scene{
		Description: "a test scene",
		Nodes: []Node{
			{
				Name:  "root",
				Xform: "0 0 0 0 0 0 1 1 1 1",
				Attachments: []Attachment{
					{
						Name: "sky",
						Type: AttachmentSkybox,
						Tags: []string{"env", "static"},
						Skybox: &SkyboxAttachment{
							CubemapImageAssetName: "skybox_cube",
						},
					},
					{
						Type: AttachmentVolume,
						Volume: &VolumeAttachment{
							ShapeType:     VolumeShapeSphere,
							Radius:        5,
							VolumeType:    VolumeTypeTrigger,
							OnEnter:       "start_event",
							HitSphereTags: []string{"player"},
						},
					},
				},
				Children: []Node{
					{
						Name: "mesh_child",
						Attachments: []Attachment{
							{
								Type: AttachmentStaticMesh,
								StaticMesh: &StaticMeshAttachment{
									AssetName: "rock_01",
								},
							},
						},
					},
				},
			},
		},
	}
}

func TestSceneRoundTrip(t *testing.T) {
	text, err := SerializeText(sampleScene())
	require.NoError(t, err)

	out, err := DeserializeText(text)
	require.NoError(t, err)

	assert.EqualValues(t, CurrentVersion, out.Version)
	assert.Equal(t, "a test scene", out.Description)
	require.Len(t, out.Nodes, 1)

	root := out.Nodes[0]
	assert.Equal(t, "root", root.Name)
	require.Len(t, root.Attachments, 2)

	sky := root.Attachments[0]
	assert.Equal(t, AttachmentSkybox, sky.Type)
	require.NotNil(t, sky.Skybox)
	assert.Equal(t, "skybox_cube", sky.Skybox.CubemapImageAssetName)
	assert.Equal(t, []string{"env", "static"}, sky.Tags)

	vol := root.Attachments[1]
	require.NotNil(t, vol.Volume)
	assert.Equal(t, VolumeShapeSphere, vol.Volume.ShapeType)
	assert.EqualValues(t, 5, vol.Volume.Radius)
	assert.Equal(t, "start_event", vol.Volume.OnEnter)
	assert.Equal(t, []string{"player"}, vol.Volume.HitSphereTags)

	require.Len(t, root.Children, 1)
	child := root.Children[0]
	require.Len(t, child.Attachments, 1)
	require.NotNil(t, child.Attachments[0].StaticMesh)
	assert.Equal(t, "rock_01", child.Attachments[0].StaticMesh.AssetName)
}

func TestSceneDeserializeV1LegacyProperties(t *testing.T) {
	text := `properties = {
    name = "ignored_legacy_name"
    description = "legacy scene"
}
nodes = [
    {
        name = "root"
        attachments = [
            {
                type = "skybox"
                cubemap_name = "old_cube"
            }
        ]
    }
]
`
	out, err := DeserializeText(text)
	require.NoError(t, err)
	assert.EqualValues(t, 1, out.Version)
	assert.Equal(t, "legacy scene", out.Description)
	require.Len(t, out.Nodes, 1)
	require.Len(t, out.Nodes[0].Attachments, 1)
	require.NotNil(t, out.Nodes[0].Attachments[0].Skybox)
	assert.Equal(t, "old_cube", out.Nodes[0].Attachments[0].Skybox.CubemapImageAssetName)
}

func TestSceneDeserializeHeightmapTerrainTypeFallback(t *testing.T) {
	text := `version = 2
nodes = [
    {
        name = "root"
        attachments = [
            {
                type = "terrain"
                asset_name = "valley_heightmap"
            }
        ]
    }
]
`
	out, err := DeserializeText(text)
	require.NoError(t, err)
	require.Len(t, out.Nodes, 1)
	require.Len(t, out.Nodes[0].Attachments, 1)

	att := out.Nodes[0].Attachments[0]
	assert.Equal(t, AttachmentHeightmapTerrain, att.Type)
	require.NotNil(t, att.HeightmapTerrain)
	assert.Equal(t, "valley_heightmap", att.HeightmapTerrain.AssetName)
}

func TestSceneDeserializeRejectsFutureVersion(t *testing.T) {
	text := `version = 99
`
	_, err := DeserializeText(text)
	require.Error(t, err)
}
