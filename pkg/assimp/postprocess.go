package assimp

// PostProcess is a bitmask of post-processing steps executed by the native
// library after a successful import, either as part of the import call or
// later via Scene.ApplyPostProcessing. The values match aiPostProcessSteps.
type PostProcess uint32

const (
	// ProcessCalcTangentSpace computes tangents and bitangents for meshes
	// that have normals and texture coordinates.
	ProcessCalcTangentSpace PostProcess = 0x1

	// ProcessJoinIdenticalVertices collapses duplicate vertices and leaves
	// the mesh in indexed (non-verbose) form.
	ProcessJoinIdenticalVertices PostProcess = 0x2

	// ProcessMakeLeftHanded converts the scene to a left-handed coordinate
	// system.
	ProcessMakeLeftHanded PostProcess = 0x4

	// ProcessTriangulate splits polygons with more than three corners into
	// triangles.
	ProcessTriangulate PostProcess = 0x8

	// ProcessRemoveComponent strips the scene components selected by the
	// RemoveComponentFlags import property.
	ProcessRemoveComponent PostProcess = 0x10

	// ProcessGenNormals generates flat per-face normals for meshes without
	// normals. Mutually exclusive with ProcessGenSmoothNormals.
	ProcessGenNormals PostProcess = 0x20

	// ProcessGenSmoothNormals generates smooth per-vertex normals,
	// honouring the GenNormalsMaxSmoothingAngle import property.
	ProcessGenSmoothNormals PostProcess = 0x40

	// ProcessSplitLargeMeshes splits meshes exceeding the configured
	// triangle or vertex limits.
	ProcessSplitLargeMeshes PostProcess = 0x80

	// ProcessPreTransformVertices bakes node transforms into the vertex
	// data and collapses the scene graph.
	ProcessPreTransformVertices PostProcess = 0x100

	// ProcessLimitBoneWeights caps the number of bone influences per
	// vertex.
	ProcessLimitBoneWeights PostProcess = 0x200

	// ProcessValidateDataStructure validates all cross references in the
	// imported data. This is the only step that can fail and null out the
	// scene; see Scene.ApplyPostProcessing.
	ProcessValidateDataStructure PostProcess = 0x400

	// ProcessImproveCacheLocality reorders triangles for a better
	// post-transform vertex cache hit rate.
	ProcessImproveCacheLocality PostProcess = 0x800

	// ProcessRemoveRedundantMaterials removes unreferenced and duplicate
	// materials.
	ProcessRemoveRedundantMaterials PostProcess = 0x1000

	// ProcessFixInfacingNormals flips normals (and winding) of meshes that
	// appear to face inwards.
	ProcessFixInfacingNormals PostProcess = 0x2000

	// ProcessPopulateArmatureData links bones to their armature nodes.
	ProcessPopulateArmatureData PostProcess = 0x4000

	// ProcessSortByPType splits meshes with mixed primitive types into
	// clean per-type submeshes.
	ProcessSortByPType PostProcess = 0x8000

	// ProcessFindDegenerates searches for degenerate primitives and
	// converts them to lines or points.
	ProcessFindDegenerates PostProcess = 0x10000

	// ProcessFindInvalidData removes or fixes invalid data such as zeroed
	// normals or out-of-range UVs.
	ProcessFindInvalidData PostProcess = 0x20000

	// ProcessGenUVCoords converts non-UV mappings (spherical, cylindrical,
	// ...) to proper texture channels.
	ProcessGenUVCoords PostProcess = 0x40000

	// ProcessTransformUVCoords bakes per-texture UV transforms into the
	// texture coordinates.
	ProcessTransformUVCoords PostProcess = 0x80000

	// ProcessFindInstances collapses duplicate meshes into instances.
	ProcessFindInstances PostProcess = 0x100000

	// ProcessOptimizeMeshes merges small meshes to reduce draw calls.
	ProcessOptimizeMeshes PostProcess = 0x200000

	// ProcessOptimizeGraph flattens the node hierarchy, honouring the
	// OptimizeGraphExcludeList import property.
	ProcessOptimizeGraph PostProcess = 0x400000

	// ProcessFlipUVs flips texture coordinates along the y axis.
	ProcessFlipUVs PostProcess = 0x800000

	// ProcessFlipWindingOrder reverses the face winding order to CW.
	ProcessFlipWindingOrder PostProcess = 0x1000000

	// ProcessSplitByBoneCount splits meshes exceeding the configured bone
	// count.
	ProcessSplitByBoneCount PostProcess = 0x2000000

	// ProcessDebone removes bones losslessly (or according to the
	// DeboneThreshold/DeboneAllOrNone import properties).
	ProcessDebone PostProcess = 0x4000000

	// ProcessGlobalScale applies the global scale factor to the scene.
	ProcessGlobalScale PostProcess = 0x8000000

	// ProcessEmbedTextures reads texture files referenced by the model and
	// embeds them into the scene.
	ProcessEmbedTextures PostProcess = 0x10000000

	ProcessForceGenNormals PostProcess = 0x20000000
	ProcessDropNormals     PostProcess = 0x40000000

	// ProcessGenBoundingBoxes computes an AABB for every mesh.
	ProcessGenBoundingBoxes PostProcess = 0x80000000
)

// Convenience presets matching the native aiProcessPreset_TargetRealtime
// macros.
const (
	PresetTargetRealtimeFast = ProcessCalcTangentSpace |
		ProcessGenNormals |
		ProcessJoinIdenticalVertices |
		ProcessTriangulate |
		ProcessGenUVCoords |
		ProcessSortByPType

	PresetTargetRealtimeQuality = ProcessCalcTangentSpace |
		ProcessGenSmoothNormals |
		ProcessJoinIdenticalVertices |
		ProcessImproveCacheLocality |
		ProcessLimitBoneWeights |
		ProcessRemoveRedundantMaterials |
		ProcessSplitLargeMeshes |
		ProcessTriangulate |
		ProcessGenUVCoords |
		ProcessSortByPType |
		ProcessFindDegenerates |
		ProcessFindInvalidData

	PresetTargetRealtimeMaxQuality = PresetTargetRealtimeQuality |
		ProcessFindInstances |
		ProcessValidateDataStructure |
		ProcessOptimizeMeshes
)

// SceneFlags is the bitmask stored in an imported scene describing its
// completeness and validation status. The values match AI_SCENE_FLAGS_*.
type SceneFlags uint32

const (
	// SceneFlagIncomplete marks a scene that is not a full model, e.g. a
	// material library or an animation skeleton. Most applications will
	// want to reject such scenes.
	SceneFlagIncomplete SceneFlags = 0x1

	// SceneFlagValidated is set by ProcessValidateDataStructure when
	// validation succeeded.
	SceneFlagValidated SceneFlags = 0x2

	// SceneFlagValidationWarning is set by ProcessValidateDataStructure
	// when validation succeeded but found minor issues.
	SceneFlagValidationWarning SceneFlags = 0x4

	// SceneFlagNonVerboseFormat is set by ProcessJoinIdenticalVertices:
	// vertices are shared between faces.
	SceneFlagNonVerboseFormat SceneFlags = 0x8

	// SceneFlagTerrain marks pure height-map terrain data.
	SceneFlagTerrain SceneFlags = 0x10

	// SceneFlagAllowShared marks scene data that may be shared between
	// multiple imports.
	SceneFlagAllowShared SceneFlags = 0x20
)
