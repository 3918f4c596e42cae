package assimp

// Import-time configuration is expressed as a closed set of typed
// properties. Each constructor below maps to one of the native AI_CONFIG
// keys and carries exactly one primitive value (integer, float, bool or
// string); list-typed settings are OR-folded into an integer at
// construction time. Importer.SetProperty dispatches on the primitive kind
// to the matching native setter, so a property can never reach the wrong
// native call.

type propertyKind int

const (
	propInt propertyKind = iota + 1
	propFloat
	propBool
	propString
)

// ImportProperty is one named, typed import setting. Values are created
// through the constructor functions in this file and consumed by
// Importer.SetProperty; the zero value is invalid.
type ImportProperty struct {
	name string
	kind propertyKind
	i    int
	f    float32
	s    string
}

// Name returns the native configuration key, e.g. "PP_GSN_MAX_SMOOTHING_ANGLE".
func (p ImportProperty) Name() string { return p.name }

func intProperty(name string, v int) ImportProperty {
	return ImportProperty{name: name, kind: propInt, i: v}
}

func floatProperty(name string, v float32) ImportProperty {
	return ImportProperty{name: name, kind: propFloat, f: v}
}

func boolProperty(name string, v bool) ImportProperty {
	p := ImportProperty{name: name, kind: propBool}
	if v {
		p.i = 1
	}
	return p
}

func stringProperty(name, v string) ImportProperty {
	return ImportProperty{name: name, kind: propString, s: v}
}

// Component selects a scene component for ProcessRemoveComponent. The
// values match aiComponent and may be OR'd together.
type Component uint32

const (
	ComponentNormals               Component = 0x2
	ComponentTangentsAndBitangents Component = 0x4
	ComponentColors                Component = 0x8
	ComponentTexCoords             Component = 0x10
	ComponentBoneWeights           Component = 0x20
	ComponentAnimations            Component = 0x40
	ComponentTextures              Component = 0x80
	ComponentLights                Component = 0x100
	ComponentCameras               Component = 0x200
	ComponentMeshes                Component = 0x400
	ComponentMaterials             Component = 0x800
)

// UVTransform selects which UV transform parts ProcessTransformUVCoords
// evaluates. The values match AI_UVTRAFO_*.
type UVTransform uint32

const (
	UVTransformScaling     UVTransform = 0x1
	UVTransformRotation    UVTransform = 0x2
	UVTransformTranslation UVTransform = 0x4
	UVTransformAll         UVTransform = 0x7
)

// MeasureTime enables native-side timing of each import stage; the
// measurements go to the attached log streams.
func MeasureTime(enable bool) ImportProperty {
	return boolProperty("GLOB_MEASURE_TIME", enable)
}

// FavourSpeed tells loaders to trade import validity checks for speed.
func FavourSpeed(enable bool) ImportProperty {
	return boolProperty("FAVOUR_SPEED", enable)
}

// CalcTangentsMaxSmoothingAngle sets the maximum angle, in degrees, between
// two vertex tangents that are still smoothed together by
// ProcessCalcTangentSpace. The native maximum is 175.
func CalcTangentsMaxSmoothingAngle(degrees float32) ImportProperty {
	return floatProperty("PP_CT_MAX_SMOOTHING_ANGLE", degrees)
}

// CalcTangentsTextureChannel selects the source UV channel for tangent
// space computation.
func CalcTangentsTextureChannel(channel int) ImportProperty {
	return intProperty("PP_CT_TEXTURE_CHANNEL_INDEX", channel)
}

// GenNormalsMaxSmoothingAngle sets the maximum angle, in degrees, between
// two face normals that are still smoothed together by
// ProcessGenSmoothNormals. The native maximum is 175.
func GenNormalsMaxSmoothingAngle(degrees float32) ImportProperty {
	return floatProperty("PP_GSN_MAX_SMOOTHING_ANGLE", degrees)
}

// SplitByBoneCountMaxBones sets the bone limit used by
// ProcessSplitByBoneCount.
func SplitByBoneCountMaxBones(max int) ImportProperty {
	return intProperty("PP_SBBC_MAX_BONES", max)
}

// SplitLargeMeshesTriangleLimit sets the triangle limit used by
// ProcessSplitLargeMeshes.
func SplitLargeMeshesTriangleLimit(max int) ImportProperty {
	return intProperty("PP_SLM_TRIANGLE_LIMIT", max)
}

// SplitLargeMeshesVertexLimit sets the vertex limit used by
// ProcessSplitLargeMeshes.
func SplitLargeMeshesVertexLimit(max int) ImportProperty {
	return intProperty("PP_SLM_VERTEX_LIMIT", max)
}

// LimitBoneWeightsMax sets the maximum number of bone influences per
// vertex kept by ProcessLimitBoneWeights; the strongest influences win.
func LimitBoneWeightsMax(max int) ImportProperty {
	return intProperty("PP_LBW_MAX_WEIGHTS", max)
}

// DeboneThreshold sets the deviation threshold for ProcessDebone.
func DeboneThreshold(threshold float32) ImportProperty {
	return floatProperty("PP_DB_THRESHOLD", threshold)
}

// DeboneAllOrNone requires ProcessDebone to remove either all bones of a
// mesh or none.
func DeboneAllOrNone(enable bool) ImportProperty {
	return boolProperty("PP_DB_ALL_OR_NONE", enable)
}

// ImproveCacheLocalityCacheSize sets the post-transform vertex cache size
// assumed by ProcessImproveCacheLocality.
func ImproveCacheLocalityCacheSize(size int) ImportProperty {
	return intProperty("PP_ICL_PTCACHE_SIZE", size)
}

// PreTransformKeepHierarchy makes ProcessPreTransformVertices keep the
// (now trivial) node hierarchy instead of collapsing it.
func PreTransformKeepHierarchy(enable bool) ImportProperty {
	return boolProperty("PP_PTV_KEEP_HIERARCHY", enable)
}

// PreTransformNormalize makes ProcessPreTransformVertices normalize all
// vertex components into the [-1,1] range.
func PreTransformNormalize(enable bool) ImportProperty {
	return boolProperty("PP_PTV_NORMALIZE", enable)
}

// FindDegeneratesRemove makes ProcessFindDegenerates remove degenerate
// primitives immediately instead of converting them to lines/points.
func FindDegeneratesRemove(enable bool) ImportProperty {
	return boolProperty("PP_FD_REMOVE", enable)
}

// FindInvalidDataAnimAccuracy sets the epsilon, in ticks, under which two
// animation keys are considered identical by ProcessFindInvalidData.
func FindInvalidDataAnimAccuracy(epsilon float32) ImportProperty {
	return floatProperty("PP_FID_ANIM_ACCURACY", epsilon)
}

// RemoveRedundantMaterialsExcludeList names materials (space-separated,
// quoting supported) that ProcessRemoveRedundantMaterials must keep even
// if unreferenced.
func RemoveRedundantMaterialsExcludeList(names string) ImportProperty {
	return stringProperty("PP_RRM_EXCLUDE_LIST", names)
}

// OptimizeGraphExcludeList names nodes (space-separated, quoting
// supported) that ProcessOptimizeGraph must not touch.
func OptimizeGraphExcludeList(names string) ImportProperty {
	return stringProperty("PP_OG_EXCLUDE_LIST", names)
}

// RemoveComponentFlags selects the scene components stripped by
// ProcessRemoveComponent. The flags are OR-folded into one integer value.
func RemoveComponentFlags(components ...Component) ImportProperty {
	var mask Component
	for _, c := range components {
		mask |= c
	}
	return intProperty("PP_RVC_FLAGS", int(mask))
}

// SortByPTypeRemove selects primitive types that ProcessSortByPType
// removes from the scene entirely. The flags are OR-folded into one
// integer value.
func SortByPTypeRemove(types ...PrimitiveType) ImportProperty {
	var mask PrimitiveType
	for _, t := range types {
		mask |= t
	}
	return intProperty("PP_SBP_REMOVE", int(mask))
}

// TransformUVEvaluate selects which UV transform parts
// ProcessTransformUVCoords bakes into the coordinates. The flags are
// OR-folded into one integer value.
func TransformUVEvaluate(parts ...UVTransform) ImportProperty {
	var mask UVTransform
	for _, p := range parts {
		mask |= p
	}
	return intProperty("PP_TUV_EVALUATE", int(mask))
}

// GlobalKeyframe sets the keyframe to load for all keyframe-based formats
// lacking a per-format override.
func GlobalKeyframe(frame int) ImportProperty {
	return intProperty("IMPORT_GLOBAL_KEYFRAME", frame)
}

// Per-format keyframe overrides.

func MD2Keyframe(frame int) ImportProperty { return intProperty("IMPORT_MD2_KEYFRAME", frame) }
func MD3Keyframe(frame int) ImportProperty { return intProperty("IMPORT_MD3_KEYFRAME", frame) }
func MDCKeyframe(frame int) ImportProperty { return intProperty("IMPORT_MDC_KEYFRAME", frame) }
func MDLKeyframe(frame int) ImportProperty { return intProperty("IMPORT_MDL_KEYFRAME", frame) }
func SMDKeyframe(frame int) ImportProperty { return intProperty("IMPORT_SMD_KEYFRAME", frame) }
func UnrealKeyframe(frame int) ImportProperty {
	return intProperty("IMPORT_UNREAL_KEYFRAME", frame)
}

// MDLColormap sets the palette file used to decode embedded MDL textures.
func MDLColormap(path string) ImportProperty {
	return stringProperty("IMPORT_MDL_COLORMAP", path)
}

// ACSeparateBackfaceCull makes the AC loader emit separate objects for
// backface-culled meshes.
func ACSeparateBackfaceCull(enable bool) ImportProperty {
	return boolProperty("IMPORT_AC_SEPARATE_BFCULL", enable)
}

// ACEvalSubdivision enables evaluation of AC3D subdivision surfaces.
func ACEvalSubdivision(enable bool) ImportProperty {
	return boolProperty("IMPORT_AC_EVAL_SUBDIVISION", enable)
}

// UnrealHandleFlags enables separation of Unreal meshes by surface flags.
func UnrealHandleFlags(enable bool) ImportProperty {
	return boolProperty("UNREAL_HANDLE_FLAGS", enable)
}

// TerragenMakeUVs makes the Terragen loader compute UVs for terrains.
func TerragenMakeUVs(enable bool) ImportProperty {
	return boolProperty("IMPORT_TER_MAKE_UVS", enable)
}

// ASEReconstructNormals forces normal reconstruction for ASE files.
func ASEReconstructNormals(enable bool) ImportProperty {
	return boolProperty("IMPORT_ASE_RECONSTRUCT_NORMALS", enable)
}

// MD3HandleMultipart enables automatic loading of linked multi-part MD3
// models (lower, upper, head).
func MD3HandleMultipart(enable bool) ImportProperty {
	return boolProperty("IMPORT_MD3_HANDLE_MULTIPART", enable)
}

// MD3SkinName selects the skin file to load with an MD3 model.
func MD3SkinName(name string) ImportProperty {
	return stringProperty("IMPORT_MD3_SKIN_NAME", name)
}

// MD3ShaderSource sets the path or URL used to resolve MD3 shader files.
func MD3ShaderSource(src string) ImportProperty {
	return stringProperty("IMPORT_MD3_SHADER_SRC", src)
}

// MD5NoAnimAutoload disables the implicit load of the .md5anim file
// matching an .md5mesh file.
func MD5NoAnimAutoload(disable bool) ImportProperty {
	return boolProperty("IMPORT_MD5_NO_ANIM_AUTOLOAD", disable)
}

// LWOOneLayerOnly restricts LWO loading to the layer with the given index
// (or name, via the native fallback lookup).
func LWOOneLayerOnly(layer int) ImportProperty {
	return intProperty("IMPORT_LWO_ONE_LAYER_ONLY", layer)
}

// LWSAnimStart and LWSAnimEnd override the animation range of a LWS scene.

func LWSAnimStart(frame int) ImportProperty {
	return intProperty("IMPORT_LWS_ANIM_START", frame)
}

func LWSAnimEnd(frame int) ImportProperty {
	return intProperty("IMPORT_LWS_ANIM_END", frame)
}

// IRRAnimFPS sets the frame rate used to convert Irrlicht animation
// timings to ticks.
func IRRAnimFPS(fps int) ImportProperty {
	return intProperty("IMPORT_IRR_ANIM_FPS", fps)
}

// OgreMaterialFile names the material file to use for an Ogre mesh
// instead of the default <mesh>.material.
func OgreMaterialFile(path string) ImportProperty {
	return stringProperty("IMPORT_OGRE_MATERIAL_FILE", path)
}

// OgreTextureTypeFromFilename derives Ogre texture types from texture
// filename suffixes instead of texture unit names.
func OgreTextureTypeFromFilename(enable bool) ImportProperty {
	return boolProperty("IMPORT_OGRE_TEXTURETYPE_FROM_FILENAME", enable)
}

// IFCSkipSpaceRepresentations skips IfcSpace elements during IFC import.
func IFCSkipSpaceRepresentations(skip bool) ImportProperty {
	return boolProperty("IMPORT_IFC_SKIP_SPACE_REPRESENTATIONS", skip)
}

// IFCSkipCurveRepresentations skips curve representations during IFC
// import.
func IFCSkipCurveRepresentations(skip bool) ImportProperty {
	return boolProperty("IMPORT_IFC_SKIP_CURVE_REPRESENTATIONS", skip)
}

// IFCCustomTriangulation enables the IFC loader's own triangulation of
// wall openings; otherwise ProcessTriangulate handles them.
func IFCCustomTriangulation(enable bool) ImportProperty {
	return boolProperty("IMPORT_IFC_CUSTOM_TRIANGULATION", enable)
}
