package assets

// Vertex3D is one vertex of a static mesh geometry. The spec names the
// count-prefixed vertex array but doesn't fix the field layout; this
// module uses the conventional position/normal/texcoord/tangent
// layout (48 bytes/vertex) shared by the teacher pack's other
// engine-adjacent material/shader attribute naming (DESIGN.md).
type Vertex3D struct {
	Position [3]float32
	Normal   [3]float32
	Texcoord [2]float32
	Tangent  [4]float32
}

// Extents3D is an axis-aligned bounding box, min/max corners.
type Extents3D struct {
	Min [3]float32
	Max [3]float32
}

// StaticMeshGeometry is one sub-mesh within a static mesh asset
// (spec.md §4.4). A zero-length Name or MaterialAssetName means
// "absent" on the wire, not an error.
type StaticMeshGeometry struct {
	Center            [3]float32
	Extents           Extents3D
	Name              string
	MaterialAssetName string
	Indices           []uint32
	Vertices          []Vertex3D
}

// StaticMesh is the binary static mesh asset (spec.md §4.4): a header
// extension of {geometry_count, extents, center} followed by each
// geometry's variable-length payload in order.
type StaticMesh struct {
	Base

	Extents    Extents3D
	Center     [3]float32
	Geometries []StaticMeshGeometry
}
