package editor

import "github.com/kuroyasouiti/unityforge/pkg/unity"

var one3 = unity.Vector3{X: 1, Y: 1, Z: 1}

// Component is implemented by everything attachable to a GameObject.
// The bind method is unexported so the component set stays closed to
// this package; exported struct fields are the reflection surface the
// dispatch core reads and writes.
type Component interface {
	Owner() *GameObject
	bind(*GameObject)
}

// componentBase carries the back-pointer to the owning object. It is
// embedded unexported-fields-only so serialization never recurses into
// the hierarchy.
type componentBase struct {
	owner *GameObject
}

func (b *componentBase) Owner() *GameObject { return b.owner }
func (b *componentBase) bind(g *GameObject) { b.owner = g }

// Transform holds local position, rotation and scale.
type Transform struct {
	componentBase
	LocalPosition unity.Vector3
	LocalRotation unity.Quaternion
	LocalScale    unity.Vector3
}

// Camera renders the scene from its owner's position.
type Camera struct {
	componentBase
	FieldOfView      float32
	Orthographic     bool
	OrthographicSize float32
	NearClipPlane    float32
	FarClipPlane     float32
	BackgroundColor  unity.Color
}

// Light illuminates the scene.
type Light struct {
	componentBase
	Type      LightType
	Color     unity.Color
	Intensity float32
	Range     float32
}

// MeshRenderer draws the owner's mesh with a material.
type MeshRenderer struct {
	componentBase
	Enabled        bool
	CastShadows    bool
	ReceiveShadows bool
	Material       *Material
}

// Rigidbody gives the owner physics simulation.
type Rigidbody struct {
	componentBase
	Mass        float32
	Drag        float32
	AngularDrag float32
	UseGravity  bool
	IsKinematic bool
}

// BoxCollider is an axis-aligned box collision volume.
type BoxCollider struct {
	componentBase
	Center    unity.Vector3
	Size      unity.Vector3
	IsTrigger bool
}

// AudioSource plays audio at the owner's position.
type AudioSource struct {
	componentBase
	Volume       float32
	Pitch        float32
	Loop         bool
	PlayOnAwake  bool
	SpatialBlend float32
}
