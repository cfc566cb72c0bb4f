package unity

// Vector2 is a 2D vector in Unity's coordinate space.
type Vector2 struct {
	X float32 `json:"x" mapstructure:"x"`
	Y float32 `json:"y" mapstructure:"y"`
}

// Vector3 is a 3D vector. Positions, scales and Euler angles use it.
type Vector3 struct {
	X float32 `json:"x" mapstructure:"x"`
	Y float32 `json:"y" mapstructure:"y"`
	Z float32 `json:"z" mapstructure:"z"`
}

// Vector4 is a 4D vector.
type Vector4 struct {
	X float32 `json:"x" mapstructure:"x"`
	Y float32 `json:"y" mapstructure:"y"`
	Z float32 `json:"z" mapstructure:"z"`
	W float32 `json:"w" mapstructure:"w"`
}

// Quaternion represents a rotation. The zero value is not a valid
// rotation; use Identity (W=1) as the neutral element.
type Quaternion struct {
	X float32 `json:"x" mapstructure:"x"`
	Y float32 `json:"y" mapstructure:"y"`
	Z float32 `json:"z" mapstructure:"z"`
	W float32 `json:"w" mapstructure:"w"`
}

// Color is an RGBA color with components in [0,1].
type Color struct {
	R float32 `json:"r" mapstructure:"r"`
	G float32 `json:"g" mapstructure:"g"`
	B float32 `json:"b" mapstructure:"b"`
	A float32 `json:"a" mapstructure:"a"`
}

// Rect is an axis-aligned 2D rectangle.
type Rect struct {
	X      float32 `json:"x" mapstructure:"x"`
	Y      float32 `json:"y" mapstructure:"y"`
	Width  float32 `json:"width" mapstructure:"width"`
	Height float32 `json:"height" mapstructure:"height"`
}

// Bounds is an axis-aligned bounding box described by center and size.
type Bounds struct {
	Center Vector3 `json:"center" mapstructure:"center"`
	Size   Vector3 `json:"size" mapstructure:"size"`
}
