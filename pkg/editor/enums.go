package editor

// LightType mirrors UnityEngine.LightType.
type LightType int

const (
	LightSpot LightType = iota
	LightDirectional
	LightPoint
	LightArea
)

// LightTypeNames is the declared-name table used for wire conversion.
var LightTypeNames = map[string]int64{
	"spot":        int64(LightSpot),
	"directional": int64(LightDirectional),
	"point":       int64(LightPoint),
	"area":        int64(LightArea),
}

// PrimitiveType mirrors UnityEngine.PrimitiveType.
type PrimitiveType int

const (
	PrimitiveSphere PrimitiveType = iota
	PrimitiveCapsule
	PrimitiveCylinder
	PrimitiveCube
	PrimitivePlane
	PrimitiveQuad
)

// PrimitiveTypeNames is the declared-name table used for wire
// conversion.
var PrimitiveTypeNames = map[string]int64{
	"sphere":   int64(PrimitiveSphere),
	"capsule":  int64(PrimitiveCapsule),
	"cylinder": int64(PrimitiveCylinder),
	"cube":     int64(PrimitiveCube),
	"plane":    int64(PrimitivePlane),
	"quad":     int64(PrimitiveQuad),
}

// ForceMode mirrors UnityEngine.ForceMode.
type ForceMode int

const (
	ForceModeForce ForceMode = iota
	ForceModeAcceleration
	ForceModeImpulse
	ForceModeVelocityChange
)

// ForceModeNames is the declared-name table used for wire conversion.
var ForceModeNames = map[string]int64{
	"force":          int64(ForceModeForce),
	"acceleration":   int64(ForceModeAcceleration),
	"impulse":        int64(ForceModeImpulse),
	"velocitychange": int64(ForceModeVelocityChange),
}
