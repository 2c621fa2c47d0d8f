package assets

import "strings"

// Capability classifies what a rig joint can be used for by the combat
// systems. Discovered once from joint names at load time; the per-tick
// systems never walk the joint list again.
type Capability int

const (
	CapabilityNone Capability = iota
	CapabilityHand
	CapabilityFoot
	CapabilityTorso
)

// Offset is an attachment point relative to the character's collision box
// origin, in world units. X is along the movement axis in facing direction.
type Offset struct {
	X, Y float64
}

// AttachPoints is the structured result of rig postprocessing: one
// attachment offset per capability the combat systems care about.
type AttachPoints struct {
	Hand  Offset
	Foot  Offset
	Torso Offset
}

// ClassifyJoint maps a rig joint name to a capability. Matching is by
// substring because exporters disagree on exact naming ("hand.R",
// "RightHand", "mixamorig:RightHand" all mean a hand).
func ClassifyJoint(name string) Capability {
	n := strings.ToLower(name)
	switch {
	case strings.Contains(n, "hand") || strings.Contains(n, "fist") || strings.Contains(n, "wrist"):
		return CapabilityHand
	case strings.Contains(n, "foot") || strings.Contains(n, "toe") || strings.Contains(n, "ankle") || strings.Contains(n, "shin"):
		return CapabilityFoot
	case strings.Contains(n, "spine") || strings.Contains(n, "chest") || strings.Contains(n, "torso") || strings.Contains(n, "hips"):
		return CapabilityTorso
	default:
		return CapabilityNone
	}
}

// BuildAttachPoints derives attachment offsets for a character of the given
// collision size from its rig joint names. Joints that classify to nothing
// are ignored; capabilities with no matching joint fall back to fixed
// fractions of the collision box so combat still works on a bare rig.
func BuildAttachPoints(jointNames []string, width, height float64) AttachPoints {
	ap := AttachPoints{
		Hand:  Offset{X: width, Y: height * 0.65},
		Foot:  Offset{X: width * 0.9, Y: height * 0.25},
		Torso: Offset{X: width * 0.5, Y: height * 0.5},
	}

	// Presence of a matching joint keeps the default offset for that
	// capability; the names decide which capabilities the rig supports.
	// Unsupported capabilities collapse onto the torso point.
	var hasHand, hasFoot bool
	for _, name := range jointNames {
		switch ClassifyJoint(name) {
		case CapabilityHand:
			hasHand = true
		case CapabilityFoot:
			hasFoot = true
		}
	}
	if len(jointNames) > 0 {
		if !hasHand {
			ap.Hand = ap.Torso
		}
		if !hasFoot {
			ap.Foot = ap.Torso
		}
	}
	return ap
}
