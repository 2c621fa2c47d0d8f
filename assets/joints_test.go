package assets

import "testing"

func TestClassifyJoint(t *testing.T) {
	tests := []struct {
		name string
		want Capability
	}{
		{"hand.R", CapabilityHand},
		{"RightHand", CapabilityHand},
		{"mixamorig:LeftHand", CapabilityHand},
		{"fist_l", CapabilityHand},
		{"wrist.L", CapabilityHand},
		{"foot.R", CapabilityFoot},
		{"LeftToeBase", CapabilityFoot},
		{"ankle_r", CapabilityFoot},
		{"shin.L", CapabilityFoot},
		{"spine01", CapabilityTorso},
		{"Chest", CapabilityTorso},
		{"Hips", CapabilityTorso},
		{"head", CapabilityNone},
		{"tail.003", CapabilityNone},
		{"", CapabilityNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyJoint(tt.name); got != tt.want {
				t.Fatalf("ClassifyJoint(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestBuildAttachPointsFullRig(t *testing.T) {
	ap := BuildAttachPoints([]string{"hand.R", "foot.L", "spine"}, 1.0, 2.0)

	if ap.Hand == ap.Torso {
		t.Fatal("rig with a hand joint should keep the hand offset")
	}
	if ap.Foot == ap.Torso {
		t.Fatal("rig with a foot joint should keep the foot offset")
	}
	if ap.Hand.Y <= ap.Foot.Y {
		t.Fatalf("hand (%v) should attach above foot (%v)", ap.Hand.Y, ap.Foot.Y)
	}
}

func TestBuildAttachPointsMissingCapabilitiesCollapse(t *testing.T) {
	// A rig whose joints name no hand or foot still fights, anchored at
	// the torso.
	ap := BuildAttachPoints([]string{"spine", "head"}, 1.0, 2.0)

	if ap.Hand != ap.Torso {
		t.Fatalf("hand = %v, want torso fallback %v", ap.Hand, ap.Torso)
	}
	if ap.Foot != ap.Torso {
		t.Fatalf("foot = %v, want torso fallback %v", ap.Foot, ap.Torso)
	}
}

func TestBuildAttachPointsNoManifestKeepsDefaults(t *testing.T) {
	// No joint list at all means no information to demote on: the fixed
	// fractions of the collision box stand.
	ap := BuildAttachPoints(nil, 1.0, 2.0)

	if ap.Hand == ap.Torso || ap.Foot == ap.Torso {
		t.Fatal("bare rig should keep distinct default attach points")
	}
	if ap.Hand.X != 1.0 {
		t.Fatalf("hand X = %v, want collision width", ap.Hand.X)
	}
}
