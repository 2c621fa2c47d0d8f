package assets

import (
	"testing"

	"github.com/automoto/dojoduel/config"
	"github.com/hajimehoshi/ebiten/v2"
)

func TestLibraryRigUnavailableUntilPublished(t *testing.T) {
	lib := NewLibrary()

	if _, ok := lib.Rig("ninja"); ok {
		t.Fatal("empty library should not resolve a rig")
	}

	lib.Publish(&Rig{
		Key:         "ninja",
		Sheets:      map[config.StateID]*ebiten.Image{},
		FrameWidth:  96,
		FrameHeight: 96,
	})

	rig, ok := lib.Rig("ninja")
	if !ok {
		t.Fatal("published rig should resolve")
	}
	if rig.Key != "ninja" || rig.FrameWidth != 96 {
		t.Fatalf("unexpected rig: %+v", rig)
	}
}
