package tag_test

import (
	"testing"

	"tagcomposer/tag"
)

func TestDraftFollowsLabel(t *testing.T) {
	var d tag.Draft
	d.SetHint("keep me")
	d.SetLabel("Step one")
	if d.OpenTag != "<STEP_ONE>" || d.CloseTag != "</STEP_ONE>" {
		t.Fatalf("markers not derived: %+v", d)
	}
	d.SetLabel("  ")
	if d.OpenTag != "" || d.CloseTag != "" {
		t.Fatalf("blank label should clear markers: %+v", d)
	}
	if d.Hint != "keep me" {
		t.Fatalf("hint lost: %+v", d)
	}
	d.Clear()
	if d != (tag.Draft{}) {
		t.Fatalf("Clear left %+v", d)
	}
}

func TestDraftOf(t *testing.T) {
	def := tag.Defaults()[0]
	d := tag.DraftOf(def)
	if d.Label != def.Label || d.OpenTag != def.OpenTag || d.Hint != def.Hint {
		t.Fatalf("unexpected draft: %+v", d)
	}
}
