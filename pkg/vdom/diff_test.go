package vdom

import "testing"

func TestDiffBothNil(t *testing.T) {
	if patches := Diff(nil, nil); len(patches) != 0 {
		t.Errorf("patches = %d, want 0", len(patches))
	}
}

func TestDiffIdenticalTrees(t *testing.T) {
	build := func() *VNode {
		return Div(Class("box"), Button("toggle"), Span("label"))
	}
	prev := build()
	prev.HID = "h1"
	next := build()

	if patches := Diff(prev, next); len(patches) != 0 {
		t.Errorf("patches = %d, want 0 for identical trees", len(patches))
	}
}

func TestDiffNodeRemoved(t *testing.T) {
	prev := Div()
	prev.HID = "h1"

	patches := Diff(prev, nil)

	if len(patches) != 1 {
		t.Fatalf("patches = %d, want 1", len(patches))
	}
	if patches[0].Op != PatchRemoveNode {
		t.Errorf("Op = %v, want PatchRemoveNode", patches[0].Op)
	}
	if patches[0].HID != "h1" {
		t.Errorf("HID = %q, want h1", patches[0].HID)
	}
}

func TestDiffTextChangeTargetsParent(t *testing.T) {
	prev := Span("before")
	prev.HID = "h1"
	next := Span("after")

	patches := Diff(prev, next)

	if len(patches) != 1 {
		t.Fatalf("patches = %d, want 1", len(patches))
	}
	if patches[0].Op != PatchSetText {
		t.Errorf("Op = %v, want PatchSetText", patches[0].Op)
	}
	if patches[0].HID != "h1" {
		t.Errorf("HID = %q, want parent h1", patches[0].HID)
	}
	if patches[0].Value != "after" {
		t.Errorf("Value = %q, want %q", patches[0].Value, "after")
	}
}

func TestDiffTextUnchanged(t *testing.T) {
	prev := Span("same")
	prev.HID = "h1"
	next := Span("same")

	if patches := Diff(prev, next); len(patches) != 0 {
		t.Errorf("patches = %d, want 0 for unchanged text", len(patches))
	}
}

func TestDiffKindChange(t *testing.T) {
	prev := Text("plain")
	prev.HID = "h1"
	next := Div()

	patches := Diff(prev, next)

	if len(patches) != 1 {
		t.Fatalf("patches = %d, want 1", len(patches))
	}
	if patches[0].Op != PatchReplaceNode {
		t.Errorf("Op = %v, want PatchReplaceNode", patches[0].Op)
	}
	if patches[0].Node != next {
		t.Error("replacement should carry the next node")
	}
}

func TestDiffTagChange(t *testing.T) {
	prev := Div("x")
	prev.HID = "h1"
	next := Span("x")

	patches := Diff(prev, next)

	if len(patches) != 1 {
		t.Fatalf("patches = %d, want 1", len(patches))
	}
	if patches[0].Op != PatchReplaceNode {
		t.Errorf("Op = %v, want PatchReplaceNode", patches[0].Op)
	}
	if patches[0].HID != "h1" {
		t.Errorf("HID = %q, want h1", patches[0].HID)
	}
}

func TestDiffAttrAdded(t *testing.T) {
	prev := Div()
	prev.HID = "h1"
	next := Div(Class("open"))

	patches := Diff(prev, next)

	if len(patches) != 1 {
		t.Fatalf("patches = %d, want 1", len(patches))
	}
	p := patches[0]
	if p.Op != PatchSetAttr || p.HID != "h1" || p.Key != "class" || p.Value != "open" {
		t.Errorf("patch = %+v, want SetAttr h1 class=open", p)
	}
}

func TestDiffAttrChanged(t *testing.T) {
	prev := Div(Data("state", "closed"))
	prev.HID = "h1"
	next := Div(Data("state", "open"))

	patches := Diff(prev, next)

	if len(patches) != 1 {
		t.Fatalf("patches = %d, want 1", len(patches))
	}
	p := patches[0]
	if p.Op != PatchSetAttr || p.Key != "data-state" || p.Value != "open" {
		t.Errorf("patch = %+v, want SetAttr data-state=open", p)
	}
}

func TestDiffAttrRemoved(t *testing.T) {
	prev := Div(Class("open"))
	prev.HID = "h1"
	next := Div()

	patches := Diff(prev, next)

	if len(patches) != 1 {
		t.Fatalf("patches = %d, want 1", len(patches))
	}
	p := patches[0]
	if p.Op != PatchRemoveAttr || p.HID != "h1" || p.Key != "class" {
		t.Errorf("patch = %+v, want RemoveAttr h1 class", p)
	}
}

func TestDiffCheckedBecomesPropertyPatch(t *testing.T) {
	prev := Input(Type("checkbox"))
	prev.HID = "h1"
	next := Input(Type("checkbox"), Checked())

	patches := Diff(prev, next)

	if len(patches) != 1 {
		t.Fatalf("patches = %d, want 1", len(patches))
	}
	p := patches[0]
	if p.Op != PatchSetChecked {
		t.Errorf("Op = %v, want PatchSetChecked", p.Op)
	}
	if p.HID != "h1" || p.Value != "true" {
		t.Errorf("patch = %+v, want h1 checked=true", p)
	}
}

func TestDiffCheckedRemovalUnchecks(t *testing.T) {
	prev := Input(Type("checkbox"), Checked())
	prev.HID = "h1"
	next := Input(Type("checkbox"))

	patches := Diff(prev, next)

	if len(patches) != 1 {
		t.Fatalf("patches = %d, want 1", len(patches))
	}
	p := patches[0]
	if p.Op != PatchSetChecked {
		t.Errorf("Op = %v, want PatchSetChecked on removal", p.Op)
	}
	if p.Value != "false" {
		t.Errorf("Value = %q, want false", p.Value)
	}
}

func TestDiffValueBecomesPropertyPatch(t *testing.T) {
	prev := Input(Type("text"), Value("old"))
	prev.HID = "h1"
	next := Input(Type("text"), Value("new"))

	patches := Diff(prev, next)

	if len(patches) != 1 {
		t.Fatalf("patches = %d, want 1", len(patches))
	}
	p := patches[0]
	if p.Op != PatchSetValue || p.Value != "new" {
		t.Errorf("patch = %+v, want SetValue new", p)
	}
}

func TestDiffEventHandlersIgnored(t *testing.T) {
	prev := Button(OnClick(func() {}))
	prev.HID = "h1"
	next := Button(OnClick(func() {}))

	if patches := Diff(prev, next); len(patches) != 0 {
		t.Errorf("patches = %d, want 0; handlers are not diffable", len(patches))
	}
}

func TestDiffChildAppended(t *testing.T) {
	prev := Ul(Li("a"))
	prev.HID = "h1"
	prev.Children[0].HID = "h2"
	next := Ul(Li("a"), Li("b"))

	patches := Diff(prev, next)

	if len(patches) != 1 {
		t.Fatalf("patches = %d, want 1", len(patches))
	}
	p := patches[0]
	if p.Op != PatchInsertNode {
		t.Errorf("Op = %v, want PatchInsertNode", p.Op)
	}
	if p.ParentID != "h1" || p.Index != 1 {
		t.Errorf("patch = %+v, want parent h1 index 1", p)
	}
	if p.Node == nil || p.Node.Children[0].Text != "b" {
		t.Error("inserted node should be the new list item")
	}
}

func TestDiffChildRemoved(t *testing.T) {
	prev := Ul(Li("a"), Li("b"))
	prev.HID = "h1"
	prev.Children[0].HID = "h2"
	prev.Children[1].HID = "h3"
	next := Ul(Li("a"))

	patches := Diff(prev, next)

	if len(patches) != 1 {
		t.Fatalf("patches = %d, want 1", len(patches))
	}
	p := patches[0]
	if p.Op != PatchRemoveNode || p.HID != "h3" {
		t.Errorf("patch = %+v, want RemoveNode h3", p)
	}
}

func TestDiffKeyedReorderMoves(t *testing.T) {
	prev := Ul(
		Li(Key("a"), "alpha"),
		Li(Key("b"), "beta"),
	)
	prev.HID = "h1"
	prev.Children[0].HID = "h2"
	prev.Children[1].HID = "h3"

	next := Ul(
		Li(Key("b"), "beta"),
		Li(Key("a"), "alpha"),
	)

	patches := Diff(prev, next)

	var moves []Patch
	for _, p := range patches {
		if p.Op == PatchMoveNode {
			moves = append(moves, p)
		}
		if p.Op == PatchInsertNode || p.Op == PatchRemoveNode {
			t.Errorf("keyed reorder should not produce %v", p.Op)
		}
	}
	if len(moves) != 2 {
		t.Fatalf("moves = %d, want 2", len(moves))
	}
	if moves[0].HID != "h3" || moves[0].Index != 0 {
		t.Errorf("first move = %+v, want h3 to index 0", moves[0])
	}
	if moves[1].HID != "h2" || moves[1].Index != 1 {
		t.Errorf("second move = %+v, want h2 to index 1", moves[1])
	}
}

func TestDiffKeyedRemoval(t *testing.T) {
	prev := Ul(
		Li(Key("a"), "alpha"),
		Li(Key("b"), "beta"),
	)
	prev.HID = "h1"
	prev.Children[0].HID = "h2"
	prev.Children[1].HID = "h3"

	next := Ul(Li(Key("b"), "beta"))

	patches := Diff(prev, next)

	var removed, moved bool
	for _, p := range patches {
		if p.Op == PatchRemoveNode && p.HID == "h2" {
			removed = true
		}
		if p.Op == PatchMoveNode && p.HID == "h3" && p.Index == 0 {
			moved = true
		}
	}
	if !removed {
		t.Error("missing RemoveNode for dropped key a")
	}
	if !moved {
		t.Error("missing MoveNode for surviving key b")
	}
}

func TestDiffNestedTextChange(t *testing.T) {
	prev := Div(Span("count: 1"))
	prev.HID = "h1"
	prev.Children[0].HID = "h2"
	next := Div(Span("count: 2"))

	patches := Diff(prev, next)

	if len(patches) != 1 {
		t.Fatalf("patches = %d, want 1", len(patches))
	}
	if patches[0].HID != "h2" {
		t.Errorf("HID = %q, want the span h2", patches[0].HID)
	}
}

func TestDiffCarriesHIDsForward(t *testing.T) {
	prev := Div(Button("toggle"))
	prev.HID = "h1"
	prev.Children[0].HID = "h2"
	next := Div(Button("toggle"))

	Diff(prev, next)

	if next.HID != "h1" {
		t.Errorf("next root HID = %q, want h1", next.HID)
	}
	if next.Children[0].HID != "h2" {
		t.Errorf("next button HID = %q, want h2", next.Children[0].HID)
	}
}

func TestPatchOpString(t *testing.T) {
	tests := []struct {
		op   PatchOp
		want string
	}{
		{PatchSetText, "SetText"},
		{PatchSetAttr, "SetAttr"},
		{PatchRemoveAttr, "RemoveAttr"},
		{PatchInsertNode, "InsertNode"},
		{PatchRemoveNode, "RemoveNode"},
		{PatchMoveNode, "MoveNode"},
		{PatchReplaceNode, "ReplaceNode"},
		{PatchSetValue, "SetValue"},
		{PatchSetChecked, "SetChecked"},
	}
	for _, tt := range tests {
		if got := tt.op.String(); got != tt.want {
			t.Errorf("PatchOp(%d).String() = %q, want %q", tt.op, got, tt.want)
		}
	}
}
