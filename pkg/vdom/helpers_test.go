package vdom

import "testing"

func TestIf(t *testing.T) {
	node := Span("visible")

	if got := If(true, node); got != node {
		t.Error("If(true) should return the node")
	}
	if got := If(false, node); got != nil {
		t.Error("If(false) should return nil")
	}
}

func TestIfElse(t *testing.T) {
	a, b := Span("a"), Span("b")

	if got := IfElse(true, a, b); got != a {
		t.Error("IfElse(true) should return the first node")
	}
	if got := IfElse(false, a, b); got != b {
		t.Error("IfElse(false) should return the second node")
	}
}

func TestWhenIsLazy(t *testing.T) {
	called := false
	When(false, func() *VNode {
		called = true
		return Div()
	})
	if called {
		t.Error("When(false) should not invoke fn")
	}

	node := When(true, func() *VNode { return Span("x") })
	if node == nil || node.Tag != "span" {
		t.Error("When(true) should invoke fn and return its node")
	}
}

func TestUnless(t *testing.T) {
	node := Span("x")
	if got := Unless(true, node); got != nil {
		t.Error("Unless(true) should return nil")
	}
	if got := Unless(false, node); got != node {
		t.Error("Unless(false) should return the node")
	}
}

func TestRangePreservesOrder(t *testing.T) {
	items := []string{"alpha", "beta", "gamma"}
	nodes := Range(items, func(item string, i int) *VNode {
		return Li(item)
	})

	if len(nodes) != 3 {
		t.Fatalf("nodes = %d, want 3", len(nodes))
	}
	for i, item := range items {
		if nodes[i].Children[0].Text != item {
			t.Errorf("nodes[%d] = %q, want %q", i, nodes[i].Children[0].Text, item)
		}
	}
}

func TestRangeDropsNil(t *testing.T) {
	nodes := Range([]int{1, 2, 3, 4}, func(n, i int) *VNode {
		return If(n%2 == 0, Li(Textf("%d", n)))
	})
	if len(nodes) != 2 {
		t.Errorf("nodes = %d, want 2", len(nodes))
	}
}

func TestFragment(t *testing.T) {
	frag := Fragment(Span("a"), nil, "text", []*VNode{Span("b"), nil})

	if frag.Kind != KindFragment {
		t.Errorf("kind = %v, want Fragment", frag.Kind)
	}
	if len(frag.Children) != 3 {
		t.Errorf("children = %d, want 3", len(frag.Children))
	}
	if frag.Children[1].Kind != KindText {
		t.Error("string child should become a text node")
	}
}

func TestTextf(t *testing.T) {
	node := Textf("%d of %d", 2, 5)
	if node.Text != "2 of 5" {
		t.Errorf("Text = %q, want %q", node.Text, "2 of 5")
	}
}

func TestRepeat(t *testing.T) {
	nodes := Repeat(3, func(i int) *VNode { return Li(Textf("%d", i)) })
	if len(nodes) != 3 {
		t.Errorf("nodes = %d, want 3", len(nodes))
	}
	if got := Repeat(0, func(i int) *VNode { return Div() }); got != nil {
		t.Error("Repeat(0) should return nil")
	}
}

func TestNothing(t *testing.T) {
	if Nothing() != nil {
		t.Error("Nothing() should return nil")
	}
}
