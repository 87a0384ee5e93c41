package render

import (
	"fmt"
	"io"
	"testing"

	"github.com/picklist-dev/picklist/pkg/vdom"
)

func checklistTree(rows int) *vdom.VNode {
	items := make([]*vdom.VNode, rows)
	for i := range items {
		items[i] = vdom.Div(
			vdom.Class("picklist-row"),
			vdom.El("label",
				vdom.Input(vdom.Type("checkbox"), vdom.OnChange(func(bool) {})),
				vdom.Span(fmt.Sprintf("item %d", i)),
			),
		)
	}
	return vdom.Div(
		vdom.Class("picklist"),
		vdom.Button(vdom.OnClick(func() {}), "Choose"),
		vdom.Div(vdom.Class("picklist-panel"), items),
	)
}

func BenchmarkRenderChecklist(b *testing.B) {
	r := New(Config{})
	tree := checklistTree(50)
	vdom.AssignHIDs(tree, vdom.NewHIDGenerator())

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := r.RenderToWriter(io.Discard, tree); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRenderPage(b *testing.B) {
	r := New(Config{})
	page := Page{
		Title:   "Fruit",
		Body:    checklistTree(20),
		LiveURL: "/picklist/live",
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := r.RenderPage(io.Discard, page); err != nil {
			b.Fatal(err)
		}
	}
}
