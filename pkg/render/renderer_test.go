package render

import (
	"errors"
	"strings"
	"testing"

	"github.com/picklist-dev/picklist/pkg/vdom"
)

func TestRenderText(t *testing.T) {
	r := New(Config{})

	html, err := r.RenderToString(vdom.Text("Hello, World!"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if html != "Hello, World!" {
		t.Errorf("got %q, want %q", html, "Hello, World!")
	}
}

func TestRenderTextEscaping(t *testing.T) {
	r := New(Config{})

	html, err := r.RenderToString(vdom.Text("<script>alert('xss')</script>"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(html, "<script>") {
		t.Errorf("text should be escaped, got %q", html)
	}
	if !strings.Contains(html, "&lt;script&gt;") {
		t.Errorf("should contain escaped script tag, got %q", html)
	}
}

func TestRenderElement(t *testing.T) {
	r := New(Config{})

	node := vdom.Div(vdom.Class("picklist"),
		vdom.Button("Choose"),
		vdom.Span("3 selected"),
	)
	html, err := r.RenderToString(node)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(html, `<div class="picklist">`) {
		t.Errorf("should contain div with class, got %q", html)
	}
	if !strings.Contains(html, `<button>Choose</button>`) {
		t.Errorf("should contain button, got %q", html)
	}
	if !strings.Contains(html, `<span>3 selected</span>`) {
		t.Errorf("should contain span, got %q", html)
	}
}

func TestRenderVoidElements(t *testing.T) {
	r := New(Config{})

	tests := []struct {
		name string
		node *vdom.VNode
		want string
	}{
		{
			name: "input",
			node: vdom.Input(vdom.Type("checkbox"), vdom.Name("fruit")),
			want: `<input name="fruit" type="checkbox">`,
		},
		{
			name: "br",
			node: vdom.Br(),
			want: `<br>`,
		},
		{
			name: "img",
			node: vdom.Img(vdom.Src("/icon.png"), vdom.Alt("icon")),
			want: `<img alt="icon" src="/icon.png">`,
		},
		{
			name: "hr",
			node: vdom.Hr(),
			want: `<hr>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			html, err := r.RenderToString(tt.node)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if html != tt.want {
				t.Errorf("got %q, want %q", html, tt.want)
			}
			if strings.Contains(html, "</"+tt.name+">") {
				t.Errorf("void element should not have closing tag, got %q", html)
			}
		})
	}
}

func TestRenderBooleanAttributes(t *testing.T) {
	r := New(Config{})

	html, err := r.RenderToString(vdom.Input(
		vdom.Type("checkbox"),
		vdom.Checked(),
		vdom.Disabled(),
	))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if html != `<input checked disabled type="checkbox">` {
		t.Errorf("got %q", html)
	}
}

func TestRenderBooleanAttributeFalseOmitted(t *testing.T) {
	r := New(Config{})

	node := vdom.Input(vdom.Type("checkbox"), vdom.AttrIf(false, vdom.Checked()))
	html, err := r.RenderToString(node)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(html, "checked") {
		t.Errorf("false boolean attr should be omitted, got %q", html)
	}
}

func TestRenderAttributesSorted(t *testing.T) {
	r := New(Config{})

	node := vdom.El("div",
		vdom.ID("z"),
		vdom.Class("a"),
		vdom.Data("state", "open"),
	)
	html, err := r.RenderToString(node)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `<div class="a" data-state="open" id="z"></div>`
	if html != want {
		t.Errorf("got %q, want %q", html, want)
	}
}

func TestRenderAttrEscaping(t *testing.T) {
	r := New(Config{})

	node := vdom.Div(vdom.Data("note", `say "hi" & <go>`))
	html, err := r.RenderToString(node)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(html, `data-note="say &quot;hi&quot; &amp; &lt;go&gt;"`) {
		t.Errorf("attribute should be escaped, got %q", html)
	}
}

func TestRenderHandlerMarkers(t *testing.T) {
	r := New(Config{})

	node := vdom.Button(vdom.OnClick(func() {}), "toggle")
	html, err := r.RenderToString(node)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(html, `data-on-click="true"`) {
		t.Errorf("handler should leave a marker, got %q", html)
	}
	if strings.Contains(html, "onclick=") {
		t.Errorf("handler must not render as an attribute, got %q", html)
	}
}

func TestRenderDataHIDOnlyWhenAssigned(t *testing.T) {
	r := New(Config{})

	plain := vdom.Button(vdom.OnClick(func() {}), "toggle")
	html, err := r.RenderToString(plain)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(html, "data-hid") {
		t.Errorf("renderer must not invent hydration IDs, got %q", html)
	}

	assigned := vdom.Button(vdom.OnClick(func() {}), "toggle")
	vdom.AssignHIDs(assigned, vdom.NewHIDGenerator())
	html, err = r.RenderToString(assigned)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(html, `data-hid="h1"`) {
		t.Errorf("assigned HID should be emitted, got %q", html)
	}
}

func TestRenderKeyNotEmitted(t *testing.T) {
	r := New(Config{})

	node := &vdom.VNode{
		Kind:  vdom.KindElement,
		Tag:   "li",
		Props: vdom.Props{"key": "apples"},
	}
	html, err := r.RenderToString(node)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(html, "key=") {
		t.Errorf("reconciliation key must not render, got %q", html)
	}
}

func TestRenderFragment(t *testing.T) {
	r := New(Config{})

	node := vdom.Fragment(vdom.Span("a"), vdom.Span("b"))
	html, err := r.RenderToString(node)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if html != "<span>a</span><span>b</span>" {
		t.Errorf("got %q", html)
	}
}

func TestRenderRaw(t *testing.T) {
	r := New(Config{})

	html, err := r.RenderToString(vdom.Raw("<b>bold</b>"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if html != "<b>bold</b>" {
		t.Errorf("raw content should pass through, got %q", html)
	}
}

func TestRenderNilNode(t *testing.T) {
	r := New(Config{})

	html, err := r.RenderToString(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if html != "" {
		t.Errorf("nil node should render nothing, got %q", html)
	}
}

func TestRenderUnknownKind(t *testing.T) {
	r := New(Config{})

	_, err := r.RenderToString(&vdom.VNode{Kind: vdom.VKind(42)})
	if err == nil {
		t.Fatal("expected error for unknown node kind")
	}
}

func TestRenderPretty(t *testing.T) {
	r := New(Config{Pretty: true})

	node := vdom.Div(vdom.Ul(vdom.Li("a")))
	html, err := r.RenderToString(node)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(html, "\n") {
		t.Errorf("pretty output should contain newlines, got %q", html)
	}
	if !strings.Contains(html, "\n  <ul>") {
		t.Errorf("nested element should be indented, got %q", html)
	}
}

// errWriter fails every write, exercising error propagation.
type errWriter struct{}

func (errWriter) Write([]byte) (int, error) {
	return 0, errors.New("write failed")
}

func TestRenderWriterErrors(t *testing.T) {
	r := New(Config{})

	nodes := []*vdom.VNode{
		vdom.Div(vdom.Span("x")),
		vdom.Text("x"),
		vdom.Raw("<b>x</b>"),
		vdom.Input(vdom.Type("checkbox")),
	}
	for _, node := range nodes {
		if err := r.RenderToWriter(errWriter{}, node); err == nil {
			t.Errorf("expected write error for %v node", node.Kind)
		}
	}
}

func TestRendererSharedSafely(t *testing.T) {
	r := New(Config{})
	node := vdom.Div(vdom.Button(vdom.OnClick(func() {}), "go"))

	first, err := r.RenderToString(node)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := r.RenderToString(node)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first != second {
		t.Errorf("renders diverged:\n%q\n%q", first, second)
	}
}
