package vdom

// voidElements cannot have children or a closing tag.
var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// IsVoidElement reports whether the tag is a void element.
func IsVoidElement(tag string) bool {
	return voidElements[tag]
}

// newElement builds an element node from variadic arguments.
// Arguments may be: nil, Attr, []Attr, *VNode, []*VNode, string, EventHandler.
func newElement(tag string, args []any) *VNode {
	node := &VNode{
		Kind:     KindElement,
		Tag:      tag,
		Props:    make(Props),
		Children: make([]*VNode, 0),
	}

	for _, arg := range args {
		switch v := arg.(type) {
		case nil:
			// Skipped so callers can pass conditional attrs and children.
			continue

		case Attr:
			setProp(node, v)

		case []Attr:
			for _, a := range v {
				setProp(node, a)
			}

		case *VNode:
			if v != nil {
				node.Children = append(node.Children, v)
			}

		case []*VNode:
			for _, child := range v {
				if child != nil {
					node.Children = append(node.Children, child)
				}
			}

		case string:
			node.Children = append(node.Children, &VNode{Kind: KindText, Text: v})

		case EventHandler:
			node.Props[v.Event] = v.Handler
		}
	}

	return node
}

// setProp applies one attribute to the node, routing the reconciliation
// key to the Key field rather than Props.
func setProp(node *VNode, a Attr) {
	if a.Key == "" {
		return
	}
	if a.Key == "key" {
		if s, ok := a.Value.(string); ok {
			node.Key = s
		}
		return
	}
	node.Props[a.Key] = a.Value
}

// El creates an element with an arbitrary tag name.
func El(tag string, args ...any) *VNode { return newElement(tag, args) }

// Document structure

func Html(args ...any) *VNode  { return newElement("html", args) }
func Head(args ...any) *VNode  { return newElement("head", args) }
func Body(args ...any) *VNode  { return newElement("body", args) }
func Title(args ...any) *VNode { return newElement("title", args) }
func Meta(args ...any) *VNode  { return newElement("meta", args) }
func Link(args ...any) *VNode  { return newElement("link", args) }
func Style(args ...any) *VNode { return newElement("style", args) }

// Sectioning

func Header(args ...any) *VNode  { return newElement("header", args) }
func Footer(args ...any) *VNode  { return newElement("footer", args) }
func Main(args ...any) *VNode    { return newElement("main", args) }
func Nav(args ...any) *VNode     { return newElement("nav", args) }
func Section(args ...any) *VNode { return newElement("section", args) }
func Article(args ...any) *VNode { return newElement("article", args) }
func H1(args ...any) *VNode      { return newElement("h1", args) }
func H2(args ...any) *VNode      { return newElement("h2", args) }
func H3(args ...any) *VNode      { return newElement("h3", args) }
func H4(args ...any) *VNode      { return newElement("h4", args) }

// Text content

func Div(args ...any) *VNode  { return newElement("div", args) }
func P(args ...any) *VNode    { return newElement("p", args) }
func Span(args ...any) *VNode { return newElement("span", args) }
func Pre(args ...any) *VNode  { return newElement("pre", args) }
func Ul(args ...any) *VNode   { return newElement("ul", args) }
func Ol(args ...any) *VNode   { return newElement("ol", args) }
func Li(args ...any) *VNode   { return newElement("li", args) }
func Hr(args ...any) *VNode   { return newElement("hr", args) }
func Br(args ...any) *VNode   { return newElement("br", args) }

// Inline semantics

func A(args ...any) *VNode      { return newElement("a", args) }
func Strong(args ...any) *VNode { return newElement("strong", args) }
func Em(args ...any) *VNode     { return newElement("em", args) }
func Small(args ...any) *VNode  { return newElement("small", args) }
func Code(args ...any) *VNode   { return newElement("code", args) }

// Forms

func Form(args ...any) *VNode     { return newElement("form", args) }
func Input(args ...any) *VNode    { return newElement("input", args) }
func Textarea(args ...any) *VNode { return newElement("textarea", args) }
func Select(args ...any) *VNode   { return newElement("select", args) }
func Option(args ...any) *VNode   { return newElement("option", args) }
func Button(args ...any) *VNode   { return newElement("button", args) }
func Label(args ...any) *VNode    { return newElement("label", args) }
func Fieldset(args ...any) *VNode { return newElement("fieldset", args) }
func Legend(args ...any) *VNode   { return newElement("legend", args) }

// Media and scripting

func Img(args ...any) *VNode      { return newElement("img", args) }
func Script(args ...any) *VNode   { return newElement("script", args) }
func Noscript(args ...any) *VNode { return newElement("noscript", args) }
