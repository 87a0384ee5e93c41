package vtest

import "github.com/picklist-dev/picklist/pkg/vdom"

// FindAll returns every element with the given tag, in document order.
func FindAll(node *vdom.VNode, tag string) []*vdom.VNode {
	var found []*vdom.VNode
	walk(node, func(n *vdom.VNode) {
		if n.Kind == vdom.KindElement && n.Tag == tag {
			found = append(found, n)
		}
	})
	return found
}

// FindAllByAttr returns every element whose attribute equals value, in
// document order.
func FindAllByAttr(node *vdom.VNode, key, value string) []*vdom.VNode {
	var found []*vdom.VNode
	walk(node, func(n *vdom.VNode) {
		if n.Kind != vdom.KindElement {
			return
		}
		if v, ok := n.Props[key].(string); ok && v == value {
			found = append(found, n)
		}
	})
	return found
}

// FindByText returns the first element with a direct text child equal to
// text, or nil. Useful for locating buttons by their label.
func FindByText(node *vdom.VNode, text string) *vdom.VNode {
	var found *vdom.VNode
	walk(node, func(n *vdom.VNode) {
		if found != nil || n.Kind != vdom.KindElement {
			return
		}
		for _, child := range n.Children {
			if child != nil && child.Kind == vdom.KindText && child.Text == text {
				found = n
				return
			}
		}
	})
	return found
}

func walk(node *vdom.VNode, visit func(*vdom.VNode)) {
	if node == nil {
		return
	}
	visit(node)
	for _, child := range node.Children {
		walk(child, visit)
	}
}
