package vdom

import (
	"fmt"
	"sync"
)

// HIDGenerator hands out sequential hydration IDs. It is safe for
// concurrent use; live sessions share one generator across re-renders so
// new elements never reuse an ID still present in the browser.
type HIDGenerator struct {
	counter uint32
	mu      sync.Mutex
}

// NewHIDGenerator creates a new HIDGenerator.
func NewHIDGenerator() *HIDGenerator {
	return &HIDGenerator{}
}

// Next returns the next hydration ID ("h1", "h2", ...).
func (g *HIDGenerator) Next() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.counter++
	return fmt.Sprintf("h%d", g.counter)
}

// Reset resets the counter to 0.
func (g *HIDGenerator) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.counter = 0
}

// Current returns the current counter value without incrementing.
func (g *HIDGenerator) Current() uint32 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.counter
}

// AssignHIDs walks the tree and assigns IDs to interactive elements that
// do not already have one. Elements with an existing HID keep it.
func AssignHIDs(node *VNode, gen *HIDGenerator) {
	if node == nil {
		return
	}

	if node.Kind == KindElement && node.HID == "" && node.IsInteractive() {
		node.HID = gen.Next()
	}

	for _, child := range node.Children {
		AssignHIDs(child, gen)
	}
}

// AssignAllHIDs assigns IDs to every element that does not already have
// one, not just interactive ones. Live sessions use it so text and
// structural patches can always address a target element.
func AssignAllHIDs(node *VNode, gen *HIDGenerator) {
	if node == nil {
		return
	}

	if node.Kind == KindElement && node.HID == "" {
		node.HID = gen.Next()
	}

	for _, child := range node.Children {
		AssignAllHIDs(child, gen)
	}
}

// CollectHIDs returns a map of HID to node for every node carrying one.
func CollectHIDs(node *VNode) map[string]*VNode {
	result := make(map[string]*VNode)
	collectHIDs(node, result)
	return result
}

func collectHIDs(node *VNode, result map[string]*VNode) {
	if node == nil {
		return
	}
	if node.HID != "" {
		result[node.HID] = node
	}
	for _, child := range node.Children {
		collectHIDs(child, result)
	}
}

// FindByHID finds a node by its HID, or nil.
func FindByHID(node *VNode, hid string) *VNode {
	if node == nil {
		return nil
	}
	if node.HID == hid {
		return node
	}
	for _, child := range node.Children {
		if found := FindByHID(child, hid); found != nil {
			return found
		}
	}
	return nil
}

// CountInteractive returns the number of interactive elements in the tree.
func CountInteractive(node *VNode) int {
	if node == nil {
		return 0
	}
	count := 0
	if node.Kind == KindElement && node.IsInteractive() {
		count = 1
	}
	for _, child := range node.Children {
		count += CountInteractive(child)
	}
	return count
}

// ClearHIDs removes every HID from the tree.
func ClearHIDs(node *VNode) {
	if node == nil {
		return
	}
	node.HID = ""
	for _, child := range node.Children {
		ClearHIDs(child)
	}
}

// CopyHIDs copies HIDs from a previous render onto a structurally matching
// new tree, so diffing can address unchanged elements by their existing
// IDs. Returns false where the shapes diverge; AssignHIDs then fills the
// gaps with fresh IDs.
func CopyHIDs(src, dst *VNode) bool {
	if src == nil || dst == nil {
		return src == nil && dst == nil
	}

	dst.HID = src.HID

	if len(src.Children) != len(dst.Children) {
		return false
	}
	for i := range src.Children {
		if !CopyHIDs(src.Children[i], dst.Children[i]) {
			return false
		}
	}
	return true
}
