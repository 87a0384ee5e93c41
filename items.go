package picklist

// Item is the stock item shape used with New. Hosts with richer item
// types use NewCustom and provide their own projections.
type Item struct {
	Label   string
	Checked bool
}

// ToggleItem returns a new slice in which every item whose Label equals
// target's Label has Checked negated; all other items pass through
// unchanged. Length and order are preserved and the input is never
// mutated. When no label matches, the contents come back unchanged.
//
// Matching is by label value, not position: duplicate labels all toggle
// together. Hosts that need per-row identity should keep labels unique
// or track selection with NewCustom projections instead.
func ToggleItem(target Item, items []Item) []Item {
	out := make([]Item, len(items))
	for i, item := range items {
		if item.Label == target.Label {
			item.Checked = !item.Checked
		}
		out[i] = item
	}
	return out
}

// SelectAll returns a new slice with every item's Checked set to check.
// This is an overwrite, not a toggle: applying it twice gives the same
// result. Length and order are preserved and the input is never mutated.
func SelectAll(check bool, items []Item) []Item {
	out := make([]Item, len(items))
	for i, item := range items {
		item.Checked = check
		out[i] = item
	}
	return out
}
