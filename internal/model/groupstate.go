package model

// GroupState is the ternary {None, Some, All} summary of an attribute over
// a group of items — selection, filter match, or region-selection (§7,
// GLOSSARY). A tile's composed state for "selected" is None if
// selected_count == 0, All if selected_count == item_count, else Some.
type GroupState int

const (
	GroupStateNone GroupState = iota
	GroupStateSome
	GroupStateAll
)

func (s GroupState) String() string {
	switch s {
	case GroupStateNone:
		return "None"
	case GroupStateSome:
		return "Some"
	case GroupStateAll:
		return "All"
	default:
		return "Unknown"
	}
}

// ComposeSelectedState derives a tile or cluster's selected GroupState
// directly from counts, per §7: None if selectedCount==0, All if
// selectedCount==itemCount (and itemCount>0), else Some.
func ComposeSelectedState(selectedCount, itemCount int) GroupState {
	switch {
	case itemCount == 0 || selectedCount == 0:
		return GroupStateNone
	case selectedCount == itemCount:
		return GroupStateAll
	default:
		return GroupStateSome
	}
}

// GroupStateComputer accumulates the composed state of three independent
// attributes (selected, filtered-positive, region-selected) as children of
// a group are folded in one at a time, per the algebra in §7: the first
// child's state for an attribute is taken as-is; thereafter any Some is
// absorbing, and a mix of All and None downgrades to Some. Ported from
// original_source's GroupStateComputer (one instance per attribute would
// be equivalent; this type tracks all three at once since every caller in
// the pack needs all three together).
type GroupStateComputer struct {
	selected, filtered, region     GroupState
	haveSelected, haveFiltered, haveRegion bool
}

// AddState folds in one child's three attribute states.
func (c *GroupStateComputer) AddState(selected, filtered, region GroupState) {
	c.selected = foldAttribute(c.selected, selected, &c.haveSelected)
	c.filtered = foldAttribute(c.filtered, filtered, &c.haveFiltered)
	c.region = foldAttribute(c.region, region, &c.haveRegion)
}

func foldAttribute(current, incoming GroupState, have *bool) GroupState {
	if !*have {
		*have = true
		return incoming
	}
	if incoming == GroupStateSome || current == GroupStateSome {
		return GroupStateSome
	}
	if incoming != current {
		// one is All, the other None: downgrade to Some.
		return GroupStateSome
	}
	return current
}

// Selected, Filtered, Region return the composed state for each attribute.
func (c GroupStateComputer) Selected() GroupState { return c.selected }
func (c GroupStateComputer) Filtered() GroupState { return c.filtered }
func (c GroupStateComputer) Region() GroupState    { return c.region }

// Clear resets the computer to its empty state.
func (c *GroupStateComputer) Clear() {
	*c = GroupStateComputer{}
}
