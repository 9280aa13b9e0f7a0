package model

import "testing"

func TestComposeSelectedState(t *testing.T) {
	tests := []struct {
		selected, total int
		want            GroupState
	}{
		{0, 0, GroupStateNone},
		{0, 5, GroupStateNone},
		{5, 5, GroupStateAll},
		{2, 5, GroupStateSome},
	}
	for _, tt := range tests {
		if got := ComposeSelectedState(tt.selected, tt.total); got != tt.want {
			t.Errorf("ComposeSelectedState(%d, %d) = %v, want %v", tt.selected, tt.total, got, tt.want)
		}
	}
}

func TestGroupStateComputerFirstChildTakenAsIs(t *testing.T) {
	var c GroupStateComputer
	c.AddState(GroupStateAll, GroupStateNone, GroupStateSome)
	if c.Selected() != GroupStateAll || c.Filtered() != GroupStateNone || c.Region() != GroupStateSome {
		t.Fatalf("unexpected first-child state: %v %v %v", c.Selected(), c.Filtered(), c.Region())
	}
}

func TestGroupStateComputerAllNoneDowngradesToSome(t *testing.T) {
	var c GroupStateComputer
	c.AddState(GroupStateAll, GroupStateNone, GroupStateNone)
	c.AddState(GroupStateNone, GroupStateNone, GroupStateAll)
	if c.Selected() != GroupStateSome {
		t.Errorf("All+None selected should downgrade to Some, got %v", c.Selected())
	}
	if c.Filtered() != GroupStateNone {
		t.Errorf("None+None filtered should stay None, got %v", c.Filtered())
	}
	if c.Region() != GroupStateSome {
		t.Errorf("None+All region should downgrade to Some, got %v", c.Region())
	}
}

func TestGroupStateComputerSomeIsAbsorbing(t *testing.T) {
	var c GroupStateComputer
	c.AddState(GroupStateAll, GroupStateAll, GroupStateAll)
	c.AddState(GroupStateSome, GroupStateSome, GroupStateSome)
	c.AddState(GroupStateAll, GroupStateAll, GroupStateAll)
	if c.Selected() != GroupStateSome || c.Filtered() != GroupStateSome || c.Region() != GroupStateSome {
		t.Errorf("a single Some child should make the whole group Some, got %v %v %v", c.Selected(), c.Filtered(), c.Region())
	}
}

func TestGroupStateComputerAllAllStaysAll(t *testing.T) {
	var c GroupStateComputer
	c.AddState(GroupStateAll, GroupStateAll, GroupStateAll)
	c.AddState(GroupStateAll, GroupStateAll, GroupStateAll)
	if c.Selected() != GroupStateAll || c.Filtered() != GroupStateAll || c.Region() != GroupStateAll {
		t.Errorf("uniform All children should stay All, got %v %v %v", c.Selected(), c.Filtered(), c.Region())
	}
}

func TestGroupStateComputerClear(t *testing.T) {
	var c GroupStateComputer
	c.AddState(GroupStateAll, GroupStateAll, GroupStateAll)
	c.Clear()
	c.AddState(GroupStateNone, GroupStateNone, GroupStateNone)
	if c.Selected() != GroupStateNone {
		t.Errorf("Clear should reset fold state, got %v", c.Selected())
	}
}
