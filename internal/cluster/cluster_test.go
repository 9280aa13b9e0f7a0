package cluster

import "testing"

func TestLabelS7(t *testing.T) {
	cases := []struct {
		count int
		want  string
	}{
		{1, "1"},
		{50, "50"},
		{99, "99"},
		{1000, "1.0k"},
		{1500, "1.5k"},
		{2000, "2k"},
		{20000, "2E4"},
		{250000, "3E5"},
	}
	for _, c := range cases {
		if got := Label(c.count); got != c.want {
			t.Errorf("Label(%d) = %q, want %q", c.count, got, c.want)
		}
	}
}

func TestColorForThresholds(t *testing.T) {
	cases := []struct {
		count int
		want  FillColor
	}{
		{0, FillCyan},
		{1, FillCyan},
		{2, FillGreen},
		{9, FillGreen},
		{10, FillYellow},
		{49, FillYellow},
		{50, FillOrange},
		{99, FillOrange},
		{100, FillRed},
		{100000, FillRed},
	}
	for _, c := range cases {
		if got := ColorFor(c.count); got != c.want {
			t.Errorf("ColorFor(%d) = %v, want %v", c.count, got, c.want)
		}
	}
}
