package pathlib

import "testing"

func TestPathsAddKeepsOrder(t *testing.T) {
	var ps Paths
	for _, s := range []string{"c", "a", "b"} {
		ps.Add(FromString(s))
	}
	got := ps.Strings()
	want := []string{"c", "a", "b"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Strings()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestPathsPop(t *testing.T) {
	build := func() Paths {
		var ps Paths
		for _, s := range []string{"a", "b", "c", "d"} {
			ps.Add(FromString(s))
		}
		return ps
	}

	cases := []struct {
		i    int
		want []string
	}{
		{0, []string{"b", "c", "d"}},
		{1, []string{"a", "c", "d"}},
		{3, []string{"a", "b", "c"}},
		{-1, []string{"a", "b", "c", "d"}}, // out of range: no-op
		{4, []string{"a", "b", "c", "d"}},
	}
	for _, c := range cases {
		ps := build()
		ps.Pop(c.i)
		got := ps.Strings()
		if len(got) != len(c.want) {
			t.Errorf("Pop(%d) left %v, want %v", c.i, got, c.want)
			continue
		}
		for j := range c.want {
			if got[j] != c.want[j] {
				t.Errorf("Pop(%d)[%d] = %q, want %q", c.i, j, got[j], c.want[j])
			}
		}
	}
}

func TestPathsPopToEmpty(t *testing.T) {
	var ps Paths
	ps.Add(FromString("only"))
	ps.Pop(0)
	if len(ps) != 0 {
		t.Errorf("Pop of last element left %v", ps.Strings())
	}
	ps.Pop(0) // empty collection: no-op
}
