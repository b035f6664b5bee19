package game

import "testing"

func TestXPForLevel(t *testing.T) {
	cases := []struct {
		level int
		want  int
	}{
		{1, 100},
		{2, 150},
		{3, 225},
		{4, 337},
		{5, 506},
	}
	for _, tc := range cases {
		if got := XPForLevel(tc.level); got != tc.want {
			t.Errorf("XPForLevel(%d) = %d, want %d", tc.level, got, tc.want)
		}
	}
}

func TestLevelFromXP(t *testing.T) {
	cases := []struct {
		xp   int
		want int
	}{
		{0, 1},
		{99, 1},
		{100, 2},
		{249, 2},
		{250, 3},
		{277, 3},
		{474, 3},
		{475, 4},
	}
	for _, tc := range cases {
		if got := LevelFromXP(tc.xp); got != tc.want {
			t.Errorf("LevelFromXP(%d) = %d, want %d", tc.xp, got, tc.want)
		}
	}
}

func TestLevelNeverDecreases(t *testing.T) {
	prev := 0
	for xp := 0; xp <= 5000; xp += 7 {
		level := LevelFromXP(xp)
		if level < prev {
			t.Fatalf("level dropped from %d to %d at xp=%d", prev, level, xp)
		}
		prev = level
	}
}

func TestProgressFromXP(t *testing.T) {
	p := ProgressFromXP(0)
	if p.Current != 0 || p.Required != 100 || p.Percentage != 0 {
		t.Errorf("ProgressFromXP(0) = %+v", p)
	}

	p = ProgressFromXP(150)
	if p.Current != 50 || p.Required != 150 {
		t.Errorf("ProgressFromXP(150) = %+v", p)
	}

	// Current XP within a level plus the XP of all levels below must
	// reconstruct the total.
	for _, xp := range []int{0, 42, 100, 277, 1000, 12345} {
		level := LevelFromXP(xp)
		below := 0
		for i := 1; i < level; i++ {
			below += XPForLevel(i)
		}
		p := ProgressFromXP(xp)
		if below+p.Current != xp {
			t.Errorf("xp=%d: below=%d current=%d does not add up", xp, below, p.Current)
		}
		if p.Current >= p.Required {
			t.Errorf("xp=%d: current %d should be below required %d", xp, p.Current, p.Required)
		}
	}
}

func TestTitleForLevel(t *testing.T) {
	cases := []struct {
		level int
		want  string
	}{
		{1, "Beginner"},
		{5, "Beginner"},
		{6, "Apprentice"},
		{10, "Apprentice"},
		{11, "Dedicated"},
		{46, "Transcendent"},
		{999, "Transcendent"},
	}
	for _, tc := range cases {
		if got := TitleForLevel(tc.level); got != tc.want {
			t.Errorf("TitleForLevel(%d) = %q, want %q", tc.level, got, tc.want)
		}
	}
}
