package components

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestTabBarWidthMatchesTabWidths(t *testing.T) {
	for active := range Tabs {
		want := 0
		for i, tab := range Tabs {
			want += TabVisualWidth(tab, i == active)
		}
		want += len(Tabs) - 1 // separators

		bar := RenderTabBar(active, want)
		if got := lipgloss.Width(bar); got != want {
			t.Errorf("active=%d: bar width %d, want %d", active, got, want)
		}
	}
}

func TestTabIdxByKey(t *testing.T) {
	cases := map[rune]int{'d': 0, 't': 1, 'h': 2, 'x': 3, 'z': -1}
	for key, want := range cases {
		if got := TabIdxByKey(key); got != want {
			t.Errorf("TabIdxByKey(%q) = %d, want %d", key, got, want)
		}
	}
}
