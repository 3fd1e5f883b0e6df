package browse

import "testing"

func TestPaneWidths(t *testing.T) {
	tests := []struct {
		total     int
		wantLeft  int
		wantRight int
	}{
		{total: 0, wantLeft: 0, wantRight: 0},
		{total: -5, wantLeft: 0, wantRight: 0},
		{total: 60, wantLeft: MinLeftWidth, wantRight: 60 - MinLeftWidth},
		{total: 120, wantLeft: 40, wantRight: 80},
		{total: 20, wantLeft: MinLeftWidth, wantRight: 0},
	}
	for _, tt := range tests {
		left, right := PaneWidths(tt.total)
		if left != tt.wantLeft || right != tt.wantRight {
			t.Errorf("PaneWidths(%d) = (%d, %d), want (%d, %d)", tt.total, left, right, tt.wantLeft, tt.wantRight)
		}
	}
}
