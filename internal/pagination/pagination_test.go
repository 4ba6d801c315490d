package pagination

import "testing"

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		page       string
		limit      string
		wantPage   int
		wantLimit  int
		wantOffset int
	}{
		{"defaults when absent", "", "", 1, 5, 0},
		{"explicit values", "2", "5", 2, 5, 5},
		{"third page bigger limit", "3", "10", 3, 10, 20},
		{"zero page falls back", "0", "5", 1, 5, 0},
		{"negative limit falls back", "2", "-3", 2, 5, 5},
		{"non-numeric falls back", "abc", "xyz", 1, 5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.page, tt.limit)
			if got.Page != tt.wantPage || got.Limit != tt.wantLimit || got.Offset != tt.wantOffset {
				t.Fatalf("Parse(%q, %q) = %+v, want page=%d limit=%d offset=%d",
					tt.page, tt.limit, got, tt.wantPage, tt.wantLimit, tt.wantOffset)
			}
		})
	}
}
