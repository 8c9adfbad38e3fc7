package types

import "testing"

// TestParseSeason 测试季节标识符解析
func TestParseSeason(t *testing.T) {
	tests := []struct {
		id      string
		want    Season
		wantErr bool
	}{
		{"winter", SeasonWinter, false},
		{"rainy", SeasonRainy, false},
		{"fall", SeasonFall, false},
		{"blizzard", SeasonWinter, true}, // 未知季节：返回错误，值回退冬季
		{"", SeasonWinter, true},
		{"WINTER", SeasonWinter, true}, // 标识符大小写敏感
	}

	for _, tt := range tests {
		got, err := ParseSeason(tt.id)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseSeason(%q) error = %v, wantErr %v", tt.id, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseSeason(%q) = %v, want %v", tt.id, got, tt.want)
		}
	}
}

// TestSeasonString 测试 String 与 ParseSeason 互为往返
func TestSeasonString(t *testing.T) {
	for _, season := range []Season{SeasonWinter, SeasonRainy, SeasonFall} {
		parsed, err := ParseSeason(season.String())
		if err != nil {
			t.Errorf("ParseSeason(%v.String()) error: %v", season, err)
		}
		if parsed != season {
			t.Errorf("round trip %v → %q → %v", season, season.String(), parsed)
		}
	}
}

// TestShapeKindString 测试形状类别的字符串表示
func TestShapeKindString(t *testing.T) {
	tests := []struct {
		kind ShapeKind
		want string
	}{
		{ShapeDisc, "Disc"},
		{ShapeStreak, "Streak"},
		{ShapeFoliage, "Foliage"},
		{ShapeKind(99), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ShapeKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}
