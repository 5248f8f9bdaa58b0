package capability

import "testing"

func TestLunarSupported(t *testing.T) {
	tests := []struct {
		locale string
		want   bool
	}{
		{"zh", true},
		{"zh-CN", true},
		{"zh_TW.UTF-8", true},
		{"zh-Hant-HK", true},
		{"en_US.UTF-8", false},
		{"ja-JP", false},
		{"C", false},
		{"POSIX", false},
		{"", false},
		{"not a locale!", false},
	}
	for _, tt := range tests {
		if got := LunarSupported(tt.locale); got != tt.want {
			t.Errorf("LunarSupported(%q) = %v, want %v", tt.locale, got, tt.want)
		}
	}
}

func TestLunarCheckIsStable(t *testing.T) {
	check := LunarCheck("zh_CN")
	for i := 0; i < 3; i++ {
		if !check() {
			t.Fatal("check flipped between calls")
		}
	}
	if LunarCheck("de_DE")() {
		t.Fatal("german locale reported lunar support")
	}
}
