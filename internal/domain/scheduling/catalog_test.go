package scheduling

import (
	"testing"

	"github.com/Raybod-Code/ayneh-beauty-sub002/internal/models"
)

func TestDurationForKeywordRules(t *testing.T) {
	catalog := NewServiceCatalog(nil)

	tests := []struct {
		name string
		want int
	}{
		{"هیرکات", 30},
		{"Haircut", 30},
		{"مدل کات مردانه", 30},
		{"رنگ مو", 120},
		{"Full Color", 120},
		{"پدیکور", 60},
		{"pedicure deluxe", 60},
		{"پکیج عروس", 120},
		{"VIP Package", 120},
		{"bridal styling", 120},
		{"ماساژ", 60},
		{"", 60},
		{"something unknown", 60},
	}

	for _, tt := range tests {
		if got := catalog.DurationFor(tt.name); got != tt.want {
			t.Errorf("DurationFor(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestDurationForRuleOrder(t *testing.T) {
	catalog := NewServiceCatalog(nil)

	// A name matching both the cut rule and the color rule resolves by
	// declaration order, not by which keyword appears first in the name.
	if got := catalog.DurationFor("رنگ و هیرکات"); got != 30 {
		t.Errorf("DurationFor(mixed name) = %v, want 30 (first rule wins)", got)
	}
}

func TestDurationForConfiguredServiceTakesPrecedence(t *testing.T) {
	catalog := NewServiceCatalog([]models.Service{
		{ID: 7, Name: "هیرکات", DurationMin: 45},
		{ID: 8, Name: "Keratin", DurationMin: 180},
		{ID: 9, Name: "broken", DurationMin: 0}, // ignored
	})

	if got := catalog.DurationFor("هیرکات"); got != 45 {
		t.Errorf("DurationFor(configured name) = %v, want 45", got)
	}
	if got := catalog.DurationFor("keratin"); got != 180 {
		t.Errorf("DurationFor is case-sensitive: got %v, want 180", got)
	}

	if got, ok := catalog.DurationForID(8); !ok || got != 180 {
		t.Errorf("DurationForID(8) = %v, %v; want 180, true", got, ok)
	}
	if _, ok := catalog.DurationForID(9); ok {
		t.Error("DurationForID(9) should not resolve a zero-duration service")
	}
	if _, ok := catalog.DurationForID(99); ok {
		t.Error("DurationForID(99) should not resolve an unknown id")
	}
}

func TestDurationForDeterminism(t *testing.T) {
	catalog := NewServiceCatalog(nil)

	first := catalog.DurationFor("رنگ ریشه")
	for i := 0; i < 10; i++ {
		if got := catalog.DurationFor("رنگ ریشه"); got != first {
			t.Fatalf("DurationFor not deterministic: got %v then %v", first, got)
		}
	}
}
