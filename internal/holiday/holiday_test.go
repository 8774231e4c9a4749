package holiday

import (
	"encoding/json"
	"testing"
	"time"
)

func TestHoliday_JSON(t *testing.T) {
	h := New("23 de julio", "Día de la Independencia", time.Date(2024, time.July, 23, 0, 0, 0, 0, time.UTC))

	data, err := json.Marshal(h)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if len(decoded) != 3 {
		t.Errorf("JSON has %d keys, want 3: %s", len(decoded), data)
	}
	if decoded["dateString"] != "23 de julio" {
		t.Errorf("dateString = %v", decoded["dateString"])
	}
	if decoded["name"] != "Día de la Independencia" {
		t.Errorf("name = %v", decoded["name"])
	}
	if decoded["date"] != "2024-07-23T00:00:00Z" {
		t.Errorf("date = %v", decoded["date"])
	}
}

func TestHoliday_Key(t *testing.T) {
	a := New("23 de julio", "Día de la Independencia", time.Now())
	b := New("23 de julio", "Día de la Independencia", time.Now().Add(time.Hour))
	c := New("29 de junio", "San Pedro y San Pablo", time.Now())

	if a.Key() == "" {
		t.Fatal("Key() is empty")
	}
	if a.Key() != b.Key() {
		t.Error("Key() should not depend on the resolved date")
	}
	if a.Key() == c.Key() {
		t.Error("different holidays share a key")
	}
}

func TestHoliday_IsPublicSector(t *testing.T) {
	tests := []struct {
		name       string
		dateString string
		holiday    string
		want       bool
	}{
		{"regular holiday", "28 de julio", "Fiestas Patrias", false},
		{"marker in name", "2 de enero", "Día no laborable para el sector público", true},
		{"marker in date text", "8 de diciembre sector público", "Inmaculada Concepción", true},
		{"marker uppercase", "2 de enero", "Día no laborable - SECTOR PÚBLICO", true},
		{"unaccented is not the marker", "2 de enero", "sector publico", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := New(tt.dateString, tt.holiday, time.Now())
			if got := h.IsPublicSector(); got != tt.want {
				t.Errorf("IsPublicSector() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFormatDate(t *testing.T) {
	tests := []struct {
		in   time.Time
		want string
	}{
		{time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC), "2024-01-05"},
		{time.Date(2024, time.December, 25, 23, 59, 0, 0, time.UTC), "2024-12-25"},
		{time.Date(999, time.March, 9, 0, 0, 0, 0, time.UTC), "0999-03-09"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := FormatDate(tt.in); got != tt.want {
				t.Errorf("FormatDate(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestHoliday_IsOn(t *testing.T) {
	h := New("28 de julio", "Fiestas Patrias", time.Date(2024, time.July, 28, 0, 0, 0, 0, lima))

	tests := []struct {
		name string
		at   time.Time
		want bool
	}{
		{"same day morning", time.Date(2024, time.July, 28, 8, 0, 0, 0, lima), true},
		{"same day late night", time.Date(2024, time.July, 28, 23, 59, 0, 0, lima), true},
		{"next day", time.Date(2024, time.July, 29, 0, 0, 0, 0, lima), false},
		{"same day different year", time.Date(2025, time.July, 28, 12, 0, 0, 0, lima), false},
		{"utc instant still on the day in Lima", time.Date(2024, time.July, 29, 3, 0, 0, 0, time.UTC), true},
		{"utc instant already next day in Lima", time.Date(2024, time.July, 29, 6, 0, 0, 0, time.UTC), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := h.IsOn(tt.at); got != tt.want {
				t.Errorf("IsOn(%v) = %v, want %v", tt.at, got, tt.want)
			}
		})
	}
}

func TestSelect(t *testing.T) {
	holidays := []Holiday{
		New("15 de agosto", "Día de Santa Rosa", time.Now()),
		New("3 de octubre", "Combate de Angamos", time.Now()),
		New("8 de diciembre sector público", "Inmaculada Concepción", time.Now()),
	}

	if got := Select(holidays, true); len(got) != 3 {
		t.Errorf("Select(include) returned %d, want 3", len(got))
	}

	got := Select(holidays, false)
	if len(got) != 2 {
		t.Fatalf("Select(exclude) returned %d, want 2", len(got))
	}
	for _, h := range got {
		if h.IsPublicSector() {
			t.Errorf("Select(exclude) kept %q", h.Name)
		}
	}

	if empty := Select(nil, false); empty == nil || len(empty) != 0 {
		t.Errorf("Select(nil) = %#v, want empty non-nil slice", empty)
	}
}

func TestAnyOn(t *testing.T) {
	today := time.Date(2024, time.October, 8, 10, 0, 0, 0, lima)
	holidays := []Holiday{
		New("15 de agosto", "Día de Santa Rosa", time.Date(2024, time.August, 15, 0, 0, 0, 0, lima)),
		New("8 de octubre", "Combate de Angamos", time.Date(2024, time.October, 8, 0, 0, 0, 0, lima)),
	}

	if !AnyOn(holidays, today) {
		t.Error("AnyOn() = false, want true")
	}
	if AnyOn(holidays, today.AddDate(0, 0, 1)) {
		t.Error("AnyOn(tomorrow) = true, want false")
	}
	if AnyOn(nil, today) {
		t.Error("AnyOn(nil) = true, want false")
	}
}
