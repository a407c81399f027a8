package knowledge

import "testing"

func TestBaseFormat(t *testing.T) {
	b := NewBase([]Entry{
		{Category: "profile", Key: "Full Name", Value: "Jordan Doe"},
		{Category: "skill", Key: "Go", Value: "Primary language, 6 years"},
	})

	want := "**profile/Full Name:** Jordan Doe\n**skill/Go:** Primary language, 6 years"
	if got := b.Format(); got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
}

func TestBaseFormat_Empty(t *testing.T) {
	if got := NewBase(nil).Format(); got != "" {
		t.Errorf("Format() = %q, want empty", got)
	}
}

func TestBaseGet(t *testing.T) {
	b := NewBase([]Entry{
		{Category: "profile", Key: "Email", Value: "jordan@example.com"},
	})

	if got := b.Get("profile", "Email"); got != "jordan@example.com" {
		t.Errorf("Get = %q", got)
	}
	if got := b.Get("profile", "Phone"); got != "" {
		t.Errorf("Get for absent key = %q, want empty", got)
	}
}
