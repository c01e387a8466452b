package entity

import "testing"

func TestParseCategory(t *testing.T) {
	tests := []struct {
		in      string
		want    Category
		wantErr bool
	}{
		{"Birthday", CategoryBirthday, false},
		{"birthday", CategoryBirthday, false},
		{" PRE-SHOOT ", CategoryPreShoot, false},
		{"traditional", CategoryTraditional, false},
		{"Event", CategoryEvent, false},
		{"web", CategoryWeb, false},
		{"Design", CategoryDesign, false},
		{"Web Development", "", true},
		{"Birth", "", true},
		{"Weddings", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseCategory(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseCategory(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseCategory(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCategoryLabelAndGroup(t *testing.T) {
	tests := []struct {
		c     Category
		label string
		group CategoryGroup
	}{
		{CategoryBirthday, "Birthday", GroupVideo},
		{CategoryPreShoot, "Pre-shoot", GroupVideo},
		{CategoryTraditional, "Traditional", GroupVideo},
		{CategoryEvent, "Event", GroupVideo},
		{CategoryWeb, "Web Development", GroupWeb},
		{CategoryDesign, "Graphic Design", GroupDesign},
	}
	for _, tt := range tests {
		if got := tt.c.Label(); got != tt.label {
			t.Errorf("%s.Label() = %q, want %q", tt.c, got, tt.label)
		}
		if got := tt.c.Group(); got != tt.group {
			t.Errorf("%s.Group() = %q, want %q", tt.c, got, tt.group)
		}
		if !tt.c.Valid() {
			t.Errorf("%s.Valid() = false", tt.c)
		}
	}

	if Category("Sports").Valid() {
		t.Error("unknown category reported valid")
	}
	if got := Category("Sports").Label(); got != "Sports" {
		t.Errorf("unknown label = %q", got)
	}
}

func TestCategoriesInGroup(t *testing.T) {
	video := CategoriesInGroup(GroupVideo)
	if len(video) != 4 {
		t.Fatalf("video group = %v, want 4 categories", video)
	}
	if got := CategoriesInGroup(GroupWeb); len(got) != 1 || got[0] != CategoryWeb {
		t.Errorf("web group = %v", got)
	}
	if _, err := ParseCategoryGroup("VIDEO"); err != nil {
		t.Errorf("ParseCategoryGroup(VIDEO) err = %v", err)
	}
	if _, err := ParseCategoryGroup("photo"); err == nil {
		t.Error("ParseCategoryGroup(photo) expected error")
	}
}

func TestBookingStatusValid(t *testing.T) {
	for _, s := range BookingStatuses {
		if !s.Valid() {
			t.Errorf("%s should be valid", s)
		}
	}
	if BookingStatus("new").Valid() {
		t.Error("status match must be exact")
	}
	if BookingStatus("Cancelled").Valid() {
		t.Error("Cancelled is not a status")
	}
}
