package entity

import (
	"fmt"
	"strings"
)

// Category is the closed set of portfolio categories.
type Category string

const (
	CategoryBirthday    Category = "Birthday"
	CategoryPreShoot    Category = "Pre-shoot"
	CategoryTraditional Category = "Traditional"
	CategoryEvent       Category = "Event"
	CategoryWeb         Category = "Web"
	CategoryDesign      Category = "Design"
)

// CategoryGroup buckets categories for the public portfolio filters.
type CategoryGroup string

const (
	GroupVideo  CategoryGroup = "video"
	GroupWeb    CategoryGroup = "web"
	GroupDesign CategoryGroup = "design"
)

type CategoryInfo struct {
	Value Category
	Label string
	Group CategoryGroup
}

// Categories in display order.
var Categories = []CategoryInfo{
	{CategoryBirthday, "Birthday", GroupVideo},
	{CategoryPreShoot, "Pre-shoot", GroupVideo},
	{CategoryTraditional, "Traditional", GroupVideo},
	{CategoryEvent, "Event", GroupVideo},
	{CategoryWeb, "Web Development", GroupWeb},
	{CategoryDesign, "Graphic Design", GroupDesign},
}

// ParseCategory matches a category value case-insensitively. No substring matching.
func ParseCategory(raw string) (Category, error) {
	raw = strings.TrimSpace(raw)
	for _, c := range Categories {
		if strings.EqualFold(raw, string(c.Value)) {
			return c.Value, nil
		}
	}
	return "", fmt.Errorf("unknown category %q", raw)
}

// ParseCategoryGroup matches a group name case-insensitively.
func ParseCategoryGroup(raw string) (CategoryGroup, error) {
	raw = strings.TrimSpace(raw)
	for _, g := range []CategoryGroup{GroupVideo, GroupWeb, GroupDesign} {
		if strings.EqualFold(raw, string(g)) {
			return g, nil
		}
	}
	return "", fmt.Errorf("unknown category group %q", raw)
}

func (c Category) info() (CategoryInfo, bool) {
	for _, ci := range Categories {
		if ci.Value == c {
			return ci, true
		}
	}
	return CategoryInfo{}, false
}

func (c Category) Valid() bool {
	_, ok := c.info()
	return ok
}

// Label returns the display label, or the raw value for unknown categories.
func (c Category) Label() string {
	if ci, ok := c.info(); ok {
		return ci.Label
	}
	return string(c)
}

func (c Category) Group() CategoryGroup {
	ci, _ := c.info()
	return ci.Group
}

// CategoriesInGroup lists the category values belonging to g.
func CategoriesInGroup(g CategoryGroup) []Category {
	var out []Category
	for _, ci := range Categories {
		if ci.Group == g {
			out = append(out, ci.Value)
		}
	}
	return out
}
