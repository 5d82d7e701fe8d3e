package gdscript

import (
	"sort"
)

// Classes is an ordered collection of Class models. It wraps the underlying
// slice rather than aliasing it so grouping stays a derived view instead of
// container behavior.
type Classes struct {
	classes []Class
}

// NewClasses wraps an ordered slice of classes.
func NewClasses(classes []Class) Classes {
	return Classes{classes: classes}
}

// All returns the classes in input order.
func (c Classes) All() []Class {
	return c.classes
}

// Len returns the number of classes.
func (c Classes) Len() int {
	return len(c.classes)
}

// GroupedByCategory returns the classes grouped by their category attribute,
// sorted by category. Order within a category follows input order.
func (c Classes) GroupedByCategory() [][]Class {
	if len(c.classes) == 0 {
		return nil
	}
	sorted := make([]Class, len(c.classes))
	copy(sorted, c.classes)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Category < sorted[j].Category
	})

	var groups [][]Class
	start := 0
	for i := 1; i <= len(sorted); i++ {
		if i == len(sorted) || sorted[i].Category != sorted[start].Category {
			groups = append(groups, sorted[start:i])
			start = i
		}
	}
	return groups
}

// ClassesFromRawList builds the collection from a raw record list. Records
// without a "name" key are skipped silently; any other malformed record
// aborts the whole batch.
func ClassesFromRawList(data []Raw) (Classes, error) {
	classes := make([]Class, 0, len(data))
	for _, entry := range data {
		if _, ok := entry["name"]; !ok {
			continue
		}
		class, err := ClassFromRaw(entry)
		if err != nil {
			return Classes{}, err
		}
		classes = append(classes, class)
	}
	return NewClasses(classes), nil
}
