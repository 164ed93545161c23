package shorthand

// Category groups shorthands in help output.
type Category int

const (
	Setup Category = iota
	Basic
	Staging
	Branching
	Remote
	History
	Stashing
	Rewriting
	Files
	Tagging
	Aliases
)

var categoryTitles = [...]string{
	Setup:     "SETUP & CONFIG",
	Basic:     "BASIC OPERATIONS",
	Staging:   "STAGE & SNAPSHOT",
	Branching: "BRANCHING",
	Remote:    "REMOTE OPERATIONS",
	History:   "HISTORY & INSPECTION",
	Stashing:  "STASHING",
	Rewriting: "REWRITING HISTORY",
	Files:     "FILE OPERATIONS",
	Tagging:   "TAGGING",
	Aliases:   "ALIASES",
}

// Title returns the heading used in help output.
func (c Category) Title() string {
	if c < 0 || int(c) >= len(categoryTitles) {
		return "OTHER"
	}
	return categoryTitles[c]
}

// Categories returns all categories in help order.
func Categories() []Category {
	cats := make([]Category, len(categoryTitles))
	for i := range cats {
		cats[i] = Category(i)
	}
	return cats
}
