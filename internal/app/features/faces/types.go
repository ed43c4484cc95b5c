// internal/app/features/faces/types.go
package faces

import (
	"github.com/dalemusser/coursefaces/internal/app/system/groupselect"
	"github.com/dalemusser/coursefaces/internal/app/system/roster"
	"github.com/dalemusser/coursefaces/internal/app/system/viewdata"
)

// sectionVM is one roster section: either one selected group or, on the
// printable page with nothing selected, the whole course (IsAll).
type sectionVM struct {
	DomID     string
	GroupID   int64
	GroupName string
	Users     []roster.Card
	HasUsers  bool
	IsAll     bool
}

// orderOption is one entry in the order-by select.
type orderOption struct {
	Value    string
	Label    string
	Selected bool
}

// showPageData is the view model for the interactive faces page.
type showPageData struct {
	viewdata.BaseVM

	CourseID    int64
	CourseName  string
	CurrentDate string

	OrderBy      string
	OrderOptions []orderOption

	// Legacy single-group filter; 0 means no filter.
	GroupID int64

	// Group-selection catalog.
	Groupings    []groupselect.GroupingView
	HasGroupings bool
	// The panel starts expanded only when nothing is selected yet.
	PanelOpen bool

	// Multi-section mode: one section per selected group.
	MultiSection bool
	Sections     []sectionVM

	// Single-list mode.
	Users    []roster.Card
	HasUsers bool

	ShowURL  string
	PrintURL string
	ResetURL string
}

// printPageData is the view model for the printable faces page.
type printPageData struct {
	viewdata.BaseVM

	CourseName  string
	CurrentDate string
	Sections    []sectionVM
}
