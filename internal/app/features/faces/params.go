// internal/app/features/faces/params.go
package faces

import (
	"net/http"
	"strconv"

	"github.com/dalemusser/coursefaces/internal/app/system/roster"
	"github.com/dalemusser/waffle/pantry/query"
)

// pageParams carries the decoded query parameters shared by the interactive
// and printable pages.
type pageParams struct {
	CourseID int64
	GroupID  int64 // legacy single-group filter, unvalidated
	GroupIDs []int64
	OrderBy  string
}

// parseParams decodes the faces query string. Everything except cid is
// optional and degrades instead of failing: a bad groupid becomes 0, a bad
// orderby becomes firstname, and malformed groupids values are dropped
// without disturbing their valid siblings.
func parseParams(r *http.Request) (pageParams, bool) {
	p := pageParams{}

	cid, err := strconv.ParseInt(query.Get(r, "cid"), 10, 64)
	if err != nil || cid <= 0 {
		return pageParams{}, false
	}
	p.CourseID = cid

	if gid, err := strconv.ParseInt(query.Get(r, "groupid"), 10, 64); err == nil && gid > 0 {
		p.GroupID = gid
	}

	p.GroupIDs = parseGroupIDs(r.URL.Query()["groupids"])
	p.OrderBy = roster.NormalizeOrder(query.Get(r, "orderby"))

	return p, true
}

// parseGroupIDs decodes the repeated groupids parameter. Each value is
// cleaned on its own: malformed values are skipped, valid ids stay, and
// downstream validation handles unknown ids.
func parseGroupIDs(values []string) []int64 {
	var out []int64
	for _, v := range values {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			continue
		}
		out = append(out, id)
	}
	return out
}
