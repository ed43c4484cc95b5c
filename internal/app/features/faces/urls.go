// internal/app/features/faces/urls.go
package faces

import (
	"net/url"
	"strconv"
)

const (
	showPath  = "/faces/show"
	printPath = "/faces/print"
)

// buildURL assembles a faces page URL. A multi-group selection supersedes
// the legacy single-group filter, so groupid is emitted only when no
// selection exists; zero and nil are simply omitted.
func buildURL(path string, courseID int64, orderBy string, groupID int64, groupIDs []int64) string {
	q := url.Values{}
	q.Set("cid", strconv.FormatInt(courseID, 10))
	if orderBy != "" {
		q.Set("orderby", orderBy)
	}
	if len(groupIDs) > 0 {
		for _, id := range groupIDs {
			q.Add("groupids", strconv.FormatInt(id, 10))
		}
	} else if groupID > 0 {
		q.Set("groupid", strconv.FormatInt(groupID, 10))
	}
	return path + "?" + q.Encode()
}

func showURL(courseID int64, orderBy string, groupID int64, groupIDs []int64) string {
	return buildURL(showPath, courseID, orderBy, groupID, groupIDs)
}

func printURL(courseID int64, orderBy string, groupID int64, groupIDs []int64) string {
	return buildURL(printPath, courseID, orderBy, groupID, groupIDs)
}

// resetURL drops the group selection but keeps the order and the legacy
// filter.
func resetURL(courseID int64, orderBy string, groupID int64) string {
	return buildURL(showPath, courseID, orderBy, groupID, nil)
}
