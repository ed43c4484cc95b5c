// internal/domain/models/site.go
package models

// DefaultSiteName is shown in page titles and the navbar.
const DefaultSiteName = "CourseFaces"
