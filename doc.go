// Package main provides the entry point of GoFrontPage, a small content site built
// on fiber and gorm. Any published item of any public content type can be chosen as
// the site's front page on the Reading Settings screen or with the front-page
// command; the front page request then shows that item instead of the latest posts.
package main
