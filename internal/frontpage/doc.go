// Package frontpage decides whether the front page request serves a chosen content item
// instead of the default home listing.
//
// The decision is a pure function of two stored options (enable flag and target item id)
// and the state of the target item. Every invalid combination falls back to the default
// front page: the override is simply inactive, nothing is reported to the visitor.
package frontpage
