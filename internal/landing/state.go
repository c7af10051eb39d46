// Package landing holds the per-page-load state of the landing page.
//
// Each concern lives in its own cell with a single writer: the session is
// written by login/logout, the catalog only by its loader, the selection only
// by plan card clicks.
package landing

import (
	"github.com/cargohost/backend/internal/catalog"
	"github.com/cargohost/backend/internal/session"
)

// Selection records the plan card the visitor clicked last. It only drives
// highlighting.
type Selection struct {
	slug string
	set  bool
}

// Select makes slug the selected plan. An empty slug clears the selection.
func (s *Selection) Select(slug string) {
	s.slug = slug
	s.set = slug != ""
}

// Selected returns the selected slug, if any.
func (s Selection) Selected() (string, bool) {
	return s.slug, s.set
}

// IsSelected reports whether slug is the selected plan.
func (s Selection) IsSelected(slug string) bool {
	return s.set && s.slug == slug
}

// Dialog is the state of the login dialog.
type Dialog struct {
	Open     bool
	Register bool
	Error    string
}

// State is everything the renderer reads for one page.
type State struct {
	Session   *session.Session
	Catalog   catalog.Snapshot
	Selection Selection
	Dialog    Dialog
}
