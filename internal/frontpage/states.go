package frontpage

import (
	"context"
	"sort"

	"github.com/GoFrontPage/GoFrontPage/internal/db/models"
)

const (
	// StateKey identifies the front page entry in a States set.
	StateKey = "extended_front_page"
	// StateLabel is shown next to the front page item in content lists.
	StateLabel = "Front Page"
)

// States maps a state key to its display label, e.g. "draft" => "Draft".
type States map[string]string

// StatusStates returns the states an item shows for its status. Published and
// trashed items carry none.
func StatusStates(status string) States {
	switch status {
	case models.StatusDraft:
		return States{"draft": "Draft"}
	case models.StatusPrivate:
		return States{"private": "Private"}
	default:
		return States{}
	}
}

// Labels returns the labels sorted by key.
func (s States) Labels() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	out := make([]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, s[k])
	}

	return out
}

// DecorateStates returns a copy of states with the front page label added when itemID
// is the enabled target item.
func (r *Rule) DecorateStates(ctx context.Context, states States, itemID uint64) States {
	out := make(States, len(states)+1)
	for k, v := range states {
		out[k] = v
	}

	if r.IsFrontPage(ctx, itemID) {
		out[StateKey] = StateLabel
	}

	return out
}
