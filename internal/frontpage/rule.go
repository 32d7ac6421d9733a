package frontpage

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"
)

// PageType is the native page content type. Every other type is shown as a single entry.
const PageType = "page"

// StatusPublish is the only status an item may have to become the front page.
const StatusPublish = "publish"

// ErrItemNotFound is returned by an ItemResolver when the id does not exist.
var ErrItemNotFound = errors.New("front page item not found")

// Item is the state of a content item the rule needs.
type Item struct {
	ID         uint64
	Type       string
	Status     string
	TypePublic bool
}

// ItemResolver looks up a content item by id.
type ItemResolver interface {
	ResolveItem(ctx context.Context, id uint64) (Item, error)
}

// Request describes the query being evaluated.
type Request struct {
	FrontPage bool // the request targets the site root
	MainQuery bool // the query decides what the request renders
	Admin     bool // the request belongs to the administration area
}

// Reason explains a Decision.
type Reason string

// Decision reasons.
const (
	ReasonApplied       Reason = "applied"
	ReasonNotFrontPage  Reason = "not-front-page"
	ReasonNotMainQuery  Reason = "not-main-query"
	ReasonAdmin         Reason = "admin"
	ReasonDisabled      Reason = "disabled"
	ReasonUnset         Reason = "unset"
	ReasonMissing       Reason = "missing"
	ReasonUnpublished   Reason = "unpublished"
	ReasonNonPublicType Reason = "non-public-type"
	ReasonLookupFailed  Reason = "lookup-failed"
)

// Decision is the patch the caller applies to the main query.
// When Override is false the query must be left untouched.
type Decision struct {
	Override    bool
	Reason      Reason
	ItemID      uint64
	ContentType string
	IsPage      bool
	IsSingle    bool
}

func inactive(reason Reason) Decision {
	return Decision{Reason: reason}
}

// Rule evaluates the front page override.
type Rule struct {
	options OptionsReader
	items   ItemResolver
}

// NewRule creates a Rule reading options and items through the given capabilities.
func NewRule(options OptionsReader, items ItemResolver) *Rule {
	return &Rule{options: options, items: items}
}

// Evaluate decides whether req serves the configured item.
func (r *Rule) Evaluate(ctx context.Context, req Request) Decision {
	switch {
	case req.Admin:
		return inactive(ReasonAdmin)
	case !req.MainQuery:
		return inactive(ReasonNotMainQuery)
	case !req.FrontPage:
		return inactive(ReasonNotFrontPage)
	}

	opts, err := r.options.Options(ctx)
	if err != nil {
		log.Debug().Err(err).Msg("front page options unavailable, using default front page")
		return inactive(ReasonLookupFailed)
	}

	if !opts.Enabled {
		return inactive(ReasonDisabled)
	}

	if opts.TargetID == 0 {
		return inactive(ReasonUnset)
	}

	item, err := r.items.ResolveItem(ctx, opts.TargetID)
	if err != nil {
		if errors.Is(err, ErrItemNotFound) {
			return inactive(ReasonMissing)
		}

		log.Debug().Err(err).Uint64("item_id", opts.TargetID).Msg("front page item lookup failed")

		return inactive(ReasonLookupFailed)
	}

	if item.Status != StatusPublish {
		return inactive(ReasonUnpublished)
	}

	if !item.TypePublic {
		return inactive(ReasonNonPublicType)
	}

	isPage := item.Type == PageType

	return Decision{
		Override:    true,
		Reason:      ReasonApplied,
		ItemID:      opts.TargetID,
		ContentType: item.Type,
		IsPage:      isPage,
		IsSingle:    !isPage,
	}
}

// FrontPageID returns the target item id while the override is enabled, else 0.
// The target item itself is not checked.
func (r *Rule) FrontPageID(ctx context.Context) uint64 {
	opts, err := r.options.Options(ctx)
	if err != nil || !opts.Enabled {
		return 0
	}

	return opts.TargetID
}

// IsFrontPage reports whether id is the enabled target item.
func (r *Rule) IsFrontPage(ctx context.Context, id uint64) bool {
	if id == 0 {
		return false
	}

	return r.FrontPageID(ctx) == id
}
