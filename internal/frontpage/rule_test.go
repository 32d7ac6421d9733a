package frontpage

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeItems map[uint64]Item

func (f fakeItems) ResolveItem(_ context.Context, id uint64) (Item, error) {
	item, ok := f[id]
	if !ok {
		return Item{}, ErrItemNotFound
	}

	return item, nil
}

type failingItems struct{}

func (failingItems) ResolveItem(context.Context, uint64) (Item, error) {
	return Item{}, errors.New("connection refused") //nolint:goerr113
}

func staticOptions(opts Options) OptionsReader {
	return OptionsReaderFunc(func(context.Context) (Options, error) { return opts, nil })
}

var (
	frontPageMain = Request{FrontPage: true, MainQuery: true}

	testItems = fakeItems{
		1: {ID: 1, Type: "page", Status: StatusPublish, TypePublic: true},
		2: {ID: 2, Type: "post", Status: StatusPublish, TypePublic: true},
		3: {ID: 3, Type: "product", Status: StatusPublish, TypePublic: true},
		4: {ID: 4, Type: "page", Status: "draft", TypePublic: true},
		5: {ID: 5, Type: "post", Status: "private", TypePublic: true},
		6: {ID: 6, Type: "snippet", Status: StatusPublish, TypePublic: false},
	}
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		req  Request
		want Decision
	}{
		{
			name: "disabled never overrides",
			opts: Options{Enabled: false, TargetID: 1},
			req:  frontPageMain,
			want: Decision{Reason: ReasonDisabled},
		},
		{
			name: "enabled without target",
			opts: Options{Enabled: true},
			req:  frontPageMain,
			want: Decision{Reason: ReasonUnset},
		},
		{
			name: "published page",
			opts: Options{Enabled: true, TargetID: 1},
			req:  frontPageMain,
			want: Decision{
				Override: true, Reason: ReasonApplied, ItemID: 1, ContentType: "page", IsPage: true,
			},
		},
		{
			name: "published post",
			opts: Options{Enabled: true, TargetID: 2},
			req:  frontPageMain,
			want: Decision{
				Override: true, Reason: ReasonApplied, ItemID: 2, ContentType: "post", IsSingle: true,
			},
		},
		{
			name: "published custom type",
			opts: Options{Enabled: true, TargetID: 3},
			req:  frontPageMain,
			want: Decision{
				Override: true, Reason: ReasonApplied, ItemID: 3, ContentType: "product", IsSingle: true,
			},
		},
		{
			name: "draft target",
			opts: Options{Enabled: true, TargetID: 4},
			req:  frontPageMain,
			want: Decision{Reason: ReasonUnpublished},
		},
		{
			name: "private target",
			opts: Options{Enabled: true, TargetID: 5},
			req:  frontPageMain,
			want: Decision{Reason: ReasonUnpublished},
		},
		{
			name: "missing target",
			opts: Options{Enabled: true, TargetID: 99},
			req:  frontPageMain,
			want: Decision{Reason: ReasonMissing},
		},
		{
			name: "target of a non public type",
			opts: Options{Enabled: true, TargetID: 6},
			req:  frontPageMain,
			want: Decision{Reason: ReasonNonPublicType},
		},
		{
			name: "admin request",
			opts: Options{Enabled: true, TargetID: 1},
			req:  Request{FrontPage: true, MainQuery: true, Admin: true},
			want: Decision{Reason: ReasonAdmin},
		},
		{
			name: "secondary query",
			opts: Options{Enabled: true, TargetID: 1},
			req:  Request{FrontPage: true},
			want: Decision{Reason: ReasonNotMainQuery},
		},
		{
			name: "not the front page",
			opts: Options{Enabled: true, TargetID: 1},
			req:  Request{MainQuery: true},
			want: Decision{Reason: ReasonNotFrontPage},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule := NewRule(staticOptions(tt.opts), testItems)

			assert.Equal(t, tt.want, rule.Evaluate(context.Background(), tt.req))
		})
	}
}

func TestEvaluateFailsOpen(t *testing.T) {
	ctx := context.Background()

	brokenOptions := OptionsReaderFunc(func(context.Context) (Options, error) {
		return Options{}, errors.New("settings table missing") //nolint:goerr113
	})

	d := NewRule(brokenOptions, testItems).Evaluate(ctx, frontPageMain)
	assert.False(t, d.Override)
	assert.Equal(t, ReasonLookupFailed, d.Reason)

	d = NewRule(staticOptions(Options{Enabled: true, TargetID: 1}), failingItems{}).Evaluate(ctx, frontPageMain)
	assert.False(t, d.Override)
	assert.Equal(t, ReasonLookupFailed, d.Reason)
}

func TestEvaluatePageAndSingleAreExclusive(t *testing.T) {
	ctx := context.Background()

	for id := range testItems {
		d := NewRule(staticOptions(Options{Enabled: true, TargetID: id}), testItems).Evaluate(ctx, frontPageMain)
		if !d.Override {
			continue
		}

		assert.NotEqual(t, d.IsPage, d.IsSingle, "item %d", id)
		assert.Equal(t, d.ContentType == PageType, d.IsPage, "item %d", id)
	}
}

func TestHelpers(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		opts       Options
		wantID     uint64
		frontPages map[uint64]bool
	}{
		{
			name:       "enabled",
			opts:       Options{Enabled: true, TargetID: 2},
			wantID:     2,
			frontPages: map[uint64]bool{0: false, 1: false, 2: true},
		},
		{
			name:       "disabled",
			opts:       Options{Enabled: false, TargetID: 2},
			wantID:     0,
			frontPages: map[uint64]bool{0: false, 2: false},
		},
		{
			name:       "enabled unset",
			opts:       Options{Enabled: true},
			wantID:     0,
			frontPages: map[uint64]bool{0: false, 1: false},
		},
		{
			name:       "enabled target missing still reported",
			opts:       Options{Enabled: true, TargetID: 99},
			wantID:     99,
			frontPages: map[uint64]bool{99: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule := NewRule(staticOptions(tt.opts), testItems)

			assert.Equal(t, tt.wantID, rule.FrontPageID(ctx))

			for id, want := range tt.frontPages {
				assert.Equal(t, want, rule.IsFrontPage(ctx, id), "IsFrontPage(%d)", id)
			}
		})
	}
}

func TestDecorateStates(t *testing.T) {
	ctx := context.Background()
	rule := NewRule(staticOptions(Options{Enabled: true, TargetID: 2}), testItems)

	in := States{"draft": "Draft"}

	out := rule.DecorateStates(ctx, in, 2)
	assert.Equal(t, States{"draft": "Draft", StateKey: StateLabel}, out)
	assert.Equal(t, States{"draft": "Draft"}, in, "input must not be modified")

	assert.Equal(t, States{"draft": "Draft"}, rule.DecorateStates(ctx, in, 3))

	disabled := NewRule(staticOptions(Options{TargetID: 2}), testItems)
	assert.Empty(t, disabled.DecorateStates(ctx, nil, 2))
}

func TestStatesLabels(t *testing.T) {
	s := States{StateKey: StateLabel, "draft": "Draft"}

	require.Equal(t, []string{"Draft", "Front Page"}, s.Labels())
}

func TestStatusStates(t *testing.T) {
	tests := []struct {
		status string
		want   States
	}{
		{status: "draft", want: States{"draft": "Draft"}},
		{status: "private", want: States{"private": "Private"}},
		{status: "publish", want: States{}},
		{status: "trash", want: States{}},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusStates(tt.status))
		})
	}

	rule := NewRule(staticOptions(Options{Enabled: true, TargetID: 2}), testItems)
	assert.Equal(t, []string{"Draft", "Front Page"}, rule.DecorateStates(context.Background(), StatusStates("draft"), 2).Labels())
}
