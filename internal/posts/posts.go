package posts

import (
	"context"
	"time"

	"github.com/orgball2608/post-pilot/internal/domain"
	"github.com/orgball2608/post-pilot/internal/settings"
)

// ImageInput references an image by URL. A missing ID is generated on write.
type ImageInput struct {
	ID   string
	Path string
}

// ItemInput is one post of a thread as supplied by a caller. Edits always
// carry the full ordered item list; partial patches over an ordered thread
// are ambiguous to reconcile and are not supported.
type ItemInput struct {
	ID      string
	Content string
	Images  []ImageInput
}

// EditInput is a full-replacement edit of a group. Date is optional: when nil
// the group keeps its current publish date. ForceSchedule moves a draft into
// the queue as part of the edit.
type EditInput struct {
	GroupID           string
	IntegrationID     string
	Items             []ItemInput
	SettingsOverrides []settings.Override
	Date              *time.Time
	ForceSchedule     bool
}

type EditResult struct {
	GroupID       string
	PrimaryItemID string
	State         domain.PostState
	PublishDate   time.Time
}

type RescheduleResult struct {
	GroupID string
	NewDate time.Time
}

type DeleteResult struct {
	GroupID string
	// WasPublished is true when the group had already gone out. Deletion is
	// local bookkeeping only; the remote content stays live.
	WasPublished bool
}

// IntegrationView is the denormalized channel info attached to group views.
type IntegrationView struct {
	ID        string
	Name      string
	Platform  string
	Picture   string
	Profile   string
	Disabled  bool
	Available bool
}

// GroupView is a group denormalized for display.
type GroupView struct {
	GroupID     string
	PublishDate time.Time
	State       domain.PostState
	Editable    bool
	ReleaseURL  string
	Integration IntegrationView
	Settings    map[string]any
	Items       []domain.PostItem
}

// StateFilter is the closed query vocabulary over lifecycle states.
type StateFilter string

const (
	FilterAll       StateFilter = "all"
	FilterScheduled StateFilter = "scheduled"
	FilterDraft     StateFilter = "draft"
	FilterPublished StateFilter = "published"
	FilterError     StateFilter = "error"
)

// Valid reports whether f is a known filter value. Empty means "all".
func (f StateFilter) Valid() bool {
	switch f {
	case "", FilterAll, FilterScheduled, FilterDraft, FilterPublished, FilterError:
		return true
	}
	return false
}

// States maps the filter onto the underlying state set. Nil means no
// filtering.
func (f StateFilter) States() []domain.PostState {
	switch f {
	case FilterScheduled:
		return []domain.PostState{domain.StateQueue}
	case FilterDraft:
		return []domain.PostState{domain.StateDraft}
	case FilterPublished:
		return []domain.PostState{domain.StatePublished}
	case FilterError:
		return []domain.PostState{domain.StateError}
	}
	return nil
}

// ListFilter narrows a List call. Zero values fall back to the defaults:
// today through +30 days, all states, no integration filter, 100 groups.
type ListFilter struct {
	StartDate     *time.Time
	EndDate       *time.Time
	State         StateFilter
	IntegrationID string
	Limit         int
}

type Service interface {
	// Edit replaces a group's content, images and settings wholesale
	Edit(ctx context.Context, orgID string, input EditInput) (*EditResult, error)

	// Reschedule moves a group, referenced by group or item id, to a future date
	Reschedule(ctx context.Context, orgID, ref string, newDate time.Time) (*RescheduleResult, error)

	// Delete destroys a group in any state
	Delete(ctx context.Context, orgID, groupID string) (*DeleteResult, error)

	// Get returns a group, referenced by group or item id, denormalized for display
	Get(ctx context.Context, orgID, ref string) (*GroupView, error)

	// List returns groups in a date window, filtered by state and integration
	List(ctx context.Context, orgID string, filter ListFilter) ([]*GroupView, error)

	// ListIntegrations returns the organization's connected channels
	ListIntegrations(ctx context.Context, orgID string) ([]*IntegrationView, error)
}
