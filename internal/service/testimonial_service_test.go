package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/estate-cms/internal/domain"
	"github.com/spec-kit/estate-cms/internal/events"
	"github.com/spec-kit/estate-cms/internal/repository"
)

type fakeTestimonialRepo struct {
	items map[string]*domain.Testimonial
}

func newFakeTestimonialRepo() *fakeTestimonialRepo {
	return &fakeTestimonialRepo{items: map[string]*domain.Testimonial{}}
}

func (r *fakeTestimonialRepo) Create(_ context.Context, t *domain.Testimonial) error {
	t.ID = uuid.NewString()
	clone := *t
	r.items[t.ID] = &clone
	return nil
}

func (r *fakeTestimonialRepo) Update(_ context.Context, t *domain.Testimonial) error {
	if _, ok := r.items[t.ID]; !ok {
		return pgx.ErrNoRows
	}
	clone := *t
	r.items[t.ID] = &clone
	return nil
}

func (r *fakeTestimonialRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.items[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.items, id)
	return nil
}

func (r *fakeTestimonialRepo) GetByID(_ context.Context, id string) (*domain.Testimonial, error) {
	t, ok := r.items[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *t
	return &clone, nil
}

func (r *fakeTestimonialRepo) List(_ context.Context, filter repository.TestimonialFilter) ([]domain.Testimonial, int, error) {
	out := []domain.Testimonial{}
	for _, t := range r.items {
		if filter.Approved != nil && t.IsApproved != *filter.Approved {
			continue
		}
		out = append(out, *t)
	}
	return out, len(out), nil
}

type recordingDispatcher struct {
	published []events.Event
}

func (d *recordingDispatcher) Subscribe(events.EventType, events.EventHandler) {}

func (d *recordingDispatcher) Publish(_ context.Context, e events.Event) error {
	d.published = append(d.published, e)
	return nil
}

func TestTestimonialCreateStartsUnapproved(t *testing.T) {
	repo := newFakeTestimonialRepo()
	dispatcher := &recordingDispatcher{}
	svc := NewTestimonialService(repo, dispatcher)

	created, err := svc.Create(context.Background(), TestimonialCreateInput{
		AuthorName: "Sara",
		Quote:      "Lovely place to live.",
		Rating:     5,
	})
	require.NoError(t, err)
	assert.False(t, created.IsApproved)

	require.Len(t, dispatcher.published, 1)
	assert.Equal(t, events.EventTestimonialSubmitted, dispatcher.published[0].Type)
}

func TestTestimonialApproveIsIdempotent(t *testing.T) {
	repo := newFakeTestimonialRepo()
	dispatcher := &recordingDispatcher{}
	svc := NewTestimonialService(repo, dispatcher)

	created, err := svc.Create(context.Background(), TestimonialCreateInput{
		AuthorName: "Omar",
		Quote:      "Great amenities.",
		Rating:     4,
	})
	require.NoError(t, err)

	first, err := svc.Approve(context.Background(), "admin-1", created.ID)
	require.NoError(t, err)
	assert.True(t, first.IsApproved)

	second, err := svc.Approve(context.Background(), "admin-1", created.ID)
	require.NoError(t, err)
	assert.True(t, second.IsApproved)

	// One submitted event plus exactly one approved event.
	approvedEvents := 0
	for _, e := range dispatcher.published {
		if e.Type == events.EventTestimonialApproved {
			approvedEvents++
		}
	}
	assert.Equal(t, 1, approvedEvents)
}

func TestTestimonialApproveUnknownID(t *testing.T) {
	svc := NewTestimonialService(newFakeTestimonialRepo(), &recordingDispatcher{})

	_, err := svc.Approve(context.Background(), "admin-1", uuid.NewString())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestTestimonialListForcesApprovedForNonModerators(t *testing.T) {
	repo := newFakeTestimonialRepo()
	svc := NewTestimonialService(repo, &recordingDispatcher{})

	approved, err := svc.Create(context.Background(), TestimonialCreateInput{
		AuthorName: "Nina", Quote: "Superb.", Rating: 5,
	})
	require.NoError(t, err)
	_, err = svc.Approve(context.Background(), "admin-1", approved.ID)
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), TestimonialCreateInput{
		AuthorName: "Lee", Quote: "Pending review.", Rating: 3,
	})
	require.NoError(t, err)

	visible, total, err := svc.List(context.Background(), false, repository.TestimonialFilter{})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, visible, 1)
	assert.True(t, visible[0].IsApproved)

	all, total, err := svc.List(context.Background(), true, repository.TestimonialFilter{})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Len(t, all, 2)
}
