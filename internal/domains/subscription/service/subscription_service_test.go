package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foodgram-backend/internal/domains/subscription/model"
	usermodel "foodgram-backend/internal/domains/user/model"
)

// =============================================================================
// FAKES
// =============================================================================

type fakeSubscriptionRepo struct {
	links map[string]bool
}

func subKey(userID, authorID uuid.UUID) string {
	return userID.String() + "/" + authorID.String()
}

func (f *fakeSubscriptionRepo) Create(_ context.Context, userID, authorID uuid.UUID) error {
	key := subKey(userID, authorID)
	if f.links[key] {
		return model.ErrAlreadySubscribed
	}
	f.links[key] = true
	return nil
}

func (f *fakeSubscriptionRepo) Delete(_ context.Context, userID, authorID uuid.UUID) error {
	key := subKey(userID, authorID)
	if !f.links[key] {
		return model.ErrNotSubscribed
	}
	delete(f.links, key)
	return nil
}

func (f *fakeSubscriptionRepo) ListAuthors(context.Context, uuid.UUID, int, int, int) ([]model.AuthorResponse, int, error) {
	return nil, 0, nil
}

type fakeUserRepo struct {
	known map[uuid.UUID]bool
}

func (f *fakeUserRepo) Create(context.Context, *usermodel.User) error { return nil }

func (f *fakeUserRepo) GetByID(context.Context, uuid.UUID) (*usermodel.User, error) {
	return nil, usermodel.ErrUserNotFound
}

func (f *fakeUserRepo) GetByEmail(context.Context, string) (*usermodel.User, error) {
	return nil, usermodel.ErrUserNotFound
}

func (f *fakeUserRepo) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	return f.known[id], nil
}

func (f *fakeUserRepo) GetView(context.Context, uuid.UUID, *uuid.UUID) (*usermodel.UserResponse, error) {
	return nil, usermodel.ErrUserNotFound
}

func (f *fakeUserRepo) ListViews(context.Context, *uuid.UUID, int, int) ([]usermodel.UserResponse, int, error) {
	return nil, 0, nil
}

// =============================================================================
// TESTS
// =============================================================================

func newSubscriptionFixture() (SubscriptionService, uuid.UUID, uuid.UUID) {
	userID := uuid.New()
	authorID := uuid.New()
	svc := NewSubscriptionService(
		&fakeSubscriptionRepo{links: map[string]bool{}},
		&fakeUserRepo{known: map[uuid.UUID]bool{userID: true, authorID: true}},
	)
	return svc, userID, authorID
}

func TestSubscriptionService_Subscribe(t *testing.T) {
	svc, userID, authorID := newSubscriptionFixture()
	assert.NoError(t, svc.Subscribe(context.Background(), userID, authorID))
}

func TestSubscriptionService_SelfSubscribeRejected(t *testing.T) {
	svc, userID, _ := newSubscriptionFixture()

	err := svc.Subscribe(context.Background(), userID, userID)
	var subErr *model.SubscriptionError
	require.ErrorAs(t, err, &subErr)
	assert.Equal(t, model.ErrCodeSelfSubscribe, subErr.Code)
}

func TestSubscriptionService_DuplicateSubscribeConflicts(t *testing.T) {
	svc, userID, authorID := newSubscriptionFixture()
	require.NoError(t, svc.Subscribe(context.Background(), userID, authorID))

	err := svc.Subscribe(context.Background(), userID, authorID)
	var subErr *model.SubscriptionError
	require.ErrorAs(t, err, &subErr)
	assert.Equal(t, model.ErrCodeAlreadySubscribed, subErr.Code)
}

func TestSubscriptionService_UnknownAuthorIsNotFound(t *testing.T) {
	svc, userID, _ := newSubscriptionFixture()

	err := svc.Subscribe(context.Background(), userID, uuid.New())
	var subErr *model.SubscriptionError
	require.ErrorAs(t, err, &subErr)
	assert.Equal(t, model.ErrCodeAuthorNotFound, subErr.Code)
}

func TestSubscriptionService_UnsubscribeAbsentIsNotFound(t *testing.T) {
	svc, userID, authorID := newSubscriptionFixture()

	err := svc.Unsubscribe(context.Background(), userID, authorID)
	var subErr *model.SubscriptionError
	require.ErrorAs(t, err, &subErr)
	assert.Equal(t, model.ErrCodeNotSubscribed, subErr.Code)
}

func TestSubscriptionService_SubscribeUnsubscribeRoundTrip(t *testing.T) {
	svc, userID, authorID := newSubscriptionFixture()

	require.NoError(t, svc.Subscribe(context.Background(), userID, authorID))
	require.NoError(t, svc.Unsubscribe(context.Background(), userID, authorID))
	assert.NoError(t, svc.Subscribe(context.Background(), userID, authorID))
}
