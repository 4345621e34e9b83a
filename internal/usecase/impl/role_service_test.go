package impl

import (
	"context"
	"log/slog"
	"testing"

	"subletswipe/internal/domain/entity"
	mockRepo "subletswipe/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestRoleService(t *testing.T) (*roleService, *mockRepo.MockResourceRepository, *mockRepo.MockSessionStore) {
	t.Helper()

	resources := mockRepo.NewMockResourceRepository(t)
	sessions := mockRepo.NewMockSessionStore(t)
	service := NewActiveRoleService(resources, sessions, slog.New(slog.DiscardHandler))

	return service.(*roleService), resources, sessions
}

func TestRoleService_Default_RenterWithNoResource(t *testing.T) {
	service, _, _ := createTestRoleService(t)

	role := service.ActiveRole()
	assert.True(t, role.IsRenter)
	assert.False(t, role.HasResource())
}

func TestRoleService_RefreshResources_RenterProfileWins(t *testing.T) {
	service, resources, sessions := createTestRoleService(t)

	ctx := context.Background()
	sessions.EXPECT().Load(ctx).Return(&entity.User{ID: 1}, nil)
	resources.EXPECT().FetchRenterProfileID(mock.Anything, 1).Return(42, true, nil)
	resources.EXPECT().FetchListingIDs(mock.Anything, 1).Return([]int{}, nil)

	require.NoError(t, service.RefreshResources(ctx))

	role := service.ActiveRole()
	assert.True(t, role.IsRenter)
	assert.Equal(t, 42, role.ResourceID)

	profileID, found := service.RenterProfileID()
	assert.True(t, found)
	assert.Equal(t, 42, profileID)
}

func TestRoleService_RefreshResources_ListingsOnlyMakeLister(t *testing.T) {
	service, resources, sessions := createTestRoleService(t)

	ctx := context.Background()
	sessions.EXPECT().Load(ctx).Return(&entity.User{ID: 1}, nil)
	resources.EXPECT().FetchRenterProfileID(mock.Anything, 1).Return(0, false, nil)
	resources.EXPECT().FetchListingIDs(mock.Anything, 1).Return([]int{7, 9}, nil)

	require.NoError(t, service.RefreshResources(ctx))

	role := service.ActiveRole()
	assert.False(t, role.IsRenter)
	assert.Equal(t, 7, role.ResourceID)
	assert.Equal(t, []int{7, 9}, service.ListingIDs())
}

func TestRoleService_RefreshResources_NothingOwnedStaysRenter(t *testing.T) {
	service, resources, sessions := createTestRoleService(t)

	ctx := context.Background()
	sessions.EXPECT().Load(ctx).Return(&entity.User{ID: 1}, nil)
	resources.EXPECT().FetchRenterProfileID(mock.Anything, 1).Return(0, false, nil)
	resources.EXPECT().FetchListingIDs(mock.Anything, 1).Return(nil, nil)

	require.NoError(t, service.RefreshResources(ctx))

	role := service.ActiveRole()
	assert.True(t, role.IsRenter)
	assert.False(t, role.HasResource())
}

func TestRoleService_RefreshResources_FetchErrorKeepsPriorState(t *testing.T) {
	service, resources, sessions := createTestRoleService(t)

	ctx := context.Background()
	sessions.EXPECT().Load(ctx).Return(&entity.User{ID: 1}, nil)
	resources.EXPECT().FetchRenterProfileID(mock.Anything, 1).Return(42, true, nil).Once()
	resources.EXPECT().FetchListingIDs(mock.Anything, 1).Return([]int{7}, nil).Once()
	require.NoError(t, service.RefreshResources(ctx))

	resources.EXPECT().FetchRenterProfileID(mock.Anything, 1).Return(0, false, errors.New("network down")).Once()
	resources.EXPECT().FetchListingIDs(mock.Anything, 1).Return(nil, nil).Once()
	err := service.RefreshResources(ctx)
	assert.Error(t, err)

	role := service.ActiveRole()
	assert.True(t, role.IsRenter)
	assert.Equal(t, 42, role.ResourceID)
	assert.Equal(t, []int{7}, service.ListingIDs())
}

func TestRoleService_RefreshResources_NoSessionFails(t *testing.T) {
	service, _, sessions := createTestRoleService(t)

	ctx := context.Background()
	sessions.EXPECT().Load(ctx).Return(nil, errors.New("no signed-in user"))

	err := service.RefreshResources(ctx)
	assert.Error(t, err)
}

func TestRoleService_RefreshResources_ExplicitRoleNotOverridden(t *testing.T) {
	service, resources, sessions := createTestRoleService(t)

	service.SetRole(entity.ActiveRole{IsRenter: false, ResourceID: 7})

	ctx := context.Background()
	sessions.EXPECT().Load(ctx).Return(&entity.User{ID: 1}, nil)
	resources.EXPECT().FetchRenterProfileID(mock.Anything, 1).Return(42, true, nil)
	resources.EXPECT().FetchListingIDs(mock.Anything, 1).Return([]int{7, 9}, nil)

	require.NoError(t, service.RefreshResources(ctx))

	role := service.ActiveRole()
	assert.False(t, role.IsRenter)
	assert.Equal(t, 7, role.ResourceID)
}

func TestRoleService_RefreshResources_ExplicitListingGoneFallsBack(t *testing.T) {
	service, resources, sessions := createTestRoleService(t)

	service.SetRole(entity.ActiveRole{IsRenter: false, ResourceID: 99})

	ctx := context.Background()
	sessions.EXPECT().Load(ctx).Return(&entity.User{ID: 1}, nil)
	resources.EXPECT().FetchRenterProfileID(mock.Anything, 1).Return(0, false, nil)
	resources.EXPECT().FetchListingIDs(mock.Anything, 1).Return([]int{7, 9}, nil)

	require.NoError(t, service.RefreshResources(ctx))

	role := service.ActiveRole()
	assert.False(t, role.IsRenter)
	assert.Equal(t, 7, role.ResourceID)
}

func TestRoleService_RefreshResources_SupersededRefreshDiscarded(t *testing.T) {
	service, resources, sessions := createTestRoleService(t)

	ctx := context.Background()
	started := make(chan struct{})
	release := make(chan struct{})

	sessions.EXPECT().Load(ctx).Return(&entity.User{ID: 1}, nil)

	// The first refresh stalls in flight while a second one completes.
	resources.EXPECT().FetchRenterProfileID(mock.Anything, 1).
		Run(func(args mock.Arguments) {
			close(started)
			<-release
		}).
		Return(0, false, nil).Once()
	resources.EXPECT().FetchListingIDs(mock.Anything, 1).Return(nil, nil).Times(2)
	resources.EXPECT().FetchRenterProfileID(mock.Anything, 1).Return(42, true, nil).Once()

	done := make(chan error, 1)
	go func() {
		done <- service.RefreshResources(ctx)
	}()
	<-started

	require.NoError(t, service.RefreshResources(ctx))

	close(release)
	require.NoError(t, <-done)

	role := service.ActiveRole()
	assert.True(t, role.IsRenter)
	assert.Equal(t, 42, role.ResourceID)

	_, found := service.RenterProfileID()
	assert.True(t, found)
}

func TestRoleService_SetResourceID_ValidListing(t *testing.T) {
	service, resources, sessions := createTestRoleService(t)

	ctx := context.Background()
	sessions.EXPECT().Load(ctx).Return(&entity.User{ID: 1}, nil)
	resources.EXPECT().FetchRenterProfileID(mock.Anything, 1).Return(0, false, nil)
	resources.EXPECT().FetchListingIDs(mock.Anything, 1).Return([]int{7, 9}, nil)
	require.NoError(t, service.RefreshResources(ctx))

	assert.True(t, service.SetResourceID(9))
	assert.Equal(t, 9, service.ActiveRole().ResourceID)
}

func TestRoleService_SetResourceID_InvalidIDRejected(t *testing.T) {
	service, resources, sessions := createTestRoleService(t)

	ctx := context.Background()
	sessions.EXPECT().Load(ctx).Return(&entity.User{ID: 1}, nil)
	resources.EXPECT().FetchRenterProfileID(mock.Anything, 1).Return(42, true, nil)
	resources.EXPECT().FetchListingIDs(mock.Anything, 1).Return(nil, nil)
	require.NoError(t, service.RefreshResources(ctx))

	assert.False(t, service.SetResourceID(999))
	assert.Equal(t, 42, service.ActiveRole().ResourceID)
}

func TestRoleService_SetIsRenter_MarksExplicit(t *testing.T) {
	service, resources, sessions := createTestRoleService(t)

	service.SetIsRenter(false)

	ctx := context.Background()
	sessions.EXPECT().Load(ctx).Return(&entity.User{ID: 1}, nil)
	resources.EXPECT().FetchRenterProfileID(mock.Anything, 1).Return(42, true, nil)
	resources.EXPECT().FetchListingIDs(mock.Anything, 1).Return([]int{7}, nil)
	require.NoError(t, service.RefreshResources(ctx))

	role := service.ActiveRole()
	assert.False(t, role.IsRenter)
	assert.Equal(t, 7, role.ResourceID)
}
