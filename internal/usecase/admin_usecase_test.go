package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopsphere/internal/domain/entity"
	"shopsphere/pkg/errors"
)

func newAdminFixture() (*AdminUseCase, *fakeAccountRepo) {
	accounts := newFakeAccountRepo()
	accounts.CreateBuyer(context.Background(), &entity.Buyer{ID: "buyer-1"})
	accounts.CreateSeller(context.Background(), &entity.Seller{ID: "seller-1", IsApproved: false})
	accounts.CreateSeller(context.Background(), &entity.Seller{ID: "seller-2", IsApproved: true})
	accounts.CreateAdmin(context.Background(), &entity.Admin{ID: "super-1", Role: entity.RoleSuperAdmin})
	accounts.CreateAdmin(context.Background(), &entity.Admin{ID: "admin-1", Role: entity.RoleAdmin})
	return NewAdminUseCase(accounts), accounts
}

func TestApprovalWorkflow(t *testing.T) {
	uc, _ := newAdminFixture()

	pending, err := uc.ListPendingSellers(context.Background())
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "seller-1", pending[0].ID)

	seller, err := uc.ApproveSeller(context.Background(), "seller-1")
	require.NoError(t, err)
	assert.True(t, seller.IsApproved)

	// Approving twice is an error, not a silent no-op.
	_, err = uc.ApproveSeller(context.Background(), "seller-1")
	assert.True(t, errors.Is(err, "BAD_REQUEST"))

	seller, err = uc.RejectSeller(context.Background(), "seller-1")
	require.NoError(t, err)
	assert.False(t, seller.IsApproved)

	_, err = uc.RejectSeller(context.Background(), "seller-1")
	assert.True(t, errors.Is(err, "BAD_REQUEST"))

	_, err = uc.ApproveSeller(context.Background(), "ghost")
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

func TestDeleteUserFallsBackToSellers(t *testing.T) {
	uc, accounts := newAdminFixture()

	role, err := uc.DeleteUser(context.Background(), "buyer-1")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleBuyer, role)

	role, err = uc.DeleteUser(context.Background(), "seller-1")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleSeller, role)

	_, err = uc.DeleteUser(context.Background(), "ghost")
	assert.True(t, errors.Is(err, "NOT_FOUND"))

	_, err = accounts.GetSeller(context.Background(), "seller-1")
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

func TestCountUsers(t *testing.T) {
	uc, _ := newAdminFixture()

	counts, err := uc.CountUsers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, counts.Buyers)
	assert.Equal(t, 2, counts.Sellers)
	assert.Equal(t, 3, counts.Total)
}

func TestRegisterAdminDefaultsToAdminRole(t *testing.T) {
	uc, _ := newAdminFixture()

	admin, err := uc.RegisterAdmin(context.Background(), RegisterAdminInput{
		Name: "Ops", Email: "ops@example.com", Password: "secret1",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, admin.Role)

	_, err = uc.RegisterAdmin(context.Background(), RegisterAdminInput{
		Name: "Ops Again", Email: "ops@example.com", Password: "secret1",
	})
	assert.True(t, errors.Is(err, "CONFLICT"))
}

func TestAdminManagementGuards(t *testing.T) {
	uc, _ := newAdminFixture()

	// No self role change.
	_, err := uc.UpdateAdminRole(context.Background(), "super-1", "super-1", UpdateAdminRoleInput{Role: "admin"})
	assert.True(t, errors.Is(err, "BAD_REQUEST"))

	admin, err := uc.UpdateAdminRole(context.Background(), "super-1", "admin-1", UpdateAdminRoleInput{Role: "superadmin"})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleSuperAdmin, admin.Role)

	// No self delete.
	err = uc.DeleteAdmin(context.Background(), "super-1", "super-1")
	assert.True(t, errors.Is(err, "BAD_REQUEST"))

	// Two superadmins now; removing one is fine.
	require.NoError(t, uc.DeleteAdmin(context.Background(), "super-1", "admin-1"))

	// The last superadmin can never be removed.
	accounts := newFakeAccountRepo()
	accounts.CreateAdmin(context.Background(), &entity.Admin{ID: "super-only", Role: entity.RoleSuperAdmin})
	accounts.CreateAdmin(context.Background(), &entity.Admin{ID: "other-admin", Role: entity.RoleAdmin})
	solo := NewAdminUseCase(accounts)
	err = solo.DeleteAdmin(context.Background(), "other-admin", "super-only")
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}
