package scope

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinovate/clinic-scheduling-api/internal/domain"
)

func strPtr(s string) *string {
	return &s
}

func restrictedPrincipal(tenantID string) domain.Principal {
	return domain.Principal{UserID: "user1", TenantID: strPtr(tenantID)}
}

func superuserPrincipal() domain.Principal {
	return domain.Principal{UserID: "admin1", Superuser: true}
}

func TestReadScope_Superuser(t *testing.T) {
	guard := NewGuard()

	sc, err := guard.ReadScope(superuserPrincipal())

	require.NoError(t, err)
	assert.True(t, sc.All)
}

func TestReadScope_RestrictedPrincipal(t *testing.T) {
	guard := NewGuard()

	sc, err := guard.ReadScope(restrictedPrincipal("tenant1"))

	require.NoError(t, err)
	assert.False(t, sc.All)
	assert.Equal(t, "tenant1", sc.TenantID)
}

func TestReadScope_TenantlessPrincipalDenied(t *testing.T) {
	guard := NewGuard()

	_, err := guard.ReadScope(domain.Principal{UserID: "user1"})

	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestHiddenFields(t *testing.T) {
	guard := NewGuard()

	assert.Nil(t, guard.HiddenFields(superuserPrincipal()))
	assert.Equal(t, []string{TenantFieldName}, guard.HiddenFields(restrictedPrincipal("tenant1")))
}

func TestApplyOnSave_RestrictedPrincipalStampsOwnTenant(t *testing.T) {
	guard := NewGuard()
	patient := &domain.Patient{TenantID: strPtr("other-tenant")}

	err := guard.ApplyOnSave(restrictedPrincipal("tenant1"), patient)

	require.NoError(t, err)
	require.NotNil(t, patient.TenantID)
	// The caller-supplied tenant is overwritten, never trusted.
	assert.Equal(t, "tenant1", *patient.TenantID)
}

func TestApplyOnSave_RestrictedPrincipalStampsNilTenant(t *testing.T) {
	guard := NewGuard()
	patient := &domain.Patient{}

	err := guard.ApplyOnSave(restrictedPrincipal("tenant1"), patient)

	require.NoError(t, err)
	require.NotNil(t, patient.TenantID)
	assert.Equal(t, "tenant1", *patient.TenantID)
}

func TestApplyOnSave_SuperuserKeepsExplicitTenant(t *testing.T) {
	guard := NewGuard()
	patient := &domain.Patient{TenantID: strPtr("tenant2")}

	err := guard.ApplyOnSave(superuserPrincipal(), patient)

	require.NoError(t, err)
	assert.Equal(t, "tenant2", *patient.TenantID)
}

func TestApplyOnSave_SuperuserWithoutTenantRejected(t *testing.T) {
	guard := NewGuard()

	err := guard.ApplyOnSave(superuserPrincipal(), &domain.Patient{})

	assert.ErrorIs(t, err, ErrTenantRequired)
}

func TestApplyOnSave_TenantlessRestrictedPrincipalDenied(t *testing.T) {
	guard := NewGuard()

	err := guard.ApplyOnSave(domain.Principal{UserID: "user1"}, &domain.Patient{})

	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestScopeForRead_FiltersOtherTenants(t *testing.T) {
	rows := []domain.Patient{
		{ID: "p1", TenantID: strPtr("tenant1")},
		{ID: "p2", TenantID: strPtr("tenant2")},
		{ID: "p3", TenantID: strPtr("tenant1")},
		{ID: "p4", TenantID: nil},
	}

	visible, err := ScopeForRead(restrictedPrincipal("tenant1"), rows)

	require.NoError(t, err)
	require.Len(t, visible, 2)
	assert.Equal(t, "p1", visible[0].ID)
	assert.Equal(t, "p3", visible[1].ID)
}

func TestScopeForRead_SuperuserSeesEverything(t *testing.T) {
	rows := []domain.Patient{
		{ID: "p1", TenantID: strPtr("tenant1")},
		{ID: "p2", TenantID: strPtr("tenant2")},
	}

	visible, err := ScopeForRead(superuserPrincipal(), rows)

	require.NoError(t, err)
	assert.Len(t, visible, 2)
}

func TestScopeForRead_TenantlessPrincipalDenied(t *testing.T) {
	rows := []domain.Patient{{ID: "p1", TenantID: strPtr("tenant1")}}

	_, err := ScopeForRead(domain.Principal{UserID: "user1"}, rows)

	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestForeignKeyChoices_NilTenantRowsAreShared(t *testing.T) {
	rows := []domain.DocumentType{
		{ID: "d1", TenantID: strPtr("tenant1")},
		{ID: "d2", TenantID: strPtr("tenant2")},
		{ID: "d3", TenantID: nil},
	}

	visible, err := ForeignKeyChoices(restrictedPrincipal("tenant1"), rows)

	require.NoError(t, err)
	require.Len(t, visible, 2)
	assert.Equal(t, "d1", visible[0].ID)
	assert.Equal(t, "d3", visible[1].ID)
}

func TestForeignKeyChoices_UnscopedKindPassesThrough(t *testing.T) {
	rows := []domain.Tenant{
		{ID: "t1", Name: "Clinic A"},
		{ID: "t2", Name: "Clinic B"},
	}

	visible, err := ForeignKeyChoices(restrictedPrincipal("tenant1"), rows)

	require.NoError(t, err)
	assert.Len(t, visible, 2)
}

func TestForeignKeyChoices_SuperuserSeesEverything(t *testing.T) {
	rows := []domain.PaymentType{
		{ID: "pt1", TenantID: strPtr("tenant1")},
		{ID: "pt2", TenantID: strPtr("tenant2")},
	}

	visible, err := ForeignKeyChoices(superuserPrincipal(), rows)

	require.NoError(t, err)
	assert.Len(t, visible, 2)
}

func TestForeignKeyChoices_TenantlessPrincipalDenied(t *testing.T) {
	rows := []domain.PaymentType{{ID: "pt1", TenantID: strPtr("tenant1")}}

	_, err := ForeignKeyChoices(domain.Principal{UserID: "user1"}, rows)

	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestForeignKeyChoices_EmptyInput(t *testing.T) {
	visible, err := ForeignKeyChoices(restrictedPrincipal("tenant1"), []domain.PaymentType{})

	require.NoError(t, err)
	assert.Empty(t, visible)
}
