package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestBusiness_StatusPredicates(t *testing.T) {
	tests := []struct {
		name      string
		status    BusinessStatus
		active    bool
		pending   bool
		suspended bool
	}{
		{name: "pending", status: BusinessStatusPending, pending: true},
		{name: "active", status: BusinessStatusActive, active: true},
		{name: "suspended", status: BusinessStatusSuspended, suspended: true},
		{name: "inactive", status: BusinessStatusInactive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &Business{Status: tt.status}

			assert.Equal(t, tt.active, b.IsActive())
			assert.Equal(t, tt.pending, b.IsPending())
			assert.Equal(t, tt.suspended, b.IsSuspended())
		})
	}
}

func TestBusiness_IsApproved(t *testing.T) {
	now := time.Now()

	approved := &Business{Status: BusinessStatusActive, ApprovedAt: &now}
	assert.True(t, approved.IsApproved())

	// A suspended business keeps its approval timestamp but loses approval.
	suspended := &Business{Status: BusinessStatusSuspended, ApprovedAt: &now}
	assert.False(t, suspended.IsApproved())

	pending := &Business{Status: BusinessStatusPending}
	assert.False(t, pending.IsApproved())
}

func TestBusiness_HasActivePlan(t *testing.T) {
	withActive := &Business{PlatformPlan: &PlatformPlan{IsActive: true}}
	withInactive := &Business{PlatformPlan: &PlatformPlan{IsActive: false}}
	without := &Business{}

	assert.True(t, withActive.HasActivePlan())
	assert.False(t, withInactive.HasActivePlan())
	assert.False(t, without.HasActivePlan())
}

func TestBusiness_HasCustomer(t *testing.T) {
	customerID := uuid.New()
	b := &Business{
		Customers: []*CustomerProfile{
			{ID: uuid.New()},
			{ID: customerID},
		},
	}

	assert.True(t, b.HasCustomer(customerID))
	assert.False(t, b.HasCustomer(uuid.New()))
}

func TestBusiness_FormattedCNPJ(t *testing.T) {
	b := &Business{CNPJ: "12345678000190"}
	assert.Equal(t, "12.345.678/0001-90", b.FormattedCNPJ())

	short := &Business{CNPJ: "12345"}
	assert.Equal(t, "12345", short.FormattedCNPJ())

	empty := &Business{}
	assert.Equal(t, "", empty.FormattedCNPJ())
}
