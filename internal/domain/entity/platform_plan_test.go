package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlatformPlan_IsFree(t *testing.T) {
	zeroPrice := &PlatformPlan{Price: 0, BillingCycle: BillingCycleMonthly}
	assert.True(t, zeroPrice.IsFree())

	freeCycle := &PlatformPlan{Price: 49.90, BillingCycle: BillingCycleFree}
	assert.True(t, freeCycle.IsFree())

	paid := &PlatformPlan{Price: 49.90, BillingCycle: BillingCycleMonthly}
	assert.False(t, paid.IsFree())
}

func TestPlatformPlan_Limits(t *testing.T) {
	maxUsers := 5
	capped := &PlatformPlan{MaxUsers: &maxUsers}

	assert.False(t, capped.HasUnlimitedUsers())
	assert.True(t, capped.HasUnlimitedCustomers())

	unlimited := &PlatformPlan{}
	assert.True(t, unlimited.HasUnlimitedUsers())
	assert.True(t, unlimited.HasUnlimitedCustomers())
}

func TestPlatformPlan_HasFeature(t *testing.T) {
	plan := &PlatformPlan{Features: []string{"reports", "api_access"}}

	assert.True(t, plan.HasFeature("reports"))
	assert.False(t, plan.HasFeature("white_label"))

	empty := &PlatformPlan{}
	assert.False(t, empty.HasFeature("reports"))
}
