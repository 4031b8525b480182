// Package authz holds the authorization core: capability derivation and
// the per-resource policy rules. Everything here is a pure function over
// already-fetched entity state; nothing in this package touches storage.
package authz

import (
	"fmt"
	"slices"

	"plaza/internal/domain/entity"
)

// Baseline abilities granted to every authenticated user.
var baselineAbilities = []string{
	"profile:read",
	"profile:update",
}

var customerAbilities = []string{
	"customer:profile:read",
	"customer:profile:update",
	"orders:create",
	"orders:read",
}

var staffAbilities = []string{
	"staff:dashboard:read",
	"staff:reports:read",
}

var advancedStaffAbilities = []string{
	"staff:users:read",
	"staff:reports:advanced",
}

var adminStaffAbilities = []string{
	"admin:users:read",
	"admin:users:create",
	"admin:users:update",
	"admin:users:delete",
	"admin:staff:create",
	"admin:staff:update",
	"admin:staff:delete",
	"admin:businesses:read",
	"admin:businesses:approve",
	"admin:system:manage",
}

// DeriveAbilities computes the deduplicated set of capability tokens for the
// given user, embedded into issued access tokens. A user with no usable
// profile receives only the baseline set. The result is sorted so token
// payloads stay stable across logins.
func DeriveAbilities(user *entity.User) []string {
	seen := make(map[string]struct{})
	add := func(tokens ...string) {
		for _, t := range tokens {
			seen[t] = struct{}{}
		}
	}

	add(baselineAbilities...)

	if user.IsCustomer() {
		add(customerAbilities...)
	}

	if user.IsStaff() {
		add(staffAbilities...)

		switch {
		case user.StaffProfile.IsAdmin():
			add(adminStaffAbilities...)
		case user.StaffProfile.IsAdvanced():
			add(advancedStaffAbilities...)
		}

		add(user.StaffProfile.SystemPermissions...)
	}

	if user.IsBusinessUser() {
		for _, m := range user.ActiveMemberships() {
			add(
				fmt.Sprintf("business:%s:read", m.BusinessID),
				fmt.Sprintf("business:%s:orders:read", m.BusinessID),
			)

			if m.IsElevated() {
				add(
					fmt.Sprintf("business:%s:manage", m.BusinessID),
					fmt.Sprintf("business:%s:users:manage", m.BusinessID),
					fmt.Sprintf("business:%s:settings:update", m.BusinessID),
				)
			}
		}
	}

	abilities := make([]string, 0, len(seen))
	for t := range seen {
		abilities = append(abilities, t)
	}
	slices.Sort(abilities)

	return abilities
}
