package domain

import (
	"reflect"
	"testing"
)

func TestRequiredTier(t *testing.T) {
	cases := []struct {
		perm Permission
		want Tier
	}{
		{PermViewDashboard, TierBasic},
		{PermManageMenu, TierBasic},
		{PermManageOrders, TierBasic},
		{PermManageTables, TierBasic},
		{PermPriceList, TierBasic},
		{PermManageCustomers, TierPro},
		{PermManagePurchaseList, TierPro},
		{PermManageAccounting, TierPro},
		{PermManageUsers, TierAdvance},
		{PermManageSettings, TierAdvance},
	}
	for _, tc := range cases {
		if got := RequiredTier(tc.perm); got != tc.want {
			t.Errorf("RequiredTier(%s) = %v, want %v", tc.perm, got, tc.want)
		}
	}
}

func TestParsePermissions(t *testing.T) {
	full := allPermissionNames()

	cases := []struct {
		name string
		raw  any
		want []string
	}{
		{"string slice", []string{"manage_menu"}, []string{"manage_menu"}},
		{"any slice", []any{"manage_menu", "manage_orders"}, []string{"manage_menu", "manage_orders"}},
		{"any slice with junk", []any{"manage_menu", 7, "  "}, []string{"manage_menu"}},
		{"csv", "manage_menu, manage_orders ,view_dashboard", []string{"manage_menu", "manage_orders", "view_dashboard"}},
		{"csv with empties", "manage_menu,,  ,manage_orders", []string{"manage_menu", "manage_orders"}},
		{"sentinel string", "0", full},
		{"sentinel string padded", " 0 ", full},
		{"sentinel int", 0, full},
		{"sentinel json number", float64(0), full},
		{"nonzero number", float64(3), []string{}},
		{"nil", nil, []string{}},
		{"bool", true, []string{}},
	}
	for _, tc := range cases {
		if got := ParsePermissions(tc.raw); !reflect.DeepEqual(got, tc.want) {
			t.Errorf("%s: ParsePermissions(%v) = %v, want %v", tc.name, tc.raw, got, tc.want)
		}
	}
}

func TestParsePermissionsSentinelCoversVocabulary(t *testing.T) {
	got := ParsePermissions("0")
	if len(got) != len(AllPermissions) {
		t.Fatalf("sentinel expanded to %d permissions, want %d", len(got), len(AllPermissions))
	}
	for i, p := range AllPermissions {
		if got[i] != string(p) {
			t.Errorf("position %d: got %q, want %q", i, got[i], p)
		}
	}
}
