package domain

import "strings"

// Permission names a capability gating one feature area of the panel.
type Permission string

const (
	PermViewDashboard      Permission = "view_dashboard"
	PermManageMenu         Permission = "manage_menu"
	PermManageOrders       Permission = "manage_orders"
	PermManageCustomers    Permission = "manage_customers"
	PermManageCategories   Permission = "manage_categories"
	PermManageUsers        Permission = "manage_users"
	PermManageTables       Permission = "manage_tables"
	PermManagePurchaseList Permission = "manage_purchase_list"
	PermManageAccounting   Permission = "manage_accounting"
	PermManageSettings     Permission = "manage_settings"
	PermPriceList          Permission = "price_list"
)

// AllPermissions is the closed permission vocabulary, in display order.
var AllPermissions = []Permission{
	PermViewDashboard,
	PermManageMenu,
	PermManageOrders,
	PermManageCustomers,
	PermManageCategories,
	PermManageUsers,
	PermManageTables,
	PermManagePurchaseList,
	PermManageAccounting,
	PermManageSettings,
	PermPriceList,
}

// permissionTiers maps each permission to the minimum plan tier that unlocks
// it. Permissions absent here require only the lowest tier.
var permissionTiers = map[Permission]Tier{
	PermManageCustomers:    TierPro,
	PermManagePurchaseList: TierPro,
	PermManageAccounting:   TierPro,
	PermManageUsers:        TierAdvance,
	PermManageSettings:     TierAdvance,
}

// RequiredTier returns the minimum plan tier for a permission.
func RequiredTier(p Permission) Tier {
	if tier, ok := permissionTiers[p]; ok {
		return tier
	}
	return TierBasic
}

// ParsePermissions normalizes the heterogeneous wire shapes the upstream
// system stores for a user's permission grant:
//
//   - a string slice passes through,
//   - the sentinel 0 (string or number) expands to the full vocabulary,
//   - a comma-separated string is split, trimmed and stripped of empties,
//   - anything else yields an empty list.
func ParsePermissions(raw any) []string {
	switch v := raw.(type) {
	case []string:
		return v
	case []any:
		names := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok && strings.TrimSpace(s) != "" {
				names = append(names, strings.TrimSpace(s))
			}
		}
		return names
	case string:
		if strings.TrimSpace(v) == "0" {
			return allPermissionNames()
		}
		return splitPermissionList(v)
	case int:
		if v == 0 {
			return allPermissionNames()
		}
	case float64:
		// JSON numbers decode as float64.
		if v == 0 {
			return allPermissionNames()
		}
	}
	return []string{}
}

func allPermissionNames() []string {
	names := make([]string, len(AllPermissions))
	for i, p := range AllPermissions {
		names[i] = string(p)
	}
	return names
}

func splitPermissionList(csv string) []string {
	parts := strings.Split(csv, ",")
	names := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			names = append(names, trimmed)
		}
	}
	return names
}
