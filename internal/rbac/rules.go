package rbac

// RolePermissions is the default policy. Dashboard reads are public; only
// dataset maintenance is gated.
var RolePermissions = map[string][]string{
	"operator": {
		"dataset:*",
	},
	"admin": {
		"*", // everything
	},
}
