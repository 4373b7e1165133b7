package models

// Роли, которые попадают в JWT и проверяются middleware.
const (
	RoleAdmin  = "Admin"
	RoleMember = "Member"
)
