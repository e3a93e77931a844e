package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecide_AdminHasEverything(t *testing.T) {
	for _, p := range RolePermissions[RoleAdmin] {
		d := Decide(RoleAdmin, p)
		assert.True(t, d.Allowed, "admin should hold %s", p)
		assert.Empty(t, d.Reason)
	}
}

func TestDecide_HRStaffCannotManageEmployees(t *testing.T) {
	d := Decide(RoleHRStaff, PermissionEmployeeManage)
	assert.False(t, d.Allowed)
	assert.Contains(t, d.Reason, "employee.manage")
}

func TestDecide_HRStaffCanApproveLeave(t *testing.T) {
	assert.True(t, Decide(RoleHRStaff, PermissionLeaveManage).Allowed)
}

func TestDecide_HRStaffCannotViewLogs(t *testing.T) {
	assert.False(t, Decide(RoleHRStaff, PermissionLogsView).Allowed)
}

func TestDecide_UnknownRoleDenied(t *testing.T) {
	d := Decide(Role("intern"), PermissionEmployeeView)
	assert.False(t, d.Allowed)
	assert.Contains(t, d.Reason, "unknown role")
}

func TestHasPermission_MatchesDecide(t *testing.T) {
	assert.True(t, HasPermission(RoleAdmin, PermissionLogsView))
	assert.False(t, HasPermission(RoleHRStaff, PermissionAttendanceManage))
}

func TestValidRole(t *testing.T) {
	assert.True(t, ValidRole("admin"))
	assert.True(t, ValidRole("hr_staff"))
	assert.False(t, ValidRole("superuser"))
}
