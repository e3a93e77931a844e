package user

import "fmt"

type Permission string

const (
	// Employee records
	PermissionEmployeeView   Permission = "employee.view"
	PermissionEmployeeManage Permission = "employee.manage"

	// Attendance
	PermissionAttendanceView   Permission = "attendance.view"
	PermissionAttendanceManage Permission = "attendance.manage"

	// Leave requests
	PermissionLeaveView   Permission = "leave.view"
	PermissionLeaveManage Permission = "leave.manage"

	// Recruitment pipeline
	PermissionRecruitmentView   Permission = "recruitment.view"
	PermissionRecruitmentManage Permission = "recruitment.manage"

	// Recruitment calendar
	PermissionEventsManage Permission = "events.manage"

	// Audit log viewer
	PermissionLogsView Permission = "logs.view"
)

// RolePermissions maps roles to their permissions. Admin implies everything;
// HR staff can run the daily views and the leave/recruitment pipelines but
// cannot edit employee records, fix attendance rows, touch the calendar, or
// read the audit trail.
var RolePermissions = map[Role][]Permission{
	RoleAdmin: {
		PermissionEmployeeView,
		PermissionEmployeeManage,
		PermissionAttendanceView,
		PermissionAttendanceManage,
		PermissionLeaveView,
		PermissionLeaveManage,
		PermissionRecruitmentView,
		PermissionRecruitmentManage,
		PermissionEventsManage,
		PermissionLogsView,
	},
	RoleHRStaff: {
		PermissionEmployeeView,
		PermissionAttendanceView,
		PermissionLeaveView,
		PermissionLeaveManage,
		PermissionRecruitmentView,
		PermissionRecruitmentManage,
	},
}

// Decision is the typed outcome of a permission check. Denials always carry a
// reason so every handler can surface the same structured error instead of
// mixing silent redirects with ad hoc messages.
type Decision struct {
	Allowed bool
	Reason  string
}

// Decide evaluates a single permission against a role. Pure function of its
// arguments, no I/O.
func Decide(role Role, permission Permission) Decision {
	permissions, exists := RolePermissions[role]
	if !exists {
		return Decision{Reason: fmt.Sprintf("unknown role %q", role)}
	}

	for _, p := range permissions {
		if p == permission {
			return Decision{Allowed: true}
		}
	}

	return Decision{Reason: fmt.Sprintf("role %q lacks permission %q", role, permission)}
}

// HasPermission checks if a role has a specific permission
func HasPermission(role Role, permission Permission) bool {
	return Decide(role, permission).Allowed
}
