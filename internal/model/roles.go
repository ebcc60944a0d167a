package model

import "strings"

// Accessibility attribute names read by the locator and walker.
const (
	AttrWindows     = "AXWindows"
	AttrChildren    = "AXChildren"
	AttrRole        = "AXRole"
	AttrSubrole     = "AXSubrole"
	AttrDescription = "AXDescription"
)

// Role is a coarse accessibility element type.
type Role string

const (
	RoleGroup      Role = "AXGroup"
	RoleScrollArea Role = "AXScrollArea"
	RoleList       Role = "AXList"
	RoleSplitGroup Role = "AXSplitGroup"
)

// ContainerRoles are the roles the walker descends into.
var ContainerRoles = []Role{RoleGroup, RoleScrollArea, RoleList, RoleSplitGroup}

// IsContainer reports whether r may hold notification alerts below it.
func (r Role) IsContainer() bool {
	switch r {
	case RoleGroup, RoleScrollArea, RoleList, RoleSplitGroup:
		return true
	}
	return false
}

// Subrole is a fine-grained accessibility element type.
type Subrole string

const (
	SubroleNotificationAlert      Subrole = "AXNotificationCenterAlert"
	SubroleNotificationAlertStack Subrole = "AXNotificationCenterAlertStack"
)

// NotificationSubroles are the subroles that mark a dismissable notification group.
var NotificationSubroles = []Subrole{SubroleNotificationAlert, SubroleNotificationAlertStack}

// IsNotification reports whether s marks a notification alert or alert stack.
func (s Subrole) IsNotification() bool {
	switch s {
	case SubroleNotificationAlert, SubroleNotificationAlertStack:
		return true
	}
	return false
}

// DismissAction is the human-readable name of an action that closes a notification.
type DismissAction string

const (
	ActionClose    DismissAction = "Close"
	ActionClearAll DismissAction = "Clear All"
)

// DismissActions lists the accepted dismiss actions.
var DismissActions = []DismissAction{ActionClose, ActionClearAll}

// Token returns the fragment embedded in a raw action descriptor, e.g. "Name:Close".
func (a DismissAction) Token() string {
	return "Name:" + string(a)
}

// IsDismissAction reports whether a raw action descriptor names one of the
// dismiss actions. Descriptors are unstructured strings such as
// "Name:Close\nTarget:0x0\nSelector:(null)", so matching is by containment.
func IsDismissAction(descriptor string) bool {
	for _, a := range DismissActions {
		if strings.Contains(descriptor, a.Token()) {
			return true
		}
	}
	return false
}

// FirstDismissAction returns the first descriptor in actions that names a
// dismiss action.
func FirstDismissAction(actions []string) (string, bool) {
	for _, a := range actions {
		if IsDismissAction(a) {
			return a, true
		}
	}
	return "", false
}
