package notify

import (
	"github.com/mj1618/nc-clear/internal/logger"
	"github.com/mj1618/nc-clear/internal/model"
	"github.com/mj1618/nc-clear/internal/platform"
)

// Group is a notification alert or alert stack. Groups returned by
// FindAlerts and Locate are owned handles; release them with ReleaseAll.
type Group platform.Element

// FindAlerts walks elements depth-first, pre-order, and returns every
// element whose subrole is a notification subrole.
//
// Elements without a role are skipped. A notification is collected without
// looking at its children. Any other element is descended into only when its
// role is a container role.
func FindAlerts(ax platform.Accessibility, elements []platform.Element) []Group {
	var alerts []Group

	for _, el := range elements {
		role, ok := ax.StringAttribute(el, model.AttrRole)
		if !ok {
			continue
		}

		if subrole, ok := ax.StringAttribute(el, model.AttrSubrole); ok && model.Subrole(subrole).IsNotification() {
			logger.Logger.Debugw("Found notification alert", "subrole", subrole)
			alerts = append(alerts, el.Retain())
			continue
		}

		if !model.Role(role).IsContainer() {
			continue
		}

		logger.Logger.Debugw("Entering container", "role", role)
		children, ok := ax.ElementsAttribute(el, model.AttrChildren)
		if !ok {
			continue
		}
		alerts = append(alerts, FindAlerts(ax, children.Elements())...)
		children.Release()
	}

	return alerts
}

// ReleaseAll releases every group.
func ReleaseAll(groups []Group) {
	for _, g := range groups {
		if g != nil {
			g.Release()
		}
	}
}

// Describe snapshots the attributes of a group for reporting.
func Describe(ax platform.Accessibility, g Group) model.Element {
	var el model.Element
	el.Role, _ = ax.StringAttribute(g, model.AttrRole)
	el.Subrole, _ = ax.StringAttribute(g, model.AttrSubrole)
	el.Description, _ = ax.StringAttribute(g, model.AttrDescription)
	el.Actions, _ = ax.ActionNames(g)
	return el
}
