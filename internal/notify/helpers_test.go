package notify

import (
	"testing"

	"github.com/mj1618/nc-clear/internal/model"
	"github.com/mj1618/nc-clear/internal/platform"
	"github.com/mj1618/nc-clear/internal/platform/fake"
	"github.com/stretchr/testify/require"
)

const testPID = 4242

func alert(desc string, actions ...string) model.Element {
	return model.Element{
		Role:        string(model.RoleGroup),
		Subrole:     string(model.SubroleNotificationAlert),
		Description: desc,
		Actions:     actions,
	}
}

func stack(desc string, actions ...string) model.Element {
	el := alert(desc, actions...)
	el.Subrole = string(model.SubroleNotificationAlertStack)
	return el
}

func group(children ...model.Element) model.Element {
	if children == nil {
		children = []model.Element{}
	}
	return model.Element{Role: string(model.RoleGroup), Children: children}
}

// panel builds the NotificationCenter layout: window > group > group > alerts.
func panel(alerts ...model.Element) *fake.App {
	return &fake.App{Windows: []model.Element{
		{Role: "AXWindow", Children: []model.Element{group(group(alerts...))}},
	}}
}

// roots wraps tree as the borrowed children of a fake window and returns
// them with a cleanup that releases every acquired handle.
func roots(t *testing.T, ax *fake.Accessibility, tree ...model.Element) []platform.Element {
	t.Helper()
	ax.AddApp("Tree", 1, &fake.App{Windows: []model.Element{{Role: "AXWindow", Children: tree}}})

	root, err := ax.CreateApplication(1)
	require.NoError(t, err)
	windows, ok := ax.ElementsAttribute(root, model.AttrWindows)
	require.True(t, ok)
	children, ok := ax.ElementsAttribute(windows.Elements()[0], model.AttrChildren)
	require.True(t, ok)

	t.Cleanup(func() {
		children.Release()
		windows.Release()
		root.Release()
	})
	return children.Elements()
}

func descriptions(ax platform.Accessibility, groups []Group) []string {
	out := make([]string, len(groups))
	for i, g := range groups {
		out[i] = Describe(ax, g).Description
	}
	return out
}
