package cmd

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/mj1618/nc-clear/internal/model"
	"github.com/mj1618/nc-clear/internal/notify"
	"github.com/mj1618/nc-clear/internal/output"
	"github.com/mj1618/nc-clear/internal/platform"
	"github.com/mj1618/nc-clear/internal/platform/fake"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func notificationPanel(alerts ...model.Element) *fake.App {
	return &fake.App{Windows: []model.Element{
		{Role: "AXWindow", Children: []model.Element{
			{Role: "AXGroup", Children: []model.Element{
				{Role: "AXGroup", Children: alerts},
			}},
		}},
	}}
}

func testAlert(desc, subrole string, actions ...string) model.Element {
	return model.Element{Role: "AXGroup", Subrole: subrole, Description: desc, Actions: actions}
}

// run executes a fresh root command against provider and returns stdout.
func run(t *testing.T, provider *platform.Provider, args ...string) (string, error) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("LOG_LEVEL", "error")

	orig := newProvider
	newProvider = func() (*platform.Provider, error) { return provider, nil }
	t.Cleanup(func() { newProvider = orig })

	c := newRootCmd()
	var out bytes.Buffer
	c.SetOut(&out)
	c.SetErr(&bytes.Buffer{})
	c.SetArgs(append([]string{}, args...))
	err := c.Execute()
	return out.String(), err
}

func decodeSummary(t *testing.T, s string) output.Summary {
	t.Helper()
	var summary output.Summary
	require.NoError(t, json.Unmarshal([]byte(s), &summary))
	return summary
}

func TestRootCommand_Version(t *testing.T) {
	if rootCmd.Version == "" {
		t.Error("root command version should be set")
	}
}

func TestRootCommand_Flags(t *testing.T) {
	flags := newRootCmd().Flags()

	tests := []struct {
		name     string
		flagType string
	}{
		{"mode", "string"},
		{"max-workers", "int"},
		{"dry-run", "bool"},
		{"format", "string"},
		{"log-json", "bool"},
	}

	for _, tt := range tests {
		f := flags.Lookup(tt.name)
		if f == nil {
			t.Errorf("expected flag %q not found", tt.name)
			continue
		}
		if f.Value.Type() != tt.flagType {
			t.Errorf("flag %q: expected type %q, got %q", tt.name, tt.flagType, f.Value.Type())
		}
	}
}

func TestRootCommand_RejectsArgs(t *testing.T) {
	_, err := run(t, fake.New().Provider(), "extra")
	assert.Error(t, err)
}

func TestRun_ClosesNotifications(t *testing.T) {
	for _, mode := range []string{"concurrent", "sequential"} {
		t.Run(mode, func(t *testing.T) {
			ax := fake.New()
			ax.AddApp(notify.ProcessName, 99, notificationPanel(
				testAlert("x", "AXNotificationCenterAlert", "Name:Close"),
				testAlert("y", "AXNotificationCenterAlertStack", "Name:Clear All"),
				testAlert("z", "AXNotificationCenterAlert", "AXPress"),
			))

			out, err := run(t, ax.Provider(), "--format", "json", "--mode", mode)
			require.NoError(t, err)

			summary := decodeSummary(t, out)
			assert.Equal(t, mode, summary.Mode)
			assert.Equal(t, 3, summary.Found)
			assert.Equal(t, 2, summary.Closed)
			assert.Empty(t, summary.Groups)
			assert.Zero(t, ax.Live())
		})
	}
}

func TestRun_NothingFoundIsSuccess(t *testing.T) {
	ax := fake.New()
	ax.AddApp(notify.ProcessName, 99, &fake.App{})

	out, err := run(t, ax.Provider())
	require.NoError(t, err)
	assert.Empty(t, out, "no summary without --format")
}

func TestRun_DryRunDoesNotClose(t *testing.T) {
	ax := fake.New()
	ax.AddApp(notify.ProcessName, 99, notificationPanel(
		testAlert("Mail, New message", "AXNotificationCenterAlert", "Name:Close"),
	))

	out, err := run(t, ax.Provider(), "--dry-run", "--format=json")
	require.NoError(t, err)

	summary := decodeSummary(t, out)
	assert.True(t, summary.DryRun)
	assert.Equal(t, 1, summary.Found)
	assert.Zero(t, summary.Closed)
	require.Len(t, summary.Groups, 1)
	assert.Equal(t, "Mail, New message", summary.Groups[0].Description)
	assert.Equal(t, []string{"Name:Close"}, summary.Groups[0].Actions)
	assert.Empty(t, ax.Performed())
}

func TestRun_ProcessNotFound(t *testing.T) {
	_, err := run(t, fake.New().Provider())
	require.Error(t, err)
	assert.True(t, errors.Is(err, notify.ErrProcessNotFound))

	var buf bytes.Buffer
	printError(&buf, err)
	assert.Contains(t, buf.String(), "Error: ")
	assert.Contains(t, buf.String(), "NotificationCenter")
}

func TestRun_ElementCreationFailed(t *testing.T) {
	ax := fake.New()
	ax.AddApp(notify.ProcessName, 99, notificationPanel())
	ax.CreateErr = fake.ErrCreate

	_, err := run(t, ax.Provider())
	assert.True(t, errors.Is(err, notify.ErrElementCreationFailed))
}

func TestRun_PermissionDenied(t *testing.T) {
	ax := fake.New()
	ax.AddApp(notify.ProcessName, 99, notificationPanel(
		testAlert("x", "AXNotificationCenterAlert", "Name:Close"),
	))
	provider := ax.Provider()
	provider.CheckPermission = func() error { return platform.ErrPermissionDenied }

	_, err := run(t, provider)
	assert.True(t, errors.Is(err, platform.ErrPermissionDenied))
	assert.Empty(t, ax.Performed())
}

func TestRun_InvalidMode(t *testing.T) {
	_, err := run(t, fake.New().Provider(), "--mode", "parallel")
	assert.Error(t, err)
}

func TestRun_UnsupportedPlatform(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", dir)

	orig := newProvider
	newProvider = func() (*platform.Provider, error) { return nil, platform.ErrUnsupported }
	defer func() { newProvider = orig }()

	c := newRootCmd()
	c.SetArgs([]string{})
	c.SetOut(&bytes.Buffer{})
	err := c.Execute()
	assert.ErrorIs(t, err, platform.ErrUnsupported)
}
