// Package notify finds NotificationCenter alerts in the accessibility tree
// and dismisses them.
//
// Locate walks from the NotificationCenter application element down to the
// alert container and classifies what it finds with FindAlerts. Close then
// performs one dismiss action per group, last discovered first.
package notify
