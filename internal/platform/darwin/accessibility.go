//go:build darwin && cgo

package darwin

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework ApplicationServices -framework CoreFoundation -framework Foundation
#include <ApplicationServices/ApplicationServices.h>
#include <stdlib.h>

// Every function returning CFTypeRef follows the Create rule: the caller
// owns the result and must release it. Array items are borrowed.

static CFTypeRef nc_create_application(pid_t pid) {
	return (CFTypeRef)AXUIElementCreateApplication(pid);
}

static CFStringRef nc_cfstring(const char *s) {
	return CFStringCreateWithCString(kCFAllocatorDefault, s, kCFStringEncodingUTF8);
}

static char *nc_cstring(CFStringRef s) {
	CFIndex len = CFStringGetLength(s);
	CFIndex max = CFStringGetMaximumSizeForEncoding(len, kCFStringEncodingUTF8) + 1;
	char *buf = malloc(max);
	if (buf == NULL) {
		return NULL;
	}
	if (!CFStringGetCString(s, buf, max, kCFStringEncodingUTF8)) {
		free(buf);
		return NULL;
	}
	return buf;
}

static CFTypeRef nc_copy_attribute(CFTypeRef el, const char *name) {
	CFStringRef attr = nc_cfstring(name);
	if (attr == NULL) {
		return NULL;
	}
	CFTypeRef value = NULL;
	AXError err = AXUIElementCopyAttributeValue((AXUIElementRef)el, attr, &value);
	CFRelease(attr);
	if (err != kAXErrorSuccess) {
		return NULL;
	}
	return value;
}

static char *nc_copy_string_attribute(CFTypeRef el, const char *name) {
	CFTypeRef value = nc_copy_attribute(el, name);
	if (value == NULL) {
		return NULL;
	}
	char *out = NULL;
	if (CFGetTypeID(value) == CFStringGetTypeID()) {
		out = nc_cstring((CFStringRef)value);
	}
	CFRelease(value);
	return out;
}

static CFTypeRef nc_copy_array_attribute(CFTypeRef el, const char *name) {
	CFTypeRef value = nc_copy_attribute(el, name);
	if (value == NULL) {
		return NULL;
	}
	if (CFGetTypeID(value) != CFArrayGetTypeID()) {
		CFRelease(value);
		return NULL;
	}
	return value;
}

static CFTypeRef nc_copy_action_names(CFTypeRef el) {
	CFArrayRef names = NULL;
	if (AXUIElementCopyActionNames((AXUIElementRef)el, &names) != kAXErrorSuccess) {
		return NULL;
	}
	return (CFTypeRef)names;
}

static long nc_array_count(CFTypeRef arr) {
	return (long)CFArrayGetCount((CFArrayRef)arr);
}

static CFTypeRef nc_array_at(CFTypeRef arr, long i) {
	return CFArrayGetValueAtIndex((CFArrayRef)arr, (CFIndex)i);
}

static char *nc_array_string_at(CFTypeRef arr, long i) {
	CFTypeRef v = nc_array_at(arr, i);
	if (v == NULL || CFGetTypeID(v) != CFStringGetTypeID()) {
		return NULL;
	}
	return nc_cstring((CFStringRef)v);
}

static int nc_perform_action(CFTypeRef el, const char *action) {
	CFStringRef name = nc_cfstring(action);
	if (name == NULL) {
		return 0;
	}
	AXError err = AXUIElementPerformAction((AXUIElementRef)el, name);
	CFRelease(name);
	return err == kAXErrorSuccess;
}

static void nc_retain(CFTypeRef ref) {
	CFRetain(ref);
}

static void nc_release(CFTypeRef ref) {
	CFRelease(ref);
}
*/
import "C"

import (
	"sync/atomic"
	"unsafe"

	"github.com/cockroachdb/errors"
	"github.com/mj1618/nc-clear/internal/platform"
)

// axElement wraps an AXUIElementRef. Owned elements hold one CoreFoundation
// reference; borrowed ones rely on the array they came from.
type axElement struct {
	ref      C.CFTypeRef
	owned    bool
	released atomic.Bool
}

func (e *axElement) Retain() platform.Element {
	C.nc_retain(e.ref)
	return &axElement{ref: e.ref, owned: true}
}

func (e *axElement) Release() {
	if e.owned && e.released.CompareAndSwap(false, true) {
		C.nc_release(e.ref)
	}
}

// DarwinAccessibility implements platform.Accessibility for macOS.
type DarwinAccessibility struct{}

// NewAccessibility creates a new macOS accessibility binding.
func NewAccessibility() *DarwinAccessibility {
	return &DarwinAccessibility{}
}

// CreateApplication returns an owned AXUIElement for the application with pid.
func (a *DarwinAccessibility) CreateApplication(pid int32) (platform.Element, error) {
	ref := C.nc_create_application(C.pid_t(pid))
	if ref == 0 {
		return nil, errors.Newf("AXUIElementCreateApplication returned NULL for pid %d", pid)
	}
	return &axElement{ref: ref, owned: true}, nil
}

func (a *DarwinAccessibility) StringAttribute(el platform.Element, name string) (string, bool) {
	ref, ok := refOf(el)
	if !ok {
		return "", false
	}
	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))

	cValue := C.nc_copy_string_attribute(ref, cName)
	if cValue == nil {
		return "", false
	}
	defer C.free(unsafe.Pointer(cValue))
	return C.GoString(cValue), true
}

func (a *DarwinAccessibility) ElementsAttribute(el platform.Element, name string) (platform.ElementList, bool) {
	ref, ok := refOf(el)
	if !ok {
		return nil, false
	}
	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))

	arr := C.nc_copy_array_attribute(ref, cName)
	if arr == 0 {
		return nil, false
	}

	count := int(C.nc_array_count(arr))
	items := make([]platform.Element, 0, count)
	for i := 0; i < count; i++ {
		item := C.nc_array_at(arr, C.long(i))
		if item == 0 {
			continue
		}
		items = append(items, &axElement{ref: item})
	}
	return platform.ListOf(items, func() { C.nc_release(arr) }), true
}

func (a *DarwinAccessibility) ActionNames(el platform.Element) ([]string, bool) {
	ref, ok := refOf(el)
	if !ok {
		return nil, false
	}
	arr := C.nc_copy_action_names(ref)
	if arr == 0 {
		return nil, false
	}
	defer C.nc_release(arr)

	count := int(C.nc_array_count(arr))
	actions := make([]string, 0, count)
	for i := 0; i < count; i++ {
		cs := C.nc_array_string_at(arr, C.long(i))
		if cs == nil {
			continue
		}
		actions = append(actions, C.GoString(cs))
		C.free(unsafe.Pointer(cs))
	}
	return actions, true
}

func (a *DarwinAccessibility) PerformAction(el platform.Element, action string) bool {
	ref, ok := refOf(el)
	if !ok {
		return false
	}
	cAction := C.CString(action)
	defer C.free(unsafe.Pointer(cAction))
	return C.nc_perform_action(ref, cAction) != 0
}

func refOf(el platform.Element) (C.CFTypeRef, bool) {
	e, ok := el.(*axElement)
	if !ok || e.ref == 0 || e.released.Load() {
		return 0, false
	}
	return e.ref, true
}
