//go:build js && wasm

package origin

import "syscall/js"

// BrowserLocation reads window.location.href each time it is consulted, so a
// single value can be handed to every resolution on the page.
func BrowserLocation() Location {
	return LocationFunc(func() string {
		loc := js.Global().Get("location")
		if loc.IsUndefined() || loc.IsNull() {
			return ""
		}
		href := loc.Get("href")
		if href.Type() != js.TypeString {
			return ""
		}
		return href.String()
	})
}
