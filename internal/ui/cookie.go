package ui

import "strings"

// GetCookie returns the value between "name=" and the next ';' in a
// document.cookie style string ("a=1; token=xyz"). A name that is missing,
// or that appears more than once, is reported as not found.
func GetCookie(cookies, name string) (string, bool) {
	parts := strings.Split("; "+cookies, "; "+name+"=")
	if len(parts) != 2 {
		return "", false
	}
	v, _, _ := strings.Cut(parts[1], ";")
	return v, true
}
