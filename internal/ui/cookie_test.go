package ui_test

import (
	"testing"

	"hbnb_web/internal/ui"
)

func TestGetCookie(t *testing.T) {
	cases := []struct {
		name    string
		cookies string
		want    string
		found   bool
	}{
		{"only cookie", "token=abc", "abc", true},
		{"first of many", "token=abc; theme=dark", "abc", true},
		{"last of many", "theme=dark; token=abc", "abc", true},
		{"middle", "a=1; token=abc; b=2", "abc", true},
		{"value with equals", "token=a=b=c; x=y", "a=b=c", true},
		{"empty value", "token=; x=y", "", true},
		{"absent", "theme=dark", "", false},
		{"empty jar", "", "", false},
		{"suffix name is not a match", "mytoken=abc", "", false},
		{"duplicate name", "token=a; token=b", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ui.GetCookie(tc.cookies, "token")
			if got != tc.want || ok != tc.found {
				t.Fatalf("GetCookie(%q) = %q, %v; want %q, %v", tc.cookies, got, ok, tc.want, tc.found)
			}
		})
	}
}
