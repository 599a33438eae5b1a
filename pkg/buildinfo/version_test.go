package buildinfo

import (
	"strings"
	"testing"
)

func TestTemplate(t *testing.T) {
	tmpl := Template()
	if !strings.HasPrefix(tmpl, "{{.Name}} version ") {
		t.Errorf("Template() = %q, should start with cobra name placeholder", tmpl)
	}
	if !strings.Contains(tmpl, Version) {
		t.Errorf("Template() = %q, should contain version %q", tmpl, Version)
	}
}

func TestUserAgent(t *testing.T) {
	if got, want := UserAgent(), "pkgsync/"+Version; got != want {
		t.Errorf("UserAgent() = %q, want %q", got, want)
	}
}
