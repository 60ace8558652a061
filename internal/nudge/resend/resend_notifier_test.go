package resend

import (
	"strings"
	"testing"
)

func TestRender(t *testing.T) {
	html, err := render([]string{"guitar"}, []string{"<coding>"})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(html, "<li>guitar</li>") {
		t.Errorf("missing at-risk habit in %q", html)
	}
	if !strings.Contains(html, "&lt;coding&gt;") {
		t.Errorf("expected escaped broken habit in %q", html)
	}
}

func TestRender_OmitsEmptySections(t *testing.T) {
	html, err := render(nil, []string{"coding"})
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(html, "break tomorrow") {
		t.Errorf("unexpected at-risk section in %q", html)
	}
}
