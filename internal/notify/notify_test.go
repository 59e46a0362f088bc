package notify

import (
	"strings"
	"testing"

	"cropguide/internal/editor"
	"cropguide/internal/selection"
)

func TestResultMessage(t *testing.T) {
	res := editor.Result{
		Selection:  selection.Rect{Left: 1, Top: 2, Right: 101, Bottom: 202},
		HasCrop:    true,
		CropWidth:  100,
		CropHeight: 200,
	}
	title, msg := ResultMessage(res)
	if title == "" || !strings.Contains(msg, "100x200") {
		t.Errorf("ResultMessage() = %q, %q", title, msg)
	}

	_, msg = ResultMessage(editor.Result{})
	if strings.Contains(msg, "x") {
		t.Errorf("ResultMessage(empty) = %q", msg)
	}
}

func TestNewNotifier(t *testing.T) {
	if NewNotifier() == nil {
		t.Fatal("NewNotifier() = nil")
	}
}
