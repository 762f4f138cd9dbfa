package ui

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"

	"github.com/catatumbo/nube-catatumbo/internal/model"
	"github.com/catatumbo/nube-catatumbo/internal/schedule"
)

func newTestStack(t *testing.T) (*ScreenStack, *schedule.Manual) {
	t.Helper()
	test.NewApp()
	w := test.NewWindow(nil)
	w.Resize(fyne.NewSize(WindowWidth, WindowHeight))
	t.Cleanup(w.Close)

	clock := schedule.NewManual()
	stack := NewScreenStack(NewToaster(w.Canvas(), clock))
	for _, id := range model.AllScreens() {
		stack.AddScreen(id, widget.NewLabel(string(id)))
	}
	w.SetContent(stack.Container())
	return stack, clock
}

func TestScreenStack_ScreensStartHidden(t *testing.T) {
	stack, _ := newTestStack(t)
	for _, id := range model.AllScreens() {
		if stack.Visible(id) {
			t.Errorf("screen %s should start hidden", id)
		}
	}
}

func TestScreenStack_ShowHide(t *testing.T) {
	stack, _ := newTestStack(t)

	stack.ShowScreen(model.ScreenLibrary)
	if !stack.Visible(model.ScreenLibrary) {
		t.Fatal("library should be visible")
	}

	stack.HideScreen(model.ScreenLibrary)
	if stack.Visible(model.ScreenLibrary) {
		t.Error("library should be hidden")
	}

	// unknown ids are ignored
	stack.ShowScreen(model.ScreenID("settings"))
	stack.ScrollToTop(model.ScreenID("settings"))
	if stack.Visible(model.ScreenID("settings")) {
		t.Error("unknown screen cannot be visible")
	}
}

func TestScreenStack_SetScreenContentKeepsVisibility(t *testing.T) {
	stack, _ := newTestStack(t)
	stack.ShowScreen(model.ScreenHome)

	stack.SetScreenContent(model.ScreenHome, widget.NewLabel("rebuilt"))
	if !stack.Visible(model.ScreenHome) {
		t.Error("replacing content should not hide the screen")
	}
}

func TestScreenStack_Progress(t *testing.T) {
	stack, _ := newTestStack(t)
	title, size, bar, percent := stack.DownloadWidgets()

	stack.SetDownloadInfo("Cacao", "45 MB")
	stack.SetProgress(model.DownloadJob{Percent: 40, Status: model.JobStatusDownloading})

	if title.Text != "Cacao" || size.Text != "45 MB" {
		t.Errorf("unexpected download info %q %q", title.Text, size.Text)
	}
	if bar.Value != 0.4 {
		t.Errorf("expected bar at 0.4, got %v", bar.Value)
	}
	if percent.Text != "40%" {
		t.Errorf("expected 40%%, got %q", percent.Text)
	}
}

func TestScreenStack_ViewerTitleCallback(t *testing.T) {
	stack, _ := newTestStack(t)
	var opened string
	stack.SetViewerTitleCallback(func(title string) { opened = title })

	stack.SetViewerTitle("Cacao")
	if stack.ViewerTitleLabel().Text != "Cacao" {
		t.Errorf("unexpected viewer title %q", stack.ViewerTitleLabel().Text)
	}
	if opened != "Cacao" {
		t.Errorf("callback not fired, got %q", opened)
	}
}

func TestToaster_AutoHide(t *testing.T) {
	stack, clock := newTestStack(t)

	stack.Notify("hola")
	toaster := stack.Toaster()
	if !toaster.Visible() || toaster.Message() != "hola" {
		t.Fatalf("toast should show hola, visible=%v message=%q", toaster.Visible(), toaster.Message())
	}

	clock.Advance(ToastAutoHide - 1)
	if !toaster.Visible() {
		t.Fatal("toast hidden too early")
	}
	clock.Advance(1)
	if toaster.Visible() {
		t.Error("toast should hide after the auto-hide delay")
	}
}

func TestToaster_ReplaceRestartsTimer(t *testing.T) {
	stack, clock := newTestStack(t)
	toaster := stack.Toaster()

	toaster.Show("first")
	clock.Advance(ToastAutoHide / 2)
	toaster.Show("second")
	clock.Advance(ToastAutoHide / 2)

	if !toaster.Visible() || toaster.Message() != "second" {
		t.Fatalf("second toast should still be visible, visible=%v message=%q", toaster.Visible(), toaster.Message())
	}
	clock.Advance(ToastAutoHide / 2)
	if toaster.Visible() {
		t.Error("second toast should hide after its own delay")
	}
}
