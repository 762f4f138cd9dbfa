package ui

import (
	"strings"
	"testing"
)

func TestLocalization_DefaultLanguage(t *testing.T) {
	l := NewLocalization()
	if l.GetCurrentLanguage() != "es" {
		t.Fatalf("expected es, got %s", l.GetCurrentLanguage())
	}
	if got := l.GetText(KeyLibrary); got != "Biblioteca" {
		t.Errorf("expected Biblioteca, got %q", got)
	}
}

func TestLocalization_SetLanguage(t *testing.T) {
	l := NewLocalization()
	l.SetLanguage("en")
	if l.GetCurrentLanguage() != "en" {
		t.Fatalf("expected en, got %s", l.GetCurrentLanguage())
	}
	if got := l.GetText(KeyLibrary); got != "Library" {
		t.Errorf("expected Library, got %q", got)
	}

	// unknown codes are ignored
	l.SetLanguage("xx")
	if l.GetCurrentLanguage() != "en" {
		t.Errorf("unknown language should be ignored, got %s", l.GetCurrentLanguage())
	}
}

func TestLocalization_Fallback(t *testing.T) {
	l := NewLocalization()
	l.SetLanguage("en")
	delete(l.texts["en"], KeyTagline)

	if got := l.GetText(KeyTagline); got != l.texts["es"][KeyTagline] {
		t.Errorf("missing english text should fall back to spanish, got %q", got)
	}
	if got := l.GetText("no_such_key"); got != "no_such_key" {
		t.Errorf("unknown key should be returned as is, got %q", got)
	}
}

func TestLocalization_AllKeysTranslated(t *testing.T) {
	l := NewLocalization()
	for key := range l.texts["es"] {
		if _, ok := l.texts["en"][key]; !ok {
			t.Errorf("key %s has no english text", key)
		}
	}
}

func TestLocalization_Messages(t *testing.T) {
	l := NewLocalization()

	if got := l.DownloadCompleted("Cacao"); got != "✓ Descarga completada: Cacao" {
		t.Errorf("unexpected completion text %q", got)
	}
	if got := l.DownloadBusy("Cacao"); !strings.Contains(got, "Cacao") {
		t.Errorf("busy text should name the running download, got %q", got)
	}
	if got := l.DevicesFound("Cacao"); got != l.GetText(KeyDevicesFound) {
		t.Errorf("unexpected devices text %q", got)
	}
	if got := l.Format(KeySavedProgress, 40); got != "Guardado: 40%" {
		t.Errorf("unexpected saved progress text %q", got)
	}
}
