package ui

// Package ui contains the Fyne user interface of Nube Catatumbo. It renders the
// five screens, implements the shell's View on top of a stack of scroll
// containers, and wires buttons, touch, drag and keyboard input to the shell.
// All UI strings are localized via Localization.
