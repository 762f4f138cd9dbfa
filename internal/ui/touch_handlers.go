package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// Card is a tappable panel used for category tiles. It can be focused and
// activated with Enter or Space.
type Card struct {
	widget.BaseWidget

	content    fyne.CanvasObject
	background *canvas.Rectangle
	onTap      func()
	focused    bool
}

var (
	_ fyne.Tappable  = (*Card)(nil)
	_ fyne.Focusable = (*Card)(nil)
)

// NewCard creates a new card around content
func NewCard(content fyne.CanvasObject, onTap func()) *Card {
	c := &Card{
		content: content,
		onTap:   onTap,
	}
	c.ExtendBaseWidget(c)
	return c
}

// Tapped handles taps and clicks
func (c *Card) Tapped(*fyne.PointEvent) {
	c.activate()
}

// FocusGained highlights the card
func (c *Card) FocusGained() {
	c.focused = true
	c.Refresh()
}

// FocusLost removes the highlight
func (c *Card) FocusLost() {
	c.focused = false
	c.Refresh()
}

// TypedRune is ignored; activation keys arrive through TypedKey
func (c *Card) TypedRune(rune) {}

// TypedKey activates the card on Enter or Space
func (c *Card) TypedKey(event *fyne.KeyEvent) {
	switch event.Name {
	case fyne.KeyReturn, fyne.KeyEnter, fyne.KeySpace:
		c.activate()
	}
}

func (c *Card) activate() {
	if c.onTap != nil {
		c.onTap()
	}
}

// MinSize keeps cards comfortably tappable
func (c *Card) MinSize() fyne.Size {
	return c.BaseWidget.MinSize().Max(fyne.NewSize(CardMinWidth, CardMinHeight))
}

// CreateRenderer creates the widget renderer
func (c *Card) CreateRenderer() fyne.WidgetRenderer {
	c.background = canvas.NewRectangle(theme.Color(theme.ColorNameInputBackground))
	c.background.CornerRadius = theme.Size(theme.SizeNameInputRadius)
	c.background.StrokeWidth = 2
	return &cardRenderer{
		card:    c,
		objects: []fyne.CanvasObject{container.NewStack(c.background, container.NewPadded(c.content))},
	}
}

type cardRenderer struct {
	card    *Card
	objects []fyne.CanvasObject
}

func (r *cardRenderer) Layout(size fyne.Size) {
	r.objects[0].Resize(size)
}

func (r *cardRenderer) MinSize() fyne.Size {
	return r.objects[0].MinSize()
}

func (r *cardRenderer) Refresh() {
	r.card.background.FillColor = theme.Color(theme.ColorNameInputBackground)
	if r.card.focused {
		r.card.background.StrokeColor = theme.Color(theme.ColorNameFocus)
	} else {
		r.card.background.StrokeColor = theme.Color(theme.ColorNameSeparator)
	}
	r.card.background.Refresh()
	r.objects[0].Refresh()
}

func (r *cardRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *cardRenderer) Destroy() {}

// MobileButton is a button whose minimum size never drops below a
// comfortable touch target
type MobileButton struct {
	widget.Button
}

// NewMobileButton creates a button tall enough for touch
func NewMobileButton(text string, onTapped func()) *MobileButton {
	btn := &MobileButton{}
	btn.Text = text
	btn.OnTapped = onTapped
	btn.ExtendBaseWidget(btn)
	return btn
}

// MinSize pads the button up to the touch target size
func (b *MobileButton) MinSize() fyne.Size {
	return b.Button.MinSize().Max(fyne.NewSize(MinTouchTargetSize, MobileButtonHeight))
}
