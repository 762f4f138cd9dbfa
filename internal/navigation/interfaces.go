package navigation

import "github.com/catatumbo/nube-catatumbo/internal/model"

// Presenter renders screen visibility.
type Presenter interface {
	ShowScreen(id model.ScreenID)
	HideScreen(id model.ScreenID)
	ScrollToTop(id model.ScreenID)
}

// Navigator is the subset of the router used by other components.
type Navigator interface {
	NavigateTo(id model.ScreenID)
	Active() (model.ScreenID, bool)
}
