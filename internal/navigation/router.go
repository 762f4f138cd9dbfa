package navigation

import (
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/catatumbo/nube-catatumbo/internal/model"
)

// Router tracks which screen is active
type Router struct {
	mu        sync.Mutex
	screens   []model.Screen
	index     map[model.ScreenID]int
	back      map[model.ScreenID]model.ScreenID
	presenter Presenter
	log       logrus.FieldLogger
	onChange  func(model.ScreenID)
}

// NewRouter creates a router over the given screens, none of them active.
// A nil presenter is allowed; a nil logger falls back to the standard logger.
func NewRouter(presenter Presenter, logger logrus.FieldLogger, ids ...model.ScreenID) *Router {
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	r := &Router{
		index:     make(map[model.ScreenID]int, len(ids)),
		back:      make(map[model.ScreenID]model.ScreenID),
		presenter: presenter,
		log:       logger.WithField("component", "router"),
	}
	for _, id := range ids {
		if _, dup := r.index[id]; dup {
			continue
		}
		r.index[id] = len(r.screens)
		r.screens = append(r.screens, model.Screen{ID: id})
	}
	return r
}

// SetChangeCallback sets a callback fired after every successful navigation
func (r *Router) SetChangeCallback(callback func(model.ScreenID)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.onChange = callback
}

// NavigateTo deactivates every active screen and activates id. An unknown id
// leaves no screen active.
func (r *Router) NavigateTo(id model.ScreenID) {
	r.mu.Lock()

	var hidden []model.ScreenID
	for i := range r.screens {
		if r.screens[i].Active {
			r.screens[i].Active = false
			hidden = append(hidden, r.screens[i].ID)
		}
	}

	i, known := r.index[id]
	if known {
		r.screens[i].Active = true
	}
	onChange := r.onChange
	r.mu.Unlock()

	if r.presenter != nil {
		for _, h := range hidden {
			r.presenter.HideScreen(h)
		}
	}

	if !known {
		r.log.WithField("screen", id).Debug("navigation to unknown screen ignored")
		return
	}

	if r.presenter != nil {
		r.presenter.ShowScreen(id)
		r.presenter.ScrollToTop(id)
	}
	r.log.WithField("screen", id).Debug("screen activated")

	if onChange != nil {
		onChange(id)
	}
}

// Active returns the active screen, if any
func (r *Router) Active() (model.ScreenID, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, s := range r.screens {
		if s.Active {
			return s.ID, true
		}
	}
	return "", false
}

// Screens returns a snapshot of every screen in declaration order
func (r *Router) Screens() []model.Screen {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]model.Screen, len(r.screens))
	copy(out, r.screens)
	return out
}

// SetBackTarget binds the back control of screen from to screen to
func (r *Router) SetBackTarget(from, to model.ScreenID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.back[from] = to
}

// BackTarget returns where the back control of id leads
func (r *Router) BackTarget(id model.ScreenID) (model.ScreenID, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	to, ok := r.back[id]
	return to, ok
}

// Back activates the back target of the active screen. It returns false when
// no screen is active or the active screen has no back control.
func (r *Router) Back() bool {
	active, ok := r.Active()
	if !ok {
		return false
	}

	to, ok := r.BackTarget(active)
	if !ok {
		return false
	}

	r.NavigateTo(to)
	return true
}
