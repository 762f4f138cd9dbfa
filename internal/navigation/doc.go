package navigation

// Package navigation implements the screen router: a fixed, closed set of
// screens of which at most one is active. Rendering is delegated to a
// Presenter so the router never touches widgets directly.
