package shell

// Package shell is the public surface of the app consumed by the UI glue:
// navigation, simulated downloads, the viewer, sharing and saved progress. It
// owns the session state and the top-level fault guard.
