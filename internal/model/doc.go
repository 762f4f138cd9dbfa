package model

// Package model defines domain data structures shared across the app: screens,
// the simulated download job, persisted progress records, catalog resources and
// swipe directions. Structures are plain values so they can be copied freely
// between the core components and the UI.
