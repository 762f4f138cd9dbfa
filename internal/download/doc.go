package download

// Package download implements the simulated download pipeline. A single job
// advances on a fixed tick until it reaches 100%, then the shell returns to the
// library screen and a completion notification is emitted. There is no byte
// transfer; progress is purely time driven.
