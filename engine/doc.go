// Package engine is a small application layer over the ecs package.
//
// An App owns one ecs.Storage and two schedulers: Startup, which runs exactly
// once before the first frame, and Update, which runs every tick. Plugins add
// components, resources (singletons) and systems to an App; a Runner decides
// how ticks are produced. The ebitenhost package provides the windowed runner;
// RunOnce and RunFor are headless.
//
// Nothing in this package talks to a window or GPU, so systems written against
// it can be exercised in tests by setting resources such as Keyboard and
// Window directly and calling App.Tick.
package engine
