// Package gesture turns raw multi-point touch and pointer input into semantic
// gestures (tap, pan, swipe, pinch, rotate, hold, ...) and dispatches them to
// handlers bound on screen targets.
//
// # Quick start
//
// Create an [Engine], bind handlers to a target and feed it input. Targets
// are any non-nil pointer identifying a visual element:
//
//	engine := gesture.NewEngine(nil) // nil = built-in gestures
//	button := &Button{}
//	engine.Bind(button, "tap", func(r gesture.Result) {
//		fmt.Println("tapped at", r.Center)
//	}, false)
//
// The chainable form binds several gestures at once:
//
//	b, _ := engine.On(photo)
//	b.Pan(onPan, false).Pinch(onPinch, false).Rotate(onRotate, false)
//
// # Input
//
// The engine consumes normalized contact lifecycle events through
// [Engine.HandleRaw]: a start, any number of moves, then an end or a cancel,
// keyed by the host's contact id. With [Ebitengine], [EbitenSource] does this
// for touch and mouse input each frame, resolving the target under a new
// contact with a [HitList]:
//
//	var hits gesture.HitList
//	hits.Add(button, gesture.HitRect{Width: 120, Height: 40})
//	src := gesture.NewEbitenSource(engine, hits.HitTest)
//	// in Game.Update:
//	src.Update()
//
// [Injector] and [Script] produce synthetic input on a virtual clock for
// tests and replays.
//
// # Recognition
//
// Each (target, gesture key) pair gets its own [Detector], a small state
// machine moving from idle to candidate to matched or failed. Detectors run
// side by side on the same input and never suppress one another: one fast
// drag can fire both pan and swipe. Thresholds come from the registry
// defaults and can be changed with [Engine.SetConfig] or [Engine.LoadConfig].
//
// Custom gestures are registered on a [Registry] with [Registry.Register]
// and [NewFactory].
//
// # Dispatch
//
// All work for one raw event, including every handler it triggers, finishes
// before the next event is processed. Handlers run in binding order; a
// panicking handler is logged and reported through [Engine.OnHandlerError]
// without stopping the others.
//
// ECS integration (via [Donburi]) lives in gesture/ecs.
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package gesture
