// Package inputmix is an input-abstraction layer for [Ebitengine] games.
//
// It normalizes keyboard and gamepad signals into two composable
// primitives: an [Axis], a continuous value in [-1, 1], and a [Button],
// which is down or up and remembers the tick of its last press and release.
// Virtual axes and buttons aggregate any number of physical inputs under one
// stable logical name.
//
// # Quick start
//
// Create a [Mixer], listen to a device source, bind virtual inputs and call
// [Mixer.Tick] once per frame before reading them:
//
//	mixer := inputmix.NewMixer()
//	mixer.Listen(inputmix.NewEbitenSource())
//
//	jump := mixer.CreateButton("jump")
//	_ = jump.Bind("Space", "Gamepad.Button0")
//
//	moveX := mixer.CreateAxis("moveX")
//	_ = moveX.Bind("-ArrowLeft", "ArrowRight", "Gamepad.Axis0")
//
//	func (g *Game) Update() error {
//		g.mixer.Tick()
//		if jump.WasPressed() {
//			// ...
//		}
//		g.x += moveX.Value() * speed
//		return nil
//	}
//
// # Ids
//
// Keyboard ids are physical key names as reported by the source, e.g. "A",
// "Space" or "ArrowUp" with [EbitenSource]. Gamepad ids have the form
// "Gamepad<N>.Button<M>" or "Gamepad<N>.Axis<M>"; N may be omitted to use the
// default gamepad index of the lookup.
//
// A leading "-" inverts an axis, or a button used as an axis ("-KeyA" reads
// -1 while A is held). A following "!" inverts a button so it counts as down
// while the key is up ("!Shift").
//
// # Ticks and edges
//
// A single [Clock] is shared by every node. [Button.WasPressed] and
// [Button.WasReleased] are true only during the tick on which the edge
// happened. Source callbacks only buffer raw events; node state changes
// inside Tick, so values never change in the middle of a frame.
//
// # ECS
//
// Button edges can be forwarded into a [Donburi] world with the adapter in
// inputmix/ecs.
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package inputmix
