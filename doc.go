// Package easel is a beginner-friendly 2D graphics, input, and text-IO toolkit
// built on Ebitengine, intended for teaching introductory programming.
//
// Everything hangs off an App, which owns the window, a stack of numbered
// drawing layers, keyboard/mouse/touch state, a console panel for sequential
// text IO, and a simple widget panel. A student program is an ordinary
// function that receives the App and calls drawing primitives, scene objects
// (Grid, Hitbox, Sprite, Turtle), and blocking helpers (ReadLine, Sleep,
// turtle motion) in straight-line code while the frame loop runs underneath.
//
//	app := easel.NewApp(easel.Config{Title: "hello", Width: 640, Height: 480})
//	app.Run(func(a *easel.App) {
//		a.SetLayer(0)
//		a.FillCircle(320, 240, 50, "tomato")
//	})
//
// Console input can be pre-seeded and program output compared against an
// expected transcript through a percent-encoded query string (Config.Query),
// which makes student programs replayable and gradable without a human at
// the keyboard.
package easel
