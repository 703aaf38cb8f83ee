package engine

// DefaultPlugins registers the built-in components and inserts the Window,
// AssetServer, Keyboard, MouseButtons and Events[FileDragAndDrop] resources.
type DefaultPlugins struct {
	Window    Window
	AssetRoot string
}

func (p DefaultPlugins) Build(app *App) {
	RegisterComponent[Transform](app)
	RegisterComponent[Camera2D](app)
	RegisterComponent[Text2D](app)

	window := p.Window
	if window.Title == "" {
		window.Title = "App"
	}
	if window.Width <= 0 {
		window.Width = 1280
	}
	if window.Height <= 0 {
		window.Height = 720
	}

	root := p.AssetRoot
	if root == "" {
		root = "assets"
	}

	app.InsertResource(&window).
		InsertResource(&AssetServer{Root: root}).
		InsertResource(&Keyboard{}).
		InsertResource(&MouseButtons{}).
		InsertResource(&Events[FileDragAndDrop]{})
}
