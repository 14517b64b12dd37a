package ui

// Layer draws an overlay or toast onto a canvas that already holds the base
// frame.
type Layer interface {
	Draw(c *Canvas)
}

// LayerFunc is an adapter to allow ordinary functions to act as layers.
type LayerFunc func(c *Canvas)

// Draw implements Layer for LayerFunc.
func (f LayerFunc) Draw(c *Canvas) {
	f(c)
}

// centeredLayer places content in the middle of the board area.
func centeredLayer(content string, topMargin, bottomMargin int) Layer {
	return LayerFunc(func(c *Canvas) {
		if content == "" {
			return
		}
		c.centerOverlay(content, topMargin, bottomMargin)
	})
}

// toastLayer anchors content to the bottom-right corner above the footer.
func toastLayer(content string, bottomMargin int) Layer {
	return LayerFunc(func(c *Canvas) {
		if content == "" {
			return
		}
		c.bottomRightOverlay(content, bottomMargin)
	})
}

// composeLayers draws base and then each layer in order. With no layers the
// base string is returned untouched.
func composeLayers(base string, width, height int, layers ...Layer) string {
	if len(layers) == 0 {
		return base
	}
	canvas := NewCanvas(width, height)
	canvas.DrawStringAt(0, 0, base)
	for _, layer := range layers {
		if layer != nil {
			layer.Draw(canvas)
		}
	}
	return canvas.Render()
}
