package dissolve

// Swapper copies one destination pixel into the working image. The
// transition only ever reports coordinates; whatever owns the pixel
// buffers decides what a swap means.
type Swapper interface {
	Swap(x, y int)
}

// SwapperFunc adapts a plain function to the Swapper interface.
type SwapperFunc func(x, y int)

func (f SwapperFunc) Swap(x, y int) { f(x, y) }
