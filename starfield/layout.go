package starfield

// Line numbers of the init block are `100 * (initOffset + i) + suffix`.
const initOffset = 10

// Footer begins here unless the init block reaches it.
const footerStart = 2200

const (
	dxSuffix    = 0
	dySuffix    = 5
	colorSuffix = 10
	phaseSuffix = 15
)

func initLine(star int, suffix uint) uint {
	return uint(100*(initOffset+star)) + suffix
}

// footerLine returns the first line number of the animation loop for `stars` stars.
func footerLine(stars int) uint {
	start := uint(100 * (initOffset + stars + 1))
	if start < footerStart {
		return footerStart
	}
	return start
}
