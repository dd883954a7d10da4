package reelmark

import "embed"

//go:embed static/*.html
var EmbeddedPages embed.FS
