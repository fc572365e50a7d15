package component

import "github.com/milk9111/ledgehop/parallax"

type Parallax struct {
	Field *parallax.Field
}

var ParallaxComponent = NewComponent[Parallax]()
