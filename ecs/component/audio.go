package component

// SoundCues names the clip played for each movement event of an entity.
// Empty names are silent.
type SoundCues struct {
	Jump   string
	Land   string
	Dash   string
	Hazard string
}

var SoundCuesComponent = NewComponent[SoundCues]()
