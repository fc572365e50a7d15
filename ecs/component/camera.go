package component

import "github.com/milk9111/ledgehop/camera"

type Camera struct {
	TargetName string
	Follower   *camera.Follower
}

var CameraComponent = NewComponent[Camera]()
