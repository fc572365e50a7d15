package component

// MusicRequest is a one-shot request for global music playback. The music
// system replaces the current track and removes the request.
type MusicRequest struct {
	Track string
	Loop  bool
}

var MusicRequestComponent = NewComponent[MusicRequest]()
