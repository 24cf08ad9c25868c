package audio

// Sound identifies a game sound effect
type Sound uint8

const (
	SoundFire Sound = iota
	SoundCollision
	SoundHit
	SoundFall
	SoundWin
	SoundDraw
	SoundReject
	SoundReady
	soundCount
)

var soundNames = [soundCount]string{
	SoundFire:      "fire",
	SoundCollision: "collision",
	SoundHit:       "hit",
	SoundFall:      "fall",
	SoundWin:       "win",
	SoundDraw:      "draw",
	SoundReject:    "reject",
	SoundReady:     "ready",
}

func (s Sound) String() string {
	if s < soundCount {
		return soundNames[s]
	}
	return "unknown"
}
