package entity

// Scene 是会话所处的界面阶段：Menu → Playing → Over。
type Scene int

const (
	SceneMenu Scene = iota
	ScenePlaying
	SceneOver
)

func (s Scene) String() string {
	switch s {
	case SceneMenu:
		return "menu"
	case ScenePlaying:
		return "playing"
	case SceneOver:
		return "over"
	default:
		return "unknown"
	}
}

func (s Scene) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Scene) UnmarshalText(text []byte) error {
	switch string(text) {
	case "menu":
		*s = SceneMenu
	case "playing":
		*s = ScenePlaying
	case "over":
		*s = SceneOver
	default:
		return ErrBadScene.WithData("scene", string(text))
	}
	return nil
}
