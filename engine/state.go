package engine

// tristate is a write-once cached boolean.
type tristate uint8

const (
	unknown tristate = iota
	no
	yes
)

func stateOf(b bool) tristate {
	if b {
		return yes
	}

	return no
}

func (t tristate) known() bool {
	return t != unknown
}

func (t tristate) value() bool {
	return t == yes
}

func (t tristate) String() string {
	switch t {
	case no:
		return "false"
	case yes:
		return "true"
	default:
		return "unknown"
	}
}
