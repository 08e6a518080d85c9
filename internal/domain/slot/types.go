package slot

import "errors"

var ErrInvalidType = errors.New("invalid slot type")

type Type string

const (
	TypeFree Type = "FREE"
	TypeAd   Type = "AD"
)

func (t Type) String() string {
	return string(t)
}

func (t Type) IsValid() bool {
	switch t {
	case TypeFree, TypeAd:
		return true
	default:
		return false
	}
}

func ParseType(s string) (Type, error) {
	t := Type(s)
	if !t.IsValid() {
		return "", ErrInvalidType
	}
	return t, nil
}
