package types

type Type string

const (
	TypeInt   Type = "int"
	TypeFloat Type = "float"
	TypeList  Type = "list"
)

func (t Type) String() string {
	return ":" + string(t)
}
