package addsub

import (
	"strconv"
	"strings"
)

// ParamTable is the part of the block configuration that generated code
// needs: one sign token per inport and the saturation flag.
type ParamTable struct {
	Signs                []string `json:"signs"`
	IsOverflowSaturation bool     `json:"isOverflowSaturation"`
}

// ParamTable returns the code generation parameters of the block.
func (s Spec) ParamTable() ParamTable {
	t := ParamTable{
		Signs:                make([]string, len(s.Signs)),
		IsOverflowSaturation: s.SaturateOnOverflow,
	}

	for i, sign := range s.Signs {
		t.Signs[i] = sign.Token()
	}

	return t
}

// SignsVector renders the sign tokens as a vector of quoted strings, for
// example ["+", "-", "+"].
func (t ParamTable) SignsVector() string {
	quoted := make([]string, len(t.Signs))
	for i, s := range t.Signs {
		quoted[i] = strconv.Quote(s)
	}

	return "[" + strings.Join(quoted, ", ") + "]"
}
