package script

import (
	_ "embed"
)

//go:embed demo.yaml
var demo []byte

// Demo returns the sample session used by `tabdo ui --demo`.
func Demo() []Step {
	steps, err := Parse(demo)
	if err != nil {
		panic(err)
	}
	return steps
}
