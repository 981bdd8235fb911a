package curve

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// Scripts define `ease := func(t) { ... }`; the dispatch line below is
// appended so the compiled program can be re-run per sample.
const easeDispatchScript = `
__out = ease(__t)
`

// CompileScript compiles a tengo easing script and bakes it into a LUT.
// The script may import the tengo "math" module.
func CompileScript(name string, src []byte) (*LUT, error) {
	script := tengo.NewScript(append(append([]byte{}, src...), []byte(easeDispatchScript)...))
	_ = script.Add("__t", 0.0)
	_ = script.Add("__out", 0.0)
	script.SetImports(stdlib.GetModuleMap("math"))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("curve: compile %s: %w", name, err)
	}

	lut, err := BakeFunc(func(t float64) (float64, error) {
		if err := compiled.Set("__t", t); err != nil {
			return 0, err
		}
		if err := compiled.Run(); err != nil {
			return 0, err
		}
		out := compiled.Get("__out")
		switch out.ValueType() {
		case "int", "float":
			return out.Float(), nil
		default:
			return 0, fmt.Errorf("ease returned %s, want a number", out.ValueType())
		}
	}, LUTSize)
	if err != nil {
		return nil, fmt.Errorf("curve: script %s: %w", name, err)
	}
	return lut, nil
}
