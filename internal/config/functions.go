package config

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/jsvensson/webcore/internal/color"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
)

// MakeShadeFunc creates an HCL function that shades a color lighter or
// darker. Usage: shade("#3498db", 20) or shade("rgb(52, 152, 219)", -10).
func MakeShadeFunc() function.Function {
	return function.New(&function.Spec{
		Description: "Shifts a color lighter or darker by a signed percentage",
		Params: []function.Parameter{
			{
				Name: "color",
				Type: cty.String,
			},
			{
				Name: "percent",
				Type: cty.Number,
			},
		},
		Type: function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			pct, _ := args[1].AsBigFloat().Float64()

			c, err := color.Parse(args[0].AsString())
			if err != nil {
				return cty.NilVal, err
			}

			return cty.StringVal(color.Shade(c, pct).String()), nil
		},
	})
}

// BuildEvalContext creates the HCL evaluation context for theme attributes.
func BuildEvalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Functions: map[string]function.Function{
			"shade": MakeShadeFunc(),
		},
	}
}
