package bindgen

import (
	"go.bytecodealliance.org/wit"
)

// Param is one named parameter or result of an exported function.
type Param struct {
	Name string
	Type wit.Type
}

// Function is one exported entry point. Names are kebab-case; each emitter
// derives its own casing. Getters return (status, value) pairs; emitters
// that cannot express two results turn the trailing ones into out-params.
type Function struct {
	Name    string
	Params  []Param
	Results []Param
}

// Surface is the full exported signature table.
type Surface struct {
	Enums   []*wit.TypeDef
	Records []*wit.TypeDef
	Funcs   []Function
}

func named(name string, kind wit.TypeDefKind) *wit.TypeDef {
	return &wit.TypeDef{Name: &name, Kind: kind}
}

func newEnum(name string, cases ...string) *wit.TypeDef {
	ec := make([]wit.EnumCase, len(cases))
	for i, c := range cases {
		ec[i] = wit.EnumCase{Name: c}
	}
	return named(name, &wit.Enum{Cases: ec})
}

func newRecord(name string, fields ...wit.Field) *wit.TypeDef {
	return named(name, &wit.Record{Fields: fields})
}

// BoundarySurface builds the signature table for the layout boundary.
func BoundarySurface() *Surface {
	statusEnum := newEnum("status",
		"ok",
		"null-tree-pointer", "null-style-pointer", "invalid-node-id",
		"invalid-none", "invalid-auto", "invalid-min-content",
		"invalid-max-content", "invalid-fit-content-px",
		"invalid-fit-content-percent", "invalid-fr",
		"non-finite-value", "invalid-edge",
	)
	unitEnum := newEnum("unit",
		"none", "length", "percent", "min-content", "max-content",
		"fit-content-px", "fit-content-percent", "auto", "fr",
	)
	edgeEnum := newEnum("edge",
		"top", "bottom", "left", "right", "vertical", "horizontal", "all",
	)
	displayEnum := newEnum("display", "block", "flex", "grid", "none")
	positionEnum := newEnum("position", "relative", "absolute")
	overflowEnum := newEnum("overflow", "visible", "clip", "hidden", "scroll")
	flexDirectionEnum := newEnum("flex-direction",
		"row", "column", "row-reverse", "column-reverse")
	flexWrapEnum := newEnum("flex-wrap", "no-wrap", "wrap", "wrap-reverse")
	gridAutoFlowEnum := newEnum("grid-auto-flow",
		"row", "column", "row-dense", "column-dense")

	dimensionRecord := newRecord("dimension",
		wit.Field{Name: "value", Type: wit.F32{}},
		wit.Field{Name: "unit", Type: unitEnum},
	)
	placementRecord := newRecord("grid-placement",
		wit.Field{Name: "start", Type: wit.S16{}},
		wit.Field{Name: "end", Type: wit.S16{}},
		wit.Field{Name: "span", Type: wit.U16{}},
	)
	layoutRecord := newRecord("layout",
		wit.Field{Name: "x", Type: wit.F32{}},
		wit.Field{Name: "y", Type: wit.F32{}},
		wit.Field{Name: "width", Type: wit.F32{}},
		wit.Field{Name: "height", Type: wit.F32{}},
		wit.Field{Name: "content-width", Type: wit.F32{}},
		wit.Field{Name: "content-height", Type: wit.F32{}},
		wit.Field{Name: "border-left", Type: wit.F32{}},
		wit.Field{Name: "border-right", Type: wit.F32{}},
		wit.Field{Name: "border-top", Type: wit.F32{}},
		wit.Field{Name: "border-bottom", Type: wit.F32{}},
	)

	statusResult := func() []Param {
		return []Param{{Name: "status", Type: statusEnum}}
	}
	treeNode := func() []Param {
		return []Param{
			{Name: "tree", Type: wit.U32{}},
			{Name: "node", Type: wit.U64{}},
		}
	}

	funcs := []Function{
		{
			Name:    "tree-new",
			Results: []Param{{Name: "tree", Type: wit.U32{}}},
		},
		{
			Name:    "tree-free",
			Params:  []Param{{Name: "tree", Type: wit.U32{}}},
			Results: statusResult(),
		},
		{
			Name:   "node-new",
			Params: []Param{{Name: "tree", Type: wit.U32{}}},
			Results: []Param{
				{Name: "status", Type: statusEnum},
				{Name: "node", Type: wit.U64{}},
			},
		},
		{
			Name: "node-append-child",
			Params: []Param{
				{Name: "tree", Type: wit.U32{}},
				{Name: "parent", Type: wit.U64{}},
				{Name: "child", Type: wit.U64{}},
			},
			Results: statusResult(),
		},
		{
			Name:   "node-child-count",
			Params: treeNode(),
			Results: []Param{
				{Name: "status", Type: statusEnum},
				{Name: "count", Type: wit.S32{}},
			},
		},
		{
			Name: "tree-compute-layout",
			Params: append(treeNode(),
				Param{Name: "available-width", Type: wit.F32{}},
				Param{Name: "available-height", Type: wit.F32{}},
			),
			Results: statusResult(),
		},
	}

	layoutFields := []string{
		"x", "y", "width", "height", "content-width", "content-height",
		"border-left", "border-right", "border-top", "border-bottom",
	}
	for _, f := range layoutFields {
		funcs = append(funcs, Function{
			Name:   "layout-" + f,
			Params: treeNode(),
			Results: []Param{
				{Name: "status", Type: statusEnum},
				{Name: "value", Type: wit.F32{}},
			},
		})
	}

	dimensionProps := []string{
		"width", "height", "min-width", "min-height", "max-width", "max-height",
		"inset-top", "inset-bottom", "inset-left", "inset-right",
		"margin-top", "margin-bottom", "margin-left", "margin-right",
		"padding-top", "padding-bottom", "padding-left", "padding-right",
		"border-top", "border-bottom", "border-left", "border-right",
		"column-gap", "row-gap", "flex-basis",
	}
	for _, p := range dimensionProps {
		funcs = append(funcs,
			Function{
				Name:   "style-get-" + p,
				Params: treeNode(),
				Results: []Param{
					{Name: "status", Type: statusEnum},
					{Name: "value", Type: dimensionRecord},
				},
			},
			Function{
				Name: "style-set-" + p,
				Params: append(treeNode(),
					Param{Name: "value", Type: wit.F32{}},
					Param{Name: "unit", Type: unitEnum},
				),
				Results: statusResult(),
			},
		)
	}

	floatProps := []string{"aspect-ratio", "scrollbar-width", "flex-grow", "flex-shrink"}
	for _, p := range floatProps {
		funcs = append(funcs,
			Function{
				Name:   "style-get-" + p,
				Params: treeNode(),
				Results: []Param{
					{Name: "status", Type: statusEnum},
					{Name: "value", Type: wit.F32{}},
				},
			},
			Function{
				Name:    "style-set-" + p,
				Params:  append(treeNode(), Param{Name: "value", Type: wit.F32{}}),
				Results: statusResult(),
			},
		)
	}

	enumProps := []struct {
		name string
		typ  wit.Type
	}{
		{"display", displayEnum},
		{"position", positionEnum},
		{"overflow-x", overflowEnum},
		{"overflow-y", overflowEnum},
		{"flex-direction", flexDirectionEnum},
		{"flex-wrap", flexWrapEnum},
		{"grid-auto-flow", gridAutoFlowEnum},
		// Alignment is optional; 0 is the unset state, so these cross as
		// plain integers rather than enum cases.
		{"align-content", wit.S32{}},
		{"align-items", wit.S32{}},
		{"align-self", wit.S32{}},
		{"justify-content", wit.S32{}},
		{"justify-items", wit.S32{}},
		{"justify-self", wit.S32{}},
	}
	for _, p := range enumProps {
		funcs = append(funcs,
			Function{
				Name:   "style-get-" + p.name,
				Params: treeNode(),
				Results: []Param{
					{Name: "status", Type: statusEnum},
					{Name: "value", Type: p.typ},
				},
			},
			Function{
				Name:    "style-set-" + p.name,
				Params:  append(treeNode(), Param{Name: "value", Type: p.typ}),
				Results: statusResult(),
			},
		)
	}

	for _, p := range []string{"margin", "padding", "border", "inset"} {
		funcs = append(funcs, Function{
			Name: "style-set-" + p,
			Params: append(treeNode(),
				Param{Name: "edge", Type: edgeEnum},
				Param{Name: "value", Type: wit.F32{}},
				Param{Name: "unit", Type: unitEnum},
			),
			Results: statusResult(),
		})
	}

	for _, p := range []string{"grid-column", "grid-row"} {
		funcs = append(funcs,
			Function{
				Name:   "style-get-" + p,
				Params: treeNode(),
				Results: []Param{
					{Name: "status", Type: statusEnum},
					{Name: "value", Type: placementRecord},
				},
			},
			Function{
				Name: "style-set-" + p,
				Params: append(treeNode(),
					Param{Name: "start", Type: wit.S16{}},
					Param{Name: "end", Type: wit.S16{}},
					Param{Name: "span", Type: wit.U16{}},
				),
				Results: statusResult(),
			},
		)
	}

	return &Surface{
		Enums: []*wit.TypeDef{
			statusEnum, unitEnum, edgeEnum, displayEnum, positionEnum,
			overflowEnum, flexDirectionEnum, flexWrapEnum, gridAutoFlowEnum,
		},
		Records: []*wit.TypeDef{dimensionRecord, placementRecord, layoutRecord},
		Funcs:   funcs,
	}
}
