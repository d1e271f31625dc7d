package wasmhost

import (
	"context"
	"math"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"

	"github.com/flexframe/layout-boundary/boundary"
	"github.com/flexframe/layout-boundary/engine"
	lberrors "github.com/flexframe/layout-boundary/errors"
	"github.com/flexframe/layout-boundary/style"
)

// ModuleName is the import namespace guests link against.
const ModuleName = "flexframe:layout/boundary"

// Host owns the tree table and registers the boundary surface on a wazero
// runtime. One Host serves one runtime; the table is shared by every guest
// instantiated on it.
type Host struct {
	table *TreeTable
}

// NewHost creates a host with an empty tree table.
func NewHost() *Host {
	return &Host{table: NewTreeTable()}
}

// Table exposes the handle table, mainly so embedders can inspect or drain
// it on shutdown.
func (h *Host) Table() *TreeTable {
	return h.table
}

// Close drops every guest handle.
func (h *Host) Close() {
	h.table.Close()
}

type hostExport struct {
	name    string
	fn      api.GoModuleFunc
	params  []api.ValueType
	results []api.ValueType
}

var (
	i32 = api.ValueTypeI32
	i64 = api.ValueTypeI64
	f32 = api.ValueTypeF32
)

// Instantiate registers the host module on rt and instantiates it. It fails
// if a module with the same name is already registered.
func (h *Host) Instantiate(ctx context.Context, rt wazero.Runtime) (api.Module, error) {
	if rt == nil {
		return nil, lberrors.NilPointer(lberrors.PhaseHost, "runtime")
	}
	builder := rt.NewHostModuleBuilder(ModuleName)
	for _, e := range h.exports() {
		builder.NewFunctionBuilder().
			WithGoModuleFunction(e.fn, e.params, e.results).
			Export(e.name)
	}
	mod, err := builder.Instantiate(ctx)
	if err != nil {
		return nil, lberrors.Registration(ModuleName, "instantiate", err)
	}
	return mod, nil
}

// styleRef resolves a (tree handle, node id) pair to a mutable style
// reference, reporting handle failures in boundary status terms.
func (h *Host) styleRef(handle Handle, node boundary.NodeID) (boundary.StyleMutRef, boundary.Status) {
	tree, ok := h.table.Get(handle)
	if !ok {
		return boundary.StyleMutRef{}, boundary.StatusNullTreePointer
	}
	r := boundary.TreeGetStyleMut(boundary.TreeRefOf(tree), node)
	return r.Value, r.Status
}

func (h *Host) treeRef(handle Handle) (boundary.TreeRef, bool) {
	tree, ok := h.table.Get(handle)
	if !ok {
		return nil, false
	}
	return boundary.TreeRefOf(tree), true
}

// packDimension flattens a wire dimension into one u64: the unit tag in the
// high half, the f32 payload bits in the low half.
func packDimension(d boundary.Dimension) uint64 {
	return uint64(d.Unit)<<32 | uint64(math.Float32bits(d.Value))
}

// packPlacement flattens a grid placement: start line bits 32..47, end line
// bits 16..31, span bits 0..15.
func packPlacement(p boundary.GridPlacement) uint64 {
	return uint64(uint16(p.Start))<<32 | uint64(uint16(p.End))<<16 | uint64(p.Span)
}

func (h *Host) exports() []hostExport {
	exports := []hostExport{
		{
			name:    "tree-new",
			params:  nil,
			results: []api.ValueType{i32},
			fn: func(_ context.Context, _ api.Module, stack []uint64) {
				stack[0] = api.EncodeU32(uint32(h.table.Insert(engine.NewTree())))
			},
		},
		{
			name:    "tree-free",
			params:  []api.ValueType{i32},
			results: []api.ValueType{i32},
			fn: func(_ context.Context, _ api.Module, stack []uint64) {
				if _, ok := h.table.Remove(Handle(api.DecodeU32(stack[0]))); !ok {
					stack[0] = api.EncodeI32(int32(boundary.StatusNullTreePointer))
					return
				}
				stack[0] = api.EncodeI32(int32(boundary.StatusOK))
			},
		},
		{
			name:    "node-new",
			params:  []api.ValueType{i32},
			results: []api.ValueType{i32, i64},
			fn: func(_ context.Context, _ api.Module, stack []uint64) {
				tree, ok := h.treeRef(Handle(api.DecodeU32(stack[0])))
				if !ok {
					stack[0] = api.EncodeI32(int32(boundary.StatusNullTreePointer))
					stack[1] = 0
					return
				}
				r := boundary.TreeNewNode(tree)
				stack[0] = api.EncodeI32(int32(r.Status))
				stack[1] = uint64(r.Value)
			},
		},
		{
			name:    "node-append-child",
			params:  []api.ValueType{i32, i64, i64},
			results: []api.ValueType{i32},
			fn: func(_ context.Context, _ api.Module, stack []uint64) {
				tree, ok := h.treeRef(Handle(api.DecodeU32(stack[0])))
				if !ok {
					stack[0] = api.EncodeI32(int32(boundary.StatusNullTreePointer))
					return
				}
				st := boundary.TreeAppendChild(tree, boundary.NodeID(stack[1]), boundary.NodeID(stack[2]))
				stack[0] = api.EncodeI32(int32(st))
			},
		},
		{
			name:    "node-child-count",
			params:  []api.ValueType{i32, i64},
			results: []api.ValueType{i32, i32},
			fn: func(_ context.Context, _ api.Module, stack []uint64) {
				tree, ok := h.treeRef(Handle(api.DecodeU32(stack[0])))
				if !ok {
					stack[0] = api.EncodeI32(int32(boundary.StatusNullTreePointer))
					stack[1] = 0
					return
				}
				r := boundary.TreeChildCount(tree, boundary.NodeID(stack[1]))
				stack[0] = api.EncodeI32(int32(r.Status))
				stack[1] = api.EncodeI32(r.Value)
			},
		},
		{
			name:    "tree-compute-layout",
			params:  []api.ValueType{i32, i64, f32, f32},
			results: []api.ValueType{i32},
			fn: func(_ context.Context, _ api.Module, stack []uint64) {
				tree, ok := h.treeRef(Handle(api.DecodeU32(stack[0])))
				if !ok {
					stack[0] = api.EncodeI32(int32(boundary.StatusNullTreePointer))
					return
				}
				st := boundary.TreeComputeLayout(tree, boundary.NodeID(stack[1]),
					api.DecodeF32(stack[2]), api.DecodeF32(stack[3]))
				stack[0] = api.EncodeI32(int32(st))
			},
		},
	}
	exports = append(exports, h.layoutExports()...)
	exports = append(exports, h.dimensionExports()...)
	exports = append(exports, h.floatExports()...)
	exports = append(exports, h.enumExports()...)
	exports = append(exports, h.edgeExports()...)
	exports = append(exports, h.gridExports()...)
	return exports
}

func (h *Host) layoutExports() []hostExport {
	fields := []struct {
		name  string
		field func(boundary.Layout) float32
	}{
		{"layout-x", func(l boundary.Layout) float32 { return l.X }},
		{"layout-y", func(l boundary.Layout) float32 { return l.Y }},
		{"layout-width", func(l boundary.Layout) float32 { return l.Width }},
		{"layout-height", func(l boundary.Layout) float32 { return l.Height }},
		{"layout-content-width", func(l boundary.Layout) float32 { return l.ContentWidth }},
		{"layout-content-height", func(l boundary.Layout) float32 { return l.ContentHeight }},
		{"layout-border-left", func(l boundary.Layout) float32 { return l.BorderLeft }},
		{"layout-border-right", func(l boundary.Layout) float32 { return l.BorderRight }},
		{"layout-border-top", func(l boundary.Layout) float32 { return l.BorderTop }},
		{"layout-border-bottom", func(l boundary.Layout) float32 { return l.BorderBottom }},
	}
	var exports []hostExport
	for _, f := range fields {
		field := f.field
		exports = append(exports, hostExport{
			name:    f.name,
			params:  []api.ValueType{i32, i64},
			results: []api.ValueType{i32, f32},
			fn: func(_ context.Context, _ api.Module, stack []uint64) {
				tree, ok := h.treeRef(Handle(api.DecodeU32(stack[0])))
				if !ok {
					stack[0] = api.EncodeI32(int32(boundary.StatusNullTreePointer))
					stack[1] = 0
					return
				}
				r := boundary.TreeGetLayout(tree, boundary.NodeID(stack[1]))
				stack[0] = api.EncodeI32(int32(r.Status))
				stack[1] = api.EncodeF32(field(r.Value))
			},
		})
	}
	return exports
}

func (h *Host) dimensionExports() []hostExport {
	props := []struct {
		name string
		get  func(boundary.StyleConstRef) boundary.Dimension
		set  func(boundary.StyleMutRef, float32, boundary.Unit) boundary.Status
	}{
		{"width", boundary.StyleGetWidth, boundary.StyleSetWidth},
		{"height", boundary.StyleGetHeight, boundary.StyleSetHeight},
		{"min-width", boundary.StyleGetMinWidth, boundary.StyleSetMinWidth},
		{"min-height", boundary.StyleGetMinHeight, boundary.StyleSetMinHeight},
		{"max-width", boundary.StyleGetMaxWidth, boundary.StyleSetMaxWidth},
		{"max-height", boundary.StyleGetMaxHeight, boundary.StyleSetMaxHeight},
		{"inset-top", boundary.StyleGetInsetTop, boundary.StyleSetInsetTop},
		{"inset-bottom", boundary.StyleGetInsetBottom, boundary.StyleSetInsetBottom},
		{"inset-left", boundary.StyleGetInsetLeft, boundary.StyleSetInsetLeft},
		{"inset-right", boundary.StyleGetInsetRight, boundary.StyleSetInsetRight},
		{"margin-top", boundary.StyleGetMarginTop, boundary.StyleSetMarginTop},
		{"margin-bottom", boundary.StyleGetMarginBottom, boundary.StyleSetMarginBottom},
		{"margin-left", boundary.StyleGetMarginLeft, boundary.StyleSetMarginLeft},
		{"margin-right", boundary.StyleGetMarginRight, boundary.StyleSetMarginRight},
		{"padding-top", boundary.StyleGetPaddingTop, boundary.StyleSetPaddingTop},
		{"padding-bottom", boundary.StyleGetPaddingBottom, boundary.StyleSetPaddingBottom},
		{"padding-left", boundary.StyleGetPaddingLeft, boundary.StyleSetPaddingLeft},
		{"padding-right", boundary.StyleGetPaddingRight, boundary.StyleSetPaddingRight},
		{"border-top", boundary.StyleGetBorderTop, boundary.StyleSetBorderTop},
		{"border-bottom", boundary.StyleGetBorderBottom, boundary.StyleSetBorderBottom},
		{"border-left", boundary.StyleGetBorderLeft, boundary.StyleSetBorderLeft},
		{"border-right", boundary.StyleGetBorderRight, boundary.StyleSetBorderRight},
		{"column-gap", boundary.StyleGetColumnGap, boundary.StyleSetColumnGap},
		{"row-gap", boundary.StyleGetRowGap, boundary.StyleSetRowGap},
		{"flex-basis", boundary.StyleGetFlexBasis, boundary.StyleSetFlexBasis},
	}
	var exports []hostExport
	for _, p := range props {
		get, set := p.get, p.set
		exports = append(exports,
			hostExport{
				name:    "style-get-" + p.name,
				params:  []api.ValueType{i32, i64},
				results: []api.ValueType{i32, i64},
				fn: func(_ context.Context, _ api.Module, stack []uint64) {
					ref, st := h.styleRef(Handle(api.DecodeU32(stack[0])), boundary.NodeID(stack[1]))
					if st != boundary.StatusOK {
						stack[0] = api.EncodeI32(int32(st))
						stack[1] = 0
						return
					}
					stack[0] = api.EncodeI32(int32(boundary.StatusOK))
					stack[1] = packDimension(get(ref.Const()))
				},
			},
			hostExport{
				name:    "style-set-" + p.name,
				params:  []api.ValueType{i32, i64, f32, i32},
				results: []api.ValueType{i32},
				fn: func(_ context.Context, _ api.Module, stack []uint64) {
					ref, st := h.styleRef(Handle(api.DecodeU32(stack[0])), boundary.NodeID(stack[1]))
					if st != boundary.StatusOK {
						stack[0] = api.EncodeI32(int32(st))
						return
					}
					st = set(ref, api.DecodeF32(stack[2]), boundary.Unit(api.DecodeU32(stack[3])))
					stack[0] = api.EncodeI32(int32(st))
				},
			},
		)
	}
	return exports
}

func (h *Host) floatExports() []hostExport {
	props := []struct {
		name string
		get  func(boundary.StyleConstRef) float32
		set  func(boundary.StyleMutRef, float32) boundary.Status
	}{
		{"aspect-ratio", boundary.StyleGetAspectRatio, boundary.StyleSetAspectRatio},
		{"scrollbar-width", boundary.StyleGetScrollbarWidth, boundary.StyleSetScrollbarWidth},
		{"flex-grow", boundary.StyleGetFlexGrow, boundary.StyleSetFlexGrow},
		{"flex-shrink", boundary.StyleGetFlexShrink, boundary.StyleSetFlexShrink},
	}
	var exports []hostExport
	for _, p := range props {
		get, set := p.get, p.set
		exports = append(exports,
			hostExport{
				name:    "style-get-" + p.name,
				params:  []api.ValueType{i32, i64},
				results: []api.ValueType{i32, f32},
				fn: func(_ context.Context, _ api.Module, stack []uint64) {
					ref, st := h.styleRef(Handle(api.DecodeU32(stack[0])), boundary.NodeID(stack[1]))
					if st != boundary.StatusOK {
						stack[0] = api.EncodeI32(int32(st))
						stack[1] = 0
						return
					}
					stack[0] = api.EncodeI32(int32(boundary.StatusOK))
					stack[1] = api.EncodeF32(get(ref.Const()))
				},
			},
			hostExport{
				name:    "style-set-" + p.name,
				params:  []api.ValueType{i32, i64, f32},
				results: []api.ValueType{i32},
				fn: func(_ context.Context, _ api.Module, stack []uint64) {
					ref, st := h.styleRef(Handle(api.DecodeU32(stack[0])), boundary.NodeID(stack[1]))
					if st != boundary.StatusOK {
						stack[0] = api.EncodeI32(int32(st))
						return
					}
					stack[0] = api.EncodeI32(int32(set(ref, api.DecodeF32(stack[2]))))
				},
			},
		)
	}
	return exports
}

func (h *Host) enumExports() []hostExport {
	props := []struct {
		name string
		get  func(boundary.StyleConstRef) int32
		set  func(boundary.StyleMutRef, uint32) boundary.Status
	}{
		{"display",
			func(r boundary.StyleConstRef) int32 { return int32(boundary.StyleGetDisplay(r)) },
			func(r boundary.StyleMutRef, v uint32) boundary.Status {
				return boundary.StyleSetDisplay(r, style.Display(v))
			}},
		{"position",
			func(r boundary.StyleConstRef) int32 { return int32(boundary.StyleGetPosition(r)) },
			func(r boundary.StyleMutRef, v uint32) boundary.Status {
				return boundary.StyleSetPosition(r, style.Position(v))
			}},
		{"overflow-x",
			func(r boundary.StyleConstRef) int32 { return int32(boundary.StyleGetOverflowX(r)) },
			func(r boundary.StyleMutRef, v uint32) boundary.Status {
				return boundary.StyleSetOverflowX(r, style.Overflow(v))
			}},
		{"overflow-y",
			func(r boundary.StyleConstRef) int32 { return int32(boundary.StyleGetOverflowY(r)) },
			func(r boundary.StyleMutRef, v uint32) boundary.Status {
				return boundary.StyleSetOverflowY(r, style.Overflow(v))
			}},
		{"flex-direction",
			func(r boundary.StyleConstRef) int32 { return int32(boundary.StyleGetFlexDirection(r)) },
			func(r boundary.StyleMutRef, v uint32) boundary.Status {
				return boundary.StyleSetFlexDirection(r, style.FlexDirection(v))
			}},
		{"flex-wrap",
			func(r boundary.StyleConstRef) int32 { return int32(boundary.StyleGetFlexWrap(r)) },
			func(r boundary.StyleMutRef, v uint32) boundary.Status {
				return boundary.StyleSetFlexWrap(r, style.FlexWrap(v))
			}},
		{"grid-auto-flow",
			func(r boundary.StyleConstRef) int32 { return int32(boundary.StyleGetGridAutoFlow(r)) },
			func(r boundary.StyleMutRef, v uint32) boundary.Status {
				return boundary.StyleSetGridAutoFlow(r, style.GridAutoFlow(v))
			}},
		{"align-content",
			boundary.StyleGetAlignContent,
			func(r boundary.StyleMutRef, v uint32) boundary.Status {
				return boundary.StyleSetAlignContent(r, style.AlignContent(v))
			}},
		{"align-items",
			boundary.StyleGetAlignItems,
			func(r boundary.StyleMutRef, v uint32) boundary.Status {
				return boundary.StyleSetAlignItems(r, style.AlignItems(v))
			}},
		{"align-self",
			boundary.StyleGetAlignSelf,
			func(r boundary.StyleMutRef, v uint32) boundary.Status {
				return boundary.StyleSetAlignSelf(r, style.AlignItems(v))
			}},
		{"justify-content",
			boundary.StyleGetJustifyContent,
			func(r boundary.StyleMutRef, v uint32) boundary.Status {
				return boundary.StyleSetJustifyContent(r, style.AlignContent(v))
			}},
		{"justify-items",
			boundary.StyleGetJustifyItems,
			func(r boundary.StyleMutRef, v uint32) boundary.Status {
				return boundary.StyleSetJustifyItems(r, style.AlignItems(v))
			}},
		{"justify-self",
			boundary.StyleGetJustifySelf,
			func(r boundary.StyleMutRef, v uint32) boundary.Status {
				return boundary.StyleSetJustifySelf(r, style.AlignItems(v))
			}},
	}
	var exports []hostExport
	for _, p := range props {
		get, set := p.get, p.set
		exports = append(exports,
			hostExport{
				name:    "style-get-" + p.name,
				params:  []api.ValueType{i32, i64},
				results: []api.ValueType{i32, i32},
				fn: func(_ context.Context, _ api.Module, stack []uint64) {
					ref, st := h.styleRef(Handle(api.DecodeU32(stack[0])), boundary.NodeID(stack[1]))
					if st != boundary.StatusOK {
						stack[0] = api.EncodeI32(int32(st))
						stack[1] = 0
						return
					}
					stack[0] = api.EncodeI32(int32(boundary.StatusOK))
					stack[1] = api.EncodeI32(get(ref.Const()))
				},
			},
			hostExport{
				name:    "style-set-" + p.name,
				params:  []api.ValueType{i32, i64, i32},
				results: []api.ValueType{i32},
				fn: func(_ context.Context, _ api.Module, stack []uint64) {
					ref, st := h.styleRef(Handle(api.DecodeU32(stack[0])), boundary.NodeID(stack[1]))
					if st != boundary.StatusOK {
						stack[0] = api.EncodeI32(int32(st))
						return
					}
					stack[0] = api.EncodeI32(int32(set(ref, api.DecodeU32(stack[2]))))
				},
			},
		)
	}
	return exports
}

func (h *Host) edgeExports() []hostExport {
	props := []struct {
		name string
		set  func(boundary.StyleMutRef, boundary.Edge, boundary.Dimension) boundary.Status
	}{
		{"margin", boundary.StyleSetMargin},
		{"padding", boundary.StyleSetPadding},
		{"border", boundary.StyleSetBorder},
		{"inset", boundary.StyleSetInset},
	}
	var exports []hostExport
	for _, p := range props {
		set := p.set
		exports = append(exports, hostExport{
			name:    "style-set-" + p.name,
			params:  []api.ValueType{i32, i64, i32, f32, i32},
			results: []api.ValueType{i32},
			fn: func(_ context.Context, _ api.Module, stack []uint64) {
				ref, st := h.styleRef(Handle(api.DecodeU32(stack[0])), boundary.NodeID(stack[1]))
				if st != boundary.StatusOK {
					stack[0] = api.EncodeI32(int32(st))
					return
				}
				dim := boundary.Dimension{
					Value: api.DecodeF32(stack[3]),
					Unit:  boundary.Unit(api.DecodeU32(stack[4])),
				}
				st = set(ref, boundary.Edge(api.DecodeU32(stack[2])), dim)
				stack[0] = api.EncodeI32(int32(st))
			},
		})
	}
	return exports
}

func (h *Host) gridExports() []hostExport {
	props := []struct {
		name string
		get  func(boundary.StyleConstRef) boundary.GridPlacement
		set  func(boundary.StyleMutRef, boundary.GridPlacement) boundary.Status
	}{
		{"grid-column", boundary.StyleGetGridColumn, boundary.StyleSetGridColumn},
		{"grid-row", boundary.StyleGetGridRow, boundary.StyleSetGridRow},
	}
	var exports []hostExport
	for _, p := range props {
		get, set := p.get, p.set
		exports = append(exports,
			hostExport{
				name:    "style-get-" + p.name,
				params:  []api.ValueType{i32, i64},
				results: []api.ValueType{i32, i64},
				fn: func(_ context.Context, _ api.Module, stack []uint64) {
					ref, st := h.styleRef(Handle(api.DecodeU32(stack[0])), boundary.NodeID(stack[1]))
					if st != boundary.StatusOK {
						stack[0] = api.EncodeI32(int32(st))
						stack[1] = 0
						return
					}
					stack[0] = api.EncodeI32(int32(boundary.StatusOK))
					stack[1] = packPlacement(get(ref.Const()))
				},
			},
			hostExport{
				name:    "style-set-" + p.name,
				params:  []api.ValueType{i32, i64, i32, i32, i32},
				results: []api.ValueType{i32},
				fn: func(_ context.Context, _ api.Module, stack []uint64) {
					ref, st := h.styleRef(Handle(api.DecodeU32(stack[0])), boundary.NodeID(stack[1]))
					if st != boundary.StatusOK {
						stack[0] = api.EncodeI32(int32(st))
						return
					}
					placement := boundary.GridPlacement{
						Start: int16(api.DecodeI32(stack[2])),
						End:   int16(api.DecodeI32(stack[3])),
						Span:  uint16(api.DecodeU32(stack[4])),
					}
					stack[0] = api.EncodeI32(int32(set(ref, placement)))
				},
			},
		)
	}
	return exports
}
