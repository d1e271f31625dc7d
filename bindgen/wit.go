package bindgen

import (
	"fmt"
	"strings"

	"go.bytecodealliance.org/wit"

	lberrors "github.com/flexframe/layout-boundary/errors"
)

// WITConfig controls the generated WIT interface.
type WITConfig struct {
	// Package in "namespace:name" form.
	Package string
	// Interface name within the package.
	Interface string
}

// DefaultWITConfig matches the wasmhost module name.
func DefaultWITConfig() WITConfig {
	return WITConfig{Package: "flexframe:layout", Interface: "boundary"}
}

// EmitWIT renders the surface as WIT interface text.
func EmitWIT(s *Surface, cfg WITConfig) (string, error) {
	if s == nil {
		return "", lberrors.NilPointer(lberrors.PhaseBindgen, "surface")
	}
	if cfg.Package == "" || cfg.Interface == "" {
		return "", lberrors.InvalidInput(lberrors.PhaseBindgen, "package and interface are required")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "package %s;\n\n", cfg.Package)
	fmt.Fprintf(&b, "interface %s {\n", cfg.Interface)

	for _, e := range s.Enums {
		if err := writeWITEnum(&b, e); err != nil {
			return "", err
		}
		b.WriteString("\n")
	}
	for _, r := range s.Records {
		if err := writeWITRecord(&b, r); err != nil {
			return "", err
		}
		b.WriteString("\n")
	}

	for _, fn := range s.Funcs {
		sig, err := witSignature(fn)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&b, "    %s: func%s;\n", fn.Name, sig)
	}

	b.WriteString("}\n")
	return b.String(), nil
}

func witSignature(fn Function) (string, error) {
	params := make([]string, 0, len(fn.Params))
	for _, p := range fn.Params {
		t, err := witTypeName(p.Type)
		if err != nil {
			return "", err
		}
		params = append(params, p.Name+": "+t)
	}
	sig := "(" + strings.Join(params, ", ") + ")"

	switch len(fn.Results) {
	case 0:
		return sig, nil
	case 1:
		t, err := witTypeName(fn.Results[0].Type)
		if err != nil {
			return "", err
		}
		return sig + " -> " + t, nil
	default:
		results := make([]string, 0, len(fn.Results))
		for _, r := range fn.Results {
			t, err := witTypeName(r.Type)
			if err != nil {
				return "", err
			}
			results = append(results, t)
		}
		return sig + " -> tuple<" + strings.Join(results, ", ") + ">", nil
	}
}

func writeWITEnum(b *strings.Builder, td *wit.TypeDef) error {
	enum, ok := td.Kind.(*wit.Enum)
	if !ok || td.Name == nil {
		return lberrors.InvalidInput(lberrors.PhaseBindgen, "enum typedef without enum kind or name")
	}
	fmt.Fprintf(b, "    enum %s {\n", *td.Name)
	for _, c := range enum.Cases {
		fmt.Fprintf(b, "        %s,\n", c.Name)
	}
	b.WriteString("    }\n")
	return nil
}

func writeWITRecord(b *strings.Builder, td *wit.TypeDef) error {
	rec, ok := td.Kind.(*wit.Record)
	if !ok || td.Name == nil {
		return lberrors.InvalidInput(lberrors.PhaseBindgen, "record typedef without record kind or name")
	}
	fmt.Fprintf(b, "    record %s {\n", *td.Name)
	for _, f := range rec.Fields {
		t, err := witTypeName(f.Type)
		if err != nil {
			return err
		}
		fmt.Fprintf(b, "        %s: %s,\n", f.Name, t)
	}
	b.WriteString("    }\n")
	return nil
}

func witTypeName(t wit.Type) (string, error) {
	switch v := t.(type) {
	case wit.Bool:
		return "bool", nil
	case wit.U8:
		return "u8", nil
	case wit.U16:
		return "u16", nil
	case wit.U32:
		return "u32", nil
	case wit.U64:
		return "u64", nil
	case wit.S8:
		return "s8", nil
	case wit.S16:
		return "s16", nil
	case wit.S32:
		return "s32", nil
	case wit.S64:
		return "s64", nil
	case wit.F32:
		return "f32", nil
	case wit.F64:
		return "f64", nil
	case *wit.TypeDef:
		if v.Name == nil {
			return "", lberrors.InvalidInput(lberrors.PhaseBindgen, "anonymous typedef in signature")
		}
		return *v.Name, nil
	default:
		return "", lberrors.Unsupported(lberrors.PhaseBindgen, fmt.Sprintf("wit type %T", t))
	}
}
