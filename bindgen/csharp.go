package bindgen

import (
	"fmt"
	"strings"

	"go.bytecodealliance.org/wit"

	lberrors "github.com/flexframe/layout-boundary/errors"
)

// CSharpConfig controls the generated C# file.
type CSharpConfig struct {
	// Namespace the declarations live in.
	Namespace string
	// ClassName of the static class holding the extern declarations.
	ClassName string
	// DllName is the native library DllImport resolves against.
	DllName string
	// SymbolPrefix is prepended to every PascalCased export name.
	SymbolPrefix string
	// IOSDefine, when set, wraps the dll name in a conditional that swaps
	// in "__Internal" for statically linked iOS builds.
	IOSDefine string
}

// DefaultCSharpConfig matches the shipped bindings.
func DefaultCSharpConfig() CSharpConfig {
	return CSharpConfig{
		Namespace:    "FlexFrame.Layout.Native",
		ClassName:    "NativeMethods",
		DllName:      "flexframe_layout",
		SymbolPrefix: "LayoutBoundary",
		IOSDefine:    "FLEXFRAME_IOS",
	}
}

// EmitCSharp renders the surface as a C# source file: one static class of
// DllImport declarations followed by the struct and enum declarations they
// reference.
func EmitCSharp(s *Surface, cfg CSharpConfig) (string, error) {
	if s == nil {
		return "", lberrors.NilPointer(lberrors.PhaseBindgen, "surface")
	}
	if cfg.Namespace == "" || cfg.DllName == "" {
		return "", lberrors.InvalidInput(lberrors.PhaseBindgen, "namespace and dll name are required")
	}
	if cfg.ClassName == "" {
		cfg.ClassName = "NativeMethods"
	}

	var b strings.Builder
	b.WriteString("// <auto-generated>\n")
	b.WriteString("// This file was generated by layout-boundary bindgen. Do not edit.\n")
	b.WriteString("// </auto-generated>\n\n")
	b.WriteString("using System;\n")
	b.WriteString("using System.Runtime.InteropServices;\n\n")
	fmt.Fprintf(&b, "namespace %s\n{\n", cfg.Namespace)

	fmt.Fprintf(&b, "    public static unsafe partial class %s\n    {\n", cfg.ClassName)
	if cfg.IOSDefine != "" {
		fmt.Fprintf(&b, "#if %s\n", cfg.IOSDefine)
		b.WriteString("        const string __DllName = \"__Internal\";\n")
		b.WriteString("#else\n")
		fmt.Fprintf(&b, "        const string __DllName = %q;\n", cfg.DllName)
		b.WriteString("#endif\n\n")
	} else {
		fmt.Fprintf(&b, "        const string __DllName = %q;\n\n", cfg.DllName)
	}

	for _, fn := range s.Funcs {
		symbol := cfg.SymbolPrefix + pascal(fn.Name)
		ret, params, err := csharpSignature(fn)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&b, "        [DllImport(__DllName, EntryPoint = %q, CallingConvention = CallingConvention.Cdecl)]\n", symbol)
		fmt.Fprintf(&b, "        public static extern %s %s(%s);\n\n", ret, symbol, params)
	}
	b.WriteString("    }\n")

	for _, e := range s.Enums {
		b.WriteString("\n")
		if err := writeCSharpEnum(&b, e); err != nil {
			return "", err
		}
	}
	for _, r := range s.Records {
		b.WriteString("\n")
		if err := writeCSharpRecord(&b, r); err != nil {
			return "", err
		}
	}

	b.WriteString("}\n")
	return b.String(), nil
}

// csharpSignature flattens a function to a C# return type and parameter
// list. A second and any further results become out-params.
func csharpSignature(fn Function) (ret, params string, err error) {
	parts := make([]string, 0, len(fn.Params)+len(fn.Results))
	for _, p := range fn.Params {
		t, err := csharpType(p.Type)
		if err != nil {
			return "", "", err
		}
		parts = append(parts, t+" "+camel(p.Name))
	}
	switch len(fn.Results) {
	case 0:
		ret = "void"
	default:
		ret, err = csharpType(fn.Results[0].Type)
		if err != nil {
			return "", "", err
		}
		for _, r := range fn.Results[1:] {
			t, err := csharpType(r.Type)
			if err != nil {
				return "", "", err
			}
			parts = append(parts, "out "+t+" "+camel(r.Name))
		}
	}
	return ret, strings.Join(parts, ", "), nil
}

func writeCSharpEnum(b *strings.Builder, td *wit.TypeDef) error {
	enum, ok := td.Kind.(*wit.Enum)
	if !ok || td.Name == nil {
		return lberrors.InvalidInput(lberrors.PhaseBindgen, "enum typedef without enum kind or name")
	}
	fmt.Fprintf(b, "    public enum %s : int\n    {\n", pascal(*td.Name))
	for i, c := range enum.Cases {
		fmt.Fprintf(b, "        %s = %d,\n", pascal(c.Name), i)
	}
	b.WriteString("    }\n")
	return nil
}

func writeCSharpRecord(b *strings.Builder, td *wit.TypeDef) error {
	rec, ok := td.Kind.(*wit.Record)
	if !ok || td.Name == nil {
		return lberrors.InvalidInput(lberrors.PhaseBindgen, "record typedef without record kind or name")
	}
	b.WriteString("    [StructLayout(LayoutKind.Sequential)]\n")
	fmt.Fprintf(b, "    public unsafe partial struct %s\n    {\n", pascal(*td.Name))
	for _, f := range rec.Fields {
		t, err := csharpType(f.Type)
		if err != nil {
			return err
		}
		fmt.Fprintf(b, "        public %s %s;\n", t, camel(f.Name))
	}
	b.WriteString("    }\n")
	return nil
}

func csharpType(t wit.Type) (string, error) {
	switch v := t.(type) {
	case wit.Bool:
		return "bool", nil
	case wit.U8:
		return "byte", nil
	case wit.U16:
		return "ushort", nil
	case wit.U32:
		return "uint", nil
	case wit.U64:
		return "ulong", nil
	case wit.S8:
		return "sbyte", nil
	case wit.S16:
		return "short", nil
	case wit.S32:
		return "int", nil
	case wit.S64:
		return "long", nil
	case wit.F32:
		return "float", nil
	case wit.F64:
		return "double", nil
	case *wit.TypeDef:
		if v.Name == nil {
			return "", lberrors.InvalidInput(lberrors.PhaseBindgen, "anonymous typedef in signature")
		}
		return pascal(*v.Name), nil
	default:
		return "", lberrors.Unsupported(lberrors.PhaseBindgen, fmt.Sprintf("wit type %T", t))
	}
}

// pascal converts a kebab-case name to PascalCase.
func pascal(name string) string {
	var b strings.Builder
	for _, part := range strings.Split(name, "-") {
		if part == "" {
			continue
		}
		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(part[1:])
	}
	return b.String()
}

// camel converts a kebab-case name to camelCase.
func camel(name string) string {
	p := pascal(name)
	if p == "" {
		return p
	}
	return strings.ToLower(p[:1]) + p[1:]
}
