package main

import (
	"flag"
	"fmt"
	"math"
	"os"

	"github.com/flexframe/layout-boundary/bindgen"
	"github.com/flexframe/layout-boundary/boundary"
	"github.com/flexframe/layout-boundary/engine"
)

func main() {
	var (
		csharpOut   = flag.String("csharp", "", "Write generated C# bindings to this path (- for stdout)")
		witOut      = flag.String("wit", "", "Write generated WIT interface to this path (- for stdout)")
		namespace   = flag.String("namespace", "", "C# namespace override")
		dllName     = flag.String("dll", "", "C# native library name override")
		iosDefine   = flag.String("ios-define", "", "C# define guarding the __Internal dll name")
		width       = flag.Float64("width", 800, "Available width for the demo layout")
		height      = flag.Float64("height", 600, "Available height for the demo layout")
		interactive = flag.Bool("i", false, "Interactive style inspector")
	)
	flag.Parse()

	if *interactive {
		if err := runInteractive(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if *csharpOut != "" || *witOut != "" {
		if err := emit(*csharpOut, *witOut, *namespace, *dllName, *iosDefine); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := demo(float32(*width), float32(*height)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func emit(csharpOut, witOut, namespace, dllName, iosDefine string) error {
	surface := bindgen.BoundarySurface()

	if csharpOut != "" {
		cfg := bindgen.DefaultCSharpConfig()
		if namespace != "" {
			cfg.Namespace = namespace
		}
		if dllName != "" {
			cfg.DllName = dllName
		}
		if iosDefine != "" {
			cfg.IOSDefine = iosDefine
		}
		out, err := bindgen.EmitCSharp(surface, cfg)
		if err != nil {
			return err
		}
		if err := write(csharpOut, out); err != nil {
			return err
		}
	}

	if witOut != "" {
		out, err := bindgen.EmitWIT(surface, bindgen.DefaultWITConfig())
		if err != nil {
			return err
		}
		if err := write(witOut, out); err != nil {
			return err
		}
	}
	return nil
}

func write(path, content string) error {
	if path == "-" {
		_, err := fmt.Print(content)
		return err
	}
	return os.WriteFile(path, []byte(content), 0o644)
}

// demo builds a small flex scene through the boundary surface and prints
// the computed layout of every node.
func demo(width, height float32) error {
	tree := boundary.TreeRefOf(engine.NewTree())

	root := boundary.TreeNewNode(tree)
	if root.Status != boundary.StatusOK {
		return fmt.Errorf("new node: %s", root.Status)
	}
	rootStyle := boundary.TreeGetStyleMut(tree, root.Value)
	if rootStyle.Status != boundary.StatusOK {
		return fmt.Errorf("root style: %s", rootStyle.Status)
	}
	mustOK(boundary.StyleSetWidth(rootStyle.Value, width, boundary.UnitLength))
	mustOK(boundary.StyleSetHeight(rootStyle.Value, height, boundary.UnitLength))
	mustOK(boundary.StyleSetPadding(rootStyle.Value, boundary.EdgeAll,
		boundary.Dimension{Value: 16, Unit: boundary.UnitLength}))
	mustOK(boundary.StyleSetColumnGap(rootStyle.Value, 8, boundary.UnitLength))

	type namedNode struct {
		id   boundary.NodeID
		name string
	}
	nodes := []namedNode{{root.Value, "root"}}
	for i, grow := range []float32{1, 2, 1} {
		child := boundary.TreeNewNode(tree)
		if child.Status != boundary.StatusOK {
			return fmt.Errorf("new node: %s", child.Status)
		}
		cs := boundary.TreeGetStyleMut(tree, child.Value)
		mustOK(boundary.StyleSetFlexGrow(cs.Value, grow))
		mustOK(boundary.StyleSetHeight(cs.Value, 0.5, boundary.UnitPercent))
		if st := boundary.TreeAppendChild(tree, root.Value, child.Value); st != boundary.StatusOK {
			return fmt.Errorf("append: %s", st)
		}
		nodes = append(nodes, namedNode{child.Value, fmt.Sprintf("child-%d", i)})
	}

	nan := float32(math.NaN())
	if st := boundary.TreeComputeLayout(tree, root.Value, nan, nan); st != boundary.StatusOK {
		return fmt.Errorf("compute layout: %s", st)
	}

	fmt.Printf("Layout in %gx%g:\n", width, height)
	for _, n := range nodes {
		l := boundary.TreeGetLayout(tree, n.id)
		if l.Status != boundary.StatusOK {
			return fmt.Errorf("layout %s: %s", n.name, l.Status)
		}
		fmt.Printf("  %-8s at (%g, %g) size %gx%g\n",
			n.name, l.Value.X, l.Value.Y, l.Value.Width, l.Value.Height)
	}
	return nil
}

func mustOK(st boundary.Status) {
	if st != boundary.StatusOK {
		panic(fmt.Sprintf("unexpected status %s", st))
	}
}
