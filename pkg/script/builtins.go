package script

import (
	"fmt"

	v3 "github.com/deadsy/sdfx/vec/v3"
	zygo "github.com/glycerine/zygomys/zygo"

	"github.com/chazu/voxgeom/pkg/region"
)

// ---------------------------------------------------------------------------
// Source preprocessing
// ---------------------------------------------------------------------------

// preprocessSource transforms region script source before passing it to
// zygomys. It performs two transformations:
//
//  1. Lisp line comments: ; comment -> // comment
//     zygomys uses // for line comments, not the traditional Lisp ;.
//
//  2. Kebab-case to underscore: grow-unified -> grow_unified
//     zygomys does not allow hyphens in identifiers (it interprets them
//     as the subtraction operator). This converts kebab-case identifiers
//     to underscore form outside of strings and comments.
//
// Both transformations respect string literal boundaries.
func preprocessSource(source string) string {
	result := make([]byte, 0, len(source)+len(source)/4)
	b := []byte(source)
	i := 0
	for i < len(b) {
		// Skip double-quoted string literals.
		if b[i] == '"' {
			result = append(result, b[i])
			i++
			for i < len(b) && b[i] != '"' {
				if b[i] == '\\' && i+1 < len(b) {
					result = append(result, b[i], b[i+1])
					i += 2
					continue
				}
				result = append(result, b[i])
				i++
			}
			if i < len(b) {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Skip backtick-quoted string literals.
		if b[i] == '`' {
			result = append(result, b[i])
			i++
			for i < len(b) && b[i] != '`' {
				result = append(result, b[i])
				i++
			}
			if i < len(b) {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Convert ; line comments to // comments for zygomys.
		if b[i] == ';' {
			result = append(result, '/', '/')
			i++
			// Skip additional ; characters (;; style).
			for i < len(b) && b[i] == ';' {
				i++
			}
			for i < len(b) && b[i] != '\n' {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Transform kebab-case identifiers: alpha-alpha -> alpha_alpha.
		// Only when the hyphen sits between identifier characters (not a
		// minus operator).
		if b[i] == '-' && i > 0 && i+1 < len(b) &&
			isIdentChar(b[i-1]) && isLetter(b[i+1]) {
			result = append(result, '_')
			i++
			continue
		}
		result = append(result, b[i])
		i++
	}
	return string(result)
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentChar(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '_'
}

// ---------------------------------------------------------------------------
// Custom Sexp types for passing Go values through the zygomys environment
// ---------------------------------------------------------------------------

// sexpRegion wraps a region.Region so it can be passed between builtins.
type sexpRegion struct {
	r region.Region
}

func (s *sexpRegion) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(region %d %d %d %d %d %d)",
		s.r.X, s.r.Y, s.r.Z, s.r.Width, s.r.Height, s.r.Depth)
}
func (s *sexpRegion) Type() *zygo.RegisteredType { return nil }

// sexpVec3 wraps a float vector result (center, corners, size).
type sexpVec3 struct {
	vec v3.Vec
}

func (v *sexpVec3) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(vec3 %g %g %g)", v.vec.X, v.vec.Y, v.vec.Z)
}
func (v *sexpVec3) Type() *zygo.RegisteredType { return nil }

// ---------------------------------------------------------------------------
// Value extraction helpers
// ---------------------------------------------------------------------------

// toInt32 extracts an int32 from a Sexp (SexpInt or SexpFloat).
func toInt32(s zygo.Sexp) (int32, error) {
	switch v := s.(type) {
	case *zygo.SexpInt:
		return int32(v.Val), nil
	case *zygo.SexpFloat:
		return int32(v.Val), nil
	}
	return 0, fmt.Errorf("expected integer, got %T (%s)", s, s.SexpString(nil))
}

// toFloat64 extracts a float64 from a Sexp (SexpInt or SexpFloat).
func toFloat64(s zygo.Sexp) (float64, error) {
	switch v := s.(type) {
	case *zygo.SexpInt:
		return float64(v.Val), nil
	case *zygo.SexpFloat:
		return v.Val, nil
	}
	return 0, fmt.Errorf("expected number, got %T (%s)", s, s.SexpString(nil))
}

// toString extracts a string from a Sexp.
func toString(s zygo.Sexp) (string, error) {
	if str, ok := s.(*zygo.SexpStr); ok {
		return str.S, nil
	}
	return "", fmt.Errorf("expected string, got %T (%s)", s, s.SexpString(nil))
}

// toRegion extracts a region from a sexpRegion.
func toRegion(s zygo.Sexp) (region.Region, error) {
	if r, ok := s.(*sexpRegion); ok {
		return r.r, nil
	}
	return region.Region{}, fmt.Errorf("expected region, got %T (%s)", s, s.SexpString(nil))
}

// int32Args extracts exactly n int32 arguments.
func int32Args(name string, args []zygo.Sexp, n int) ([]int32, error) {
	if len(args) != n {
		return nil, fmt.Errorf("%s requires exactly %d arguments, got %d", name, n, len(args))
	}
	out := make([]int32, n)
	for i, a := range args {
		v, err := toInt32(a)
		if err != nil {
			return nil, fmt.Errorf("%s: argument %d: %w", name, i+1, err)
		}
		out[i] = v
	}
	return out, nil
}

// regionAndInt32Args extracts a leading region followed by exactly n int32s.
func regionAndInt32Args(name string, args []zygo.Sexp, n int) (region.Region, []int32, error) {
	if len(args) != n+1 {
		return region.Region{}, nil, fmt.Errorf("%s requires a region and %d numbers, got %d arguments",
			name, n, len(args))
	}
	r, err := toRegion(args[0])
	if err != nil {
		return region.Region{}, nil, fmt.Errorf("%s: %w", name, err)
	}
	nums, err := int32Args(name, args[1:], n)
	if err != nil {
		return region.Region{}, nil, err
	}
	return r, nums, nil
}

// ---------------------------------------------------------------------------
// Builtin registration
// ---------------------------------------------------------------------------

// registerBuiltins installs the region DSL builtins into a zygomys
// environment. Builtins are functional: mutating operations return a new
// region value rather than changing their argument. defregion records
// regions into the provided scene.
//
// Source code must be preprocessed with preprocessSource() so that
// kebab-case names like grow-unified resolve to the registered
// underscore forms.
func registerBuiltins(env *zygo.Zlisp, scene *Scene) {

	// -----------------------------------------------------------------------
	// (region x y z width height depth)
	// -----------------------------------------------------------------------
	env.AddFunction("region", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		n, err := int32Args("region", args, 6)
		if err != nil {
			return zygo.SexpNull, err
		}
		return &sexpRegion{r: region.NewRegion(n[0], n[1], n[2], n[3], n[4], n[5])}, nil
	})

	// -----------------------------------------------------------------------
	// (region-of-size width height depth)
	// -----------------------------------------------------------------------
	env.AddFunction("region_of_size", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		n, err := int32Args("region-of-size", args, 3)
		if err != nil {
			return zygo.SexpNull, err
		}
		return &sexpRegion{r: region.NewRegion(0, 0, 0, n[0], n[1], n[2])}, nil
	})

	// -----------------------------------------------------------------------
	// (corners lx ly lz ux uy uz)
	//
	// Exposes the corner constructor with its historical extent sign;
	// scene validation flags the resulting negative extents.
	// -----------------------------------------------------------------------
	env.AddFunction("corners", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		n, err := int32Args("corners", args, 6)
		if err != nil {
			return zygo.SexpNull, err
		}
		lower := region.IVec{X: n[0], Y: n[1], Z: n[2]}
		upper := region.IVec{X: n[3], Y: n[4], Z: n[5]}
		return &sexpRegion{r: region.NewRegionFromCornersInt(lower, upper)}, nil
	})

	// -----------------------------------------------------------------------
	// (defregion "name" r)
	// -----------------------------------------------------------------------
	env.AddFunction("defregion", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 2 {
			return zygo.SexpNull, fmt.Errorf("defregion requires a name and a region")
		}
		regionName, err := toString(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("defregion: name: %w", err)
		}
		r, err := toRegion(args[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("defregion: %w", err)
		}
		scene.Add(regionName, r)
		return &sexpRegion{r: r}, nil
	})

	// -----------------------------------------------------------------------
	// (grow r dw dh dd) / (grow-unified r n)
	// -----------------------------------------------------------------------
	env.AddFunction("grow", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		r, n, err := regionAndInt32Args("grow", args, 3)
		if err != nil {
			return zygo.SexpNull, err
		}
		r.Grow(n[0], n[1], n[2])
		return &sexpRegion{r: r}, nil
	})

	env.AddFunction("grow_unified", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		r, n, err := regionAndInt32Args("grow-unified", args, 1)
		if err != nil {
			return zygo.SexpNull, err
		}
		r.GrowUnified(n[0])
		return &sexpRegion{r: r}, nil
	})

	// -----------------------------------------------------------------------
	// (shift-upper r dx dy dz) / (shift-lower r dx dy dz)
	// -----------------------------------------------------------------------
	env.AddFunction("shift_upper", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		r, n, err := regionAndInt32Args("shift-upper", args, 3)
		if err != nil {
			return zygo.SexpNull, err
		}
		r.ShiftUpperCorner(n[0], n[1], n[2])
		return &sexpRegion{r: r}, nil
	})

	env.AddFunction("shift_lower", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		r, n, err := regionAndInt32Args("shift-lower", args, 3)
		if err != nil {
			return zygo.SexpNull, err
		}
		r.ShiftLowerCorner(n[0], n[1], n[2])
		return &sexpRegion{r: r}, nil
	})

	// -----------------------------------------------------------------------
	// (contains a b) -> "disjoint" | "contains" | "intersects"
	// -----------------------------------------------------------------------
	env.AddFunction("contains", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		a, b, err := twoRegions("contains", args)
		if err != nil {
			return zygo.SexpNull, err
		}
		return &zygo.SexpStr{S: region.Classify(a, b).String()}, nil
	})

	// -----------------------------------------------------------------------
	// (intersects a b) -> bool, true only for partial overlap
	// -----------------------------------------------------------------------
	env.AddFunction("intersects", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		a, b, err := twoRegions("intersects", args)
		if err != nil {
			return zygo.SexpNull, err
		}
		return &zygo.SexpBool{Val: region.Intersect(a, b)}, nil
	})

	// -----------------------------------------------------------------------
	// (contains-point r x y z) -> bool
	// -----------------------------------------------------------------------
	env.AddFunction("contains_point", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 4 {
			return zygo.SexpNull, fmt.Errorf("contains-point requires a region and 3 coordinates, got %d arguments", len(args))
		}
		r, err := toRegion(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("contains-point: %w", err)
		}
		var p v3.Vec
		for i, dst := range []*float64{&p.X, &p.Y, &p.Z} {
			f, err := toFloat64(args[i+1])
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("contains-point: coordinate %d: %w", i+1, err)
			}
			*dst = f
		}
		return &zygo.SexpBool{Val: region.ContainsPoint(r, p)}, nil
	})

	// -----------------------------------------------------------------------
	// (center r) / (lower r) / (upper r) / (size-of r) -> vec3
	// -----------------------------------------------------------------------
	vecQuery := func(name string, query func(region.Region) v3.Vec) {
		env.AddFunction(name, func(env *zygo.Zlisp, fn string, args []zygo.Sexp) (zygo.Sexp, error) {
			if len(args) != 1 {
				return zygo.SexpNull, fmt.Errorf("%s requires exactly 1 region argument, got %d", name, len(args))
			}
			r, err := toRegion(args[0])
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("%s: %w", name, err)
			}
			return &sexpVec3{vec: query(r)}, nil
		})
	}
	vecQuery("center", region.Region.GetCenter)
	vecQuery("lower", region.Region.GetLower)
	vecQuery("upper", region.Region.GetUpper)
	vecQuery("size_of", region.Region.Size)
}

// twoRegions extracts exactly two region arguments.
func twoRegions(name string, args []zygo.Sexp) (region.Region, region.Region, error) {
	if len(args) != 2 {
		return region.Region{}, region.Region{}, fmt.Errorf("%s requires exactly 2 region arguments, got %d", name, len(args))
	}
	a, err := toRegion(args[0])
	if err != nil {
		return region.Region{}, region.Region{}, fmt.Errorf("%s: first argument: %w", name, err)
	}
	b, err := toRegion(args[1])
	if err != nil {
		return region.Region{}, region.Region{}, fmt.Errorf("%s: second argument: %w", name, err)
	}
	return a, b, nil
}
