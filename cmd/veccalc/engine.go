package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/cwbudde/algo-vector/arith"
	"github.com/cwbudde/algo-vector/fixed"
	"github.com/cwbudde/algo-vector/vector"

	_ "github.com/cwbudde/algo-vector/dec"
)

// Job is one vector operation. Vectors are comma-separated element lists
// such as "1,2,3"; scalars are single elements.
type Job struct {
	Op        string `yaml:"op"`
	A         string `yaml:"a"`
	B         string `yaml:"b"`
	C         string `yaml:"c"`
	T         string `yaml:"t"`
	U         string `yaml:"u"`
	V         string `yaml:"v"`
	Tolerance string `yaml:"tolerance"`
}

var errUnknownOp = errors.New("unknown operation")

// ops lists the operations understood by an engine with their operands.
var ops = []struct {
	name  string
	usage string
	short string
}{
	{"add", "add A B", "element-wise sum"},
	{"sub", "sub A B", "element-wise difference"},
	{"mul", "mul A B", "element-wise product"},
	{"scale", "scale A T", "multiply every element by T"},
	{"neg", "neg A", "negate every element"},
	{"min", "min A B", "element-wise minimum"},
	{"max", "max A B", "element-wise maximum"},
	{"dot", "dot A B", "dot product"},
	{"cross", "cross A B", "cross product of 3-D vectors"},
	{"mag", "mag A", "Euclidean magnitude"},
	{"norm", "norm A", "unit vector in the direction of A"},
	{"dist", "dist A B", "Euclidean distance"},
	{"lerp", "lerp A B T", "linear interpolation, T in [0, 1]"},
	{"bary", "bary A B C U V", "barycentric interpolation"},
	{"eq", "eq A B", "equality, within --tolerance when it is positive"},
}

// codec converts elements of T to and from text.
type codec[T any] struct {
	name   string
	parse  func(string) (T, error)
	format func(x T, precision int) string
}

// evaluator runs jobs for one element type.
type evaluator interface {
	Name() string
	Eval(job Job, precision int) (string, error)
	Entries() []arith.EntryInfo
}

type engine[T any] struct {
	codec[T]
}

func (e engine[T]) Name() string { return e.name }

func engineFor(typ string) (evaluator, error) {
	switch typ {
	case "float64":
		return engine[float64]{codec[float64]{
			name:  "float64",
			parse: func(s string) (float64, error) { return strconv.ParseFloat(s, 64) },
			format: func(x float64, p int) string {
				return strconv.FormatFloat(x, 'f', p, 64)
			},
		}}, nil
	case "float32":
		return engine[float32]{codec[float32]{
			name: "float32",
			parse: func(s string) (float32, error) {
				f, err := strconv.ParseFloat(s, 32)
				return float32(f), err
			},
			format: func(x float32, p int) string {
				return strconv.FormatFloat(float64(x), 'f', p, 32)
			},
		}}, nil
	case "int64":
		return engine[int64]{codec[int64]{
			name:   "int64",
			parse:  func(s string) (int64, error) { return strconv.ParseInt(s, 10, 64) },
			format: func(x int64, _ int) string { return strconv.FormatInt(x, 10) },
		}}, nil
	case "fixed":
		return engine[fixed.Q16]{codec[fixed.Q16]{
			name:  "fixed",
			parse: fixed.Parse,
			format: func(x fixed.Q16, p int) string {
				if p < 0 {
					return x.String()
				}
				return strconv.FormatFloat(x.Float64(), 'f', p, 64)
			},
		}}, nil
	case "decimal":
		return engine[decimal.Decimal]{codec[decimal.Decimal]{
			name:  "decimal",
			parse: decimal.NewFromString,
			format: func(x decimal.Decimal, p int) string {
				if p < 0 {
					return x.String()
				}
				return x.StringFixed(int32(p))
			},
		}}, nil
	}
	return nil, fmt.Errorf("unsupported element type %q", typ)
}

func (e engine[T]) scalar(name, s string) (T, error) {
	var zero T
	s = strings.TrimSpace(s)
	if s == "" {
		return zero, fmt.Errorf("missing scalar %s", name)
	}
	x, err := e.parse(s)
	if err != nil {
		return zero, fmt.Errorf("scalar %s: %w", name, err)
	}
	return x, nil
}

// vec parses "1,2,3". An empty string or "[]" is the empty vector.
func (e engine[T]) vec(name, s string) (*vector.Vector[T], error) {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(strings.TrimPrefix(s, "["), "]")
	if strings.TrimSpace(s) == "" {
		return vector.New[T](), nil
	}
	fields := strings.Split(s, ",")
	elems := make([]T, len(fields))
	for i, f := range fields {
		x, err := e.parse(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("vector %s element %d: %w", name, i, err)
		}
		elems[i] = x
	}
	return vector.New(elems...), nil
}

func (e engine[T]) formatVector(v *vector.Vector[T], precision int) string {
	parts := make([]string, 0, v.Dimension())
	for _, x := range v.All() {
		parts = append(parts, e.format(x, precision))
	}
	return strings.Join(parts, ",")
}

// operands parses the named inputs of job in order.
func (e engine[T]) operands(job Job, names ...string) ([]*vector.Vector[T], error) {
	src := map[string]string{"a": job.A, "b": job.B, "c": job.C}
	out := make([]*vector.Vector[T], len(names))
	for i, n := range names {
		v, err := e.vec(n, src[n])
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func (e engine[T]) Eval(job Job, precision int) (string, error) {
	vecResult := func(v *vector.Vector[T], err error) (string, error) {
		if err != nil {
			return "", err
		}
		return e.formatVector(v, precision), nil
	}
	scalarResult := func(x T, err error) (string, error) {
		if err != nil {
			return "", err
		}
		return e.format(x, precision), nil
	}

	switch op := strings.ToLower(strings.TrimSpace(job.Op)); op {
	case "neg", "mag", "norm":
		v, err := e.operands(job, "a")
		if err != nil {
			return "", err
		}
		switch op {
		case "neg":
			return vecResult(vector.Negate(v[0]))
		case "mag":
			return scalarResult(vector.Magnitude(v[0]))
		default:
			return vecResult(vector.Normalize(v[0]))
		}

	case "add", "sub", "mul", "min", "max", "cross", "dot", "dist", "eq":
		v, err := e.operands(job, "a", "b")
		if err != nil {
			return "", err
		}
		a, b := v[0], v[1]
		switch op {
		case "add":
			return vecResult(vector.Add(a, b))
		case "sub":
			return vecResult(vector.Subtract(a, b))
		case "mul":
			return vecResult(vector.MultiplyElements(a, b))
		case "min":
			return vecResult(vector.Min(a, b))
		case "max":
			return vecResult(vector.Max(a, b))
		case "cross":
			return vecResult(vector.Cross(a, b))
		case "dot":
			return scalarResult(vector.Dot(a, b))
		case "dist":
			return scalarResult(vector.Distance(a, b))
		default:
			return e.equal(a, b, job.Tolerance)
		}

	case "scale", "lerp":
		names := []string{"a"}
		if op == "lerp" {
			names = append(names, "b")
		}
		v, err := e.operands(job, names...)
		if err != nil {
			return "", err
		}
		t, err := e.scalar("t", job.T)
		if err != nil {
			return "", err
		}
		if op == "scale" {
			return vecResult(vector.Multiply(v[0], t))
		}
		return vecResult(vector.Lerp(v[0], v[1], t))

	case "bary":
		v, err := e.operands(job, "a", "b", "c")
		if err != nil {
			return "", err
		}
		u, err := e.scalar("u", job.U)
		if err != nil {
			return "", err
		}
		w, err := e.scalar("v", job.V)
		if err != nil {
			return "", err
		}
		return vecResult(vector.Barycentric(v[0], v[1], v[2], u, w))

	default:
		return "", fmt.Errorf("%w %q", errUnknownOp, job.Op)
	}
}

// equal compares exactly when tolerance is empty.
func (e engine[T]) equal(a, b *vector.Vector[T], tolerance string) (string, error) {
	if strings.TrimSpace(tolerance) == "" {
		return strconv.FormatBool(vector.Equal(a, b)), nil
	}
	tol, err := e.scalar("tolerance", tolerance)
	if err != nil {
		return "", err
	}
	return strconv.FormatBool(vector.EqualWithin(a, b, tol)), nil
}

func (e engine[T]) Entries() []arith.EntryInfo {
	return arith.Entries[T]()
}
