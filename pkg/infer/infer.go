package infer

import (
	"encoding/json"
	"fmt"
	"math"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"
)

// DefaultParallelThreshold is the array size above which element inference
// fans out across goroutines. Below it the fan-out overhead outweighs the
// win; either strategy produces identical output.
const DefaultParallelThreshold = 8

// Options controls a single inference call. The value is read-only once
// passed in and applies uniformly to every value the call visits.
type Options struct {
	// DetectFormat enables string format detection ("integer", "date",
	// "date-time").
	DetectFormat bool

	// ParallelThreshold is the minimum array length that triggers parallel
	// element inference. Zero or negative disables parallelism.
	ParallelThreshold int
}

// DefaultOptions returns the options used by Value and Samples: format
// detection on, parallel fan-out above DefaultParallelThreshold elements.
func DefaultOptions() *Options {
	return &Options{
		DetectFormat:      true,
		ParallelThreshold: DefaultParallelThreshold,
	}
}

// Value infers a schema fragment for a single decoded JSON value using
// default options.
func Value(v any) (*Fragment, error) {
	return ValueWithOptions(DefaultOptions(), v)
}

// ValueWithOptions infers a schema fragment for a single decoded JSON value.
//
// The value tree is the usual product of encoding/json decoding with
// json.Decoder.UseNumber: nil, bool, string, json.Number, []any, and
// map[string]any. Native Go numbers are accepted too; their static type
// decides integer vs number classification, so float64(1) is "number".
// An error is returned only for values with no JSON kind, never for a
// well-formed tree.
func ValueWithOptions(opts *Options, v any) (*Fragment, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	in := &inferrer{opts: opts}
	return in.infer(v)
}

// Samples reconciles several independently observed top-level samples into
// one fragment, exactly as sibling array elements are reconciled: identical
// shapes collapse, object shapes merge, anything else unions.
func Samples(opts *Options, values ...any) (*Fragment, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("no samples to infer from")
	}
	if opts == nil {
		opts = DefaultOptions()
	}
	in := &inferrer{opts: opts}
	frags, err := in.inferAll(values)
	if err != nil {
		return nil, err
	}
	return reconcile(dedupe(frags)), nil
}

type inferrer struct {
	opts *Options
}

func (in *inferrer) infer(v any) (*Fragment, error) {
	switch val := v.(type) {
	case nil:
		return &Fragment{Kind: KindNull}, nil
	case bool:
		return &Fragment{Kind: KindBoolean}, nil
	case string:
		return in.inferString(val), nil
	case json.Number:
		return inferNumberLiteral(val), nil
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		return &Fragment{Kind: KindInteger}, nil
	case float64:
		return inferFloat(val)
	case float32:
		return inferFloat(float64(val))
	case []any:
		return in.inferArray(val)
	case map[string]any:
		return in.inferObject(val)
	default:
		return nil, fmt.Errorf("cannot infer a JSON kind for %T", v)
	}
}

func (in *inferrer) inferString(s string) *Fragment {
	f := &Fragment{Kind: KindString}
	if in.opts.DetectFormat {
		f.Format = detectFormat(s)
	}
	return f
}

// inferNumberLiteral classifies by the literal's own encoding: "1.0" and
// "1e2" are numbers even though their values are whole, "1" is an integer.
func inferNumberLiteral(n json.Number) *Fragment {
	if strings.ContainsAny(n.String(), ".eE") {
		return &Fragment{Kind: KindNumber}
	}
	return &Fragment{Kind: KindInteger}
}

func inferFloat(f float64) (*Fragment, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, fmt.Errorf("cannot represent %v as JSON", f)
	}
	return &Fragment{Kind: KindNumber}, nil
}

func (in *inferrer) inferArray(arr []any) (*Fragment, error) {
	if len(arr) == 0 {
		// No element to learn from: items stays unconstrained.
		return &Fragment{Kind: KindArray}, nil
	}
	frags, err := in.inferAll(arr)
	if err != nil {
		return nil, err
	}
	return &Fragment{Kind: KindArray, Items: reconcile(dedupe(frags))}, nil
}

// inferAll infers one fragment per element. Each element is a pure function
// of its own value, so large batches fan out across goroutines; results land
// in their input slot, and dedupe re-sorts canonically afterwards, so the
// schedule never shows in the output.
func (in *inferrer) inferAll(values []any) ([]*Fragment, error) {
	frags := make([]*Fragment, len(values))

	if th := in.opts.ParallelThreshold; th > 0 && len(values) > th {
		g := new(errgroup.Group)
		g.SetLimit(runtime.GOMAXPROCS(0))
		for i := range values {
			g.Go(func() error {
				f, err := in.infer(values[i])
				if err != nil {
					return err
				}
				frags[i] = f
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
		return frags, nil
	}

	for i := range values {
		f, err := in.infer(values[i])
		if err != nil {
			return nil, err
		}
		frags[i] = f
	}
	return frags, nil
}

func (in *inferrer) inferObject(obj map[string]any) (*Fragment, error) {
	if len(obj) == 0 {
		return &Fragment{Kind: KindObject}, nil
	}
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	props := make([]Property, 0, len(obj))
	required := make([]string, 0, len(obj))
	for _, k := range keys {
		f, err := in.infer(obj[k])
		if err != nil {
			return nil, err
		}
		props = append(props, Property{Name: k, Schema: f})
		// A single instance requires all of its own keys; narrowing
		// happens only through merging.
		required = append(required, k)
	}
	return &Fragment{Kind: KindObject, Properties: props, Required: required}, nil
}

// reconcile turns a deduplicated sibling set into one fragment: a sole
// survivor passes through, an all-object set merges, anything else unions.
func reconcile(distinct []*Fragment) *Fragment {
	if len(distinct) == 1 {
		return distinct[0]
	}
	if merged, ok := tryMerge(distinct); ok {
		return merged
	}
	return newUnion(distinct)
}
