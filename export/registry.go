package export

import (
	"context"
	"fmt"
	"reflect"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/wippyai/writ"
	"github.com/wippyai/writ/errors"
)

const tracerName = "github.com/wippyai/writ/export"

var (
	contextType = reflect.TypeOf((*context.Context)(nil)).Elem()
	errorType   = reflect.TypeOf((*error)(nil)).Elem()
)

// Export is a registered operation.
type Export struct {
	fn        reflect.Value
	Namespace string
	Name      string
	Signature Signature
	takesCtx  bool
	hasResult bool
}

// QualifiedName returns "namespace#name".
func (e *Export) QualifiedName() string {
	return e.Namespace + "#" + e.Name
}

// Registry maps namespaced export names to handlers.
type Registry struct {
	exports map[string]map[string]*Export
	types   *typeDeriver
	metrics *Metrics
	tracer  trace.Tracer
	mu      sync.RWMutex
}

// Option configures a Registry.
type Option func(*Registry)

// WithMetrics records every call in m.
func WithMetrics(m *Metrics) Option {
	return func(r *Registry) {
		r.metrics = m
	}
}

// WithTracer overrides the tracer taken from the global OpenTelemetry
// provider.
func WithTracer(t trace.Tracer) Option {
	return func(r *Registry) {
		if t != nil {
			r.tracer = t
		}
	}
}

func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		exports: make(map[string]map[string]*Export),
		types:   newTypeDeriver(),
		tracer:  otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Metrics returns the registry's metrics, or nil when none were configured.
func (r *Registry) Metrics() *Metrics {
	return r.metrics
}

// RegisterHost registers every exported method of h except Namespace and
// ParamNames under h.Namespace().
func (r *Registry) RegisterHost(h writ.Host) error {
	ns := h.Namespace()
	if ns == "" {
		return errors.InvalidInput(errors.PhaseRegister, "namespace cannot be empty")
	}

	var names map[string][]string
	if pn, ok := h.(writ.ParamNamer); ok {
		names = pn.ParamNames()
	}

	rv := reflect.ValueOf(h)
	rt := rv.Type()

	r.mu.Lock()
	defer r.mu.Unlock()

	for i := 0; i < rt.NumMethod(); i++ {
		method := rt.Method(i)
		if !method.IsExported() || method.Name == "Namespace" || method.Name == "ParamNames" {
			continue
		}

		name := toKebabCase(method.Name)
		exp, err := r.newExport(ns, name, rv.Method(i), names[name])
		if err != nil {
			return errors.Registration(ns, name, err)
		}
		r.add(exp)
		Logger().Debug("registered export",
			zap.String("export", exp.QualifiedName()),
			zap.Stringer("signature", exp.Signature))
	}
	return nil
}

// RegisterFunc registers fn as namespace#name. paramNames is optional.
func (r *Registry) RegisterFunc(namespace, name string, fn any, paramNames ...string) error {
	if namespace == "" {
		return errors.InvalidInput(errors.PhaseRegister, "namespace cannot be empty")
	}
	if name == "" {
		return errors.InvalidInput(errors.PhaseRegister, "function name cannot be empty")
	}

	rv := reflect.ValueOf(fn)
	if rv.Kind() != reflect.Func {
		return errors.New(errors.PhaseRegister, errors.KindTypeMismatch).
			GoType(fmt.Sprintf("%T", fn)).
			Detail("handler must be a function").
			Build()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	exp, err := r.newExport(namespace, name, rv, paramNames)
	if err != nil {
		return errors.Registration(namespace, name, err)
	}
	r.add(exp)
	return nil
}

// newExport validates the handler shape and derives its signature.
// Caller holds r.mu.
func (r *Registry) newExport(ns, name string, fn reflect.Value, paramNames []string) (*Export, error) {
	ft := fn.Type()
	exp := &Export{Namespace: ns, Name: name, fn: fn}

	first := 0
	if ft.NumIn() > 0 && ft.In(0) == contextType {
		exp.takesCtx = true
		first = 1
	}
	if ft.IsVariadic() {
		return nil, errors.InvalidInput(errors.PhaseRegister, "variadic handlers are not supported")
	}

	for i := first; i < ft.NumIn(); i++ {
		wt, err := r.types.derive(ft.In(i))
		if err != nil {
			return nil, err
		}
		pname := fmt.Sprintf("arg%d", i-first)
		if j := i - first; j < len(paramNames) && paramNames[j] != "" {
			pname = paramNames[j]
		}
		exp.Signature.Params = append(exp.Signature.Params, Param{Name: pname, Type: wt, GoType: ft.In(i)})
	}

	switch ft.NumOut() {
	case 0:
	case 1:
		if ft.Out(0) == errorType {
			exp.Signature.ReturnsError = true
		} else {
			exp.hasResult = true
		}
	case 2:
		if ft.Out(1) != errorType {
			return nil, errors.InvalidInput(errors.PhaseRegister, "second result must be error")
		}
		exp.hasResult = true
		exp.Signature.ReturnsError = true
	default:
		return nil, errors.InvalidInput(errors.PhaseRegister, "handlers return at most a value and an error")
	}

	if exp.hasResult {
		wt, err := r.types.derive(ft.Out(0))
		if err != nil {
			return nil, err
		}
		exp.Signature.Result = wt
	}
	return exp, nil
}

// add stores exp, replacing an export of the same name. Caller holds r.mu.
func (r *Registry) add(exp *Export) {
	if r.exports[exp.Namespace] == nil {
		r.exports[exp.Namespace] = make(map[string]*Export)
	}
	r.exports[exp.Namespace][exp.Name] = exp
}

// Lookup resolves "namespace#name" or a bare name that is unique across
// namespaces.
func (r *Registry) Lookup(name string) (*Export, error) {
	ns, fn := splitQualified(name)

	r.mu.RLock()
	defer r.mu.RUnlock()

	if ns != "" {
		if exp, ok := r.exports[ns][fn]; ok {
			return exp, nil
		}
		return nil, errors.NotFound(errors.PhaseInvoke, "export", name)
	}

	var found []*Export
	for _, funcs := range r.exports {
		if exp, ok := funcs[fn]; ok {
			found = append(found, exp)
		}
	}
	switch len(found) {
	case 0:
		return nil, errors.NotFound(errors.PhaseInvoke, "export", name)
	case 1:
		return found[0], nil
	}
	namespaces := make([]string, len(found))
	for i, exp := range found {
		namespaces[i] = exp.Namespace
	}
	sort.Strings(namespaces)
	return nil, errors.Ambiguous(errors.PhaseInvoke, fn, namespaces)
}

// Exports returns all exports sorted by namespace then name.
func (r *Registry) Exports() []*Export {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*Export
	for _, funcs := range r.exports {
		for _, exp := range funcs {
			out = append(out, exp)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Namespace != out[j].Namespace {
			return out[i].Namespace < out[j].Namespace
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// Invoke calls the named export with generic arguments. The result is the
// handler's typed return value, or nil for exports without one.
func (r *Registry) Invoke(ctx context.Context, name string, args ...any) (any, error) {
	exp, err := r.Lookup(name)
	if err != nil {
		return nil, err
	}
	return r.Call(ctx, exp, args...)
}

// Call invokes a resolved export.
func (r *Registry) Call(ctx context.Context, exp *Export, args ...any) (result any, err error) {
	qualified := exp.QualifiedName()
	callID := uuid.NewString()

	ctx, span := r.tracer.Start(ctx, "export.call", trace.WithAttributes(
		attribute.String("writ.export", qualified),
		attribute.String("writ.call_id", callID),
		attribute.Int("writ.args", len(args)),
	))
	start := time.Now()
	defer func() {
		elapsed := time.Since(start)
		r.metrics.observe(qualified, err, elapsed)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			Logger().Debug("export call failed",
				zap.String("call_id", callID),
				zap.String("export", qualified),
				zap.Duration("elapsed", elapsed),
				zap.Error(err))
		} else {
			Logger().Debug("export call",
				zap.String("call_id", callID),
				zap.String("export", qualified),
				zap.Duration("elapsed", elapsed))
		}
		span.End()
	}()

	params := exp.Signature.Params
	if len(args) != len(params) {
		return nil, errors.Arity(exp.Name, len(params), len(args))
	}

	in := make([]reflect.Value, 0, len(params)+1)
	if exp.takesCtx {
		in = append(in, reflect.ValueOf(ctx))
	}
	for i, p := range params {
		v, err := shapeArg(exp.Name, p, args[i])
		if err != nil {
			return nil, err
		}
		in = append(in, v)
	}

	out := exp.fn.Call(in)

	if exp.Signature.ReturnsError {
		if errv := out[len(out)-1]; !errv.IsNil() {
			return nil, errv.Interface().(error)
		}
	}
	if exp.hasResult {
		return out[0].Interface(), nil
	}
	return nil, nil
}
