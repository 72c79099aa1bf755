package conformance

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wippyai/writ/errors"
	"github.com/wippyai/writ/export"
	"github.com/wippyai/writ/records"
)

func newRegistry(t *testing.T, engine *records.Engine) *export.Registry {
	t.Helper()
	reg := export.NewRegistry()
	require.NoError(t, reg.RegisterHost(export.NewRecordHost(engine)))
	return reg
}

func TestSuite_Passes(t *testing.T) {
	policies := map[string]records.RecordTransform{
		records.PolicyAgeByTen: records.AgeByTenPolicy,
		records.PolicyFixture:  records.NormalizeTo(records.DefaultFixture),
	}
	variants := []records.SampleVariant{records.SamplePopulated, records.SampleEmpty}

	for name, policy := range policies {
		for _, variant := range variants {
			t.Run(name+"/"+variant.String(), func(t *testing.T) {
				engine := records.NewEngine(records.WithTransform(policy), records.WithSampleVariant(variant))
				report := NewRunner(newRegistry(t, engine)).Run(context.Background(), Suite(policy, variant))

				for _, res := range report.Failed() {
					t.Errorf("case %q failed: value=%v err=%v", res.Case.Name, res.Value, res.Err)
				}
				assert.True(t, report.Passed())
				assert.Len(t, report.Results, len(Suite(policy, variant)))
			})
		}
	}
}

func TestSuite_DetectsWrongPolicy(t *testing.T) {
	engine := records.NewEngine(records.WithTransform(records.NormalizeTo(records.DefaultFixture)))
	report := NewRunner(newRegistry(t, engine)).Run(context.Background(), Suite(records.AgeByTenPolicy, records.SamplePopulated))

	failed := report.Failed()
	require.Len(t, failed, 1)
	assert.Equal(t, "transform-collection sample populated", failed[0].Case.Name)
	assert.True(t, stderrors.Is(failed[0].Err, &errors.Error{Phase: errors.PhaseExpect, Kind: errors.KindMismatch}))
}

type fakeInvoker struct {
	results map[string]any
	errs    map[string]error
	calls   []string
}

func (f *fakeInvoker) Invoke(_ context.Context, name string, _ ...any) (any, error) {
	f.calls = append(f.calls, name)
	return f.results[name], f.errs[name]
}

func TestRunner_Outcomes(t *testing.T) {
	inv := &fakeInvoker{
		results: map[string]any{"ok": int32(3), "wrong": int32(4)},
		errs:    map[string]error{"boom": stderrors.New("boom")},
	}
	cases := []Case{
		{Name: "match", Export: "ok", Expect: 3},
		{Name: "no expectation", Export: "ok"},
		{Name: "mismatch", Export: "wrong", Expect: 3},
		{Name: "call error", Export: "boom", Expect: 3},
		{Name: "wanted error", Export: "boom", WantErr: true},
		{Name: "missing error", Export: "ok", WantErr: true},
	}

	report := NewRunner(inv).Run(context.Background(), cases)
	require.Len(t, report.Results, len(cases))

	passed := make(map[string]bool)
	for _, res := range report.Results {
		passed[res.Case.Name] = res.Passed
	}
	assert.Equal(t, map[string]bool{
		"match":          true,
		"no expectation": true,
		"mismatch":       false,
		"call error":     false,
		"wanted error":   true,
		"missing error":  false,
	}, passed)
	assert.Len(t, report.Failed(), 3)
	assert.False(t, report.Passed())
	assert.EqualError(t, report.Results[3].Err, "boom")
}

func TestRunner_Cancelled(t *testing.T) {
	inv := &fakeInvoker{results: map[string]any{"ok": 1}}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report := NewRunner(inv).Run(ctx, []Case{{Name: "a", Export: "ok"}, {Name: "b", Export: "ok"}})

	assert.Empty(t, inv.calls)
	require.Len(t, report.Failed(), 2)
	assert.ErrorIs(t, report.Results[0].Err, context.Canceled)
}

func TestRunner_Batch(t *testing.T) {
	reg := newRegistry(t, nil)
	cases := BatchCases("construct-flat", [][]any{{"Alice", 30}, {"Bob"}})

	report := NewRunner(reg).Run(context.Background(), cases)

	require.Len(t, report.Results, 2)
	assert.True(t, report.Results[0].Passed)
	assert.Equal(t, records.FlatRecord{Name: "Alice", Age: 30}, report.Results[0].Value)
	assert.False(t, report.Results[1].Passed)
	assert.True(t, stderrors.Is(report.Results[1].Err, &errors.Error{Phase: errors.PhaseArgs, Kind: errors.KindArity}))
}

func TestRunner_WantKind(t *testing.T) {
	inv := &fakeInvoker{
		errs: map[string]error{
			"bounds": errors.OutOfBounds(errors.PhaseTransform, "transform-collection", []string{"codes"}, 1, 0),
			"arity":  errors.Arity("transform-collection", 1, 0),
			"plain":  stderrors.New("boom"),
		},
		results: map[string]any{"ok": 1},
	}
	cases := []Case{
		{Name: "bounds", Export: "bounds", WantKind: errors.KindOutOfBounds},
		{Name: "arity", Export: "arity", WantKind: errors.KindOutOfBounds},
		{Name: "plain", Export: "plain", WantKind: errors.KindOutOfBounds},
		{Name: "ok", Export: "ok", WantKind: errors.KindOutOfBounds},
	}

	report := NewRunner(inv).Run(context.Background(), cases)

	require.Len(t, report.Results, 4)
	assert.True(t, report.Results[0].Passed)
	for _, res := range report.Results[1:] {
		assert.False(t, res.Passed, res.Case.Name)
		assert.True(t, stderrors.Is(res.Err, &errors.Error{Phase: errors.PhaseExpect, Kind: errors.KindMismatch}), res.Case.Name)
	}
}

func TestSuite_EmptyCodesPinsKind(t *testing.T) {
	for _, c := range Suite(nil, records.SamplePopulated) {
		if c.Name == "transform-collection empty codes" {
			assert.Equal(t, errors.KindOutOfBounds, c.WantKind)
			return
		}
	}
	t.Fatal("suite has no empty-codes case")
}
