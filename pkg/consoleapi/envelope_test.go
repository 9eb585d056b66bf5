package consoleapi_test

import (
	"testing"

	"github.com/aussiebroadwan/riskconsole/pkg/consoleapi"
	"github.com/stretchr/testify/require"
)

func TestUnwrap(t *testing.T) {
	t.Parallel()

	t.Run("success yields data", func(t *testing.T) {
		t.Parallel()
		got, err := consoleapi.Unwrap[map[string]string]([]byte(`{"code":0,"message":"ok","data":{"x":"y"}}`))
		require.NoError(t, err)
		require.Equal(t, map[string]string{"x": "y"}, got)
	})

	t.Run("success without data yields zero value", func(t *testing.T) {
		t.Parallel()
		got, err := consoleapi.Unwrap[*consoleapi.App]([]byte(`{"code":0}`))
		require.NoError(t, err)
		require.Nil(t, got)

		list, err := consoleapi.Unwrap[[]int]([]byte(`{"code":0,"data":null}`))
		require.NoError(t, err)
		require.Nil(t, list)
	})

	t.Run("nonzero code fails with message and code", func(t *testing.T) {
		t.Parallel()
		_, err := consoleapi.Unwrap[any]([]byte(`{"code":7,"message":"bad"}`))

		var apiErr *consoleapi.APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, 7, apiErr.Code)
		require.Equal(t, "bad", apiErr.Message)
	})

	t.Run("nonzero code without message gets a default", func(t *testing.T) {
		t.Parallel()
		_, err := consoleapi.Unwrap[any]([]byte(`{"code":1902}`))

		var apiErr *consoleapi.APIError
		require.ErrorAs(t, err, &apiErr)
		require.NotEmpty(t, apiErr.Message)
	})

	t.Run("bare array passes through", func(t *testing.T) {
		t.Parallel()
		got, err := consoleapi.Unwrap[[]int]([]byte(`[1,2,3]`))
		require.NoError(t, err)
		require.Equal(t, []int{1, 2, 3}, got)
	})

	t.Run("string code is not an envelope", func(t *testing.T) {
		t.Parallel()
		got, err := consoleapi.Unwrap[map[string]any]([]byte(`{"code":"7","name":"x"}`))
		require.NoError(t, err)
		require.Equal(t, "x", got["name"])
	})
}

func TestMaybeUnwrap(t *testing.T) {
	t.Parallel()

	got, err := consoleapi.MaybeUnwrap[[]consoleapi.RiskLogItem]([]byte(`{"code":0,"data":[{"id":"a","app_id":"1","risk_type":300,"created_at":"x"}]}`))
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "300", got[0].RiskType.String())

	got, err = consoleapi.MaybeUnwrap[[]consoleapi.RiskLogItem]([]byte(`[{"id":"b","app_id":"1","risk_type":"200","created_at":"x"}]`))
	require.NoError(t, err)
	require.Equal(t, 200, got[0].RiskType.Int())

	got, err = consoleapi.MaybeUnwrap[[]consoleapi.RiskLogItem](nil)
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestDecodeShapes(t *testing.T) {
	t.Parallel()

	enveloped := []byte(`{"code":0,"data":{"name":"inner"}}`)
	bare := []byte(`{"name":"outer"}`)

	cases := []struct {
		name    string
		shape   consoleapi.Shape
		body    []byte
		want    string
		wantErr error
	}{
		{name: "envelope unwraps", shape: consoleapi.ShapeEnvelope, body: enveloped, want: "inner"},
		{name: "envelope rejects bare", shape: consoleapi.ShapeEnvelope, body: bare, wantErr: consoleapi.ErrNotEnveloped},
		{name: "bare ignores code", shape: consoleapi.ShapeBare, body: []byte(`{"code":5,"name":"kept"}`), want: "kept"},
		{name: "auto unwraps", shape: consoleapi.ShapeAuto, body: enveloped, want: "inner"},
		{name: "auto passes bare", shape: consoleapi.ShapeAuto, body: bare, want: "outer"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var out struct {
				Name string `json:"name"`
			}
			err := consoleapi.Decode(tc.body, tc.shape, &out)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, out.Name)
		})
	}
}

func TestDecodeMalformedBody(t *testing.T) {
	t.Parallel()

	var out []int
	require.Error(t, consoleapi.Decode([]byte(`{not json`), consoleapi.ShapeAuto, &out))
}
