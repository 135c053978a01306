package httpjson_test

import (
	"errors"
	"testing"

	"github.com/programme-lv/console/apierr"
	"github.com/programme-lv/console/httpjson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnwrapSuccessEnvelope(t *testing.T) {
	data, err := httpjson.Unwrap([]byte(`{"success": true, "data": {"x": 1}}`))
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"x": float64(1)}, data)
}

func TestUnwrapFailureEnvelope(t *testing.T) {
	_, err := httpjson.Unwrap([]byte(`{"success": false, "message": "boom"}`))
	require.Error(t, err)
	assert.Equal(t, "boom", err.Error())

	apiErr := &apierr.Error{}
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, apierr.ErrCodeRequestFailed, apiErr.ErrorCode())
}

func TestUnwrapFailureWithoutMessage(t *testing.T) {
	_, err := httpjson.Unwrap([]byte(`{"success": false}`))
	require.Error(t, err)
	assert.NotEmpty(t, err.Error(), "fallback message must not be empty")
}

func TestUnwrapStatusEnvelope(t *testing.T) {
	data, err := httpjson.Unwrap([]byte(`{"status": "success", "data": [1, 2]}`))
	require.NoError(t, err)
	assert.Equal(t, []any{float64(1), float64(2)}, data)

	_, err = httpjson.Unwrap([]byte(`{"status": "error", "message": "nope"}`))
	require.Error(t, err)
	assert.Equal(t, "nope", err.Error())
}

func TestUnwrapLegacyEnvelope(t *testing.T) {
	data, err := httpjson.Unwrap([]byte(`{"error": null, "data": {"id": 7}}`))
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"id": float64(7)}, data)

	_, err = httpjson.Unwrap([]byte(`{"error": "invalid-parameter", "data": "display id is required"}`))
	require.Error(t, err)
	assert.Equal(t, "display id is required", err.Error(),
		"a descriptive string in data beats the short error kind")

	_, err = httpjson.Unwrap([]byte(`{"error": "permission-denied", "data": null}`))
	require.Error(t, err)
	assert.Equal(t, "permission-denied", err.Error())
}

func TestUnwrapBareBodyPassesThrough(t *testing.T) {
	data, err := httpjson.Unwrap([]byte(`[1, 2, 3]`))
	require.NoError(t, err)
	assert.Equal(t, []any{float64(1), float64(2), float64(3)}, data)

	data, err = httpjson.Unwrap([]byte(`{"results": [], "total": 0}`))
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"results": []any{}, "total": float64(0)}, data)
}

func TestUnwrapGarbage(t *testing.T) {
	_, err := httpjson.Unwrap([]byte(`not json`))
	assert.Error(t, err)
}
