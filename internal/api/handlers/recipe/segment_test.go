package recipe

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleSegment(t *testing.T) {
	body := `{"text": "#Intro\n\nMix well\n\n#Bake\n\nBake for 10 min", "split_into_steps": true}`

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/segment", strings.NewReader(body))
	HandleSegment(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp SegmentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Steps, 2)
	assert.Equal(t, "Intro", resp.Steps[0].Name)
	assert.Equal(t, "Mix well", resp.Steps[0].Instruction)
	assert.Equal(t, "Bake", resp.Steps[1].Name)
}

func TestHandleSegmentEmptyText(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/segment",
		strings.NewReader(`{"text": "", "split_into_steps": true}`))
	HandleSegment(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp SegmentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Steps)
}

func TestHandleSegmentInvalidJSON(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/segment", strings.NewReader(`{not json`))
	HandleSegment(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
