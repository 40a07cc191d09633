package ui

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/arthur-debert/legacychain/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sample = &types.WillRecord{
	ContentHash:   "abc123",
	Beneficiaries: []types.Identity{"GBENEFICIARY1", "GBENEFICIARY2"},
	Executed:      false,
}

func TestRenderWill_Text(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderWill(&buf, "GOWNER", sample, FormatText))

	want := "Owner:         GOWNER\n" +
		"Content hash:  abc123\n" +
		"Beneficiaries: GBENEFICIARY1, GBENEFICIARY2\n" +
		"Status:        pending\n"
	assert.Equal(t, want, buf.String())
}

func TestRenderWill_TextExecutedNoBeneficiaries(t *testing.T) {
	var buf bytes.Buffer
	rec := &types.WillRecord{ContentHash: "", Beneficiaries: []types.Identity{}, Executed: true}
	require.NoError(t, RenderWill(&buf, "GOWNER", rec, FormatAuto))

	assert.Contains(t, buf.String(), "Beneficiaries: (none)")
	assert.Contains(t, buf.String(), "Status:        executed")
}

func TestRenderWill_Missing(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderWill(&buf, "GOWNER", nil, FormatText))
	assert.Equal(t, "no will registered for GOWNER\n", buf.String())

	buf.Reset()
	require.NoError(t, RenderWill(&buf, "GOWNER", nil, FormatJSON))
	assert.Equal(t, "null\n", buf.String())
}

func TestRenderWill_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderWill(&buf, "GOWNER", sample, FormatJSON))

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "GOWNER", got["owner"])
	assert.Equal(t, "abc123", got["content_hash"])
	assert.Equal(t, []interface{}{"GBENEFICIARY1", "GBENEFICIARY2"}, got["beneficiaries"])
	assert.Equal(t, false, got["executed"])
}

func TestRenderWill_Terminal(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderWill(&buf, "GOWNER", sample, FormatTerminal))

	out := buf.String()
	assert.Contains(t, out, "GOWNER")
	assert.Contains(t, out, "abc123")
	assert.Contains(t, out, "pending")
	assert.Contains(t, out, "GBENEFICIARY2")
}

func TestWillMarkdown(t *testing.T) {
	md := WillMarkdown("GOWNER", sample)
	assert.Contains(t, md, "# Will of `GOWNER`")
	assert.Contains(t, md, "**Status:** pending")
	assert.Contains(t, md, "1. `GBENEFICIARY1`")
	assert.Contains(t, md, "2. `GBENEFICIARY2`")

	assert.Contains(t, WillMarkdown("GOWNER", nil), "_No will registered._")
}

func TestRenderWill_Markdown(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderWill(&buf, "GOWNER", sample, FormatMarkdown))

	out := buf.String()
	assert.Contains(t, out, "abc123")
	assert.Contains(t, out, "GBENEFICIARY1")
}
