package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportCSV(t *testing.T) {
	body := []byte(`[
		{"score": 87, "skills": ["Python", "SQL"], "filename": "a.pdf"},
		{"filename": "b.docx", "score": 62.5, "jobs": [{"role": "Data Analyst"}], "note": null}
	]`)

	out, err := NewExportService().ExportCSV(body)
	require.NoError(t, err)

	want := "score,skills,filename,jobs,note\n" +
		"87,\"Python, SQL\",a.pdf,,\n" +
		"62.5,,b.docx,\"[{\"\"role\"\":\"\"Data Analyst\"\"}]\",\n"
	assert.Equal(t, want, string(out))
}

func TestExportCSV_NestedObjectAndBool(t *testing.T) {
	out, err := NewExportService().ExportCSV([]byte(`[{"meta": {"a": 1}, "ok": true}]`))
	require.NoError(t, err)
	assert.Equal(t, "meta,ok\n\"{\"\"a\"\":1}\",true\n", string(out))
}

func TestExportCSV_InvalidInput(t *testing.T) {
	svc := NewExportService()

	for _, body := range []string{``, `{}`, `[]`, `[1, 2]`, `[{"a": 1}`, `not json`} {
		_, err := svc.ExportCSV([]byte(body))
		assert.ErrorIs(t, err, ErrInvalidInput, body)
	}
}
