package pdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckDataRejectsInvalidInput(t *testing.T) {
	svc := NewService(1024 * 1024)

	_, err := svc.CheckData(CheckDataRequest{FileName: "thesis.pdf", Data: nil})
	assert.Error(t, err)

	_, err = svc.CheckData(CheckDataRequest{FileName: "thesis.docx", Data: []byte("%PDF-1.4")})
	assert.Error(t, err)

	_, err = svc.CheckData(CheckDataRequest{FileName: "thesis.pdf", Data: []byte("not a pdf")})
	assert.Error(t, err)
}

func TestCheckFileMissing(t *testing.T) {
	svc := NewService(1024 * 1024)

	_, err := svc.CheckFile(CheckFileRequest{Path: "/nonexistent/thesis.pdf"})
	assert.Error(t, err)
}

func TestValidateNeverFails(t *testing.T) {
	svc := NewService(1024 * 1024)

	result, err := svc.Validate(ValidateRequest{FileName: "thesis.pdf", Data: []byte("garbage")})
	require.NoError(t, err)
	assert.False(t, result.Valid)
	assert.NotEmpty(t, result.Message)
	assert.Equal(t, "thesis.pdf", result.FileName)

	result, err = svc.Validate(ValidateRequest{FileName: "thesis.docx", Data: []byte("x")})
	require.NoError(t, err)
	assert.False(t, result.Valid)
	assert.Contains(t, result.Message, "not a PDF")
}

func TestCatalogExposed(t *testing.T) {
	svc := NewService(1024 * 1024)

	catalog := svc.Catalog()
	require.NotNil(t, catalog)
	assert.Greater(t, catalog.RuleCount(), 0)
	assert.Equal(t, "tr", catalog.Meta.Language)
}

func TestContentDigestStable(t *testing.T) {
	a := contentDigest([]byte("same bytes"))
	b := contentDigest([]byte("same bytes"))
	c := contentDigest([]byte("other bytes"))

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, a, 64)
}
