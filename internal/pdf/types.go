package pdf

import "github.com/tezlab/tezcheck/internal/analysis"

// CheckFileRequest asks for a compliance check of a PDF on disk.
type CheckFileRequest struct {
	Path string `json:"path"`
}

// CheckDataRequest asks for a compliance check of in-memory PDF bytes,
// as received from an upload.
type CheckDataRequest struct {
	FileName string `json:"fileName"`
	Data     []byte `json:"-"`
}

// CheckResult bundles the compliance report with extraction facts.
type CheckResult struct {
	FileName  string                   `json:"fileName"`
	PageCount int                      `json:"pageCount"`
	SizeBytes int64                    `json:"sizeBytes"`
	Cached    bool                     `json:"cached"`
	Report    *analysis.AnalysisReport `json:"report"`
}

// ValidateRequest asks whether bytes form a readable PDF.
type ValidateRequest struct {
	FileName string `json:"fileName"`
	Data     []byte `json:"-"`
}

// ValidateResult reports the validation outcome without failing the call.
type ValidateResult struct {
	FileName string `json:"fileName"`
	Valid    bool   `json:"valid"`
	Message  string `json:"message,omitempty"`
}
