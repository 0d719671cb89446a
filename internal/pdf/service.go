package pdf

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/tezlab/tezcheck/internal/analysis"
)

const (
	reportCacheTTL     = time.Hour
	reportCacheCleanup = 10 * time.Minute
)

// Service is the facade the transports talk to: validate, extract, build
// the document model, evaluate the rule catalog. Reports are cached by
// content digest since evaluation is deterministic for identical bytes.
type Service struct {
	extractor *Extractor
	validator *Validator
	cache     *gocache.Cache
}

// NewService creates a service with the specified file size limit.
func NewService(maxFileSize int64) *Service {
	return &Service{
		extractor: NewExtractor(maxFileSize),
		validator: NewValidator(maxFileSize),
		cache:     gocache.New(reportCacheTTL, reportCacheCleanup),
	}
}

// CheckFile runs the full compliance check against a PDF on disk.
func (s *Service) CheckFile(req CheckFileRequest) (*CheckResult, error) {
	data, err := s.readFile(req.Path)
	if err != nil {
		return nil, err
	}

	return s.CheckData(CheckDataRequest{
		FileName: filepath.Base(req.Path),
		Data:     data,
	})
}

// CheckData runs the full compliance check against in-memory PDF bytes.
func (s *Service) CheckData(req CheckDataRequest) (*CheckResult, error) {
	if err := s.validator.ValidateData(req.FileName, req.Data); err != nil {
		return nil, err
	}

	digest := contentDigest(req.Data)
	if cached, found := s.cache.Get(digest); found {
		result := cached.(*CheckResult)
		return &CheckResult{
			FileName:  req.FileName,
			PageCount: result.PageCount,
			SizeBytes: result.SizeBytes,
			Cached:    true,
			Report:    result.Report,
		}, nil
	}

	pages, err := s.extractor.ExtractData(req.Data)
	if err != nil {
		return nil, err
	}

	doc := analysis.BuildDocument(pages)
	report := analysis.Evaluate(doc)

	result := &CheckResult{
		FileName:  req.FileName,
		PageCount: doc.PageCount,
		SizeBytes: int64(len(req.Data)),
		Report:    report,
	}
	s.cache.Set(digest, result, gocache.DefaultExpiration)

	return result, nil
}

// Validate reports whether the given bytes form a readable PDF without
// failing the call on invalid input.
func (s *Service) Validate(req ValidateRequest) (*ValidateResult, error) {
	result := &ValidateResult{FileName: req.FileName}
	if err := s.validator.ValidateData(req.FileName, req.Data); err != nil {
		result.Message = err.Error()
		return result, nil
	}
	result.Valid = true
	return result, nil
}

// Catalog exposes the embedded rule catalog for listing endpoints.
func (s *Service) Catalog() *analysis.RuleCatalog {
	return analysis.DefaultCatalog()
}

func (s *Service) readFile(path string) ([]byte, error) {
	if err := s.validator.ValidateFile(path); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read file: %w", err)
	}
	return data, nil
}

func contentDigest(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
