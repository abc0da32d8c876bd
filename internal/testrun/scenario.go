package testrun

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// Scenario breaks one assertion in a test file by literal substitution of
// the first occurrence of Find. File is relative to the runner directory.
type Scenario struct {
	Key     string
	File    string
	Find    string
	Replace string
}

// Catalog maps scenario keys accepted by /api/run-tests to their scenario.
type Catalog map[string]Scenario

const (
	doctorsTestFile     = "internal/handlers/doctors_test.go"
	patientsTestFile    = "internal/handlers/patients_test.go"
	medicinesTestFile   = "internal/handlers/medicines_test.go"
	specialtiesTestFile = "internal/handlers/specialties_test.go"
)

// DefaultCatalog returns the scenarios targeting the handler tests of this
// repository. The Find strings must stay in sync with those files.
func DefaultCatalog() Catalog {
	return NewCatalog(
		Scenario{
			Key:     "doctors-create",
			File:    doctorsTestFile,
			Find:    "assert.Equal(t, http.StatusCreated, created.Code)",
			Replace: "assert.Equal(t, http.StatusInternalServerError, created.Code) // injected failure",
		},
		Scenario{
			Key:     "doctors-update",
			File:    doctorsTestFile,
			Find:    "assert.Equal(t, http.StatusOK, updated.Code)",
			Replace: "assert.Equal(t, http.StatusNotFound, updated.Code) // injected failure",
		},
		Scenario{
			Key:     "doctors-delete",
			File:    doctorsTestFile,
			Find:    "assert.Equal(t, http.StatusOK, deleted.Code)",
			Replace: "assert.Equal(t, http.StatusNotFound, deleted.Code) // injected failure",
		},
		Scenario{
			Key:     "patients-create",
			File:    patientsTestFile,
			Find:    "assert.Equal(t, http.StatusCreated, created.Code)",
			Replace: "assert.Equal(t, http.StatusInternalServerError, created.Code) // injected failure",
		},
		Scenario{
			Key:     "medicines-create",
			File:    medicinesTestFile,
			Find:    "assert.Equal(t, http.StatusCreated, created.Code)",
			Replace: "assert.Equal(t, http.StatusInternalServerError, created.Code) // injected failure",
		},
		Scenario{
			Key:     "specialties-duplicate",
			File:    specialtiesTestFile,
			Find:    "assert.Equal(t, http.StatusConflict, duplicate.Code)",
			Replace: "assert.Equal(t, http.StatusCreated, duplicate.Code) // injected failure",
		},
	)
}

func NewCatalog(scenarios ...Scenario) Catalog {
	c := make(Catalog, len(scenarios))
	for _, s := range scenarios {
		c[s.Key] = s
	}
	return c
}

// Injector applies scenarios to files under root and restores them.
type Injector struct {
	root    string
	catalog Catalog
	log     *zap.Logger
}

func NewInjector(root string, catalog Catalog, log *zap.Logger) *Injector {
	return &Injector{root: root, catalog: catalog, log: log}
}

// Apply patches the files for keys. Unknown keys, unreadable files and Find
// strings that no longer match are logged and skipped. The returned restore
// function writes back the content each file had before the first patch.
func (in *Injector) Apply(keys []string) (applied []string, restore func() error) {
	originals := make(map[string]string)
	var order []string

	for _, key := range keys {
		sc, ok := in.catalog[key]
		if !ok {
			in.log.Warn("Unknown failure scenario", zap.String("key", key))
			continue
		}
		path := filepath.Join(in.root, sc.File)

		data, err := os.ReadFile(path)
		if err != nil {
			in.log.Error("Failed to read test file", zap.String("file", path), zap.Error(err))
			continue
		}
		content := string(data)
		patched := strings.Replace(content, sc.Find, sc.Replace, 1)
		if patched == content {
			in.log.Warn("Scenario text not found", zap.String("key", key), zap.String("file", path))
			continue
		}
		if err := os.WriteFile(path, []byte(patched), 0o644); err != nil {
			in.log.Error("Failed to patch test file", zap.String("file", path), zap.Error(err))
			continue
		}

		if _, seen := originals[path]; !seen {
			originals[path] = content
			order = append(order, path)
		}
		applied = append(applied, key)
	}

	restore = func() error {
		var errs []error
		for _, path := range order {
			if err := os.WriteFile(path, []byte(originals[path]), 0o644); err != nil {
				in.log.Error("Failed to restore test file", zap.String("file", path), zap.Error(err))
				errs = append(errs, fmt.Errorf("restore %s: %w", path, err))
			}
		}
		return errors.Join(errs...)
	}
	return applied, restore
}
