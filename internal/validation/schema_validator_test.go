package validation

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const pageSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "array",
	"items": {
		"type": "object",
		"properties": {
			"name": {"type": "string", "minLength": 1},
			"items": {
				"type": "array",
				"items": {
					"type": "object",
					"properties": {
						"id": {"type": "integer", "minimum": 0},
						"name": {"type": "string"}
					},
					"required": ["id", "name"]
				}
			}
		},
		"required": ["name", "items"]
	}
}`

func TestSchemaValidator_ValidateFile(t *testing.T) {
	validator := NewSchemaValidator()
	tmpDir := t.TempDir()

	schemaPath := filepath.Join(tmpDir, "pages.schema.json")
	if err := os.WriteFile(schemaPath, []byte(pageSchema), 0644); err != nil {
		t.Fatalf("Failed to write schema file: %v", err)
	}

	tests := []struct {
		name      string
		data      string
		wantError bool
		errorMsg  string
	}{
		{
			name: "valid pages",
			data: `[{"name": "Abyssal Sire", "items": [{"id": 13262, "name": "Abyssal orphan"}]}]`,
		},
		{
			name: "page without items",
			data: `[{"name": "Barrows Chests", "items": []}]`,
		},
		{
			name:      "missing required field",
			data:      `[{"name": "Abyssal Sire"}]`,
			wantError: true,
			errorMsg:  "required",
		},
		{
			name:      "negative item id",
			data:      `[{"name": "Abyssal Sire", "items": [{"id": -1, "name": "Bad"}]}]`,
			wantError: true,
			errorMsg:  "items",
		},
		{
			name:      "invalid JSON",
			data:      `[{"name": }]`,
			wantError: true,
			errorMsg:  "parse JSON",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dataPath := filepath.Join(tmpDir, "pages.json")
			if err := os.WriteFile(dataPath, []byte(tt.data), 0644); err != nil {
				t.Fatalf("Failed to write data file: %v", err)
			}

			err := validator.ValidateFile(dataPath, schemaPath)

			if tt.wantError {
				if err == nil {
					t.Errorf("Expected error but got none")
				} else if tt.errorMsg != "" && !strings.Contains(err.Error(), tt.errorMsg) {
					t.Errorf("Expected error to contain %q, got: %v", tt.errorMsg, err)
				}
			} else if err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
		})
	}
}

func TestSchemaValidator_RegisterSchema(t *testing.T) {
	validator := NewSchemaValidator()

	if err := validator.RegisterSchema("pages", []byte(pageSchema)); err != nil {
		t.Fatalf("RegisterSchema failed: %v", err)
	}

	if err := validator.ValidateBytes([]byte(`[]`), "pages"); err != nil {
		t.Errorf("Unexpected error for empty page list: %v", err)
	}
	if err := validator.ValidateBytes([]byte(`[{"items": []}]`), "pages"); err == nil {
		t.Error("Expected error for page without a name")
	}
}

func TestSchemaValidator_RegisterSchema_InvalidJSON(t *testing.T) {
	validator := NewSchemaValidator()

	err := validator.RegisterSchema("broken", []byte(`{"type": `))
	if err == nil || !strings.Contains(err.Error(), "parse schema JSON") {
		t.Errorf("Expected parse error, got: %v", err)
	}
}

func TestSchemaValidator_MissingSchemaFile(t *testing.T) {
	validator := NewSchemaValidator()

	err := validator.ValidateBytes([]byte(`{}`), "nonexistent.schema.json")
	if err == nil {
		t.Fatal("Expected error for non-existent schema file")
	}
	if !strings.Contains(err.Error(), "failed to load schema") {
		t.Errorf("Expected 'failed to load schema' error, got: %v", err)
	}
}
