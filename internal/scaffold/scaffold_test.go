package scaffold

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"view-scaffold/internal/config"
	"view-scaffold/internal/model"
)

func testModelClass() *model.ModelClass {
	maxLen := 100
	minLen := 2
	return &model.ModelClass{
		TypeName:  "MyShop.Models.Product",
		ClassName: "Product",
		File:      "Models/Product.cs",
		Properties: []model.Property{
			{Name: "Id", DeclaredType: "int", IsPrimaryKey: true, Kind: model.KindNumber},
			{Name: "Name", DeclaredType: "string", IsRequired: true, Kind: model.KindText, DisplayName: "Product name", Description: "Shown on the storefront", MaxLength: &maxLen, MinLength: &minLen},
			{Name: "Price", DeclaredType: "decimal", IsRequired: true, Kind: model.KindNumber},
			{Name: "IsActive", DeclaredType: "bool", IsRequired: true, Kind: model.KindCheckbox},
		},
	}
}

func testOutputConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		Output: config.OutputConfig{ViewsDir: t.TempDir()},
	}
}

func renderView(t *testing.T, kind string) string {
	t.Helper()
	cfg := testOutputConfig(t)
	generators := GetGenerators([]string{kind})
	if len(generators) != 1 {
		t.Fatalf("Expected 1 generator for %q, got %d", kind, len(generators))
	}
	if err := generators[0].Generate(testModelClass(), cfg); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	outputFile := filepath.Join(cfg.Output.ViewsDir, "Product", generators[0].Kind()+".cshtml")
	content, err := os.ReadFile(outputFile)
	if err != nil {
		t.Fatalf("View file not written: %v", err)
	}
	return string(content)
}

// TestGetGenerators tests kind selection, deduplication and unknown
// names
func TestGetGenerators(t *testing.T) {
	generators := GetGenerators([]string{"create", "Edit", " index ", "create", "preview"})
	if len(generators) != 3 {
		t.Fatalf("Expected 3 generators, got %d", len(generators))
	}

	kinds := []string{}
	for _, g := range generators {
		kinds = append(kinds, g.Kind())
	}
	if strings.Join(kinds, ",") != "Create,Edit,Index" {
		t.Errorf("Generator kinds wrong: %v", kinds)
	}
}

// TestGenerateCreateView tests the Create form rendering
func TestGenerateCreateView(t *testing.T) {
	content := renderView(t, "create")

	if !strings.Contains(content, "@model MyShop.Models.Product") {
		t.Error("Model directive missing or escaped")
	}
	if !strings.Contains(content, `<label for="Name">Product name</label>`) {
		t.Error("Display name not used for the label")
	}
	if !strings.Contains(content, `<input type="text" id="Name" name="Name" class="form-control" maxlength="100" minlength="2" placeholder="Shown on the storefront" required />`) {
		t.Errorf("Name input wrong:\n%s", content)
	}
	if !strings.Contains(content, `<input type="number" id="Price" name="Price"`) {
		t.Error("Price input kind wrong")
	}
	if !strings.Contains(content, `<input type="checkbox" id="IsActive" name="IsActive" class="form-check-input"`) {
		t.Error("Checkbox input not special-cased")
	}
	if strings.Contains(content, `name="Id"`) {
		t.Error("Primary key must not appear as a form field in Create")
	}

	t.Logf("✅ Create view rendered correctly")
}

// TestGenerateEditView tests that Edit carries the key as a hidden field
func TestGenerateEditView(t *testing.T) {
	content := renderView(t, "edit")

	if !strings.Contains(content, "@Html.HiddenFor(model => model.Id)") {
		t.Error("Edit view must carry the primary key hidden")
	}
	if !strings.Contains(content, `<input type="text" id="Name"`) {
		t.Error("Edit view missing form inputs")
	}
}

// TestGenerateDetailsView tests the read-only listing
func TestGenerateDetailsView(t *testing.T) {
	content := renderView(t, "details")

	if !strings.Contains(content, "<dt>Product name</dt>") {
		t.Error("Details must use display names")
	}
	if !strings.Contains(content, "@Html.DisplayFor(model => model.Id)") {
		t.Error("Details should list every property, key included")
	}
	if !strings.Contains(content, "@Html.ActionLink(\"Edit\", \"Edit\", new { id = Model.Id })") {
		t.Error("Details must link to Edit by primary key")
	}
}

// TestGenerateIndexView tests the tabular listing
func TestGenerateIndexView(t *testing.T) {
	content := renderView(t, "index")

	if !strings.Contains(content, "@model IEnumerable<MyShop.Models.Product>") {
		t.Error("Index must take an enumerable model")
	}
	if !strings.Contains(content, "<th>Product name</th>") {
		t.Error("Index header must use display names")
	}
	if !strings.Contains(content, "@Html.ActionLink(\"Delete\", \"Delete\", new { id = item.Id })") {
		t.Error("Index rows must link actions by primary key")
	}
}

// TestGenerateWithoutPrimaryKey tests rendering a keyless class: hidden
// field and key-based links simply disappear
func TestGenerateWithoutPrimaryKey(t *testing.T) {
	cfg := testOutputConfig(t)
	mc := &model.ModelClass{
		TypeName:  "MyShop.Models.Setting",
		ClassName: "Setting",
		Properties: []model.Property{
			{Name: "Value", DeclaredType: "string", IsRequired: true, Kind: model.KindText},
		},
	}

	for _, gen := range GetGenerators([]string{"create", "edit", "details", "index"}) {
		if err := gen.Generate(mc, cfg); err != nil {
			t.Fatalf("Generate %s failed for keyless class: %v", gen.Kind(), err)
		}
	}

	edit, err := os.ReadFile(filepath.Join(cfg.Output.ViewsDir, "Setting", "Edit.cshtml"))
	if err != nil {
		t.Fatalf("Edit view not written: %v", err)
	}
	if strings.Contains(string(edit), "HiddenFor") {
		t.Error("Keyless class must not render a hidden key field")
	}
}

// TestGenerateDeleteView tests the confirmation page
func TestGenerateDeleteView(t *testing.T) {
	content := renderView(t, "delete")

	if !strings.Contains(content, "Are you sure you want to delete this?") {
		t.Error("Delete view missing confirmation prompt")
	}
	if !strings.Contains(content, `<input type="submit" value="Delete" class="btn btn-danger" />`) {
		t.Error("Delete view missing submit button")
	}
}
