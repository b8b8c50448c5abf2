package model

import (
	"testing"
)

// TestSplitTypeName tests namespace/class splitting
func TestSplitTypeName(t *testing.T) {
	cases := []struct {
		in        string
		namespace string
		class     string
	}{
		{"MyShop.Models.Product", "MyShop.Models", "Product"},
		{"Product", "", "Product"},
		{"A.B", "A", "B"},
	}
	for _, tc := range cases {
		ns, cls := SplitTypeName(tc.in)
		if ns != tc.namespace || cls != tc.class {
			t.Errorf("SplitTypeName(%q) = (%q, %q), want (%q, %q)", tc.in, ns, cls, tc.namespace, tc.class)
		}
	}
}

// TestPropertyLabel tests display-name preference
func TestPropertyLabel(t *testing.T) {
	p := Property{Name: "UserName"}
	if p.Label() != "UserName" {
		t.Errorf("Label without display name: got %q", p.Label())
	}

	p.DisplayName = "User name"
	if p.Label() != "User name" {
		t.Errorf("Label with display name: got %q", p.Label())
	}
}

// TestClone tests that the deep copy shares nothing mutable
func TestClone(t *testing.T) {
	maxLen := 100
	original := []Property{
		{Name: "Name", Attributes: []string{"Required"}, MaxLength: &maxLen},
	}

	cloned := Clone(original)
	cloned[0].Attributes[0] = "Mutated"
	*cloned[0].MaxLength = -1

	if original[0].Attributes[0] != "Required" {
		t.Error("Clone shares the attribute slice")
	}
	if *original[0].MaxLength != 100 {
		t.Error("Clone shares the length pointer")
	}

	if Clone(nil) != nil {
		t.Error("Clone(nil) should stay nil")
	}
}

// TestInventoryAdd tests counter aggregation and nil/blank rejection
func TestInventoryAdd(t *testing.T) {
	inv := NewInventory()

	inv.Add(&ModelClass{
		ClassName: "Product",
		Properties: []Property{
			{Name: "Id", IsPrimaryKey: true},
			{Name: "Name", IsRequired: true},
			{Name: "Price", IsRequired: true},
		},
	})
	inv.Add(nil)
	inv.Add(&ModelClass{ClassName: "   "})

	if inv.TotalClasses != 1 {
		t.Errorf("TotalClasses = %d, want 1", inv.TotalClasses)
	}
	if inv.TotalProperties != 3 {
		t.Errorf("TotalProperties = %d, want 3", inv.TotalProperties)
	}
	if inv.TotalRequired != 2 {
		t.Errorf("TotalRequired = %d, want 2", inv.TotalRequired)
	}
}

// TestModelClassPrimaryKey tests first-key selection and the keyless
// case
func TestModelClassPrimaryKey(t *testing.T) {
	mc := &ModelClass{Properties: []Property{
		{Name: "Name"},
		{Name: "Id", IsPrimaryKey: true},
		{Name: "OwnerId", IsPrimaryKey: true},
	}}
	if pk := mc.PrimaryKey(); pk == nil || pk.Name != "Id" {
		t.Errorf("PrimaryKey = %v, want Id", pk)
	}

	keyless := &ModelClass{Properties: []Property{{Name: "Value"}}}
	if pk := keyless.PrimaryKey(); pk != nil {
		t.Errorf("Keyless class should have nil primary key, got %v", pk)
	}
}
