package catalog

import (
	"strings"
	"testing"
)

const sampleDoc = `# Vehicle Size Reference

- **Sedan**:
Honda Civic, Toyota Corolla, Mazda 3

- **SUV**:
Toyota RAV4, Honda CR-V,
Mazda CX-5

- **Truck**:
Ford Ranger, Toyota Hilux
`

func TestParse_CategoriesInDocumentOrder(t *testing.T) {
	c, err := Parse(strings.NewReader(sampleDoc))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	want := []struct {
		name     string
		vehicles int
	}{
		{"Sedan", 3},
		{"SUV", 3},
		{"Truck", 2},
	}

	if len(c.categories) != len(want) {
		t.Fatalf("Expected %d categories, got %d", len(want), len(c.categories))
	}
	for i, w := range want {
		if c.categories[i].Name != w.name {
			t.Errorf("Category %d: expected %q, got %q", i, w.name, c.categories[i].Name)
		}
		if len(c.categories[i].Vehicles) != w.vehicles {
			t.Errorf("Category %q: expected %d vehicles, got %d", w.name, w.vehicles, len(c.categories[i].Vehicles))
		}
	}
}

func TestParse_EmptyDocument(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"no content", ""},
		{"headings only", "- **Sedan**:\n\n- **SUV**:\n"},
		{"prose without headings", "Honda Civic, Toyota Corolla\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Parse(strings.NewReader(tc.doc)); err == nil {
				t.Error("Expected error for document without vehicles")
			}
		})
	}
}

func TestDetect_CaseInsensitive(t *testing.T) {
	c, err := Parse(strings.NewReader(sampleDoc))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	tests := []struct {
		name      string
		text      string
		makeModel string
		size      string
		found     bool
	}{
		{"exact case", "I drive a Honda Civic", "Honda Civic", "Sedan", true},
		{"lower case", "i have a honda civic thanks", "Honda Civic", "Sedan", true},
		{"upper case", "MY TOYOTA RAV4 NEEDS A WASH", "Toyota RAV4", "SUV", true},
		{"embedded in sentence", "pricing for my Ford Ranger please?", "Ford Ranger", "Truck", true},
		{"no vehicle", "how much is a full detail?", "", "", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			info, ok := c.Detect(tc.text)
			if ok != tc.found {
				t.Fatalf("Detect(%q): expected found=%v, got %v", tc.text, tc.found, ok)
			}
			if !ok {
				return
			}
			if info.MakeModel != tc.makeModel || info.Size != tc.size {
				t.Errorf("Detect(%q) = (%q, %q), expected (%q, %q)",
					tc.text, info.MakeModel, info.Size, tc.makeModel, tc.size)
			}
		})
	}
}

func TestDetect_FirstMatchWinsWithOverlappingNames(t *testing.T) {
	// "Civic" is listed before "Civic Type R"; the shorter, earlier name
	// must win even when the text contains the longer one.
	doc := `- **Sedan**:
Civic, Corolla

- **Hatchback**:
Civic Type R
`
	c, err := Parse(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	info, ok := c.Detect("quote for a Civic Type R please")
	if !ok {
		t.Fatal("Expected a match")
	}
	if info.MakeModel != "Civic" || info.Size != "Sedan" {
		t.Errorf("Expected first listed match (Civic, Sedan), got (%q, %q)", info.MakeModel, info.Size)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load("testdata/does_not_exist.md"); err == nil {
		t.Error("Expected error for missing file")
	}
}
