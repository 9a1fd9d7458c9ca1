package catalog

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"keeneyes-backend/internal/models"
)

// Category is one size class from the vehicle-size reference, with the
// vehicle names listed under it in document order.
type Category struct {
	Name     string
	Vehicles []string
}

// Catalog maps vehicle names to size categories. Categories and vehicles
// keep the insertion order of the source document, so detection is
// deterministic: the first listed match wins.
type Catalog struct {
	categories []Category
}

var headingChars = regexp.MustCompile(`[-*:]`)

// Parse reads a vehicle-size document. Category headings are markdown
// bullet lines of the form "- **Name**:"; the non-empty lines that follow
// hold comma-separated vehicle names until the next heading.
func Parse(r io.Reader) (*Catalog, error) {
	c := &Catalog{}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if strings.HasPrefix(line, "- **") && strings.HasSuffix(line, "**:") {
			name := strings.TrimSpace(headingChars.ReplaceAllString(line, ""))
			c.categories = append(c.categories, Category{Name: name})
			continue
		}

		if line == "" || len(c.categories) == 0 {
			continue
		}

		cur := &c.categories[len(c.categories)-1]
		for _, v := range strings.Split(line, ",") {
			if v = strings.TrimSpace(v); v != "" {
				cur.Vehicles = append(cur.Vehicles, v)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read vehicle sizes: %w", err)
	}

	if c.Size() == 0 {
		return nil, fmt.Errorf("vehicle sizes document contains no vehicles")
	}

	return c, nil
}

// Load parses the vehicle-size document at path.
func Load(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open vehicle sizes file: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// Size returns the total number of vehicle names in the catalog.
func (c *Catalog) Size() int {
	n := 0
	for _, cat := range c.categories {
		n += len(cat.Vehicles)
	}
	return n
}

// Detect scans free text for any known vehicle name, case-insensitively.
// The first match in document order wins; there is no scoring.
func (c *Catalog) Detect(text string) (models.VehicleInfo, bool) {
	lowered := strings.ToLower(text)
	for _, cat := range c.categories {
		for _, v := range cat.Vehicles {
			if strings.Contains(lowered, strings.ToLower(v)) {
				return models.VehicleInfo{MakeModel: v, Size: cat.Name}, true
			}
		}
	}
	return models.VehicleInfo{}, false
}
