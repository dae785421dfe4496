package content

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/catalog.yaml
var defaultCatalogYAML []byte

// ErrUnknownItem is returned when an item type lookup fails.
var ErrUnknownItem = fmt.Errorf("content: unknown item type")

// catalogFile is the YAML document shape.
type catalogFile struct {
	Items      []*ItemType        `yaml:"items"`
	Segments   []*SegmentPrefab   `yaml:"segments"`
	Structures []*StructurePrefab `yaml:"structures"`
	Obstacles  []*ObstaclePrefab  `yaml:"obstacles"`
}

// Catalog holds the validated content set. Prefabs that fail validation are
// excluded from the usable lists and recorded as problems; loading never
// fails on bad individual entries, matching the rule that content errors
// degrade density rather than crash a session.
type Catalog struct {
	items      map[string]*ItemType
	itemOrder  []*ItemType
	segments   []*SegmentPrefab
	structures []*StructurePrefab
	obstacles  []*ObstaclePrefab
	problems   []string
}

// Load loads the content catalog.
// Search order: customPath -> ./configs/catalog.yaml -> embedded default.
func Load(customPath string) (*Catalog, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return nil, fmt.Errorf("content: failed to read catalog %s: %w", customPath, err)
		}
		return Parse(data)
	}

	if data, err := os.ReadFile("configs/catalog.yaml"); err == nil {
		if cat, err := Parse(data); err == nil {
			return cat, nil
		}
	}

	return Parse(defaultCatalogYAML)
}

// Parse parses and validates a catalog document.
func Parse(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("content: failed to parse catalog: %w", err)
	}
	return build(file), nil
}

func build(file catalogFile) *Catalog {
	cat := &Catalog{
		items: make(map[string]*ItemType),
	}

	for _, it := range file.Items {
		if it.Name == "" {
			cat.problems = append(cat.problems, "item with empty name skipped")
			continue
		}
		if _, dup := cat.items[it.Name]; dup {
			cat.problems = append(cat.problems, fmt.Sprintf("duplicate item %q skipped", it.Name))
			continue
		}
		if !it.Stackable || it.MaxStack < 1 {
			it.MaxStack = 1
		}
		cat.items[it.Name] = it
		cat.itemOrder = append(cat.itemOrder, it)
	}

	for _, seg := range file.Segments {
		if !seg.HasAnchors() {
			cat.problems = append(cat.problems,
				fmt.Sprintf("segment %q missing entry or exit anchor, rejected", seg.Name))
			continue
		}
		cat.segments = append(cat.segments, seg)
	}

	for _, st := range file.Structures {
		if st.Footprint.W <= 0 || st.Footprint.H <= 0 {
			cat.problems = append(cat.problems,
				fmt.Sprintf("structure %q has a degenerate footprint, rejected", st.Name))
			continue
		}
		cat.structures = append(cat.structures, st)
	}

	for _, ob := range file.Obstacles {
		if ob.Footprint.W <= 0 || ob.Footprint.H <= 0 {
			cat.problems = append(cat.problems,
				fmt.Sprintf("obstacle %q has a degenerate footprint, rejected", ob.Name))
			continue
		}
		cat.obstacles = append(cat.obstacles, ob)
	}

	return cat
}

// Item looks up an item type by name.
func (c *Catalog) Item(name string) (*ItemType, error) {
	it, ok := c.items[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownItem, name)
	}
	return it, nil
}

// Items returns all item types in authored order.
func (c *Catalog) Items() []*ItemType {
	return c.itemOrder
}

// Segments returns the usable segment prefabs (both anchors present).
func (c *Catalog) Segments() []*SegmentPrefab {
	return c.segments
}

// Structures returns the usable structure prefabs.
func (c *Catalog) Structures() []*StructurePrefab {
	return c.structures
}

// Obstacles returns the usable obstacle prefabs.
func (c *Catalog) Obstacles() []*ObstaclePrefab {
	return c.obstacles
}

// Problems returns human-readable validation findings from the last load.
// Callers log these; a non-empty list does not make the catalog unusable.
func (c *Catalog) Problems() []string {
	return c.problems
}
