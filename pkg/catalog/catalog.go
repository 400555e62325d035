// Package catalog holds the crop reference data the suitability engine ranks against.
package catalog

import (
	"fmt"
	"strings"

	"github.com/rotisserie/eris"
)

// Catalog is an immutable set of crop definitions plus their agronomy constants.
// Crops keep the order they were supplied in; that order breaks ranking ties.
type Catalog struct {
	crops    []CropDefinition
	index    map[string]int
	agronomy map[string]Agronomy
}

// New builds a catalog. Crop IDs must be non-empty and unique. Agronomy entries for
// IDs that are not in crops are kept; lookups for crops without an entry use DefaultAgronomy.
func New(crops []CropDefinition, agronomy map[string]Agronomy) (*Catalog, error) {
	c := &Catalog{
		crops:    make([]CropDefinition, 0, len(crops)),
		index:    make(map[string]int, len(crops)),
		agronomy: make(map[string]Agronomy, len(agronomy)),
	}
	var errs []string
	for i, cd := range crops {
		id := strings.TrimSpace(cd.ID)
		if id == "" {
			errs = append(errs, fmt.Sprintf("crop #%d: id is required", i+1))
			continue
		}
		if _, dup := c.index[id]; dup {
			errs = append(errs, fmt.Sprintf("duplicate crop id %q", id))
			continue
		}
		cd.ID = id
		c.index[id] = len(c.crops)
		c.crops = append(c.crops, cd.clone())
	}
	if len(errs) > 0 {
		return nil, eris.Errorf("catalog: invalid crops: %s", strings.Join(errs, "; "))
	}
	for id, a := range agronomy {
		c.agronomy[strings.TrimSpace(id)] = a
	}
	return c, nil
}

// Len returns the number of crops.
func (c *Catalog) Len() int { return len(c.crops) }

// Crops returns a copy of the crop definitions in catalog order.
func (c *Catalog) Crops() []CropDefinition {
	out := make([]CropDefinition, len(c.crops))
	for i, cd := range c.crops {
		out[i] = cd.clone()
	}
	return out
}

// Crop looks up a crop by ID.
func (c *Catalog) Crop(id string) (CropDefinition, bool) {
	i, ok := c.index[id]
	if !ok {
		return CropDefinition{}, false
	}
	return c.crops[i].clone(), true
}

// Agronomy returns the constants for a crop ID. The boolean is false when the
// table has no entry and DefaultAgronomy was returned instead.
func (c *Catalog) Agronomy(id string) (Agronomy, bool) {
	if a, ok := c.agronomy[id]; ok {
		return a, true
	}
	return DefaultAgronomy(), false
}
