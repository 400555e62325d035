package catalog

// DefaultCrops is the built-in crop table.
func DefaultCrops() []CropDefinition {
	return []CropDefinition{
		{
			ID:        "corn",
			Name:      "Corn",
			Varieties: []string{"Sweet Corn", "Field Corn", "Popcorn"},
			Optimal: Conditions{
				Temperature: Range{Min: 15, Max: 35},
				Rainfall:    Range{Min: 500, Max: 1000},
				PH:          Range{Min: 6.0, Max: 6.8},
				SoilTypes:   []Texture{Loamy, Sandy},
			},
			Market:           Market{AvgPrice: 180, Demand: DemandHigh, Trend: TrendStable},
			GrowthDuration:   120,
			WaterRequirement: 600,
			Traits:           Traits{OrganicMatterResponsive: true},
		},
		{
			ID:        "wheat",
			Name:      "Wheat",
			Varieties: []string{"Winter Wheat", "Spring Wheat", "Durum"},
			Optimal: Conditions{
				Temperature: Range{Min: 10, Max: 25},
				Rainfall:    Range{Min: 300, Max: 700},
				PH:          Range{Min: 6.0, Max: 7.5},
				SoilTypes:   []Texture{Loamy, Clay},
			},
			Market:           Market{AvgPrice: 220, Demand: DemandMedium, Trend: TrendGrowing},
			GrowthDuration:   180,
			WaterRequirement: 450,
		},
		{
			ID:        "soybeans",
			Name:      "Soybeans",
			Varieties: []string{"Edamame", "Oil Soybeans", "Food Grade"},
			Optimal: Conditions{
				Temperature: Range{Min: 18, Max: 30},
				Rainfall:    Range{Min: 450, Max: 800},
				PH:          Range{Min: 6.0, Max: 7.0},
				SoilTypes:   []Texture{Loamy, Sandy},
			},
			Market:           Market{AvgPrice: 350, Demand: DemandHigh, Trend: TrendGrowing},
			GrowthDuration:   100,
			WaterRequirement: 500,
			Traits:           Traits{NitrogenFixing: true},
		},
		{
			ID:        "tomatoes",
			Name:      "Tomatoes",
			Varieties: []string{"Cherry", "Beefsteak", "Roma"},
			Optimal: Conditions{
				Temperature: Range{Min: 18, Max: 29},
				Rainfall:    Range{Min: 400, Max: 600},
				PH:          Range{Min: 6.0, Max: 6.8},
				SoilTypes:   []Texture{Loamy},
			},
			Market:           Market{AvgPrice: 1200, Demand: DemandHigh, Trend: TrendStable},
			GrowthDuration:   80,
			WaterRequirement: 400,
			Traits:           Traits{IntensiveManagement: true},
			Practices: []string{
				"Use disease-resistant varieties",
				"Implement integrated pest management",
			},
		},
		{
			ID:        "potatoes",
			Name:      "Potatoes",
			Varieties: []string{"Russet", "Red", "Fingerling"},
			Optimal: Conditions{
				Temperature: Range{Min: 15, Max: 20},
				Rainfall:    Range{Min: 400, Max: 600},
				PH:          Range{Min: 5.0, Max: 6.5},
				SoilTypes:   []Texture{Sandy, Loamy},
			},
			Market:           Market{AvgPrice: 300, Demand: DemandMedium, Trend: TrendStable},
			GrowthDuration:   90,
			WaterRequirement: 350,
			Traits:           Traits{PestResistant: true},
		},
	}
}

// DefaultAgronomyTable returns per-crop constants keyed by crop ID.
func DefaultAgronomyTable() map[string]Agronomy {
	return map[string]Agronomy{
		"corn":     {BaseYieldPerHa: 9.5, BaseCostPerHa: 1200, BaseFertilizerPerHa: 180, BaseLaborPerHa: 12, PlantingWindow: "April - May", HarvestWindow: "August - September"},
		"wheat":    {BaseYieldPerHa: 3.2, BaseCostPerHa: 800, BaseFertilizerPerHa: 120, BaseLaborPerHa: 8, PlantingWindow: "September - October", HarvestWindow: "June - July"},
		"soybeans": {BaseYieldPerHa: 2.8, BaseCostPerHa: 900, BaseFertilizerPerHa: 60, BaseLaborPerHa: 10, PlantingWindow: "May - June", HarvestWindow: "September - October"},
		"tomatoes": {BaseYieldPerHa: 45, BaseCostPerHa: 3500, BaseFertilizerPerHa: 200, BaseLaborPerHa: 45, PlantingWindow: "March - April", HarvestWindow: "July - August"},
		"potatoes": {BaseYieldPerHa: 35, BaseCostPerHa: 2200, BaseFertilizerPerHa: 150, BaseLaborPerHa: 25, PlantingWindow: "March - April", HarvestWindow: "June - July"},
	}
}

// Default returns the built-in catalog.
func Default() *Catalog {
	c, err := New(DefaultCrops(), DefaultAgronomyTable())
	if err != nil {
		panic(err) // static table
	}
	return c
}
